// check_resources 检查资源清单和游戏配置
//
// 在项目根目录运行，把当前目录当作嵌入资源的根，读取 assets/：
//
//	go run ./cmd/check_resources
//	go run ./cmd/check_resources -config my_game.yaml
//
// 先检查清单中的每个文件是否存在，再逐个加载图像、帧动画、音效和字体，
// 任何一项失败时以非零状态退出。
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/meteorstorm/pkg/config"
	"github.com/decker502/meteorstorm/pkg/embedded"
	"github.com/decker502/meteorstorm/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	manifestPath = flag.String("resources", "assets/config/resources.yaml", "资源清单路径（必须位于 assets/ 下）")
	configPath   = flag.String("config", "assets/config/game.yaml", "游戏配置文件路径")
)

func main() {
	flag.Parse()

	fmt.Println("=== 检查游戏配置 ===")
	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s (窗口 %dx%d, 陨石间隔 %dms)\n", *configPath, cfg.Window.Width, cfg.Window.Height, cfg.Meteor.SpawnIntervalMs)

	// 与游戏相同的读取路径：embedded 包
	embedded.Init(os.DirFS("."))

	rm := game.NewResourceManager(audio.NewContext(cfg.Audio.SampleRate))
	if err := rm.LoadResourceConfig(*manifestPath); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n=== 检查资源清单 ===")
	failed := 0
	for _, id := range rm.ResourceIDs() {
		path, _ := rm.ResolvePath(id)
		if path != "" && !embedded.Exists(path) {
			fmt.Printf("❌ %-16s 文件不存在: %s\n", id, path)
			failed++
			continue
		}
		if err := load(rm, id, path, cfg.Score.FontSize); err != nil {
			fmt.Printf("❌ %-16s %v\n", id, err)
			failed++
			continue
		}
		fmt.Printf("✅ %-16s %s\n", id, displayPath(path))
	}
	for _, id := range rm.AnimationIDs() {
		frames, err := rm.LoadAnimationFrames(id)
		if err != nil {
			fmt.Printf("❌ %-16s %v\n", id, err)
			failed++
			continue
		}
		fmt.Printf("✅ %-16s %d 帧\n", id, len(frames))
	}

	if failed > 0 {
		fmt.Printf("\n%d 个资源加载失败\n", failed)
		os.Exit(1)
	}
	fmt.Println("\n所有资源加载成功")
}

// load 按资源ID前缀选择加载方式
func load(rm *game.ResourceManager, id, path string, fontSize float64) error {
	switch {
	case strings.HasPrefix(id, "IMAGE_"):
		_, err := rm.LoadSprite(path)
		return err
	case strings.HasPrefix(id, "SOUND_"):
		_, err := rm.LoadSoundEffect(path)
		return err
	case strings.HasPrefix(id, "MUSIC_"):
		_, err := rm.LoadAudio(path)
		return err
	case strings.HasPrefix(id, "FONT_"):
		_, err := rm.LoadFont(path, fontSize)
		return err
	}
	return fmt.Errorf("未知的资源类型: %s", filepath.Ext(path))
}

func displayPath(path string) string {
	if path == "" {
		return "(内置 Go Bold 字体)"
	}
	return path
}
