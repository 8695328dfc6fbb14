package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/meteorstorm/pkg/app"
	"github.com/decker502/meteorstorm/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置配置）")
	seed       = flag.Int64("seed", 0, "随机数种子（0 表示使用当前时间）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(assetsFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		// 非 verbose 模式下日志被丢弃，这里恢复输出
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	window := gameApp.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)

	// Start the game loop
	// Update 返回 ebiten.Termination 时 RunGame 正常返回 nil
	if err := ebiten.RunGame(gameApp); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
