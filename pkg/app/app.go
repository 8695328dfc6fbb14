// Package app 提供游戏应用的核心包装器
//
// 该包把启动流程（配置、资源、音频、场景）从 main 包中提取出来，
// main.go 只负责解析命令行参数和创建窗口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/meteorstorm/pkg/components"
	"github.com/decker502/meteorstorm/pkg/config"
	"github.com/decker502/meteorstorm/pkg/embedded"
	"github.com/decker502/meteorstorm/pkg/entities"
	"github.com/decker502/meteorstorm/pkg/game"
	"github.com/decker502/meteorstorm/pkg/scenes"
	"github.com/decker502/meteorstorm/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 内置配置文件路径
const (
	GameConfigPath     = "assets/config/game.yaml"
	ResourceConfigPath = "assets/config/resources.yaml"
)

// 资源ID（见 assets/config/resources.yaml）
const (
	ImagePlayer   = "IMAGE_PLAYER"
	ImageLaser    = "IMAGE_LASER"
	ImageMeteor   = "IMAGE_METEOR"
	ImageStar     = "IMAGE_STAR"
	AnimExplosion = "ANIM_EXPLOSION"
	FontScore     = "FONT_SCORE"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部游戏配置文件路径，为空则使用内置配置
	ConfigPath string
	// Seed 随机数种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
//
// 资源在 NewApp 中全部加载完毕；游戏会话和时钟在第一次 Update 时才创建，
// 窗口创建耗时不计入分数和陨石生成计时。
type App struct {
	sceneManager *game.SceneManager
	session      *scenes.GameScene
	audioManager *game.AudioManager
	clock        *game.Clock
	gameConfig   *config.GameConfig

	assets entities.Assets
	face   *text.GoTextFace
	rng    *rand.Rand
	input  entities.Input
	quit   func() bool // 返回 true 表示请求退出
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 任何配置或资源加载失败都会返回错误，此时游戏不会启动。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(gameConfig.Audio.SampleRate)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)

	// 加载资源配置
	if err := resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	assets, err := loadAssets(resourceManager)
	if err != nil {
		return nil, fmt.Errorf("图像资源加载失败: %w", err)
	}

	face, err := resourceManager.LoadFontByID(FontScore, gameConfig.Score.FontSize)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	audioManager := game.NewAudioManager(resourceManager, gameConfig.Audio.MusicVolume, gameConfig.Audio.SoundVolume)
	if err := audioManager.PreloadSounds([]string{entities.SoundLaser, entities.SoundExplosion}); err != nil {
		return nil, fmt.Errorf("音效加载失败: %w", err)
	}
	if err := preloadMusic(resourceManager, entities.MusicGame); err != nil {
		return nil, fmt.Errorf("背景音乐加载失败: %w", err)
	}
	log.Printf("[App] AudioManager initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	input := systems.NewInputSystem(systems.DefaultKeyBindings())

	return &App{
		sceneManager: game.NewSceneManager(),
		audioManager: audioManager,
		gameConfig:   gameConfig,
		assets:       assets,
		face:         face,
		rng:          rand.New(rand.NewSource(seed)),
		input:        input,
		quit:         input.QuitRequested,
	}, nil
}

// startSession 创建时钟和游戏会话，开始播放背景音乐
func (a *App) startSession() {
	a.clock = game.NewClock()
	a.session = scenes.NewGameScene(a.gameConfig, a.assets, scenes.GameSceneDeps{
		Input:  a.input,
		Clock:  a.clock,
		Sounds: a.audioManager,
		Rng:    a.rng,
		Face:   a.face,
	})
	a.sceneManager.SwitchTo(a.session)
	a.audioManager.PlayMusic(entities.MusicGame)
}

// loadGameConfig 读取外部配置文件，未指定时读取内置配置
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading game config from %s", path)
		return config.LoadGameConfig(path)
	}
	data, err := embedded.ReadFile(GameConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseGameConfig(data)
}

// loadAssets 加载所有实体图像
func loadAssets(rm *game.ResourceManager) (entities.Assets, error) {
	var assets entities.Assets
	sprites := []struct {
		id  string
		dst **components.SpriteComponent
	}{
		{ImagePlayer, &assets.Player},
		{ImageLaser, &assets.Laser},
		{ImageMeteor, &assets.Meteor},
		{ImageStar, &assets.Star},
	}
	for _, s := range sprites {
		sprite, err := rm.LoadSpriteByID(s.id)
		if err != nil {
			return assets, err
		}
		*s.dst = sprite
	}

	frames, err := rm.LoadAnimationFrames(AnimExplosion)
	if err != nil {
		return assets, err
	}
	assets.Explosion = frames

	log.Printf("[App] Loaded %d sprites and %d explosion frames", len(sprites), len(frames))
	return assets, nil
}

// preloadMusic 提前解码背景音乐，缺失或无法解码时返回错误
func preloadMusic(rm *game.ResourceManager, musicID string) error {
	path, ok := rm.ResolvePath(musicID)
	if !ok {
		return fmt.Errorf("%w: resource ID %s", game.ErrResourceNotFound, musicID)
	}
	_, err := rm.LoadAudio(path)
	return err
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.session == nil {
		a.startSession()
	}
	if a.quit() {
		a.session.Quit()
	}

	deltaTime := a.clock.Tick()
	a.sceneManager.Update(deltaTime)

	if a.sceneManager.Finished() {
		a.audioManager.StopMusic()
		fmt.Printf("Game over! Final score: %d\n", a.session.Score())
		log.Printf("[App] Session %s, exiting", a.session.State())
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 窗口缩放时使用线性滤波，多余区域填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Window.Width, a.gameConfig.Window.Height
}

// WindowConfig 返回窗口配置，供 main 设置窗口标题和尺寸
func (a *App) WindowConfig() config.WindowConfig {
	return a.gameConfig.Window
}
