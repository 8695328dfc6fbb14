// Package config 加载和校验游戏参数
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏参数配置
//
// 配置文件位置: assets/config/game.yaml
// 文件中缺省的字段保留 DefaultGameConfig 中的默认值。
type GameConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Player    PlayerConfig    `yaml:"player"`
	Laser     LaserConfig     `yaml:"laser"`
	Meteor    MeteorConfig    `yaml:"meteor"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Stars     StarsConfig     `yaml:"stars"`
	Score     ScoreConfig     `yaml:"score"`
	Audio     AudioConfig     `yaml:"audio"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"` // 十六进制颜色，如 "#3a2e3f"
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	Speed      float64 `yaml:"speed"`       // 像素/秒
	CooldownMs int64   `yaml:"cooldown_ms"` // 射击冷却（毫秒）
}

// LaserConfig 激光配置
type LaserConfig struct {
	Speed float64 `yaml:"speed"` // 像素/秒
}

// MeteorConfig 陨石配置
type MeteorConfig struct {
	SpawnIntervalMs int64    `yaml:"spawn_interval_ms"`
	LifetimeMs      int64    `yaml:"lifetime_ms"`
	DirectionSpread float64  `yaml:"direction_spread"` // 方向 X 分量取值 [-spread, spread]
	Speed           IntRange `yaml:"speed"`            // 像素/秒
	RotationSpeed   IntRange `yaml:"rotation_speed"`   // 度/秒
	SpawnY          IntRange `yaml:"spawn_y"`          // 出生点 Y 范围（屏幕上方）
}

// ExplosionConfig 爆炸动画配置
type ExplosionConfig struct {
	FPS float64 `yaml:"fps"`
}

// StarsConfig 背景星星配置
type StarsConfig struct {
	Count int `yaml:"count"`
}

// ScoreConfig 分数显示配置
type ScoreConfig struct {
	DivisorMs    int64   `yaml:"divisor_ms"` // 分数 = 经过毫秒 / DivisorMs
	FontSize     float64 `yaml:"font_size"`
	BottomMargin float64 `yaml:"bottom_margin"` // 文字底边距屏幕底部的距离
	BorderWidth  float64 `yaml:"border_width"`
}

// AudioConfig 音频配置
type AudioConfig struct {
	SampleRate  int     `yaml:"sample_rate"`
	MusicVolume float64 `yaml:"music_volume"`
	SoundVolume float64 `yaml:"sound_volume"`
}

// IntRange 闭区间 [Min, Max]
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Width:      800,
			Height:     600,
			Title:      "Meteor Storm",
			Background: "#3a2e3f",
		},
		Player:    PlayerConfig{Speed: 300, CooldownMs: 1000},
		Laser:     LaserConfig{Speed: 400},
		Explosion: ExplosionConfig{FPS: 20},
		Meteor: MeteorConfig{
			SpawnIntervalMs: 1500,
			LifetimeMs:      5000,
			DirectionSpread: 0.5,
			Speed:           IntRange{Min: 100, Max: 300},
			RotationSpeed:   IntRange{Min: 20, Max: 50},
			SpawnY:          IntRange{Min: -400, Max: -100},
		},
		Stars: StarsConfig{Count: 20},
		Score: ScoreConfig{DivisorMs: 100, FontSize: 40, BottomMargin: 50, BorderWidth: 5},
		Audio: AudioConfig{SampleRate: 48000, MusicVolume: 0.1, SoundVolume: 0.2},
	}
}

// ParseGameConfig 在默认配置之上解析 YAML 数据
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	// 验证配置
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// LoadGameConfig 从文件加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "assets/config/game.yaml"）
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := ParseHexColor(c.Window.Background); err != nil {
		return fmt.Errorf("window background: %w", err)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("player speed must be positive, got %.1f", c.Player.Speed)
	}
	if c.Player.CooldownMs < 0 {
		return fmt.Errorf("player cooldown must not be negative, got %d", c.Player.CooldownMs)
	}
	if c.Laser.Speed <= 0 {
		return fmt.Errorf("laser speed must be positive, got %.1f", c.Laser.Speed)
	}
	if c.Meteor.SpawnIntervalMs <= 0 {
		return fmt.Errorf("meteor spawn interval must be positive, got %d", c.Meteor.SpawnIntervalMs)
	}
	if c.Meteor.LifetimeMs <= 0 {
		return fmt.Errorf("meteor lifetime must be positive, got %d", c.Meteor.LifetimeMs)
	}
	if c.Meteor.DirectionSpread < 0 {
		return fmt.Errorf("meteor direction spread must not be negative, got %.2f", c.Meteor.DirectionSpread)
	}
	ranges := map[string]IntRange{
		"meteor speed":          c.Meteor.Speed,
		"meteor rotation_speed": c.Meteor.RotationSpeed,
		"meteor spawn_y":        c.Meteor.SpawnY,
	}
	for name, r := range ranges {
		if r.Min > r.Max {
			return fmt.Errorf("%s range invalid: min(%d) > max(%d)", name, r.Min, r.Max)
		}
	}
	if c.Explosion.FPS <= 0 {
		return fmt.Errorf("explosion fps must be positive, got %.1f", c.Explosion.FPS)
	}
	if c.Stars.Count < 0 {
		return fmt.Errorf("star count must not be negative, got %d", c.Stars.Count)
	}
	if c.Score.DivisorMs <= 0 {
		return fmt.Errorf("score divisor must be positive, got %d", c.Score.DivisorMs)
	}
	if c.Score.FontSize <= 0 {
		return fmt.Errorf("score font size must be positive, got %.1f", c.Score.FontSize)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate)
	}
	if !inUnitRange(c.Audio.MusicVolume) || !inUnitRange(c.Audio.SoundVolume) {
		return fmt.Errorf("audio volumes must be in [0, 1], got music=%.2f sound=%.2f",
			c.Audio.MusicVolume, c.Audio.SoundVolume)
	}
	return nil
}

// BackgroundColor 返回窗口背景色
// 配置已通过 Validate 时不会失败
func (c *GameConfig) BackgroundColor() color.RGBA {
	clr, err := ParseHexColor(c.Window.Background)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return clr
}

// ParseHexColor 解析 "#rrggbb" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q must be in #rrggbb format", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}
