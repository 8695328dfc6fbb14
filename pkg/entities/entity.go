// Package entities 定义游戏中的实体：玩家、激光、陨石、星星和爆炸效果
//
// 每种实体实现 Entity 接口。实体之间不互相引用，外部能力（时钟、输入、
// 音效、生成激光）在构造时注入。
package entities

import (
	"github.com/decker502/meteorstorm/pkg/components"
	"github.com/decker502/meteorstorm/pkg/geom"
	"github.com/hajimehoshi/ebiten/v2"
)

// Entity 所有实体共享的能力
type Entity interface {
	// Update 每帧调用一次，deltaTime 为上一帧到本帧经过的秒数
	Update(deltaTime float64)
	// Draw 把实体绘制到屏幕
	Draw(screen *ebiten.Image)
	// Bounds 返回实体的轴对齐矩形
	Bounds() geom.Rect
	// Mask 返回像素碰撞遮罩，没有遮罩时返回 nil
	Mask() *geom.Mask
	// Kill 请求移除自身，重复调用无副作用
	Kill()
	// IsDead 是否已请求移除
	IsDead() bool
}

// Clock 游戏时钟
type Clock interface {
	// Ticks 返回游戏开始以来经过的毫秒数（单调递增）
	Ticks() int64
}

// Action 玩家输入动作
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
)

// Input 查询当前按住的动作（轮询，不是事件）
type Input interface {
	IsActionPressed(action Action) bool
}

// SoundPlayer 播放一次性音效，不等待播放完成
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// 音效资源ID
const (
	SoundLaser     = "SOUND_LASER"
	SoundExplosion = "SOUND_EXPLOSION"
	MusicGame      = "MUSIC_GAME"
)

// base 实体的公共部分：精灵、矩形和死亡标记
type base struct {
	sprite *components.SpriteComponent
	rect   geom.Rect
	dead   bool
}

func newBase(sprite *components.SpriteComponent, center geom.Vector2) base {
	w, h := sprite.Size()
	return base{sprite: sprite, rect: geom.RectFromCenter(center, w, h)}
}

func (b *base) Bounds() geom.Rect { return b.rect }

func (b *base) Mask() *geom.Mask {
	if b.sprite == nil {
		return nil
	}
	return b.sprite.Mask
}

func (b *base) Kill() { b.dead = true }

func (b *base) IsDead() bool { return b.dead }

// Center 返回实体中心位置
func (b *base) Center() geom.Vector2 { return b.rect.Center() }

// Draw 在矩形左上角绘制精灵
func (b *base) Draw(screen *ebiten.Image) {
	drawSprite(screen, b.sprite, b.rect)
}

func drawSprite(screen *ebiten.Image, sprite *components.SpriteComponent, rect geom.Rect) {
	if screen == nil || sprite == nil || sprite.Image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(rect.X, rect.Y)
	screen.DrawImage(sprite.Image, op)
}
