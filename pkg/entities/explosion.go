package entities

import (
	"github.com/decker502/meteorstorm/pkg/components"
	"github.com/decker502/meteorstorm/pkg/geom"
	"github.com/hajimehoshi/ebiten/v2"
)

// Explosion 激光击中陨石时的爆炸动画，播放一次后移除自身
type Explosion struct {
	base
	animation components.AnimationComponent
}

// NewExplosion 在 center 处创建爆炸并播放爆炸音效
func NewExplosion(frames []*components.SpriteComponent, center geom.Vector2, fps float64, sounds SoundPlayer) *Explosion {
	var first *components.SpriteComponent
	if len(frames) > 0 {
		first = frames[0]
	}
	e := &Explosion{
		base:      newBase(first, center),
		animation: components.AnimationComponent{Frames: frames, FPS: fps},
	}
	if sounds != nil {
		sounds.PlaySound(SoundExplosion)
	}
	return e
}

// FrameIndex 返回当前帧索引累加值
func (e *Explosion) FrameIndex() float64 { return e.animation.FrameIndex }

// Update 按时间推进动画帧，播放完毕后移除自身
func (e *Explosion) Update(deltaTime float64) {
	if e.animation.Advance(deltaTime) {
		e.sprite = e.animation.Current()
	} else {
		e.Kill()
	}
}

// Draw 绘制当前帧
func (e *Explosion) Draw(screen *ebiten.Image) {
	drawSprite(screen, e.sprite, e.rect)
}
