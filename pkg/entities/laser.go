package entities

import (
	"github.com/decker502/meteorstorm/pkg/components"
	"github.com/decker502/meteorstorm/pkg/geom"
)

// Laser 玩家发射的激光，匀速向上飞行
type Laser struct {
	base
	Speed float64 // 像素/秒
}

// NewLaser 创建底边中点位于 midBottom 的激光
func NewLaser(sprite *components.SpriteComponent, midBottom geom.Vector2, speed float64) *Laser {
	w, h := sprite.Size()
	return &Laser{
		base:  base{sprite: sprite, rect: geom.RectFromMidBottom(midBottom, w, h)},
		Speed: speed,
	}
}

// Update 向上移动，底边越过屏幕顶部后移除自身
func (l *Laser) Update(deltaTime float64) {
	l.rect.Y -= l.Speed * deltaTime
	if l.rect.Bottom() < 0 {
		l.Kill()
	}
}
