package entities

import (
	"github.com/decker502/meteorstorm/pkg/components"
	"github.com/decker502/meteorstorm/pkg/geom"
)

// Star 静态背景装饰，创建后不再变化
type Star struct {
	base
}

// NewStar 在 center 处创建星星
func NewStar(sprite *components.SpriteComponent, center geom.Vector2) *Star {
	return &Star{base: newBase(sprite, center)}
}

// Update 星星没有更新逻辑
func (s *Star) Update(deltaTime float64) {}
