package components

import (
	"github.com/decker502/meteorstorm/pkg/geom"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteComponent 存储实体的视觉表现和碰撞遮罩
//
// Width/Height 与 Image 尺寸一致；单独保存是为了在没有 GPU 图像的
// 场景（例如单元测试）中也能计算矩形。Mask 由加载时的原始像素生成，可为 nil。
type SpriteComponent struct {
	Image  *ebiten.Image
	Width  int
	Height int
	Mask   *geom.Mask
}

// Size 返回精灵尺寸（浮点）
func (s *SpriteComponent) Size() (float64, float64) {
	if s == nil {
		return 0, 0
	}
	return float64(s.Width), float64(s.Height)
}
