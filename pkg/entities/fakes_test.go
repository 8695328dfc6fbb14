package entities

import (
	"github.com/decker502/meteorstorm/pkg/components"
	"github.com/decker502/meteorstorm/pkg/geom"
)

// fakeClock 可手动推进的时钟
type fakeClock struct {
	now int64
}

func (c *fakeClock) Ticks() int64 { return c.now }

// fakeInput 固定按键状态
type fakeInput map[Action]bool

func (in fakeInput) IsActionPressed(a Action) bool { return in[a] }

// fakeSounds 记录播放过的音效
type fakeSounds struct {
	played []string
}

func (s *fakeSounds) PlaySound(id string) bool {
	s.played = append(s.played, id)
	return true
}

// solidSprite 创建全实心遮罩的测试精灵（不需要 GPU 图像）
func solidSprite(w, h int) *components.SpriteComponent {
	mask := geom.NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mask.Set(x, y, true)
		}
	}
	return &components.SpriteComponent{Width: w, Height: h, Mask: mask}
}
