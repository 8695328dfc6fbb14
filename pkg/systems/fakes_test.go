package systems

import (
	"github.com/decker502/meteorstorm/pkg/components"
	"github.com/decker502/meteorstorm/pkg/geom"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeClock 可手动推进的时钟
type fakeClock struct {
	now int64
}

func (c *fakeClock) Ticks() int64 { return c.now }

// fakeSounds 记录播放过的音效
type fakeSounds struct {
	played []string
}

func (s *fakeSounds) PlaySound(id string) bool {
	s.played = append(s.played, id)
	return true
}

// solidSprite 创建全实心遮罩的测试精灵
func solidSprite(w, h int) *components.SpriteComponent {
	mask := geom.NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mask.Set(x, y, true)
		}
	}
	return &components.SpriteComponent{Width: w, Height: h, Mask: mask}
}

// stubEntity 位置固定的实体，记录绘制次数
type stubEntity struct {
	rect  geom.Rect
	mask  *geom.Mask
	dead  bool
	draws *[]string
	name  string
}

func (e *stubEntity) Update(float64) {}

func (e *stubEntity) Draw(*ebiten.Image) {
	if e.draws != nil {
		*e.draws = append(*e.draws, e.name)
	}
}

func (e *stubEntity) Bounds() geom.Rect { return e.rect }
func (e *stubEntity) Mask() *geom.Mask  { return e.mask }
func (e *stubEntity) Kill()             { e.dead = true }
func (e *stubEntity) IsDead() bool      { return e.dead }
