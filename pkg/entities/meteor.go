package entities

import (
	"math"

	"github.com/decker502/meteorstorm/pkg/components"
	"github.com/decker502/meteorstorm/pkg/geom"
	"github.com/hajimehoshi/ebiten/v2"
)

// MeteorParams 单个陨石的随机参数
type MeteorParams struct {
	// Direction 运动方向，不做归一化：X 分量越大，实际速度越快
	Direction     geom.Vector2
	Speed         float64 // 像素/秒
	RotationSpeed float64 // 度/秒
	LifetimeMs    int64
}

// Meteor 下落的陨石
//
// 旋转只影响显示：绘制时按累计角度旋转原始图像，矩形重新以旋转后
// 的外接框居中；碰撞遮罩始终使用生成时的未旋转图像。
type Meteor struct {
	base
	params   MeteorParams
	lifetime components.LifetimeComponent
	clock    Clock
	rotation float64 // 累计旋转角度（度，逆时针）
}

// NewMeteor 在 center 处创建陨石，生成时刻取自 clock
func NewMeteor(sprite *components.SpriteComponent, center geom.Vector2, params MeteorParams, clock Clock) *Meteor {
	return &Meteor{
		base:   newBase(sprite, center),
		params: params,
		lifetime: components.LifetimeComponent{
			SpawnTime: clock.Ticks(),
			Lifetime:  params.LifetimeMs,
		},
		clock: clock,
	}
}

// SpawnTime 返回生成时刻（毫秒）
func (m *Meteor) SpawnTime() int64 { return m.lifetime.SpawnTime }

// Update 移动、检查寿命并累加旋转角度
func (m *Meteor) Update(deltaTime float64) {
	center := m.rect.Center().Add(m.params.Direction.Scale(m.params.Speed * deltaTime))

	if m.lifetime.Expired(m.clock.Ticks()) {
		m.Kill()
	}

	m.rotation += m.params.RotationSpeed * deltaTime
	w, h := m.sprite.Size()
	rw, rh := geom.RotatedSize(w, h, m.rotation)
	m.rect = geom.RectFromCenter(center, rw, rh)
}

// Draw 以矩形中心为轴绘制旋转后的图像
func (m *Meteor) Draw(screen *ebiten.Image) {
	if screen == nil || m.sprite == nil || m.sprite.Image == nil {
		return
	}
	w, h := m.sprite.Size()
	center := m.rect.Center()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	// 屏幕 Y 轴向下，取负值使正角度表现为逆时针
	op.GeoM.Rotate(-m.rotation * math.Pi / 180)
	op.GeoM.Translate(center.X, center.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(m.sprite.Image, op)
}
