package entities

import (
	"github.com/decker502/meteorstorm/pkg/components"
	"github.com/decker502/meteorstorm/pkg/geom"
)

// FireFunc 在 midBottom 处生成一枚激光
type FireFunc func(midBottom geom.Vector2)

// Player 玩家飞船
//
// 每帧轮询按键状态移动；按住射击键且冷却完毕时发射激光。
// 玩家位置不受屏幕边界限制。
type Player struct {
	base
	Speed     float64 // 像素/秒
	Direction geom.Vector2
	Cooldown  *components.CooldownComponent

	input  Input
	clock  Clock
	sounds SoundPlayer
	fire   FireFunc
}

// PlayerDeps 玩家依赖的外部能力
type PlayerDeps struct {
	Input  Input
	Clock  Clock
	Sounds SoundPlayer
	Fire   FireFunc
}

// NewPlayer 在 center 处创建玩家
func NewPlayer(sprite *components.SpriteComponent, center geom.Vector2, speed float64, cooldownMs int64, deps PlayerDeps) *Player {
	return &Player{
		base:     newBase(sprite, center),
		Speed:    speed,
		Cooldown: components.NewCooldownComponent(cooldownMs),
		input:    deps.Input,
		clock:    deps.Clock,
		sounds:   deps.Sounds,
		fire:     deps.Fire,
	}
}

// Update 读取输入、移动、射击并处理冷却
func (p *Player) Update(deltaTime float64) {
	p.Direction = p.readDirection()
	p.rect.SetCenter(p.rect.Center().Add(p.Direction.Scale(p.Speed * deltaTime)))

	if p.pressed(ActionFire) && p.Cooldown.CanFire {
		if p.fire != nil {
			p.fire(p.rect.MidTop())
		}
		if p.sounds != nil {
			p.sounds.PlaySound(SoundLaser)
		}
		p.Cooldown.Trigger(p.clock.Ticks())
	}

	// 冷却检查与按键无关，每帧执行
	p.Cooldown.Recover(p.clock.Ticks())
}

// readDirection 把方向键映射为方向向量，斜向输入归一化为单位长度
func (p *Player) readDirection() geom.Vector2 {
	dir := geom.Vector2{
		X: axis(p.pressed(ActionRight), p.pressed(ActionLeft)),
		Y: axis(p.pressed(ActionDown), p.pressed(ActionUp)),
	}
	return dir.Normalize()
}

func (p *Player) pressed(action Action) bool {
	return p.input != nil && p.input.IsActionPressed(action)
}

func axis(positive, negative bool) float64 {
	v := 0.0
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
