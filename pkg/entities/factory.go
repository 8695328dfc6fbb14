package entities

import (
	"github.com/decker502/meteorstorm/pkg/components"
	"github.com/decker502/meteorstorm/pkg/ecs"
	"github.com/decker502/meteorstorm/pkg/geom"
)

// 实体分组
const (
	// GroupAll 所有参与更新和绘制的实体
	GroupAll ecs.Group = iota
	// GroupMeteors 陨石（碰撞查询范围）
	GroupMeteors
	// GroupLasers 激光（碰撞查询范围）
	GroupLasers
)

// Registry 游戏使用的实体注册表
type Registry = ecs.EntityManager[Entity]

// NewRegistry 创建空的实体注册表
func NewRegistry() *Registry {
	return ecs.NewEntityManager[Entity]()
}

// Assets 创建实体需要的图像资源
type Assets struct {
	Player    *components.SpriteComponent
	Laser     *components.SpriteComponent
	Meteor    *components.SpriteComponent
	Star      *components.SpriteComponent
	Explosion []*components.SpriteComponent
}

// register 注册实体并加入分组
func register(em *Registry, e Entity, groups ...ecs.Group) ecs.EntityID {
	id := em.CreateEntity(e)
	em.AddToGroups(id, groups...)
	return id
}

// SpawnStar 创建星星并加入 all 分组
func SpawnStar(em *Registry, sprite *components.SpriteComponent, center geom.Vector2) ecs.EntityID {
	return register(em, NewStar(sprite, center), GroupAll)
}

// SpawnPlayer 创建玩家并加入 all 分组
func SpawnPlayer(em *Registry, p *Player) ecs.EntityID {
	return register(em, p, GroupAll)
}

// SpawnLaser 创建激光并加入 all 和 lasers 分组
func SpawnLaser(em *Registry, sprite *components.SpriteComponent, midBottom geom.Vector2, speed float64) ecs.EntityID {
	return register(em, NewLaser(sprite, midBottom, speed), GroupAll, GroupLasers)
}

// SpawnMeteor 创建陨石并加入 all 和 meteors 分组
func SpawnMeteor(em *Registry, sprite *components.SpriteComponent, center geom.Vector2, params MeteorParams, clock Clock) ecs.EntityID {
	return register(em, NewMeteor(sprite, center, params, clock), GroupAll, GroupMeteors)
}

// SpawnExplosion 创建爆炸并加入 all 分组
func SpawnExplosion(em *Registry, frames []*components.SpriteComponent, center geom.Vector2, fps float64, sounds SoundPlayer) ecs.EntityID {
	return register(em, NewExplosion(frames, center, fps, sounds), GroupAll)
}
