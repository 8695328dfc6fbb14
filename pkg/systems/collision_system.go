package systems

import (
	"math"

	"github.com/decker502/meteorstorm/pkg/ecs"
	"github.com/decker502/meteorstorm/pkg/entities"
	"github.com/decker502/meteorstorm/pkg/geom"
)

// ExplosionFunc 在 center 处生成爆炸效果
type ExplosionFunc func(center geom.Vector2)

// CollisionSystem 每帧在所有实体更新之后执行碰撞检测
//
// 检测顺序：
//  1. 玩家与陨石：像素遮罩检测。命中的陨石全部移除，返回致命碰撞，
//     本帧不再检测激光。
//  2. 激光与陨石：矩形检测。每枚激光最多击毁一颗陨石（按加入顺序的第一颗），
//     激光和陨石同时移除，并在激光顶边中点生成爆炸。
type CollisionSystem struct {
	entityManager *entities.Registry
	onExplosion   ExplosionFunc
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *entities.Registry, onExplosion ExplosionFunc) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		onExplosion:   onExplosion,
	}
}

// Update 执行碰撞检测
// 返回 true 表示玩家与陨石相撞
func (s *CollisionSystem) Update(playerID ecs.EntityID) bool {
	if s.checkPlayer(playerID) {
		return true
	}
	s.checkLasers()
	return false
}

// checkPlayer 检测玩家与所有陨石的像素级重叠
func (s *CollisionSystem) checkPlayer(playerID ecs.EntityID) bool {
	player, ok := s.entityManager.Get(playerID)
	if !ok {
		return false
	}

	hit := false
	for _, meteorID := range s.entityManager.GetEntitiesIn(entities.GroupMeteors) {
		meteor, ok := s.entityManager.Get(meteorID)
		if !ok {
			continue
		}
		if MaskCollide(player, meteor) {
			s.destroy(meteorID, meteor)
			hit = true
		}
	}
	return hit
}

// checkLasers 检测每枚激光与陨石的矩形重叠
func (s *CollisionSystem) checkLasers() {
	for _, laserID := range s.entityManager.GetEntitiesIn(entities.GroupLasers) {
		laser, ok := s.entityManager.Get(laserID)
		if !ok {
			continue
		}
		laserRect := laser.Bounds()

		// 每次重新查询，前面激光击毁的陨石不会再被命中
		for _, meteorID := range s.entityManager.GetEntitiesIn(entities.GroupMeteors) {
			meteor, ok := s.entityManager.Get(meteorID)
			if !ok || !laserRect.Intersects(meteor.Bounds()) {
				continue
			}

			s.destroy(meteorID, meteor)
			s.destroy(laserID, laser)
			if s.onExplosion != nil {
				s.onExplosion(laserRect.MidTop())
			}
			break
		}
	}
}

func (s *CollisionSystem) destroy(id ecs.EntityID, e entities.Entity) {
	e.Kill()
	s.entityManager.DestroyEntity(id)
}

// MaskCollide 像素级碰撞检测
// 先做矩形粗检，再按两者矩形左上角的整数偏移比较遮罩；任一方没有遮罩时退化为矩形检测
func MaskCollide(a, b entities.Entity) bool {
	ra, rb := a.Bounds(), b.Bounds()
	if !ra.Intersects(rb) {
		return false
	}
	ma, mb := a.Mask(), b.Mask()
	if ma == nil || mb == nil {
		return true
	}
	offsetX := int(math.Floor(rb.X)) - int(math.Floor(ra.X))
	offsetY := int(math.Floor(rb.Y)) - int(math.Floor(ra.Y))
	return ma.Overlaps(mb, offsetX, offsetY)
}
