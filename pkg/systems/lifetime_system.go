package systems

import (
	"github.com/decker502/meteorstorm/pkg/entities"
)

// LifetimeSystem 清理请求移除自身的实体
// 激光飞出屏幕、陨石寿命到期、爆炸播放完毕时，实体在 Update 中调用 Kill，
// 本系统把它们从注册表的所有分组中移除
type LifetimeSystem struct {
	entityManager *entities.Registry
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *entities.Registry) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 标记所有已死亡实体待删除，返回本次标记的数量
func (s *LifetimeSystem) Update() int {
	count := 0
	for _, id := range s.entityManager.GetEntitiesIn(entities.GroupAll) {
		e, ok := s.entityManager.Get(id)
		if !ok {
			continue
		}
		// 如果已死亡,标记实体待删除
		if e.IsDead() && s.entityManager.DestroyEntity(id) {
			count++
		}
	}
	return count
}
