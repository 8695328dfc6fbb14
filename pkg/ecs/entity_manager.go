// Package ecs 提供实体注册表：实体ID分配、分组成员关系和延迟删除
package ecs

// EntityID 是实体的唯一标识符
type EntityID uint64

// Group 实体分组（如 全部/陨石/激光）
// 分组决定实体参与哪些更新、绘制和碰撞查询
type Group int

// EntityManager 管理所有实体及其分组成员关系
//
// 实体由调用方构造后通过 CreateEntity 注册，返回的 ID 再由调用方
// 加入需要的分组。DestroyEntity 只做标记，被标记的实体立即从所有查询中
// 消失，RemoveMarkedEntities 在帧末统一清理。
type EntityManager[T any] struct {
	nextID uint64
	// 实体映射: EntityID -> 实体
	entities map[EntityID]T
	// 分组 -> 按加入顺序排列的实体ID
	groups map[Group][]EntityID
	// 实体ID -> 所属分组
	membership map[EntityID][]Group
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	destroyed         map[EntityID]bool
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager[T any]() *EntityManager[T] {
	return &EntityManager[T]{
		nextID:            1, // ID从1开始,0保留为无效ID
		entities:          make(map[EntityID]T),
		groups:            make(map[Group][]EntityID),
		membership:        make(map[EntityID][]Group),
		entitiesToDestroy: make([]EntityID, 0),
		destroyed:         make(map[EntityID]bool),
	}
}

// CreateEntity 注册实体并返回唯一ID
// 新实体不属于任何分组，需调用 AddToGroups
func (em *EntityManager[T]) CreateEntity(entity T) EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.entities[id] = entity
	return id
}

// AddToGroups 把实体加入一个或多个分组，重复加入会被忽略
func (em *EntityManager[T]) AddToGroups(id EntityID, groups ...Group) {
	if !em.IsAlive(id) {
		return
	}
	for _, g := range groups {
		if em.InGroup(id, g) {
			continue
		}
		em.groups[g] = append(em.groups[g], id)
		em.membership[id] = append(em.membership[id], g)
	}
}

// InGroup 检查实体是否属于分组
func (em *EntityManager[T]) InGroup(id EntityID, g Group) bool {
	for _, member := range em.membership[id] {
		if member == g {
			return true
		}
	}
	return false
}

// DestroyEntity 标记实体待删除(不立即删除)
// 返回 false 表示实体不存在或已被标记，重复调用是安全的
func (em *EntityManager[T]) DestroyEntity(id EntityID) bool {
	if !em.IsAlive(id) {
		return false
	}
	em.destroyed[id] = true
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
	return true
}

// IsAlive 实体已注册且未被标记删除
func (em *EntityManager[T]) IsAlive(id EntityID) bool {
	if _, exists := em.entities[id]; !exists {
		return false
	}
	return !em.destroyed[id]
}

// Get 返回存活的实体
func (em *EntityManager[T]) Get(id EntityID) (T, bool) {
	if !em.IsAlive(id) {
		var zero T
		return zero, false
	}
	return em.entities[id], true
}

// GetEntitiesIn 返回分组中所有存活实体的ID（按加入顺序）
// 返回的是快照，遍历期间创建或删除实体不会影响结果
func (em *EntityManager[T]) GetEntitiesIn(g Group) []EntityID {
	ids := em.groups[g]
	result := make([]EntityID, 0, len(ids))
	for _, id := range ids {
		if !em.destroyed[id] {
			result = append(result, id)
		}
	}
	return result
}

// Count 返回分组中的存活实体数量
func (em *EntityManager[T]) Count(g Group) int {
	n := 0
	for _, id := range em.groups[g] {
		if !em.destroyed[id] {
			n++
		}
	}
	return n
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 每个实体从它所属的每个分组中恰好移除一次，返回清理的实体数量
func (em *EntityManager[T]) RemoveMarkedEntities() int {
	removed := len(em.entitiesToDestroy)
	if removed == 0 {
		return 0
	}

	touched := make(map[Group]bool)
	for _, id := range em.entitiesToDestroy {
		for _, g := range em.membership[id] {
			touched[g] = true
		}
	}
	for g := range touched {
		kept := em.groups[g][:0]
		for _, id := range em.groups[g] {
			if !em.destroyed[id] {
				kept = append(kept, id)
			}
		}
		em.groups[g] = kept
	}

	for _, id := range em.entitiesToDestroy {
		delete(em.entities, id)
		delete(em.membership, id)
		delete(em.destroyed, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
	return removed
}
