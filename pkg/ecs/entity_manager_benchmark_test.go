package ecs

import "testing"

// setupBenchmarkEntities 创建指定数量的实体，偶数ID加入陨石分组
func setupBenchmarkEntities(count int) *EntityManager[*testEntity] {
	em := NewEntityManager[*testEntity]()
	for i := 0; i < count; i++ {
		id := em.CreateEntity(&testEntity{})
		em.AddToGroups(id, testGroupAll)
		if i%2 == 0 {
			em.AddToGroups(id, testGroupMeteors)
		}
	}
	return em
}

func BenchmarkGetEntitiesIn(b *testing.B) {
	em := setupBenchmarkEntities(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = em.GetEntitiesIn(testGroupMeteors)
	}
}

func BenchmarkDestroyAndRemove(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		em := setupBenchmarkEntities(500)
		ids := em.GetEntitiesIn(testGroupMeteors)
		b.StartTimer()

		for _, id := range ids {
			em.DestroyEntity(id)
		}
		em.RemoveMarkedEntities()
	}
}
