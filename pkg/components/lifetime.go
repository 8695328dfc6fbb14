package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体(如陨石)
// 时间单位均为毫秒，取自游戏时钟
type LifetimeComponent struct {
	SpawnTime int64 // 创建时刻(毫秒)
	Lifetime  int64 // 最大生命周期(毫秒)
}

// Expired 判断在 now 时刻是否已超过生命周期
func (l *LifetimeComponent) Expired(now int64) bool {
	return now-l.SpawnTime >= l.Lifetime
}
