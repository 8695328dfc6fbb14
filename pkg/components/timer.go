package components

// CooldownComponent 射击冷却计时器
// 冷却恢复只依赖时间，与按键状态无关
type CooldownComponent struct {
	CanFire      bool  // 当前是否允许射击
	LastFireTime int64 // 上次射击时刻（毫秒）
	Duration     int64 // 冷却时长（毫秒）
}

// NewCooldownComponent 创建一个处于可射击状态的冷却计时器
func NewCooldownComponent(durationMs int64) *CooldownComponent {
	return &CooldownComponent{CanFire: true, Duration: durationMs}
}

// Trigger 记录一次射击并进入冷却
func (c *CooldownComponent) Trigger(now int64) {
	c.CanFire = false
	c.LastFireTime = now
}

// Recover 冷却时间已满时恢复射击能力
func (c *CooldownComponent) Recover(now int64) {
	if !c.CanFire && now-c.LastFireTime >= c.Duration {
		c.CanFire = true
	}
}
