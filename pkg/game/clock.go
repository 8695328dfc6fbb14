package game

import "time"

// Clock 游戏时钟
//
// Ticks 返回游戏开始以来的毫秒数；Tick 返回距上一次 Tick 调用经过的秒数，
// 作为每帧的 deltaTime。时间来自单调时钟，不做固定步长。
type Clock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
}

// NewClock 创建从当前时刻开始计时的时钟
func NewClock() *Clock {
	return newClockWithSource(time.Now)
}

func newClockWithSource(now func() time.Time) *Clock {
	t := now()
	return &Clock{now: now, start: t, last: t}
}

// Ticks 返回游戏开始以来经过的毫秒数
func (c *Clock) Ticks() int64 {
	return c.now().Sub(c.start).Milliseconds()
}

// Tick 返回距上一次调用经过的秒数
func (c *Clock) Tick() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return dt
}
