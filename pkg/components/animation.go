package components

// AnimationComponent 一次性帧动画（如爆炸）
//
// FrameIndex 是浮点累加器，按 FPS*dt 推进，与帧率无关。
type AnimationComponent struct {
	Frames     []*SpriteComponent
	FrameIndex float64
	FPS        float64
}

// Advance 推进动画
// 返回 false 表示动画已播放完毕（不循环）
func (a *AnimationComponent) Advance(deltaTime float64) bool {
	a.FrameIndex += a.FPS * deltaTime
	return a.FrameIndex < float64(len(a.Frames))
}

// Current 返回当前应绘制的帧
func (a *AnimationComponent) Current() *SpriteComponent {
	n := len(a.Frames)
	if n == 0 {
		return nil
	}
	return a.Frames[int(a.FrameIndex)%n]
}
