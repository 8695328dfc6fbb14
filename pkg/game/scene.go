package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 由 SceneManager 驱动的一个画面
type Scene interface {
	// Update 推进一帧，deltaTime 为秒
	Update(deltaTime float64)
	// Draw 绘制到 screen
	Draw(screen *ebiten.Image)
	// Finished 返回 true 后游戏循环退出
	Finished() bool
}
