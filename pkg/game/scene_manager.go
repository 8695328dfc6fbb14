package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 持有当前场景，把每帧的 Update/Draw 转发给它
// 没有场景时视为已结束
type SceneManager struct {
	current Scene
}

// NewSceneManager 创建没有场景的管理器
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换当前场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	log.Printf("[SceneManager] Switching scene to %T", scene)
	sm.current = scene
}

// Finished 当前场景已结束，或者还没有场景
func (sm *SceneManager) Finished() bool {
	return sm.current == nil || sm.current.Finished()
}

func (sm *SceneManager) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
