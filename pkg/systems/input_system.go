package systems

import (
	"log"

	"github.com/decker502/meteorstorm/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyBindings 动作到按键的映射，任一按键按住即视为动作按住
type KeyBindings map[entities.Action][]ebiten.Key

// DefaultKeyBindings 默认按键：方向键移动，Q 或空格射击
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		entities.ActionUp:    {ebiten.KeyArrowUp},
		entities.ActionDown:  {ebiten.KeyArrowDown},
		entities.ActionLeft:  {ebiten.KeyArrowLeft},
		entities.ActionRight: {ebiten.KeyArrowRight},
		entities.ActionFire:  {ebiten.KeyQ, ebiten.KeySpace},
	}
}

// InputSystem 轮询键盘状态
// 实现 entities.Input，玩家每帧通过它读取按住的动作
type InputSystem struct {
	bindings KeyBindings
	quitKeys []ebiten.Key
	pressed  func(ebiten.Key) bool
	closing  func() bool
}

// NewInputSystem 创建一个新的输入系统
func NewInputSystem(bindings KeyBindings) *InputSystem {
	// 接管窗口关闭事件，由游戏循环决定何时退出
	ebiten.SetWindowClosingHandled(true)
	return &InputSystem{
		bindings: bindings,
		quitKeys: []ebiten.Key{ebiten.KeyEscape},
		pressed:  ebiten.IsKeyPressed,
		closing:  ebiten.IsWindowBeingClosed,
	}
}

// IsActionPressed 动作对应的任一按键是否按住
func (s *InputSystem) IsActionPressed(action entities.Action) bool {
	for _, key := range s.bindings[action] {
		if s.pressed(key) {
			return true
		}
	}
	return false
}

// QuitRequested 窗口正在关闭或按住了退出键
func (s *InputSystem) QuitRequested() bool {
	if s.closing() {
		log.Printf("[InputSystem] Window close requested")
		return true
	}
	for _, key := range s.quitKeys {
		if s.pressed(key) {
			log.Printf("[InputSystem] Quit key %s pressed", key)
			return true
		}
	}
	return false
}
