package systems

import (
	"testing"

	"github.com/decker502/meteorstorm/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

// newTestInputSystem 使用给定的按键状态创建输入系统（不依赖真实窗口）
func newTestInputSystem(held map[ebiten.Key]bool, closing bool) *InputSystem {
	return &InputSystem{
		bindings: DefaultKeyBindings(),
		quitKeys: []ebiten.Key{ebiten.KeyEscape},
		pressed:  func(k ebiten.Key) bool { return held[k] },
		closing:  func() bool { return closing },
	}
}

func TestDefaultKeyBindingsCoverAllActions(t *testing.T) {
	bindings := DefaultKeyBindings()
	actions := []entities.Action{
		entities.ActionUp, entities.ActionDown, entities.ActionLeft,
		entities.ActionRight, entities.ActionFire,
	}
	for _, a := range actions {
		if len(bindings[a]) == 0 {
			t.Errorf("action %d has no key binding", a)
		}
	}
}

func TestInputSystemIsActionPressed(t *testing.T) {
	tests := []struct {
		name   string
		held   map[ebiten.Key]bool
		action entities.Action
		want   bool
	}{
		{"arrow up", map[ebiten.Key]bool{ebiten.KeyArrowUp: true}, entities.ActionUp, true},
		{"fire with Q", map[ebiten.Key]bool{ebiten.KeyQ: true}, entities.ActionFire, true},
		{"fire with space", map[ebiten.Key]bool{ebiten.KeySpace: true}, entities.ActionFire, true},
		{"nothing held", map[ebiten.Key]bool{}, entities.ActionLeft, false},
		{"other key held", map[ebiten.Key]bool{ebiten.KeyArrowRight: true}, entities.ActionLeft, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestInputSystem(tt.held, false)
			if got := s.IsActionPressed(tt.action); got != tt.want {
				t.Errorf("IsActionPressed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInputSystemQuitRequested(t *testing.T) {
	if newTestInputSystem(nil, false).QuitRequested() {
		t.Error("no quit without close request or escape")
	}
	if !newTestInputSystem(nil, true).QuitRequested() {
		t.Error("window close should request quit")
	}
	if !newTestInputSystem(map[ebiten.Key]bool{ebiten.KeyEscape: true}, false).QuitRequested() {
		t.Error("escape should request quit")
	}
}
