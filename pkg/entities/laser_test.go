package entities

import (
	"testing"

	"github.com/decker502/meteorstorm/pkg/geom"
)

func TestLaserMovesUp(t *testing.T) {
	l := NewLaser(solidSprite(4, 30), geom.Vec(100, 500), 400)
	if l.Bounds().Bottom() != 500 {
		t.Fatalf("laser bottom = %f, want 500", l.Bounds().Bottom())
	}
	l.Update(0.5)
	if l.Bounds().Bottom() != 300 {
		t.Errorf("laser bottom after 0.5s = %f, want 300", l.Bounds().Bottom())
	}
	if l.IsDead() {
		t.Error("on-screen laser should be alive")
	}
}

func TestLaserDiesAboveScreen(t *testing.T) {
	l := NewLaser(solidSprite(4, 30), geom.Vec(100, 10), 400)
	l.Update(0.02) // bottom = 10 - 8 = 2
	if l.IsDead() {
		t.Fatal("laser still on screen should be alive")
	}
	l.Update(0.01) // bottom = 2 - 4 = -2
	if !l.IsDead() {
		t.Error("laser whose bottom crossed y=0 should be dead")
	}
}
