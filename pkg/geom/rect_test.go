package geom

import (
	"math"
	"testing"
)

func TestRectAnchors(t *testing.T) {
	r := RectFromCenter(Vec(100, 50), 20, 10)
	if r.Left() != 90 || r.Right() != 110 || r.Top() != 45 || r.Bottom() != 55 {
		t.Fatalf("unexpected edges: %+v", r)
	}
	if r.Center() != Vec(100, 50) {
		t.Errorf("center = %v", r.Center())
	}
	if r.MidTop() != Vec(100, 45) {
		t.Errorf("midtop = %v", r.MidTop())
	}

	l := RectFromMidBottom(Vec(100, 45), 4, 30)
	if l.Bottom() != 45 || l.Center().X != 100 {
		t.Errorf("RectFromMidBottom placed rect at %+v", l)
	}

	r.SetCenter(Vec(0, 0))
	if r.X != -10 || r.Y != -5 {
		t.Errorf("SetCenter moved rect to %+v", r)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touching edge", Rect{X: 10, Y: 0, Width: 10, Height: 10}, false},
		{"far away", Rect{X: 500, Y: 500, Width: 10, Height: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("Intersects (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInflateAndMove(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 10}.Inflate(20, 10).Move(0, -8)
	if r.X != 0 || r.Y != -3 || r.Width != 40 || r.Height != 20 {
		t.Errorf("got %+v", r)
	}
}

func TestRotatedSize(t *testing.T) {
	w, h := RotatedSize(10, 20, 90)
	if math.Abs(w-20) > 1e-9 || math.Abs(h-10) > 1e-9 {
		t.Errorf("90°: got %fx%f, want 20x10", w, h)
	}
	w, h = RotatedSize(10, 10, 45)
	if math.Abs(w-10*math.Sqrt2) > 1e-9 || math.Abs(h-10*math.Sqrt2) > 1e-9 {
		t.Errorf("45°: got %fx%f", w, h)
	}
}
