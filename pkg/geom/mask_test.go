package geom

import (
	"image"
	"image/color"
	"testing"
)

func TestMaskFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.NRGBA{A: 255})
	img.Set(1, 1, color.NRGBA{A: 128})
	img.Set(2, 2, color.NRGBA{A: 127})

	m := MaskFromImage(img)
	if m.Width != 4 || m.Height != 4 {
		t.Fatalf("size = %dx%d", m.Width, m.Height)
	}
	if !m.At(0, 0) || !m.At(1, 1) {
		t.Error("opaque pixels should be solid")
	}
	if m.At(2, 2) || m.At(3, 3) {
		t.Error("pixels at or below threshold should be empty")
	}
	if m.Count() != 2 {
		t.Errorf("Count = %d, want 2", m.Count())
	}
	if m.At(-1, 0) || m.At(4, 0) {
		t.Error("out of bounds should be empty")
	}
}

func TestMaskOverlaps(t *testing.T) {
	// 两个 4x4 遮罩，只有右下角像素为实心
	a := NewMask(4, 4)
	a.Set(3, 3, true)
	b := NewMask(4, 4)
	b.Set(0, 0, true)

	tests := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{"solid pixels coincide", 3, 3, true},
		{"rects overlap but pixels do not", 1, 1, false},
		{"no rect overlap", 10, 10, false},
		{"negative offset", -3, -3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(b, tt.dx, tt.dy); got != tt.want {
				t.Errorf("Overlaps(%d,%d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}

	if a.Overlaps(nil, 0, 0) {
		t.Error("nil mask never overlaps")
	}
}
