package geom

import "image"

// MaskAlphaThreshold 像素 alpha 大于该值时视为实心
const MaskAlphaThreshold = 127

// Mask 像素级碰撞遮罩
// 由图像的 alpha 通道生成，用于比矩形更精确的重叠检测
type Mask struct {
	Width  int
	Height int
	bits   []bool
}

// NewMask 创建指定尺寸的空遮罩
func NewMask(width, height int) *Mask {
	return &Mask{Width: width, Height: height, bits: make([]bool, width*height)}
}

// MaskFromImage 根据图像当前像素生成遮罩
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// RGBA() 返回 16 位通道值
			m.Set(x, y, a>>8 > MaskAlphaThreshold)
		}
	}
	return m
}

// Set 设置 (x, y) 处的像素
func (m *Mask) Set(x, y int, solid bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.bits[y*m.Width+x] = solid
}

// At 返回 (x, y) 处是否为实心像素，越界返回 false
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.bits[y*m.Width+x]
}

// Count 返回实心像素数量
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlaps 判断 other 放在相对偏移 (offsetX, offsetY) 处时两者是否有重叠的实心像素
// 偏移量为 other 左上角减去 m 左上角
func (m *Mask) Overlaps(other *Mask, offsetX, offsetY int) bool {
	if m == nil || other == nil {
		return false
	}

	// 计算两遮罩在 m 坐标系下的交集区域
	x0 := max(0, offsetX)
	y0 := max(0, offsetY)
	x1 := min(m.Width, offsetX+other.Width)
	y1 := min(m.Height, offsetY+other.Height)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.bits[y*m.Width+x] && other.bits[(y-offsetY)*other.Width+(x-offsetX)] {
				return true
			}
		}
	}
	return false
}
