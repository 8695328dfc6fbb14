package geom

import "math"

// Rect 轴对齐矩形，X/Y 为左上角坐标
//
// 实体以矩形中心作为位置，通过 Center/SetCenter 读写。
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromCenter 以中心点构造矩形
func RectFromCenter(center Vector2, width, height float64) Rect {
	return Rect{X: center.X - width/2, Y: center.Y - height/2, Width: width, Height: height}
}

// RectFromMidBottom 以底边中点构造矩形
func RectFromMidBottom(midBottom Vector2, width, height float64) Rect {
	return Rect{X: midBottom.X - width/2, Y: midBottom.Y - height, Width: width, Height: height}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center 返回矩形中心
func (r Rect) Center() Vector2 {
	return Vector2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// SetCenter 平移矩形使中心位于 c
func (r *Rect) SetCenter(c Vector2) {
	r.X = c.X - r.Width/2
	r.Y = c.Y - r.Height/2
}

// MidTop 返回顶边中点
func (r Rect) MidTop() Vector2 {
	return Vector2{X: r.X + r.Width/2, Y: r.Y}
}

// Move 返回平移 (dx, dy) 后的矩形
func (r Rect) Move(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inflate 返回中心不变、宽高分别增加 dw/dh 的矩形
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{X: r.X - dw/2, Y: r.Y - dh/2, Width: r.Width + dw, Height: r.Height + dh}
}

// Intersects 判断两个矩形是否重叠
// 仅边缘接触不算重叠
func (r Rect) Intersects(other Rect) bool {
	return r.Left() < other.Right() &&
		r.Right() > other.Left() &&
		r.Top() < other.Bottom() &&
		r.Bottom() > other.Top()
}

// RotatedSize 返回 w×h 图像旋转 degrees 度后的外接矩形尺寸
func RotatedSize(width, height, degrees float64) (float64, float64) {
	rad := degrees * math.Pi / 180
	sin := math.Abs(math.Sin(rad))
	cos := math.Abs(math.Cos(rad))
	return width*cos + height*sin, width*sin + height*cos
}
