// Package geom 提供游戏使用的二维几何工具：向量、矩形和像素碰撞遮罩
package geom

import "math"

// Vector2 二维向量（屏幕坐标，Y 轴向下）
type Vector2 struct {
	X float64
	Y float64
}

// Vec 是 Vector2{X: x, Y: y} 的简写
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add 返回 v + other
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub 返回 v - other
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale 返回 v * factor
func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{X: v.X * factor, Y: v.Y * factor}
}

// Length 返回向量长度
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero 判断是否为零向量
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize 返回单位向量
// 零向量保持为零向量（不会产生 NaN）
func (v Vector2) Normalize() Vector2 {
	if v.IsZero() {
		return Vector2{}
	}
	length := v.Length()
	return Vector2{X: v.X / length, Y: v.Y / length}
}
