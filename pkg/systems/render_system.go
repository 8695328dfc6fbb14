package systems

import (
	"image/color"
	"strconv"

	"github.com/decker502/meteorstorm/pkg/entities"
	"github.com/decker502/meteorstorm/pkg/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScoreColor 分数文字与边框颜色
var ScoreColor = color.RGBA{R: 240, G: 240, B: 240, A: 255}

// RenderSystem 每帧绘制画面
//
// 绘制顺序：
//  1. 背景色填充
//  2. 分数文字及其边框
//  3. 所有实体，按加入注册表的顺序（先加入的在下面）
type RenderSystem struct {
	entityManager *entities.Registry
	background    color.Color
	face          *text.GoTextFace

	screenWidth  float64
	screenHeight float64
	bottomMargin float64 // 分数文字底边距屏幕底部的距离
	borderWidth  float32
}

// RenderOptions 渲染系统参数
type RenderOptions struct {
	Background   color.Color
	Face         *text.GoTextFace // 为 nil 时不绘制分数
	ScreenWidth  int
	ScreenHeight int
	BottomMargin float64
	BorderWidth  float64
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *entities.Registry, opts RenderOptions) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		background:    opts.Background,
		face:          opts.Face,
		screenWidth:   float64(opts.ScreenWidth),
		screenHeight:  float64(opts.ScreenHeight),
		bottomMargin:  opts.BottomMargin,
		borderWidth:   float32(opts.BorderWidth),
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image, score int) {
	if s.background != nil {
		screen.Fill(s.background)
	}
	s.drawScore(screen, score)
	s.DrawEntities(screen)
}

// DrawEntities 按加入顺序绘制所有存活实体
func (s *RenderSystem) DrawEntities(screen *ebiten.Image) {
	for _, id := range s.entityManager.GetEntitiesIn(entities.GroupAll) {
		if e, ok := s.entityManager.Get(id); ok {
			e.Draw(screen)
		}
	}
}

// ScoreRect 返回分数文字的矩形，底边中点位于 (屏幕宽/2, 屏幕高-底边距)
func (s *RenderSystem) ScoreRect(score int) geom.Rect {
	if s.face == nil {
		return geom.Rect{}
	}
	w, h := text.Measure(strconv.Itoa(score), s.face, 0)
	anchor := geom.Vec(s.screenWidth/2, s.screenHeight-s.bottomMargin)
	return geom.RectFromMidBottom(anchor, w, h)
}

// ScoreBorderRect 返回分数边框的矩形：文字矩形向外扩展 (20, 10)，再上移 8 像素
func ScoreBorderRect(textRect geom.Rect) geom.Rect {
	return textRect.Inflate(20, 10).Move(0, -8)
}

func (s *RenderSystem) drawScore(screen *ebiten.Image, score int) {
	if s.face == nil {
		return
	}
	rect := s.ScoreRect(score)

	op := &text.DrawOptions{}
	op.GeoM.Translate(rect.X, rect.Y)
	op.ColorScale.ScaleWithColor(ScoreColor)
	text.Draw(screen, strconv.Itoa(score), s.face, op)

	border := ScoreBorderRect(rect)
	vector.StrokeRect(screen,
		float32(border.X), float32(border.Y),
		float32(border.Width), float32(border.Height),
		s.borderWidth, ScoreColor, true)
}

// Score 由经过的毫秒数计算分数（整除，向零截断）
func Score(elapsedMs, divisorMs int64) int {
	if divisorMs <= 0 {
		return 0
	}
	return int(elapsedMs / divisorMs)
}
