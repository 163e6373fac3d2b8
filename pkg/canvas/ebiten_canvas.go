package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas 将粒子场绘制到 ebiten 图像上
//
// target 为 nil 时所有绘制调用都是空操作（表面不存在时保持惰性）
type EbitenCanvas struct {
	target *ebiten.Image

	// Background 清屏颜色，为 nil 时清为全透明
	Background color.Color
	// Antialias 是否开启抗锯齿
	Antialias bool
}

// NewEbitenCanvas 创建绘制到 target 的画布
func NewEbitenCanvas(target *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{
		target:    target,
		Antialias: true,
	}
}

// SetTarget 替换绘制目标（表面尺寸变化时调用）
func (c *EbitenCanvas) SetTarget(target *ebiten.Image) {
	c.target = target
}

// Target 返回当前绘制目标
func (c *EbitenCanvas) Target() *ebiten.Image {
	return c.target
}

// Clear 清空表面
func (c *EbitenCanvas) Clear() {
	if c.target == nil {
		return
	}
	if c.Background == nil {
		c.target.Clear()
		return
	}
	c.target.Fill(c.Background)
}

// FillCircle 绘制实心圆
func (c *EbitenCanvas) FillCircle(x, y, radius float64, clr color.RGBA, alpha float64) {
	if c.target == nil {
		return
	}
	vector.DrawFilledCircle(c.target, float32(x), float32(y), float32(radius), withAlpha(clr, alpha), c.Antialias)
}

// StrokeLine 绘制线段
func (c *EbitenCanvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.RGBA, alpha float64) {
	if c.target == nil {
		return
	}
	vector.StrokeLine(c.target, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), withAlpha(clr, alpha), c.Antialias)
}
