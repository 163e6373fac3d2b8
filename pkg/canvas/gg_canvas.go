package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"
)

// DefaultBackground 展品页面的深色背景（#0a0a0f）
var DefaultBackground = color.RGBA{R: 0x0a, G: 0x0a, B: 0x0f, A: 0xff}

// GGCanvas 将粒子场绘制到 gg 光栅上，用于生成 PNG 快照
type GGCanvas struct {
	dc *gg.Context

	// Background 清屏颜色
	Background color.Color
}

// NewGGCanvas 创建 width x height 的光栅画布
func NewGGCanvas(width, height int) *GGCanvas {
	return &GGCanvas{
		dc:         gg.NewContext(width, height),
		Background: DefaultBackground,
	}
}

// Clear 以背景色填充整个光栅
func (c *GGCanvas) Clear() {
	c.dc.SetColor(c.Background)
	c.dc.Clear()
}

// FillCircle 绘制实心圆
func (c *GGCanvas) FillCircle(x, y, radius float64, clr color.RGBA, alpha float64) {
	c.dc.SetColor(withAlpha(clr, alpha))
	c.dc.DrawCircle(x, y, radius)
	c.dc.Fill()
}

// StrokeLine 绘制线段
func (c *GGCanvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.RGBA, alpha float64) {
	c.dc.SetColor(withAlpha(clr, alpha))
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

// DrawCaption 在 (x, y) 处绘制一行说明文字（基线坐标）
func (c *GGCanvas) DrawCaption(text string, x, y float64) {
	c.dc.SetFontFace(basicfont.Face7x13)
	c.dc.SetColor(color.RGBA{R: 0xd4, G: 0xa8, B: 0x53, A: 0xff})
	c.dc.DrawString(text, x, y)
}

// Image 返回当前光栅
func (c *GGCanvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG 将当前光栅保存为 PNG 文件
func (c *GGCanvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	return nil
}

// EncodePNG 将当前光栅编码为 PNG 写入 w
func (c *GGCanvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}
