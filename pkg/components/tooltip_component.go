package components

import (
	"image/color"

	"github.com/decker502/codexatlas/pkg/utils"
)

// TooltipComponent 热点提示框
//
// 样式规范：
//   - 背景色: 深色半透明 (#12121a, alpha 240)
//   - 边框: 金色 1px
//   - 内边距: 16px
type TooltipComponent struct {
	// IsVisible 是否显示
	IsVisible bool

	Title string
	Body  string

	// X, Y 左上角屏幕坐标（打开时计算，之后不随滚动移动）
	X, Y          float64
	Width, Height float64

	BackgroundColor color.Color
	BorderColor     color.Color
	Padding         float64
}

// NewTooltipComponent 创建提示框组件，使用默认颜色和样式
func NewTooltipComponent(title, body string, width, height float64) *TooltipComponent {
	return &TooltipComponent{
		Title:           title,
		Body:            body,
		Width:           width,
		Height:          height,
		BackgroundColor: color.RGBA{R: 0x12, G: 0x12, B: 0x1a, A: 240},
		BorderColor:     color.RGBA{R: 0xd4, G: 0xa8, B: 0x53, A: 255},
		Padding:         16,
	}
}

// Rect 返回提示框的屏幕矩形
func (t *TooltipComponent) Rect() utils.Rect {
	return utils.Rect{X: t.X, Y: t.Y, W: t.Width, H: t.Height}
}

// CloseRect 返回右上角关闭按钮的屏幕矩形
func (t *TooltipComponent) CloseRect() utils.Rect {
	const size = 20
	return utils.Rect{X: t.X + t.Width - size - 6, Y: t.Y + 6, W: size, H: size}
}
