package components

import "github.com/decker502/codexatlas/pkg/utils"

// BoundsComponent 实体在页面上的矩形区域
//
// Rect 使用文档坐标（页面顶部为 y=0），随页面滚动；
// Fixed 为 true 时 Rect 直接是屏幕坐标（导航栏、音频按钮等悬浮控件）。
type BoundsComponent struct {
	Rect  utils.Rect
	Fixed bool
}

// ScreenRect 返回给定滚动偏移下的屏幕矩形
func (b *BoundsComponent) ScreenRect(scrollY float64) utils.Rect {
	if b.Fixed {
		return b.Rect
	}
	return b.Rect.Offset(0, -scrollY)
}
