package utils

// Rect 轴对齐矩形（左上角 + 宽高）
type Rect struct {
	X, Y, W, H float64
}

// Right 返回右边界
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom 返回下边界
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX 返回水平中心
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY 返回垂直中心
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Area 返回面积，宽高非正时为 0
func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Contains 检查点是否在矩形内（左上闭、右下开）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Offset 返回平移后的矩形
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inset 返回四边向内收缩后的矩形（负值表示向外扩展）
func (r Rect) Inset(top, right, bottom, left float64) Rect {
	return Rect{X: r.X + left, Y: r.Y + top, W: r.W - left - right, H: r.H - top - bottom}
}

// Intersects 检查两个矩形是否有正面积的重叠
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Intersection 返回两个矩形的交集，不相交时返回零矩形
func (r Rect) Intersection(o Rect) Rect {
	if !r.Intersects(o) {
		return Rect{}
	}
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	return Rect{X: x, Y: y, W: min(r.Right(), o.Right()) - x, H: min(r.Bottom(), o.Bottom()) - y}
}

// VisibleRatio 返回矩形落在 viewport 内的面积比例 [0, 1]
// 面积为 0 的矩形返回 0
func (r Rect) VisibleRatio(viewport Rect) float64 {
	area := r.Area()
	if area == 0 {
		return 0
	}
	return r.Intersection(viewport).Area() / area
}

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PercentWithin 返回点在矩形内的百分比坐标（0 ~ 100，不做限制）
// 矩形宽高为 0 时返回 50%
func PercentWithin(x, y float64, r Rect) (float64, float64) {
	px, py := 50.0, 50.0
	if r.W > 0 {
		px = (x - r.X) / r.W * 100
	}
	if r.H > 0 {
		py = (y - r.Y) / r.H * 100
	}
	return px, py
}

// ScrollProgress 计算粘性章节的阅读进度（0 ~ 100）
//
// 参数:
//   - top: 章节顶部的屏幕坐标（向上滚出视口时为负）
//   - sectionHeight: 章节高度
//   - viewHeight: 视口高度
//
// 进度 = min(100, max(0, -top) / (sectionHeight - viewHeight) × 100)。
// 章节不高于视口时，只要开始滚动即为 100。
func ScrollProgress(top, sectionHeight, viewHeight float64) float64 {
	scrolled := max(0, -top)
	denom := sectionHeight - viewHeight
	if denom <= 0 {
		if scrolled > 0 {
			return 100
		}
		return 0
	}
	return min(100, scrolled/denom*100)
}

// TooltipPosition 计算提示框位置，使其尽量留在视口内
//
// 提示框默认水平居中放在锚点下方 gap 处；
// 左右超出视口时贴边（保留 margin）；下方放不下时翻到锚点上方。
//
// 返回:
//   - left, top: 提示框左上角的屏幕坐标
func TooltipPosition(anchor Rect, viewW, viewH, tipW, tipH, margin, gap float64) (float64, float64) {
	left := anchor.CenterX() - tipW/2
	top := anchor.Bottom() + gap

	if left < margin {
		left = margin
	}
	if left+tipW > viewW-margin {
		left = viewW - tipW - margin
	}
	if top+tipH > viewH {
		top = anchor.Y - tipH - margin
	}
	return left, top
}
