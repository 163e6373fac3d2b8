package components

// ComparisonSliderComponent 前后对比滑块
//
// Position 为分割线在容器中的水平比例；左侧显示"修复前"图像，
// 右侧被裁掉 ClipRight() 百分比。
type ComparisonSliderComponent struct {
	Position float64
	Min, Max float64
	// KeyStep 方向键每次移动的比例
	KeyStep float64

	Dragging bool
	Focused  bool
	// Hidden 终端模式下隐藏
	Hidden bool

	// 无障碍属性
	Role      string
	AriaLabel string
	TabIndex  int
}

// NewComparisonSliderComponent 创建对比滑块组件
func NewComparisonSliderComponent(initial, minPos, maxPos, keyStep float64) *ComparisonSliderComponent {
	return &ComparisonSliderComponent{
		Position:  initial,
		Min:       minPos,
		Max:       maxPos,
		KeyStep:   keyStep,
		Role:      "slider",
		AriaLabel: "Comparateur avant/après",
		TabIndex:  0,
	}
}

// ClipRight 返回"修复前"图像右侧被裁掉的百分比
func (c *ComparisonSliderComponent) ClipRight() float64 {
	return (1 - c.Position) * 100
}

// Percent 返回分割线位置的百分比
func (c *ComparisonSliderComponent) Percent() float64 {
	return c.Position * 100
}
