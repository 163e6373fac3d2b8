package components

// MagicLensComponent 放大镜
//
// 指针在区域内时显示镜头光标，并以指针为圆心"揭示"下层的译文图像。
type MagicLensComponent struct {
	// Radius 揭示圆半径（像素）
	Radius float64

	CursorVisible bool
	// CursorX, CursorY 镜头光标位置（相对区域左上角）
	CursorX, CursorY float64

	// RevealX, RevealY 揭示圆心（区域内百分比）
	RevealX, RevealY float64
	// RevealRadius 当前揭示半径，离开区域时为 0
	RevealRadius float64
}

// NewMagicLensComponent 创建放大镜组件（初始不揭示）
func NewMagicLensComponent(radius float64) *MagicLensComponent {
	return &MagicLensComponent{
		Radius:  radius,
		RevealX: 50,
		RevealY: 50,
	}
}
