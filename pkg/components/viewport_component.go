package components

// ViewportComponent 页面滚动状态（单例）
//
// 由 ScrollSystem 维护，其他系统只读 ScrollY 和视口尺寸。
type ViewportComponent struct {
	// ScrollY 当前滚动偏移，范围 [0, MaxScroll()]
	ScrollY float64
	// Width, Height 视口（窗口）尺寸
	Width, Height float64
	// DocHeight 文档总高度
	DocHeight float64

	// Locked 为 true 时忽略所有滚动输入（灯箱打开时）
	Locked bool

	// 平滑滚动动画
	Animating    bool
	AnimFrom     float64
	AnimTo       float64
	AnimElapsed  float64
	AnimDuration float64
}

// MaxScroll 返回最大滚动偏移
func (v *ViewportComponent) MaxScroll() float64 {
	return max(0, v.DocHeight-v.Height)
}
