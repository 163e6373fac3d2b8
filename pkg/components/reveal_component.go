package components

// RevealComponent 滚动进入视口时淡入的元素
// Active 一旦置为 true 就不再复位
type RevealComponent struct {
	Active bool
	// Threshold 可见比例阈值
	Threshold float64
	// ActivatedAt 激活时的累计时间（秒），渲染淡入动画使用
	ActivatedAt float64
}
