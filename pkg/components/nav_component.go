package components

// NavComponent 顶部导航栏
type NavComponent struct {
	// Scrolled 页面滚动超过阈值后为 true（导航栏切换为紧凑样式）
	Scrolled bool
	// Threshold 切换阈值（像素）
	Threshold float64
	// Links 导航链接对应的章节 ID，顺序与数字快捷键一致
	Links []string
}
