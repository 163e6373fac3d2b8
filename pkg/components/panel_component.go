package components

// PanelComponent 静态插图面板（手稿图片占位）
type PanelComponent struct {
	Caption string
}
