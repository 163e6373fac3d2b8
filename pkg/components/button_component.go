package components

// ButtonComponent 通用按钮（文字按钮，点击触发回调）
type ButtonComponent struct {
	Label string
	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// OnClick 释放时触发
	OnClick func()
}
