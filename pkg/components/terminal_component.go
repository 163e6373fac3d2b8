package components

// TerminalMode AI 章节的展示模式
type TerminalMode int

const (
	// ModeVisual 图像对比模式
	ModeVisual TerminalMode = iota
	// ModeCode 终端代码模式
	ModeCode
)

// TerminalLine 终端脚本的一行
// Kind 决定着色：comment、import、variable、function、keyword、output、warning
type TerminalLine struct {
	Kind string
	Text string
}

// TerminalComponent 模拟终端
type TerminalComponent struct {
	Mode  TerminalMode
	Lines []TerminalLine
	// LineDelay 相邻两行出现的间隔（秒）
	LineDelay float64

	// Started 动画只启动一次，切回图像模式再切回来不会重播
	Started bool
	Elapsed float64
	// Visible 已出现的行数
	Visible int
	// CursorOn 光标闪烁状态
	CursorOn bool
}

// Done 所有行是否都已出现
func (t *TerminalComponent) Done() bool {
	return t.Started && t.Visible >= len(t.Lines)
}

// ModeButtonComponent 模式切换按钮
type ModeButtonComponent struct {
	Mode   TerminalMode
	Label  string
	Active bool
}
