package components

// SectionComponent 页面章节
// 章节按 Index 自上而下排列，数字键 1..n 跳转到对应章节
type SectionComponent struct {
	ID    string
	Index int
	Title string
}
