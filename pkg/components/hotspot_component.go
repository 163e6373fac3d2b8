package components

// HotspotComponent 对开页上的热点
// 位置由 BoundsComponent 给出；提示框状态在同一实体的 TooltipComponent 中
type HotspotComponent struct {
	ID string
	// RelX, RelY 热点在对开页中的相对位置（0 ~ 1）
	RelX, RelY float64
}
