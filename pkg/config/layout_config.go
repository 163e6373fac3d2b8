package config

// 布局配置常量
// 页面使用"文档坐标系"（相对于页面顶部），滚动偏移量将文档坐标映射到屏幕坐标

// 窗口默认尺寸
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 800
)

// 页面元素尺寸
const (
	// NavHeight 是固定导航栏的高度
	NavHeight = 56.0

	// SectionPadding 是章节内容与章节边缘的内边距
	SectionPadding = 48.0

	// ButtonHeight 是页面按钮的高度
	ButtonHeight = 28.0

	// CardHeightRatio 是故事卡片高度占视口高度的比例
	CardHeightRatio = 0.3
)

// 章节 ID
const (
	SectionHero     = "hero"
	SectionHeritage = "heritage"
	SectionAI       = "ai"
	SectionOAIS     = "oais"
	SectionStats    = "stats"
	SectionFolio    = "folio"
)

// SectionOrder 页面自上而下的章节顺序
// 数字键 1..n 按此顺序跳转
var SectionOrder = []string{
	SectionHero,
	SectionHeritage,
	SectionAI,
	SectionOAIS,
	SectionStats,
	SectionFolio,
}

// SectionHeight 返回章节高度
//
// 遗产章节是粘性叙事，每张卡片占一个视口高度，
// 因此章节高度 = 卡片数 × 视口高度（至少一个视口）。
// 统计章节占半个视口，其余章节各占一个视口。
//
// 参数:
//   - id: 章节 ID
//   - viewHeight: 视口高度
//   - cardCount: 遗产章节的卡片数
func SectionHeight(id string, viewHeight float64, cardCount int) float64 {
	switch id {
	case SectionHeritage:
		if cardCount < 1 {
			cardCount = 1
		}
		return float64(cardCount) * viewHeight
	case SectionStats:
		return viewHeight / 2
	default:
		return viewHeight
	}
}
