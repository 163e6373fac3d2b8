package components

// VisualEffect 传承章节插图的视觉效果
type VisualEffect int

const (
	// EffectNone 无特效
	EffectNone VisualEffect = iota
	// EffectDanger 危险（红色脉冲）
	EffectDanger
	// EffectHighlight 高亮（金色描边）
	EffectHighlight
)

// String 返回效果的样式类名，无特效时为空字符串
func (e VisualEffect) String() string {
	switch e {
	case EffectDanger:
		return "effect-danger"
	case EffectHighlight:
		return "effect-highlight"
	default:
		return ""
	}
}

// EffectForCard 根据故事卡 ID 返回视觉效果
func EffectForCard(cardID string) VisualEffect {
	switch cardID {
	case "danger":
		return EffectDanger
	case "codex":
		return EffectHighlight
	default:
		return EffectNone
	}
}

// HeritageComponent 粘性叙事章节状态
type HeritageComponent struct {
	// State 当前激活故事卡的 ID（对应 data-state）
	State string
	// Effect 插图视觉效果
	Effect VisualEffect
	// Progress 阅读进度 0 ~ 100
	Progress float64
	// BandMargin 中央判定带上下各去掉的视口比例（0.4 表示只保留中间 20%）
	BandMargin float64
}

// StoryCardComponent 叙事卡片
type StoryCardComponent struct {
	ID     string
	Title  string
	Body   string
	Active bool
}
