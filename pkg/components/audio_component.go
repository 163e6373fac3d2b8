package components

// AudioKind 音频按钮类型
type AudioKind int

const (
	// AudioAmbient 背景氛围音开关
	AudioAmbient AudioKind = iota
	// AudioNarration 旁白按钮（同一时间只播放一段）
	AudioNarration
)

// AudioButtonComponent 音频按钮
type AudioButtonComponent struct {
	Kind    AudioKind
	TrackID string
	Label   string
	// Source 音频文件路径，为空表示占位音轨
	Source string

	// Active 氛围音开关状态 / 旁白"播放中"状态
	Active bool
	// PlaceholderRemaining 占位旁白剩余的"播放中"时间（秒）
	PlaceholderRemaining float64
}

// Icon 返回氛围音按钮的图标
func (a *AudioButtonComponent) Icon() string {
	if a.Active {
		return "🔊"
	}
	return "🔇"
}
