package config

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/decker502/codexatlas/internal/constellation"
)

// ExhibitConfig 展品页面配置
//
// 默认值由 DefaultExhibitConfig 提供，YAML 中出现的字段覆盖默认值。
//
// 配置文件位置: data/exhibit.yaml
type ExhibitConfig struct {
	Window        WindowConfig        `yaml:"window"`
	Constellation ConstellationConfig `yaml:"constellation"`
	Navigation    NavigationConfig    `yaml:"navigation"`
	Reveal        RevealConfig        `yaml:"reveal"`
	Heritage      HeritageConfig      `yaml:"heritage"`
	Comparison    ComparisonConfig    `yaml:"comparison"`
	Terminal      TerminalConfig      `yaml:"terminal"`
	Lens          LensConfig          `yaml:"lens"`
	OAIS          OAISConfig          `yaml:"oais"`
	Counters      CountersConfig      `yaml:"counters"`
	Hotspots      HotspotsConfig      `yaml:"hotspots"`
	Audio         AudioConfig         `yaml:"audio"`
}

// Range 闭区间 [Min, Max]
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ConstellationConfig 首屏粒子星座配置
type ConstellationConfig struct {
	InteractionRadius  float64  `yaml:"interactionRadius"`  // 鼠标排斥半径
	RepulsionStrength  float64  `yaml:"repulsionStrength"`  // 排斥系数
	ConnectionDistance float64  `yaml:"connectionDistance"` // 连线距离阈值
	ConnectionAlpha    float64  `yaml:"connectionAlpha"`    // 距离为 0 时的连线透明度
	ConnectionWidth    float64  `yaml:"connectionWidth"`    // 连线宽度
	ConnectionColor    string   `yaml:"connectionColor"`    // 连线颜色（十六进制）
	AreaPerParticle    float64  `yaml:"areaPerParticle"`    // 每个粒子对应的面积
	MaxSpeed           float64  `yaml:"maxSpeed"`           // 速度分量上限
	Radius             Range    `yaml:"radius"`
	Opacity            Range    `yaml:"opacity"`
	Palette            []string `yaml:"palette"` // 三个十六进制颜色
}

// NavigationConfig 导航栏与页面滚动配置
type NavigationConfig struct {
	ScrolledThreshold float64 `yaml:"scrolledThreshold"` // 滚动超过该值时导航栏进入 scrolled 状态
	ScrollDuration    float64 `yaml:"scrollDuration"`    // 跳转到章节的平滑滚动时长（秒）
	WheelStep         float64 `yaml:"wheelStep"`         // 滚轮每格滚动距离
}

// RevealConfig 滚动显现配置
type RevealConfig struct {
	Threshold    float64 `yaml:"threshold"`    // 可见比例阈值
	BottomMargin float64 `yaml:"bottomMargin"` // 视口底部收缩量
}

// StoryCard 遗产章节的故事卡片
type StoryCard struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// HeritageConfig 粘性叙事章节配置
type HeritageConfig struct {
	Cards      []StoryCard `yaml:"cards"`
	BandMargin float64     `yaml:"bandMargin"` // 视口上下各收缩的比例
}

// ComparisonConfig 前后对比滑块配置
type ComparisonConfig struct {
	Initial float64 `yaml:"initial"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	KeyStep float64 `yaml:"keyStep"` // 方向键每次移动的比例
}

// TerminalLine 模拟终端中的一行
type TerminalLine struct {
	Type string `yaml:"type"` // comment, import, variable, function, keyword, output, warning
	Text string `yaml:"text"`
}

// TerminalConfig 模拟终端配置
type TerminalConfig struct {
	LineDelay float64        `yaml:"lineDelay"` // 每行出现的间隔（秒）
	Lines     []TerminalLine `yaml:"lines"`
}

// LensConfig 魔法透镜配置
type LensConfig struct {
	Radius float64 `yaml:"radius"`
}

// OAISConfig 拖放归档模拟配置
type OAISConfig struct {
	ProcessingDuration float64 `yaml:"processingDuration"` // 归档处理动画时长（秒）
}

// Counter 统计数字
type Counter struct {
	Label  string `yaml:"label"`
	Target int    `yaml:"target"`
}

// CountersConfig 数字滚动动画配置
type CountersConfig struct {
	Items         []Counter `yaml:"items"`
	Duration      float64   `yaml:"duration"`      // 动画总时长（秒）
	FrameInterval float64   `yaml:"frameInterval"` // 步长计算假定的帧间隔（秒）
	Threshold     float64   `yaml:"threshold"`     // 触发动画的可见比例
}

// Hotspot 手稿图片上的热点
type Hotspot struct {
	ID    string  `yaml:"id"`
	X     float64 `yaml:"x"` // 相对图片宽度的比例
	Y     float64 `yaml:"y"` // 相对图片高度的比例
	Title string  `yaml:"title"`
	Body  string  `yaml:"body"`
}

// HotspotsConfig 热点提示框配置
type HotspotsConfig struct {
	Items         []Hotspot `yaml:"items"`
	TooltipWidth  float64   `yaml:"tooltipWidth"`
	TooltipHeight float64   `yaml:"tooltipHeight"`
	Margin        float64   `yaml:"margin"` // 提示框与视口边缘的最小距离
	Gap           float64   `yaml:"gap"`    // 提示框与热点之间的距离
}

// AudioTrack 音轨
// Source 为空表示尚未提供音频文件（占位）
type AudioTrack struct {
	ID     string `yaml:"id"`
	Label  string `yaml:"label"`
	Source string `yaml:"source"`
}

// AudioConfig 音频配置
type AudioConfig struct {
	Ambient             AudioTrack   `yaml:"ambient"`
	AmbientVolume       float64      `yaml:"ambientVolume"`
	Narrations          []AudioTrack `yaml:"narrations"`
	PlaceholderDuration float64      `yaml:"placeholderDuration"` // 占位音轨模拟播放时长（秒）
}

// ParseExhibitConfig 解析 YAML 配置，未出现的字段保持默认值
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *ExhibitConfig: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseExhibitConfig(data []byte) (*ExhibitConfig, error) {
	cfg := DefaultExhibitConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse exhibit config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid exhibit config: %w", err)
	}

	return cfg, nil
}

// LoadExhibitConfig 从文件加载展品配置
func LoadExhibitConfig(path string) (*ExhibitConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read exhibit config: %w", err)
	}

	cfg, err := ParseExhibitConfig(data)
	if err != nil {
		return nil, err
	}

	log.Printf("[Config] 加载展品配置: %s", path)
	return cfg, nil
}

// Validate 验证配置有效性
func (c *ExhibitConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if _, err := c.Constellation.FieldConfig(); err != nil {
		return fmt.Errorf("constellation: %w", err)
	}

	if c.Reveal.Threshold < 0 || c.Reveal.Threshold > 1 {
		return fmt.Errorf("reveal threshold must be within [0, 1], got %.2f", c.Reveal.Threshold)
	}

	if len(c.Heritage.Cards) == 0 {
		return fmt.Errorf("heritage needs at least one story card")
	}
	if c.Heritage.BandMargin < 0 || c.Heritage.BandMargin >= 0.5 {
		return fmt.Errorf("heritage band margin must be within [0, 0.5), got %.2f", c.Heritage.BandMargin)
	}

	cmp := c.Comparison
	if cmp.Min < 0 || cmp.Max > 1 || cmp.Min >= cmp.Max {
		return fmt.Errorf("comparison range invalid: min(%.2f) max(%.2f)", cmp.Min, cmp.Max)
	}
	if cmp.Initial < cmp.Min || cmp.Initial > cmp.Max {
		return fmt.Errorf("comparison initial %.2f outside [%.2f, %.2f]", cmp.Initial, cmp.Min, cmp.Max)
	}

	if c.Terminal.LineDelay < 0 {
		return fmt.Errorf("terminal line delay must be >= 0, got %.2f", c.Terminal.LineDelay)
	}

	if c.OAIS.ProcessingDuration < 0 {
		return fmt.Errorf("oais processing duration must be >= 0, got %.2f", c.OAIS.ProcessingDuration)
	}

	if c.Counters.Duration <= 0 || c.Counters.FrameInterval <= 0 {
		return fmt.Errorf("counter duration and frame interval must be positive")
	}
	for _, counter := range c.Counters.Items {
		if counter.Target < 0 {
			return fmt.Errorf("counter '%s' target must be >= 0, got %d", counter.Label, counter.Target)
		}
	}

	seen := make(map[string]bool)
	for _, h := range c.Hotspots.Items {
		if h.ID == "" {
			return fmt.Errorf("hotspot id must not be empty")
		}
		if seen[h.ID] {
			return fmt.Errorf("duplicate hotspot id '%s'", h.ID)
		}
		seen[h.ID] = true
	}

	if c.Audio.AmbientVolume < 0 || c.Audio.AmbientVolume > 1 {
		return fmt.Errorf("ambient volume must be within [0, 1], got %.2f", c.Audio.AmbientVolume)
	}

	return nil
}

// FieldConfig 转换为 constellation.Config
//
// 当 areaPerParticle 低于默认值时粒子密度升高，连线计算是 O(n²)，
// 此时记录警告而不做修正。
func (c ConstellationConfig) FieldConfig() (constellation.Config, error) {
	cfg := constellation.Config{
		InteractionRadius:  c.InteractionRadius,
		RepulsionStrength:  c.RepulsionStrength,
		ConnectionDistance: c.ConnectionDistance,
		ConnectionAlpha:    c.ConnectionAlpha,
		ConnectionWidth:    c.ConnectionWidth,
		AreaPerParticle:    c.AreaPerParticle,
		MaxSpeed:           c.MaxSpeed,
		MinRadius:          c.Radius.Min,
		MaxRadius:          c.Radius.Max,
		MinOpacity:         c.Opacity.Min,
		MaxOpacity:         c.Opacity.Max,
	}

	if c.InteractionRadius < 0 || c.ConnectionDistance < 0 {
		return cfg, fmt.Errorf("radii must be >= 0")
	}
	if c.AreaPerParticle <= 0 {
		return cfg, fmt.Errorf("areaPerParticle must be positive, got %.1f", c.AreaPerParticle)
	}
	if c.Radius.Min <= 0 || c.Radius.Min > c.Radius.Max {
		return cfg, fmt.Errorf("radius range invalid: min(%.2f) max(%.2f)", c.Radius.Min, c.Radius.Max)
	}
	if c.Opacity.Min < 0 || c.Opacity.Max > 1 || c.Opacity.Min > c.Opacity.Max {
		return cfg, fmt.Errorf("opacity range invalid: min(%.2f) max(%.2f)", c.Opacity.Min, c.Opacity.Max)
	}
	if c.ConnectionAlpha < 0 || c.ConnectionAlpha > 1 {
		return cfg, fmt.Errorf("connectionAlpha must be within [0, 1], got %.2f", c.ConnectionAlpha)
	}

	if len(c.Palette) != 3 {
		return cfg, fmt.Errorf("palette needs exactly 3 colors, got %d", len(c.Palette))
	}
	for i, hex := range c.Palette {
		rgba, err := ParseHexColor(hex)
		if err != nil {
			return cfg, fmt.Errorf("palette[%d]: %w", i, err)
		}
		cfg.Palette[i] = rgba
	}

	connection, err := ParseHexColor(c.ConnectionColor)
	if err != nil {
		return cfg, fmt.Errorf("connectionColor: %w", err)
	}
	cfg.ConnectionColor = connection

	if c.AreaPerParticle < constellation.DefaultAreaPerParticle {
		log.Printf("[Config] Warning: areaPerParticle %.0f is denser than %.0f, pairwise connections may exceed the frame budget",
			c.AreaPerParticle, constellation.DefaultAreaPerParticle)
	}

	return cfg, nil
}

// ParseHexColor 解析 "#rrggbb" 格式的颜色
func ParseHexColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// TrackByID 按 ID 查找音轨（氛围音或旁白）
func (c *AudioConfig) TrackByID(id string) (AudioTrack, bool) {
	if c.Ambient.ID == id {
		return c.Ambient, true
	}
	for _, t := range c.Narrations {
		if t.ID == id {
			return t, true
		}
	}
	return AudioTrack{}, false
}
