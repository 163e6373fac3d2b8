package components

import "github.com/decker502/codexatlas/pkg/utils"

// LightboxComponent 对开页深度缩放灯箱（单例，挂在对开页实体上）
type LightboxComponent struct {
	Open bool
	// ClosedThisFrame 本帧刚关闭；关闭用的点击不再传给页面
	ClosedThisFrame bool
	// ZoomX, ZoomY 缩放原点（内容区内百分比）
	ZoomX, ZoomY float64

	// Content 内容区（屏幕坐标，由系统按视口计算）
	Content utils.Rect
	// Close 关闭按钮（屏幕坐标）
	Close utils.Rect
}

// NewLightboxComponent 创建灯箱组件，缩放原点居中
func NewLightboxComponent() *LightboxComponent {
	return &LightboxComponent{ZoomX: 50, ZoomY: 50}
}
