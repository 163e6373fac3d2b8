package systems

import (
	"github.com/decker502/codexatlas/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input 页面系统使用的输入接口
// 用于依赖注入，支持测试时 mock
type Input interface {
	// CursorPosition 指针的屏幕坐标（鼠标或第一个触摸点）
	CursorPosition() (int, int)
	// IsPointerPressed 指针是否按下
	IsPointerPressed() bool
	// IsPointerJustPressed 本帧是否刚按下
	IsPointerJustPressed() bool
	// IsPointerJustReleased 本帧是否刚释放（即一次"点击"）
	IsPointerJustReleased() bool
	// Wheel 本帧滚轮偏移
	Wheel() (float64, float64)
	// IsKeyJustPressed 按键本帧是否刚按下
	IsKeyJustPressed(key ebiten.Key) bool
}

// ebitenInput Ebitengine 默认实现
type ebitenInput struct{}

func (e *ebitenInput) CursorPosition() (int, int) {
	return utils.GetPointerPosition()
}

func (e *ebitenInput) IsPointerPressed() bool {
	return utils.IsPointerPressed()
}

func (e *ebitenInput) IsPointerJustPressed() bool {
	return utils.IsPointerJustPressed()
}

func (e *ebitenInput) IsPointerJustReleased() bool {
	return utils.IsPointerJustReleased()
}

func (e *ebitenInput) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

func (e *ebitenInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// DefaultInput 默认输入实例
var DefaultInput Input = &ebitenInput{}

// cursor 返回浮点指针坐标
func cursor(in Input) (float64, float64) {
	x, y := in.CursorPosition()
	return float64(x), float64(y)
}
