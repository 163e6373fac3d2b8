package components

import (
	"github.com/decker502/codexatlas/internal/constellation"
	"github.com/decker502/codexatlas/pkg/canvas"
	"github.com/hajimehoshi/ebiten/v2"
)

// ConstellationComponent 首屏粒子星座背景
//
// Surface 与首屏同尺寸；窗口尺寸变化时整体替换，粒子随之重新生成。
type ConstellationComponent struct {
	Field   *constellation.Field
	Surface *ebiten.Image
	Canvas  *canvas.EbitenCanvas
}
