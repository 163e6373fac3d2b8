// Package canvas 提供 constellation.Canvas 的各个绘制后端
//
//   - EbitenCanvas: 绘制到 *ebiten.Image（交互窗口）
//   - GGCanvas: 绘制到 gg 光栅（PNG 快照工具）
//   - TcellCanvas: 绘制到终端屏幕（终端预览）
package canvas

import (
	"image/color"
	"math"
)

// withAlpha 将透明度叠加到颜色上，返回非预乘颜色
// alpha 会被限制在 0.0 ~ 1.0 范围内
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	a := clamp01(alpha) * float64(c.A) / 255
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
