package canvas

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// 终端单元格默认对应的表面尺寸（终端字符大约是 1:2 的长宽比）
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

// TcellCanvas 将粒子场绘制到终端屏幕
//
// 每个单元格对应 CellWidth x CellHeight 的表面区域。
// 终端无法表示透明度，alpha 通过向背景色混合来近似。
// 同一帧内连线不会覆盖粒子所在的单元格。
type TcellCanvas struct {
	screen tcell.Screen

	CellWidth  float64
	CellHeight float64

	background colorful.Color
	particles  map[cell]bool // 当前帧粒子占用的单元格
}

type cell struct{ x, y int }

// NewTcellCanvas 创建绘制到 screen 的画布
// cellWidth/cellHeight 非正时使用默认值
func NewTcellCanvas(screen tcell.Screen, cellWidth, cellHeight float64) *TcellCanvas {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = DefaultCellHeight
	}
	return &TcellCanvas{
		screen:     screen,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		background: toColorful(DefaultBackground),
		particles:  make(map[cell]bool),
	}
}

// SurfaceSize 返回终端对应的表面尺寸，用于 Field.Resize
func (c *TcellCanvas) SurfaceSize() (int, int) {
	cols, rows := c.screen.Size()
	return int(float64(cols) * c.CellWidth), int(float64(rows) * c.CellHeight)
}

// CellToSurface 将单元格坐标转换为表面坐标（单元格中心）
func (c *TcellCanvas) CellToSurface(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * c.CellWidth, (float64(row) + 0.5) * c.CellHeight
}

func (c *TcellCanvas) cellAt(x, y float64) cell {
	return cell{x: int(math.Floor(x / c.CellWidth)), y: int(math.Floor(y / c.CellHeight))}
}

func (c *TcellCanvas) backgroundStyle() tcell.Style {
	return tcell.StyleDefault.Background(toTcell(c.background))
}

// Clear 以背景色清空屏幕
func (c *TcellCanvas) Clear() {
	c.screen.Fill(' ', c.backgroundStyle())
	clear(c.particles)
}

// FillCircle 按半径选择字形绘制粒子
func (c *TcellCanvas) FillCircle(x, y, radius float64, clr color.RGBA, alpha float64) {
	at := c.cellAt(x, y)
	c.particles[at] = true
	c.screen.SetContent(at.x, at.y, particleGlyph(radius), nil, c.styleFor(clr, alpha))
}

// StrokeLine 用 Bresenham 算法在单元格之间绘制连线
func (c *TcellCanvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.RGBA, alpha float64) {
	style := c.styleFor(clr, alpha)
	from, to := c.cellAt(x1, y1), c.cellAt(x2, y2)

	dx := absInt(to.x - from.x)
	dy := -absInt(to.y - from.y)
	sx, sy := 1, 1
	if from.x > to.x {
		sx = -1
	}
	if from.y > to.y {
		sy = -1
	}
	e := dx + dy
	x, y := from.x, from.y
	for {
		if !c.particles[cell{x, y}] {
			c.screen.SetContent(x, y, '.', nil, style)
		}
		if x == to.x && y == to.y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// Present 刷新终端
func (c *TcellCanvas) Present() {
	c.screen.Show()
}

func (c *TcellCanvas) styleFor(clr color.RGBA, alpha float64) tcell.Style {
	blended := c.background.BlendRgb(toColorful(clr), clamp01(alpha))
	return c.backgroundStyle().Foreground(toTcell(blended))
}

func particleGlyph(radius float64) rune {
	switch {
	case radius >= 2.3:
		return '●'
	case radius >= 1.6:
		return '•'
	default:
		return '·'
	}
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
