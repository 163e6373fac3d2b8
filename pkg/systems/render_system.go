package systems

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 页面配色
var (
	colorBackground = color.RGBA{R: 0x0a, G: 0x0a, B: 0x0f, A: 0xff}
	colorPanel      = color.RGBA{R: 0x12, G: 0x12, B: 0x1a, A: 0xff}
	colorCyan       = color.RGBA{R: 0x00, G: 0xf5, B: 0xff, A: 0xff}
	colorGold       = color.RGBA{R: 0xd4, G: 0xa8, B: 0x53, A: 0xff}
	colorViolet     = color.RGBA{R: 0x9d, G: 0x00, B: 0xff, A: 0xff}
	colorDanger     = color.RGBA{R: 0xff, G: 0x3b, B: 0x3b, A: 0xff}
	colorMuted      = color.RGBA{R: 0x55, G: 0x55, B: 0x66, A: 0xff}
	colorSepia      = color.RGBA{R: 0x5a, G: 0x46, B: 0x2c, A: 0xff}
	colorBackdrop   = color.RGBA{A: 0xe0}
)

// terminalLineColors 终端行类型对应的标记颜色
var terminalLineColors = map[string]color.RGBA{
	"comment":  colorMuted,
	"import":   colorViolet,
	"function": colorCyan,
	"keyword":  colorViolet,
	"output":   colorGold,
	"warning":  colorDanger,
}

// revealFadeDuration 淡入时长（秒）
const revealFadeDuration = 0.8

// glyph 调试字体的字符尺寸
const (
	glyphW = 6
	glyphH = 16
)

// RenderSystem 页面渲染系统
//
// 所有控件都用 vector 图元和 ebitenutil.DebugPrintAt 绘制，不依赖图片资源。
// 渲染顺序（从底到顶）：章节 → 首屏星座 → 控件 → 导航栏/音频按钮 → 提示框 → 灯箱。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	constellation *ConstellationSystem
	reveal        *RevealSystem
}

// NewRenderSystem 创建渲染系统
// constellation 与 reveal 可为 nil（不绘制星座 / 不做淡入）
func NewRenderSystem(em *ecs.EntityManager, constellation *ConstellationSystem, reveal *RevealSystem) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		constellation: constellation,
		reveal:        reveal,
	}
}

// Draw 绘制整个页面
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	vp := viewport(s.entityManager)
	if vp == nil {
		return
	}

	s.drawSections(screen, vp)
	if s.constellation != nil {
		s.constellation.Draw(screen)
	}
	s.drawHero(screen, vp)
	s.drawPanels(screen, vp)
	s.drawHeritage(screen, vp)
	s.drawComparison(screen, vp)
	s.drawTerminal(screen, vp)
	s.drawButtons(screen, vp)
	s.drawLens(screen, vp)
	s.drawDragDrop(screen, vp)
	s.drawCounters(screen, vp)
	s.drawFolio(screen, vp)
	s.drawNav(screen, vp)
	s.drawAudio(screen, vp)
	s.drawTooltips(screen)
	s.drawLightbox(screen, vp)
}

// visible 矩形是否与屏幕相交
func visible(r utils.Rect, vp *components.ViewportComponent) bool {
	return r.Intersects(viewRect(vp))
}

// revealAlpha 返回淡入透明度；没有 RevealComponent 的实体始终不透明
func (s *RenderSystem) revealAlpha(id ecs.EntityID) float64 {
	reveal, ok := ecs.GetComponent[*components.RevealComponent](s.entityManager, id)
	if !ok {
		return 1
	}
	if !reveal.Active {
		return 0
	}
	if s.reveal == nil {
		return 1
	}
	return utils.EaseInOutCubic(utils.Progress(s.reveal.Clock()-reveal.ActivatedAt, revealFadeDuration))
}

func fillRect(dst *ebiten.Image, r utils.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(dst *ebiten.Image, r utils.Rect, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}

// fade 按透明度缩放颜色（预乘 alpha）
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = utils.Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// printCentered 在矩形中水平居中输出一行文字
func printCentered(dst *ebiten.Image, text string, r utils.Rect, y float64) {
	x := r.CenterX() - float64(len([]rune(text))*glyphW)/2
	ebitenutil.DebugPrintAt(dst, text, int(x), int(y))
}

// printWrapped 按宽度换行输出文字
func printWrapped(dst *ebiten.Image, text string, x, y, maxWidth float64) {
	for i, line := range utils.WrapText(text, maxWidth, glyphW) {
		ebitenutil.DebugPrintAt(dst, line, int(x), int(y)+i*glyphH)
	}
}

func (s *RenderSystem) drawSections(screen *ebiten.Image, vp *components.ViewportComponent) {
	for _, id := range ecs.GetEntitiesWith2[*components.SectionComponent, *components.BoundsComponent](s.entityManager) {
		section, _ := ecs.GetComponent[*components.SectionComponent](s.entityManager, id)
		rect, _ := screenRect(s.entityManager, id, vp.ScrollY)
		if !visible(rect, vp) {
			continue
		}
		if section.Index%2 == 1 {
			fillRect(screen, rect, colorPanel)
		}
		alpha := s.revealAlpha(id)
		if alpha <= 0 || section.Title == "" {
			continue
		}
		// 淡入时标题从下方 20px 上移到位
		y := rect.Y + 72 + (1-alpha)*20
		vector.StrokeLine(screen, float32(rect.X+48), float32(y-8), float32(rect.X+48+120*alpha), float32(y-8), 1, colorGold, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%02d  %s", section.Index+1, section.Title), int(rect.X+48), int(y))
	}
}

func (s *RenderSystem) drawHero(screen *ebiten.Image, vp *components.ViewportComponent) {
	id, _, ok := ecs.First[*components.ConstellationComponent](s.entityManager)
	if !ok {
		return
	}
	rect, ok := screenRect(s.entityManager, id, vp.ScrollY)
	if !ok || !visible(rect, vp) {
		return
	}
	printCentered(screen, "CODEX ATLANTICUS 2.0", rect, rect.CenterY()-24)
	printCentered(screen, "Leonard de Vinci, 1478 - 1519", rect, rect.CenterY())
	printCentered(screen, "[1-6] sections   [wheel] scroll", rect, rect.Bottom()-48)
}

func (s *RenderSystem) drawPanels(screen *ebiten.Image, vp *components.ViewportComponent) {
	for _, id := range ecs.GetEntitiesWith2[*components.PanelComponent, *components.BoundsComponent](s.entityManager) {
		panel, _ := ecs.GetComponent[*components.PanelComponent](s.entityManager, id)
		rect, _ := screenRect(s.entityManager, id, vp.ScrollY)
		if !visible(rect, vp) {
			continue
		}
		fillRect(screen, rect, colorSepia)
		strokeRect(screen, rect, 1, colorMuted)
		ebitenutil.DebugPrintAt(screen, panel.Caption, int(rect.X+12), int(rect.Bottom()-24))
	}
}

func (s *RenderSystem) drawHeritage(screen *ebiten.Image, vp *components.ViewportComponent) {
	sectionID, heritage, ok := ecs.First[*components.HeritageComponent](s.entityManager)
	if !ok {
		return
	}
	section, _ := screenRect(s.entityManager, sectionID, vp.ScrollY)
	if !visible(section, vp) {
		return
	}

	// 粘性插图：章节在视口内时固定在左半屏
	visual := utils.Rect{X: 48, Y: vp.Height * 0.2, W: vp.Width*0.45 - 48, H: vp.Height * 0.6}
	visual.Y = utils.Clamp(visual.Y, section.Y+vp.Height*0.2, section.Bottom()-vp.Height*0.8)
	fillRect(screen, visual, colorSepia)
	switch heritage.Effect {
	case components.EffectDanger:
		strokeRect(screen, visual, 4, colorDanger)
	case components.EffectHighlight:
		strokeRect(screen, visual, 4, colorGold)
	default:
		strokeRect(screen, visual, 1, colorMuted)
	}
	ebitenutil.DebugPrintAt(screen, "state: "+heritage.State, int(visual.X+12), int(visual.Y+12))

	// 阅读进度条
	bar := utils.Rect{X: visual.X, Y: visual.Bottom() + 16, W: visual.W, H: 4}
	fillRect(screen, bar, colorMuted)
	bar.W *= heritage.Progress / 100
	fillRect(screen, bar, colorGold)

	for _, id := range ecs.GetEntitiesWith2[*components.StoryCardComponent, *components.BoundsComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.StoryCardComponent](s.entityManager, id)
		rect, _ := screenRect(s.entityManager, id, vp.ScrollY)
		if !visible(rect, vp) {
			continue
		}
		fillRect(screen, rect, colorBackground)
		border := colorMuted
		if card.Active {
			border = colorGold
		}
		strokeRect(screen, rect, 1, border)
		ebitenutil.DebugPrintAt(screen, card.Title, int(rect.X+16), int(rect.Y+16))
		printWrapped(screen, card.Body, rect.X+16, rect.Y+48, rect.W-32)
	}
}

func (s *RenderSystem) drawComparison(screen *ebiten.Image, vp *components.ViewportComponent) {
	for _, id := range ecs.GetEntitiesWith2[*components.ComparisonSliderComponent, *components.BoundsComponent](s.entityManager) {
		slider, _ := ecs.GetComponent[*components.ComparisonSliderComponent](s.entityManager, id)
		rect, _ := screenRect(s.entityManager, id, vp.ScrollY)
		if slider.Hidden || !visible(rect, vp) {
			continue
		}

		// 右侧"修复后"，左侧"修复前"被裁掉 ClipRight%
		fillRect(screen, rect, fade(colorCyan, 0.25))
		before := rect
		before.W = rect.W * (100 - slider.ClipRight()) / 100
		fillRect(screen, before, colorSepia)
		ebitenutil.DebugPrintAt(screen, "AVANT", int(rect.X+12), int(rect.Y+12))
		ebitenutil.DebugPrintAt(screen, "APRES", int(rect.Right()-48), int(rect.Y+12))

		x := float32(before.Right())
		handle := colorGold
		if slider.Focused {
			handle = colorCyan
		}
		vector.StrokeLine(screen, x, float32(rect.Y), x, float32(rect.Bottom()), 2, handle, false)
		vector.DrawFilledCircle(screen, x, float32(rect.CenterY()), 14, handle, true)
		ebitenutil.DebugPrintAt(screen, strconv.Itoa(int(math.Round(slider.Percent())))+"%", int(x)-9, int(rect.CenterY())-8)
	}
}

func (s *RenderSystem) drawTerminal(screen *ebiten.Image, vp *components.ViewportComponent) {
	id, term, ok := ecs.First[*components.TerminalComponent](s.entityManager)
	if !ok || term.Mode != components.ModeCode {
		return
	}
	rect, ok := screenRect(s.entityManager, id, vp.ScrollY)
	if !ok || !visible(rect, vp) {
		return
	}
	fillRect(screen, rect, colorPanel)
	strokeRect(screen, rect, 1, colorMuted)

	// 标题栏三个圆点
	for i, c := range []color.RGBA{colorDanger, colorGold, colorCyan} {
		vector.DrawFilledCircle(screen, float32(rect.X+16+float64(i)*16), float32(rect.Y+14), 5, c, true)
	}

	lineH := float64(glyphH)
	maxLines := int((rect.H - 40) / lineH)
	first := max(0, term.Visible-maxLines)
	y := rect.Y + 32
	for i := first; i < term.Visible; i++ {
		line := term.Lines[i]
		if c, ok := terminalLineColors[line.Kind]; ok {
			fillRect(screen, utils.Rect{X: rect.X + 8, Y: y + 4, W: 3, H: lineH - 8}, c)
		}
		ebitenutil.DebugPrintAt(screen, line.Text, int(rect.X+16), int(y))
		if i == len(term.Lines)-1 && term.CursorOn {
			cx := rect.X + 16 + float64(len([]rune(line.Text))*glyphW) + 4
			fillRect(screen, utils.Rect{X: cx, Y: y + 2, W: 8, H: lineH - 4}, colorCyan)
		}
		y += lineH
	}
}

func (s *RenderSystem) drawButtons(screen *ebiten.Image, vp *components.ViewportComponent) {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.BoundsComponent](s.entityManager) {
		btn, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		if bounds.Fixed {
			continue // 导航链接在 drawNav 中绘制
		}
		rect := bounds.ScreenRect(vp.ScrollY)
		if !visible(rect, vp) {
			continue
		}
		active := false
		if mode, ok := ecs.GetComponent[*components.ModeButtonComponent](s.entityManager, id); ok {
			active = mode.Active
		}
		drawButton(screen, rect, btn, active)
	}
}

func drawButton(screen *ebiten.Image, rect utils.Rect, btn *components.ButtonComponent, active bool) {
	switch {
	case active:
		fillRect(screen, rect, fade(colorGold, 0.35))
	case btn.State == components.UIClicked:
		fillRect(screen, rect, fade(colorCyan, 0.35))
	case btn.State == components.UIHovered:
		fillRect(screen, rect, fade(colorCyan, 0.15))
	}
	border := colorMuted
	if active || btn.State == components.UIHovered {
		border = colorGold
	}
	strokeRect(screen, rect, 1, border)
	printCentered(screen, btn.Label, rect, rect.CenterY()-8)
}

func (s *RenderSystem) drawLens(screen *ebiten.Image, vp *components.ViewportComponent) {
	for _, id := range ecs.GetEntitiesWith2[*components.MagicLensComponent, *components.BoundsComponent](s.entityManager) {
		lens, _ := ecs.GetComponent[*components.MagicLensComponent](s.entityManager, id)
		rect, _ := screenRect(s.entityManager, id, vp.ScrollY)
		if !visible(rect, vp) {
			continue
		}
		fillRect(screen, rect, colorSepia)
		strokeRect(screen, rect, 1, colorMuted)
		ebitenutil.DebugPrintAt(screen, "ecriture speculaire", int(rect.X+12), int(rect.Y+12))

		if lens.RevealRadius > 0 {
			cx := rect.X + rect.W*lens.RevealX/100
			cy := rect.Y + rect.H*lens.RevealY/100
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(lens.RevealRadius), fade(colorCyan, 0.3), true)
			ebitenutil.DebugPrintAt(screen, "traduction", int(cx)-30, int(cy)-8)
		}
		if lens.CursorVisible {
			vector.StrokeCircle(screen, float32(rect.X+lens.CursorX), float32(rect.Y+lens.CursorY), float32(lens.Radius), 2, colorGold, true)
		}
	}
}

func (s *RenderSystem) drawDragDrop(screen *ebiten.Image, vp *components.ViewportComponent) {
	_, dd, ok := ecs.First[*components.DragDropComponent](s.entityManager)
	if !ok {
		return
	}
	zone := dd.DropZone.Offset(0, -vp.ScrollY)
	home := dd.Manuscript.Offset(0, -vp.ScrollY)

	if visible(zone, vp) {
		border := colorMuted
		switch {
		case dd.State == components.ArchiveArchived:
			border = colorCyan
		case dd.DragOver:
			border = colorGold
			fillRect(screen, zone, fade(colorGold, 0.15))
		}
		strokeRect(screen, zone, 2, border)
		if !dd.ZoneIconsHidden {
			printCentered(screen, "[ AIP ]", zone, zone.CenterY()-24)
			printCentered(screen, "Deposez le manuscrit ici", zone, zone.CenterY())
			printCentered(screen, "En attente", zone, zone.CenterY()+20)
		}
		if dd.State == components.ArchiveProcessing {
			s.drawProcessing(screen, zone, dd)
		}
		if dd.PackageVisible {
			pkg := zone.Inset(zone.H*0.25, zone.W*0.25, zone.H*0.25, zone.W*0.25)
			fillRect(screen, pkg, fade(colorCyan, 0.2))
			strokeRect(screen, pkg, 1, colorCyan)
			printCentered(screen, "AIP archive", pkg, pkg.CenterY()-8)
		}
	}
	if dd.ResultVisible && visible(zone, vp) {
		ebitenutil.DebugPrintAt(screen, "Manuscrit archive selon le modele OAIS.", int(zone.X), int(zone.Bottom()+16))
	}

	switch dd.State {
	case components.ArchiveIdle:
		if visible(home, vp) {
			drawManuscript(screen, home, false)
		}
	case components.ArchiveDragging:
		strokeRect(screen, home, 1, colorMuted)
		drawManuscript(screen, utils.Rect{X: dd.DragX, Y: dd.DragY, W: home.W, H: home.H}, true)
	default:
		if visible(home, vp) {
			strokeRect(screen, home, 1, fade(colorCyan, 0.5))
		}
	}
}

// drawProcessing 处理中：绕投放区中心旋转的三个点
func (s *RenderSystem) drawProcessing(screen *ebiten.Image, zone utils.Rect, dd *components.DragDropComponent) {
	t := dd.ProcessingElapsed * 2 * math.Pi
	for i := 0; i < 3; i++ {
		a := t + float64(i)*2*math.Pi/3
		x := zone.CenterX() + math.Cos(a)*24
		y := zone.CenterY() + math.Sin(a)*24
		vector.DrawFilledCircle(screen, float32(x), float32(y), 5, colorGold, true)
	}
	pct := int(utils.Progress(dd.ProcessingElapsed, dd.ProcessingDuration) * 100)
	printCentered(screen, fmt.Sprintf("Ingest SIP -> AIP  %d%%", pct), zone, zone.CenterY()+40)
}

func drawManuscript(screen *ebiten.Image, r utils.Rect, dragging bool) {
	fillRect(screen, r, colorSepia)
	border := colorGold
	if dragging {
		border = colorCyan
	}
	strokeRect(screen, r, 1, border)
	printCentered(screen, "Folio 1033r", r, r.CenterY()-8)
}

func (s *RenderSystem) drawCounters(screen *ebiten.Image, vp *components.ViewportComponent) {
	for _, id := range ecs.GetEntitiesWith2[*components.CounterComponent, *components.BoundsComponent](s.entityManager) {
		counter, _ := ecs.GetComponent[*components.CounterComponent](s.entityManager, id)
		rect, _ := screenRect(s.entityManager, id, vp.ScrollY)
		if !visible(rect, vp) {
			continue
		}
		strokeRect(screen, rect, 1, colorMuted)
		printCentered(screen, strconv.Itoa(counter.Display()), rect, rect.CenterY()-16)
		printCentered(screen, counter.Label, rect, rect.CenterY()+8)
	}
}

func (s *RenderSystem) drawFolio(screen *ebiten.Image, vp *components.ViewportComponent) {
	if id, _, ok := ecs.First[*components.LightboxComponent](s.entityManager); ok {
		if rect, ok := screenRect(s.entityManager, id, vp.ScrollY); ok && visible(rect, vp) {
			fillRect(screen, rect, colorSepia)
			strokeRect(screen, rect, 1, colorGold)
			printCentered(screen, "Codex Atlanticus, f. 1033r", rect, rect.CenterY()-8)
			printCentered(screen, "(cliquer pour agrandir)", rect, rect.CenterY()+12)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.HotspotComponent, *components.BoundsComponent](s.entityManager) {
		rect, _ := screenRect(s.entityManager, id, vp.ScrollY)
		if !visible(rect, vp) {
			continue
		}
		c := colorGold
		if tip, ok := ecs.GetComponent[*components.TooltipComponent](s.entityManager, id); ok && tip.IsVisible {
			c = colorCyan
		}
		vector.DrawFilledCircle(screen, float32(rect.CenterX()), float32(rect.CenterY()), float32(rect.W/2), fade(c, 0.5), true)
		vector.StrokeCircle(screen, float32(rect.CenterX()), float32(rect.CenterY()), float32(rect.W/2), 2, c, true)
	}
}

func (s *RenderSystem) drawNav(screen *ebiten.Image, vp *components.ViewportComponent) {
	navID, nav, ok := ecs.First[*components.NavComponent](s.entityManager)
	if !ok {
		return
	}
	rect, _ := screenRect(s.entityManager, navID, vp.ScrollY)
	if nav.Scrolled {
		fillRect(screen, rect, fade(colorPanel, 0.95))
		vector.StrokeLine(screen, 0, float32(rect.Bottom()), float32(rect.W), float32(rect.Bottom()), 1, colorMuted, false)
	}
	ebitenutil.DebugPrintAt(screen, "CODEX 2.0", int(rect.X+24), int(rect.CenterY()-8))

	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.BoundsComponent](s.entityManager) {
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		if !bounds.Fixed {
			continue
		}
		btn, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		drawButton(screen, bounds.Rect, btn, false)
	}
}

func (s *RenderSystem) drawAudio(screen *ebiten.Image, vp *components.ViewportComponent) {
	for _, id := range ecs.GetEntitiesWith2[*components.AudioButtonComponent, *components.BoundsComponent](s.entityManager) {
		btn, _ := ecs.GetComponent[*components.AudioButtonComponent](s.entityManager, id)
		rect, _ := screenRect(s.entityManager, id, vp.ScrollY)
		if !visible(rect, vp) {
			continue
		}
		fillRect(screen, rect, colorPanel)
		border := colorMuted
		if btn.Active {
			border = colorGold
		}
		strokeRect(screen, rect, 1, border)

		label := btn.Label
		switch {
		case btn.Kind == components.AudioAmbient && btn.Active:
			label = "((o)) " + label
		case btn.Kind == components.AudioAmbient:
			label = "(x) " + label
		case btn.Active:
			label = "|| " + label
		default:
			label = "> " + label
		}
		printCentered(screen, label, rect, rect.CenterY()-8)
	}
}

func (s *RenderSystem) drawTooltips(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.TooltipComponent](s.entityManager) {
		tip, _ := ecs.GetComponent[*components.TooltipComponent](s.entityManager, id)
		if !tip.IsVisible {
			continue
		}
		rect := tip.Rect()
		fillRect(screen, rect, tip.BackgroundColor)
		strokeRect(screen, rect, 1, tip.BorderColor)
		ebitenutil.DebugPrintAt(screen, tip.Title, int(rect.X+tip.Padding), int(rect.Y+tip.Padding))
		printWrapped(screen, tip.Body, rect.X+tip.Padding, rect.Y+tip.Padding+28, rect.W-2*tip.Padding)

		closeRect := tip.CloseRect()
		strokeRect(screen, closeRect, 1, colorMuted)
		printCentered(screen, "x", closeRect, closeRect.CenterY()-8)
	}
}

func (s *RenderSystem) drawLightbox(screen *ebiten.Image, vp *components.ViewportComponent) {
	_, lb, ok := ecs.First[*components.LightboxComponent](s.entityManager)
	if !ok || !lb.Open {
		return
	}
	fillRect(screen, viewRect(vp), colorBackdrop)
	fillRect(screen, lb.Content, colorSepia)
	strokeRect(screen, lb.Content, 1, colorGold)

	// 缩放原点
	zx := lb.Content.X + lb.Content.W*lb.ZoomX/100
	zy := lb.Content.Y + lb.Content.H*lb.ZoomY/100
	vector.StrokeCircle(screen, float32(zx), float32(zy), 60, 1, colorCyan, true)
	vector.StrokeLine(screen, float32(zx-8), float32(zy), float32(zx+8), float32(zy), 1, colorCyan, false)
	vector.StrokeLine(screen, float32(zx), float32(zy-8), float32(zx), float32(zy+8), 1, colorCyan, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("zoom origin %.0f%% %.0f%%", lb.ZoomX, lb.ZoomY), int(lb.Content.X+12), int(lb.Content.Y+12))

	strokeRect(screen, lb.Close, 1, colorGold)
	printCentered(screen, "x", lb.Close, lb.Close.CenterY()-8)
}
