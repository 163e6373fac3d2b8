package scenes

import (
	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/config"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/systems"
	"github.com/decker502/codexatlas/pkg/utils"
)

// 布局常量（像素）
const (
	navLinkWidth      = 80.0
	navLinkGap        = 8.0
	contentTop        = 120.0 // 章节标题下方内容区的起点
	modeButtonWidth   = 90.0
	manuscriptWidth   = 160.0
	manuscriptHeight  = 220.0
	counterGap        = 16.0
	hotspotSize       = 24.0
	audioButtonWidth  = 200.0
	audioButtonHeight = 32.0
	audioButtonGap    = 8.0
	edgeMargin        = 16.0
)

// viewport 返回视口组件
func (s *ExhibitScene) viewport() *components.ViewportComponent {
	vp, _ := ecs.GetComponent[*components.ViewportComponent](s.entityManager, s.viewportID)
	return vp
}

// setRect 更新实体的矩形
func (s *ExhibitScene) setRect(id ecs.EntityID, r utils.Rect) {
	if b, ok := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id); ok {
		b.Rect = r
	}
}

// layout 按当前视口尺寸计算所有实体的文档坐标
func (s *ExhibitScene) layout() {
	w, h := s.width, s.height
	top := 0.0
	tops := make(map[string]float64, len(config.SectionOrder))
	for _, id := range config.SectionOrder {
		sh := config.SectionHeight(id, h, len(s.cfg.Heritage.Cards))
		s.setRect(s.sectionIDs[id], utils.Rect{X: 0, Y: top, W: w, H: sh})
		tops[id] = top
		top += sh
	}

	vp := s.viewport()
	vp.Width, vp.Height, vp.DocHeight = w, h, top
	vp.ScrollY = utils.Clamp(vp.ScrollY, 0, vp.MaxScroll())
	if vp.Animating {
		vp.AnimTo = utils.Clamp(vp.AnimTo, 0, vp.MaxScroll())
	}

	s.layoutNavigation(w)
	s.layoutHeritage(w, h, tops[config.SectionHeritage])
	s.layoutAI(w, h, tops[config.SectionAI])
	s.layoutOAIS(w, h, tops[config.SectionOAIS])
	s.layoutCounters(w, h, tops[config.SectionStats])
	s.layoutFolio(w, h, tops[config.SectionFolio])
	s.layoutAudio(w, h)

	if _, lb, ok := ecs.First[*components.LightboxComponent](s.entityManager); ok {
		lb.Content, lb.Close = systems.LightboxLayout(w, h)
	}
}

// halves 返回内容区左右两栏（文档坐标）
func halves(w, y, h float64) (left, right utils.Rect) {
	p := config.SectionPadding
	colW := max(0, w/2-1.5*p)
	left = utils.Rect{X: p, Y: y, W: colW, H: h}
	right = utils.Rect{X: w/2 + p/2, Y: y, W: colW, H: h}
	return left, right
}

func (s *ExhibitScene) layoutNavigation(w float64) {
	s.setRect(s.navID, utils.Rect{W: w, H: config.NavHeight})

	n := float64(len(s.navLinkIDs))
	x := w - n*(navLinkWidth+navLinkGap) - edgeMargin
	y := (config.NavHeight - config.ButtonHeight) / 2
	for _, id := range s.navLinkIDs {
		s.setRect(id, utils.Rect{X: x, Y: y, W: navLinkWidth, H: config.ButtonHeight})
		x += navLinkWidth + navLinkGap
	}
}

// layoutHeritage 每张卡片位于一个视口高度的步进中，放在右侧
func (s *ExhibitScene) layoutHeritage(w, h, top float64) {
	for i, id := range s.cardIDs {
		s.setRect(id, utils.Rect{
			X: w * 0.55,
			Y: top + float64(i)*h + h*0.35,
			W: w * 0.4,
			H: h * config.CardHeightRatio,
		})
	}
}

// layoutAI 左栏对比/终端（上方模式按钮），右栏透镜
func (s *ExhibitScene) layoutAI(w, h, top float64) {
	left, right := halves(w, top+contentTop+config.ButtonHeight+16, max(0, h-contentTop-config.ButtonHeight-64))

	x := left.X
	for _, id := range s.modeButtonIDs {
		s.setRect(id, utils.Rect{X: x, Y: top + contentTop, W: modeButtonWidth, H: config.ButtonHeight})
		x += modeButtonWidth + navLinkGap
	}
	s.setRect(s.sliderID, left)
	s.setRect(s.terminalID, left)
	s.setRect(s.lensID, right)
}

// layoutOAIS 手稿在左栏垂直居中，投放区占右栏中部
func (s *ExhibitScene) layoutOAIS(w, h, top float64) {
	dd, ok := ecs.GetComponent[*components.DragDropComponent](s.entityManager, s.dragDropID)
	if !ok {
		return
	}
	left, right := halves(w, top+h*0.25, h*0.5)
	dd.Manuscript = utils.Rect{
		X: left.CenterX() - manuscriptWidth/2,
		Y: left.CenterY() - manuscriptHeight/2,
		W: manuscriptWidth,
		H: manuscriptHeight,
	}
	dd.DropZone = right
}

// layoutCounters 数字横向等分
func (s *ExhibitScene) layoutCounters(w, h, top float64) {
	n := len(s.counterIDs)
	if n == 0 {
		return
	}
	p := config.SectionPadding
	cellW := (w - 2*p) / float64(n)
	cellH := max(60, h/2-contentTop-p)
	for i, id := range s.counterIDs {
		s.setRect(id, utils.Rect{
			X: p + float64(i)*cellW,
			Y: top + contentTop,
			W: max(0, cellW-counterGap),
			H: cellH,
		})
	}
}

// layoutFolio 左栏对开页，右栏热点图；热点按相对位置居中
func (s *ExhibitScene) layoutFolio(w, h, top float64) {
	left, right := halves(w, top+contentTop, max(0, h-contentTop-60))
	s.setRect(s.folioID, left)
	s.setRect(s.hotspotPanel, right)

	for _, id := range s.hotspotIDs {
		hs, _ := ecs.GetComponent[*components.HotspotComponent](s.entityManager, id)
		cx := right.X + hs.RelX*right.W
		cy := right.Y + hs.RelY*right.H
		s.setRect(id, utils.Rect{X: cx - hotspotSize/2, Y: cy - hotspotSize/2, W: hotspotSize, H: hotspotSize})
	}
}

// layoutAudio 氛围音按钮在右下角，旁白按钮向上堆叠
func (s *ExhibitScene) layoutAudio(w, h float64) {
	for i, id := range s.audioIDs {
		y := h - edgeMargin - float64(i+1)*audioButtonHeight - float64(i)*audioButtonGap
		s.setRect(id, utils.Rect{X: w - edgeMargin - audioButtonWidth, Y: y, W: audioButtonWidth, H: audioButtonHeight})
	}
}
