package systems

import (
	"log"

	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 灯箱布局
const (
	lightboxContentRatio = 0.8
	lightboxCloseSize    = 40.0
	lightboxCloseMargin  = 20.0
)

// LightboxSystem 对开页灯箱
//
// 职责：
//   - 点击对开页打开灯箱并锁定页面滚动
//   - 关闭按钮、点击背景、Escape 关闭灯箱并解除锁定
//   - 指针在内容区移动时更新缩放原点
type LightboxSystem struct {
	entityManager *ecs.EntityManager
	input         Input
}

// NewLightboxSystem 创建灯箱系统
func NewLightboxSystem(em *ecs.EntityManager, input Input) *LightboxSystem {
	return &LightboxSystem{entityManager: em, input: input}
}

// Update 处理打开、关闭与缩放原点
func (s *LightboxSystem) Update(deltaTime float64) {
	folioID, lb, ok := ecs.First[*components.LightboxComponent](s.entityManager)
	if !ok {
		return
	}
	lb.ClosedThisFrame = false
	vp := viewport(s.entityManager)
	if vp == nil {
		return
	}
	lb.Content, lb.Close = LightboxLayout(vp.Width, vp.Height)
	mouseX, mouseY := cursor(s.input)
	clicked := s.input.IsPointerJustReleased()

	if !lb.Open {
		folio, ok := screenRect(s.entityManager, folioID, vp.ScrollY)
		if ok && clicked && folio.Contains(mouseX, mouseY) {
			lb.Open = true
			vp.Locked = true
			log.Printf("[LightboxSystem] open")
		}
		return
	}

	switch {
	case s.input.IsKeyJustPressed(ebiten.KeyEscape):
		s.close(lb, vp)
		return
	case clicked && lb.Close.Contains(mouseX, mouseY):
		s.close(lb, vp)
		return
	case clicked && !lb.Content.Contains(mouseX, mouseY):
		// 点击背景
		s.close(lb, vp)
		return
	}

	if lb.Content.Contains(mouseX, mouseY) {
		lb.ZoomX, lb.ZoomY = utils.PercentWithin(mouseX, mouseY, lb.Content)
	}
}

func (s *LightboxSystem) close(lb *components.LightboxComponent, vp *components.ViewportComponent) {
	lb.Open = false
	lb.ClosedThisFrame = true
	vp.Locked = false
	log.Printf("[LightboxSystem] close")
}

// LightboxLayout 计算灯箱内容区与关闭按钮的屏幕矩形
// 内容区居中，占视口的 80%；关闭按钮在右上角
func LightboxLayout(viewW, viewH float64) (content, closeBtn utils.Rect) {
	w := viewW * lightboxContentRatio
	h := viewH * lightboxContentRatio
	content = utils.Rect{X: (viewW - w) / 2, Y: (viewH - h) / 2, W: w, H: h}
	closeBtn = utils.Rect{
		X: viewW - lightboxCloseSize - lightboxCloseMargin,
		Y: lightboxCloseMargin,
		W: lightboxCloseSize,
		H: lightboxCloseSize,
	}
	return content, closeBtn
}
