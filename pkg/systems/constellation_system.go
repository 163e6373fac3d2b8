package systems

import (
	"log"

	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// ConstellationSystem 首屏粒子星座
//
// 职责：
//   - 首屏尺寸变化时替换绘制表面并重新生成粒子
//   - 指针在首屏内时设置排斥光标（表面坐标），离开时清除
//   - 每帧推进粒子，Draw 时把表面贴到首屏位置
type ConstellationSystem struct {
	entityManager *ecs.EntityManager
	input         Input
}

// NewConstellationSystem 创建星座系统
func NewConstellationSystem(em *ecs.EntityManager, input Input) *ConstellationSystem {
	return &ConstellationSystem{entityManager: em, input: input}
}

// Update 同步表面尺寸与光标，推进一帧
func (s *ConstellationSystem) Update(deltaTime float64) {
	mouseX, mouseY := cursor(s.input)
	blocked := overlayOpen(s.entityManager)
	sy := scrollY(s.entityManager)

	for _, id := range ecs.GetEntitiesWith2[*components.ConstellationComponent, *components.BoundsComponent](s.entityManager) {
		cc, _ := ecs.GetComponent[*components.ConstellationComponent](s.entityManager, id)
		if cc.Field == nil {
			continue
		}
		rect, _ := screenRect(s.entityManager, id, sy)
		s.syncSurface(cc, int(rect.W), int(rect.H))

		if !blocked && rect.Contains(mouseX, mouseY) {
			cc.Field.SetCursor(mouseX-rect.X, mouseY-rect.Y)
		} else {
			cc.Field.ClearCursor()
		}
		cc.Field.Update()
	}
}

// syncSurface 尺寸变化时替换表面并重建粒子
func (s *ConstellationSystem) syncSurface(cc *components.ConstellationComponent, w, h int) {
	fw, fh := cc.Field.Size()
	if fw == w && fh == h && (cc.Surface != nil || w <= 0 || h <= 0) {
		return
	}

	if cc.Surface != nil {
		cc.Surface.Deallocate()
		cc.Surface = nil
	}
	if w > 0 && h > 0 {
		cc.Surface = ebiten.NewImage(w, h)
	}
	if cc.Canvas != nil {
		cc.Canvas.SetTarget(cc.Surface)
	}
	cc.Field.Resize(w, h)
	log.Printf("[ConstellationSystem] surface %dx%d, %d particles", w, h, cc.Field.Count())
}

// Draw 绘制粒子并贴到首屏位置（首屏滚出视口时跳过）
func (s *ConstellationSystem) Draw(screen *ebiten.Image) {
	sy := scrollY(s.entityManager)
	screenH := float64(screen.Bounds().Dy())

	for _, id := range ecs.GetEntitiesWith2[*components.ConstellationComponent, *components.BoundsComponent](s.entityManager) {
		cc, _ := ecs.GetComponent[*components.ConstellationComponent](s.entityManager, id)
		if cc.Field == nil || cc.Surface == nil || cc.Canvas == nil {
			continue
		}
		rect, _ := screenRect(s.entityManager, id, sy)
		if rect.Bottom() <= 0 || rect.Y >= screenH {
			continue
		}

		cc.Field.Draw(cc.Canvas)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(rect.X, rect.Y)
		screen.DrawImage(cc.Surface, op)
	}
}
