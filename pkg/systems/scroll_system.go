package systems

import (
	"log"
	"slices"

	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/config"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// digitKeys 章节快捷键，Key1 对应第一个导航链接
var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// ScrollSystem 页面滚动系统
//
// 职责：
//   - 滚轮、方向键、翻页键滚动页面，滚动范围 [0, DocHeight - Height]
//   - 数字键 1..n 平滑滚动到第 n 个章节（EaseOutCubic）
//   - 维护导航栏 Scrolled 状态
//   - 视口 Locked（灯箱打开）时忽略全部滚动输入
type ScrollSystem struct {
	entityManager *ecs.EntityManager
	input         Input
	cfg           config.NavigationConfig
}

// NewScrollSystem 创建滚动系统
func NewScrollSystem(em *ecs.EntityManager, input Input, cfg config.NavigationConfig) *ScrollSystem {
	return &ScrollSystem{
		entityManager: em,
		input:         input,
		cfg:           cfg,
	}
}

// Update 处理滚动输入并推进平滑滚动动画
func (s *ScrollSystem) Update(deltaTime float64) {
	vp := viewport(s.entityManager)
	if vp == nil {
		return
	}

	if vp.Locked {
		vp.Animating = false
	} else {
		s.handleInput(vp)
		s.advance(vp, deltaTime)
	}

	if _, nav, ok := ecs.First[*components.NavComponent](s.entityManager); ok {
		nav.Scrolled = vp.ScrollY > nav.Threshold
	}
}

func (s *ScrollSystem) handleInput(vp *components.ViewportComponent) {
	if _, wy := s.input.Wheel(); wy != 0 {
		s.ScrollBy(vp, -wy*s.cfg.WheelStep)
	}

	switch {
	case s.input.IsKeyJustPressed(ebiten.KeyArrowDown):
		s.ScrollBy(vp, s.cfg.WheelStep)
	case s.input.IsKeyJustPressed(ebiten.KeyArrowUp):
		s.ScrollBy(vp, -s.cfg.WheelStep)
	case s.input.IsKeyJustPressed(ebiten.KeyPageDown), s.input.IsKeyJustPressed(ebiten.KeySpace):
		s.ScrollBy(vp, vp.Height*0.9)
	case s.input.IsKeyJustPressed(ebiten.KeyPageUp):
		s.ScrollBy(vp, -vp.Height*0.9)
	case s.input.IsKeyJustPressed(ebiten.KeyHome):
		s.ScrollBy(vp, -vp.ScrollY)
	case s.input.IsKeyJustPressed(ebiten.KeyEnd):
		s.ScrollBy(vp, vp.MaxScroll()-vp.ScrollY)
	}

	links := s.sectionOrder()
	for i, key := range digitKeys {
		if i >= len(links) {
			break
		}
		if s.input.IsKeyJustPressed(key) {
			s.ScrollToSection(links[i])
			break
		}
	}
}

// ScrollBy 立即滚动 delta 像素（打断正在进行的平滑滚动）
func (s *ScrollSystem) ScrollBy(vp *components.ViewportComponent, delta float64) {
	vp.Animating = false
	vp.ScrollY = utils.Clamp(vp.ScrollY+delta, 0, vp.MaxScroll())
}

// ScrollToSection 平滑滚动到章节顶部
// 返回: 章节是否存在
func (s *ScrollSystem) ScrollToSection(sectionID string) bool {
	vp := viewport(s.entityManager)
	if vp == nil || vp.Locked {
		return false
	}

	for _, id := range ecs.GetEntitiesWith2[*components.SectionComponent, *components.BoundsComponent](s.entityManager) {
		section, _ := ecs.GetComponent[*components.SectionComponent](s.entityManager, id)
		if section.ID != sectionID {
			continue
		}
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)

		vp.Animating = true
		vp.AnimFrom = vp.ScrollY
		vp.AnimTo = utils.Clamp(bounds.Rect.Y, 0, vp.MaxScroll())
		vp.AnimElapsed = 0
		vp.AnimDuration = s.cfg.ScrollDuration
		log.Printf("[ScrollSystem] scroll to section %q (y=%.0f)", sectionID, vp.AnimTo)
		return true
	}

	log.Printf("[ScrollSystem] unknown section %q", sectionID)
	return false
}

// advance 推进平滑滚动动画
func (s *ScrollSystem) advance(vp *components.ViewportComponent, deltaTime float64) {
	if !vp.Animating {
		return
	}
	vp.AnimElapsed += deltaTime
	t := utils.Progress(vp.AnimElapsed, vp.AnimDuration)
	vp.ScrollY = utils.Clamp(utils.Lerp(vp.AnimFrom, vp.AnimTo, utils.EaseOutCubic(t)), 0, vp.MaxScroll())
	if t >= 1 {
		vp.Animating = false
	}
}

// sectionOrder 返回数字快捷键对应的章节 ID 顺序
// 优先使用导航栏链接，没有导航栏时按章节 Index 排序
func (s *ScrollSystem) sectionOrder() []string {
	if _, nav, ok := ecs.First[*components.NavComponent](s.entityManager); ok && len(nav.Links) > 0 {
		return nav.Links
	}

	ids := ecs.GetEntitiesWith1[*components.SectionComponent](s.entityManager)
	sections := make([]*components.SectionComponent, 0, len(ids))
	for _, id := range ids {
		section, _ := ecs.GetComponent[*components.SectionComponent](s.entityManager, id)
		sections = append(sections, section)
	}
	slices.SortStableFunc(sections, func(a, b *components.SectionComponent) int {
		return a.Index - b.Index
	})

	order := make([]string, len(sections))
	for i, section := range sections {
		order[i] = section.ID
	}
	return order
}
