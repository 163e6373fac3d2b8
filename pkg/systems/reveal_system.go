package systems

import (
	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/config"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/utils"
)

// RevealSystem 滚动淡入系统
//
// 视口底部去掉 BottomMargin 后，元素可见比例达到阈值即激活，激活后不再复位。
type RevealSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.RevealConfig
	clock         float64
}

// NewRevealSystem 创建淡入系统
func NewRevealSystem(em *ecs.EntityManager, cfg config.RevealConfig) *RevealSystem {
	return &RevealSystem{entityManager: em, cfg: cfg}
}

// Update 检查未激活元素的可见比例
func (s *RevealSystem) Update(deltaTime float64) {
	s.clock += deltaTime

	vp := viewport(s.entityManager)
	if vp == nil {
		return
	}
	view := viewRect(vp).Inset(0, 0, s.cfg.BottomMargin, 0)

	for _, id := range ecs.GetEntitiesWith2[*components.RevealComponent, *components.BoundsComponent](s.entityManager) {
		reveal, _ := ecs.GetComponent[*components.RevealComponent](s.entityManager, id)
		if reveal.Active {
			continue
		}
		rect, _ := screenRect(s.entityManager, id, vp.ScrollY)
		if isVisibleEnough(rect, view, reveal.Threshold) {
			reveal.Active = true
			reveal.ActivatedAt = s.clock
		}
	}
}

// Clock 返回系统累计时间（秒），渲染淡入动画使用
func (s *RevealSystem) Clock() float64 {
	return s.clock
}

// isVisibleEnough 元素与视口相交且可见比例不低于阈值
func isVisibleEnough(rect, view utils.Rect, threshold float64) bool {
	ratio := rect.VisibleRatio(view)
	return ratio > 0 && ratio >= threshold
}
