package systems

import (
	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/utils"
)

// MagicLensSystem 放大镜系统
//
// 指针进入区域时显示镜头光标，移动时揭示圆心跟随指针（百分比坐标），
// 离开时隐藏光标并把揭示圆收回到中心、半径 0。
type MagicLensSystem struct {
	entityManager *ecs.EntityManager
	input         Input
}

// NewMagicLensSystem 创建放大镜系统
func NewMagicLensSystem(em *ecs.EntityManager, input Input) *MagicLensSystem {
	return &MagicLensSystem{entityManager: em, input: input}
}

// Update 根据指针位置更新镜头
func (s *MagicLensSystem) Update(deltaTime float64) {
	mouseX, mouseY := cursor(s.input)
	blocked := overlayOpen(s.entityManager)
	sy := scrollY(s.entityManager)

	for _, id := range ecs.GetEntitiesWith2[*components.MagicLensComponent, *components.BoundsComponent](s.entityManager) {
		lens, _ := ecs.GetComponent[*components.MagicLensComponent](s.entityManager, id)
		rect, _ := screenRect(s.entityManager, id, sy)

		if !blocked && rect.Contains(mouseX, mouseY) {
			lens.CursorVisible = true
			lens.CursorX = mouseX - rect.X
			lens.CursorY = mouseY - rect.Y
			lens.RevealX, lens.RevealY = utils.PercentWithin(mouseX, mouseY, rect)
			lens.RevealRadius = lens.Radius
		} else if lens.CursorVisible {
			lens.CursorVisible = false
			lens.RevealX, lens.RevealY = 50, 50
			lens.RevealRadius = 0
		}
	}
}
