package systems

import (
	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/config"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/utils"
)

// HotspotSystem 热点提示框系统
//
// 职责：
//   - 点击热点切换其提示框，并关闭其他提示框
//   - 打开时按视口计算提示框位置（水平居中、左右贴边、下方放不下翻到上方）
//   - 点击提示框和热点以外的区域、或点击提示框关闭按钮时关闭
type HotspotSystem struct {
	entityManager *ecs.EntityManager
	input         Input
	cfg           config.HotspotsConfig
}

// NewHotspotSystem 创建热点系统
func NewHotspotSystem(em *ecs.EntityManager, input Input, cfg config.HotspotsConfig) *HotspotSystem {
	return &HotspotSystem{entityManager: em, input: input, cfg: cfg}
}

// Update 处理点击
func (s *HotspotSystem) Update(deltaTime float64) {
	if !s.input.IsPointerJustReleased() || overlayOpen(s.entityManager) {
		return
	}
	vp := viewport(s.entityManager)
	if vp == nil {
		return
	}
	mouseX, mouseY := cursor(s.input)
	ids := ecs.GetEntitiesWith2[*components.HotspotComponent, *components.TooltipComponent](s.entityManager)

	// 关闭按钮
	for _, id := range ids {
		tip, _ := ecs.GetComponent[*components.TooltipComponent](s.entityManager, id)
		if tip.IsVisible && tip.CloseRect().Contains(mouseX, mouseY) {
			tip.IsVisible = false
			return
		}
	}

	// 热点
	for _, id := range ids {
		rect, ok := screenRect(s.entityManager, id, vp.ScrollY)
		if !ok || !rect.Contains(mouseX, mouseY) {
			continue
		}
		s.toggle(ids, id, rect, vp)
		return
	}

	// 点击在打开的提示框外
	for _, id := range ids {
		tip, _ := ecs.GetComponent[*components.TooltipComponent](s.entityManager, id)
		if tip.IsVisible && !tip.Rect().Contains(mouseX, mouseY) {
			tip.IsVisible = false
		}
	}
}

// toggle 切换目标热点的提示框，关闭其他提示框
func (s *HotspotSystem) toggle(ids []ecs.EntityID, target ecs.EntityID, anchor utils.Rect, vp *components.ViewportComponent) {
	for _, id := range ids {
		tip, _ := ecs.GetComponent[*components.TooltipComponent](s.entityManager, id)
		if id != target {
			tip.IsVisible = false
			continue
		}
		tip.X, tip.Y = utils.TooltipPosition(anchor, vp.Width, vp.Height, tip.Width, tip.Height, s.cfg.Margin, s.cfg.Gap)
		tip.IsVisible = !tip.IsVisible
	}
}

// ActiveTooltip 返回当前打开的提示框所属的热点 ID
func (s *HotspotSystem) ActiveTooltip() (string, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.HotspotComponent, *components.TooltipComponent](s.entityManager) {
		tip, _ := ecs.GetComponent[*components.TooltipComponent](s.entityManager, id)
		if tip.IsVisible {
			hs, _ := ecs.GetComponent[*components.HotspotComponent](s.entityManager, id)
			return hs.ID, true
		}
	}
	return "", false
}
