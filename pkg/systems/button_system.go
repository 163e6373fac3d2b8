package systems

import (
	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/ecs"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、按下、点击
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测释放（触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
//   - 灯箱打开时不响应
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	input         Input
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager, input Input) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 更新按钮交互状态
func (s *ButtonSystem) Update(deltaTime float64) {
	mouseX, mouseY := cursor(s.input)
	pressed := s.input.IsPointerPressed()
	released := s.input.IsPointerJustReleased()
	blocked := overlayOpen(s.entityManager)
	sy := scrollY(s.entityManager)

	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.BoundsComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)

		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		rect, _ := screenRect(s.entityManager, id, sy)
		if blocked || !rect.Contains(mouseX, mouseY) {
			button.State = components.UINormal
			continue
		}

		switch {
		case released:
			// 释放瞬间触发回调
			if button.OnClick != nil {
				button.OnClick()
			}
			button.State = components.UIHovered
		case pressed:
			button.State = components.UIClicked
		default:
			button.State = components.UIHovered
		}
	}
}
