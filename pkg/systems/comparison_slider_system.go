package systems

import (
	"math"

	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ComparisonSliderSystem 前后对比滑块系统
//
// 职责：
//   - 在容器内按下开始拖拽并获得焦点，容器外按下失去焦点
//   - 拖拽中位置 = clamp((x - left) / width, Min, Max)，松开停止
//   - 获得焦点时左右方向键按 KeyStep 移动
type ComparisonSliderSystem struct {
	entityManager *ecs.EntityManager
	input         Input
}

// NewComparisonSliderSystem 创建对比滑块系统
func NewComparisonSliderSystem(em *ecs.EntityManager, input Input) *ComparisonSliderSystem {
	return &ComparisonSliderSystem{entityManager: em, input: input}
}

// Update 处理拖拽与键盘输入
func (s *ComparisonSliderSystem) Update(deltaTime float64) {
	blocked := overlayOpen(s.entityManager)
	sy := scrollY(s.entityManager)
	mouseX, mouseY := cursor(s.input)

	for _, id := range ecs.GetEntitiesWith2[*components.ComparisonSliderComponent, *components.BoundsComponent](s.entityManager) {
		slider, _ := ecs.GetComponent[*components.ComparisonSliderComponent](s.entityManager, id)
		rect, _ := screenRect(s.entityManager, id, sy)

		if slider.Hidden || blocked {
			slider.Dragging = false
			continue
		}

		if s.input.IsPointerJustPressed() {
			if rect.Contains(mouseX, mouseY) {
				slider.Dragging = true
				slider.Focused = true
			} else {
				slider.Focused = false
			}
		}

		if slider.Dragging {
			if s.input.IsPointerPressed() {
				slider.Position = SliderPosition(mouseX, rect, slider.Min, slider.Max)
			} else {
				slider.Dragging = false
			}
		}

		if slider.Focused {
			switch {
			case s.input.IsKeyJustPressed(ebiten.KeyArrowLeft):
				slider.Position = stepPosition(slider.Position, -slider.KeyStep, slider.Min, slider.Max)
			case s.input.IsKeyJustPressed(ebiten.KeyArrowRight):
				slider.Position = stepPosition(slider.Position, slider.KeyStep, slider.Min, slider.Max)
			}
		}
	}
}

// SliderPosition 根据指针 x 计算滑块位置
// 容器宽度为 0 时返回中点
func SliderPosition(x float64, container utils.Rect, minPos, maxPos float64) float64 {
	if container.W <= 0 {
		return utils.Clamp(0.5, minPos, maxPos)
	}
	return utils.Clamp((x-container.X)/container.W, minPos, maxPos)
}

// stepPosition 键盘步进，结果四舍五入到 1e-6 以免多次步进后累积误差
func stepPosition(pos, delta, minPos, maxPos float64) float64 {
	return utils.Clamp(math.Round((pos+delta)*1e6)/1e6, minPos, maxPos)
}
