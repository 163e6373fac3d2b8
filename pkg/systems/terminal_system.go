package systems

import (
	"log"
	"math"

	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/ecs"
)

// cursorBlinkPeriod 终端光标闪烁周期（秒）
const cursorBlinkPeriod = 1.0

// TerminalSystem AI 章节的模式切换与终端动画
//
// 切换到代码模式时隐藏对比滑块，并在第一次进入时启动逐行动画：
// 第 i 行在 i × LineDelay 秒时出现，最后一行后跟随闪烁光标。
type TerminalSystem struct {
	entityManager *ecs.EntityManager
}

// NewTerminalSystem 创建终端系统
func NewTerminalSystem(em *ecs.EntityManager) *TerminalSystem {
	return &TerminalSystem{entityManager: em}
}

// SetMode 切换展示模式
func (s *TerminalSystem) SetMode(mode components.TerminalMode) {
	_, term, ok := ecs.First[*components.TerminalComponent](s.entityManager)
	if !ok {
		return
	}
	term.Mode = mode

	for _, id := range ecs.GetEntitiesWith1[*components.ModeButtonComponent](s.entityManager) {
		btn, _ := ecs.GetComponent[*components.ModeButtonComponent](s.entityManager, id)
		btn.Active = btn.Mode == mode
	}
	for _, id := range ecs.GetEntitiesWith1[*components.ComparisonSliderComponent](s.entityManager) {
		slider, _ := ecs.GetComponent[*components.ComparisonSliderComponent](s.entityManager, id)
		slider.Hidden = mode == components.ModeCode
	}

	if mode == components.ModeCode && !term.Started {
		term.Started = true
		term.Elapsed = 0
		term.Visible = 0
		log.Printf("[TerminalSystem] start animation (%d lines)", len(term.Lines))
		s.advance(term, 0)
	}
}

// Update 推进逐行动画与光标闪烁
func (s *TerminalSystem) Update(deltaTime float64) {
	_, term, ok := ecs.First[*components.TerminalComponent](s.entityManager)
	if !ok || !term.Started {
		return
	}
	s.advance(term, deltaTime)
}

func (s *TerminalSystem) advance(term *components.TerminalComponent, deltaTime float64) {
	term.Elapsed += deltaTime
	term.Visible = VisibleLines(term.Elapsed, term.LineDelay, len(term.Lines))
	term.CursorOn = math.Mod(term.Elapsed, cursorBlinkPeriod) < cursorBlinkPeriod/2
}

// VisibleLines 返回 elapsed 秒时已出现的行数
// 第 i 行（从 0 开始）在 i × delay 秒出现
func VisibleLines(elapsed, delay float64, total int) int {
	if total == 0 || elapsed < 0 {
		return 0
	}
	if delay <= 0 {
		return total
	}
	n := int(math.Floor(elapsed/delay+1e-9)) + 1
	return min(n, total)
}
