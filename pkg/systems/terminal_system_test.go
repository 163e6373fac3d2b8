package systems

import (
	"testing"

	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/utils"
)

func TestVisibleLines(t *testing.T) {
	tests := []struct {
		name    string
		elapsed float64
		delay   float64
		total   int
		want    int
	}{
		{"开始时第一行立即出现", 0, 0.15, 29, 1},
		{"0.149 秒", 0.149, 0.15, 29, 1},
		{"0.15 秒第二行", 0.15, 0.15, 29, 2},
		{"第 29 行在 4.2 秒", 4.2, 0.15, 29, 29},
		{"之后保持全部", 100, 0.15, 29, 29},
		{"空脚本", 1, 0.15, 0, 0},
		{"零间隔全部出现", 0, 0, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleLines(tt.elapsed, tt.delay, tt.total); got != tt.want {
				t.Errorf("VisibleLines(%v, %v, %d) = %d, 期望 %d", tt.elapsed, tt.delay, tt.total, got, tt.want)
			}
		})
	}
}

func newTerminalFixture() (*ecs.EntityManager, *TerminalSystem, *components.TerminalComponent, *components.ComparisonSliderComponent, [2]*components.ModeButtonComponent) {
	em := ecs.NewEntityManager()

	termID := em.CreateEntity()
	term := &components.TerminalComponent{
		LineDelay: 0.15,
		Lines: []components.TerminalLine{
			{Kind: "comment", Text: "# one"},
			{Kind: "import", Text: "import torch"},
			{Kind: "output", Text: ">>> done"},
		},
	}
	em.AddComponent(termID, term)

	sliderID := addBounds(em, utils.Rect{W: 400, H: 300})
	slider := components.NewComparisonSliderComponent(0.5, 0.05, 0.95, 0.05)
	em.AddComponent(sliderID, slider)

	var buttons [2]*components.ModeButtonComponent
	for i, mode := range []components.TerminalMode{components.ModeVisual, components.ModeCode} {
		id := em.CreateEntity()
		buttons[i] = &components.ModeButtonComponent{Mode: mode, Active: mode == components.ModeVisual}
		em.AddComponent(id, buttons[i])
	}
	return em, NewTerminalSystem(em), term, slider, buttons
}

func TestTerminalSystem_CodeModeStartsOnce(t *testing.T) {
	_, sys, term, slider, buttons := newTerminalFixture()

	sys.Update(1)
	if term.Started {
		t.Fatal("图像模式下不应启动动画")
	}

	sys.SetMode(components.ModeCode)
	if !term.Started || term.Visible != 1 {
		t.Fatalf("进入代码模式: Started=%v Visible=%d, 期望 true/1", term.Started, term.Visible)
	}
	if !slider.Hidden {
		t.Error("代码模式应隐藏对比滑块")
	}
	if buttons[0].Active || !buttons[1].Active {
		t.Error("代码按钮应处于激活状态")
	}

	sys.Update(0.2)
	if term.Visible != 2 {
		t.Errorf("0.2 秒时 Visible = %d, 期望 2", term.Visible)
	}

	sys.SetMode(components.ModeVisual)
	if slider.Hidden {
		t.Error("图像模式应显示对比滑块")
	}
	if !buttons[0].Active || buttons[1].Active {
		t.Error("图像按钮应处于激活状态")
	}

	sys.Update(0.2)
	sys.SetMode(components.ModeCode)
	if term.Visible != 3 {
		t.Errorf("再次进入代码模式不应重播: Visible = %d, 期望 3", term.Visible)
	}
	if !term.Done() {
		t.Error("所有行出现后 Done 应为 true")
	}
}

func TestTerminalSystem_CursorBlinks(t *testing.T) {
	_, sys, term, _, _ := newTerminalFixture()
	sys.SetMode(components.ModeCode)
	if !term.CursorOn {
		t.Error("开始时光标应显示")
	}
	sys.Update(0.6)
	if term.CursorOn {
		t.Error("0.6 秒时光标应隐藏")
	}
	sys.Update(0.5)
	if !term.CursorOn {
		t.Error("1.1 秒时光标应显示")
	}
}

func TestButtonSystem_ClickAndStates(t *testing.T) {
	em := ecs.NewEntityManager()
	newTestViewport(em, 1280, 800, 800)
	input := newMockInput()
	sys := NewButtonSystem(em, input)

	clicks := 0
	id := addBounds(em, utils.Rect{X: 10, Y: 10, W: 100, H: 30})
	button := &components.ButtonComponent{Label: "Code", Enabled: true, OnClick: func() { clicks++ }}
	em.AddComponent(id, button)

	input.move(50, 20)
	sys.Update(1.0 / 60)
	if button.State != components.UIHovered {
		t.Errorf("State = %v, 期望 hovered", button.State)
	}

	input.press(50, 20)
	sys.Update(1.0 / 60)
	input.frame()
	if button.State != components.UIClicked || clicks != 0 {
		t.Errorf("按下: State=%v clicks=%d", button.State, clicks)
	}

	input.release()
	sys.Update(1.0 / 60)
	input.frame()
	if clicks != 1 {
		t.Errorf("释放后 clicks = %d, 期望 1", clicks)
	}

	input.click(500, 500)
	sys.Update(1.0 / 60)
	if clicks != 1 || button.State != components.UINormal {
		t.Errorf("按钮外释放: clicks=%d State=%v", clicks, button.State)
	}

	button.Enabled = false
	input.click(50, 20)
	sys.Update(1.0 / 60)
	if clicks != 1 || button.State != components.UIDisabled {
		t.Errorf("禁用后: clicks=%d State=%v", clicks, button.State)
	}
}
