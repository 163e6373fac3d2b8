package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/codexatlas/internal/constellation"
	"github.com/decker502/codexatlas/pkg/canvas"
	"github.com/decker502/codexatlas/pkg/config"
)

func TestReconfigureOnChange(t *testing.T) {
	field := constellation.NewField(constellation.DefaultConfig(), rand.New(rand.NewSource(1)))
	field.Resize(800, 400)
	if field.Count() != 40 {
		t.Fatalf("期望初始 40 个粒子，实际 %d", field.Count())
	}
	runner := constellation.NewRunner(field, &constellation.Recorder{}, time.Millisecond)
	onChange := reconfigureOnChange(runner)

	exhibit := config.DefaultExhibitConfig()
	exhibit.Constellation.AreaPerParticle = 16000
	onChange(exhibit)
	if field.Count() != 20 {
		t.Errorf("重新配置后期望 20 个粒子，实际 %d", field.Count())
	}

	// 非法配置保持原样
	exhibit.Constellation.AreaPerParticle = 0
	onChange(exhibit)
	if field.Count() != 20 {
		t.Errorf("非法配置不应改变粒子场，实际 %d", field.Count())
	}
}

func TestHandleTUIEventFocus(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("初始化模拟终端失败: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	tc := canvas.NewTcellCanvas(screen, 0, 0)
	field := constellation.NewField(constellation.DefaultConfig(), rand.New(rand.NewSource(1)))
	field.Resize(tc.SurfaceSize())
	runner := constellation.NewRunner(field, tc, time.Millisecond)

	if !handleTUIEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone), screen, tc, runner) {
		t.Fatal("鼠标事件不应退出")
	}
	if !field.Cursor().Valid {
		t.Fatal("鼠标移动后应设置光标")
	}

	tests := []struct {
		name      string
		focused   bool
		wantValid bool
	}{
		{"获得焦点保持光标", true, true},
		{"失去焦点清除光标", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !handleTUIEvent(tcell.NewEventFocus(tt.focused), screen, tc, runner) {
				t.Fatal("焦点事件不应退出")
			}
			if field.Cursor().Valid != tt.wantValid {
				t.Errorf("Cursor().Valid = %v, 期望 %v", field.Cursor().Valid, tt.wantValid)
			}
		})
	}
}
