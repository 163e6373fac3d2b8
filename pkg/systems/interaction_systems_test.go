package systems

import (
	"testing"

	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/config"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestMagicLensSystem_EnterMoveLeave(t *testing.T) {
	em := ecs.NewEntityManager()
	newTestViewport(em, 1280, 800, 800)
	input := newMockInput()
	sys := NewMagicLensSystem(em, input)

	id := addBounds(em, utils.Rect{X: 100, Y: 100, W: 400, H: 200})
	lens := components.NewMagicLensComponent(80)
	em.AddComponent(id, lens)

	if lens.RevealRadius != 0 || lens.RevealX != 50 {
		t.Fatalf("初始状态不应揭示: %+v", lens)
	}

	input.move(200, 150)
	sys.Update(1.0 / 60)
	if !lens.CursorVisible {
		t.Error("进入区域应显示光标")
	}
	if lens.RevealX != 25 || lens.RevealY != 25 || lens.RevealRadius != 80 {
		t.Errorf("揭示圆 = (%v%%, %v%%, r=%v), 期望 (25%%, 25%%, r=80)", lens.RevealX, lens.RevealY, lens.RevealRadius)
	}
	if lens.CursorX != 100 || lens.CursorY != 50 {
		t.Errorf("光标位置 = (%v, %v), 期望 (100, 50)", lens.CursorX, lens.CursorY)
	}

	input.move(700, 150)
	sys.Update(1.0 / 60)
	if lens.CursorVisible || lens.RevealRadius != 0 || lens.RevealX != 50 || lens.RevealY != 50 {
		t.Errorf("离开区域应收回揭示圆: %+v", lens)
	}
}

func newDragDropFixture() (*ecs.EntityManager, *mockInput, *DragDropSystem, *components.DragDropComponent) {
	em := ecs.NewEntityManager()
	newTestViewport(em, 1280, 800, 800)
	input := newMockInput()

	id := em.CreateEntity()
	dd := &components.DragDropComponent{
		Manuscript:         utils.Rect{X: 100, Y: 300, W: 120, H: 160},
		DropZone:           utils.Rect{X: 800, Y: 250, W: 300, H: 260},
		ProcessingDuration: 2.0,
	}
	em.AddComponent(id, dd)
	return em, input, NewDragDropSystem(em, input), dd
}

func TestDragDropSystem_DropAndArchive(t *testing.T) {
	_, input, sys, dd := newDragDropFixture()

	input.press(130, 340)
	sys.Update(1.0 / 60)
	input.frame()
	if dd.State != components.ArchiveDragging {
		t.Fatalf("State = %v, 期望 dragging", dd.State)
	}

	input.move(900, 400)
	sys.Update(1.0 / 60)
	if !dd.DragOver {
		t.Error("指针在投放区上方时应高亮")
	}
	if dd.DragX != 870 || dd.DragY != 360 {
		t.Errorf("手稿位置 = (%v, %v), 期望 (870, 360)", dd.DragX, dd.DragY)
	}

	input.release()
	sys.Update(1.0 / 60)
	input.frame()
	if dd.State != components.ArchiveProcessing || !dd.ZoneIconsHidden || dd.DragOver {
		t.Fatalf("投放后: State=%v ZoneIconsHidden=%v DragOver=%v", dd.State, dd.ZoneIconsHidden, dd.DragOver)
	}

	sys.Update(1.9)
	if dd.State != components.ArchiveProcessing {
		t.Error("1.9 秒时应仍在处理")
	}
	sys.Update(0.2)
	if dd.State != components.ArchiveArchived || !dd.PackageVisible || !dd.ResultVisible {
		t.Errorf("超过 2 秒后: State=%v PackageVisible=%v ResultVisible=%v", dd.State, dd.PackageVisible, dd.ResultVisible)
	}
}

func TestDragDropSystem_ReleaseOutsideSnapsBack(t *testing.T) {
	_, input, sys, dd := newDragDropFixture()

	input.press(130, 340)
	sys.Update(1.0 / 60)
	input.frame()

	input.move(500, 400)
	sys.Update(1.0 / 60)
	if dd.DragOver {
		t.Error("指针不在投放区时不应高亮")
	}
	input.release()
	sys.Update(1.0 / 60)
	if dd.State != components.ArchiveIdle {
		t.Errorf("投放区外松开 State = %v, 期望 idle", dd.State)
	}
}

func TestDragDropSystem_PressOutsideManuscript(t *testing.T) {
	_, input, sys, dd := newDragDropFixture()
	input.press(10, 10)
	sys.Update(1.0 / 60)
	if dd.State != components.ArchiveIdle {
		t.Errorf("手稿外按下 State = %v, 期望 idle", dd.State)
	}
}

func newLightboxFixture() (*ecs.EntityManager, *mockInput, *LightboxSystem, *components.LightboxComponent, *components.ViewportComponent) {
	em := ecs.NewEntityManager()
	vp := newTestViewport(em, 1280, 800, 4000)
	input := newMockInput()

	id := addBounds(em, utils.Rect{X: 100, Y: 3300, W: 400, H: 500})
	lb := components.NewLightboxComponent()
	em.AddComponent(id, lb)
	vp.ScrollY = 3200
	return em, input, NewLightboxSystem(em, input), lb, vp
}

func TestLightboxSystem_OpenAndClose(t *testing.T) {
	tests := []struct {
		name  string
		close func(in *mockInput)
	}{
		{"Escape", func(in *mockInput) { in.key(ebiten.KeyEscape) }},
		{"关闭按钮", func(in *mockInput) { in.click(1240, 40) }},
		{"点击背景", func(in *mockInput) { in.click(20, 400) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, input, sys, lb, vp := newLightboxFixture()

			input.click(200, 300) // 对开页屏幕 y = 100..600
			sys.Update(1.0 / 60)
			input.frame()
			if !lb.Open || !vp.Locked {
				t.Fatalf("点击对开页应打开灯箱并锁定滚动: Open=%v Locked=%v", lb.Open, vp.Locked)
			}

			tt.close(input)
			sys.Update(1.0 / 60)
			input.frame()
			if lb.Open || vp.Locked {
				t.Errorf("关闭后: Open=%v Locked=%v", lb.Open, vp.Locked)
			}
			if !lb.ClosedThisFrame {
				t.Error("关闭的那一帧应标记 ClosedThisFrame")
			}

			sys.Update(1.0 / 60)
			if lb.ClosedThisFrame {
				t.Error("下一帧应清除 ClosedThisFrame")
			}
		})
	}
}

// TestLightboxCloseClickDoesNotReachPage 点击背景关闭灯箱时，背景下的按钮不响应
func TestLightboxCloseClickDoesNotReachPage(t *testing.T) {
	em, input, sys, lb, _ := newLightboxFixture()
	// 固定在右下角，位于内容区 (128, 80, 1024, 640) 之外
	btnID := em.CreateEntity()
	em.AddComponent(btnID, &components.BoundsComponent{Rect: utils.Rect{X: 1200, Y: 740, W: 40, H: 40}, Fixed: true})
	btn := &components.AudioButtonComponent{Kind: components.AudioAmbient, TrackID: "ambient"}
	em.AddComponent(btnID, btn)
	audioSys := NewAudioSystem(em, input, nil, config.DefaultExhibitConfig().Audio)
	notices := 0
	audioSys.OnPlaceholder = func(string) { notices++ }

	update := func() {
		sys.Update(1.0 / 60)
		audioSys.Update(1.0 / 60)
		input.frame()
	}

	input.click(200, 300)
	update()
	if !lb.Open {
		t.Fatal("灯箱应打开")
	}

	input.click(1220, 760)
	update()
	if lb.Open {
		t.Fatal("点击背景应关闭灯箱")
	}
	if btn.Active || notices != 0 {
		t.Errorf("关闭灯箱的点击不应切换氛围音: Active=%v notices=%d", btn.Active, notices)
	}

	// 之后的点击正常到达按钮
	input.click(1220, 760)
	update()
	if !btn.Active {
		t.Error("灯箱关闭后再次点击应切换氛围音")
	}
}

func TestLightboxSystem_ClickInsideContentKeepsOpen(t *testing.T) {
	_, input, sys, lb, _ := newLightboxFixture()
	input.click(200, 300)
	sys.Update(1.0 / 60)
	input.frame()

	// 内容区 = (128, 80, 1024, 640)
	input.click(128+256, 80+480)
	sys.Update(1.0 / 60)
	if !lb.Open {
		t.Fatal("点击内容区不应关闭")
	}
	if lb.ZoomX != 25 || lb.ZoomY != 75 {
		t.Errorf("缩放原点 = (%v, %v), 期望 (25, 75)", lb.ZoomX, lb.ZoomY)
	}
}

func TestOverlayBlocksPageInteraction(t *testing.T) {
	em, input, sys, lb, _ := newLightboxFixture()
	lensID := addBounds(em, utils.Rect{X: 0, Y: 3200, W: 1280, H: 800})
	lens := components.NewMagicLensComponent(80)
	em.AddComponent(lensID, lens)
	lensSys := NewMagicLensSystem(em, input)

	input.click(200, 300)
	sys.Update(1.0 / 60)
	input.frame()
	if !lb.Open {
		t.Fatal("灯箱应打开")
	}

	input.move(640, 400)
	lensSys.Update(1.0 / 60)
	if lens.CursorVisible {
		t.Error("灯箱打开时放大镜不应响应")
	}
}

func newHotspotFixture() (*ecs.EntityManager, *mockInput, *HotspotSystem, map[string]*components.TooltipComponent) {
	em := ecs.NewEntityManager()
	newTestViewport(em, 1280, 800, 800)
	input := newMockInput()
	cfg := config.DefaultExhibitConfig().Hotspots

	tips := map[string]*components.TooltipComponent{}
	for _, h := range []struct {
		id   string
		x, y float64
	}{{"mercury", 600, 100}, {"fold", 10, 100}, {"writing", 600, 600}} {
		id := addBounds(em, utils.Rect{X: h.x, Y: h.y, W: 20, H: 20})
		em.AddComponent(id, &components.HotspotComponent{ID: h.id})
		tip := components.NewTooltipComponent(h.id, "", cfg.TooltipWidth, cfg.TooltipHeight)
		em.AddComponent(id, tip)
		tips[h.id] = tip
	}
	return em, input, NewHotspotSystem(em, input, cfg), tips
}

func TestHotspotSystem_ToggleAndExclusive(t *testing.T) {
	_, input, sys, tips := newHotspotFixture()

	input.click(610, 110)
	sys.Update(1.0 / 60)
	input.frame()
	if !tips["mercury"].IsVisible {
		t.Fatal("点击热点应打开提示框")
	}
	if tips["mercury"].X != 450 || tips["mercury"].Y != 135 {
		t.Errorf("提示框位置 = (%v, %v), 期望 (450, 135)", tips["mercury"].X, tips["mercury"].Y)
	}

	input.click(20, 110)
	sys.Update(1.0 / 60)
	input.frame()
	if tips["mercury"].IsVisible || !tips["fold"].IsVisible {
		t.Error("打开另一个热点应关闭之前的提示框")
	}
	if tips["fold"].X != 20 {
		t.Errorf("左侧贴边 X = %v, 期望 20", tips["fold"].X)
	}

	input.click(20, 110)
	sys.Update(1.0 / 60)
	input.frame()
	if tips["fold"].IsVisible {
		t.Error("再次点击同一热点应关闭提示框")
	}
	if _, ok := sys.ActiveTooltip(); ok {
		t.Error("没有打开的提示框")
	}
}

func TestHotspotSystem_FlipAboveAndOutsideClick(t *testing.T) {
	_, input, sys, tips := newHotspotFixture()

	input.click(610, 610)
	sys.Update(1.0 / 60)
	input.frame()
	tip := tips["writing"]
	if !tip.IsVisible || tip.Y != 280 {
		t.Fatalf("下方放不下应翻到上方: Visible=%v Y=%v, 期望 Y=280", tip.IsVisible, tip.Y)
	}
	if id, ok := sys.ActiveTooltip(); !ok || id != "writing" {
		t.Errorf("ActiveTooltip = %q, %v", id, ok)
	}

	// 点击提示框内部不关闭
	input.click(500, 400)
	sys.Update(1.0 / 60)
	input.frame()
	if !tip.IsVisible {
		t.Error("点击提示框内部不应关闭")
	}

	// 点击外部关闭
	input.click(1200, 750)
	sys.Update(1.0 / 60)
	input.frame()
	if tip.IsVisible {
		t.Error("点击外部应关闭提示框")
	}
}

func TestHotspotSystem_CloseButton(t *testing.T) {
	_, input, sys, tips := newHotspotFixture()

	input.click(610, 110)
	sys.Update(1.0 / 60)
	input.frame()

	closeRect := tips["mercury"].CloseRect()
	input.click(int(closeRect.CenterX()), int(closeRect.CenterY()))
	sys.Update(1.0 / 60)
	if tips["mercury"].IsVisible {
		t.Error("点击关闭按钮应关闭提示框")
	}
}
