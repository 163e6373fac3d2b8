package components

import (
	"math"
	"testing"

	"github.com/decker502/codexatlas/pkg/utils"
)

func TestEffectForCard(t *testing.T) {
	tests := []struct {
		cardID    string
		want      VisualEffect
		wantClass string
	}{
		{"danger", EffectDanger, "effect-danger"},
		{"codex", EffectHighlight, "effect-highlight"},
		{"origin", EffectNone, ""},
		{"", EffectNone, ""},
	}
	for _, tt := range tests {
		t.Run(tt.cardID, func(t *testing.T) {
			got := EffectForCard(tt.cardID)
			if got != tt.want {
				t.Errorf("EffectForCard(%q) = %v, 期望 %v", tt.cardID, got, tt.want)
			}
			if got.String() != tt.wantClass {
				t.Errorf("String() = %q, 期望 %q", got.String(), tt.wantClass)
			}
		})
	}
}

func TestComparisonSliderClip(t *testing.T) {
	s := NewComparisonSliderComponent(0.5, 0.05, 0.95, 0.05)
	if s.ClipRight() != 50 {
		t.Errorf("ClipRight = %v, 期望 50", s.ClipRight())
	}
	s.Position = 0.05
	if math.Abs(s.ClipRight()-95) > 1e-9 {
		t.Errorf("ClipRight = %v, 期望 95", s.ClipRight())
	}
	if s.Role != "slider" || s.AriaLabel == "" {
		t.Errorf("无障碍属性未设置: role=%q label=%q", s.Role, s.AriaLabel)
	}
}

func TestCounterDisplay(t *testing.T) {
	c := &CounterComponent{Target: 1119, Current: 17.9}
	if c.Display() != 17 {
		t.Errorf("Display = %d, 期望 17", c.Display())
	}
	c.Done = true
	if c.Display() != 1119 {
		t.Errorf("Display after done = %d, 期望 1119", c.Display())
	}
}

func TestBoundsScreenRect(t *testing.T) {
	b := &BoundsComponent{Rect: utils.Rect{X: 10, Y: 900, W: 100, H: 50}}
	if got := b.ScreenRect(800); got.Y != 100 {
		t.Errorf("ScreenRect.Y = %v, 期望 100", got.Y)
	}
	b.Fixed = true
	if got := b.ScreenRect(800); got.Y != 900 {
		t.Errorf("固定元素不随滚动移动: Y = %v, 期望 900", got.Y)
	}
}

func TestViewportMaxScroll(t *testing.T) {
	v := &ViewportComponent{Height: 800, DocHeight: 5000}
	if v.MaxScroll() != 4200 {
		t.Errorf("MaxScroll = %v, 期望 4200", v.MaxScroll())
	}
	v.DocHeight = 600
	if v.MaxScroll() != 0 {
		t.Errorf("MaxScroll = %v, 期望 0", v.MaxScroll())
	}
}

func TestArchiveStateString(t *testing.T) {
	states := map[ArchiveState]string{
		ArchiveIdle:       "idle",
		ArchiveDragging:   "dragging",
		ArchiveProcessing: "processing",
		ArchiveArchived:   "archived",
	}
	for s, want := range states {
		if s.String() != want {
			t.Errorf("%d.String() = %q, 期望 %q", s, s.String(), want)
		}
	}
}

func TestAudioIcon(t *testing.T) {
	a := &AudioButtonComponent{Kind: AudioAmbient}
	if a.Icon() != "🔇" {
		t.Errorf("Icon = %q", a.Icon())
	}
	a.Active = true
	if a.Icon() != "🔊" {
		t.Errorf("Icon = %q", a.Icon())
	}
}
