package systems

import (
	"math"
	"testing"

	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/utils"
)

// 视口 800 高；章节从文档 y=800 开始，三张卡各占一屏
func newHeritageFixture() (*ecs.EntityManager, *components.ViewportComponent, *components.HeritageComponent, []*components.StoryCardComponent) {
	em := ecs.NewEntityManager()
	vp := newTestViewport(em, 1280, 800, 5000)

	sectionID := addBounds(em, utils.Rect{Y: 800, W: 1280, H: 2400})
	heritage := &components.HeritageComponent{BandMargin: 0.4}
	em.AddComponent(sectionID, heritage)

	var cards []*components.StoryCardComponent
	for i, id := range []string{"origin", "danger", "codex"} {
		cardID := addBounds(em, utils.Rect{X: 700, Y: 800 + float64(i)*800 + 280, W: 500, H: 240})
		card := &components.StoryCardComponent{ID: id}
		em.AddComponent(cardID, card)
		cards = append(cards, card)
	}
	return em, vp, heritage, cards
}

func TestHeritageSystem_ActiveCardFollowsBand(t *testing.T) {
	em, vp, heritage, cards := newHeritageFixture()
	sys := NewHeritageSystem(em)

	tests := []struct {
		name       string
		scrollY    float64
		wantState  string
		wantEffect components.VisualEffect
		wantActive int
	}{
		{"第一张卡", 800, "origin", components.EffectNone, 0},
		{"第二张卡触发危险效果", 1600, "danger", components.EffectDanger, 1},
		{"第三张卡触发高亮", 2400, "codex", components.EffectHighlight, 2},
		{"回到第二张", 1600, "danger", components.EffectDanger, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp.ScrollY = tt.scrollY
			sys.Update(1.0 / 60)
			if heritage.State != tt.wantState {
				t.Errorf("State = %q, 期望 %q", heritage.State, tt.wantState)
			}
			if heritage.Effect != tt.wantEffect {
				t.Errorf("Effect = %v, 期望 %v", heritage.Effect, tt.wantEffect)
			}
			for i, c := range cards {
				if c.Active != (i == tt.wantActive) {
					t.Errorf("card %s Active = %v", c.ID, c.Active)
				}
			}
		})
	}
}

func TestHeritageSystem_KeepsStateOutsideBand(t *testing.T) {
	em, vp, heritage, _ := newHeritageFixture()
	sys := NewHeritageSystem(em)

	vp.ScrollY = 1600
	sys.Update(1.0 / 60)

	// 卡片之间的空隙：没有卡片进入判定带
	vp.ScrollY = 2000
	sys.Update(1.0 / 60)
	if heritage.State != "danger" {
		t.Errorf("没有卡片进入判定带时应保持上一张: State = %q", heritage.State)
	}
}

func TestHeritageSystem_Progress(t *testing.T) {
	em, vp, heritage, _ := newHeritageFixture()
	sys := NewHeritageSystem(em)

	tests := []struct {
		name    string
		scrollY float64
		want    float64
	}{
		{"章节顶部刚到视口顶部", 800, 0},
		{"一半", 1600, 50},
		{"结束", 2400, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp.ScrollY = tt.scrollY
			sys.Update(1.0 / 60)
			if math.Abs(heritage.Progress-tt.want) > 1e-9 {
				t.Errorf("Progress = %v, 期望 %v", heritage.Progress, tt.want)
			}
		})
	}

	// 章节离开视口后不再更新
	vp.ScrollY = 4000
	sys.Update(1.0 / 60)
	if heritage.Progress != 100 {
		t.Errorf("离开视口后 Progress = %v, 期望保持 100", heritage.Progress)
	}
}
