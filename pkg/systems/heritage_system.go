package systems

import (
	"log"

	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/utils"
)

// HeritageSystem 粘性叙事系统
//
// 职责：
//   - 第一个与视口中央判定带相交的故事卡成为激活卡
//   - 章节 State 与插图视觉效果跟随激活卡
//   - 章节与视口相交时更新阅读进度
type HeritageSystem struct {
	entityManager *ecs.EntityManager
}

// NewHeritageSystem 创建叙事系统
func NewHeritageSystem(em *ecs.EntityManager) *HeritageSystem {
	return &HeritageSystem{entityManager: em}
}

// Update 更新激活卡和阅读进度
func (s *HeritageSystem) Update(deltaTime float64) {
	vp := viewport(s.entityManager)
	if vp == nil {
		return
	}
	sectionID, heritage, ok := ecs.First[*components.HeritageComponent](s.entityManager)
	if !ok {
		return
	}

	view := viewRect(vp)
	band := view.Inset(vp.Height*heritage.BandMargin, 0, vp.Height*heritage.BandMargin, 0)

	s.updateActiveCard(heritage, band, vp.ScrollY)

	if rect, ok := screenRect(s.entityManager, sectionID, vp.ScrollY); ok && rect.Intersects(view) {
		heritage.Progress = utils.ScrollProgress(rect.Y, rect.H, vp.Height)
	}
}

// updateActiveCard 没有卡片进入判定带时保持上一次的激活卡
func (s *HeritageSystem) updateActiveCard(heritage *components.HeritageComponent, band utils.Rect, scrollY float64) {
	cards := ecs.GetEntitiesWith2[*components.StoryCardComponent, *components.BoundsComponent](s.entityManager)

	var active *components.StoryCardComponent
	for _, id := range cards {
		rect, _ := screenRect(s.entityManager, id, scrollY)
		if rect.Intersects(band) {
			active, _ = ecs.GetComponent[*components.StoryCardComponent](s.entityManager, id)
			break
		}
	}
	if active == nil || active.ID == heritage.State {
		return
	}

	for _, id := range cards {
		card, _ := ecs.GetComponent[*components.StoryCardComponent](s.entityManager, id)
		card.Active = card == active
	}
	heritage.State = active.ID
	heritage.Effect = components.EffectForCard(active.ID)
	log.Printf("[HeritageSystem] active card: %s (effect=%q)", active.ID, heritage.Effect)
}
