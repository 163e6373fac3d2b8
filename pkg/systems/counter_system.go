package systems

import (
	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/ecs"
)

// CounterSystem 统计数字滚动系统
//
// 数字进入视口（可见比例达到阈值）后开始滚动，每次更新增加 Step，
// 达到目标后显示精确的目标值；每个数字只播放一次。
type CounterSystem struct {
	entityManager *ecs.EntityManager
}

// NewCounterSystem 创建数字滚动系统
func NewCounterSystem(em *ecs.EntityManager) *CounterSystem {
	return &CounterSystem{entityManager: em}
}

// Update 启动进入视口的数字并推进正在滚动的数字
func (s *CounterSystem) Update(deltaTime float64) {
	vp := viewport(s.entityManager)
	if vp == nil {
		return
	}
	view := viewRect(vp)

	for _, id := range ecs.GetEntitiesWith2[*components.CounterComponent, *components.BoundsComponent](s.entityManager) {
		counter, _ := ecs.GetComponent[*components.CounterComponent](s.entityManager, id)
		if counter.Done {
			continue
		}
		if !counter.Started {
			rect, _ := screenRect(s.entityManager, id, vp.ScrollY)
			if !isVisibleEnough(rect, view, counter.Threshold) {
				continue
			}
			counter.Started = true
		}
		step(counter)
	}
}

// counterEpsilon 吸收浮点累加误差，保证 n 次步进后正好到达目标
const counterEpsilon = 1e-9

// step 推进一次
func step(counter *components.CounterComponent) {
	counter.Current += counter.Step
	if counter.Current+counterEpsilon >= float64(counter.Target) {
		counter.Current = float64(counter.Target)
		counter.Done = true
	}
}

// CounterStep 计算每次更新的增量：target / (duration / frameInterval)
func CounterStep(target int, duration, frameInterval float64) float64 {
	if duration <= 0 || frameInterval <= 0 {
		return float64(target)
	}
	return float64(target) / (duration / frameInterval)
}
