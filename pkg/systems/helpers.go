package systems

import (
	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/utils"
)

// viewport 返回页面滚动状态单例，不存在时返回 nil
func viewport(em *ecs.EntityManager) *components.ViewportComponent {
	_, vp, ok := ecs.First[*components.ViewportComponent](em)
	if !ok {
		return nil
	}
	return vp
}

// viewRect 返回视口的屏幕矩形
func viewRect(vp *components.ViewportComponent) utils.Rect {
	return utils.Rect{W: vp.Width, H: vp.Height}
}

// screenRect 返回实体的屏幕矩形
func screenRect(em *ecs.EntityManager, id ecs.EntityID, scrollY float64) (utils.Rect, bool) {
	b, ok := ecs.GetComponent[*components.BoundsComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	return b.ScreenRect(scrollY), true
}

// overlayOpen 灯箱打开时（包括刚关闭的那一帧），页面上的其他交互全部屏蔽
func overlayOpen(em *ecs.EntityManager) bool {
	_, lb, ok := ecs.First[*components.LightboxComponent](em)
	return ok && (lb.Open || lb.ClosedThisFrame)
}

// scrollY 返回当前滚动偏移（没有视口时为 0）
func scrollY(em *ecs.EntityManager) float64 {
	if vp := viewport(em); vp != nil {
		return vp.ScrollY
	}
	return 0
}
