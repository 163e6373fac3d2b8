package systems

import (
	"log"

	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/ecs"
)

// DragDropSystem OAIS 归档模拟
//
// 状态流转：idle → dragging → processing → archived。
// 在投放区外松开时手稿回到原位（dragging → idle）。
type DragDropSystem struct {
	entityManager *ecs.EntityManager
	input         Input
}

// NewDragDropSystem 创建拖放系统
func NewDragDropSystem(em *ecs.EntityManager, input Input) *DragDropSystem {
	return &DragDropSystem{entityManager: em, input: input}
}

// Update 处理拖拽输入并推进处理计时
func (s *DragDropSystem) Update(deltaTime float64) {
	_, dd, ok := ecs.First[*components.DragDropComponent](s.entityManager)
	if !ok {
		return
	}
	sy := scrollY(s.entityManager)
	mouseX, mouseY := cursor(s.input)

	switch dd.State {
	case components.ArchiveIdle:
		if overlayOpen(s.entityManager) || !s.input.IsPointerJustPressed() {
			return
		}
		manuscript := dd.Manuscript.Offset(0, -sy)
		if manuscript.Contains(mouseX, mouseY) {
			dd.State = components.ArchiveDragging
			dd.GrabDX = mouseX - manuscript.X
			dd.GrabDY = mouseY - manuscript.Y
			dd.DragX, dd.DragY = manuscript.X, manuscript.Y
		}

	case components.ArchiveDragging:
		dd.DragX = mouseX - dd.GrabDX
		dd.DragY = mouseY - dd.GrabDY
		dd.DragOver = dd.DropZone.Offset(0, -sy).Contains(mouseX, mouseY)

		if s.input.IsPointerPressed() {
			return
		}
		if dd.DragOver {
			s.drop(dd)
		} else {
			dd.State = components.ArchiveIdle
		}
		dd.DragOver = false

	case components.ArchiveProcessing:
		dd.ProcessingElapsed += deltaTime
		if dd.ProcessingElapsed >= dd.ProcessingDuration {
			dd.State = components.ArchiveArchived
			dd.PackageVisible = true
			dd.ResultVisible = true
			log.Printf("[DragDropSystem] archival package created")
		}
	}
}

// drop 手稿投放到投放区，开始处理
func (s *DragDropSystem) drop(dd *components.DragDropComponent) {
	dd.State = components.ArchiveProcessing
	dd.ZoneIconsHidden = true
	dd.ProcessingElapsed = 0
	log.Printf("[DragDropSystem] manuscript dropped, processing for %.1fs", dd.ProcessingDuration)
}
