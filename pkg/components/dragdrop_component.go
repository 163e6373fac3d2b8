package components

import "github.com/decker502/codexatlas/pkg/utils"

// ArchiveState OAIS 归档模拟的状态
type ArchiveState int

const (
	// ArchiveIdle 等待拖拽
	ArchiveIdle ArchiveState = iota
	// ArchiveDragging 手稿拖拽中
	ArchiveDragging
	// ArchiveProcessing 已投放，处理中
	ArchiveProcessing
	// ArchiveArchived 已生成归档包
	ArchiveArchived
)

func (s ArchiveState) String() string {
	switch s {
	case ArchiveDragging:
		return "dragging"
	case ArchiveProcessing:
		return "processing"
	case ArchiveArchived:
		return "archived"
	default:
		return "idle"
	}
}

// DragDropComponent 手稿拖放到 AIP 投放区的归档模拟
type DragDropComponent struct {
	State ArchiveState

	// Manuscript 手稿初始位置（文档坐标）
	Manuscript utils.Rect
	// DropZone 投放区（文档坐标）
	DropZone utils.Rect

	// DragX, DragY 拖拽中手稿的屏幕位置（左上角）
	DragX, DragY float64
	// GrabDX, GrabDY 按下点相对手稿左上角的偏移
	GrabDX, GrabDY float64
	// DragOver 指针位于投放区上方
	DragOver bool

	ProcessingElapsed  float64
	ProcessingDuration float64

	// 投放后隐藏投放区图标/标签/状态文字
	ZoneIconsHidden bool
	// 归档完成后显示归档包与结果信息
	PackageVisible bool
	ResultVisible  bool
}
