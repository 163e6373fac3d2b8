package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a page scene (e.g., the exhibit page).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，窗口尺寸变化时调用
type Resizable interface {
	Resize(width, height int)
}

// Closable 是一个可选接口，用于在程序退出时释放资源（如音频播放器）
type Closable interface {
	Close()
}
