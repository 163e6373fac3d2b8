package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	width        int
	height       int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// 已知窗口尺寸时立即同步给新场景；旧场景实现 Closable 时会被关闭。
func (sm *SceneManager) SwitchTo(scene Scene) {
	if prev, ok := sm.currentScene.(Closable); ok && sm.currentScene != scene {
		prev.Close()
	}
	sm.currentScene = scene
	if r, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Resize 记录窗口尺寸并转发给当前场景；尺寸未变化时不转发
func (sm *SceneManager) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == sm.width && height == sm.height) {
		return
	}
	sm.width, sm.height = width, height
	log.Printf("[SceneManager] Resize: %dx%d", width, height)
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// Close 关闭当前场景
func (sm *SceneManager) Close() {
	if c, ok := sm.currentScene.(Closable); ok {
		c.Close()
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
