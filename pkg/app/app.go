// Package app 提供展品应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/decker502/codexatlas/pkg/config"
	"github.com/decker502/codexatlas/pkg/embedded"
	"github.com/decker502/codexatlas/pkg/game"
	"github.com/decker502/codexatlas/pkg/scenes"
	"github.com/decker502/codexatlas/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// audioSampleRate 音频上下文采样率
const audioSampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 展品配置文件路径，为空则使用嵌入的 data/exhibit.yaml
	ConfigPath string
	// Watch 监听 ConfigPath，文件变化后热加载
	Watch bool
}

// App 是展品应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	scene        *scenes.ExhibitScene
	exhibit      *config.ExhibitConfig
	verbose      bool

	watcher *config.ConfigWatcher
	// pending 监听 goroutine 写入，Update 中取出应用
	pending atomic.Pointer[config.ExhibitConfig]

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadConfig 加载展品配置
// path 为空时读取嵌入资源；嵌入资源也不可用时使用默认配置
func LoadConfig(path string) (*config.ExhibitConfig, error) {
	if path != "" {
		return config.LoadExhibitConfig(path)
	}
	if !embedded.IsInitialized() {
		log.Printf("[App] embedded data not initialized, using default exhibit config")
		return config.DefaultExhibitConfig(), nil
	}
	data, err := embedded.ReadFile(embedded.ExhibitConfigPath)
	if err != nil {
		return nil, fmt.Errorf("读取嵌入配置失败: %w", err)
	}
	return config.ParseExhibitConfig(data)
}

// NewApp 创建并初始化展品应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	exhibit, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("展品配置加载失败: %w", err)
	}

	audioContext := audio.NewContext(audioSampleRate)

	scene := scenes.NewExhibitScene(exhibit, scenes.ExhibitOptions{
		AudioContext: audioContext,
		Seed:         time.Now().UnixNano(),
	})
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	a := &App{
		sceneManager: sceneManager,
		scene:        scene,
		exhibit:      exhibit,
		verbose:      cfg.Verbose,
	}

	if cfg.Watch && cfg.ConfigPath != "" {
		if err := a.startWatcher(cfg.ConfigPath); err != nil {
			log.Printf("[App] Warning: config hot reload disabled: %v", err)
		}
	}

	log.Printf("[App] Exhibit ready (%dx%d)", exhibit.Window.Width, exhibit.Window.Height)
	return a, nil
}

// startWatcher 启动配置监听，新配置在下一次 Update 中应用
func (a *App) startWatcher(path string) error {
	watcher, err := config.NewConfigWatcher(path, func(c *config.ExhibitConfig) {
		a.pending.Store(c)
	})
	if err != nil {
		return err
	}
	if err := watcher.Start(context.Background()); err != nil {
		return err
	}
	a.watcher = watcher
	return nil
}

// Update 更新页面逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	utils.UpdateLastTouchPosition()

	if c := a.pending.Swap(nil); c != nil {
		a.exhibit = c
		a.scene.ApplyConfig(c)
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.exhibit.Window.Width, a.exhibit.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.exhibit.Window.Width, a.exhibit.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制页面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 页面逻辑尺寸跟随窗口尺寸，尺寸变化时页面重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Window 返回窗口配置
func (a *App) Window() config.WindowConfig {
	return a.exhibit.Window
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Close 停止配置监听并释放场景资源
func (a *App) Close() {
	if a.watcher != nil {
		a.watcher.Stop()
		a.watcher = nil
	}
	a.sceneManager.Close()
}
