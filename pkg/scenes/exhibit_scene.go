package scenes

import (
	"log"
	"math/rand"

	"github.com/decker502/codexatlas/pkg/config"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/game"
	"github.com/decker502/codexatlas/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ExhibitScene 展品叙事页面
//
// 页面自上而下由六个章节组成（首屏星座、传承叙事、AI 修复、OAIS 归档、统计、对开页），
// 所有元素都是 ECS 实体，位置使用文档坐标；滚动偏移由 ScrollSystem 维护。
//
// 实体只在构建时创建一次；窗口尺寸变化时 layout 只更新 BoundsComponent，
// 因此滑块位置、已显现元素等交互状态在缩放后保留。
type ExhibitScene struct {
	cfg           *config.ExhibitConfig
	entityManager *ecs.EntityManager
	input         systems.Input
	rng           *rand.Rand

	audioContext *audio.Context
	audioManager *game.AudioManager

	width, height float64

	// 实体
	viewportID    ecs.EntityID
	navID         ecs.EntityID
	sectionIDs    map[string]ecs.EntityID
	navLinkIDs    []ecs.EntityID
	cardIDs       []ecs.EntityID
	modeButtonIDs []ecs.EntityID
	sliderID      ecs.EntityID
	terminalID    ecs.EntityID
	lensID        ecs.EntityID
	dragDropID    ecs.EntityID
	counterIDs    []ecs.EntityID
	folioID       ecs.EntityID
	hotspotPanel  ecs.EntityID
	hotspotIDs    []ecs.EntityID
	audioIDs      []ecs.EntityID

	// 系统
	scrollSystem        *systems.ScrollSystem
	lightboxSystem      *systems.LightboxSystem
	buttonSystem        *systems.ButtonSystem
	sliderSystem        *systems.ComparisonSliderSystem
	terminalSystem      *systems.TerminalSystem
	lensSystem          *systems.MagicLensSystem
	dragDropSystem      *systems.DragDropSystem
	hotspotSystem       *systems.HotspotSystem
	audioSystem         *systems.AudioSystem
	revealSystem        *systems.RevealSystem
	heritageSystem      *systems.HeritageSystem
	counterSystem       *systems.CounterSystem
	constellationSystem *systems.ConstellationSystem
	renderSystem        *systems.RenderSystem
}

// ExhibitOptions 创建页面的可选参数
type ExhibitOptions struct {
	// Input 为 nil 时使用 systems.DefaultInput
	Input systems.Input
	// AudioContext 为 nil 时所有音轨按占位音轨处理
	AudioContext *audio.Context
	// Seed 粒子随机种子
	Seed int64
}

// NewExhibitScene 创建展品页面
//
// 参数：
//   - cfg: 已验证的展品配置
//   - opts: 输入、音频与随机种子
func NewExhibitScene(cfg *config.ExhibitConfig, opts ExhibitOptions) *ExhibitScene {
	input := opts.Input
	if input == nil {
		input = systems.DefaultInput
	}
	s := &ExhibitScene{
		cfg:           cfg,
		entityManager: ecs.NewEntityManager(),
		input:         input,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		audioContext:  opts.AudioContext,
		width:         float64(cfg.Window.Width),
		height:        float64(cfg.Window.Height),
	}
	s.build()
	return s
}

// build 创建系统与实体并完成首次布局
func (s *ExhibitScene) build() {
	s.initSystems()
	s.initEntities()
	s.layout()
	log.Printf("[ExhibitScene] %d entities, document height %.0f", s.entityManager.EntityCount(), s.viewport().DocHeight)
}

// Update 按固定顺序运行系统
//
// 灯箱最先处理，打开后其余交互系统都会被屏蔽；
// 显现/叙事/数字依赖本帧最终的滚动位置，放在交互系统之后。
func (s *ExhibitScene) Update(deltaTime float64) {
	s.scrollSystem.Update(deltaTime)
	s.lightboxSystem.Update(deltaTime)
	s.buttonSystem.Update(deltaTime)
	s.sliderSystem.Update(deltaTime)
	s.terminalSystem.Update(deltaTime)
	s.lensSystem.Update(deltaTime)
	s.dragDropSystem.Update(deltaTime)
	s.hotspotSystem.Update(deltaTime)
	s.audioSystem.Update(deltaTime)
	s.revealSystem.Update(deltaTime)
	s.heritageSystem.Update(deltaTime)
	s.counterSystem.Update(deltaTime)
	s.constellationSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制页面
func (s *ExhibitScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// Resize 窗口尺寸变化时重新布局（保留交互状态）
func (s *ExhibitScene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	w, h := float64(width), float64(height)
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.layout()
}

// ApplyConfig 热加载配置：重建全部实体，保留滚动位置
func (s *ExhibitScene) ApplyConfig(cfg *config.ExhibitConfig) {
	if cfg == nil {
		return
	}
	scrollY := s.viewport().ScrollY

	s.closeAudio()
	s.entityManager.Clear()
	s.cfg = cfg
	s.build()

	vp := s.viewport()
	vp.ScrollY = min(scrollY, vp.MaxScroll())
	log.Printf("[ExhibitScene] config reloaded, scroll %.0f", vp.ScrollY)
}

// Close 释放音频播放器
func (s *ExhibitScene) Close() {
	s.closeAudio()
}

func (s *ExhibitScene) closeAudio() {
	if s.audioManager != nil {
		s.audioManager.Close()
		s.audioManager = nil
	}
}

// ScrollToSection 平滑滚动到章节（导航链接与数字快捷键共用）
func (s *ExhibitScene) ScrollToSection(sectionID string) bool {
	return s.scrollSystem.ScrollToSection(sectionID)
}

// EntityManager 返回实体管理器（测试与调试使用）
func (s *ExhibitScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Config 返回当前配置
func (s *ExhibitScene) Config() *config.ExhibitConfig {
	return s.cfg
}
