package scenes

import (
	"log"

	"github.com/decker502/codexatlas/internal/constellation"
	"github.com/decker502/codexatlas/pkg/canvas"
	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/config"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/game"
	"github.com/decker502/codexatlas/pkg/systems"
)

// sectionTitles 章节标题（导航链接使用短标题）
var sectionTitles = map[string]struct{ title, link string }{
	config.SectionHero:     {"Codex Atlanticus", "Accueil"},
	config.SectionHeritage: {"Un heritage fragile", "Heritage"},
	config.SectionAI:       {"Restauration par IA", "IA"},
	config.SectionOAIS:     {"Archivage OAIS", "OAIS"},
	config.SectionStats:    {"Le Codex en chiffres", "Chiffres"},
	config.SectionFolio:    {"Explorer le folio", "Folio"},
}

// initSystems 创建所有系统
func (s *ExhibitScene) initSystems() {
	em := s.entityManager
	cfg := s.cfg

	var backend systems.AudioBackend
	if s.audioContext != nil {
		s.audioManager = game.NewAudioManager(s.audioContext, cfg.Audio)
		backend = s.audioManager
	}

	s.scrollSystem = systems.NewScrollSystem(em, s.input, cfg.Navigation)
	s.lightboxSystem = systems.NewLightboxSystem(em, s.input)
	s.buttonSystem = systems.NewButtonSystem(em, s.input)
	s.sliderSystem = systems.NewComparisonSliderSystem(em, s.input)
	s.terminalSystem = systems.NewTerminalSystem(em)
	s.lensSystem = systems.NewMagicLensSystem(em, s.input)
	s.dragDropSystem = systems.NewDragDropSystem(em, s.input)
	s.hotspotSystem = systems.NewHotspotSystem(em, s.input, cfg.Hotspots)
	s.audioSystem = systems.NewAudioSystem(em, s.input, backend, cfg.Audio)
	s.revealSystem = systems.NewRevealSystem(em, cfg.Reveal)
	s.heritageSystem = systems.NewHeritageSystem(em)
	s.counterSystem = systems.NewCounterSystem(em)
	s.constellationSystem = systems.NewConstellationSystem(em, s.input)
	s.renderSystem = systems.NewRenderSystem(em, s.constellationSystem, s.revealSystem)
}

// initEntities 按配置创建实体（矩形由 layout 填充）
func (s *ExhibitScene) initEntities() {
	em := s.entityManager
	cfg := s.cfg

	s.viewportID = em.CreateEntity()
	em.AddComponent(s.viewportID, &components.ViewportComponent{})

	s.sectionIDs = make(map[string]ecs.EntityID, len(config.SectionOrder))
	for i, id := range config.SectionOrder {
		entity := em.CreateEntity()
		em.AddComponent(entity, &components.SectionComponent{ID: id, Index: i, Title: sectionTitles[id].title})
		em.AddComponent(entity, &components.BoundsComponent{})
		if id != config.SectionHero {
			em.AddComponent(entity, &components.RevealComponent{Threshold: cfg.Reveal.Threshold})
		}
		s.sectionIDs[id] = entity
	}

	s.initNavigation()
	s.initHero()
	s.initHeritage()
	s.initAI()
	s.initOAIS()
	s.initCounters()
	s.initFolio()
	s.initAudio()
}

func (s *ExhibitScene) initNavigation() {
	em := s.entityManager

	s.navID = em.CreateEntity()
	em.AddComponent(s.navID, &components.NavComponent{
		Threshold: s.cfg.Navigation.ScrolledThreshold,
		Links:     append([]string(nil), config.SectionOrder...),
	})
	em.AddComponent(s.navID, &components.BoundsComponent{Fixed: true})

	s.navLinkIDs = s.navLinkIDs[:0]
	for _, sectionID := range config.SectionOrder {
		target := sectionID
		link := em.CreateEntity()
		em.AddComponent(link, &components.ButtonComponent{
			Label:   sectionTitles[sectionID].link,
			Enabled: true,
			OnClick: func() { s.ScrollToSection(target) },
		})
		em.AddComponent(link, &components.BoundsComponent{Fixed: true})
		s.navLinkIDs = append(s.navLinkIDs, link)
	}
}

// initHero 首屏章节实体同时挂载星座组件
func (s *ExhibitScene) initHero() {
	fieldCfg, err := s.cfg.Constellation.FieldConfig()
	if err != nil {
		log.Printf("[ExhibitScene] Warning: invalid constellation config, using defaults: %v", err)
		fieldCfg = constellation.DefaultConfig()
	}
	s.entityManager.AddComponent(s.sectionIDs[config.SectionHero], &components.ConstellationComponent{
		Field:  constellation.NewField(fieldCfg, s.rng),
		Canvas: canvas.NewEbitenCanvas(nil),
	})
}

func (s *ExhibitScene) initHeritage() {
	em := s.entityManager
	em.AddComponent(s.sectionIDs[config.SectionHeritage], &components.HeritageComponent{
		BandMargin: s.cfg.Heritage.BandMargin,
	})

	s.cardIDs = s.cardIDs[:0]
	for _, card := range s.cfg.Heritage.Cards {
		entity := em.CreateEntity()
		em.AddComponent(entity, &components.StoryCardComponent{ID: card.ID, Title: card.Title, Body: card.Body})
		em.AddComponent(entity, &components.BoundsComponent{})
		s.cardIDs = append(s.cardIDs, entity)
	}
}

func (s *ExhibitScene) initAI() {
	em := s.entityManager
	cfg := s.cfg

	s.modeButtonIDs = s.modeButtonIDs[:0]
	for _, mb := range []struct {
		mode  components.TerminalMode
		label string
	}{
		{components.ModeVisual, "Visuel"},
		{components.ModeCode, "Code"},
	} {
		mode := mb.mode
		entity := em.CreateEntity()
		em.AddComponent(entity, &components.ButtonComponent{
			Label:   mb.label,
			Enabled: true,
			OnClick: func() { s.terminalSystem.SetMode(mode) },
		})
		em.AddComponent(entity, &components.ModeButtonComponent{Mode: mode, Label: mb.label, Active: mode == components.ModeVisual})
		em.AddComponent(entity, &components.BoundsComponent{})
		s.modeButtonIDs = append(s.modeButtonIDs, entity)
	}

	s.sliderID = em.CreateEntity()
	em.AddComponent(s.sliderID, components.NewComparisonSliderComponent(
		cfg.Comparison.Initial, cfg.Comparison.Min, cfg.Comparison.Max, cfg.Comparison.KeyStep))
	em.AddComponent(s.sliderID, &components.BoundsComponent{})

	lines := make([]components.TerminalLine, len(cfg.Terminal.Lines))
	for i, l := range cfg.Terminal.Lines {
		lines[i] = components.TerminalLine{Kind: l.Type, Text: l.Text}
	}
	s.terminalID = em.CreateEntity()
	em.AddComponent(s.terminalID, &components.TerminalComponent{Lines: lines, LineDelay: cfg.Terminal.LineDelay})
	em.AddComponent(s.terminalID, &components.BoundsComponent{})

	s.lensID = em.CreateEntity()
	em.AddComponent(s.lensID, components.NewMagicLensComponent(cfg.Lens.Radius))
	em.AddComponent(s.lensID, &components.BoundsComponent{})
}

func (s *ExhibitScene) initOAIS() {
	s.dragDropID = s.entityManager.CreateEntity()
	s.entityManager.AddComponent(s.dragDropID, &components.DragDropComponent{
		ProcessingDuration: s.cfg.OAIS.ProcessingDuration,
	})
}

func (s *ExhibitScene) initCounters() {
	em := s.entityManager
	cc := s.cfg.Counters

	s.counterIDs = s.counterIDs[:0]
	for _, item := range cc.Items {
		entity := em.CreateEntity()
		em.AddComponent(entity, &components.CounterComponent{
			Label:     item.Label,
			Target:    item.Target,
			Step:      systems.CounterStep(item.Target, cc.Duration, cc.FrameInterval),
			Threshold: cc.Threshold,
		})
		em.AddComponent(entity, &components.BoundsComponent{})
		s.counterIDs = append(s.counterIDs, entity)
	}
}

// initFolio 左侧对开页（点击打开灯箱），右侧热点图
func (s *ExhibitScene) initFolio() {
	em := s.entityManager
	hc := s.cfg.Hotspots

	s.folioID = em.CreateEntity()
	em.AddComponent(s.folioID, components.NewLightboxComponent())
	em.AddComponent(s.folioID, &components.BoundsComponent{})

	s.hotspotPanel = em.CreateEntity()
	em.AddComponent(s.hotspotPanel, &components.PanelComponent{Caption: "Folio annote"})
	em.AddComponent(s.hotspotPanel, &components.BoundsComponent{})

	s.hotspotIDs = s.hotspotIDs[:0]
	for _, h := range hc.Items {
		entity := em.CreateEntity()
		em.AddComponent(entity, &components.HotspotComponent{ID: h.ID, RelX: h.X, RelY: h.Y})
		em.AddComponent(entity, components.NewTooltipComponent(h.Title, h.Body, hc.TooltipWidth, hc.TooltipHeight))
		em.AddComponent(entity, &components.BoundsComponent{})
		s.hotspotIDs = append(s.hotspotIDs, entity)
	}
}

// initAudio 氛围音开关与旁白按钮（固定在右下角）
func (s *ExhibitScene) initAudio() {
	em := s.entityManager
	ac := s.cfg.Audio

	s.audioIDs = s.audioIDs[:0]
	add := func(kind components.AudioKind, track config.AudioTrack) {
		label := track.Label
		if label == "" {
			label = track.ID
		}
		entity := em.CreateEntity()
		em.AddComponent(entity, &components.AudioButtonComponent{
			Kind:    kind,
			TrackID: track.ID,
			Label:   label,
			Source:  track.Source,
		})
		em.AddComponent(entity, &components.BoundsComponent{Fixed: true})
		s.audioIDs = append(s.audioIDs, entity)
	}

	if ac.Ambient.ID != "" {
		add(components.AudioAmbient, ac.Ambient)
	}
	for _, track := range ac.Narrations {
		add(components.AudioNarration, track)
	}
}
