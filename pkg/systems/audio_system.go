package systems

import (
	"log"

	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/config"
	"github.com/decker502/codexatlas/pkg/ecs"
)

// AudioBackend 音频播放后端
// 为 nil 时所有音轨都按占位音轨处理
type AudioBackend interface {
	Play(trackID string, volume float64) error
	Pause(trackID string)
	Rewind(trackID string)
	IsPlaying(trackID string) bool
}

// AudioSystem 氛围音与旁白按钮
//
// 职责：
//   - 氛围音按钮切换开关（音量 AmbientVolume）
//   - 旁白按钮互斥：开始新旁白时停止并倒回上一段
//   - 占位音轨（无音频源或无后端）输出提示，旁白显示"播放中" PlaceholderDuration 秒
//   - 真实音轨播放结束后清除按钮状态
type AudioSystem struct {
	entityManager *ecs.EntityManager
	input         Input
	backend       AudioBackend
	cfg           config.AudioConfig

	// current 当前旁白按钮实体（0 表示无）
	current ecs.EntityID

	// OnPlaceholder 输出占位提示时调用（测试与界面提示使用）
	OnPlaceholder func(trackID string)
}

// NewAudioSystem 创建音频系统
func NewAudioSystem(em *ecs.EntityManager, input Input, backend AudioBackend, cfg config.AudioConfig) *AudioSystem {
	return &AudioSystem{
		entityManager: em,
		input:         input,
		backend:       backend,
		cfg:           cfg,
	}
}

// Update 处理按钮点击并推进占位计时
func (s *AudioSystem) Update(deltaTime float64) {
	s.tick(deltaTime)

	if !s.input.IsPointerJustReleased() || overlayOpen(s.entityManager) {
		return
	}
	mouseX, mouseY := cursor(s.input)
	sy := scrollY(s.entityManager)

	for _, id := range ecs.GetEntitiesWith2[*components.AudioButtonComponent, *components.BoundsComponent](s.entityManager) {
		rect, _ := screenRect(s.entityManager, id, sy)
		if rect.Contains(mouseX, mouseY) {
			s.Toggle(id)
			return
		}
	}
}

// Toggle 模拟点击音频按钮
func (s *AudioSystem) Toggle(id ecs.EntityID) {
	btn, ok := ecs.GetComponent[*components.AudioButtonComponent](s.entityManager, id)
	if !ok {
		return
	}
	switch btn.Kind {
	case components.AudioAmbient:
		s.toggleAmbient(btn)
	case components.AudioNarration:
		s.toggleNarration(id, btn)
	}
}

// toggleAmbient 占位音轨同样切换按钮状态
func (s *AudioSystem) toggleAmbient(btn *components.AudioButtonComponent) {
	if btn.Active {
		if s.playable(btn) {
			s.backend.Pause(btn.TrackID)
		}
		btn.Active = false
		return
	}

	if s.playable(btn) {
		if err := s.backend.Play(btn.TrackID, s.cfg.AmbientVolume); err != nil {
			log.Printf("[AudioSystem] play %q failed: %v", btn.TrackID, err)
		}
	} else {
		s.placeholder(btn.TrackID)
	}
	btn.Active = true
}

func (s *AudioSystem) toggleNarration(id ecs.EntityID, btn *components.AudioButtonComponent) {
	if s.current != 0 && s.current != id {
		if prev, ok := ecs.GetComponent[*components.AudioButtonComponent](s.entityManager, s.current); ok {
			s.stop(prev)
		}
		s.current = 0
	}

	if btn.Active {
		if s.playable(btn) {
			s.backend.Pause(btn.TrackID)
		}
		btn.Active = false
		btn.PlaceholderRemaining = 0
		s.current = 0
		return
	}

	if !s.playable(btn) {
		// 占位旁白不成为当前旁白，开始其他旁白不会打断它的计时
		s.placeholder(btn.TrackID)
		btn.PlaceholderRemaining = s.cfg.PlaceholderDuration
		btn.Active = true
		return
	}
	if err := s.backend.Play(btn.TrackID, 1.0); err != nil {
		log.Printf("[AudioSystem] play %q failed: %v", btn.TrackID, err)
		return
	}
	btn.Active = true
	s.current = id
}

// stop 停止并倒回旁白
func (s *AudioSystem) stop(btn *components.AudioButtonComponent) {
	if s.playable(btn) {
		s.backend.Pause(btn.TrackID)
		s.backend.Rewind(btn.TrackID)
	}
	btn.Active = false
	btn.PlaceholderRemaining = 0
}

// tick 占位旁白计时结束或真实音轨播放结束时清除按钮状态
func (s *AudioSystem) tick(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.AudioButtonComponent](s.entityManager) {
		btn, _ := ecs.GetComponent[*components.AudioButtonComponent](s.entityManager, id)
		if btn.Kind != components.AudioNarration || !btn.Active {
			continue
		}

		finished := false
		if s.playable(btn) {
			finished = !s.backend.IsPlaying(btn.TrackID)
		} else {
			btn.PlaceholderRemaining -= deltaTime
			finished = btn.PlaceholderRemaining <= 0
		}
		if finished {
			btn.Active = false
			btn.PlaceholderRemaining = 0
			if s.current == id {
				s.current = 0
			}
		}
	}
}

// playable 音轨有音频源且有后端
func (s *AudioSystem) playable(btn *components.AudioButtonComponent) bool {
	return s.backend != nil && btn.Source != ""
}

func (s *AudioSystem) placeholder(trackID string) {
	log.Printf("[PLACEHOLDER] Audio %q non chargé. Remplacez le fichier source.", trackID)
	if s.OnPlaceholder != nil {
		s.OnPlaceholder(trackID)
	}
}
