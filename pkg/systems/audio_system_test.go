package systems

import (
	"testing"

	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/config"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/utils"
)

// fakeAudioBackend 记录播放调用
type fakeAudioBackend struct {
	playing map[string]bool
	volume  map[string]float64
	rewound []string
}

func newFakeAudioBackend() *fakeAudioBackend {
	return &fakeAudioBackend{playing: map[string]bool{}, volume: map[string]float64{}}
}

func (f *fakeAudioBackend) Play(id string, volume float64) error {
	f.playing[id] = true
	f.volume[id] = volume
	return nil
}
func (f *fakeAudioBackend) Pause(id string)          { f.playing[id] = false }
func (f *fakeAudioBackend) Rewind(id string)         { f.rewound = append(f.rewound, id) }
func (f *fakeAudioBackend) IsPlaying(id string) bool { return f.playing[id] }

type audioFixture struct {
	em      *ecs.EntityManager
	input   *mockInput
	sys     *AudioSystem
	ambient ecs.EntityID
	narr    []ecs.EntityID
	notices []string
}

func newAudioFixture(backend AudioBackend, source string) *audioFixture {
	em := ecs.NewEntityManager()
	newTestViewport(em, 1280, 800, 800)
	input := newMockInput()
	f := &audioFixture{em: em, input: input}

	f.ambient = addBounds(em, utils.Rect{X: 1200, Y: 700, W: 40, H: 40})
	em.AddComponent(f.ambient, &components.AudioButtonComponent{Kind: components.AudioAmbient, TrackID: "ambient", Source: source})

	for i, id := range []string{"narration-a", "narration-b"} {
		e := addBounds(em, utils.Rect{X: float64(100 + i*200), Y: 400, W: 150, H: 40})
		em.AddComponent(e, &components.AudioButtonComponent{Kind: components.AudioNarration, TrackID: id, Source: source})
		f.narr = append(f.narr, e)
	}

	f.sys = NewAudioSystem(em, input, backend, config.DefaultExhibitConfig().Audio)
	f.sys.OnPlaceholder = func(id string) { f.notices = append(f.notices, id) }
	return f
}

func (f *audioFixture) button(id ecs.EntityID) *components.AudioButtonComponent {
	btn, _ := ecs.GetComponent[*components.AudioButtonComponent](f.em, id)
	return btn
}

func TestAudioSystem_AmbientPlaceholderToggles(t *testing.T) {
	f := newAudioFixture(nil, "")

	f.input.click(1210, 710)
	f.sys.Update(1.0 / 60)
	f.input.frame()
	if !f.button(f.ambient).Active {
		t.Error("占位氛围音点击后应显示为开启")
	}
	if len(f.notices) != 1 || f.notices[0] != "ambient" {
		t.Errorf("notices = %v, 期望 [ambient]", f.notices)
	}

	f.input.click(1210, 710)
	f.sys.Update(1.0 / 60)
	if f.button(f.ambient).Active {
		t.Error("再次点击应关闭")
	}
	if len(f.notices) != 1 {
		t.Errorf("关闭时不应输出提示: %v", f.notices)
	}
}

func TestAudioSystem_AmbientWithBackend(t *testing.T) {
	backend := newFakeAudioBackend()
	f := newAudioFixture(backend, "audio/ambient.ogg")

	f.sys.Toggle(f.ambient)
	if !backend.playing["ambient"] || backend.volume["ambient"] != 0.3 {
		t.Errorf("应以 0.3 音量播放: playing=%v volume=%v", backend.playing["ambient"], backend.volume["ambient"])
	}
	f.sys.Toggle(f.ambient)
	if backend.playing["ambient"] {
		t.Error("再次切换应暂停")
	}
	if len(f.notices) != 0 {
		t.Errorf("真实音轨不应输出占位提示: %v", f.notices)
	}
}

func TestAudioSystem_PlaceholderNarrationTimesOut(t *testing.T) {
	f := newAudioFixture(nil, "")

	f.sys.Toggle(f.narr[0])
	btn := f.button(f.narr[0])
	if !btn.Active {
		t.Fatal("占位旁白应显示播放中")
	}

	for i := 0; i < 179; i++ {
		f.sys.Update(1.0 / 60)
	}
	if !btn.Active {
		t.Error("不到 3 秒时应仍在播放中")
	}
	f.sys.Update(2.0 / 60)
	if btn.Active {
		t.Error("3 秒后应清除播放中状态")
	}
}

func TestAudioSystem_PlaceholderNarrationsOverlap(t *testing.T) {
	f := newAudioFixture(nil, "")

	f.sys.Toggle(f.narr[0])
	f.sys.Update(1.0 / 60)
	f.sys.Toggle(f.narr[1])

	a, b := f.button(f.narr[0]), f.button(f.narr[1])
	if !a.Active || !b.Active {
		t.Errorf("两段占位旁白应同时显示播放中: a=%v b=%v", a.Active, b.Active)
	}
	if f.sys.current != 0 {
		t.Errorf("占位旁白不应成为当前旁白: current=%v", f.sys.current)
	}
	if len(f.notices) != 2 {
		t.Errorf("notices = %v, 期望两条占位提示", f.notices)
	}

	// 各自计时：第一段先结束
	for i := 0; i < 178; i++ {
		f.sys.Update(1.0 / 60)
	}
	f.sys.Update(1.5 / 60)
	if a.Active || !b.Active {
		t.Errorf("第一段应先结束: a=%v b=%v", a.Active, b.Active)
	}
}

func TestAudioSystem_NarrationsAreExclusive(t *testing.T) {
	backend := newFakeAudioBackend()
	f := newAudioFixture(backend, "audio/narration.ogg")

	f.sys.Toggle(f.narr[0])
	f.sys.Toggle(f.narr[1])

	a, b := f.button(f.narr[0]), f.button(f.narr[1])
	if a.Active || !b.Active {
		t.Errorf("开始第二段旁白应停止第一段: a=%v b=%v", a.Active, b.Active)
	}
	if backend.playing["narration-a"] || !backend.playing["narration-b"] {
		t.Errorf("后端状态: %v", backend.playing)
	}
	if len(backend.rewound) != 1 || backend.rewound[0] != "narration-a" {
		t.Errorf("第一段应被倒回: %v", backend.rewound)
	}

	// 再次点击正在播放的旁白暂停
	f.sys.Toggle(f.narr[1])
	if b.Active || backend.playing["narration-b"] {
		t.Error("再次点击应暂停")
	}
}

func TestAudioSystem_NarrationEndClearsButton(t *testing.T) {
	backend := newFakeAudioBackend()
	f := newAudioFixture(backend, "audio/narration.ogg")

	f.sys.Toggle(f.narr[0])
	f.sys.Update(1.0 / 60)
	if !f.button(f.narr[0]).Active {
		t.Fatal("播放中不应清除")
	}

	backend.playing["narration-a"] = false // 播放结束
	f.sys.Update(1.0 / 60)
	if f.button(f.narr[0]).Active {
		t.Error("播放结束应清除按钮状态")
	}
	if f.sys.current != 0 {
		t.Error("播放结束应清除当前旁白")
	}
}
