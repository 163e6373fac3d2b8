package game

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/decker502/codexatlas/pkg/config"
)

func testAudioConfig() config.AudioConfig {
	return config.AudioConfig{
		Ambient:       config.AudioTrack{ID: "ambient", Source: "data/audio/ambient.ogg"},
		AmbientVolume: 0.3,
		Narrations: []config.AudioTrack{
			{ID: "narration-1", Source: "data/audio/intro.mp3"},
			{ID: "narration-2"},
			{ID: "narration-3", Source: "data/audio/notes.flac"},
		},
	}
}

// TestAudioManagerTracks 氛围音循环，旁白单次
func TestAudioManagerTracks(t *testing.T) {
	am := NewAudioManager(nil, testAudioConfig())

	tests := []struct {
		id       string
		wantOK   bool
		wantLoop bool
	}{
		{"ambient", true, true},
		{"narration-1", true, false},
		{"narration-2", true, false},
		{"missing", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			track, ok := am.track(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("track(%q) ok = %v, 期望 %v", tt.id, ok, tt.wantOK)
			}
			if track.loop != tt.wantLoop {
				t.Errorf("track(%q).loop = %v, 期望 %v", tt.id, track.loop, tt.wantLoop)
			}
		})
	}
}

func TestAudioManagerPlayErrors(t *testing.T) {
	tests := []struct {
		name    string
		trackID string
		readErr error
		wantErr string
		unknown bool
	}{
		{name: "未知音轨", trackID: "missing", unknown: true},
		{name: "无音频源", trackID: "narration-2", wantErr: "no source"},
		{name: "文件不存在", trackID: "narration-1", readErr: fs.ErrNotExist, wantErr: "failed to read"},
		{name: "不支持的格式", trackID: "narration-3", wantErr: "unsupported audio format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			am := NewAudioManager(nil, testAudioConfig())
			am.readFile = func(string) ([]byte, error) {
				if tt.readErr != nil {
					return nil, tt.readErr
				}
				return []byte{0, 1, 2, 3}, nil
			}

			err := am.Play(tt.trackID, 1)
			if err == nil {
				t.Fatal("期望返回错误")
			}
			if tt.unknown && !errors.Is(err, ErrUnknownTrack) {
				t.Errorf("期望 ErrUnknownTrack，实际 %v", err)
			}
			if tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("期望错误包含 %q，实际 %v", tt.wantErr, err)
			}
			if am.IsPlaying(tt.trackID) {
				t.Error("加载失败的音轨不应处于播放状态")
			}
		})
	}
}

// TestAudioManagerUnloadedTrack 未加载的音轨上 Pause/Rewind 不应 panic
func TestAudioManagerUnloadedTrack(t *testing.T) {
	am := NewAudioManager(nil, testAudioConfig())
	am.Pause("ambient")
	am.Rewind("ambient")
	am.Close()
	if am.IsPlaying("ambient") {
		t.Error("期望未加载音轨不在播放")
	}
}
