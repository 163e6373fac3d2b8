package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/codexatlas/pkg/config"
	"github.com/decker502/codexatlas/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrUnknownTrack 音轨 ID 未在配置中声明
var ErrUnknownTrack = errors.New("unknown audio track")

// audioTrack 已注册的音轨
type audioTrack struct {
	source string
	loop   bool
}

// AudioManager 音频管理器
// 职责：
//   - 按音轨 ID 懒加载并缓存播放器
//   - 氛围音循环播放，旁白单次播放
//   - 音频源优先从嵌入的 data/ 读取，其次读磁盘
//
// 实现 systems.AudioBackend。
type AudioManager struct {
	context *audio.Context
	cfg     config.AudioConfig
	players map[string]*audio.Player

	// readFile 读取音频源（测试可替换）
	readFile func(path string) ([]byte, error)
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 全局音频上下文（ebiten 每个进程只能创建一个）
//   - cfg: 音频配置，氛围音与旁白都可以播放
func NewAudioManager(ctx *audio.Context, cfg config.AudioConfig) *AudioManager {
	return &AudioManager{
		context:  ctx,
		cfg:      cfg,
		players:  make(map[string]*audio.Player),
		readFile: readAudioSource,
	}
}

// track 查找音轨，只有氛围音循环
func (am *AudioManager) track(trackID string) (audioTrack, bool) {
	t, ok := am.cfg.TrackByID(trackID)
	if !ok {
		return audioTrack{}, false
	}
	return audioTrack{source: t.Source, loop: trackID == am.cfg.Ambient.ID}, true
}

// readAudioSource data/ 前缀的路径从嵌入资源读取
func readAudioSource(path string) ([]byte, error) {
	if embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// Play 设置音量并从当前位置开始播放
func (am *AudioManager) Play(trackID string, volume float64) error {
	player, err := am.player(trackID)
	if err != nil {
		return err
	}
	player.SetVolume(volume)
	player.Play()
	log.Printf("[AudioManager] Playing %s (volume: %.2f)", trackID, volume)
	return nil
}

// Pause 暂停（未加载的音轨忽略）
func (am *AudioManager) Pause(trackID string) {
	if player, ok := am.players[trackID]; ok {
		player.Pause()
	}
}

// Rewind 倒回开头
func (am *AudioManager) Rewind(trackID string) {
	player, ok := am.players[trackID]
	if !ok {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind %s: %v", trackID, err)
	}
}

// IsPlaying 音轨是否正在播放
func (am *AudioManager) IsPlaying(trackID string) bool {
	player, ok := am.players[trackID]
	return ok && player.IsPlaying()
}

// Close 停止并释放所有播放器
func (am *AudioManager) Close() {
	for id, player := range am.players {
		player.Pause()
		if err := player.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close %s: %v", id, err)
		}
	}
	clear(am.players)
}

// player 获取或加载播放器
func (am *AudioManager) player(trackID string) (*audio.Player, error) {
	if player, ok := am.players[trackID]; ok {
		return player, nil
	}
	track, ok := am.track(trackID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTrack, trackID)
	}
	if track.source == "" {
		return nil, fmt.Errorf("track %s has no source", trackID)
	}

	data, err := am.readFile(track.source)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", track.source, err)
	}
	stream, err := decodeAudio(track.source, data)
	if err != nil {
		return nil, err
	}
	if am.context == nil {
		return nil, errors.New("audio context not initialized")
	}

	var src io.Reader = stream
	if track.loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}
	player, err := am.context.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", track.source, err)
	}
	am.players[trackID] = player
	return player, nil
}

// audioStream 解码后的可定位 PCM 流
type audioStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio 按扩展名解码
// 支持 MP3 (.mp3)、OGG Vorbis (.ogg) 和 WAV (.wav)
func decodeAudio(path string, data []byte) (audioStream, error) {
	reader := bytes.NewReader(data)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}
}
