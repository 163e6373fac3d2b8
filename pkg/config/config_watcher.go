package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher 监听展品配置文件，文件变化后重新加载并回调
//
// 监听的是配置文件所在目录（编辑器保存时常常是"写临时文件再改名"），
// 只处理目标文件的事件。连续保存会被合并（防抖）。
type ConfigWatcher struct {
	path     string
	onChange func(*ExhibitConfig)
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu        sync.Mutex
	running   bool
	pending   bool
	lastEvent time.Time
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewConfigWatcher 创建配置监听器
//
// 参数:
//   - path: 配置文件路径
//   - onChange: 重新加载成功后的回调（在监听 goroutine 中调用）
func NewConfigWatcher(path string, onChange func(*ExhibitConfig)) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	return &ConfigWatcher{
		path:     abs,
		onChange: onChange,
		watcher:  watcher,
		debounce: 200 * time.Millisecond,
	}, nil
}

// Start 开始监听（非阻塞）
func (w *ConfigWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	go w.run(ctx)

	log.Printf("[ConfigWatcher] 监听配置文件: %s", w.path)
	return nil
}

// Stop 停止监听并等待 goroutine 退出，可重复调用
func (w *ConfigWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		log.Printf("[ConfigWatcher] Warning: failed to close watcher: %v", err)
	}
	log.Printf("[ConfigWatcher] stopped")
}

func (w *ConfigWatcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[ConfigWatcher] Warning: watcher error: %v", err)
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *ConfigWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	w.pending = true
	w.lastEvent = time.Now()
	w.mu.Unlock()
}

// flush 在防抖窗口结束后重新加载配置
func (w *ConfigWatcher) flush() {
	w.mu.Lock()
	if !w.pending || time.Since(w.lastEvent) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = false
	w.mu.Unlock()

	cfg, err := LoadExhibitConfig(w.path)
	if err != nil {
		// 保存到一半的文件很常见，保留当前配置
		log.Printf("[ConfigWatcher] Warning: reload failed: %v (keeping current config)", err)
		return
	}

	log.Printf("[ConfigWatcher] 配置已重新加载")
	if w.onChange != nil {
		w.onChange(cfg)
	}
}
