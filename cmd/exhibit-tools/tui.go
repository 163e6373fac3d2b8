package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/codexatlas/internal/constellation"
	"github.com/decker502/codexatlas/pkg/canvas"
	"github.com/decker502/codexatlas/pkg/config"
)

var (
	tuiFPS   int
	tuiSeed  int64
	tuiWatch bool
)

// tuiCmd previews the constellation in the terminal
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Preview the hero constellation in the terminal",
	Long: `Preview the hero constellation in the terminal.

Move the mouse to repel particles; leaving the terminal releases them.
Press q or Esc to quit.
With --watch, edits to the --config file regenerate the field.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadFieldConfig()
		if err != nil {
			return err
		}
		return runTUI(cmd.Context(), cfg)
	},
}

func init() {
	tuiCmd.Flags().IntVar(&tuiFPS, "fps", 30, "Frames per second")
	tuiCmd.Flags().Int64Var(&tuiSeed, "seed", 0, "Random seed (0: time based)")
	tuiCmd.Flags().BoolVar(&tuiWatch, "watch", false, "Reload the field when the --config file changes")
}

func runTUI(ctx context.Context, cfg constellation.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	seed := tuiSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tc := canvas.NewTcellCanvas(screen, 0, 0)
	field := constellation.NewField(cfg, rand.New(rand.NewSource(seed)))
	field.Resize(tc.SurfaceSize())

	interval := constellation.DefaultFrameInterval
	if tuiFPS > 0 {
		interval = time.Second / time.Duration(tuiFPS)
	}
	runner := constellation.NewRunner(field, tc, interval)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	runner.Start(ctx)
	defer runner.Stop()

	if tuiWatch && configPath != "" {
		watcher, err := config.NewConfigWatcher(configPath, reconfigureOnChange(runner))
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			watcher.Stop()
			return err
		}
		defer watcher.Stop()
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !handleTUIEvent(ev, screen, tc, runner) {
				return nil
			}
		}
	}
}

// reconfigureOnChange 配置变化后在帧间重建粒子场
func reconfigureOnChange(runner *constellation.Runner) func(*config.ExhibitConfig) {
	return func(exhibit *config.ExhibitConfig) {
		cfg, err := exhibit.Constellation.FieldConfig()
		if err != nil {
			log.Printf("[tui] ignoring constellation config: %v", err)
			return
		}
		runner.Do(func(f *constellation.Field) { f.Reconfigure(cfg) })
	}
}

// handleTUIEvent 处理终端事件，返回 false 表示退出
func handleTUIEvent(ev tcell.Event, screen tcell.Screen, tc *canvas.TcellCanvas, runner *constellation.Runner) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return false
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := tc.CellToSurface(col, row)
		runner.Do(func(f *constellation.Field) { f.SetCursor(x, y) })
	case *tcell.EventFocus:
		// 指针离开终端后不再排斥
		if !ev.Focused {
			runner.Do(func(f *constellation.Field) { f.ClearCursor() })
		}
	case *tcell.EventResize:
		screen.Sync()
		w, h := tc.SurfaceSize()
		runner.Do(func(f *constellation.Field) { f.Resize(w, h) })
	}
	return true
}
