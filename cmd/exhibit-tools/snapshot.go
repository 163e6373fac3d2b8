package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/decker502/codexatlas/internal/constellation"
	"github.com/decker502/codexatlas/pkg/canvas"
)

// snapshotOptions snapshot 子命令参数
type snapshotOptions struct {
	Width, Height int
	Frames        int
	Seeds         []int64
	OutDir        string
	// Cursor 非空时固定排斥光标（表面坐标 "x,y"）
	Cursor string
	// Caption 在左下角标注种子与粒子数
	Caption bool
}

var snapshotOpts = snapshotOptions{
	Width:   1280,
	Height:  800,
	Frames:  120,
	Seeds:   []int64{1},
	OutDir:  ".",
	Caption: true,
}

// snapshotCmd renders PNG snapshots
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render PNG snapshots of the hero constellation",
	Long: `Render the hero constellation offscreen and save one PNG per seed.

Each seed produces an independent field that is stepped --frames times
before the last frame is written to <out>/constellation-<seed>.png.
Seeds are rendered concurrently.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadFieldConfig()
		if err != nil {
			return err
		}
		paths, err := renderSnapshots(cmd.Context(), cfg, snapshotOpts)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	f := snapshotCmd.Flags()
	f.IntVar(&snapshotOpts.Width, "width", snapshotOpts.Width, "Surface width in pixels")
	f.IntVar(&snapshotOpts.Height, "height", snapshotOpts.Height, "Surface height in pixels")
	f.IntVar(&snapshotOpts.Frames, "frames", snapshotOpts.Frames, "Frames to simulate before saving")
	f.Int64SliceVar(&snapshotOpts.Seeds, "seeds", snapshotOpts.Seeds, "Random seeds, one PNG each")
	f.StringVarP(&snapshotOpts.OutDir, "out", "o", snapshotOpts.OutDir, "Output directory")
	f.StringVar(&snapshotOpts.Cursor, "cursor", "", "Fixed repulsion cursor as x,y")
	f.BoolVar(&snapshotOpts.Caption, "caption", snapshotOpts.Caption, "Draw seed and particle count")
}

// parseCursor 解析 "x,y"
func parseCursor(s string) (float64, float64, error) {
	var x, y float64
	if _, err := fmt.Sscanf(s, "%g,%g", &x, &y); err != nil {
		return 0, 0, fmt.Errorf("invalid cursor %q (want x,y): %w", s, err)
	}
	return x, y, nil
}

// renderSnapshots 为每个种子渲染一张快照，返回输出路径（与 Seeds 顺序一致）
func renderSnapshots(ctx context.Context, cfg constellation.Config, opts snapshotOptions) ([]string, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("snapshot size must be positive, got %dx%d", opts.Width, opts.Height)
	}
	if opts.Frames < 1 {
		return nil, fmt.Errorf("frames must be >= 1, got %d", opts.Frames)
	}
	var cursorX, cursorY float64
	if opts.Cursor != "" {
		var err error
		if cursorX, cursorY, err = parseCursor(opts.Cursor); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, len(opts.Seeds))
	g, ctx := errgroup.WithContext(ctx)
	for i, seed := range opts.Seeds {
		g.Go(func() error {
			field := constellation.NewField(cfg, rand.New(rand.NewSource(seed)))
			field.Resize(opts.Width, opts.Height)
			if opts.Cursor != "" {
				field.SetCursor(cursorX, cursorY)
			}

			gc := canvas.NewGGCanvas(opts.Width, opts.Height)
			for frame := 0; frame < opts.Frames; frame++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				field.Update()
			}
			field.Draw(gc)
			if opts.Caption {
				gc.DrawCaption(fmt.Sprintf("seed %d  frames %d  particles %d", seed, opts.Frames, field.Count()), 12, float64(opts.Height)-12)
			}

			path := filepath.Join(opts.OutDir, fmt.Sprintf("constellation-%d.png", seed))
			if err := gc.SavePNG(path); err != nil {
				return err
			}
			log.Printf("[snapshot] seed %d: %d particles -> %s", seed, field.Count(), path)
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
