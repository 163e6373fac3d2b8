// exhibit-tools 展品页面的离线工具
//
// 子命令：
//
//	snapshot  渲染首屏粒子星座的 PNG 快照（多个随机种子并行）
//	tui       在终端中实时预览粒子星座（鼠标排斥）
//
// 所有子命令共享 --config（展品配置）与 --verbose。
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/decker502/codexatlas/internal/constellation"
	"github.com/decker502/codexatlas/pkg/config"
)

var (
	verbose    bool
	configPath string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "exhibit-tools",
	Short: "Offline tools for the Codex Atlanticus exhibit",
	Long: `Offline tools for the Codex Atlanticus exhibit.

Available subcommands:
  snapshot - Render PNG snapshots of the hero constellation
  tui      - Preview the hero constellation in the terminal`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !verbose {
			log.SetOutput(io.Discard)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Exhibit config file (default: built-in defaults)")

	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(tuiCmd)
}

// loadFieldConfig 读取展品配置中的星座参数
func loadFieldConfig() (constellation.Config, error) {
	exhibit := config.DefaultExhibitConfig()
	if configPath != "" {
		loaded, err := config.LoadExhibitConfig(configPath)
		if err != nil {
			return constellation.Config{}, err
		}
		exhibit = loaded
	}
	cfg, err := exhibit.Constellation.FieldConfig()
	if err != nil {
		return constellation.Config{}, fmt.Errorf("constellation config: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
