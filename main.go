package main

import (
	"flag"
	"log"

	"github.com/decker502/codexatlas/pkg/app"
	"github.com/decker502/codexatlas/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "展品配置文件路径（默认使用嵌入的 data/exhibit.yaml）")
	watch      = flag.Bool("watch", false, "监听 --config 文件并热加载")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	exhibit, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Watch:      *watch,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer exhibit.Close()

	window := exhibit.Window()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(exhibit); err != nil {
		log.Fatal(err)
	}
}
