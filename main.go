package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bouncebox/bouncebox/common"
)

func main() {
	sceneName := flag.String("scene", "sandbox", "scene name in scenes/ (basename, .yaml optional)")
	debug := flag.Bool("debug", false, "draw physics body markers")
	watch := flag.Bool("watch", false, "rebuild the session when scene files change on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("bouncebox")

	game := NewGame(*sceneName, *debug, *watch)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
