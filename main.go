package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	clipboard "golang.design/x/clipboard"
)

var (
	configPath    string
	doDebug       bool
	copyOnRelease bool
)

func main() {
	flag.StringVar(&configPath, "config", "huewheel.json", "picker settings file")
	flag.BoolVar(&doDebug, "debug", false, "verbose/debug logging")
	flag.BoolVar(&copyOnRelease, "copy", false, "copy the selected color to the clipboard when a drag ends")
	sectors := flag.Int("sectors", 0, "override the number of hue sectors")
	flag.Parse()

	setupLogging(doDebug)

	if err := loadSettings(configPath); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
	if *sectors != 0 {
		gs.Picker.Arc.TotalSectors = *sectors
	}

	if copyOnRelease {
		if err := clipboard.Init(); err != nil {
			logWarn("clipboard init: %v", err)
			copyOnRelease = false
		}
	}

	g, err := newGame(gs)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}
	g.copyOnRelease = copyOnRelease

	ebiten.SetWindowSize(gs.WindowWidth, gs.WindowHeight)
	ebiten.SetWindowTitle("Hue Wheel")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		logError("run: %v", err)
		os.Exit(1)
	}
}
