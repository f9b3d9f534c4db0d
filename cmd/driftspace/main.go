package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/driftspace"
)

func main() {
	flag.Parse()

	ebiten.SetWindowSize(driftspace.ScreenWidth, driftspace.ScreenHeight)
	ebiten.SetWindowTitle("driftspace")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := driftspace.NewGame(
		*driftspace.FlagSeed,
		*driftspace.FlagMute,
		*driftspace.FlagNoPost,
		*driftspace.FlagDebug,
	)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
