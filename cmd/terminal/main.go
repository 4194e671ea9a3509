package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/namsral/flag"

	"github.com/saeidalz13/battleship-solo/internal/terminal"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

func main() {
	var (
		mode = flag.Int("mode", int(mb.PlacementModeFixed), "placement mode: 0 fixed, 1 random, 2 manual")
		seed = flag.Int64("seed", 0, "seed for random placement; 0 uses the clock")
	)
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}
	defer screen.Fini()

	gameManager := mb.NewBattleshipGameManager(rand.New(rand.NewSource(*seed)))
	app, err := terminal.NewApp(screen, gameManager, mb.PlacementMode(*mode))
	if err != nil {
		screen.Fini()
		log.Fatalf("failed to start game: %v", err)
	}
	app.Run()
}
