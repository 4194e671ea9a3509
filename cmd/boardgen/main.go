// Command boardgen prints a ship layout for a placement mode and seed.
package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/namsral/flag"

	"github.com/saeidalz13/battleship-solo/internal/tableview"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

func main() {
	var (
		mode   = flag.Int("mode", int(mb.PlacementModeRandom), "placement mode: 0 fixed, 1 random")
		seed   = flag.Int64("seed", 0, "seed for random placement; 0 uses the clock")
		hidden = flag.Bool("hidden", false, "print the board the way the player sees it")
		color  = flag.Bool("color", true, "colorize the output")
	)
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	layout, err := mb.Place(mb.PlacementMode(*mode), mb.NewFleet(), rand.New(rand.NewSource(*seed)), nil)
	if err != nil {
		log.Fatalf("failed to place the fleet: %v", err)
	}

	for _, p := range layout.Placements {
		log.Printf("%-10s %v", p.Ship, p.Cells)
	}

	tableview.Print(os.Stdout, mb.Render(layout.Board, !*hidden, layout.Board.ShipParts()), *color)
	log.Println("seed:", *seed)
}
