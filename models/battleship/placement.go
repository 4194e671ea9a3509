package battleship

import (
	"math/rand"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type PlacementMode uint8

const (
	PlacementModeFixed PlacementMode = iota
	PlacementModeRandom
	PlacementModeManual
)

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota + 1
	OrientationVertical
)

// Random samples per ship before falling back to a deterministic scan.
const MaxPlacementAttempts = 1000

func (o Orientation) IsValid() bool {
	return o == OrientationHorizontal || o == OrientationVertical
}

// step returns the row and col deltas of moving one cell along o.
func (o Orientation) step() (int, int) {
	if o == OrientationVertical {
		return 1, 0
	}
	return 0, 1
}

type ManualPlacement struct {
	Row         int         `json:"row"`
	Col         int         `json:"col"`
	Orientation Orientation `json:"orientation"`
}

// The default layout: row 1 holds the cruiser, column 8 the submarine,
// column 2 the destroyer, row 6 the carrier and row 4 the frigate.
var fixedPlacements = []Placement{
	{Ship: ShipCruiser, Cells: run(1, 0, OrientationHorizontal, 6)},
	{Ship: ShipSubmarine, Cells: run(0, 8, OrientationVertical, 5)},
	{Ship: ShipDestroyer, Cells: run(5, 2, OrientationVertical, 4)},
	{Ship: ShipCarrier, Cells: run(6, 6, OrientationHorizontal, 3)},
	{Ship: ShipFrigate, Cells: run(4, 3, OrientationHorizontal, 2)},
}

func run(row, col int, o Orientation, length int) []Coordinates {
	dr, dc := o.step()
	cells := make([]Coordinates, 0, length)
	for i := 0; i < length; i++ {
		cells = append(cells, NewCoordinates(row+i*dr, col+i*dc))
	}
	return cells
}

func (l *Layout) add(ship string, cells []Coordinates) Placement {
	for _, c := range cells {
		l.Board[c.Row][c.Col] = CellShipPart
	}
	p := Placement{Ship: ship, Cells: cells}
	l.Placements = append(l.Placements, p)
	return p
}

// PlaceFixed copies the hard-coded default layout. It always succeeds.
func PlaceFixed() Layout {
	var layout Layout
	for _, p := range fixedPlacements {
		cells := make([]Coordinates, len(p.Cells))
		copy(cells, p.Cells)
		layout.add(p.Ship, cells)
	}
	return layout
}

// scanRun walks from (row, col) towards the grid edge along o and returns
// the first run of length consecutive empty cells. An occupied cell resets
// the run; cells before the start are never looked at.
func scanRun(b *Board, row, col int, o Orientation, length int) ([]Coordinates, bool) {
	dr, dc := o.step()
	cells := make([]Coordinates, 0, length)

	for r, c := row, col; InBounds(r, c); r, c = r+dr, c+dc {
		if b[r][c] != CellEmpty {
			cells = cells[:0]
			continue
		}

		cells = append(cells, NewCoordinates(r, c))
		if len(cells) == length {
			return cells, true
		}
	}
	return nil, false
}

// exactRun requires the run to start exactly at (row, col).
func exactRun(b *Board, row, col int, o Orientation, length int) ([]Coordinates, bool) {
	cells := run(row, col, o, length)
	for _, c := range cells {
		if !InBounds(c.Row, c.Col) || b[c.Row][c.Col] != CellEmpty {
			return nil, false
		}
	}
	return cells, true
}

// firstFit is the deterministic fallback: rows first, then columns,
// horizontal before vertical.
func firstFit(b *Board, length int) ([]Coordinates, bool) {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			for _, o := range []Orientation{OrientationHorizontal, OrientationVertical} {
				if cells, ok := exactRun(b, row, col, o, length); ok {
					return cells, true
				}
			}
		}
	}
	return nil, false
}

// PlaceRandom scatters the fleet over an empty board. Each ship gets
// MaxPlacementAttempts random tries; after that the first slot that fits
// is taken, so the function always terminates.
func PlaceRandom(fleet Fleet, r *rand.Rand) (Layout, error) {
	var layout Layout
	for _, ship := range fleet {
		cells, ok := randomRun(&layout.Board, ship.Length, r)
		if !ok {
			cells, ok = firstFit(&layout.Board, ship.Length)
		}
		if !ok {
			return Layout{}, cerr.ErrNoRoomForShip(ship.Name)
		}
		layout.add(ship.Name, cells)
	}
	return layout, nil
}

func randomRun(b *Board, length int, r *rand.Rand) ([]Coordinates, bool) {
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		row := r.Intn(GridSize)
		col := r.Intn(GridSize)
		o := Orientation(r.Intn(2) + 1)

		if cells, ok := scanRun(b, row, col, o, length); ok {
			return cells, true
		}
	}
	return nil, false
}

// PlaceManual commits one user-chosen placement per ship, in fleet order.
func PlaceManual(fleet Fleet, placements []ManualPlacement) (Layout, error) {
	if len(placements) != len(fleet) {
		return Layout{}, cerr.ErrPlacementCount(len(fleet), len(placements))
	}

	placer := NewManualPlacer(fleet)
	for _, mp := range placements {
		if _, err := placer.Place(mp.Row, mp.Col, mp.Orientation); err != nil {
			return Layout{}, err
		}
	}
	return placer.Layout()
}

// Place builds a layout with the given mode. manual is only read
// in PlacementModeManual.
func Place(mode PlacementMode, fleet Fleet, r *rand.Rand, manual []ManualPlacement) (Layout, error) {
	switch mode {
	case PlacementModeFixed:
		return PlaceFixed(), nil
	case PlacementModeRandom:
		return PlaceRandom(fleet, r)
	case PlacementModeManual:
		return PlaceManual(fleet, manual)
	default:
		return Layout{}, cerr.ErrInvalidPlacementMode(uint8(mode))
	}
}

// ManualPlacer places the fleet one ship at a time, the way a player
// does it by hovering over the board and confirming a start cell.
type ManualPlacer struct {
	fleet  Fleet
	next   int
	layout Layout
}

type Preview struct {
	Ship  Ship          `json:"ship"`
	Cells []Coordinates `json:"cells"`
	Valid bool          `json:"valid"`
}

func NewManualPlacer(fleet Fleet) *ManualPlacer {
	return &ManualPlacer{fleet: fleet}
}

// Next returns the ship waiting for a position.
func (mp *ManualPlacer) Next() (Ship, bool) {
	if mp.Done() {
		return Ship{}, false
	}
	return mp.fleet[mp.next], true
}

func (mp *ManualPlacer) Done() bool {
	return mp.next >= len(mp.fleet)
}

func (mp *ManualPlacer) Board() Board {
	return mp.layout.Board
}

// Preview lists the cells the next ship would cover from (row, col),
// clipped to the grid, and whether dropping it there is allowed.
func (mp *ManualPlacer) Preview(row, col int, o Orientation) Preview {
	ship, ok := mp.Next()
	if !ok || !InBounds(row, col) || !o.IsValid() {
		return Preview{Ship: ship}
	}

	preview := Preview{Ship: ship}
	for _, c := range run(row, col, o, ship.Length) {
		if !InBounds(c.Row, c.Col) {
			break
		}
		preview.Cells = append(preview.Cells, c)
	}

	_, preview.Valid = exactRun(&mp.layout.Board, row, col, o, ship.Length)
	return preview
}

func (mp *ManualPlacer) Place(row, col int, o Orientation) (Placement, error) {
	ship, ok := mp.Next()
	if !ok {
		return Placement{}, cerr.ErrAllShipsPlaced()
	}
	if !o.IsValid() {
		return Placement{}, cerr.ErrInvalidOrientation(uint8(o))
	}
	if !InBounds(row, col) {
		return Placement{}, cerr.ErrShipDoesNotFit(ship.Name, row, col)
	}

	cells, ok := exactRun(&mp.layout.Board, row, col, o, ship.Length)
	if !ok {
		return Placement{}, cerr.ErrShipDoesNotFit(ship.Name, row, col)
	}

	mp.next++
	return mp.layout.add(ship.Name, cells), nil
}

func (mp *ManualPlacer) Layout() (Layout, error) {
	if !mp.Done() {
		return Layout{}, cerr.ErrPlacementIncomplete(len(mp.fleet) - mp.next)
	}
	return mp.layout, nil
}
