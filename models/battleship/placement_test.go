package battleship

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

var defaultPositions = Board{
	{0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 0, 0, 1},
	{0, 0, 0, 1, 1, 0, 0, 0, 1},
	{0, 0, 1, 0, 0, 0, 0, 0, 0},
	{0, 0, 1, 0, 0, 0, 1, 1, 1},
	{0, 0, 1, 0, 0, 0, 0, 0, 0},
	{0, 0, 1, 0, 0, 0, 0, 0, 0},
}

// The same layout as defaultPositions, expressed as manual input.
var defaultManual = []ManualPlacement{
	{Row: 1, Col: 0, Orientation: OrientationHorizontal},
	{Row: 0, Col: 8, Orientation: OrientationVertical},
	{Row: 5, Col: 2, Orientation: OrientationVertical},
	{Row: 6, Col: 6, Orientation: OrientationHorizontal},
	{Row: 4, Col: 3, Orientation: OrientationHorizontal},
}

func TestPlaceFixed(t *testing.T) {
	layout := PlaceFixed()

	if diff := cmp.Diff(defaultPositions, layout.Board); diff != "" {
		t.Errorf("unexpected fixed board (-want +got)\n%s", diff)
	}
	checkLayout(t, NewFleet(), layout)

	// Each call must hand out its own copy
	layout.Board[0][0] = CellMissedShot
	layout.Placements[0].Cells[0].Row = 8
	if again := PlaceFixed(); again.Board[0][0] != CellEmpty || again.Placements[0].Cells[0].Row != 1 {
		t.Fatal("fixed layout was mutated through a previous result")
	}
}

func TestPlaceRandom(t *testing.T) {
	fleet := NewFleet()
	for seed := int64(0); seed < 300; seed++ {
		layout, err := PlaceRandom(fleet, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		checkLayout(t, fleet, layout)
	}
}

func TestPlaceRandomIsDeterministicPerSeed(t *testing.T) {
	first, err := PlaceRandom(NewFleet(), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	second, err := PlaceRandom(NewFleet(), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed gave different layouts (-first +second)\n%s", diff)
	}
}

func TestPlaceRandomNoRoom(t *testing.T) {
	fleet := Fleet{{Name: "too_long", Length: GridSize + 1}}

	_, err := PlaceRandom(fleet, rand.New(rand.NewSource(1)))
	if !errors.Is(err, cerr.ErrInvalidPlacement) {
		t.Fatalf("expected ErrInvalidPlacement, got %v", err)
	}
}

// constSource makes every random sample identical.
type constSource int64

func (s constSource) Int63() int64 { return int64(s) }
func (s constSource) Seed(int64) {}

func TestPlaceRandomFallsBackToFirstFit(t *testing.T) {
	// Every sample starts at row 8, col 8, horizontal, where no ship fits
	r := rand.New(constSource(8 << 32))
	if row, col, o := r.Intn(GridSize), r.Intn(GridSize), Orientation(r.Intn(2)+1); row != 8 || col != 8 || o != OrientationHorizontal {
		t.Fatalf("unexpected sample: %d %d %d", row, col, o)
	}

	fleet := NewFleet()
	layout, err := PlaceRandom(fleet, r)
	if err != nil {
		t.Fatal(err)
	}
	checkLayout(t, fleet, layout)

	want := []Placement{
		{Ship: ShipCruiser, Cells: run(0, 0, OrientationHorizontal, 6)},
		{Ship: ShipSubmarine, Cells: run(0, 6, OrientationVertical, 5)},
		{Ship: ShipDestroyer, Cells: run(0, 7, OrientationVertical, 4)},
		{Ship: ShipCarrier, Cells: run(0, 8, OrientationVertical, 3)},
		{Ship: ShipFrigate, Cells: run(1, 0, OrientationHorizontal, 2)},
	}
	if diff := cmp.Diff(want, layout.Placements); diff != "" {
		t.Errorf("unexpected fallback placements (-want +got)\n%s", diff)
	}
}

func TestStraightRun(t *testing.T) {
	bent := Placement{Ship: ShipFrigate, Cells: []Coordinates{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}}
	if straightRun(bent) {
		t.Fatal("an L shaped footprint must not count as a straight run")
	}
	for _, p := range PlaceFixed().Placements {
		if !straightRun(p) {
			t.Fatalf("fixed placement %s is not straight", p.Ship)
		}
	}
}

func TestScanRun(t *testing.T) {
	var b Board
	b[0][3] = CellShipPart
	b[5][4] = CellShipPart

	tests := []struct {
		name   string
		row    int
		col    int
		o      Orientation
		length int
		want   []Coordinates
	}{
		{
			name: "run starts at the start cell", row: 0, col: 0, o: OrientationHorizontal, length: 3,
			want: []Coordinates{{0, 0}, {0, 1}, {0, 2}},
		},
		{
			name: "occupied cell resets the run", row: 0, col: 0, o: OrientationHorizontal, length: 4,
			want: []Coordinates{{0, 4}, {0, 5}, {0, 6}, {0, 7}},
		},
		{
			name: "hits the grid edge", row: 0, col: 6, o: OrientationHorizontal, length: 4,
		},
		{
			name: "vertical run skips occupied cell", row: 3, col: 4, o: OrientationVertical, length: 3,
			want: []Coordinates{{6, 4}, {7, 4}, {8, 4}},
		},
		{
			name: "vertical run too short after start", row: 6, col: 4, o: OrientationVertical, length: 4,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := scanRun(&b, test.row, test.col, test.o, test.length)
			if ok != (test.want != nil) {
				t.Fatalf("expected found: %t\tgot: %t", test.want != nil, ok)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("unexpected run (-want +got)\n%s", diff)
			}
		})
	}
}

func TestFirstFit(t *testing.T) {
	var b Board
	for row := range b {
		for col := range b[row] {
			b[row][col] = CellShipPart
		}
	}
	b[8][1] = CellEmpty
	b[7][1] = CellEmpty

	cells, ok := firstFit(&b, 2)
	if !ok {
		t.Fatal("expected the vertical slot to be found")
	}
	if diff := cmp.Diff([]Coordinates{{7, 1}, {8, 1}}, cells); diff != "" {
		t.Errorf("unexpected slot (-want +got)\n%s", diff)
	}

	if _, ok := firstFit(&b, 3); ok {
		t.Fatal("no slot of length 3 exists")
	}
}

func TestPlaceManual(t *testing.T) {
	layout, err := PlaceManual(NewFleet(), defaultManual)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(PlaceFixed(), layout); diff != "" {
		t.Errorf("manual default layout differs from fixed (-want +got)\n%s", diff)
	}
}

func TestPlaceManualInvalid(t *testing.T) {
	overlap := append([]ManualPlacement{}, defaultManual...)
	// submarine crosses the cruiser in row 1
	overlap[1] = ManualPlacement{Row: 0, Col: 3, Orientation: OrientationVertical}

	offGrid := append([]ManualPlacement{}, defaultManual...)
	offGrid[0] = ManualPlacement{Row: 0, Col: 4, Orientation: OrientationHorizontal}

	negative := append([]ManualPlacement{}, defaultManual...)
	negative[4] = ManualPlacement{Row: -1, Col: 0, Orientation: OrientationHorizontal}

	badOrientation := append([]ManualPlacement{}, defaultManual...)
	badOrientation[2].Orientation = 7

	tests := []struct {
		name       string
		placements []ManualPlacement
	}{
		{name: "overlapping ships", placements: overlap},
		{name: "runs off the grid", placements: offGrid},
		{name: "start outside the grid", placements: negative},
		{name: "unknown orientation", placements: badOrientation},
		{name: "missing ship", placements: defaultManual[:4]},
		{name: "no placements", placements: nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := PlaceManual(NewFleet(), test.placements)
			if !errors.Is(err, cerr.ErrInvalidPlacement) {
				t.Fatalf("expected ErrInvalidPlacement, got %v", err)
			}
		})
	}
}

func TestManualPlacer(t *testing.T) {
	mp := NewManualPlacer(NewFleet())

	ship, ok := mp.Next()
	if !ok || ship.Name != ShipCruiser {
		t.Fatalf("expected cruiser first, got %+v", ship)
	}

	preview := mp.Preview(0, 5, OrientationHorizontal)
	if preview.Valid {
		t.Fatal("cruiser cannot start at col 5")
	}
	if diff := cmp.Diff([]Coordinates{{0, 5}, {0, 6}, {0, 7}, {0, 8}}, preview.Cells); diff != "" {
		t.Errorf("preview must be clipped to the grid (-want +got)\n%s", diff)
	}

	if _, err := mp.Layout(); !errors.Is(err, cerr.ErrInvalidPlacement) {
		t.Fatalf("incomplete placer must not return a layout, got %v", err)
	}

	for i, p := range defaultManual {
		if preview := mp.Preview(p.Row, p.Col, p.Orientation); !preview.Valid {
			t.Fatalf("placement %d previewed as invalid: %+v", i, preview)
		}
		if _, err := mp.Place(p.Row, p.Col, p.Orientation); err != nil {
			t.Fatalf("placement %d: %v", i, err)
		}
	}

	if !mp.Done() {
		t.Fatal("placer should be done after the whole fleet")
	}
	if _, err := mp.Place(0, 0, OrientationHorizontal); !errors.Is(err, cerr.ErrInvalidPlacement) {
		t.Fatalf("expected ErrInvalidPlacement once done, got %v", err)
	}
	if preview := mp.Preview(0, 0, OrientationHorizontal); preview.Valid || len(preview.Cells) != 0 {
		t.Fatalf("preview after done must be empty, got %+v", preview)
	}

	layout, err := mp.Layout()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultPositions, layout.Board); diff != "" {
		t.Errorf("unexpected board (-want +got)\n%s", diff)
	}
}

func TestPlaceInvalidMode(t *testing.T) {
	if _, err := Place(PlacementMode(9), NewFleet(), rand.New(rand.NewSource(0)), nil); err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
}

// checkLayout verifies the footprint invariants every layout must hold.
func checkLayout(t *testing.T, fleet Fleet, layout Layout) {
	t.Helper()

	if got := layout.Board.Count(CellShipPart); got != fleet.TotalParts() {
		t.Fatalf("expected %d ship parts\tgot: %d", fleet.TotalParts(), got)
	}
	if len(layout.Placements) != len(fleet) {
		t.Fatalf("expected %d placements\tgot: %d", len(fleet), len(layout.Placements))
	}

	var owners Board
	for i, p := range layout.Placements {
		if p.Ship != fleet[i].Name || len(p.Cells) != fleet[i].Length {
			t.Fatalf("placement %d does not match ship %+v: %+v", i, fleet[i], p)
		}

		for _, c := range p.Cells {
			if owners[c.Row][c.Col] != CellEmpty {
				t.Fatalf("cell %+v is covered by two ships", c)
			}
			owners[c.Row][c.Col] = CellShipPart
		}
		if !straightRun(p) {
			t.Fatalf("placement %s is not a straight run: %+v", p.Ship, p.Cells)
		}
	}

	if diff := cmp.Diff(owners, layout.Board); diff != "" {
		t.Errorf("board and placements disagree (-placements +board)\n%s", diff)
	}
}

// straightRun reports whether every step of the footprint moves one cell
// right, or every step moves one cell down.
func straightRun(p Placement) bool {
	if len(p.Cells) < 2 {
		return true
	}
	dRow, dCol := p.Cells[1].Row-p.Cells[0].Row, p.Cells[1].Col-p.Cells[0].Col
	if !(dRow == 0 && dCol == 1) && !(dRow == 1 && dCol == 0) {
		return false
	}
	for j := 1; j < len(p.Cells); j++ {
		if p.Cells[j].Row-p.Cells[j-1].Row != dRow || p.Cells[j].Col-p.Cells[j-1].Col != dCol {
			return false
		}
	}
	return true
}
