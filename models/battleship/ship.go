package battleship

const (
	ShipCruiser   = "cruiser"
	ShipSubmarine = "submarine"
	ShipDestroyer = "destroyer"
	ShipCarrier   = "carrier"
	ShipFrigate   = "frigate"
)

type Ship struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
}

// Fleet is ordered. Manual and random placement both walk it
// in declaration order.
type Fleet []Ship

func NewFleet() Fleet {
	return Fleet{
		{Name: ShipCruiser, Length: 6},
		{Name: ShipSubmarine, Length: 5},
		{Name: ShipDestroyer, Length: 4},
		{Name: ShipCarrier, Length: 3},
		{Name: ShipFrigate, Length: 2},
	}
}

func (f Fleet) TotalParts() int {
	total := 0
	for _, ship := range f {
		total += ship.Length
	}
	return total
}

// Placement is the footprint of one ship on the board.
type Placement struct {
	Ship  string        `json:"ship"`
	Cells []Coordinates `json:"cells"`
}

func (p Placement) Contains(row, col int) bool {
	for _, c := range p.Cells {
		if c.Row == row && c.Col == col {
			return true
		}
	}
	return false
}

// Layout is what the placement engine hands over to a new game.
type Layout struct {
	Board      Board       `json:"board"`
	Placements []Placement `json:"placements"`
}
