package battleship

type Cell uint8

// Cell codes match the ones the browser client has always used
const (
	CellEmpty Cell = iota
	CellShipPart
	CellSunkenPart
	CellMissedShot
)

const (
	GridSize   = 9
	TotalCells = GridSize * GridSize
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellShipPart:
		return "ship_part"
	case CellSunkenPart:
		return "sunken_part"
	case CellMissedShot:
		return "missed_shot"
	default:
		return "unknown"
	}
}

// A cell that has already been fired upon never changes again.
func (c Cell) IsTerminal() bool {
	return c == CellSunkenPart || c == CellMissedShot
}

type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// Board is the 9x9 grid, row-major. It is a value type,
// so assigning it copies the whole grid.
type Board [GridSize][GridSize]Cell

func InBounds(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}

func (b Board) At(row, col int) Cell {
	return b[row][col]
}

func (b Board) Count(c Cell) int {
	total := 0
	for row := range b {
		for col := range b[row] {
			if b[row][col] == c {
				total++
			}
		}
	}
	return total
}

// ShipParts counts every cell that belongs to a ship, sunk or not.
func (b Board) ShipParts() int {
	return b.Count(CellShipPart) + b.Count(CellSunkenPart)
}
