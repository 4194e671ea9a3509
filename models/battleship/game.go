package battleship

import (
	"time"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type MatchStatus int

const (
	MatchStatusLost      MatchStatus = -1
	MatchStatusUndefined MatchStatus = 0
	MatchStatusWon       MatchStatus = 1
)

// EvaluateEnd decides the match from the aggregate counts only.
func EvaluateEnd(sunken, missed, totalParts int) MatchStatus {
	if sunken == totalParts {
		return MatchStatusWon
	}
	if missed == TotalCells-totalParts {
		return MatchStatusLost
	}
	return MatchStatusUndefined
}

type FireResult struct {
	Row            int         `json:"row"`
	Col            int         `json:"col"`
	Cell           Cell        `json:"cell"`
	ShipSunk       string      `json:"ship_sunk,omitempty"`
	RemainingParts int         `json:"remaining_parts"`
	MatchStatus    MatchStatus `json:"match_status"`
}

// Game owns the board of a single match. It is not safe for
// concurrent use; a websocket session drives one game at a time.
type Game struct {
	uuid        string
	board       Board
	fleet       Fleet
	placements  []Placement
	totalParts  int
	sunken      int
	missed      int
	reveal      bool
	matchStatus MatchStatus
	createdAt   time.Time
}

func NewGame(layout Layout, fleet Fleet) *Game {
	return newGame(uuid.NewString()[:6], layout, fleet)
}

func newGame(gameUuid string, layout Layout, fleet Fleet) *Game {
	g := &Game{
		uuid:       gameUuid,
		board:      layout.Board,
		fleet:      fleet,
		placements: layout.Placements,
		totalParts: layout.Board.ShipParts(),
		createdAt:  time.Now(),
	}

	g.sunken = g.board.Count(CellSunkenPart)
	g.missed = g.board.Count(CellMissedShot)
	g.matchStatus = EvaluateEnd(g.sunken, g.missed, g.totalParts)
	return g
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Fleet() Fleet {
	return g.fleet
}

func (g *Game) CreatedAt() time.Time {
	return g.createdAt
}

// Board returns a copy of the grid.
func (g *Game) Board() Board {
	return g.board
}

// Fire targets one cell. Once the match is decided every shot is rejected.
func (g *Game) Fire(row, col int) (FireResult, error) {
	if g.IsOver() {
		return FireResult{}, cerr.ErrFireAfterGameOver()
	}
	if !InBounds(row, col) {
		return FireResult{}, cerr.ErrXorYOutOfGridBound(row, col)
	}

	cell := g.board[row][col]
	if cell.IsTerminal() {
		return FireResult{}, cerr.ErrPositionAlreadyTargeted(row, col)
	}

	result := FireResult{Row: row, Col: col}
	if cell == CellShipPart {
		g.board[row][col] = CellSunkenPart
		g.sunken++
		result.ShipSunk = g.sunkShipAt(row, col)
	} else {
		g.board[row][col] = CellMissedShot
		g.missed++
	}

	g.matchStatus = EvaluateEnd(g.sunken, g.missed, g.totalParts)

	result.Cell = g.board[row][col]
	result.RemainingParts = g.RemainingParts()
	result.MatchStatus = g.matchStatus
	return result, nil
}

// sunkShipAt names the ship covering (row, col) if none of its parts
// is left afloat.
func (g *Game) sunkShipAt(row, col int) string {
	for _, p := range g.placements {
		if !p.Contains(row, col) {
			continue
		}
		for _, c := range p.Cells {
			if g.board[c.Row][c.Col] != CellSunkenPart {
				return ""
			}
		}
		return p.Ship
	}
	return ""
}

func (g *Game) IsWon() bool {
	return g.matchStatus == MatchStatusWon
}

func (g *Game) IsLost() bool {
	return g.matchStatus == MatchStatusLost
}

func (g *Game) IsOver() bool {
	return g.matchStatus != MatchStatusUndefined
}

func (g *Game) MatchStatus() MatchStatus {
	return g.matchStatus
}

func (g *Game) RemainingParts() int {
	return g.totalParts - g.sunken
}

func (g *Game) SunkenParts() int {
	return g.sunken
}

func (g *Game) MissedShots() int {
	return g.missed
}

func (g *Game) TotalParts() int {
	return g.totalParts
}

// The reveal flag never touches the board; it only changes what View shows.
func (g *Game) ToggleReveal() bool {
	g.reveal = !g.reveal
	return g.reveal
}

func (g *Game) Reveal() bool {
	return g.reveal
}

func (g *Game) View() View {
	return Render(g.board, g.reveal, g.totalParts)
}
