// Package terminal is a local front end for a single game, drawn with tcell.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/saeidalz13/battleship-solo/internal/tableview"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

const (
	boardX    = 4
	boardY    = 2
	cellWidth = 2
	helpText  = "arrows/hjkl move  enter fire  r reveal  n new game  o rotate  q quit"
)

var (
	styleWater  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleShip   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSunken = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleMissed = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlace  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBad    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleText   = tcell.StyleDefault
)

type App struct {
	screen      tcell.Screen
	gameManager mb.GameManager
	mode        mb.PlacementMode

	game        *mb.Game
	placer      *mb.ManualPlacer
	orientation mb.Orientation

	cursorRow, cursorCol int
	status               string
}

func NewApp(screen tcell.Screen, gameManager mb.GameManager, mode mb.PlacementMode) (*App, error) {
	a := &App{
		screen:      screen,
		gameManager: gameManager,
		mode:        mode,
		orientation: mb.OrientationHorizontal,
	}
	if err := a.newGame(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) Game() *mb.Game {
	return a.game
}

func (a *App) Status() string {
	return a.status
}

// newGame drops the current game. Manual mode opens the placement phase.
func (a *App) newGame() error {
	if a.game != nil {
		a.gameManager.TerminateGame(a.game.Uuid())
		a.game = nil
	}
	a.status = ""

	if a.mode == mb.PlacementModeManual {
		a.placer = a.gameManager.NewManualPlacer()
		return nil
	}

	game, err := a.gameManager.CreateGame(a.mode, nil)
	if err != nil {
		return err
	}
	a.game = game
	a.placer = nil
	return nil
}

func (a *App) moveCursor(dRow, dCol int) {
	row, col := a.cursorRow+dRow, a.cursorCol+dCol
	if mb.InBounds(row, col) {
		a.cursorRow, a.cursorCol = row, col
	}
}

func (a *App) confirm() {
	if a.placer != nil {
		a.placeShip()
		return
	}
	if a.game == nil {
		return
	}

	result, err := a.game.Fire(a.cursorRow, a.cursorCol)
	if err != nil {
		a.status = err.Error()
		return
	}

	switch {
	case result.ShipSunk != "":
		a.status = fmt.Sprintf("%s sunk", result.ShipSunk)
	case result.Cell == mb.CellSunkenPart:
		a.status = "hit"
	default:
		a.status = "miss"
	}
}

func (a *App) placeShip() {
	placement, err := a.placer.Place(a.cursorRow, a.cursorCol, a.orientation)
	if err != nil {
		a.status = err.Error()
		return
	}
	a.status = placement.Ship + " placed"

	if !a.placer.Done() {
		return
	}

	layout, err := a.placer.Layout()
	if err != nil {
		a.status = err.Error()
		return
	}
	a.game = a.gameManager.CreateGameFromLayout(layout)
	a.placer = nil
}

// handleKey applies one key press. It returns false when the app should quit.
func (a *App) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.moveCursor(-1, 0)
	case tcell.KeyDown:
		a.moveCursor(1, 0)
	case tcell.KeyLeft:
		a.moveCursor(0, -1)
	case tcell.KeyRight:
		a.moveCursor(0, 1)
	case tcell.KeyEnter:
		a.confirm()
	case tcell.KeyRune:
		return a.handleRune(r)
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'k':
		a.moveCursor(-1, 0)
	case 'j':
		a.moveCursor(1, 0)
	case 'h':
		a.moveCursor(0, -1)
	case 'l':
		a.moveCursor(0, 1)
	case ' ':
		a.confirm()
	case 'r':
		if a.game != nil {
			a.game.ToggleReveal()
		}
	case 'o':
		if a.orientation == mb.OrientationHorizontal {
			a.orientation = mb.OrientationVertical
		} else {
			a.orientation = mb.OrientationHorizontal
		}
	case 'n':
		if err := a.newGame(); err != nil {
			a.status = err.Error()
		}
	}
	return true
}

// view is what the board currently looks like. During placement the
// player sees their own ships.
func (a *App) view() mb.View {
	if a.placer != nil {
		return mb.Render(a.placer.Board(), true, mb.NewFleet().TotalParts())
	}
	if a.game == nil {
		return mb.Render(mb.Board{}, false, mb.NewFleet().TotalParts())
	}
	return a.game.View()
}

func styleFor(vc mb.ViewCell) tcell.Style {
	switch {
	case vc.State == mb.ViewStateSunken:
		return styleSunken
	case vc.State == mb.ViewStateMissed:
		return styleMissed
	case vc.Ship:
		return styleShip
	default:
		return styleWater
	}
}

func (a *App) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (a *App) draw() {
	a.screen.Clear()
	v := a.view()

	for col := 0; col < mb.GridSize; col++ {
		a.drawText(boardX+col*cellWidth, boardY-1, fmt.Sprint(col), styleText)
	}

	preview := map[mb.Coordinates]tcell.Style{}
	if a.placer != nil {
		p := a.placer.Preview(a.cursorRow, a.cursorCol, a.orientation)
		style := stylePlace
		if !p.Valid {
			style = styleBad
		}
		for _, c := range p.Cells {
			preview[c] = style
		}
	}

	for row := 0; row < mb.GridSize; row++ {
		a.drawText(boardX-2, boardY+row, fmt.Sprint(row), styleText)
		for col := 0; col < mb.GridSize; col++ {
			vc := v.Cells[row][col]
			style := styleFor(vc)
			if s, ok := preview[mb.NewCoordinates(row, col)]; ok {
				style = s
			}
			if row == a.cursorRow && col == a.cursorCol {
				style = style.Reverse(true)
			}

			symbol := []rune(tableview.Symbol(vc))[0]
			a.screen.SetContent(boardX+col*cellWidth, boardY+row, symbol, nil, style)
		}
	}

	hudY := boardY + mb.GridSize + 1
	if a.placer != nil {
		if ship, ok := a.placer.Next(); ok {
			a.drawText(boardX, hudY, fmt.Sprintf("place %s (%d)", ship.Name, ship.Length), styleText)
		}
	} else {
		a.drawText(boardX, hudY, fmt.Sprintf("remaining parts: %d", v.RemainingParts), styleText)
	}
	a.drawText(boardX, hudY+1, v.Notification, styleSunken)
	a.drawText(boardX, hudY+2, a.status, styleText)
	a.drawText(boardX, hudY+4, helpText, styleMissed)

	a.screen.Show()
}

// Run draws the board and processes key presses until the player quits.
// The caller owns the screen and calls Fini.
func (a *App) Run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a.draw()
	for ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if !a.handleKey(ev.Key(), ev.Rune()) {
				return
			}
		case *tcell.EventResize:
			a.screen.Sync()
		}
		a.draw()
	}
}
