package battleship

const (
	ViewStateSunken = "sunken"
	ViewStateMissed = "missed"

	NotificationWin  = "YOU WIN!!"
	NotificationLose = "GAME OVER!!"
)

type ViewCell struct {
	State string `json:"state,omitempty"`
	Ship  bool   `json:"ship,omitempty"`
}

// View is everything a front end needs to draw the board and the HUD.
type View struct {
	Cells          [GridSize][GridSize]ViewCell `json:"cells"`
	RemainingParts int                          `json:"remaining_parts"`
	MatchStatus    MatchStatus                  `json:"match_status"`
	Notification   string                       `json:"notification,omitempty"`
	Reveal         bool                         `json:"reveal"`
}

// Render maps a board to its view-model. Ship parts that are still
// afloat look exactly like water unless reveal is set.
func Render(b Board, reveal bool, totalParts int) View {
	v := View{Reveal: reveal}
	sunken, missed := 0, 0

	for row := range b {
		for col, cell := range b[row] {
			vc := &v.Cells[row][col]
			switch cell {
			case CellSunkenPart:
				vc.State = ViewStateSunken
				sunken++
			case CellMissedShot:
				vc.State = ViewStateMissed
				missed++
			}
			vc.Ship = reveal && (cell == CellShipPart || cell == CellSunkenPart)
		}
	}

	v.RemainingParts = totalParts - sunken
	v.MatchStatus = EvaluateEnd(sunken, missed, totalParts)
	switch v.MatchStatus {
	case MatchStatusWon:
		v.Notification = NotificationWin
	case MatchStatusLost:
		v.Notification = NotificationLose
	}
	return v
}
