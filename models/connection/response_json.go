package connection

import (
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

// NextShip is set while the manual placement phase is running;
// GameUuid and View are set once the game has started.
type RespNewGame struct {
	GameUuid string   `json:"game_uuid,omitempty"`
	Fleet    mb.Fleet `json:"fleet"`
	NextShip *mb.Ship `json:"next_ship,omitempty"`
	View     *mb.View `json:"view,omitempty"`
}

type RespPreview struct {
	Preview mb.Preview `json:"preview"`
}

type RespPlaceShip struct {
	Placement mb.Placement `json:"placement"`
	NextShip  *mb.Ship     `json:"next_ship,omitempty"`
	GameUuid  string       `json:"game_uuid,omitempty"`
	View      mb.View      `json:"view"`
}

type RespFire struct {
	Result mb.FireResult `json:"result"`
	View   mb.View       `json:"view"`
}

type RespBoard struct {
	View mb.View `json:"view"`
}

type RespEndGame struct {
	PlayerMatchStatus mb.MatchStatus `json:"player_match_status"`
	Notification      string         `json:"notification"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
