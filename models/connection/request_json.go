package connection

import (
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

type ReqNewGame struct {
	Mode       mb.PlacementMode     `json:"mode"`
	Placements []mb.ManualPlacement `json:"placements,omitempty"`
}

// Used by both CodePreview and CodePlaceShip.
// Row and Col are pointers so a missing field is not read as 0.
type ReqPlaceShip struct {
	Row         *int           `json:"row"`
	Col         *int           `json:"col"`
	Orientation mb.Orientation `json:"orientation"`
}

func NewReqPlaceShip(row, col int, orientation mb.Orientation) ReqPlaceShip {
	return ReqPlaceShip{Row: &row, Col: &col, Orientation: orientation}
}

type ReqFire struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

func NewReqFire(row, col int) ReqFire {
	return ReqFire{Row: &row, Col: &col}
}
