package api

import (
	"encoding/json"
	"log"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

type RequestHandler interface {
	HandleNewGame(gameManager mb.GameManager) (*mb.Game, *mb.ManualPlacer, mc.Message[mc.RespNewGame])
	HandlePreview(placer *mb.ManualPlacer) mc.Message[mc.RespPreview]
	HandlePlaceShip(gameManager mb.GameManager, placer *mb.ManualPlacer) (*mb.Game, mc.Message[mc.RespPlaceShip])
	HandleFire(game *mb.Game) mc.Message[mc.RespFire]
	HandleToggleReveal(game *mb.Game) mc.Message[mc.RespBoard]
	HandleBoard(game *mb.Game) mc.Message[mc.RespBoard]
}

// Every incoming valid request will have this structure
// The request then is handled in line with RequestHandler interface
type Request struct {
	payload []byte
}

var _ RequestHandler = Request{}

func NewRequest(payload ...[]byte) Request {
	if len(payload) > 1 {
		log.Println("cannot accept more than one payload")
		return Request{}
	}

	var req Request
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return req
}

// Starts a game right away for fixed, random and manual-with-placements.
// Manual mode without placements returns a placer instead of a game.
func (r Request) HandleNewGame(gameManager mb.GameManager) (*mb.Game, *mb.ManualPlacer, mc.Message[mc.RespNewGame]) {
	resp := mc.NewMessage[mc.RespNewGame](mc.CodeNewGame)

	var reqNewGame mc.Message[mc.ReqNewGame]
	if err := json.Unmarshal(r.payload, &reqNewGame); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrNewGameFailed)
		return nil, nil, resp
	}

	if reqNewGame.Payload.Mode == mb.PlacementModeManual && len(reqNewGame.Payload.Placements) == 0 {
		placer := gameManager.NewManualPlacer()
		ship, _ := placer.Next()
		resp.AddPayload(mc.RespNewGame{Fleet: mb.NewFleet(), NextShip: &ship})
		return nil, placer, resp
	}

	game, err := gameManager.CreateGame(reqNewGame.Payload.Mode, reqNewGame.Payload.Placements)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrNewGameFailed)
		return nil, nil, resp
	}

	view := game.View()
	resp.AddPayload(mc.RespNewGame{GameUuid: game.Uuid(), Fleet: game.Fleet(), View: &view})
	return game, nil, resp
}

func (r Request) HandlePreview(placer *mb.ManualPlacer) mc.Message[mc.RespPreview] {
	resp := mc.NewMessage[mc.RespPreview](mc.CodePreview)
	if placer == nil {
		resp.AddError("no ship placement in progress", cerr.ConstErrPlaceShipFailed)
		return resp
	}

	var reqPreview mc.Message[mc.ReqPlaceShip]
	if err := json.Unmarshal(r.payload, &reqPreview); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrPlaceShipFailed)
		return resp
	}

	p := reqPreview.Payload
	if p.Row == nil || p.Col == nil {
		resp.AddError(cerr.ErrCoordinateMissing().Error(), cerr.ConstErrPlaceShipFailed)
		return resp
	}
	resp.AddPayload(mc.RespPreview{Preview: placer.Preview(*p.Row, *p.Col, p.Orientation)})
	return resp
}

// Places the next ship of the placer. When it was the last one the
// game is created and returned.
func (r Request) HandlePlaceShip(gameManager mb.GameManager, placer *mb.ManualPlacer) (*mb.Game, mc.Message[mc.RespPlaceShip]) {
	resp := mc.NewMessage[mc.RespPlaceShip](mc.CodePlaceShip)
	if placer == nil {
		resp.AddError("no ship placement in progress", cerr.ConstErrPlaceShipFailed)
		return nil, resp
	}

	var reqPlaceShip mc.Message[mc.ReqPlaceShip]
	if err := json.Unmarshal(r.payload, &reqPlaceShip); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrPlaceShipFailed)
		return nil, resp
	}

	p := reqPlaceShip.Payload
	if p.Row == nil || p.Col == nil {
		resp.AddError(cerr.ErrCoordinateMissing().Error(), cerr.ConstErrPlaceShipFailed)
		return nil, resp
	}
	placement, err := placer.Place(*p.Row, *p.Col, p.Orientation)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrPlaceShipFailed)
		return nil, resp
	}

	payload := mc.RespPlaceShip{Placement: placement}
	if ship, ok := placer.Next(); ok {
		// Ships are visible to their owner while placing
		payload.View = mb.Render(placer.Board(), true, mb.NewFleet().TotalParts())
		payload.NextShip = &ship
		resp.AddPayload(payload)
		return nil, resp
	}

	layout, err := placer.Layout()
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrPlaceShipFailed)
		return nil, resp
	}

	game := gameManager.CreateGameFromLayout(layout)
	payload.GameUuid = game.Uuid()
	payload.View = game.View()
	resp.AddPayload(payload)
	return game, resp
}

func (r Request) HandleFire(game *mb.Game) mc.Message[mc.RespFire] {
	resp := mc.NewMessage[mc.RespFire](mc.CodeFire)
	if game == nil {
		resp.AddError(cerr.ErrNoActiveGame().Error(), cerr.ConstErrFireFailed)
		return resp
	}

	var reqFire mc.Message[mc.ReqFire]
	if err := json.Unmarshal(r.payload, &reqFire); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrFireFailed)
		return resp
	}

	p := reqFire.Payload
	if p.Row == nil || p.Col == nil {
		resp.AddError(cerr.ErrCoordinateMissing().Error(), cerr.ConstErrFireFailed)
		return resp
	}

	result, err := game.Fire(*p.Row, *p.Col)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrFireFailed)
		return resp
	}

	resp.AddPayload(mc.RespFire{Result: result, View: game.View()})
	return resp
}

func (r Request) HandleToggleReveal(game *mb.Game) mc.Message[mc.RespBoard] {
	resp := mc.NewMessage[mc.RespBoard](mc.CodeToggleReveal)
	if game == nil {
		resp.AddError(cerr.ErrNoActiveGame().Error(), "failed to toggle ships visibility")
		return resp
	}

	game.ToggleReveal()
	resp.AddPayload(mc.RespBoard{View: game.View()})
	return resp
}

func (r Request) HandleBoard(game *mb.Game) mc.Message[mc.RespBoard] {
	resp := mc.NewMessage[mc.RespBoard](mc.CodeBoard)
	if game == nil {
		resp.AddError(cerr.ErrNoActiveGame().Error(), "failed to fetch the board")
		return resp
	}

	resp.AddPayload(mc.RespBoard{View: game.View()})
	return resp
}
