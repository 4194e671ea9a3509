package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID

	// Starts a new game. Manual mode without placements
	// opens a ship by ship placement phase.
	CodeNewGame

	// Manual placement phase
	CodePreview
	CodePlaceShip

	CodeFire
	CodeEndGame
	CodeToggleReveal
	CodeBoard
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}
