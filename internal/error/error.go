package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrFireFailed      = "fire operation failed"
	ConstErrNewGameFailed   = "failed to create a new game"
	ConstErrPlaceShipFailed = "failed to place the ship"
)

// Every rejected game operation wraps one of these,
// so callers can tell them apart with errors.Is.
var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrAlreadyTargeted   = errors.New("already targeted")
	ErrInvalidPlacement  = errors.New("invalid placement")
	ErrGameAlreadyOver   = errors.New("game already over")
	ErrNotFound          = errors.New("not found")
)

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s: %w", gameUuid, ErrNotFound)
}

func ErrGameIsNil(gameUuid string) error {
	return fmt.Errorf("game with this uuid is nil, uuid: %s", gameUuid)
}

func ErrNoActiveGame() error {
	return fmt.Errorf("there is no active game for this session: %w", ErrNotFound)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s: %w", sessionId, ErrNotFound)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session with this id is nil, id: %s", sessionId)
}

func ErrCoordinateMissing() error {
	return fmt.Errorf("incoming request must contain both row and col: %w", ErrInvalidCoordinate)
}

func ErrXorYOutOfGridBound(row, col int) error {
	return fmt.Errorf("incoming row or col is out of game grid bound\trow: %d\tcol: %d: %w", row, col, ErrInvalidCoordinate)
}

func ErrPositionAlreadyTargeted(row, col int) error {
	return fmt.Errorf("this position is already hit in previous rounds\trow: %d\tcol: %d: %w", row, col, ErrAlreadyTargeted)
}

func ErrFireAfterGameOver() error {
	return fmt.Errorf("no more shots accepted: %w", ErrGameAlreadyOver)
}

func ErrShipDoesNotFit(ship string, row, col int) error {
	return fmt.Errorf("ship %q does not fit starting at\trow: %d\tcol: %d: %w", ship, row, col, ErrInvalidPlacement)
}

func ErrInvalidOrientation(orientation uint8) error {
	return fmt.Errorf("orientation must be horizontal (1) or vertical (2), got %d: %w", orientation, ErrInvalidPlacement)
}

func ErrPlacementCount(want, got int) error {
	return fmt.Errorf("expected %d ship placements, got %d: %w", want, got, ErrInvalidPlacement)
}

func ErrNoRoomForShip(ship string) error {
	return fmt.Errorf("no free run left on the board for ship %q: %w", ship, ErrInvalidPlacement)
}

func ErrAllShipsPlaced() error {
	return fmt.Errorf("every ship of the fleet is already placed: %w", ErrInvalidPlacement)
}

func ErrPlacementIncomplete(remaining int) error {
	return fmt.Errorf("%d ships still need a position: %w", remaining, ErrInvalidPlacement)
}

func ErrInvalidPlacementMode(mode uint8) error {
	return fmt.Errorf("invalid placement mode: %d", mode)
}
