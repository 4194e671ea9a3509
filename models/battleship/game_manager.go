package battleship

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type GameManager interface {
	CreateGame(mode PlacementMode, manual []ManualPlacement) (*Game, error)
	CreateGameFromLayout(layout Layout) *Game
	FetchGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	NewManualPlacer() *ManualPlacer
}

type BattleshipGameManager struct {
	games map[string]*Game
	mu    sync.RWMutex

	// rand.Rand is not safe for concurrent use
	rng   *rand.Rand
	rngMu sync.Mutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager(r *rand.Rand) *BattleshipGameManager {
	initMapSize := 10

	return &BattleshipGameManager{
		games: make(map[string]*Game, initMapSize),
		rng:   r,
	}
}

func (bgm *BattleshipGameManager) CreateGame(mode PlacementMode, manual []ManualPlacement) (*Game, error) {
	bgm.rngMu.Lock()
	layout, err := Place(mode, NewFleet(), bgm.rng, manual)
	bgm.rngMu.Unlock()
	if err != nil {
		return nil, err
	}

	return bgm.CreateGameFromLayout(layout), nil
}

func (bgm *BattleshipGameManager) CreateGameFromLayout(layout Layout) *Game {
	game := newGame(uuid.NewString()[:6], layout, NewFleet())

	bgm.mu.Lock()
	bgm.games[game.uuid] = game
	bgm.mu.Unlock()

	return game
}

func (bgm *BattleshipGameManager) FetchGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()

	game, prs := bgm.games[gameUuid]
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}

	if game == nil {
		return nil, cerr.ErrGameIsNil(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) NewManualPlacer() *ManualPlacer {
	return NewManualPlacer(NewFleet())
}

func (bgm *BattleshipGameManager) ActiveGames() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}
