package battleship

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

func TestGameManager(t *testing.T) {
	bgm := NewBattleshipGameManager(rand.New(rand.NewSource(0)))

	tests := []struct {
		name    string
		mode    PlacementMode
		manual  []ManualPlacement
		wantErr error
	}{
		{name: "fixed", mode: PlacementModeFixed},
		{name: "random", mode: PlacementModeRandom},
		{name: "manual", mode: PlacementModeManual, manual: defaultManual},
		{name: "manual without placements", mode: PlacementModeManual, wantErr: cerr.ErrInvalidPlacement},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			game, err := bgm.CreateGame(test.mode, test.manual)
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("expected %v, got %v", test.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			fetched, err := bgm.FetchGame(game.Uuid())
			if err != nil {
				t.Fatal(err)
			}
			if fetched != game {
				t.Fatal("fetched a different game")
			}
			if game.RemainingParts() != 20 || game.IsOver() {
				t.Fatalf("new game is not fresh: %d parts, over: %t", game.RemainingParts(), game.IsOver())
			}

			bgm.TerminateGame(game.Uuid())
			if _, err := bgm.FetchGame(game.Uuid()); !errors.Is(err, cerr.ErrNotFound) {
				t.Fatalf("expected ErrNotFound after termination, got %v", err)
			}
		})
	}

	if bgm.ActiveGames() != 0 {
		t.Fatalf("expected no active games\tgot: %d", bgm.ActiveGames())
	}
}

func TestGameManagerConcurrentCreate(t *testing.T) {
	bgm := NewBattleshipGameManager(rand.New(rand.NewSource(1)))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := bgm.CreateGame(PlacementModeRandom, nil); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if bgm.ActiveGames() != 20 {
		t.Fatalf("expected 20 games\tgot: %d", bgm.ActiveGames())
	}
}
