package battleship

import (
	"testing"
)

func TestRender(t *testing.T) {
	var b Board
	b[0][0] = CellShipPart
	b[0][1] = CellSunkenPart
	b[0][2] = CellMissedShot

	tests := []struct {
		name   string
		reveal bool
		want   [3]ViewCell
	}{
		{
			name: "hidden ships",
			want: [3]ViewCell{{}, {State: ViewStateSunken}, {State: ViewStateMissed}},
		},
		{
			name:   "revealed ships",
			reveal: true,
			want:   [3]ViewCell{{Ship: true}, {State: ViewStateSunken, Ship: true}, {State: ViewStateMissed}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := Render(b, test.reveal, 2)
			for col, want := range test.want {
				if got := v.Cells[0][col]; got != want {
					t.Fatalf("col %d: expected %+v\tgot: %+v", col, want, got)
				}
			}
			if v.Cells[5][5] != (ViewCell{}) {
				t.Fatalf("water must render empty, got %+v", v.Cells[5][5])
			}
			if v.RemainingParts != 1 || v.Notification != "" || v.Reveal != test.reveal {
				t.Fatalf("unexpected hud: %+v", v)
			}
		})
	}
}

func TestRenderNotifications(t *testing.T) {
	won := newFixedGame()
	for _, c := range cellsWith(won.Board(), CellShipPart) {
		if _, err := won.Fire(c.Row, c.Col); err != nil {
			t.Fatal(err)
		}
	}
	if v := won.View(); v.Notification != NotificationWin || v.MatchStatus != MatchStatusWon {
		t.Fatalf("unexpected view after a win: %q %d", v.Notification, v.MatchStatus)
	}

	lost := newFixedGame()
	for _, c := range cellsWith(lost.Board(), CellEmpty) {
		if _, err := lost.Fire(c.Row, c.Col); err != nil {
			t.Fatal(err)
		}
	}
	if v := lost.View(); v.Notification != NotificationLose || v.RemainingParts != 20 {
		t.Fatalf("unexpected view after a loss: %q %d", v.Notification, v.RemainingParts)
	}
}
