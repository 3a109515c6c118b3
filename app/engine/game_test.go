package engine

import (
	"math/rand"
	"testing"

	"monopoly-online/app/models"
	"monopoly-online/platform/board"
)

var testNames = []string{"alice", "bob", "carol"}

func testGame(t *testing.T, players int) *Game {
	t.Helper()
	cells := board.LoadCells()
	chance, chest := board.LoadCards()
	g := New("TEST01", players, Config{Cells: cells, Chance: chance, Chest: chest}, rand.New(rand.NewSource(1)))
	ids := []string{"p1", "p2", "p3"}
	for i := 0; i < players; i++ {
		if err := g.AddPlayer(ids[i], testNames[i]); err != nil {
			t.Fatalf("AddPlayer(%s) failed: %v", ids[i], err)
		}
	}
	return g
}

// stubDice replaces the dice source with a fixed cycle of rolls.
func stubDice(g *Game, rolls ...[2]int) {
	i := 0
	g.dice = func() (int, int) {
		r := rolls[i%len(rolls)]
		i++
		return r[0], r[1]
	}
}

func totalMoney(g *Game) int {
	sum := 0
	for _, p := range g.Players {
		sum += p.Money
	}
	return sum
}

func hasEvent(events []Event, kind EventType) bool {
	for _, e := range events {
		if e.Type == kind {
			return true
		}
	}
	return false
}

func TestNewClampsCapacity(t *testing.T) {
	cells := board.LoadCells()
	chance, chest := board.LoadCards()
	cfg := Config{Cells: cells, Chance: chance, Chest: chest}

	tests := []struct {
		in, want int
	}{
		{1, 2},
		{2, 2},
		{3, 3},
		{5, 3},
	}
	for _, tt := range tests {
		g := New("R", tt.in, cfg, rand.New(rand.NewSource(1)))
		if g.Capacity != tt.want {
			t.Errorf("capacity %d clamped to %d, want %d", tt.in, g.Capacity, tt.want)
		}
	}
}

func TestAddPlayerSeatsAndStart(t *testing.T) {
	cells := board.LoadCells()
	chance, chest := board.LoadCards()
	g := New("R", 3, Config{Cells: cells, Chance: chance, Chest: chest}, rand.New(rand.NewSource(1)))

	if err := g.AddPlayer("p1", "alice"); err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	if g.Started {
		t.Fatal("game started below capacity")
	}
	g.AddPlayer("p2", "bob")
	g.AddPlayer("p3", "carol")
	if !g.Started {
		t.Fatal("game did not start at capacity")
	}
	if err := g.AddPlayer("p4", "dave"); err != ErrAlreadyStarted {
		t.Fatalf("late join error = %v, want ErrAlreadyStarted", err)
	}

	for i, p := range g.Players {
		if p.Money != StartMoney || p.Position != 0 {
			t.Errorf("player %d starting state wrong: %+v", i, p)
		}
		if p.Token != tokens[i] || p.Color != colors[i] {
			t.Errorf("player %d cosmetics not assigned by seat", i)
		}
	}
}

func TestBoardDeepCopy(t *testing.T) {
	cells := board.LoadCells()
	chance, chest := board.LoadCards()
	cfg := Config{Cells: cells, Chance: chance, Chest: chest}
	g := New("R", 2, cfg, rand.New(rand.NewSource(1)))

	g.Board[1].Rent[0] = 999
	if cells[1].Rent[0] == 999 {
		t.Fatal("engine board aliases the shared config")
	}
}

func TestNextTurnSkipsBankrupt(t *testing.T) {
	g := testGame(t, 3)
	g.Players[1].Bankrupt = true
	g.nextTurn()
	if g.Current != 2 {
		t.Fatalf("turn went to seat %d, want 2 (skipping bankrupt seat 1)", g.Current)
	}
}

func TestDeckDrawWraps(t *testing.T) {
	d := deck{cards: []models.Card{
		{Text: "a", Action: "receive", Value: 1},
		{Text: "b", Action: "receive", Value: 2},
	}}
	got := []string{d.draw().Text, d.draw().Text, d.draw().Text}
	want := []string{"a", "b", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("draw sequence = %v, want %v", got, want)
		}
	}
}

func TestShuffleIsSeedStable(t *testing.T) {
	chance, _ := board.LoadCards()
	a := shuffled(chance, rand.New(rand.NewSource(7)))
	b := shuffled(chance, rand.New(rand.NewSource(7)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed produced different shuffles")
		}
	}
}

func TestSnapshot(t *testing.T) {
	g := testGame(t, 2)
	g.Awaiting = &PendingAction{Type: PendingBuyOrPass, CellID: 3}

	state := g.Snapshot()
	if state.RoomID != "TEST01" || state.MaxPlayers != 2 {
		t.Fatalf("room fields wrong: %+v", state)
	}
	if len(state.Board) != BoardSize || len(state.Players) != 2 {
		t.Fatalf("board/players missing from snapshot")
	}
	if state.CurrentPlayerID != "p1" || state.CurrentPlayerIndex != 0 {
		t.Fatalf("current player wrong: %s/%d", state.CurrentPlayerID, state.CurrentPlayerIndex)
	}
	if !state.Started || state.GameOver || state.Winner != nil {
		t.Fatalf("lifecycle flags wrong: %+v", state)
	}
	if state.AwaitingAction == nil || state.AwaitingAction.CellID != 3 {
		t.Fatalf("pending action missing: %+v", state.AwaitingAction)
	}
	if len(state.PropertyGroups["brown"]) != 2 {
		t.Fatalf("property groups missing: %+v", state.PropertyGroups)
	}

	// snapshot holdings must not alias live state
	g.Players[0].Properties = append(g.Players[0].Properties, 1)
	g.Players[0].Houses[1] = 2
	if len(state.Players[0].Properties) != 0 || len(state.Players[0].Houses) != 0 {
		t.Fatal("snapshot aliases live player holdings")
	}
}
