package rooms

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"monopoly-online/app/engine"
	"monopoly-online/platform/board"
)

func newTestEngine(id string) *engine.Game {
	cells := board.LoadCells()
	chance, chest := board.LoadCards()
	cfg := engine.Config{Cells: cells, Chance: chance, Chest: chest}
	return engine.New(id, 2, cfg, rand.New(rand.NewSource(1)))
}

func TestDirectoryLookup(t *testing.T) {
	d := NewDirectory()
	d.Create("R1", newTestEngine("R1"))

	if err := d.With("R1", func(g *engine.Game) error {
		if g.RoomID != "R1" {
			t.Fatalf("wrong engine: %s", g.RoomID)
		}
		return nil
	}); err != nil {
		t.Fatalf("With failed: %v", err)
	}

	if err := d.With("missing", func(g *engine.Game) error { return nil }); err != ErrRoomNotFound {
		t.Fatalf("err = %v, want ErrRoomNotFound", err)
	}

	d.Delete("R1")
	if d.Len() != 0 {
		t.Fatalf("Len = %d after delete, want 0", d.Len())
	}
}

func TestDirectorySerializesPerRoom(t *testing.T) {
	d := NewDirectory()
	d.Create("R1", newTestEngine("R1"))

	var wg sync.WaitGroup
	inside := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.With("R1", func(g *engine.Game) error {
				inside++ // safe only if With serializes
				return nil
			})
		}()
	}
	wg.Wait()
	if inside != 16 {
		t.Fatalf("saw %d serialized calls, want 16", inside)
	}
}

func TestDeleteAfterAndCancel(t *testing.T) {
	d := NewDirectory()
	d.Create("R1", newTestEngine("R1"))

	done := make(chan struct{})
	d.DeleteAfter("R1", 10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled cleanup never fired")
	}
	if d.Len() != 0 {
		t.Fatal("room survived its cleanup")
	}

	d.Create("R2", newTestEngine("R2"))
	d.DeleteAfter("R2", 10*time.Millisecond, nil)
	d.CancelDelete("R2")
	time.Sleep(50 * time.Millisecond)
	if d.Len() != 1 {
		t.Fatal("cancelled cleanup still deleted the room")
	}
}
