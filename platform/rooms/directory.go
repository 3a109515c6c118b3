package rooms

import (
	"errors"
	"sync"
	"time"

	"monopoly-online/app/engine"
)

var ErrRoomNotFound = errors.New("room not found")

// Directory maps room ids to their engine, owned by the transport layer.
// Each room carries its own lock so engine calls for one room are fully
// serialized while different rooms proceed in parallel.
type Directory struct {
	mu    sync.RWMutex
	rooms map[string]*room
}

type room struct {
	mu      sync.Mutex
	game    *engine.Game
	cleanup *time.Timer
}

func NewDirectory() *Directory {
	return &Directory{rooms: make(map[string]*room)}
}

func (d *Directory) Create(roomID string, game *engine.Game) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rooms[roomID] = &room{game: game}
}

// With runs fn with the room's engine under the room lock. The engine never
// observes two concurrent calls this way.
func (d *Directory) With(roomID string, fn func(*engine.Game) error) error {
	d.mu.RLock()
	r, ok := d.rooms[roomID]
	d.mu.RUnlock()
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.game)
}

func (d *Directory) Delete(roomID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if r, ok := d.rooms[roomID]; ok {
		if r.cleanup != nil {
			r.cleanup.Stop()
		}
		delete(d.rooms, roomID)
	}
}

// DeleteAfter schedules removal of the room, replacing any earlier pending
// removal. onDelete runs once after the entry is gone, for external cleanup.
func (d *Directory) DeleteAfter(roomID string, delay time.Duration, onDelete func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r, ok := d.rooms[roomID]
	if !ok {
		return
	}
	if r.cleanup != nil {
		r.cleanup.Stop()
	}
	r.cleanup = time.AfterFunc(delay, func() {
		d.Delete(roomID)
		if onDelete != nil {
			onDelete()
		}
	})
}

// CancelDelete keeps a room alive, e.g. when a player reconnects during the
// cleanup grace period.
func (d *Directory) CancelDelete(roomID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if r, ok := d.rooms[roomID]; ok && r.cleanup != nil {
		r.cleanup.Stop()
		r.cleanup = nil
	}
}

func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.rooms)
}
