package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/yoave717/yoavsshoes/internal/persist"
)

// Store owns the cart state and writes it through to a snapshot store after
// every mutation. Persistence is best-effort: a failing snapshot store never
// fails a cart operation.
//
// The store starts uninitialized; Load rehydrates it from the snapshot store
// exactly once. Until Load has completed, mutations apply but are not
// persisted, so a half-started process cannot overwrite a saved cart with an
// empty one.
type Store struct {
	mu     sync.Mutex
	state  State
	snaps  persist.SnapshotStore
	loaded bool
}

func NewStore(snaps persist.SnapshotStore) *Store {
	return &Store{
		state: Empty(),
		snaps: snaps,
	}
}

// Load replaces the current state with the persisted snapshot, if one exists
// and parses. A missing or unreadable snapshot leaves the store empty. Load
// marks the store initialized regardless of outcome.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.loaded = true

	data, err := s.snaps.Get(ctx)
	if errors.Is(err, persist.ErrNoSnapshot) {
		return
	}
	if err != nil {
		log.Printf("cart snapshot read error: %v", err)
		return
	}

	var saved State
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("cart snapshot parse error: %v", err)
		return
	}
	if saved.Items == nil {
		saved.Items = []Item{}
	}
	s.state = saved
}

func (s *Store) AddItem(ctx context.Context, item Item) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.Add(item)
	s.persistLocked(ctx)
	return s.state
}

func (s *Store) RemoveItem(ctx context.Context, modelID int64, size string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.Remove(modelID, size)
	s.persistLocked(ctx)
	return s.state
}

func (s *Store) UpdateQuantity(ctx context.Context, modelID int64, size string, quantity int) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.UpdateQuantity(modelID, size, quantity)
	s.persistLocked(ctx)
	return s.state
}

func (s *Store) ClearCart(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.Clear()
	s.persistLocked(ctx)
	return s.state
}

func (s *Store) ItemQuantity(modelID int64, size string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Quantity(modelID, size)
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) persistLocked(ctx context.Context) {
	if !s.loaded {
		return
	}
	data, err := json.Marshal(s.state)
	if err != nil {
		log.Printf("cart snapshot marshal error: %v", err)
		return
	}
	if err := s.snaps.Set(ctx, data); err != nil {
		log.Printf("cart snapshot write error: %v", err)
	}
}
