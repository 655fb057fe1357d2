package testhelpers

import (
	"context"
	"sync"

	"github.com/dailydish/backend/internal/types"
)

// MemoryPickStateStore is an in-memory PickStateStore for tests.
type MemoryPickStateStore struct {
	mu     sync.Mutex
	states map[string]types.DailyPickState

	// GetErr and PutErr, when set, are returned by the respective calls.
	GetErr error
	PutErr error
}

// NewMemoryPickStateStore creates an empty in-memory store.
func NewMemoryPickStateStore() *MemoryPickStateStore {
	return &MemoryPickStateStore{states: make(map[string]types.DailyPickState)}
}

func (s *MemoryPickStateStore) Get(ctx context.Context, deviceID string) (*types.DailyPickState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	state, ok := s.states[deviceID]
	if !ok {
		return &types.DailyPickState{}, nil
	}
	copied := state
	copied.RecentRecipeIDs = append([]string(nil), state.RecentRecipeIDs...)
	return &copied, nil
}

func (s *MemoryPickStateStore) Put(ctx context.Context, deviceID string, state *types.DailyPickState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PutErr != nil {
		return s.PutErr
	}
	copied := *state
	copied.RecentRecipeIDs = append([]string(nil), state.RecentRecipeIDs...)
	s.states[deviceID] = copied
	return nil
}

// State returns the stored state for assertions.
func (s *MemoryPickStateStore) State(deviceID string) (types.DailyPickState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[deviceID]
	return state, ok
}
