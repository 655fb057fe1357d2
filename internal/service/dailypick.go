package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/dailydish/backend/internal/model"
	"github.com/dailydish/backend/internal/types"
)

var (
	// ErrNoEligibleRecipes means the catalog was reachable but nothing
	// matched the profile. Callers should suggest loosening the profile.
	ErrNoEligibleRecipes = errors.New("no recipes match the current dietary profile")
	// ErrCatalogUnavailable means the candidate fetch itself failed.
	ErrCatalogUnavailable = errors.New("recipe catalog is unavailable")
)

// CandidateSource supplies the filtered candidate pool for a device.
type CandidateSource interface {
	FetchCandidates(ctx context.Context, profile *types.DietaryProfile, day types.Weekday) ([]*model.Recipe, error)
}

// PickStateStore persists one DailyPickState per device. Get must return an
// empty state, not an error, when the device has no stored state yet.
type PickStateStore interface {
	Get(ctx context.Context, deviceID string) (*types.DailyPickState, error)
	Put(ctx context.Context, deviceID string, state *types.DailyPickState) error
}

// DailyPickService owns the "today's pick" state machine. Operations for the
// same device are serialized so two concurrent loads cannot both decide
// "no valid pick" and persist different fresh picks.
type DailyPickService struct {
	catalog CandidateSource
	store   PickStateStore
	clock   Clock

	// locks holds one mutex per device seen since startup and is never
	// evicted. A bare mutex per device; eviction would need refcounting.
	mu    sync.Mutex
	locks map[string]*sync.Mutex

	// randIntn is swappable in tests; skip is intentionally random.
	randIntn func(n int) int
}

// NewDailyPickService creates a new DailyPickService instance.
func NewDailyPickService(catalog CandidateSource, store PickStateStore, clock Clock) *DailyPickService {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &DailyPickService{
		catalog:  catalog,
		store:    store,
		clock:    clock,
		locks:    make(map[string]*sync.Mutex),
		randIntn: rand.Intn,
	}
}

// deviceLock returns the mutex serializing operations for one device.
func (s *DailyPickService) deviceLock(deviceID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[deviceID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[deviceID] = lock
	}
	return lock
}

// Today returns the device's pick for the current day, selecting and
// persisting a fresh one when none is valid. Within a calendar day the same
// catalog snapshot always yields the same recipe.
func (s *DailyPickService) Today(ctx context.Context, deviceID string, profile *types.DietaryProfile) (*model.Recipe, error) {
	lock := s.deviceLock(deviceID)
	lock.Lock()
	defer lock.Unlock()

	candidates, state, err := s.prepare(ctx, deviceID, profile)
	if err != nil {
		return nil, err
	}

	pick, changed, err := s.currentPick(candidates, state)
	if err != nil {
		return nil, err
	}
	if changed {
		if err := s.store.Put(ctx, deviceID, state); err != nil {
			return nil, fmt.Errorf("failed to persist daily pick: %w", err)
		}
	}
	return pick, nil
}

// Skip replaces today's pick with a random candidate, preferring recipes that
// have not been shown recently. With a single-candidate catalog it is a no-op.
func (s *DailyPickService) Skip(ctx context.Context, deviceID string, profile *types.DietaryProfile) (*model.Recipe, error) {
	lock := s.deviceLock(deviceID)
	lock.Lock()
	defer lock.Unlock()

	candidates, state, err := s.prepare(ctx, deviceID, profile)
	if err != nil {
		return nil, err
	}

	current, _, err := s.currentPick(candidates, state)
	if err != nil {
		return nil, err
	}

	// Prefer candidates neither current nor recently shown; fall back to
	// excluding only the current pick.
	subset := make([]*model.Recipe, 0, len(candidates))
	for _, candidate := range candidates {
		id := candidate.ID.String()
		if id == current.ID.String() || state.WasRecentlyShown(id) {
			continue
		}
		subset = append(subset, candidate)
	}
	if len(subset) == 0 {
		for _, candidate := range candidates {
			if candidate.ID.String() != current.ID.String() {
				subset = append(subset, candidate)
			}
		}
	}
	if len(subset) == 0 {
		// Single-candidate catalog: the active pick stays.
		return current, nil
	}

	next := subset[s.randIntn(len(subset))]
	state.PushRecent(current.ID.String())
	state.PickedRecipeID = next.ID.String()
	state.PickedDateKey = s.clock.DateKey()
	if err := s.store.Put(ctx, deviceID, state); err != nil {
		return nil, fmt.Errorf("failed to persist daily pick: %w", err)
	}
	return next, nil
}

// prepare fetches the candidate pool and the stored state. A failed fetch
// leaves the stored state untouched.
func (s *DailyPickService) prepare(ctx context.Context, deviceID string, profile *types.DietaryProfile) ([]*model.Recipe, *types.DailyPickState, error) {
	candidates, err := s.catalog.FetchCandidates(ctx, profile, s.clock.Weekday())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	if len(candidates) == 0 {
		return nil, nil, ErrNoEligibleRecipes
	}

	state, err := s.store.Get(ctx, deviceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load daily pick state: %w", err)
	}
	if state == nil {
		state = &types.DailyPickState{}
	}
	return candidates, state, nil
}

// currentPick resolves today's pick from the stored state, or selects a fresh
// deterministic one. The boolean reports whether state was modified and needs
// persisting.
func (s *DailyPickService) currentPick(candidates []*model.Recipe, state *types.DailyPickState) (*model.Recipe, bool, error) {
	todayKey := s.clock.DateKey()
	if state.PickedDateKey == todayKey && state.PickedRecipeID != "" {
		for _, candidate := range candidates {
			if candidate.ID.String() == state.PickedRecipeID {
				return candidate, false, nil
			}
		}
		// The stored pick fell out of the filtered set; reselect below.
	}

	index := s.clock.DayOrdinal() % len(candidates)
	pick := candidates[index]
	state.PickedRecipeID = pick.ID.String()
	state.PickedDateKey = todayKey
	return pick, true, nil
}
