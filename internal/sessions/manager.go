package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/gdg-garage/venue-booking-api/internal/booking"
	"go.uber.org/zap"
)

const lockStripes = 64

// Manager loads, mutates and saves booking sessions. Operations on the same
// session id are serialized; different ids proceed in parallel.
type Manager struct {
	store   Store
	pricing booking.PricingStrategy
	logger  *zap.Logger
	locks   [lockStripes]sync.Mutex
}

func NewManager(store Store, pricing booking.PricingStrategy, logger *zap.Logger) *Manager {
	return &Manager{store: store, pricing: pricing, logger: logger}
}

func (m *Manager) lockFor(id string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(id))
	return &m.locks[h.Sum32()%lockStripes]
}

// load returns the stored session, or a fresh one when none exists. A
// snapshot that cannot be decoded is replaced by a fresh session.
func (m *Manager) load(ctx context.Context, id string) (*booking.Session, error) {
	s := m.fresh()

	data, err := m.store.Load(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, s); err != nil {
		m.logger.Warn("Discarding unreadable session snapshot",
			zap.String("session_id", id),
			zap.Error(err),
		)
		return s, nil
	}
	return s, nil
}

func (m *Manager) fresh() *booking.Session {
	s := booking.NewSession()
	s.UsePricing(m.pricing)
	return s
}

func (m *Manager) save(ctx context.Context, id string, s *booking.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", id, err)
	}
	return m.store.Save(ctx, id, data)
}

// Get returns the current state of a session. Unknown ids yield a fresh
// session that is not persisted until it is first changed.
func (m *Manager) Get(ctx context.Context, id string) (*booking.Session, error) {
	mu := m.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	return m.load(ctx, id)
}

// Mutate applies fn to the session and persists the result when fn reports
// the change as applied.
func (m *Manager) Mutate(ctx context.Context, id string, fn func(*booking.Session) booking.Outcome) (*booking.Session, booking.Outcome, error) {
	return m.Update(ctx, id, func(s *booking.Session) (booking.Outcome, error) {
		return fn(s), nil
	})
}

// Update is Mutate for callbacks that can fail. Nothing is saved when fn
// returns an error.
func (m *Manager) Update(ctx context.Context, id string, fn func(*booking.Session) (booking.Outcome, error)) (*booking.Session, booking.Outcome, error) {
	mu := m.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	s, err := m.load(ctx, id)
	if err != nil {
		return nil, booking.Outcome{}, err
	}

	out, err := fn(s)
	if err != nil {
		return nil, out, err
	}
	if !out.Applied {
		m.logger.Debug("Session change rejected",
			zap.String("session_id", id),
			zap.String("reason", out.Reason),
		)
		return s, out, nil
	}

	if err := m.save(ctx, id, s); err != nil {
		return nil, out, err
	}
	return s, out, nil
}

// Submit runs fn against the session without saving any change fn makes.
// When fn succeeds and discard is set, the stored session is forgotten and
// a fresh one returned. fn's side effects have already happened at that
// point, so a failed delete is logged and reported as discarded == false
// rather than returned as an error.
func (m *Manager) Submit(ctx context.Context, id string, fn func(*booking.Session) error, discard bool) (s *booking.Session, discarded bool, err error) {
	mu := m.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	s, err = m.load(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if err := fn(s); err != nil {
		return nil, false, err
	}
	if !discard {
		return s, false, nil
	}

	if err := m.store.Delete(ctx, id); err != nil {
		m.logger.Warn("Failed to discard submitted session",
			zap.String("session_id", id),
			zap.Error(err),
		)
		return s, false, nil
	}
	return m.fresh(), true, nil
}

// Discard forgets a session entirely and returns the fresh session the next
// access will see.
func (m *Manager) Discard(ctx context.Context, id string) (*booking.Session, error) {
	mu := m.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	if err := m.store.Delete(ctx, id); err != nil {
		return nil, err
	}
	return m.fresh(), nil
}
