package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// Observer receives the new session (nil on clear) every time the store
// mutates. Observers run synchronously on the mutating goroutine, before
// Set or Clear returns, so a navigated-to view can rely on every observer
// having already seen the session.
type Observer func(*Session)

// Store is the process-wide source of truth for "is a user
// authenticated, and with what session data". It is safe for concurrent
// use; mutation is expected only from the auth flow's success path and
// an explicit logout.
type Store struct {
	backend Backend
	logger  *zap.Logger

	mu        sync.Mutex
	current   *Session
	observers map[uint64]Observer
	nextID    uint64
}

// NewStore creates a Store over the given backend. A nil logger is
// replaced with a no-op logger.
func NewStore(backend Backend, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		backend:   backend,
		logger:    logger,
		observers: map[uint64]Observer{},
	}
}

// Load reads the persisted session, caches it as current, and publishes
// it to observers. It fails soft: an absent key, a backend fault, or a
// corrupt blob all yield nil. Intended to run once at process start but
// harmless to call again.
func (s *Store) Load(ctx context.Context) *Session {
	data, err := s.backend.Get(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("session load failed", zap.Error(err))
		}
		s.replace(nil)
		return nil
	}
	sess, err := Decode(data)
	if err != nil {
		s.logger.Warn("persisted session corrupt, treating as signed out")
		s.replace(nil)
		return nil
	}
	s.logger.Debug("session restored", zap.String("user_id", sess.UserID))
	s.replace(sess)
	return sess
}

// Set persists the session, then publishes it to all observers before
// returning. On a persistence failure nothing is published and the
// in-memory state is left untouched; the caller decides how to surface
// the fault.
func (s *Store) Set(ctx context.Context, sess *Session) error {
	if sess == nil {
		return errors.New("nil session")
	}
	data, err := Encode(sess)
	if err != nil {
		return err
	}
	if err := s.backend.Put(ctx, data); err != nil {
		return err
	}
	s.logger.Debug("session persisted", zap.String("user_id", sess.UserID))
	s.replace(sess)
	return nil
}

// Clear removes the persisted session and publishes "no session".
// Clearing an already-clear store is a no-op that still succeeds.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.backend.Delete(ctx); err != nil {
		return err
	}
	s.logger.Debug("session cleared")
	s.replace(nil)
	return nil
}

// Current returns the session last loaded or set, or nil.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Authenticated reports whether a session is present.
func (s *Store) Authenticated() bool {
	return s.Current() != nil
}

// Subscribe registers an observer and returns its cancel function. The
// observer fires on every subsequent mutation; it is not called with the
// current value at subscription time.
func (s *Store) Subscribe(fn Observer) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// replace swaps the cached session and notifies observers. The observer
// snapshot is taken under the lock but callbacks run outside it, so an
// observer may call back into the store.
func (s *Store) replace(sess *Session) {
	s.mu.Lock()
	s.current = sess
	snapshot := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		snapshot = append(snapshot, fn)
	}
	s.mu.Unlock()

	for _, fn := range snapshot {
		fn(sess)
	}
}
