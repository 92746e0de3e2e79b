package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/secwepemc-ed/curricula/core/curriculum"
)

var ErrNotFound = errors.New("session not found")

// Session is one UI browsing session and its expansion state. The state is
// never persisted; closing the session (or restarting the server) resets it.
type Session struct {
	ID        string                    `json:"session_id"`
	State     curriculum.ExpansionState `json:"state"`
	CreatedAt time.Time                 `json:"created_at"` // UTC
	UpdatedAt time.Time                 `json:"updated_at"` // UTC
}

// Store holds sessions in memory, keyed by id. Toggles are serialized by the
// store lock; each transition is a single-state write.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (s *Store) Open() Session {
	now := time.Now().UTC()
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return *sess
}

func (s *Store) Get(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return *sess, nil
}

func (s *Store) ToggleUnit(id, unitID string) (Session, error) {
	return s.update(id, func(sess *Session) { sess.State.ToggleUnit(unitID) })
}

func (s *Store) ToggleLesson(id, lessonID string) (Session, error) {
	return s.update(id, func(sess *Session) { sess.State.ToggleLesson(lessonID) })
}

func (s *Store) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *Store) update(id string, fn func(*Session)) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	fn(sess)
	sess.UpdatedAt = time.Now().UTC()
	return *sess, nil
}
