package session

import (
	"sync"
	"time"

	"flightcool/internal/pricing"
)

// Store holds live quote sessions in memory, keyed by session id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	engine      *pricing.Engine
	settleDelay time.Duration
	resetDelay  time.Duration
}

func NewStore(engine *pricing.Engine, settleDelay, resetDelay time.Duration) *Store {
	return &Store{
		sessions:    make(map[string]*Session),
		engine:      engine,
		settleDelay: settleDelay,
		resetDelay:  resetDelay,
	}
}

func (st *Store) Create() *Session {
	s := New(st.engine, st.settleDelay, st.resetDelay)
	st.mu.Lock()
	st.sessions[s.ID()] = s
	st.mu.Unlock()
	return s
}

func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}
