package telegram

import "sync"

type ChatState string

const (
	StateIdle           ChatState = "idle"
	StateAwaitingReview ChatState = "awaiting_review"
)

// StateStore keeps the per-chat review flow state. Chats with no entry
// are idle.
type StateStore interface {
	Get(chatID int64) ChatState
	Set(chatID int64, state ChatState)
	Clear(chatID int64)
}

// MemoryStateStore is the default store. State is lost on restart and
// never expires.
type MemoryStateStore struct {
	mu     sync.Mutex
	states map[int64]ChatState
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{states: make(map[int64]ChatState)}
}

func (s *MemoryStateStore) Get(chatID int64) ChatState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok := s.states[chatID]; ok {
		return state
	}
	return StateIdle
}

func (s *MemoryStateStore) Set(chatID int64, state ChatState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[chatID] = state
}

func (s *MemoryStateStore) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, chatID)
}
