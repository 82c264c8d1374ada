package storage

import (
	"sync"

	"github.com/aliskhannn/periodic-quiz-bot/internal/domain/entities"
)

// RoundStorage provides in-memory storage for the current quiz round of each chat.
type RoundStorage struct {
	mu     sync.RWMutex
	rounds map[int64]entities.QuizRound
}

// NewRoundStorage creates a new RoundStorage.
func NewRoundStorage() *RoundStorage {
	return &RoundStorage{
		rounds: make(map[int64]entities.QuizRound),
	}
}

// Store replaces the round of the given chat.
func (s *RoundStorage) Store(chatID int64, round entities.QuizRound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds[chatID] = round
}

// Get retrieves the round of the given chat.
func (s *RoundStorage) Get(chatID int64) (entities.QuizRound, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	round, ok := s.rounds[chatID]
	return round, ok
}
