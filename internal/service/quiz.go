package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/aliskhannn/periodic-quiz-bot/internal/domain/entities"
)

var (
	ErrNoActiveRound = errors.New("no active quiz round")
	ErrStaleRound    = errors.New("quiz round was replaced")
)

type RoundGenerator interface {
	NewRound() entities.QuizRound
}

type RoundStorage interface {
	Store(chatID int64, round entities.QuizRound)
	Get(chatID int64) (entities.QuizRound, bool)
}

// QuizService keeps the current round of every chat and moves it between phases.
type QuizService struct {
	generator RoundGenerator
	storage   RoundStorage
	logger    *zap.Logger
	lastID    atomic.Uint64
}

func NewQuizService(generator RoundGenerator, storage RoundStorage, logger *zap.Logger) *QuizService {
	return &QuizService{
		generator: generator,
		storage:   storage,
		logger:    logger,
	}
}

// GenerateNewQuestion replaces the chat's round with a fresh unanswered one.
// Every generated round gets a new ID, even when its target repeats.
func (s *QuizService) GenerateNewQuestion(_ context.Context, chatID int64) (entities.QuizRound, error) {
	round := s.generator.NewRound()
	round.ID = s.lastID.Add(1)
	s.storage.Store(chatID, round)

	s.logger.Debug("new quiz round",
		zap.Int64("chat_id", chatID),
		zap.Uint64("round_id", round.ID),
		zap.String("symbol", round.Target.Symbol),
		zap.Int("options", len(round.Options)),
	)

	return round, nil
}

// RecordAnswer answers the chat's round roundID with the option of the given atomic number.
// It returns ErrStaleRound when roundID is no longer the chat's current round.
func (s *QuizService) RecordAnswer(
	ctx context.Context, chatID int64, roundID uint64, number int,
) (entities.QuizRound, error) {
	round, err := s.CurrentRound(ctx, chatID)
	if err != nil {
		return entities.QuizRound{}, err
	}
	if round.ID != roundID {
		return round, fmt.Errorf("answer round %d: %w", roundID, ErrStaleRound)
	}

	selected, ok := round.Option(number)
	if !ok {
		return round, fmt.Errorf("answer %d: %w", number, entities.ErrNotAnOption)
	}

	answered, err := round.Answer(selected)
	if err != nil {
		return round, fmt.Errorf("answer %d: %w", number, err)
	}
	s.storage.Store(chatID, answered)

	s.logger.Debug("quiz round answered",
		zap.Int64("chat_id", chatID),
		zap.String("symbol", answered.Target.Symbol),
		zap.String("selected", answered.Selected.Symbol),
		zap.Bool("correct", answered.IsCorrect()),
	)

	return answered, nil
}

// CurrentRound returns the chat's current round.
func (s *QuizService) CurrentRound(_ context.Context, chatID int64) (entities.QuizRound, error) {
	round, ok := s.storage.Get(chatID)
	if !ok {
		return entities.QuizRound{}, ErrNoActiveRound
	}
	return round, nil
}
