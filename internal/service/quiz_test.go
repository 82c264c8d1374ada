package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/periodic-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/periodic-quiz-bot/internal/storage"
)

// fixedGenerator always asks for the same target.
type fixedGenerator struct {
	gen    *QuestionGenerator
	target *entities.Element
}

func (g fixedGenerator) NewRound() entities.QuizRound {
	return entities.NewQuizRound(g.target, g.gen.GenerateOptions(g.target))
}

func newTestQuizService(t *testing.T) (*QuizService, []*entities.Element) {
	t.Helper()

	catalog := testCatalog()
	gen, err := NewQuestionGenerator(catalog)
	require.NoError(t, err)

	svc := NewQuizService(fixedGenerator{gen: gen, target: catalog[1]}, storage.NewRoundStorage(), zap.NewNop())
	return svc, catalog
}

func TestQuizService_CorrectAnswer(t *testing.T) {
	svc, _ := newTestQuizService(t)
	ctx := context.Background()

	round, err := svc.GenerateNewQuestion(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "He", round.Target.Symbol)
	assert.Equal(t, entities.PhaseUnanswered, round.Phase)

	answered, err := svc.RecordAnswer(ctx, 10, round.ID, 2)
	require.NoError(t, err)
	assert.True(t, answered.IsCorrect())
	assert.Equal(t, entities.PhaseAnswered, answered.Phase)
	assert.Equal(t, entities.ElementDetail{
		Name:       "Hélium",
		Symbol:     "He",
		Number:     2,
		AtomicMass: 4.0026,
		Category:   "gaz noble",
	}, answered.Detail())

	current, err := svc.CurrentRound(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, answered, current)
}

func TestQuizService_IncorrectAnswer(t *testing.T) {
	svc, _ := newTestQuizService(t)
	ctx := context.Background()

	round, err := svc.GenerateNewQuestion(ctx, 10)
	require.NoError(t, err)

	var wrong *entities.Element
	for _, o := range round.Options {
		if o.Number != 2 {
			wrong = o
			break
		}
	}
	require.NotNil(t, wrong)

	answered, err := svc.RecordAnswer(ctx, 10, round.ID, wrong.Number)
	require.NoError(t, err)
	assert.False(t, answered.IsCorrect())
	assert.Equal(t, wrong, answered.Selected)
	assert.Equal(t, "Hélium", answered.Detail().Name)
}

func TestQuizService_NewQuestionResetsSelection(t *testing.T) {
	svc, _ := newTestQuizService(t)
	ctx := context.Background()

	first, err := svc.GenerateNewQuestion(ctx, 10)
	require.NoError(t, err)
	_, err = svc.RecordAnswer(ctx, 10, first.ID, 2)
	require.NoError(t, err)

	round, err := svc.GenerateNewQuestion(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, entities.PhaseUnanswered, round.Phase)
	assert.Nil(t, round.Selected)

	current, err := svc.CurrentRound(ctx, 10)
	require.NoError(t, err)
	assert.False(t, current.IsAnswered())
}

func TestQuizService_Errors(t *testing.T) {
	svc, catalog := newTestQuizService(t)
	ctx := context.Background()

	_, err := svc.RecordAnswer(ctx, 10, 1, 2)
	require.ErrorIs(t, err, ErrNoActiveRound)

	_, err = svc.CurrentRound(ctx, 10)
	require.ErrorIs(t, err, ErrNoActiveRound)

	round, err := svc.GenerateNewQuestion(ctx, 10)
	require.NoError(t, err)

	// with five elements exactly one is left out of the options
	var missing *entities.Element
	for _, e := range catalog {
		if _, ok := round.Option(e.Number); !ok {
			missing = e
		}
	}
	require.NotNil(t, missing)

	_, err = svc.RecordAnswer(ctx, 10, round.ID, missing.Number)
	require.ErrorIs(t, err, entities.ErrNotAnOption)

	_, err = svc.RecordAnswer(ctx, 10, round.ID, 2)
	require.NoError(t, err)

	_, err = svc.RecordAnswer(ctx, 10, round.ID, 2)
	require.ErrorIs(t, err, entities.ErrRoundAnswered)
}

func TestQuizService_ChatsAreIndependent(t *testing.T) {
	svc, _ := newTestQuizService(t)
	ctx := context.Background()

	first, err := svc.GenerateNewQuestion(ctx, 1)
	require.NoError(t, err)
	_, err = svc.GenerateNewQuestion(ctx, 2)
	require.NoError(t, err)

	_, err = svc.RecordAnswer(ctx, 1, first.ID, 2)
	require.NoError(t, err)

	other, err := svc.CurrentRound(ctx, 2)
	require.NoError(t, err)
	assert.False(t, other.IsAnswered())
}

func TestQuizService_StaleRoundWithSameTarget(t *testing.T) {
	svc, _ := newTestQuizService(t)
	ctx := context.Background()

	first, err := svc.GenerateNewQuestion(ctx, 10)
	require.NoError(t, err)
	second, err := svc.GenerateNewQuestion(ctx, 10)
	require.NoError(t, err)

	require.Equal(t, first.Target.Number, second.Target.Number)
	require.NotEqual(t, first.ID, second.ID)

	_, err = svc.RecordAnswer(ctx, 10, first.ID, 2)
	require.ErrorIs(t, err, ErrStaleRound)

	current, err := svc.CurrentRound(ctx, 10)
	require.NoError(t, err)
	assert.False(t, current.IsAnswered())
	assert.Equal(t, second.ID, current.ID)
}
