package storage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/periodic-quiz-bot/internal/domain/entities"
)

func TestRoundStorage(t *testing.T) {
	s := NewRoundStorage()

	_, ok := s.Get(1)
	assert.False(t, ok)

	he := &entities.Element{Number: 2, Symbol: "He", Name: "Hélium"}
	round := entities.NewQuizRound(he, []*entities.Element{he})
	s.Store(1, round)

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, round, got)

	_, ok = s.Get(2)
	assert.False(t, ok)

	answered, err := round.Answer(he)
	require.NoError(t, err)
	s.Store(1, answered)

	got, ok = s.Get(1)
	require.True(t, ok)
	assert.True(t, got.IsAnswered())
}

func TestRoundStorage_Concurrent(t *testing.T) {
	s := NewRoundStorage()
	he := &entities.Element{Number: 2, Symbol: "He", Name: "Hélium"}

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			s.Store(chatID, entities.NewQuizRound(he, []*entities.Element{he}))
			_, _ = s.Get(chatID)
		}(i)
	}
	wg.Wait()

	for i := int64(0); i < 50; i++ {
		_, ok := s.Get(i)
		assert.True(t, ok)
	}
}
