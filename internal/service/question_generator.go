package service

import (
	"fmt"
	"math/rand"

	"github.com/TencentBlueKing/gopkg/collection/set"
	"github.com/samber/lo"

	"github.com/aliskhannn/periodic-quiz-bot/internal/domain/entities"
)

// OptionsCount is the number of candidate answers in a round.
const OptionsCount = 4

// QuestionGenerator builds quiz rounds from a fixed catalog.
type QuestionGenerator struct {
	catalog []*entities.Element
}

// NewQuestionGenerator creates a generator over the catalog.
// Catalogs smaller than OptionsCount are rejected: the distinct options could never be filled.
func NewQuestionGenerator(catalog []*entities.Element) (*QuestionGenerator, error) {
	if len(catalog) < OptionsCount {
		return nil, fmt.Errorf("%w: got %d, need %d", entities.ErrCatalogTooSmall, len(catalog), OptionsCount)
	}

	return &QuestionGenerator{
		catalog: catalog,
	}, nil
}

// PickRandomElement returns an element chosen uniformly from the catalog.
func (g *QuestionGenerator) PickRandomElement() *entities.Element {
	return g.catalog[rand.Intn(len(g.catalog))]
}

// GenerateOptions returns OptionsCount distinct elements including correct, in random order.
func (g *QuestionGenerator) GenerateOptions(correct *entities.Element) []*entities.Element {
	options := make([]*entities.Element, 0, OptionsCount)
	seen := set.NewInt64Set()

	options = append(options, correct)
	seen.Add(int64(correct.Number))

	for seen.Size() < OptionsCount {
		candidate := g.PickRandomElement()
		if seen.Has(int64(candidate.Number)) {
			continue
		}

		seen.Add(int64(candidate.Number))
		options = append(options, candidate)
	}

	return lo.Shuffle(options)
}

// NewRound draws a target element and its options.
func (g *QuestionGenerator) NewRound() entities.QuizRound {
	target := g.PickRandomElement()
	return entities.NewQuizRound(target, g.GenerateOptions(target))
}
