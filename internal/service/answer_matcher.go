package service

import (
	"strconv"
	"strings"

	"github.com/aliskhannn/periodic-quiz-bot/internal/domain/entities"
)

// AnswerMatcher resolves free-form user input to one of a round's options.
// Input is either the 1-based option position or the element name,
// compared without case, accents or extra spaces and with small typos allowed.
type AnswerMatcher struct {
	threshold float64 // similarity threshold (0.0 - 1.0)
}

func NewAnswerMatcher() *AnswerMatcher {
	return &AnswerMatcher{
		threshold: 0.8,
	}
}

// Match returns the option the input designates, or false when the input
// designates none or is ambiguous.
func (m *AnswerMatcher) Match(round entities.QuizRound, input string) (*entities.Element, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, false
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(round.Options) {
			return nil, false
		}
		return round.Options[n-1], true
	}

	user := entities.NormalizeName(input)

	var (
		best      *entities.Element
		bestScore float64
		tie       bool
	)
	for _, o := range round.Options {
		name := entities.NormalizeName(o.Name)
		if name == user {
			return o, true
		}

		score := similarity(user, name)
		switch {
		case score > bestScore:
			best, bestScore, tie = o, score, false
		case score == bestScore:
			tie = true
		}
	}

	if best == nil || tie || bestScore < m.threshold {
		return nil, false
	}
	return best, true
}

func similarity(s1, s2 string) float64 {
	maxLen := max(len([]rune(s1)), len([]rune(s2)))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(levenshteinDistance(s1, s2))/float64(maxLen)
}

// levenshteinDistance counts single-rune edits between s1 and s2.
func levenshteinDistance(s1, s2 string) int {
	a, b := []rune(s1), []rune(s2)

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
