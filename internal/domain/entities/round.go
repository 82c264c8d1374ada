package entities

import "errors"

var (
	ErrRoundAnswered = errors.New("round is already answered")
	ErrNotAnOption   = errors.New("element is not an option of the round")
)

// Phase is the observable state of a quiz round.
type Phase int

const (
	PhaseUnanswered Phase = iota // options are shown, waiting for the answer
	PhaseAnswered                // verdict and element card are shown, waiting for the next question
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseUnanswered:
		return "unanswered"
	case PhaseAnswered:
		return "answered"
	default:
		return "unknown"
	}
}

// QuizRound represents one question-answer cycle.
// A round is a value: transitions return a new round instead of changing the receiver.
type QuizRound struct {
	ID       uint64     // identifies the round among the rounds of a chat, zero if unset
	Target   *Element   // element whose symbol is asked
	Options  []*Element // candidate answers, target included exactly once
	Phase    Phase      // current phase of the round
	Selected *Element   // answer chosen by the user, nil while unanswered
}

// NewQuizRound creates an unanswered round for the target and its options.
func NewQuizRound(target *Element, options []*Element) QuizRound {
	opts := make([]*Element, len(options))
	copy(opts, options)

	return QuizRound{
		Target:  target,
		Options: opts,
		Phase:   PhaseUnanswered,
	}
}

// Option returns the option with the given atomic number.
func (r QuizRound) Option(number int) (*Element, bool) {
	for _, o := range r.Options {
		if o.Number == number {
			return o, true
		}
	}
	return nil, false
}

// Answer records the selected option and returns the answered round.
func (r QuizRound) Answer(selected *Element) (QuizRound, error) {
	if r.Phase == PhaseAnswered {
		return r, ErrRoundAnswered
	}
	if selected == nil {
		return r, ErrNotAnOption
	}

	option, ok := r.Option(selected.Number)
	if !ok {
		return r, ErrNotAnOption
	}

	answered := NewQuizRound(r.Target, r.Options)
	answered.ID = r.ID
	answered.Phase = PhaseAnswered
	answered.Selected = option

	return answered, nil
}

// IsAnswered reports whether the user has already picked an option.
func (r QuizRound) IsAnswered() bool {
	return r.Phase == PhaseAnswered
}

// IsCorrect reports whether the selected option names the target element.
// It is always false for an unanswered round.
func (r QuizRound) IsCorrect() bool {
	if r.Phase != PhaseAnswered || r.Selected == nil || r.Target == nil {
		return false
	}
	return r.Selected.Name == r.Target.Name
}

// Detail returns the target card, shown regardless of correctness.
func (r QuizRound) Detail() ElementDetail {
	return r.Target.Detail()
}
