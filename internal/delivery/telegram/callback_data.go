package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionQuiz     = "quiz"
	actionElements = "elements"
)

// Quiz sub-actions.
const (
	quizAnswer = "answer"
	quizNext   = "next"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildQuizAnswerCallback builds callback data for answering round roundID
// with the element of the given atomic number.
func buildQuizAnswerCallback(roundID uint64, number int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizAnswer, strconv.FormatUint(roundID, 10), strconv.Itoa(number)},
	}.encode()
}

// buildQuizNextCallback builds callback data for requesting the next question.
func buildQuizNextCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizNext},
	}.encode()
}

// buildElementsPageCallback builds callback data for opening a catalog page.
func buildElementsPageCallback(page int) string {
	return callbackData{
		Action: actionElements,
		Params: []string{strconv.Itoa(page)},
	}.encode()
}
