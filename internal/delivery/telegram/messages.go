// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/aliskhannn/periodic-quiz-bot/internal/domain/entities"
)

const (
	msgWelcome = "<b>Quiz : Tableau Périodique</b>\n\n" +
		"Je vous montre le symbole d'un élément chimique, vous choisissez son nom parmi quatre propositions."
	msgHelp = "Commandes disponibles :\n\n" +
		"/quiz — nouvelle question\n" +
		"/all — parcourir le tableau périodique\n" +
		"/element Fe — fiche d'un élément (symbole ou numéro atomique)\n" +
		"/help — cette aide\n\n" +
		"Répondez avec les boutons ou en écrivant le nom de l'élément."
	msgUnknownCommand   = "Commande inconnue.\n\n" + msgHelp
	msgUseElement       = "Utilisation : /element Fe ou /element 26"
	msgElementNotFound  = "Aucun élément ne correspond à %s."
	msgAnswerFirst      = "Répondez d'abord à la question en cours."
	msgUseQuiz          = "Envoyez un symbole (par exemple Fe) pour voir sa fiche, ou /quiz pour une nouvelle question."
	msgInternalError    = "Une erreur est survenue. Réessayez plus tard."
	msgAlreadyAnswered  = "Vous avez déjà répondu à cette question."
	msgQuestionExpired  = "Cette question n'est plus active. Utilisez /quiz."
	msgCorrect          = "Correct ! 🎉"
	msgIncorrect        = "Incorrect ! 😞"
	msgQuestionTemplate = "Quel est le nom de l'élément pour le symbole <b>%s</b> ?"
)

// renderQuestion renders the prompt of an unanswered round.
func renderQuestion(round entities.QuizRound) string {
	return fmt.Sprintf(msgQuestionTemplate, html.EscapeString(round.Target.Symbol))
}

// renderResult renders the verdict and the target card of an answered round.
func renderResult(round entities.QuizRound) string {
	var sb strings.Builder

	if round.IsCorrect() {
		sb.WriteString("<b>" + msgCorrect + "</b>")
	} else {
		sb.WriteString("<b>" + msgIncorrect + "</b>")
		if round.Selected != nil {
			sb.WriteString("\nVotre réponse : " + html.EscapeString(round.Selected.Name))
		}
	}

	sb.WriteString("\n\n")
	sb.WriteString(renderDetail(round.Detail()))

	return sb.String()
}

// renderDetail renders an element card.
func renderDetail(d entities.ElementDetail) string {
	return fmt.Sprintf(
		"<b>Informations sur l'élément :</b>\n"+
			"<b>Nom :</b> %s\n"+
			"<b>Symbole :</b> %s\n"+
			"<b>Numéro atomique :</b> %d\n"+
			"<b>Masse atomique :</b> %s\n"+
			"<b>Catégorie :</b> %s",
		html.EscapeString(d.Name),
		html.EscapeString(d.Symbol),
		d.Number,
		formatMass(d.AtomicMass),
		html.EscapeString(d.Category),
	)
}

func formatMass(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}
