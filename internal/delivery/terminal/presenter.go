// Package terminal plays the quiz on a text terminal.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/aliskhannn/periodic-quiz-bot/internal/domain/entities"
)

const quitInput = "q"

type RoundGenerator interface {
	NewRound() entities.QuizRound
}

type AnswerMatcher interface {
	Match(round entities.QuizRound, input string) (*entities.Element, bool)
}

var categoryColors = map[string]color.Attribute{
	"non-métal":              color.FgHiGreen,
	"gaz noble":              color.FgHiMagenta,
	"métal alcalin":          color.FgHiRed,
	"métal alcalino-terreux": color.FgYellow,
	"métalloïde":             color.FgCyan,
	"halogène":               color.FgGreen,
	"métal pauvre":           color.FgWhite,
	"métal de transition":    color.FgMagenta,
	"lanthanide":             color.FgHiBlue,
	"actinide":               color.FgBlue,
}

// Presenter renders rounds and reads answers line by line.
// Input is read on its own goroutine so that a cancelled context
// interrupts a pending prompt.
type Presenter struct {
	in        *bufio.Scanner
	lines     chan string
	readOnce  sync.Once
	eof       bool
	out       io.Writer
	generator RoundGenerator
	matcher   AnswerMatcher
	logger    *zap.Logger
	noColor   bool
}

func NewPresenter(
	in io.Reader,
	out io.Writer,
	generator RoundGenerator,
	matcher AnswerMatcher,
	logger *zap.Logger,
) *Presenter {
	return &Presenter{
		in:        bufio.NewScanner(in),
		out:       out,
		generator: generator,
		matcher:   matcher,
		logger:    logger,
		noColor:   color.NoColor,
	}
}

// DisableColor turns off ANSI colours, e.g. when the output is not a terminal.
func (p *Presenter) DisableColor() {
	p.noColor = true
}

// Play runs rounds until the input ends, the user quits or the limit is reached.
// A limit of zero or less means no limit. It returns the number of answered rounds.
func (p *Presenter) Play(ctx context.Context, limit int) (int, error) {
	p.startReading()
	answered := 0

	for limit <= 0 || answered < limit {
		if err := ctx.Err(); err != nil {
			return answered, err
		}

		round := p.generator.NewRound()
		p.renderQuestion(round)

		selected, ok := p.readAnswer(ctx, round)
		if !ok {
			return answered, p.inputErr(ctx)
		}

		result, err := round.Answer(selected)
		if err != nil {
			return answered, fmt.Errorf("answer round: %w", err)
		}
		answered++

		p.logger.Debug("terminal round answered",
			zap.String("symbol", result.Target.Symbol),
			zap.Bool("correct", result.IsCorrect()),
		)

		p.renderResult(result)

		if limit > 0 && answered >= limit {
			break
		}

		fmt.Fprint(p.out, "\nEntrée : question suivante, q : quitter ")
		line, ok := p.readLine(ctx)
		if !ok || strings.EqualFold(line, quitInput) {
			return answered, p.inputErr(ctx)
		}
		fmt.Fprintln(p.out)
	}

	return answered, nil
}

func (p *Presenter) renderQuestion(round entities.QuizRound) {
	badge := p.badge(round.Target)
	fmt.Fprintf(p.out, "Quel est le nom de l'élément pour le symbole %s ?\n\n", badge.Sprintf(" %s ", round.Target.Symbol))

	for i, o := range round.Options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, o.Name)
	}
}

func (p *Presenter) renderResult(round entities.QuizRound) {
	fmt.Fprintln(p.out)
	if round.IsCorrect() {
		p.colorize(color.FgGreen, color.Bold).Fprintln(p.out, "Correct ! 🎉")
	} else {
		p.colorize(color.FgRed, color.Bold).Fprintln(p.out, "Incorrect ! 😞")
	}

	d := round.Detail()
	fmt.Fprintln(p.out, "\nInformations sur l'élément :")
	fmt.Fprintf(p.out, "  Nom : %s\n", d.Name)
	fmt.Fprintf(p.out, "  Symbole : %s\n", d.Symbol)
	fmt.Fprintf(p.out, "  Numéro atomique : %d\n", d.Number)
	fmt.Fprintf(p.out, "  Masse atomique : %s\n", strconv.FormatFloat(d.AtomicMass, 'f', -1, 64))
	fmt.Fprintf(p.out, "  Catégorie : %s\n", d.Category)
}

// readAnswer prompts until the input designates an option, by number or by name.
// It returns false when the input ends or the user quits.
func (p *Presenter) readAnswer(ctx context.Context, round entities.QuizRound) (*entities.Element, bool) {
	for {
		fmt.Fprintf(p.out, "\nVotre réponse (1-%d ou nom, q pour quitter) : ", len(round.Options))

		line, ok := p.readLine(ctx)
		if !ok || strings.EqualFold(line, quitInput) {
			return nil, false
		}

		selected, ok := p.matcher.Match(round, line)
		if !ok {
			fmt.Fprintln(p.out, "Réponse invalide.")
			continue
		}

		return selected, true
	}
}

func (p *Presenter) startReading() {
	p.readOnce.Do(func() {
		p.lines = make(chan string)
		go func() {
			defer close(p.lines)
			for p.in.Scan() {
				p.lines <- strings.TrimSpace(p.in.Text())
			}
		}()
	})
}

// readLine returns the next input line. It returns false when the input
// ends or ctx is done.
func (p *Presenter) readLine(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-p.lines:
		if !ok {
			p.eof = true
		}
		return line, ok
	}
}

// inputErr reports why reading stopped: cancellation, a read error, or nil
// at end of input or when the user quit.
func (p *Presenter) inputErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.eof {
		return p.in.Err()
	}
	return nil
}

func (p *Presenter) colorize(attrs ...color.Attribute) *color.Color {
	return p.finish(color.New(attrs...))
}

// badge paints the symbol on the element's own colour, or on its category
// colour when the catalog gives none.
func (p *Presenter) badge(e *entities.Element) *color.Color {
	c := color.New(color.Bold)
	if r, g, b, ok := e.RGB(); ok {
		c.Add(color.FgHiWhite).AddBgRGB(r, g, b)
	} else {
		c.Add(categoryAttribute(e.Category), color.ReverseVideo)
	}
	return p.finish(c)
}

func (p *Presenter) finish(c *color.Color) *color.Color {
	if p.noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

func categoryAttribute(category string) color.Attribute {
	if attr, ok := categoryColors[category]; ok {
		return attr
	}
	return color.FgHiWhite
}
