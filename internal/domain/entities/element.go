// Package entities contains domain entities used across the application.
package entities

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinCatalogSize is the smallest catalog a quiz round can be built from.
const MinCatalogSize = 4

var ErrCatalogTooSmall = errors.New("catalog is too small")

// Element represents one row of the periodic table catalog.
// The atomic number identifies the element; name and symbol are unique too.
type Element struct {
	Number     int     `json:"number" yaml:"number"`           // atomic number (1 to 118)
	Symbol     string  `json:"symbol" yaml:"symbol"`           // chemical symbol, e.g. "He"
	Name       string  `json:"name" yaml:"name"`               // element name shown as an answer option
	AtomicMass float64 `json:"atomic_mass" yaml:"atomic_mass"` // standard atomic mass
	Category   string  `json:"category" yaml:"category"`       // category label, e.g. "gaz noble"
	Color      string  `json:"color" yaml:"color"`             // display colour in #rrggbb form
}

// ElementDetail is the full element card shown after a round is answered.
type ElementDetail struct {
	Name       string
	Symbol     string
	Number     int
	AtomicMass float64
	Category   string
}

// Detail returns the element card.
func (e *Element) Detail() ElementDetail {
	return ElementDetail{
		Name:       e.Name,
		Symbol:     e.Symbol,
		Number:     e.Number,
		AtomicMass: e.AtomicMass,
		Category:   e.Category,
	}
}

// RGB parses Color. It returns false unless Color has the #rrggbb form.
func (e *Element) RGB() (r, g, b int, ok bool) {
	if len(e.Color) != 7 || e.Color[0] != '#' {
		return 0, 0, 0, false
	}

	v, err := strconv.ParseUint(e.Color[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}

	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName lowercases s, drops diacritics and collapses whitespace,
// so "  Hélium " and "helium" compare equal.
func NormalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}

	return strings.Join(strings.Fields(s), " ")
}
