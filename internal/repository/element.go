package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TencentBlueKing/gopkg/collection/set"
	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/periodic-quiz-bot/assets"
	"github.com/aliskhannn/periodic-quiz-bot/internal/domain/entities"
)

var (
	ErrElementNotFound   = errors.New("element not found")
	ErrDuplicateElement  = errors.New("duplicate element in catalog")
	ErrInvalidElement    = errors.New("invalid element in catalog")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// Format is the encoding of a catalog file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath detects the catalog format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// ElementRepository provides read-only access to the periodic table catalog.
// The catalog is loaded and validated once and never mutated afterwards.
type ElementRepository struct {
	elements []*entities.Element
}

// NewElementRepository loads the catalog from a JSON or YAML file.
func NewElementRepository(path string) (*ElementRepository, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return NewElementRepositoryFromBytes(data, format)
}

// NewElementRepositoryFromBytes decodes and validates a catalog.
func NewElementRepositoryFromBytes(data []byte, format Format) (*ElementRepository, error) {
	var elements []*entities.Element

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &elements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal catalog JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &elements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal catalog YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return NewElementRepositoryFromElements(elements)
}

// NewElementRepositoryFromElements validates an in-memory catalog.
func NewElementRepositoryFromElements(elements []*entities.Element) (*ElementRepository, error) {
	if err := ValidateCatalog(elements); err != nil {
		return nil, err
	}

	catalog := make([]*entities.Element, len(elements))
	copy(catalog, elements)

	return &ElementRepository{elements: catalog}, nil
}

// ValidateCatalog checks the size of the catalog and the uniqueness of
// atomic numbers, names and symbols. Names are compared the way typed
// answers are, without case or accents.
func ValidateCatalog(elements []*entities.Element) error {
	if len(elements) < entities.MinCatalogSize {
		return fmt.Errorf("%w: got %d elements, need at least %d",
			entities.ErrCatalogTooSmall, len(elements), entities.MinCatalogSize)
	}

	numbers := set.NewInt64Set()
	names := set.NewStringSet()
	symbols := set.NewStringSet()

	for i, e := range elements {
		if e == nil {
			return fmt.Errorf("%w: entry %d is empty", ErrInvalidElement, i)
		}
		if e.Number <= 0 {
			return fmt.Errorf("%w: entry %d has atomic number %d", ErrInvalidElement, i, e.Number)
		}
		if strings.TrimSpace(e.Symbol) == "" || strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("%w: element %d has no name or symbol", ErrInvalidElement, e.Number)
		}
		if e.AtomicMass <= 0 {
			return fmt.Errorf("%w: element %d has atomic mass %v", ErrInvalidElement, e.Number, e.AtomicMass)
		}
		if _, _, _, ok := e.RGB(); e.Color != "" && !ok {
			return fmt.Errorf("%w: element %d has colour %q, want #rrggbb", ErrInvalidElement, e.Number, e.Color)
		}

		number := int64(e.Number)
		if numbers.Has(number) {
			return fmt.Errorf("%w: atomic number %d", ErrDuplicateElement, e.Number)
		}
		name := entities.NormalizeName(e.Name)
		if names.Has(name) {
			return fmt.Errorf("%w: name %q", ErrDuplicateElement, e.Name)
		}
		symbol := strings.ToLower(e.Symbol)
		if symbols.Has(symbol) {
			return fmt.Errorf("%w: symbol %q", ErrDuplicateElement, e.Symbol)
		}

		numbers.Add(number)
		names.Add(name)
		symbols.Add(symbol)
	}

	return nil
}

// GetAll returns the catalog in its original order.
func (r *ElementRepository) GetAll(_ context.Context) ([]*entities.Element, error) {
	return r.elements, nil
}

// GetByNumber retrieves an element by its atomic number.
func (r *ElementRepository) GetByNumber(_ context.Context, number int) (*entities.Element, error) {
	for _, e := range r.elements {
		if e.Number == number {
			return e, nil
		}
	}

	return nil, ErrElementNotFound
}

// GetBySymbol retrieves an element by its symbol, ignoring case.
func (r *ElementRepository) GetBySymbol(_ context.Context, symbol string) (*entities.Element, error) {
	symbol = strings.TrimSpace(symbol)
	for _, e := range r.elements {
		if strings.EqualFold(e.Symbol, symbol) {
			return e, nil
		}
	}

	return nil, ErrElementNotFound
}

// Len returns the number of elements in the catalog.
func (r *ElementRepository) Len() int {
	return len(r.elements)
}

// LoadCatalog loads the catalog file at path, or the bundled catalog when path is empty.
func LoadCatalog(path string) (*ElementRepository, error) {
	if path == "" {
		return NewElementRepositoryFromBytes(assets.ElementsJSON, FormatJSON)
	}
	return NewElementRepository(path)
}
