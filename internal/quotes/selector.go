// Package quotes picks inspirational quotes while steering away from the ones
// shown recently.
package quotes

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/f3rmion/prenoms/internal/logging"
)

const (
	// All selects the pool made of every category.
	All = "all"

	// AllLabel is the display label of the all pool.
	AllLabel = "Toutes"

	// DefaultRecentLimit is the size of the repeat-avoidance window.
	DefaultRecentLimit = 10
)

// ErrUnknownCategory is returned when a label is not in the table.
var ErrUnknownCategory = errors.New("unknown category")

// UnknownCategoryError names the label that was not found.
type UnknownCategoryError struct {
	Label string
}

// Error implements the error interface.
func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q", e.Label)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnknownCategoryError) Unwrap() error {
	return ErrUnknownCategory
}

// Category is a labelled, ordered list of quotes.
type Category struct {
	Name   string   `yaml:"name"`
	Quotes []string `yaml:"quotes"`
}

// Selector hands out quotes. It is not safe for concurrent use.
type Selector struct {
	categories []Category
	index      map[string]int
	all        []string
	recent     *RecentWindow
	rng        *rand.Rand
	logger     *log.Logger
}

// NewSelector builds a selector over categories. limit is the size of the
// recent window; rng and logger may be nil.
func NewSelector(categories []Category, limit int, rng *rand.Rand, logger *log.Logger) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = logging.Discard()
	}

	s := &Selector{
		index:  make(map[string]int, len(categories)),
		recent: NewRecentWindow(limit),
		rng:    rng,
		logger: logger,
	}
	for _, c := range categories {
		c.Quotes = append([]string(nil), c.Quotes...)
		key := strings.ToLower(c.Name)
		if i, ok := s.index[key]; ok {
			s.categories[i].Quotes = append(s.categories[i].Quotes, c.Quotes...)
		} else {
			s.index[key] = len(s.categories)
			s.categories = append(s.categories, c)
		}
		s.all = append(s.all, c.Quotes...)
	}
	return s
}

// IsAll reports whether category designates the all pool.
func IsAll(category string) bool {
	c := strings.TrimSpace(category)
	return c == "" || strings.EqualFold(c, All) || strings.EqualFold(c, AllLabel)
}

// Categories returns the category labels in table order.
func (s *Selector) Categories() []string {
	out := make([]string, len(s.categories))
	for i, c := range s.categories {
		out[i] = c.Name
	}
	return out
}

// Label returns the display label for category: the table spelling for a
// known category, AllLabel otherwise.
func (s *Selector) Label(category string) string {
	if IsAll(category) {
		return AllLabel
	}
	if i, ok := s.index[strings.ToLower(strings.TrimSpace(category))]; ok {
		return s.categories[i].Name
	}
	return AllLabel
}

// Pool returns a copy of the candidate quotes for category.
func (s *Selector) Pool(category string) ([]string, error) {
	pool, err := s.pool(category)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), pool...), nil
}

func (s *Selector) pool(category string) ([]string, error) {
	if IsAll(category) {
		return s.all, nil
	}
	i, ok := s.index[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return nil, &UnknownCategoryError{Label: category}
	}
	return s.categories[i].Quotes, nil
}

// Next returns a quote from category that is not in the recent window. When
// every candidate was shown recently the window is cleared first. An unknown
// category is logged and treated as the all pool. Next returns "" only when
// the table holds no quotes at all.
func (s *Selector) Next(category string) string {
	pool, err := s.pool(category)
	if err != nil {
		s.logger.Warn("falling back to every quote", "err", err)
		pool = s.all
	}
	if len(pool) == 0 {
		return ""
	}

	available := make([]string, 0, len(pool))
	for _, q := range pool {
		if !s.recent.Contains(q) {
			available = append(available, q)
		}
	}
	if len(available) == 0 {
		s.logger.Debug("every candidate shown recently, resetting window", "category", s.Label(category))
		s.recent.Reset()
		available = pool
	}

	q := available[s.rng.IntN(len(available))]
	s.recent.Push(q)
	return q
}

// Recent returns the recent window contents, oldest first.
func (s *Selector) Recent() []string {
	return s.recent.Items()
}

// All returns every quote, category by category.
func (s *Selector) All() []string {
	return append([]string(nil), s.all...)
}
