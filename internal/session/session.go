// Package session ties the name dictionary, the quote selector and the
// favorites store together for one interactive user.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/f3rmion/prenoms/internal/favorites"
	"github.com/f3rmion/prenoms/internal/format"
	"github.com/f3rmion/prenoms/internal/names"
	"github.com/f3rmion/prenoms/internal/prenoms"
	"github.com/f3rmion/prenoms/internal/quotes"
)

var (
	// ErrEmptyName is returned when a blank name is submitted.
	ErrEmptyName = errors.New("empty name")

	// ErrNoResult is returned when saving or sharing before any result exists.
	ErrNoResult = errors.New("no result to use")
)

// Result is one card produced for the user.
type Result struct {
	Name        string // canonical form of what was typed
	Mode        prenoms.Mode
	Content     string
	Category    string       // quote cards only
	Quote       string       // quote cards only
	Match       *names.Match // meaning cards only, nil when the name is unknown
	Suggestions []string     // meaning cards for unknown names
}

// Found reports whether a meaning lookup hit the table. Quote results always
// count as found.
func (r *Result) Found() bool {
	return r.Mode == prenoms.ModeCitation || r.Match != nil
}

// Session holds the current mode, category and last result.
type Session struct {
	names     *names.Dictionary
	quotes    *quotes.Selector
	favorites *favorites.Store
	formatter *format.Formatter
	now       func() time.Time

	mode     prenoms.Mode
	category string
	current  *Result
}

// New creates a session in citation mode over the all pool.
func New(dict *names.Dictionary, sel *quotes.Selector, store *favorites.Store) *Session {
	return &Session{
		names:     dict,
		quotes:    sel,
		favorites: store,
		formatter: format.NewFormatter(),
		now:       time.Now,
		mode:      prenoms.ModeCitation,
		category:  quotes.All,
	}
}

// Names returns the dictionary.
func (s *Session) Names() *names.Dictionary { return s.names }

// Quotes returns the selector.
func (s *Session) Quotes() *quotes.Selector { return s.quotes }

// Favorites returns the favorites store.
func (s *Session) Favorites() *favorites.Store { return s.favorites }

// Mode returns the current mode.
func (s *Session) Mode() prenoms.Mode { return s.mode }

// SetMode switches between citation and meaning mode.
func (s *Session) SetMode(m prenoms.Mode) { s.mode = m }

// Category returns the selected quote category.
func (s *Session) Category() string { return s.category }

// SetCategory selects the quote category used by Submit.
func (s *Session) SetCategory(category string) error {
	if _, err := s.quotes.Pool(category); err != nil {
		return err
	}
	if quotes.IsAll(category) {
		category = quotes.All
	}
	s.category = category
	return nil
}

// Current returns the last result, or nil.
func (s *Session) Current() *Result { return s.current }

// SetCurrent makes r the result used by SaveFavorite and ShareText.
func (s *Session) SetCurrent(r *Result) { s.current = r }

// Submit produces a card for name in the current mode.
func (s *Session) Submit(name string) (*Result, error) {
	if s.mode == prenoms.ModeMeaning {
		return s.Meaning(name)
	}
	return s.Quote(name, s.category)
}

// Quote produces a quote card for name from category.
func (s *Session) Quote(name, category string) (*Result, error) {
	canonical := prenoms.Canonical(name)
	if canonical == "" {
		return nil, ErrEmptyName
	}

	q := s.quotes.Next(category)
	label := s.quotes.Label(category)
	content, err := s.formatter.Quote(format.QuoteData{Name: canonical, Quote: q, Category: label})
	if err != nil {
		return nil, fmt.Errorf("formatting quote: %w", err)
	}

	s.current = &Result{
		Name:     canonical,
		Mode:     prenoms.ModeCitation,
		Content:  content,
		Category: label,
		Quote:    q,
	}
	return s.current, nil
}

// Meaning produces a meaning card for name. Unknown names produce a card
// with suggestions rather than an error.
func (s *Session) Meaning(name string) (*Result, error) {
	canonical := prenoms.Canonical(name)
	if canonical == "" {
		return nil, ErrEmptyName
	}

	res := &Result{Name: canonical, Mode: prenoms.ModeMeaning}
	var err error
	if m := s.names.Resolve(canonical); m != nil {
		res.Match = m
		res.Content, err = s.formatter.Meaning(format.MeaningData{Name: canonical, Record: m.Record})
	} else {
		res.Suggestions = s.names.Suggest(names.SuggestionCount)
		res.Content, err = s.formatter.NotFound(format.NotFoundData{Name: strings.TrimSpace(name), Suggestions: res.Suggestions})
	}
	if err != nil {
		return nil, fmt.Errorf("formatting meaning: %w", err)
	}

	s.current = res
	return res, nil
}

// SaveFavorite stores the current result. It returns
// favorites.ErrAlreadyExists when the name is already saved.
func (s *Session) SaveFavorite() error {
	if s.current == nil || s.current.Content == "" {
		return ErrNoResult
	}
	return s.favorites.Add(prenoms.FavoriteItem{
		Name:      s.current.Name,
		Content:   s.current.Content,
		Mode:      s.current.Mode,
		Timestamp: prenoms.Timestamp(s.now()),
	})
}

// Restore makes a saved favorite the current result and switches to its mode.
func (s *Session) Restore(item prenoms.FavoriteItem) *Result {
	s.mode = item.Mode
	s.current = &Result{
		Name:    item.Name,
		Mode:    item.Mode,
		Content: item.Content,
	}
	return s.current
}

// ShareText returns the current card without markup.
func (s *Session) ShareText() (string, error) {
	if s.current == nil || s.current.Content == "" {
		return "", ErrNoResult
	}
	return format.StripMarkup(s.current.Content), nil
}

// Daily returns the quote of the day from the all pool. It goes through the
// selector so it also avoids recent repeats.
func (s *Session) Daily() string {
	return s.quotes.Next(quotes.All)
}

// Suggest returns the names close to a partially typed one.
func (s *Session) Suggest(partial string) []string {
	return s.names.Close(partial, names.LiveCount, names.LiveCutoff)
}

// RandomName returns a random name from the table.
func (s *Session) RandomName() string {
	return s.names.Random()
}
