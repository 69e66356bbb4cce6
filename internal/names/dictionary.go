// Package names resolves free-text first names against the name table.
package names

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"strings"

	"github.com/f3rmion/prenoms/internal/prenoms"
)

const (
	// MatchCutoff is the minimum similarity for a fuzzy match to resolve.
	MatchCutoff = 0.8

	// SuggestionCount is how many names are offered after a miss.
	SuggestionCount = 3

	// LiveCutoff and LiveCount drive the as-you-type suggestions.
	LiveCutoff = 0.6
	LiveCount  = 5
)

// ErrInvalidTable is returned by Validate when table keys are not canonical.
var ErrInvalidTable = errors.New("invalid name table")

// Match is a successful resolution.
type Match struct {
	Query  string // canonical form of the query
	Name   string // table key that matched
	Record prenoms.NameRecord
	Score  float64 // similarity, 1 for exact hits
	Exact  bool
}

// Dictionary holds the name table.
type Dictionary struct {
	entries map[string]prenoms.NameRecord
	keys    []string
	rng     *rand.Rand
}

// NewDictionary creates a dictionary over records. Keys are stored as given;
// see Validate. A nil rng uses a randomly seeded source.
func NewDictionary(records map[string]prenoms.NameRecord, rng *rand.Rand) *Dictionary {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	d := &Dictionary{
		entries: make(map[string]prenoms.NameRecord, len(records)),
		rng:     rng,
	}
	for name, rec := range records {
		d.entries[name] = rec
	}
	d.reindex()
	return d
}

func (d *Dictionary) reindex() {
	d.keys = d.keys[:0]
	for name := range d.entries {
		d.keys = append(d.keys, name)
	}
	sort.Strings(d.keys)
}

// fileEntry is one line of a JSONL name file.
type fileEntry struct {
	Name        string `json:"name"`
	Meaning     string `json:"meaning"`
	Origin      string `json:"origin"`
	Gender      string `json:"gender"`
	Description string `json:"description"`
}

// LoadFromFile merges a JSONL name file into the dictionary. Names are
// canonicalized on the way in; later lines override earlier ones.
func (d *Dictionary) LoadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening name file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var entry fileEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineNum, err)
		}
		name := prenoms.Canonical(entry.Name)
		if name == "" {
			return fmt.Errorf("%s:%d: missing name", path, lineNum)
		}
		gender, err := prenoms.ParseGender(entry.Gender)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineNum, err)
		}

		d.entries[name] = prenoms.NameRecord{
			Meaning:     entry.Meaning,
			Origin:      entry.Origin,
			Gender:      gender,
			Description: entry.Description,
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading name file: %w", err)
	}

	d.reindex()
	return nil
}

// Validate reports keys that differ from their canonical form. Such keys can
// never be hit by an exact lookup.
func (d *Dictionary) Validate() error {
	var bad []string
	for _, name := range d.keys {
		if prenoms.Canonical(name) != name {
			bad = append(bad, fmt.Sprintf("%q", name))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: non-canonical keys %s", ErrInvalidTable, strings.Join(bad, ", "))
	}
	return nil
}

// Lookup returns the record stored under the exact key name.
func (d *Dictionary) Lookup(name string) (prenoms.NameRecord, bool) {
	rec, ok := d.entries[name]
	return rec, ok
}

// Resolve returns the record for query, or nil when nothing matches.
// An exact hit on the canonical query wins; otherwise the closest key is
// accepted if its similarity reaches MatchCutoff.
func (d *Dictionary) Resolve(query string) *Match {
	q := prenoms.Canonical(query)
	if q == "" {
		return nil
	}

	if rec, ok := d.entries[q]; ok {
		return &Match{Query: q, Name: q, Record: rec, Score: 1, Exact: true}
	}

	best := d.closest(q, 1, MatchCutoff)
	if len(best) == 0 {
		return nil
	}
	return &Match{
		Query:  q,
		Name:   best[0].name,
		Record: d.entries[best[0].name],
		Score:  best[0].score,
	}
}

// Close returns up to n keys whose similarity to query is at least cutoff,
// best first.
func (d *Dictionary) Close(query string, n int, cutoff float64) []string {
	q := prenoms.Canonical(query)
	if q == "" {
		return nil
	}
	scored := d.closest(q, n, cutoff)
	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.name
	}
	return out
}

type scoredName struct {
	name  string
	score float64
}

func (d *Dictionary) closest(q string, n int, cutoff float64) []scoredName {
	if n <= 0 {
		return nil
	}
	var scored []scoredName
	for _, name := range d.keys {
		if s := Ratio(name, q); s >= cutoff {
			scored = append(scored, scoredName{name: name, score: s})
		}
	}
	// Highest score first; equal scores favour the greater key.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].name > scored[j].name
	})
	if len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

// Suggest returns n distinct names chosen uniformly at random. It returns
// every name, shuffled, when the table holds fewer than n.
func (d *Dictionary) Suggest(n int) []string {
	if n <= 0 {
		return nil
	}
	pool := append([]string(nil), d.keys...)
	d.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if n < len(pool) {
		pool = pool[:n]
	}
	return pool
}

// Random returns one name chosen uniformly at random, or "" for an empty table.
func (d *Dictionary) Random() string {
	if len(d.keys) == 0 {
		return ""
	}
	return d.keys[d.rng.IntN(len(d.keys))]
}

// Names returns all keys in sorted order.
func (d *Dictionary) Names() []string {
	return append([]string(nil), d.keys...)
}

// Size returns the number of entries in the dictionary.
func (d *Dictionary) Size() int {
	return len(d.entries)
}
