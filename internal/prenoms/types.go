// Package prenoms provides the core value types shared by the lookup engine,
// the quote selector and the favorites store.
package prenoms

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Gender is the grammatical gender attached to a name.
type Gender string

const (
	Masculine Gender = "Masculin"
	Feminine  Gender = "Féminin"
)

// ParseGender accepts the French labels used in the tables as well as the
// English spellings.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "masculin", "masculine", "m":
		return Masculine, nil
	case "féminin", "feminin", "feminine", "f":
		return Feminine, nil
	default:
		return "", fmt.Errorf("unknown gender %q", s)
	}
}

// UnmarshalYAML lets table files spell the gender either way.
func (g *Gender) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseGender(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// NameRecord is the etymological record of one first name.
type NameRecord struct {
	Meaning     string `yaml:"meaning" json:"meaning"`         // Signification
	Origin      string `yaml:"origin" json:"origin"`           // e.g. "Arabe", "Hébraïque"
	Gender      Gender `yaml:"gender" json:"gender"`           // Masculin or Féminin
	Description string `yaml:"description" json:"description"` // Free text shown under the card
}

// Mode tells what kind of result a favorite holds.
type Mode string

const (
	ModeCitation Mode = "citation"
	ModeMeaning  Mode = "meaning"

	// legacyModeMeaning is what older favorites files contain for ModeMeaning.
	legacyModeMeaning = "signification"
)

// ParseMode returns the mode for s. An empty string is the citation mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeCitation):
		return ModeCitation, nil
	case string(ModeMeaning), legacyModeMeaning:
		return ModeMeaning, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// UnmarshalJSON maps the legacy "signification" value onto ModeMeaning.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// FavoriteItem is one saved result.
type FavoriteItem struct {
	Name      string  `json:"name"`
	Content   string  `json:"content"`   // The exact card shown to the user
	Mode      Mode    `json:"mode"`      // citation or meaning
	Timestamp float64 `json:"timestamp"` // Unix seconds
}

// Created returns the creation time of the favorite.
func (f FavoriteItem) Created() time.Time {
	sec := int64(f.Timestamp)
	nsec := int64((f.Timestamp - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}

// Timestamp converts t into the representation stored in FavoriteItem.
func Timestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

// Canonical returns the key form of a name: surrounding whitespace trimmed,
// first character upper case, the rest lower case. Input is NFC-normalized
// first so that decomposed accents compare equal to precomposed ones.
func Canonical(name string) string {
	name = strings.TrimSpace(norm.NFC.String(name))
	if name == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:])
}
