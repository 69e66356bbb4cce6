package names

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Ratio measures how alike a table key and a query are, in [0, 1]. The
// measure is not symmetric: the key is always the first sequence.
func Ratio(key, query string) float64 {
	return difflib.NewMatcher(runes(key), runes(query)).Ratio()
}

// runes splits s into one element per rune so accented letters count once.
func runes(s string) []string {
	return strings.Split(s, "")
}
