package quotes_test

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/f3rmion/prenoms/internal/catalog"
	"github.com/f3rmion/prenoms/internal/quotes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelector(t *testing.T, categories []quotes.Category) *quotes.Selector {
	t.Helper()
	return quotes.NewSelector(categories, quotes.DefaultRecentLimit, rand.New(rand.NewPCG(7, 11)), nil)
}

func TestNext_NoRepeatWithinWindow(t *testing.T) {
	sel := newSelector(t, catalog.Quotes())
	require.Greater(t, len(sel.All()), quotes.DefaultRecentLimit)

	var got []string
	for range 200 {
		got = append(got, sel.Next(quotes.All))
	}

	for i := 0; i+quotes.DefaultRecentLimit < len(got); i++ {
		window := got[i : i+quotes.DefaultRecentLimit+1]
		seen := make(map[string]bool)
		for _, q := range window {
			assert.False(t, seen[q], "repeat within %d calls at %d: %q", len(window), i, q)
			seen[q] = true
		}
	}
}

func TestNext_StaysInCategory(t *testing.T) {
	sel := newSelector(t, catalog.Quotes())

	amour, err := sel.Pool("Amour")
	require.NoError(t, err)

	for range 50 {
		q := sel.Next("amour")
		assert.Contains(t, amour, q)
	}
}

func TestNext_AllAliases(t *testing.T) {
	sel := newSelector(t, catalog.Quotes())
	all := sel.All()

	for _, c := range []string{"all", "ALL", "Toutes", "toutes", ""} {
		assert.Contains(t, all, sel.Next(c), c)
		assert.True(t, quotes.IsAll(c), c)
	}
	assert.False(t, quotes.IsAll("Amour"))
}

func TestNext_SmallPoolResets(t *testing.T) {
	sel := newSelector(t, []quotes.Category{{Name: "Duo", Quotes: []string{"un", "deux"}}})

	first := sel.Next("Duo")
	second := sel.Next("Duo")
	assert.NotEqual(t, first, second)
	assert.Len(t, sel.Recent(), 2)

	third := sel.Next("Duo")
	assert.Contains(t, []string{"un", "deux"}, third)
	assert.Equal(t, []string{third}, sel.Recent())
}

func TestNext_WindowIsBounded(t *testing.T) {
	sel := quotes.NewSelector(catalog.Quotes(), 4, rand.New(rand.NewPCG(3, 5)), nil)

	for range 30 {
		sel.Next(quotes.All)
		assert.LessOrEqual(t, len(sel.Recent()), 4)
	}
	assert.Len(t, sel.Recent(), 4)
}

func TestNext_UnknownCategoryFallsBack(t *testing.T) {
	var buf bytes.Buffer
	sel := quotes.NewSelector(catalog.Quotes(), quotes.DefaultRecentLimit, nil, log.New(&buf))

	q := sel.Next("Humour")
	assert.Contains(t, sel.All(), q)
	assert.Contains(t, buf.String(), "Humour")
	assert.Equal(t, quotes.AllLabel, sel.Label("Humour"))
}

func TestNext_EmptyTable(t *testing.T) {
	sel := newSelector(t, nil)
	assert.Equal(t, "", sel.Next(quotes.All))
}

func TestNext_DuplicateQuoteValues(t *testing.T) {
	sel := quotes.NewSelector([]quotes.Category{
		{Name: "A", Quotes: []string{"même", "autre"}},
		{Name: "B", Quotes: []string{"même", "encore"}},
	}, 10, rand.New(rand.NewPCG(1, 1)), nil)

	var got []string
	for range 3 {
		got = append(got, sel.Next(quotes.All))
	}

	// Values are compared, so both copies of "même" count as shown.
	slices.Sort(got)
	assert.Equal(t, []string{"autre", "encore", "même"}, got)
}

func TestPool_UnknownCategory(t *testing.T) {
	sel := newSelector(t, catalog.Quotes())

	_, err := sel.Pool("Humour")
	require.Error(t, err)
	assert.ErrorIs(t, err, quotes.ErrUnknownCategory)

	var ucErr *quotes.UnknownCategoryError
	require.ErrorAs(t, err, &ucErr)
	assert.Equal(t, "Humour", ucErr.Label)
}

func TestCategories(t *testing.T) {
	sel := newSelector(t, []quotes.Category{
		{Name: "Amour", Quotes: []string{"a"}},
		{Name: "amour", Quotes: []string{"b"}},
		{Name: "Sagesse", Quotes: []string{"c"}},
	})

	assert.Equal(t, []string{"Amour", "Sagesse"}, sel.Categories())

	pool, err := sel.Pool("AMOUR")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, pool)
	assert.Equal(t, "Amour", sel.Label("amour"))
}

func TestPool_ReturnsCopy(t *testing.T) {
	sel := newSelector(t, catalog.Quotes())

	pool, err := sel.Pool("Sagesse")
	require.NoError(t, err)
	pool[0] = "changed"

	again, _ := sel.Pool("Sagesse")
	assert.NotEqual(t, "changed", again[0])
}
