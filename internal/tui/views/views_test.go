package views

import (
	"errors"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/prenoms/internal/catalog"
	"github.com/f3rmion/prenoms/internal/favorites"
	"github.com/f3rmion/prenoms/internal/format"
	"github.com/f3rmion/prenoms/internal/names"
	"github.com/f3rmion/prenoms/internal/prenoms"
	"github.com/f3rmion/prenoms/internal/quotes"
	"github.com/f3rmion/prenoms/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	dict := names.NewDictionary(catalog.Names(), rand.New(rand.NewPCG(1, 2)))
	sel := quotes.NewSelector(catalog.Quotes(), quotes.DefaultRecentLimit, rand.New(rand.NewPCG(3, 4)), nil)
	store := favorites.New(filepath.Join(t.TempDir(), "favorites.json"), nil)
	return session.New(dict, sel, store)
}

func typeText(m ResultModel, text string) ResultModel {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m ResultModel, k tea.KeyType) (ResultModel, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

func noticeText(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(NoticeMsg)
	require.True(t, ok)
	return msg.Text
}

func TestResultModel_EmptyInputWarns(t *testing.T) {
	m := NewResultModel(newTestSession(t), prenoms.ModeCitation, nil)
	m.SetSize(80, 30)

	m, _ = press(m, tea.KeyEnter)
	assert.Nil(t, m.Result())
	assert.Contains(t, m.View(), format.EmptyInput)
}

func TestResultModel_Quote(t *testing.T) {
	m := NewResultModel(newTestSession(t), prenoms.ModeCitation, nil)
	m.SetSize(80, 30)

	m = typeText(m, "rose")
	m, _ = press(m, tea.KeyEnter)

	require.NotNil(t, m.Result())
	assert.Equal(t, "Rose", m.Result().Name)
	assert.Equal(t, quotes.AllLabel, m.Category())
	assert.Contains(t, m.View(), "Rose")
}

func TestResultModel_CategoryCycle(t *testing.T) {
	sess := newTestSession(t)
	m := NewResultModel(sess, prenoms.ModeCitation, nil)

	m, _ = press(m, tea.KeyCtrlN)
	assert.Equal(t, sess.Quotes().Categories()[0], m.Category())

	m, _ = press(m, tea.KeyCtrlP)
	m, _ = press(m, tea.KeyCtrlP)
	cats := sess.Quotes().Categories()
	assert.Equal(t, cats[len(cats)-1], m.Category())

	m = typeText(m, "Lina")
	m, _ = press(m, tea.KeyEnter)
	pool, _ := sess.Quotes().Pool(cats[len(cats)-1])
	assert.Contains(t, pool, m.Result().Quote)
}

func TestResultModel_MeaningHasNoCategories(t *testing.T) {
	m := NewResultModel(newTestSession(t), prenoms.ModeMeaning, nil)
	assert.Equal(t, "", m.Category())

	m = typeText(m, "xyzzy")
	m, _ = press(m, tea.KeyEnter)
	require.NotNil(t, m.Result())
	assert.False(t, m.Result().Found())
}

func TestResultModel_Suggestions(t *testing.T) {
	m := NewResultModel(newTestSession(t), prenoms.ModeMeaning, nil)
	m.SetSize(80, 30)

	m = typeText(m, "gabrie")
	assert.Contains(t, m.View(), "💡 Suggestions: Gabriel")
}

func TestResultModel_SaveAndShare(t *testing.T) {
	sess := newTestSession(t)
	var copied string
	clip := func(s string) error { copied = s; return nil }

	m := NewResultModel(sess, prenoms.ModeMeaning, clip)
	m.SetSize(80, 30)

	_, cmd := press(m, tea.KeyCtrlS)
	assert.Equal(t, format.NoContent, noticeText(t, cmd))
	_, cmd = press(m, tea.KeyCtrlY)
	assert.Equal(t, format.NoShare, noticeText(t, cmd))

	m = typeText(m, "Fatima")
	m, _ = press(m, tea.KeyEnter)

	m, cmd = press(m, tea.KeyCtrlS)
	assert.Equal(t, format.Added, noticeText(t, cmd))
	assert.True(t, sess.Favorites().Contains("Fatima"))

	m, cmd = press(m, tea.KeyCtrlS)
	assert.Equal(t, format.AlreadySaved, noticeText(t, cmd))

	_, cmd = press(m, tea.KeyCtrlY)
	assert.Equal(t, format.Copied, noticeText(t, cmd))
	assert.True(t, strings.HasPrefix(copied, "✨ Fatima ✨"))
}

func TestResultModel_ShareClipboardError(t *testing.T) {
	m := NewResultModel(newTestSession(t), prenoms.ModeCitation, func(string) error {
		return errors.New("clipboard unavailable")
	})
	m = typeText(m, "Rose")
	m, _ = press(m, tea.KeyEnter)

	_, cmd := press(m, tea.KeyCtrlY)
	assert.Equal(t, "clipboard unavailable", noticeText(t, cmd))
}

func TestFavoritesModel(t *testing.T) {
	sess := newTestSession(t)
	for _, name := range []string{"Rose", "Lina", "Adam"} {
		_, err := sess.Quote(name, quotes.All)
		require.NoError(t, err)
		require.NoError(t, sess.SaveFavorite())
	}

	m := NewFavoritesModel(sess)
	m.SetSize(80, 30)
	view := m.View()
	assert.Contains(t, view, "⭐ Mes Favoris (3)")
	assert.Less(t, strings.Index(view, "Adam"), strings.Index(view, "Rose"), "newest first")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	restore, ok := cmd().(RestoreMsg)
	require.True(t, ok)
	assert.Equal(t, "Lina", restore.Item.Name)
}

func TestFavoritesModel_ClearNeedsConfirmation(t *testing.T) {
	sess := newTestSession(t)
	_, err := sess.Quote("Rose", quotes.All)
	require.NoError(t, err)
	require.NoError(t, sess.SaveFavorite())

	m := NewFavoritesModel(sess)
	shiftD := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("D")}

	m, cmd := m.Update(shiftD)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, sess.Favorites().Len())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	m, _ = m.Update(shiftD)
	assert.Equal(t, 1, sess.Favorites().Len(), "another key cancels the confirmation")

	m, cmd = m.Update(shiftD)
	assert.Equal(t, format.Cleared, noticeText(t, cmd))
	assert.Equal(t, 0, sess.Favorites().Len())
	assert.Contains(t, m.View(), format.NothingSaved)
}
