package tui

import (
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/prenoms/internal/catalog"
	"github.com/f3rmion/prenoms/internal/favorites"
	"github.com/f3rmion/prenoms/internal/format"
	"github.com/f3rmion/prenoms/internal/names"
	"github.com/f3rmion/prenoms/internal/prenoms"
	"github.com/f3rmion/prenoms/internal/quotes"
	"github.com/f3rmion/prenoms/internal/session"
	"github.com/f3rmion/prenoms/internal/tui/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	dict := names.NewDictionary(catalog.Names(), rand.New(rand.NewPCG(1, 2)))
	sel := quotes.NewSelector(catalog.Quotes(), quotes.DefaultRecentLimit, rand.New(rand.NewPCG(3, 4)), nil)
	store := favorites.New(filepath.Join(t.TempDir(), "favorites.json"), nil)
	sess := session.New(dict, sel, store)

	m := NewApp(sess, func(string) error { return nil }, time.Hour)
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	app, ok := next.(AppModel)
	require.True(t, ok)
	return app
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_WelcomeDismissedByAnyKey(t *testing.T) {
	m := newTestApp(t)
	assert.Contains(t, m.View(), "Bienvenue")

	m = update(t, m, key("x"))
	assert.NotContains(t, m.View(), "Bienvenue")
	assert.Contains(t, m.View(), "Citations")
}

func TestApp_SidebarNavigation(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, key("x"))

	m = update(t, m, key("tab"))
	m = update(t, m, key("2"))
	assert.Equal(t, ViewMeaning, m.CurrentView())

	m = update(t, m, key("tab"))
	m = update(t, m, key("j"))
	m = update(t, m, key("enter"))
	assert.Equal(t, ViewFavorites, m.CurrentView())
	assert.Contains(t, m.View(), format.NothingSaved)
}

func TestApp_DigitsTypeIntoInput(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, key("x"))

	m = update(t, m, key("2"))
	assert.Equal(t, ViewCitation, m.CurrentView())
}

func TestApp_NoticeClearsAfterTick(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, key("x"))

	next, cmd := m.Update(views.NoticeMsg{Text: format.Added})
	m = next.(AppModel)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), format.Added)

	m = update(t, m, clearNoticeMsg{seq: m.noticeSeq - 1})
	assert.Contains(t, m.View(), format.Added, "stale tick is ignored")

	m = update(t, m, clearNoticeMsg{seq: m.noticeSeq})
	assert.NotContains(t, m.View(), format.Added)
}

func TestApp_Daily(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, key("x"))

	next, cmd := m.Update(dailyMsg{})
	m = next.(AppModel)
	require.NotNil(t, cmd, "daily quote re-arms")
	assert.Contains(t, m.View(), format.DailyTitle)
	assert.Contains(t, m.session.Quotes().All(), m.daily)
}

func TestApp_DailyWaitsOneInterval(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, key("x"))
	m.dailyInterval = 50 * time.Millisecond

	cmds := []tea.Cmd{m.Init()}
	if batch, ok := cmds[0]().(tea.BatchMsg); ok {
		cmds = batch
	}

	var fired bool
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		start := time.Now()
		if _, ok := cmd().(dailyMsg); ok {
			fired = true
			assert.GreaterOrEqual(t, time.Since(start), m.dailyInterval)
		}
	}
	assert.True(t, fired, "daily tick scheduled")
	assert.NotContains(t, m.View(), format.DailyTitle)
}

func TestApp_DailyDisabled(t *testing.T) {
	m := newTestApp(t)
	m.dailyInterval = 0
	assert.NotNil(t, m.Init())
	assert.Equal(t, "", m.daily)
}

func TestApp_RestoreFavorite(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, key("x"))

	item := prenoms.FavoriteItem{Name: "Aya", Content: "✨ Aya ✨\n\n📖 Signification : Miracle", Mode: prenoms.ModeMeaning}
	m = update(t, m, views.RestoreMsg{Item: item})

	assert.Equal(t, ViewMeaning, m.CurrentView())
	assert.Equal(t, prenoms.ModeMeaning, m.session.Mode())
	assert.Contains(t, m.View(), "Miracle")
}

func TestApp_HelpOverlay(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, key("x"))

	m = update(t, m, key("tab"))
	m = update(t, m, key("?"))
	assert.Contains(t, m.View(), "Aide")

	m = update(t, m, key("x"))
	assert.NotContains(t, m.View(), "Afficher cette aide")
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := newTestApp(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
