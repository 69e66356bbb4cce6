package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/prenoms/internal/favorites"
	"github.com/f3rmion/prenoms/internal/format"
	"github.com/f3rmion/prenoms/internal/prenoms"
	"github.com/f3rmion/prenoms/internal/session"
)

// FavoritesModel lists the saved results, newest first.
type FavoritesModel struct {
	session      *session.Session
	items        []prenoms.FavoriteItem
	selected     int
	confirmClear bool

	width  int
	height int
}

// NewFavoritesModel creates the favorites view.
func NewFavoritesModel(sess *session.Session) FavoritesModel {
	m := FavoritesModel{session: sess}
	m.Refresh()
	return m
}

// SetSize updates the view dimensions.
func (m *FavoritesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Refresh reloads the list from the store.
func (m *FavoritesModel) Refresh() {
	m.items = m.session.Favorites().Latest(favorites.DisplayLimit)
	m.confirmClear = false
	if m.selected >= len(m.items) {
		m.selected = max(len(m.items)-1, 0)
	}
}

// Update handles messages.
func (m FavoritesModel) Update(msg tea.Msg) (FavoritesModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.String() != "D" {
		m.confirmClear = false
	}

	switch key.String() {
	case "j", "down":
		if m.selected < len(m.items)-1 {
			m.selected++
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
	case "g", "home":
		m.selected = 0
	case "G", "end":
		m.selected = max(len(m.items)-1, 0)
	case "enter":
		if len(m.items) > 0 {
			item := m.items[m.selected]
			return m, func() tea.Msg { return RestoreMsg{Item: item} }
		}
	case "D":
		if len(m.items) == 0 {
			return m, nil
		}
		if !m.confirmClear {
			m.confirmClear = true
			return m, nil
		}
		m.session.Favorites().Clear()
		m.Refresh()
		return m, notice(format.Cleared)
	case "r":
		m.Refresh()
	}

	return m, nil
}

// View renders the view.
func (m FavoritesModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("⭐ Mes Favoris (%d)", m.session.Favorites().Len())))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(helpStyle.Render(format.NothingSaved))
		return b.String()
	}

	// Each item takes two lines; keep the selection on screen.
	visible := max((m.height-6)/2, 1)
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := min(start+visible, len(m.items))

	for i := start; i < end; i++ {
		it := m.items[i]
		line := favNameStyle.Render("✨ "+it.Name) + " " + favModeStyle.Render("("+modeLabel(it.Mode)+")")
		preview := favPreviewStyle.Render(format.Preview(it.Content, format.PreviewWidth))
		entry := line + "\n" + preview
		if i == m.selected {
			entry = selectedStyle.Render(entry)
		}
		b.WriteString(entry)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.confirmClear {
		b.WriteString(errorStyle.Render("Appuyez de nouveau sur D pour effacer tous les favoris"))
	} else {
		b.WriteString(helpStyle.Render("j/k: naviguer • enter: 📋 charger • D: 🗑️ effacer tout • r: rafraîchir"))
	}

	return b.String()
}

func modeLabel(m prenoms.Mode) string {
	if m == prenoms.ModeMeaning {
		return "signification"
	}
	return "citation"
}
