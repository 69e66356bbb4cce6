package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/prenoms/internal/clipboard"
	"github.com/f3rmion/prenoms/internal/format"
	"github.com/f3rmion/prenoms/internal/prenoms"
	"github.com/f3rmion/prenoms/internal/session"
	"github.com/f3rmion/prenoms/internal/tui/views"
)

// noticeDuration is how long a status notice stays on screen.
const noticeDuration = 2 * time.Second

// ViewType represents the current active view
type ViewType int

const (
	ViewCitation ViewType = iota
	ViewMeaning
	ViewFavorites
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

type dailyMsg struct{}

type clearNoticeMsg struct {
	seq int
}

// AppModel is the main TUI model
type AppModel struct {
	session       *session.Session
	dailyInterval time.Duration

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	citationView  views.ResultModel
	meaningView   views.ResultModel
	favoritesView views.FavoritesModel

	// Status line
	notice    string
	noticeSeq int
	daily     string

	showWelcome bool
	showHelp    bool
}

// NewApp creates the TUI application. clip writes to the clipboard and a
// dailyInterval of zero disables the quote of the day.
func NewApp(sess *session.Session, clip clipboard.Writer, dailyInterval time.Duration) AppModel {
	if clip == nil {
		clip = clipboard.System
	}

	menuItems := []MenuItem{
		{Label: "💬 Citations", View: ViewCitation, Shortcut: "1"},
		{Label: "📖 Significations", View: ViewMeaning, Shortcut: "2"},
		{Label: "⭐ Favoris", View: ViewFavorites, Shortcut: "3"},
	}

	return AppModel{
		session:       sess,
		dailyInterval: dailyInterval,
		sidebarWidth:  22,
		currentView:   ViewCitation,
		menuItems:     menuItems,
		showWelcome:   true,

		citationView:  views.NewResultModel(sess, prenoms.ModeCitation, clip),
		meaningView:   views.NewResultModel(sess, prenoms.ModeMeaning, clip),
		favoritesView: views.NewFavoritesModel(sess),
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	if m.dailyInterval <= 0 {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, m.dailyTick())
}

// dailyTick schedules the next quote of the day one interval from now.
func (m AppModel) dailyTick() tea.Cmd {
	return tea.Tick(m.dailyInterval, func(time.Time) tea.Msg {
		return dailyMsg{}
	})
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Overlays - any key closes them
		if m.showWelcome {
			m.showWelcome = false
			return m, nil
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "esc", "tab":
			m.sidebarActive = !m.sidebarActive
			return m, nil
		}

		// The result views own a text input, so letters and digits only
		// act as shortcuts while the sidebar has focus.
		if m.sidebarActive {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "1", "2", "3":
				return m.switchTo(m.menuItems[msg.String()[0]-'1'].View)
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
				return m, nil
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
				return m, nil
			case "enter", "l", "right":
				return m.switchTo(m.menuItems[m.selectedMenu].View)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 3

		m.citationView.SetSize(contentWidth, contentHeight)
		m.meaningView.SetSize(contentWidth, contentHeight)
		m.favoritesView.SetSize(contentWidth, contentHeight)

		return m, nil

	case views.NoticeMsg:
		m.notice = msg.Text
		m.noticeSeq++
		seq := m.noticeSeq
		return m, tea.Tick(noticeDuration, func(time.Time) tea.Msg {
			return clearNoticeMsg{seq: seq}
		})

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case views.RestoreMsg:
		r := m.session.Restore(msg.Item)
		if r.Mode == prenoms.ModeMeaning {
			m.meaningView.SetResult(r)
			return m.switchTo(ViewMeaning)
		}
		m.citationView.SetResult(r)
		return m.switchTo(ViewCitation)

	case dailyMsg:
		m.daily = m.session.Daily()
		return m, m.dailyTick()
	}

	// Delegate to active view; sidebar keys have already returned
	var cmd tea.Cmd
	switch m.currentView {
	case ViewCitation:
		m.citationView, cmd = m.citationView.Update(msg)
	case ViewMeaning:
		m.meaningView, cmd = m.meaningView.Update(msg)
	case ViewFavorites:
		m.favoritesView, cmd = m.favoritesView.Update(msg)
	}
	return m, cmd
}

func (m AppModel) switchTo(v ViewType) (AppModel, tea.Cmd) {
	m.currentView = v
	m.sidebarActive = false
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
	if v == ViewFavorites {
		m.favoritesView.Refresh()
	}
	return m, nil
}

// CurrentView returns the view on display.
func (m AppModel) CurrentView() ViewType {
	return m.currentView
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Chargement..."
	}

	if m.showWelcome {
		return m.renderWelcome()
	}
	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewCitation:
		content = m.citationView.View()
	case ViewMeaning:
		content = m.meaningView.View()
	case ViewFavorites:
		content = m.favoritesView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 3).
		Render(content)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatus())
}

func (m AppModel) renderStatus() string {
	if m.notice != "" {
		return NoticeStyle.Render(m.notice)
	}
	if m.daily != "" {
		return DailyStyle.Render("🌅 " + format.DailyTitle + " : " + m.daily)
	}
	return ""
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render(" ✨ Prénoms ✨ "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 5
	for i := 0; i < m.height-usedHeight-3; i++ {
		items = append(items, "")
	}

	items = append(items, SidebarHelpStyle.Render("tab Menu  ? Aide\nq Quitter"))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 3).
		Render(content)
}

func (m AppModel) renderWelcome() string {
	text := OverlayTitleStyle.Render("Citations & Significations") + "\n" +
		OverlayDescStyle.Render(format.Welcome) + "\n\n" +
		OverlayHintStyle.Render("Appuyez sur une touche pour commencer")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, OverlayBoxStyle.Render(text))
}

func (m AppModel) renderHelp() string {
	row := func(key, desc string) string {
		return OverlayKeyStyle.Render(key) + OverlayDescStyle.Render(desc) + "\n"
	}

	text := OverlayTitleStyle.Render("Aide") + "\n"

	text += OverlaySectionStyle.Render("Navigation") + "\n"
	text += row("tab/esc", "Basculer sur le menu")
	text += row("1-3", "Changer de vue (menu)")
	text += row("?", "Afficher cette aide (menu)")
	text += row("q", "Quitter (menu)")
	text += row("ctrl+c", "Quitter")

	text += OverlaySectionStyle.Render("Citations et significations") + "\n"
	text += row("enter", "Obtenir le résultat")
	text += row("ctrl+r", "Prénom aléatoire")
	text += row("ctrl+s", "Ajouter aux favoris")
	text += row("ctrl+y", "Copier pour partager")
	text += row("ctrl+n/p", "Changer de catégorie")
	text += row("pgup/pgdn", "Faire défiler la carte")

	text += OverlaySectionStyle.Render("Favoris") + "\n"
	text += row("j/k", "Naviguer")
	text += row("enter", "Charger le favori")
	text += row("D D", "Effacer tous les favoris")

	text += "\n" + OverlayHintStyle.Render("Appuyez sur une touche pour fermer")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, OverlayBoxStyle.Render(text))
}
