package views

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/prenoms/internal/clipboard"
	"github.com/f3rmion/prenoms/internal/favorites"
	"github.com/f3rmion/prenoms/internal/format"
	"github.com/f3rmion/prenoms/internal/prenoms"
	"github.com/f3rmion/prenoms/internal/quotes"
	"github.com/f3rmion/prenoms/internal/session"
	"github.com/f3rmion/prenoms/internal/tui/banner"
)

const (
	bannerCols = 12
	bannerRows = 6
)

// ResultModel is the view where a name is typed and a card shown. The same
// model serves the citation and the meaning mode.
type ResultModel struct {
	session *session.Session
	mode    prenoms.Mode
	clip    clipboard.Writer

	input       textinput.Model
	card        viewport.Model
	result      *session.Result
	warning     string
	suggestions []string
	lastInput   string

	// citation mode only; index 0 is the all pool
	categories []string
	category   int

	width  int
	height int
}

// NewResultModel creates the view for mode. clip writes to the clipboard.
func NewResultModel(sess *session.Session, mode prenoms.Mode, clip clipboard.Writer) ResultModel {
	ti := textinput.New()
	ti.Placeholder = "Ex: Mohammed, Fatima, Rose..."
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 30
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	m := ResultModel{
		session: sess,
		mode:    mode,
		clip:    clip,
		input:   ti,
		card:    viewport.New(60, 12),
	}
	if mode == prenoms.ModeCitation {
		m.categories = append([]string{quotes.AllLabel}, sess.Quotes().Categories()...)
	}
	return m
}

// SetSize updates the view dimensions.
func (m *ResultModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.card.Width = max(width-6, 20)
	m.card.Height = max(height-bannerRows-10, 5)
}

// SetResult shows r, as when a favorite is restored.
func (m *ResultModel) SetResult(r *session.Result) {
	m.result = r
	m.warning = ""
	if r != nil {
		m.input.SetValue(r.Name)
		m.lastInput = r.Name
		m.setCard(r.Content)
	}
}

// Result returns the card on display, or nil.
func (m ResultModel) Result() *session.Result {
	return m.result
}

// Category returns the selected category label (citation mode).
func (m ResultModel) Category() string {
	if len(m.categories) == 0 {
		return ""
	}
	return m.categories[m.category]
}

// Update handles messages.
func (m ResultModel) Update(msg tea.Msg) (ResultModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			return m, m.submit()
		case "ctrl+r":
			m.input.SetValue(m.session.RandomName())
			m.input.CursorEnd()
			return m, m.submit()
		case "ctrl+s":
			return m, m.save()
		case "ctrl+y":
			return m, m.share()
		case "ctrl+n", "ctrl+right":
			if len(m.categories) > 0 {
				m.category = (m.category + 1) % len(m.categories)
			}
			return m, nil
		case "ctrl+p", "ctrl+left":
			if len(m.categories) > 0 {
				m.category = (m.category + len(m.categories) - 1) % len(m.categories)
			}
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.card, cmd = m.card.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.lastInput {
		m.lastInput = v
		m.suggestions = m.session.Suggest(v)
	}
	return m, cmd
}

func (m *ResultModel) submit() tea.Cmd {
	m.session.SetMode(m.mode)
	if m.mode == prenoms.ModeCitation {
		if err := m.session.SetCategory(m.Category()); err != nil {
			m.warning = err.Error()
			return nil
		}
	}

	r, err := m.session.Submit(m.input.Value())
	if errors.Is(err, session.ErrEmptyName) {
		m.warning = format.EmptyInput
		return nil
	}
	if err != nil {
		m.warning = err.Error()
		return nil
	}

	m.warning = ""
	m.suggestions = nil
	m.result = r
	m.setCard(r.Content)
	return nil
}

// setCard wraps content to the card width and scrolls back to the top.
func (m *ResultModel) setCard(content string) {
	m.card.SetContent(lipgloss.NewStyle().Width(m.card.Width).Render(content))
	m.card.GotoTop()
}

func (m *ResultModel) save() tea.Cmd {
	if m.result == nil || strings.TrimSpace(m.input.Value()) == "" {
		return notice(format.NoContent)
	}
	m.session.SetCurrent(m.result)
	err := m.session.SaveFavorite()
	switch {
	case errors.Is(err, favorites.ErrAlreadyExists):
		return notice(format.AlreadySaved)
	case err != nil:
		return notice(err.Error())
	}
	return notice(format.Added)
}

func (m *ResultModel) share() tea.Cmd {
	if m.result == nil {
		return notice(format.NoShare)
	}
	m.session.SetCurrent(m.result)
	text, err := m.session.ShareText()
	if err != nil {
		return notice(format.NoShare)
	}
	if err := m.clip(text); err != nil {
		return notice(err.Error())
	}
	return notice(format.Copied)
}

// View renders the view.
func (m ResultModel) View() string {
	var b strings.Builder

	title := "💬 Citations"
	hint := "🎯 Tapez un prénom pour découvrir une citation !"
	if m.mode == prenoms.ModeMeaning {
		title = "📖 Significations"
		hint = "📖 Tapez un prénom pour découvrir sa signification !"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("Entrez un prénom :"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case len(m.suggestions) > 0:
		b.WriteString(suggestionStyle.Render("💡 Suggestions: " + strings.Join(m.suggestions, ", ")))
	case m.input.Value() != "":
		b.WriteString(suggestionStyle.Render(m.freshHint()))
	}
	b.WriteString("\n")

	if len(m.categories) > 0 {
		b.WriteString(m.renderCategories())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.warning != "":
		b.WriteString(errorStyle.Render(m.warning))
	case m.result == nil:
		b.WriteString(helpStyle.Render(hint))
	default:
		b.WriteString(m.renderCard())
	}
	b.WriteString("\n\n")

	help := "enter: obtenir • ctrl+r: aléatoire • ctrl+s: favori • ctrl+y: partager"
	if len(m.categories) > 0 {
		help += " • ctrl+n/p: catégorie"
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m ResultModel) freshHint() string {
	if m.mode == prenoms.ModeMeaning {
		return "🔍 Nouvelle signification à chaque recherche !"
	}
	return "🔍 Nouvelle citation à chaque recherche !"
}

func (m ResultModel) renderCategories() string {
	tabs := make([]string, len(m.categories))
	for i, c := range m.categories {
		if i == m.category {
			tabs[i] = categoryActiveStyle.Render("📌 " + c)
		} else {
			tabs[i] = categoryStyle.Render(c)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ResultModel) renderCard() string {
	style := cardStyle
	if !m.result.Found() {
		style = missStyle
	}
	card := style.Render(m.card.View())

	art := banner.Monogram(m.result.Name, bannerCols, bannerRows)
	if art == "" || !m.result.Found() {
		return card
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, bannerStyle.Render(art), card)
}
