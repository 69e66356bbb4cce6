package views

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/prenoms/internal/prenoms"
)

// NoticeMsg asks the app to show a short status message.
type NoticeMsg struct {
	Text string
}

// RestoreMsg is sent when a favorite is chosen in the favorites view.
type RestoreMsg struct {
	Item prenoms.FavoriteItem
}

func notice(text string) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Text: text}
	}
}
