// Package format renders results as the text cards shown to the user and
// stored in favorites.
package format

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/f3rmion/prenoms/internal/prenoms"
	"github.com/mattn/go-runewidth"
)

// Fixed user-facing messages.
const (
	EmptyInput   = "⚠️ Veuillez entrer un prénom !"
	DailyTitle   = "Citation du jour"
	NothingSaved = "Aucun favori sauvegardé pour le moment !"
	Added        = "✅ Ajouté !"
	AlreadySaved = "📌 Déjà en favoris"
	NoContent    = "Aucun contenu à sauvegarder !"
	NoShare      = "Aucun contenu à partager !"
	Copied       = "📋 Contenu copié ! Vous pouvez le partager."
	Cleared      = "🗑️ Favoris effacés"
	Welcome      = "🌟 Bienvenue dans Citations & Significations ! 🌟\n\n" +
		"✨ Découvrez des citations inspirantes\n" +
		"📖 Explorez les significations de prénoms\n" +
		"⭐ Sauvegardez vos favoris\n\n" +
		"Commencez en tapant un prénom !"
)

// PreviewWidth is the number of cells kept in a favorite preview.
const PreviewWidth = 50

const quoteTemplate = `✨ {{.Name}} ✨

💬 {{.Quote}}

🎯 Catégorie : {{.Category}}`

const meaningTemplate = `✨ {{.Name}} ✨

📖 Signification : {{.Record.Meaning}}
🌍 Origine : {{.Record.Origin}}
👤 Genre : {{.Record.Gender}}

💭 Description :
{{.Record.Description}}`

const notFoundTemplate = `❓ Désolé, la signification de '{{.Name}}' n'est pas encore dans notre base de données.
{{- if .Suggestions}}

💡 Essayez : {{join .Suggestions ", "}}
{{- end}}`

// QuoteData feeds the quote card.
type QuoteData struct {
	Name     string
	Quote    string
	Category string
}

// MeaningData feeds the meaning card.
type MeaningData struct {
	Name   string
	Record prenoms.NameRecord
}

// NotFoundData feeds the card shown when a name is unknown.
type NotFoundData struct {
	Name        string
	Suggestions []string
}

// Formatter renders result cards from templates.
type Formatter struct {
	quote    *template.Template
	meaning  *template.Template
	notFound *template.Template
}

var funcs = template.FuncMap{"join": strings.Join}

// NewFormatter creates a formatter with the default card templates.
func NewFormatter() *Formatter {
	return &Formatter{
		quote:    template.Must(template.New("quote").Funcs(funcs).Parse(quoteTemplate)),
		meaning:  template.Must(template.New("meaning").Funcs(funcs).Parse(meaningTemplate)),
		notFound: template.Must(template.New("notfound").Funcs(funcs).Parse(notFoundTemplate)),
	}
}

// Quote renders a quote card.
func (f *Formatter) Quote(data QuoteData) (string, error) {
	return execute(f.quote, data)
}

// Meaning renders a meaning card.
func (f *Formatter) Meaning(data MeaningData) (string, error) {
	return execute(f.meaning, data)
}

// NotFound renders the card for an unknown name.
func (f *Formatter) NotFound(data NotFoundData) (string, error) {
	return execute(f.notFound, data)
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing %s template: %w", t.Name(), err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// markupTag matches inline [tag] markup found in older favorites.
var markupTag = regexp.MustCompile(`\[.*?\]`)

// StripMarkup removes [tag] markup from s.
func StripMarkup(s string) string {
	return markupTag.ReplaceAllString(s, "")
}

// Preview returns the first line of content without markup, cut to width
// cells. "..." is appended whenever the whole stripped content is wider than
// width, even if the first line fits.
func Preview(content string, width int) string {
	clean := StripMarkup(content)
	line, _, _ := strings.Cut(clean, "\n")
	line = strings.TrimSpace(line)
	if runewidth.StringWidth(clean) <= width {
		return line
	}
	return runewidth.Truncate(line, width, "") + "..."
}
