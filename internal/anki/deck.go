// Package anki writes favorites as an Anki .apkg deck.
package anki

import (
	"archive/zip"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/f3rmion/prenoms/internal/format"
	"github.com/f3rmion/prenoms/internal/prenoms"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Field names of the note type.
const (
	FieldName   = "Prénom"
	FieldResult = "Résultat"
)

// Card is one note of the exported deck.
type Card struct {
	Front string
	Back  string
	Tags  []string
}

// Deck is a named list of cards.
type Deck struct {
	Name  string
	Cards []Card
	now   func() time.Time
}

// NewDeck creates an empty deck.
func NewDeck(name string) *Deck {
	return &Deck{Name: name, now: time.Now}
}

// AddFavorites appends one card per favorite: the name on the front and the
// card text on the back, tagged with the mode.
func (d *Deck) AddFavorites(items []prenoms.FavoriteItem) {
	for _, it := range items {
		d.Cards = append(d.Cards, Card{
			Front: html.EscapeString(it.Name),
			Back:  toHTML(format.StripMarkup(it.Content)),
			Tags:  []string{string(it.Mode)},
		})
	}
}

func toHTML(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}

// SaveAs writes the deck to outputPath as an .apkg file.
func (d *Deck) SaveAs(outputPath string) error {
	tempDir, err := os.MkdirTemp("", "anki-*")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	if err := d.writeCollection(filepath.Join(tempDir, "collection.anki2")); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(tempDir, "media"), []byte("{}"), 0644); err != nil {
		return fmt.Errorf("writing media index: %w", err)
	}

	return zipDir(tempDir, outputPath)
}

func (d *Deck) writeCollection(dbPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	now := d.now()
	base := now.UnixMilli()
	modelID := base
	deckID := base + 1

	models, decks, err := d.collectionJSON(modelID, deckID, now.Unix())
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO col VALUES (1, ?, ?, ?, 11, 0, 0, 0, ?, ?, ?, ?, '{}')`,
		now.Unix(), base, base, colConf, models, decks, deckConf)
	if err != nil {
		return fmt.Errorf("inserting collection: %w", err)
	}

	for i, c := range d.Cards {
		noteID := base + int64(i) + 2
		flds := c.Front + "\x1f" + c.Back
		tags := ""
		if len(c.Tags) > 0 {
			tags = " " + strings.Join(c.Tags, " ") + " "
		}

		_, err := tx.Exec(`INSERT INTO notes VALUES (?, ?, ?, ?, -1, ?, ?, ?, ?, 0, '')`,
			noteID, uuid.NewString(), modelID, now.Unix(), tags, flds, c.Front, checksum(c.Front))
		if err != nil {
			return fmt.Errorf("inserting note %d: %w", i, err)
		}

		_, err = tx.Exec(`INSERT INTO cards VALUES (?, ?, ?, 0, ?, -1, 0, 0, ?, 0, 0, 0, 0, 0, 0, 0, 0, '')`,
			noteID, noteID, deckID, now.Unix(), i+1)
		if err != nil {
			return fmt.Errorf("inserting card %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing collection: %w", err)
	}
	return nil
}

// checksum is the first 8 hex digits of the SHA-1 of the sort field.
func checksum(sfld string) int64 {
	sum := sha1.Sum([]byte(sfld))
	n, _ := strconv.ParseInt(hex.EncodeToString(sum[:])[:8], 16, 64)
	return n
}

type field struct {
	Name   string   `json:"name"`
	Ord    int      `json:"ord"`
	Sticky bool     `json:"sticky"`
	RTL    bool     `json:"rtl"`
	Font   string   `json:"font"`
	Size   int      `json:"size"`
	Media  []string `json:"media"`
}

type cardTemplate struct {
	Name  string `json:"name"`
	Ord   int    `json:"ord"`
	Qfmt  string `json:"qfmt"`
	Afmt  string `json:"afmt"`
	Did   *int64 `json:"did"`
	Bqfmt string `json:"bqfmt"`
	Bafmt string `json:"bafmt"`
}

func (d *Deck) collectionJSON(modelID, deckID, mod int64) (string, string, error) {
	model := map[string]any{
		"id":    modelID,
		"name":  "Prénoms",
		"type":  0,
		"mod":   mod,
		"usn":   -1,
		"sortf": 0,
		"did":   deckID,
		"flds": []field{
			{Name: FieldName, Ord: 0, Font: "Arial", Size: 20, Media: []string{}},
			{Name: FieldResult, Ord: 1, Font: "Arial", Size: 20, Media: []string{}},
		},
		"tmpls": []cardTemplate{{
			Name: "Carte 1",
			Qfmt: "{{" + FieldName + "}}",
			Afmt: "{{FrontSide}}<hr id=answer>{{" + FieldResult + "}}",
		}},
		"css":       ".card { font-family: arial; font-size: 20px; text-align: center; }",
		"latexPre":  "",
		"latexPost": "",
		"req":       []any{[]any{0, "any", []int{0}}},
		"tags":      []string{},
		"vers":      []any{},
	}
	models, err := json.Marshal(map[string]any{strconv.FormatInt(modelID, 10): model})
	if err != nil {
		return "", "", fmt.Errorf("marshaling models: %w", err)
	}

	deck := func(id int64, name string) map[string]any {
		return map[string]any{
			"id": id, "name": name, "desc": "", "mod": mod, "usn": -1,
			"collapsed": false, "dyn": 0, "conf": 1,
			"newToday": []int{0, 0}, "revToday": []int{0, 0},
			"lrnToday": []int{0, 0}, "timeToday": []int{0, 0},
			"extendNew": 10, "extendRev": 50,
		}
	}
	decks, err := json.Marshal(map[string]any{
		"1":                           deck(1, "Default"),
		strconv.FormatInt(deckID, 10): deck(deckID, d.Name),
	})
	if err != nil {
		return "", "", fmt.Errorf("marshaling decks: %w", err)
	}

	return string(models), string(decks), nil
}

const colConf = `{"nextPos":1,"estTimes":true,"activeDecks":[1],"sortType":"noteFld","timeLim":0,"sortBackwards":false,"addToCur":true,"curDeck":1,"newSpread":0,"dueCounts":true,"curModel":null,"collapseTime":1200}`

const deckConf = `{"1":{"id":1,"name":"Default","mod":0,"usn":0,"maxTaken":60,"autoplay":true,"timer":0,"replayq":true,"dyn":false,` +
	`"new":{"delays":[1,10],"ints":[1,4,7],"initialFactor":2500,"order":1,"perDay":20},` +
	`"rev":{"perDay":200,"ease4":1.3,"fuzz":0.05,"maxIvl":36500,"hardFactor":1.2},` +
	`"lapse":{"delays":[10],"mult":0,"minInt":1,"leechFails":8,"leechAction":0}}}`

// zipDir writes every file of dir into a zip archive at outputPath.
func zipDir(dir, outputPath string) error {
	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()

	zipWriter := zip.NewWriter(outFile)

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		writer, err := zipWriter.Create(filepath.ToSlash(relPath))
		if err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(writer, file)
		return err
	})
	if err != nil {
		zipWriter.Close()
		return fmt.Errorf("creating zip: %w", err)
	}

	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("finishing zip: %w", err)
	}
	return nil
}
