// Package anki writes the output .apkg package: an Anki SQLite collection
// holding one deck with two note models ("Mandarin Word", "Mandarin
// Sentence") plus all generated audio media.
package anki

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/hanki/internal/card"
)

const fieldSep = "\x1f"

// Config identifies the deck and models. The IDs are stable across runs so
// re-imports update instead of duplicating.
type Config struct {
	DeckID          int64
	WordModelID     int64
	SentenceModelID int64
	DeckName        string
}

// DefaultConfig returns the deck identity used when the config file does
// not override it.
func DefaultConfig() Config {
	return Config{
		DeckID:          1398130110001,
		WordModelID:     1398130110002,
		SentenceModelID: 1398130110003,
		DeckName:        "Generated Mandarin Flashcards",
	}
}

// Generator accumulates finished cards and writes the package.
type Generator struct {
	config     Config
	words      []card.Word
	sentences  []card.Sentence
	mediaFiles map[string]int // source path -> media number
}

// NewGenerator creates a generator for the configured deck.
func NewGenerator(config Config) *Generator {
	return &Generator{
		config:     config,
		mediaFiles: make(map[string]int),
	}
}

// AddWord adds a finished word card to the deck.
func (g *Generator) AddWord(w card.Word) {
	g.words = append(g.words, w)
}

// AddSentence adds a finished sentence card to the deck.
func (g *Generator) AddSentence(s card.Sentence) {
	g.sentences = append(g.sentences, s)
}

// NoteCount returns the number of accumulated notes.
func (g *Generator) NoteCount() int {
	return len(g.words) + len(g.sentences)
}

// WriteAPKG builds the .apkg file at outputPath.
func (g *Generator) WriteAPKG(outputPath string) error {
	tempDir, err := os.MkdirTemp("", "hanki_export_*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	if err := g.copyMediaFiles(tempDir); err != nil {
		return fmt.Errorf("failed to copy media files: %w", err)
	}

	if err := g.createMediaMapping(tempDir); err != nil {
		return fmt.Errorf("failed to create media mapping: %w", err)
	}

	dbPath := filepath.Join(tempDir, "collection.anki2")
	if err := g.createDatabase(dbPath); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	if err := g.createZipPackage(tempDir, outputPath); err != nil {
		return fmt.Errorf("failed to create zip package: %w", err)
	}

	return nil
}

func (g *Generator) createDatabase(dbPath string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	if err := g.insertCollection(db); err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}
	if err := g.insertNotesAndCards(db); err != nil {
		return fmt.Errorf("failed to insert notes and cards: %w", err)
	}
	return nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE col (
			id integer PRIMARY KEY,
			crt integer NOT NULL,
			mod integer NOT NULL,
			scm integer NOT NULL,
			ver integer NOT NULL,
			dty integer NOT NULL,
			usn integer NOT NULL,
			ls integer NOT NULL,
			conf text NOT NULL,
			models text NOT NULL,
			decks text NOT NULL,
			dconf text NOT NULL,
			tags text NOT NULL
		)`,
		`CREATE TABLE notes (
			id integer PRIMARY KEY,
			guid text NOT NULL,
			mid integer NOT NULL,
			mod integer NOT NULL,
			usn integer NOT NULL,
			tags text NOT NULL,
			flds text NOT NULL,
			sfld text NOT NULL,
			csum integer NOT NULL,
			flags integer NOT NULL,
			data text NOT NULL
		)`,
		`CREATE TABLE cards (
			id integer PRIMARY KEY,
			nid integer NOT NULL,
			did integer NOT NULL,
			ord integer NOT NULL,
			mod integer NOT NULL,
			usn integer NOT NULL,
			type integer NOT NULL,
			queue integer NOT NULL,
			due integer NOT NULL,
			ivl integer NOT NULL,
			factor integer NOT NULL,
			reps integer NOT NULL,
			lapses integer NOT NULL,
			left integer NOT NULL,
			odue integer NOT NULL,
			odid integer NOT NULL,
			flags integer NOT NULL,
			data text NOT NULL
		)`,
		`CREATE TABLE revlog (
			id integer PRIMARY KEY,
			cid integer NOT NULL,
			usn integer NOT NULL,
			ease integer NOT NULL,
			ivl integer NOT NULL,
			lastIvl integer NOT NULL,
			factor integer NOT NULL,
			time integer NOT NULL,
			type integer NOT NULL
		)`,
		`CREATE TABLE graves (
			usn integer NOT NULL,
			oid integer NOT NULL,
			type integer NOT NULL
		)`,
		`CREATE INDEX ix_notes_csum ON notes (csum)`,
		`CREATE INDEX ix_notes_usn ON notes (usn)`,
		`CREATE INDEX ix_cards_usn ON cards (usn)`,
		`CREATE INDEX ix_cards_nid ON cards (nid)`,
		`CREATE INDEX ix_cards_sched ON cards (did, queue, due)`,
		`CREATE INDEX ix_revlog_usn ON revlog (usn)`,
		`CREATE INDEX ix_revlog_cid ON revlog (cid)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

func (g *Generator) insertCollection(db *sql.DB) error {
	now := time.Now().Unix()

	decks := map[string]interface{}{
		"1": deckJSON(1, "Default", "", now),
		fmt.Sprintf("%d", g.config.DeckID): deckJSON(g.config.DeckID, g.config.DeckName,
			"A deck comprised of all the flashcards generated by hanki", now),
	}
	decksJSON, _ := json.Marshal(decks)

	models := map[string]interface{}{
		fmt.Sprintf("%d", g.config.WordModelID):     g.wordModel(),
		fmt.Sprintf("%d", g.config.SentenceModelID): g.sentenceModel(),
	}
	modelsJSON, _ := json.Marshal(models)

	conf := map[string]interface{}{
		"nextPos":       1,
		"estTimes":      true,
		"activeDecks":   []int64{1},
		"sortType":      "noteFld",
		"sortBackwards": false,
		"addToCur":      true,
		"curDeck":       1,
		"newSpread":     0,
		"dueCounts":     true,
		"collapseTime":  1200,
		"timeLim":       0,
		"schedVer":      1,
		"curModel":      fmt.Sprintf("%d", g.config.WordModelID),
		"dayLearnFirst": false,
	}
	confJSON, _ := json.Marshal(conf)

	dconf := map[string]interface{}{
		"1": map[string]interface{}{
			"id":   1,
			"name": "Default",
			"dyn":  0,
			"new": map[string]interface{}{
				"delays":        []int{1, 10},
				"ints":          []int{1, 4, 7},
				"initialFactor": 2500,
				"perDay":        20,
				"order":         1,
				"bury":          true,
				"separate":      true,
			},
			"lapse": map[string]interface{}{
				"delays":      []int{10},
				"mult":        0,
				"minInt":      1,
				"leechFails":  8,
				"leechAction": 0,
			},
			"rev": map[string]interface{}{
				"perDay":   100,
				"ease4":    1.3,
				"fuzz":     0.05,
				"maxIvl":   36500,
				"ivlFct":   1,
				"bury":     true,
				"minSpace": 1,
			},
			"timer":    0,
			"maxTaken": 60,
			"usn":      0,
			"mod":      now,
			"autoplay": true,
			"replayq":  true,
		},
	}
	dconfJSON, _ := json.Marshal(dconf)

	query := `INSERT INTO col VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := db.Exec(query,
		1,
		now,
		now*1000,
		now*1000,
		11, // schema version
		0,
		0,
		0,
		string(confJSON),
		string(modelsJSON),
		string(decksJSON),
		string(dconfJSON),
		"{}",
	)
	return err
}

func deckJSON(id int64, name, desc string, now int64) map[string]interface{} {
	return map[string]interface{}{
		"id":               id,
		"name":             name,
		"mod":              now,
		"desc":             desc,
		"collapsed":        false,
		"dyn":              0,
		"conf":             1,
		"usn":              0,
		"newToday":         []int{0, 0},
		"revToday":         []int{0, 0},
		"lrnToday":         []int{0, 0},
		"timeToday":        []int{0, 0},
		"browserCollapsed": false,
		"extendNew":        10,
		"extendRev":        50,
	}
}

func (g *Generator) insertNotesAndCards(db *sql.DB) error {
	now := time.Now()
	seq := 0

	insert := func(modelID int64, fields []string, sortField string) error {
		noteID := now.UnixMilli() + int64(seq*3)
		seq++

		guid := fmt.Sprintf("hanki_%d_%s", now.Unix(), sortField)
		noteQuery := `INSERT INTO notes VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := db.Exec(noteQuery,
			noteID,
			guid,
			modelID,
			now.Unix(),
			-1,
			"",
			strings.Join(fields, fieldSep),
			sortField,
			0,
			0,
			"",
		); err != nil {
			return fmt.Errorf("failed to insert note: %w", err)
		}

		// One card per template: Listening (ord 0) and Reading (ord 1)
		cardQuery := `INSERT INTO cards VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		for ord := 0; ord < 2; ord++ {
			if _, err := db.Exec(cardQuery,
				noteID+1+int64(ord),
				noteID,
				g.config.DeckID,
				ord,
				now.Unix(),
				-1,
				0,
				0,
				noteID+int64(ord), // due doubles as position for new cards
				0,
				0,
				0,
				0,
				0,
				0,
				0,
				0,
				"",
			); err != nil {
				return fmt.Errorf("failed to insert card: %w", err)
			}
		}
		return nil
	}

	for _, w := range g.words {
		fields := []string{w.Timestamp, w.Hanzi, w.Definition, g.mediaField(w.Audio, w.AudioPath), w.Reading, w.SimilarWords}
		if err := insert(g.config.WordModelID, fields, w.Hanzi); err != nil {
			return err
		}
	}
	for _, s := range g.sentences {
		fields := []string{s.Timestamp, s.Hanzi, s.Meaning, g.mediaField(s.Audio, s.AudioPath), s.Reading}
		if err := insert(g.config.SentenceModelID, fields, s.Hanzi); err != nil {
			return err
		}
	}
	return nil
}

// mediaField keeps the sound field only when its artifact actually made it
// into the media map.
func (g *Generator) mediaField(field, path string) string {
	if path == "" {
		return ""
	}
	if _, ok := g.mediaFiles[path]; !ok {
		return ""
	}
	return field
}

func (g *Generator) copyMediaFiles(tempDir string) error {
	add := func(path string) error {
		if path == "" || !fileExists(path) {
			return nil
		}
		if _, exists := g.mediaFiles[path]; exists {
			return nil
		}
		num := len(g.mediaFiles)
		target := filepath.Join(tempDir, fmt.Sprintf("%d", num))
		if err := copyFile(path, target); err != nil {
			return fmt.Errorf("failed to copy media file %s: %w", path, err)
		}
		g.mediaFiles[path] = num
		return nil
	}

	for _, w := range g.words {
		if err := add(w.AudioPath); err != nil {
			return err
		}
	}
	for _, s := range g.sentences {
		if err := add(s.AudioPath); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) createMediaMapping(tempDir string) error {
	mapping := make(map[string]string)
	for path, num := range g.mediaFiles {
		mapping[fmt.Sprintf("%d", num)] = filepath.Base(path)
	}

	data, err := json.Marshal(mapping)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(tempDir, "media"), data, 0644)
}

func (g *Generator) createZipPackage(tempDir, outputPath string) error {
	zipFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	archive := zip.NewWriter(zipFile)
	defer archive.Close()

	return filepath.Walk(tempDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(tempDir, path)
		if err != nil {
			return err
		}

		writer, err := archive.Create(relPath)
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
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
