package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/lexicarte/internal/card"
)

// Options configures the CSV export.
type Options struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultOptions returns sensible defaults
func DefaultOptions() *Options {
	return &Options{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
	}
}

// WriteCSV writes the collection as a two-field Anki import file: the front
// carries the headword with its phonetic transcription, the back carries the
// translation, definition, example and nuance note.
func WriteCSV(cards card.Collection, options *Options) error {
	if options == nil {
		options = DefaultOptions()
	}

	file, err := os.Create(options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if options.IncludeHeaders {
		if err := writer.Write([]string{"Front", "Back"}); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, w := range cards {
		record := []string{formatFront(w), formatBack(w)}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	return nil
}

// formatFront renders the question side of a card.
func formatFront(w card.WordCard) string {
	if w.Phonetic == "" {
		return w.French
	}
	return fmt.Sprintf("%s %s", w.French, w.Phonetic)
}

// formatBack renders the answer side of a card.
func formatBack(w card.WordCard) string {
	var parts []string

	answer := w.Translation
	if w.Gender == card.GenderMasculine || w.Gender == card.GenderFeminine || w.Gender == card.GenderBoth {
		answer = fmt.Sprintf("%s (%s)", answer, w.Gender)
	}
	parts = append(parts, answer)

	if w.Definition != "" {
		parts = append(parts, w.Definition)
	}
	if w.ExampleSentence != "" {
		example := w.ExampleSentence
		if w.ExampleTranslation != "" {
			example = fmt.Sprintf("%s = %s", example, w.ExampleTranslation)
		}
		parts = append(parts, example)
	}
	if w.Nuance != "" {
		parts = append(parts, w.Nuance)
	}

	return strings.Join(parts, "<br>")
}
