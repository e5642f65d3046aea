package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/lexicarte/internal/card"
)

func TestWriteCSV(t *testing.T) {
	cards := card.Collection{
		{
			ID:                 "1",
			French:             "chat",
			Translation:        "cat",
			Definition:         "small domestic feline",
			ExampleSentence:    "Le chat dort.",
			ExampleTranslation: "The cat sleeps.",
			Phonetic:           "/ʃa/",
			Gender:             card.GenderMasculine,
			Nuance:             "Mon chat is a term of endearment.",
		},
		{
			ID:          "2",
			French:      "vite",
			Translation: "quickly",
			Gender:      card.GenderNone,
		},
	}

	path := filepath.Join(t.TempDir(), "export.csv")
	err := WriteCSV(cards, &Options{OutputPath: path, IncludeHeaders: true})
	if err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open CSV: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d", len(records))
	}

	if records[0][0] != "Front" || records[0][1] != "Back" {
		t.Errorf("Unexpected headers: %v", records[0])
	}

	front := records[1][0]
	if !strings.Contains(front, "chat") || !strings.Contains(front, "/ʃa/") {
		t.Errorf("Front missing headword or phonetic: %q", front)
	}

	back := records[1][1]
	for _, want := range []string{"cat", "masculine", "small domestic feline", "Le chat dort.", "endearment"} {
		if !strings.Contains(back, want) {
			t.Errorf("Back missing %q: %q", want, back)
		}
	}

	// Gender none is not shown
	if strings.Contains(records[2][1], "none") {
		t.Errorf("Gender 'none' should not be rendered: %q", records[2][1])
	}
}

func TestWriteCSV_NoHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	cards := card.Collection{{ID: "1", French: "pomme", Translation: "apple"}}

	if err := WriteCSV(cards, &Options{OutputPath: path}); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}
	if strings.Contains(string(data), "Front") {
		t.Error("Headers written despite IncludeHeaders=false")
	}
}

func TestWriteCSV_InvalidPath(t *testing.T) {
	err := WriteCSV(card.Collection{}, &Options{OutputPath: "/nonexistent/dir/out.csv"})
	if err == nil {
		t.Error("Expected error for invalid output path")
	}
}
