package testutil

import (
	"path/filepath"
	"testing"

	"codeberg.org/snonux/lexicarte/internal/card"
	"codeberg.org/snonux/lexicarte/internal/store"
)

// TempStore opens a card store backed by a throwaway database file and
// closes it when the test finishes.
func TempStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return st
}

// SampleCard returns a fully populated card for the given headword.
func SampleCard(french string) card.WordCard {
	w := card.New(french)
	w.Translation = french + " (en)"
	w.Definition = "a test definition for " + french
	w.ExampleSentence = "Voici " + french + "."
	w.ExampleTranslation = "Here is " + french + "."
	w.Phonetic = "/tɛst/"
	w.Gender = card.GenderNone
	w.Texture = card.DefaultTexture
	return w
}

// SampleCollection returns cards for the given headwords, newest first.
func SampleCollection(words ...string) card.Collection {
	var c card.Collection
	for _, word := range words {
		c = c.Add(SampleCard(word))
	}
	return c
}
