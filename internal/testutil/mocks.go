package testutil

import (
	"context"

	"codeberg.org/snonux/lexicarte/internal/card"
)

// StubGenerator is a scripted card generator for tests. It returns Card with
// the requested headword filled in, or Err if set, and counts calls.
type StubGenerator struct {
	Card  card.WordCard
	Err   error
	Calls int
}

func (g *StubGenerator) Generate(ctx context.Context, word string) (card.WordCard, error) {
	g.Calls++
	if g.Err != nil {
		return card.WordCard{}, g.Err
	}
	w := g.Card
	w.French = word
	return w, nil
}

func (g *StubGenerator) Name() string { return "stub" }
