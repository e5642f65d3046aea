package gui

import (
	"context"
	"sync"

	"codeberg.org/snonux/lexicarte/internal/card"
	"codeberg.org/snonux/lexicarte/internal/generate"
	"codeberg.org/snonux/lexicarte/internal/store"
)

// Mode is the active screen: the browse grid or the chronological review list.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeReview
)

// State is the application context holding the card collection and its
// persistence adapter. Views read from and mutate State instead of ambient
// globals; every mutation is immediately persisted as a full-collection write.
type State struct {
	store *store.Store

	mu         sync.Mutex
	cards      card.Collection
	mode       Mode
	selectedID string
	editMode   bool
	search     string
}

// NewState loads the persisted collection into a fresh State.
func NewState(st *store.Store) (*State, error) {
	cards, err := st.LoadCards()
	if err != nil {
		return nil, err
	}
	return &State{store: st, cards: cards}, nil
}

// GenerateAndAdd generates a card for the word and, only on success, adds it
// to the collection and persists. A failed generation never mutates anything.
func (s *State) GenerateAndAdd(ctx context.Context, gen generate.Generator, word string) (card.WordCard, error) {
	w, err := gen.Generate(ctx, word)
	if err != nil {
		return card.WordCard{}, err
	}
	if err := s.Add(w); err != nil {
		return card.WordCard{}, err
	}
	return w, nil
}

// Add prepends a card (newest first) and persists the collection.
func (s *State) Add(w card.WordCard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards = s.cards.Add(w)
	return s.store.SaveCards(s.cards)
}

// Delete removes a card and persists. If the deleted card is the currently
// selected one, the selection is cleared so navigation cannot point at a
// removed entity. Deletion is fire-and-forget for unknown ids.
func (s *State) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards = s.cards.Remove(id)
	if s.selectedID == id {
		s.selectedID = ""
	}
	return s.store.SaveCards(s.cards)
}

// Visible returns the cards for the active screen: the search-filtered
// collection in insertion order for browse, re-sorted oldest-first for
// review. The stored order is never mutated.
func (s *State) Visible() card.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	visible := s.cards.Filter(s.search)
	if s.mode == ModeReview {
		return visible.ReviewOrder()
	}
	return visible
}

// Select marks a card as the one shown in the detail view.
func (s *State) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = id
}

// ClearSelection returns navigation to the browse screen.
func (s *State) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = ""
}

// Selected returns the currently selected card, if any.
func (s *State) Selected() (card.WordCard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedID == "" {
		return card.WordCard{}, false
	}
	return s.cards.Find(s.selectedID)
}

// SetMode switches between browse and review.
func (s *State) SetMode(m Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

// Mode returns the active screen mode.
func (s *State) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// ToggleEdit flips the per-card delete affordance in the grid.
func (s *State) ToggleEdit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editMode = !s.editMode
	return s.editMode
}

// EditMode reports whether the delete affordance is shown.
func (s *State) EditMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editMode
}

// SetSearch updates the client-side filter text.
func (s *State) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = query
}

// Count returns the total number of cards, ignoring the filter.
func (s *State) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cards)
}

// All returns the unfiltered collection in storage order.
func (s *State) All() card.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(card.Collection, len(s.cards))
	copy(out, s.cards)
	return out
}
