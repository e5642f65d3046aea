package gui

import (
	"context"
	"errors"
	"testing"

	"codeberg.org/snonux/lexicarte/internal/card"
	"codeberg.org/snonux/lexicarte/internal/generate"
	"codeberg.org/snonux/lexicarte/internal/store"
	"codeberg.org/snonux/lexicarte/internal/testutil"
)

func newTestState(t *testing.T) (*State, *store.Store) {
	t.Helper()

	st := testutil.TempStore(t)

	state, err := NewState(st)
	if err != nil {
		t.Fatalf("Failed to create state: %v", err)
	}
	return state, st
}

func TestState_AddPersists(t *testing.T) {
	state, st := newTestState(t)

	if err := state.Add(card.WordCard{ID: "a", French: "un"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := state.Add(card.WordCard{ID: "b", French: "deux"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Newest first in memory
	visible := state.Visible()
	if visible[0].ID != "b" {
		t.Errorf("Expected newest card first, got %s", visible[0].ID)
	}

	// And persisted
	loaded, err := st.LoadCards()
	if err != nil {
		t.Fatalf("LoadCards failed: %v", err)
	}
	if len(loaded) != 2 || loaded[0].ID != "b" {
		t.Errorf("Persisted collection mismatch: %+v", loaded)
	}
}

func TestState_DeleteClearsSelection(t *testing.T) {
	state, st := newTestState(t)

	state.Add(card.WordCard{ID: "a", French: "un"})
	state.Add(card.WordCard{ID: "b", French: "deux"})
	state.Select("a")

	if err := state.Delete("a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// Selection must be cleared: the view returns to the browse screen
	if _, selected := state.Selected(); selected {
		t.Error("Selection still points at the deleted card")
	}

	// Removed from the persisted collection
	loaded, err := st.LoadCards()
	if err != nil {
		t.Fatalf("LoadCards failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "b" {
		t.Errorf("Deleted card still persisted: %+v", loaded)
	}
}

func TestState_DeleteOtherKeepsSelection(t *testing.T) {
	state, _ := newTestState(t)

	state.Add(card.WordCard{ID: "a"})
	state.Add(card.WordCard{ID: "b"})
	state.Select("a")

	state.Delete("b")

	w, selected := state.Selected()
	if !selected || w.ID != "a" {
		t.Errorf("Expected selection to survive unrelated delete, got %+v (%v)", w, selected)
	}
}

func TestState_GenerateAndAdd(t *testing.T) {
	state, _ := newTestState(t)

	gen := &testutil.StubGenerator{Card: card.WordCard{ID: "x1", Translation: "cat", CreatedAt: 1}}

	w, err := state.GenerateAndAdd(context.Background(), gen, "chat")
	if err != nil {
		t.Fatalf("GenerateAndAdd failed: %v", err)
	}
	if w.French != "chat" {
		t.Errorf("Expected headword 'chat', got %q", w.French)
	}
	if state.Count() != 1 {
		t.Errorf("Expected 1 card, got %d", state.Count())
	}
}

func TestState_GenerateAndAdd_MissingCredential(t *testing.T) {
	state, st := newTestState(t)

	gen := &testutil.StubGenerator{Err: generate.ErrNoAPIKey}

	_, err := state.GenerateAndAdd(context.Background(), gen, "chat")
	if !errors.Is(err, generate.ErrNoAPIKey) {
		t.Fatalf("Expected ErrNoAPIKey, got: %v", err)
	}

	// The failure class is distinguishable and nothing was added
	if state.Count() != 0 {
		t.Errorf("Failed generation added a card: %d", state.Count())
	}
	loaded, _ := st.LoadCards()
	if len(loaded) != 0 {
		t.Errorf("Failed generation persisted a card: %+v", loaded)
	}
}

func TestState_VisibleSearch(t *testing.T) {
	state, _ := newTestState(t)

	state.Add(card.WordCard{ID: "1", French: "chat", Translation: "猫", CreatedAt: 1})
	state.Add(card.WordCard{ID: "2", French: "chien", Translation: "狗", CreatedAt: 2})

	state.SetSearch("chat")
	visible := state.Visible()
	if len(visible) != 1 || visible[0].ID != "1" {
		t.Errorf("Search 'chat' = %+v, want only card 1", visible)
	}

	state.SetSearch("狗")
	visible = state.Visible()
	if len(visible) != 1 || visible[0].ID != "2" {
		t.Errorf("Search '狗' = %+v, want only card 2", visible)
	}
}

func TestState_ReviewModeOrdering(t *testing.T) {
	state, st := newTestState(t)

	// Insertion order as listed: timestamps 300, 100, 200.
	// Add prepends, so push them in reverse to get that stored order.
	state.Add(card.WordCard{ID: "w2", CreatedAt: 200})
	state.Add(card.WordCard{ID: "w1", CreatedAt: 100})
	state.Add(card.WordCard{ID: "w3", CreatedAt: 300})

	state.SetMode(ModeReview)
	visible := state.Visible()

	want := []string{"w1", "w2", "w3"}
	for i, id := range want {
		if visible[i].ID != id {
			t.Errorf("Review order [%d] = %s, want %s", i, visible[i].ID, id)
		}
	}

	// Stored order unchanged: w1 is not first in storage
	loaded, _ := st.LoadCards()
	if loaded[0].ID != "w3" {
		t.Errorf("Review re-sort mutated stored order: %+v", loaded)
	}

	state.SetMode(ModeBrowse)
	visible = state.Visible()
	if visible[0].ID != "w3" {
		t.Errorf("Browse order mutated by review view: %+v", visible)
	}
}

func TestState_ToggleEdit(t *testing.T) {
	state, _ := newTestState(t)

	if state.EditMode() {
		t.Error("Edit mode should start off")
	}
	if !state.ToggleEdit() || !state.EditMode() {
		t.Error("Expected edit mode on after toggle")
	}
	if state.ToggleEdit() || state.EditMode() {
		t.Error("Expected edit mode off after second toggle")
	}
}
