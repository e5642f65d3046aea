package generate

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"codeberg.org/snonux/lexicarte/internal/card"
)

func TestNewGenerator_Providers(t *testing.T) {
	tests := []struct {
		provider string
		wantName string
	}{
		{"", "openai"},
		{"openai", "openai"},
		{"gemini", "gemini"},
	}

	for _, tt := range tests {
		gen, err := NewGenerator(&Config{Provider: tt.provider, APIKey: "test-key"})
		if err != nil {
			t.Fatalf("NewGenerator(%q) failed: %v", tt.provider, err)
		}
		if gen.Name() != tt.wantName {
			t.Errorf("NewGenerator(%q).Name() = %q, want %q", tt.provider, gen.Name(), tt.wantName)
		}
	}
}

func TestNewGenerator_UnknownProvider(t *testing.T) {
	_, err := NewGenerator(&Config{Provider: "libre"})
	if err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestGenerate_NoAPIKey(t *testing.T) {
	for _, provider := range []string{"openai", "gemini"} {
		gen, err := NewGenerator(&Config{Provider: provider})
		if err != nil {
			t.Fatalf("NewGenerator failed: %v", err)
		}

		_, err = gen.Generate(context.Background(), "chat")
		if err == nil {
			t.Fatalf("%s: expected error for missing API key", provider)
		}
		if !errors.Is(err, ErrNoAPIKey) {
			t.Errorf("%s: expected ErrNoAPIKey, got: %v", provider, err)
		}
	}
}

func TestGenerate_NoAPIKeyDoesNotOpenBreaker(t *testing.T) {
	gen, err := NewGenerator(&Config{Provider: "openai"})
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	// Many consecutive missing-credential failures must still report the
	// credential problem, never a tripped breaker.
	for i := 0; i < 10; i++ {
		_, err := gen.Generate(context.Background(), "chat")
		if !errors.Is(err, ErrNoAPIKey) {
			t.Fatalf("Attempt %d: expected ErrNoAPIKey, got: %v", i, err)
		}
	}
}

func TestBuildUserPrompt(t *testing.T) {
	prompt := buildUserPrompt("fromage")

	if !strings.Contains(prompt, "'fromage'") {
		t.Error("Prompt does not mention the word")
	}
	for _, tex := range card.Textures {
		if !strings.Contains(prompt, string(tex)) {
			t.Errorf("Prompt missing texture option %q", tex)
		}
	}
	for _, g := range card.Genders {
		if !strings.Contains(prompt, string(g)) {
			t.Errorf("Prompt missing gender option %q", g)
		}
	}
}

func TestDecodeFields(t *testing.T) {
	data := []byte(`{
		"translation": "cheese",
		"definition": "a dairy product",
		"exampleSentence": "Je mange du fromage.",
		"exampleTranslation": "I eat cheese.",
		"phonetic": "/fʁɔ.maʒ/",
		"gender": "masculine",
		"nuance": "France takes cheese seriously.",
		"texture": "clay"
	}`)

	w, err := decodeFields(data, "fromage")
	if err != nil {
		t.Fatalf("decodeFields failed: %v", err)
	}

	if w.French != "fromage" {
		t.Errorf("French = %q, want 'fromage'", w.French)
	}
	if w.Translation != "cheese" {
		t.Errorf("Translation = %q, want 'cheese'", w.Translation)
	}
	if w.Gender != card.GenderMasculine {
		t.Errorf("Gender = %q, want masculine", w.Gender)
	}
	if w.Texture != card.TextureClay {
		t.Errorf("Texture = %q, want clay", w.Texture)
	}
	if w.ID == "" || w.CreatedAt == 0 {
		t.Error("Expected generated ID and timestamp")
	}
}

func TestDecodeFields_NormalizesEnums(t *testing.T) {
	data := []byte(`{
		"translation": "cheese",
		"definition": "a dairy product",
		"exampleSentence": "Je mange du fromage.",
		"exampleTranslation": "I eat cheese.",
		"phonetic": "",
		"gender": "neuter",
		"nuance": "",
		"texture": "granite"
	}`)

	w, err := decodeFields(data, "fromage")
	if err != nil {
		t.Fatalf("decodeFields failed: %v", err)
	}

	// Out-of-set values are silently defaulted, never rejected
	if w.Gender != card.GenderNone {
		t.Errorf("Gender = %q, want none fallback", w.Gender)
	}
	if w.Texture != card.DefaultTexture {
		t.Errorf("Texture = %q, want default fallback", w.Texture)
	}
}

func TestDecodeFields_Malformed(t *testing.T) {
	if _, err := decodeFields([]byte("not json at all"), "chat"); err == nil {
		t.Error("Expected error for malformed response")
	}
}

func TestDecodeFields_MissingRequired(t *testing.T) {
	data := []byte(`{"translation": "cat"}`)
	if _, err := decodeFields(data, "chat"); err == nil {
		t.Error("Expected error for incomplete response")
	}
}

func TestGenerate_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	gen, err := NewGenerator(&Config{Provider: "openai", APIKey: apiKey})
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	w, err := gen.Generate(context.Background(), "chat")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if w.Translation == "" {
		t.Error("Got empty translation")
	}
	t.Logf("Generated card for 'chat': %+v", w)
}
