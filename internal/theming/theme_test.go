package theming

import (
	"testing"

	"codeberg.org/snonux/lexicarte/internal/card"
)

func TestThemeFor_Stable(t *testing.T) {
	ids := []string{"1700000000000_ab12cd34", "1700000000001_ff00ff00", "x", ""}

	for _, id := range ids {
		first := ThemeFor(id)
		for i := 0; i < 10; i++ {
			if got := ThemeFor(id); got != first {
				t.Errorf("ThemeFor(%q) not stable: %v != %v", id, got, first)
			}
		}
	}
}

func TestThemeFor_WithinPalette(t *testing.T) {
	// Character-code sum modulo palette size: consecutive IDs should cover
	// several palette entries without ever escaping it.
	seen := make(map[string]bool)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		seen[ThemeFor(id).Name] = true
	}
	if len(seen) < 2 {
		t.Error("Expected consecutive IDs to map to different themes")
	}
	if len(seen) > PaletteSize() {
		t.Errorf("More distinct themes (%d) than palette entries (%d)", len(seen), PaletteSize())
	}
}

func TestFontSizeFor_Bands(t *testing.T) {
	tests := []struct {
		text string
		want float32
	}{
		{"", 32},
		{"chat", 32},      // length 4, largest band
		{"été", 32},       // rune count, not byte count
		{"chien", 26},     // length 5
		{"fromage", 26},   // length 8
		{"bibliothè", 21}, // length 9
		{"électricité", 21},
		{"anticonstitutionnellement", 16},
	}

	for _, tt := range tests {
		if got := FontSizeFor(tt.text); got != tt.want {
			t.Errorf("FontSizeFor(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestFontSizeFor_MonotonicNonIncreasing(t *testing.T) {
	prev := FontSizeFor("")
	text := ""
	for i := 0; i < 20; i++ {
		text += "a"
		size := FontSizeFor(text)
		if size > prev {
			t.Fatalf("FontSizeFor increased at length %d: %v > %v", i+1, size, prev)
		}
		prev = size
	}
}

func TestPatternFor_KnownTextures(t *testing.T) {
	for _, tex := range card.Textures {
		if PatternFor(tex) == nil {
			t.Errorf("No pattern for texture %q", tex)
		}
	}
}

func TestPatternFor_UnknownFallsBack(t *testing.T) {
	theme := ThemeFor("some-card")

	def := PatternFor(card.DefaultTexture)
	unknown := PatternFor(card.Texture("granite"))
	empty := PatternFor(card.Texture(""))

	// Same pixel function behavior as the default
	for _, xy := range [][2]int{{0, 0}, {3, 7}, {15, 4}, {100, 200}} {
		want := def(xy[0], xy[1], theme.Background, theme.Accent)
		if got := unknown(xy[0], xy[1], theme.Background, theme.Accent); got != want {
			t.Errorf("Unknown texture pattern differs from default at %v", xy)
		}
		if got := empty(xy[0], xy[1], theme.Background, theme.Accent); got != want {
			t.Errorf("Empty texture pattern differs from default at %v", xy)
		}
	}
}

func TestPattern_Deterministic(t *testing.T) {
	theme := ThemeFor("card")
	p := PatternFor(card.TextureMarble)

	first := p(10, 20, theme.Background, theme.Accent)
	for i := 0; i < 5; i++ {
		if got := p(10, 20, theme.Background, theme.Accent); got != first {
			t.Error("Pattern not deterministic for fixed coordinates")
		}
	}
}
