package card

import (
	"sort"
	"strings"
	"time"

	"codeberg.org/snonux/lexicarte/internal"
)

// Texture is a thematic visual tag attached to a card, chosen from a fixed
// small set and used only for presentation.
type Texture string

const (
	TexturePaper      Texture = "paper"
	TextureLinen      Texture = "linen"
	TextureWatercolor Texture = "watercolor"
	TextureMarble     Texture = "marble"
	TextureWood       Texture = "wood"
	TextureClay       Texture = "clay"
	TextureVelvet     Texture = "velvet"
)

// DefaultTexture is used when the generation endpoint returns an unknown or
// missing texture tag.
const DefaultTexture = TexturePaper

// Textures lists all valid texture tags in display order.
var Textures = []Texture{
	TexturePaper,
	TextureLinen,
	TextureWatercolor,
	TextureMarble,
	TextureWood,
	TextureClay,
	TextureVelvet,
}

// Gender labels the grammatical gender of a headword.
type Gender string

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderBoth      Gender = "both"
	GenderNone      Gender = "none"
)

// Genders lists all valid gender labels.
var Genders = []Gender{GenderMasculine, GenderFeminine, GenderBoth, GenderNone}

// NormalizeTexture validates a texture tag against the closed set and falls
// back to DefaultTexture for unknown or absent values. The generation model
// is instructed to pick from the set, but its output is never trusted verbatim.
func NormalizeTexture(s string) Texture {
	t := Texture(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Textures {
		if t == known {
			return t
		}
	}
	return DefaultTexture
}

// NormalizeGender validates a gender label, defaulting unknown values to none.
func NormalizeGender(s string) Gender {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Genders {
		if g == known {
			return g
		}
	}
	return GenderNone
}

// WordCard is the sole persisted entity: one vocabulary entry with its
// generated linguistic metadata. Cards are immutable after creation.
type WordCard struct {
	ID                 string  `json:"id"`
	French             string  `json:"french"`
	Translation        string  `json:"translation"`
	Definition         string  `json:"definition"`
	ExampleSentence    string  `json:"exampleSentence"`
	ExampleTranslation string  `json:"exampleTranslation"`
	Phonetic           string  `json:"phonetic,omitempty"`
	Gender             Gender  `json:"gender,omitempty"`
	Nuance             string  `json:"nuance,omitempty"`
	Texture            Texture `json:"texture,omitempty"`
	CreatedAt          int64   `json:"createdAt"`
}

// New creates a card for the given headword with a fresh time-based ID and
// creation timestamp. The caller fills in the generated fields.
func New(french string) WordCard {
	return WordCard{
		ID:        internal.GenerateCardID(french),
		French:    french,
		CreatedAt: time.Now().UnixMilli(),
	}
}

// Collection holds all cards in insertion order, newest first. It is the
// single source of truth; there are no secondary indexes.
type Collection []WordCard

// Add prepends a card so the collection stays newest-first.
func (c Collection) Add(w WordCard) Collection {
	out := make(Collection, 0, len(c)+1)
	out = append(out, w)
	return append(out, c...)
}

// Remove deletes the card with the given id. Removing an unknown id is a
// no-op (deletion is fire-and-forget).
func (c Collection) Remove(id string) Collection {
	out := make(Collection, 0, len(c))
	for _, w := range c {
		if w.ID != id {
			out = append(out, w)
		}
	}
	return out
}

// Find returns the card with the given id, if present.
func (c Collection) Find(id string) (WordCard, bool) {
	for _, w := range c {
		if w.ID == id {
			return w, true
		}
	}
	return WordCard{}, false
}

// Filter returns the cards matching the search query: a substring match over
// the headword (case-insensitive) and the translation (exact case, since
// translations may be in scripts without case). An empty query matches all.
func (c Collection) Filter(query string) Collection {
	query = strings.TrimSpace(query)
	if query == "" {
		return c
	}

	lowered := strings.ToLower(query)
	out := make(Collection, 0, len(c))
	for _, w := range c {
		if strings.Contains(strings.ToLower(w.French), lowered) ||
			strings.Contains(w.Translation, query) {
			out = append(out, w)
		}
	}
	return out
}

// ReviewOrder returns a copy of the collection sorted by creation time,
// oldest first. The underlying storage order is never mutated.
func (c Collection) ReviewOrder() Collection {
	out := make(Collection, len(c))
	copy(out, c)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt < out[j].CreatedAt
	})
	return out
}
