package generate

import (
	"encoding/json"
	"fmt"
	"strings"

	"codeberg.org/snonux/lexicarte/internal/card"
)

// systemPrompt frames the model as a French teacher producing card material.
const systemPrompt = "You are a French language teacher creating vocabulary " +
	"flashcards for an English-speaking learner. Always respond with a single " +
	"JSON object matching the requested schema, nothing else."

// buildUserPrompt asks for exactly the eight card fields. The texture and
// gender values are soft contracts: the model is instructed to pick from the
// closed sets, and the response is normalized on receipt regardless.
func buildUserPrompt(word string) string {
	textures := make([]string, len(card.Textures))
	for i, t := range card.Textures {
		textures[i] = string(t)
	}
	genders := make([]string, len(card.Genders))
	for i, g := range card.Genders {
		genders[i] = string(g)
	}

	return fmt.Sprintf(`For the French word '%s' provide:
1. "translation": the English translation
2. "definition": a short English gloss
3. "exampleSentence": one natural French example sentence
4. "exampleTranslation": the English translation of that sentence
5. "phonetic": the IPA transcription
6. "gender": exactly one of: %s
7. "nuance": one sentence on cultural usage or register
8. "texture": exactly one thematic material tag that fits the word's mood, from: %s`,
		word,
		strings.Join(genders, ", "),
		strings.Join(textures, ", "))
}

// fields mirrors the structured-output schema returned by the model.
type fields struct {
	Translation        string `json:"translation"`
	Definition         string `json:"definition"`
	ExampleSentence    string `json:"exampleSentence"`
	ExampleTranslation string `json:"exampleTranslation"`
	Phonetic           string `json:"phonetic"`
	Gender             string `json:"gender"`
	Nuance             string `json:"nuance"`
	Texture            string `json:"texture"`
}

// decodeFields parses the model response into a new card for the word.
// Malformed JSON or missing required text fields surface as a generic
// failure; the enumerated fields are normalized, never rejected.
func decodeFields(data []byte, word string) (card.WordCard, error) {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return card.WordCard{}, fmt.Errorf("malformed generation response: %w", err)
	}

	if f.Translation == "" || f.Definition == "" || f.ExampleSentence == "" {
		return card.WordCard{}, fmt.Errorf("incomplete generation response for '%s'", word)
	}

	w := card.New(word)
	w.Translation = strings.TrimSpace(f.Translation)
	w.Definition = strings.TrimSpace(f.Definition)
	w.ExampleSentence = strings.TrimSpace(f.ExampleSentence)
	w.ExampleTranslation = strings.TrimSpace(f.ExampleTranslation)
	w.Phonetic = strings.TrimSpace(f.Phonetic)
	w.Gender = card.NormalizeGender(f.Gender)
	w.Nuance = strings.TrimSpace(f.Nuance)
	w.Texture = card.NormalizeTexture(f.Texture)
	return w, nil
}
