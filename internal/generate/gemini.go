package generate

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"codeberg.org/snonux/lexicarte/internal/card"
)

// GeminiGenerator implements Generator using the Gemini API with a JSON
// response schema.
type GeminiGenerator struct {
	apiKey string
	model  string
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(apiKey, model string) *GeminiGenerator {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiGenerator{apiKey: apiKey, model: model}
}

// Generate requests the card fields for a word. A single attempt, no retry.
func (g *GeminiGenerator) Generate(ctx context.Context, word string) (card.WordCard, error) {
	if g.apiKey == "" {
		return card.WordCard{}, ErrNoAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return card.WordCard{}, fmt.Errorf("Gemini client error: %w", err)
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.3),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    geminiCardSchema(),
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(buildUserPrompt(word)), config)
	if err != nil {
		return card.WordCard{}, fmt.Errorf("Gemini API error: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return card.WordCard{}, fmt.Errorf("no generation returned for '%s'", word)
	}

	return decodeFields([]byte(text), word)
}

// Name returns the provider name
func (g *GeminiGenerator) Name() string {
	return "gemini"
}

func geminiCardSchema() *genai.Schema {
	text := &genai.Schema{Type: genai.TypeString}

	textures := make([]string, len(card.Textures))
	for i, t := range card.Textures {
		textures[i] = string(t)
	}
	genders := make([]string, len(card.Genders))
	for i, gn := range card.Genders {
		genders[i] = string(gn)
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"translation":        text,
			"definition":         text,
			"exampleSentence":    text,
			"exampleTranslation": text,
			"phonetic":           text,
			"gender":             {Type: genai.TypeString, Enum: genders},
			"nuance":             text,
			"texture":            {Type: genai.TypeString, Enum: textures},
		},
		Required: []string{
			"translation", "definition", "exampleSentence",
			"exampleTranslation", "phonetic", "gender", "nuance", "texture",
		},
	}
}
