package generate

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"codeberg.org/snonux/lexicarte/internal/card"
)

// OpenAIGenerator implements Generator using OpenAI chat completions with a
// strict JSON schema response format.
type OpenAIGenerator struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIGenerator creates an OpenAI-backed generator.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerator{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// Generate requests the card fields for a word. A single attempt, no retry.
func (g *OpenAIGenerator) Generate(ctx context.Context, word string) (card.WordCard, error) {
	if g.apiKey == "" {
		return card.WordCard{}, ErrNoAPIKey
	}

	schema := cardSchema()

	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildUserPrompt(word),
			},
		},
		MaxTokens:   500,
		Temperature: 0.3,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "word_card",
				Schema: schema,
				Strict: true,
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return card.WordCard{}, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return card.WordCard{}, fmt.Errorf("no generation returned for '%s'", word)
	}

	return decodeFields([]byte(resp.Choices[0].Message.Content), word)
}

// Name returns the provider name
func (g *OpenAIGenerator) Name() string {
	return "openai"
}

// cardSchema builds the structured-output schema requesting exactly the
// eight named fields.
func cardSchema() *jsonschema.Definition {
	text := jsonschema.Definition{Type: jsonschema.String}

	textures := make([]string, len(card.Textures))
	for i, t := range card.Textures {
		textures[i] = string(t)
	}
	genders := make([]string, len(card.Genders))
	for i, gn := range card.Genders {
		genders[i] = string(gn)
	}

	return &jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"translation":        text,
			"definition":         text,
			"exampleSentence":    text,
			"exampleTranslation": text,
			"phonetic":           text,
			"gender":             {Type: jsonschema.String, Enum: genders},
			"nuance":             text,
			"texture":            {Type: jsonschema.String, Enum: textures},
		},
		Required: []string{
			"translation", "definition", "exampleSentence",
			"exampleTranslation", "phonetic", "gender", "nuance", "texture",
		},
		AdditionalProperties: false,
	}
}
