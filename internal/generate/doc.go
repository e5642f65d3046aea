// Package generate implements the card generation client: given a French
// headword it calls a generative language model with a structured-output
// schema and returns the parsed card fields. OpenAI and Gemini backends are
// supported behind a common interface, wrapped in a circuit breaker.
package generate
