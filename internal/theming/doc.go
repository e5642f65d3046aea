// Package theming provides pure presentation helpers: a deterministic color
// theme derived from a card ID, procedural background patterns for the
// texture tags, and a step function mapping text length to a font size.
// Nothing here holds state or can fail.
package theming
