// Package export writes the card collection as an Anki-importable CSV file.
package export
