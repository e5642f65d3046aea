// Package gui implements the Fyne user interface: the card browser grid,
// the chronological review list, the add-word and settings sheets and the
// card detail view. All collection state flows through an explicitly
// constructed State rather than ambient globals.
package gui
