// Package store implements the local persistence adapter: a single SQLite
// database holding a small key-value table. The whole card collection lives
// as one JSON blob under a fixed, versioned key; the generation credential
// lives under a second key. Every write is a full-collection overwrite.
package store
