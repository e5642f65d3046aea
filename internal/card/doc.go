// Package card defines the WordCard data model and the in-memory collection
// operations used by the GUI: insertion, deletion, search filtering and the
// chronological review ordering.
package card
