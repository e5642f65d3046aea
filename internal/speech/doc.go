// Package speech implements the pronunciation client. A platform speech
// engine is modeled as a capability interface (voice listing plus speaking)
// so the French voice selection policy is testable with a fake voice list.
// The Speaker guarantees at most one concurrent utterance system-wide and
// that the playing state always returns to false.
package speech
