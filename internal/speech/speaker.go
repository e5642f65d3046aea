package speech

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// qualityMarkers flag voice names that indicate a higher-quality synthesis
// engine (mbrola variants for espeak-ng, HD/neural tiers elsewhere).
var qualityMarkers = []string{"mb-", "hd", "neural", "premium"}

// SelectVoice applies the voice selection policy: prefer a voice for the
// locale whose name marks a higher-quality engine, else any voice tagged with
// the locale's language, else the engine default (zero Voice, found=false).
func SelectVoice(voices []Voice, localeHint string) (Voice, bool) {
	lang := strings.ToLower(localeHint)
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}

	matches := func(v Voice) bool {
		vl := strings.ToLower(v.Language)
		return vl == lang || strings.HasPrefix(vl, lang+"-") || strings.HasPrefix(vl, lang+"_")
	}

	for _, v := range voices {
		if !matches(v) {
			continue
		}
		name := strings.ToLower(v.Name)
		for _, marker := range qualityMarkers {
			if strings.Contains(name, marker) {
				return v, true
			}
		}
	}

	for _, v := range voices {
		if matches(v) {
			return v, true
		}
	}

	return Voice{}, false
}

// Speaker drives an Engine with the application's utterance semantics:
// speaking cancels any in-flight utterance, a not-yet-loaded voice list
// defers the utterance until the list is available, and the playing state
// reported through the callback always returns to false.
type Speaker struct {
	engine Engine
	locale string

	// onPlaying is invoked with true when an utterance starts and false when
	// it ends, errors out, or is superseded.
	onPlaying func(bool)

	mu      sync.Mutex
	cancel  context.CancelFunc
	gen     int // utterance generation counter
	playing bool

	// pollInterval controls how often a not-ready voice list is re-checked.
	pollInterval time.Duration
}

// NewSpeaker creates a speaker for the engine and locale.
func NewSpeaker(engine Engine, locale string, onPlaying func(bool)) *Speaker {
	return &Speaker{
		engine:       engine,
		locale:       locale,
		onPlaying:    onPlaying,
		pollInterval: 100 * time.Millisecond,
	}
}

// Speak pronounces text, cancelling any currently-playing utterance first.
// It returns immediately; completion is reported via the playing callback.
func (s *Speaker) Speak(text string) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	s.setPlaying(gen, true)

	go func() {
		defer s.setPlaying(gen, false)

		voices, err := s.waitForVoices(ctx)
		if err != nil {
			if ctx.Err() == nil {
				fmt.Printf("Warning: voice list unavailable: %v\n", err)
			}
			return
		}

		voice, _ := SelectVoice(voices, s.locale)

		if err := s.engine.Speak(ctx, text, voice); err != nil && ctx.Err() == nil {
			// Speech errors never block the UI; log and move on
			fmt.Printf("Warning: speech failed: %v\n", err)
		}
	}()
}

// Stop cancels the current utterance, if any.
func (s *Speaker) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
}

// IsPlaying reports whether an utterance is currently in flight.
func (s *Speaker) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// waitForVoices returns the engine's voices, polling while the platform is
// still loading them. The deferred utterance proceeds exactly once.
func (s *Speaker) waitForVoices(ctx context.Context) ([]Voice, error) {
	for {
		voices, err := s.engine.Voices()
		if err == nil {
			return voices, nil
		}
		if err != ErrVoicesNotReady {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.pollInterval):
		}
	}
}

// setPlaying updates the playing state, ignoring stale generations so a
// superseded utterance cannot clear its successor's state.
func (s *Speaker) setPlaying(gen int, playing bool) {
	s.mu.Lock()
	current := s.gen == gen
	if current {
		s.playing = playing
	}
	cb := s.onPlaying
	s.mu.Unlock()

	if current && cb != nil {
		cb(playing)
	}
}
