package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// ESpeakEngine drives the espeak-ng text-to-speech engine.
type ESpeakEngine struct {
	config *Config

	mu     sync.Mutex
	voices []Voice // cached after the first listing
	listed bool
}

// NewESpeakEngine creates an espeak-ng engine.
func NewESpeakEngine(config *Config) (*ESpeakEngine, error) {
	if _, err := exec.LookPath("espeak-ng"); err != nil {
		return nil, fmt.Errorf("espeak-ng not found in PATH: %w", err)
	}
	if config == nil {
		config = DefaultConfig()
	}
	return &ESpeakEngine{config: config}, nil
}

// Voices lists the espeak-ng voices for the configured locale's language.
// The listing is cached after the first successful run.
func (e *ESpeakEngine) Voices() ([]Voice, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.listed {
		return e.voices, nil
	}

	lang := e.config.Locale
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}

	output, err := exec.Command("espeak-ng", "--voices="+lang).Output()
	if err != nil {
		return nil, fmt.Errorf("espeak-ng voice listing failed: %w", err)
	}

	e.voices = parseESpeakVoices(string(output))
	e.listed = true
	return e.voices, nil
}

// parseESpeakVoices parses `espeak-ng --voices=LANG` output. Columns:
// Pty Language Age/Gender VoiceName File OtherLanguages
func parseESpeakVoices(output string) []Voice {
	var voices []Voice
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		if i == 0 { // header row
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		voices = append(voices, Voice{
			Name:     fields[3],
			Language: fields[1],
		})
	}
	return voices
}

// Speak pronounces text via espeak-ng at the configured rate. Cancelling the
// context kills the process.
func (e *ESpeakEngine) Speak(ctx context.Context, text string, voice Voice) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	name := voice.Name
	if name == "" {
		// Engine default for the requested locale
		name = strings.ToLower(strings.SplitN(e.config.Locale, "-", 2)[0])
	}

	rate := e.config.ESpeakRate
	if rate == 0 {
		rate = DefaultConfig().ESpeakRate
	}

	cmd := exec.CommandContext(ctx, "espeak-ng",
		"-v", name,
		"-s", fmt.Sprintf("%d", rate),
		text)

	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("espeak-ng failed: %w\nOutput: %s", err, string(output))
	}
	return nil
}

// Name returns the engine name
func (e *ESpeakEngine) Name() string {
	return "espeak"
}
