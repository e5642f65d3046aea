package speech

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/lexicarte/internal"
)

// openAIVoices is the fixed voice list of the OpenAI TTS API. The voices are
// multilingual, so all of them are tagged with the French locale here.
var openAIVoices = []string{
	"alloy", "ash", "ballad", "coral", "echo", "fable",
	"onyx", "nova", "sage", "shimmer", "verse",
}

// OpenAIEngine synthesizes speech via the OpenAI TTS API and plays it back
// through a platform audio player.
type OpenAIEngine struct {
	client *openai.Client
	config *Config
}

// NewOpenAIEngine creates an OpenAI TTS engine.
func NewOpenAIEngine(config *Config) (*OpenAIEngine, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	return &OpenAIEngine{
		client: openai.NewClient(config.OpenAIKey),
		config: config,
	}, nil
}

// Voices returns the fixed OpenAI voice list, tagged for the configured locale.
func (e *OpenAIEngine) Voices() ([]Voice, error) {
	voices := make([]Voice, len(openAIVoices))
	for i, name := range openAIVoices {
		voices[i] = Voice{Name: name, Language: e.config.Locale}
	}
	return voices, nil
}

// Speak synthesizes text to a temporary mp3 file and plays it. The context
// cancels both the API call and the playback process.
func (e *OpenAIEngine) Speak(ctx context.Context, text string, voice Voice) error {
	name := voice.Name
	if name == "" {
		name = "nova"
	}
	if e.config.OpenAIVoice != "" {
		name = e.config.OpenAIVoice
	}

	speed := e.config.OpenAISpeed
	if speed == 0 {
		speed = DefaultConfig().OpenAISpeed
	}

	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(e.config.OpenAIModel),
		Input:          text,
		Voice:          openai.SpeechVoice(name),
		Speed:          speed,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	}
	if e.config.OpenAIModel == "gpt-4o-mini-tts" {
		req.Instructions = "You are speaking French (le français). Pronounce the text " +
			"with authentic French phonetics. Speak slowly and clearly for language learners."
	}

	response, err := e.client.CreateSpeech(ctx, req)
	if err != nil {
		return fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	defer response.Close()

	prefix := []rune(internal.SanitizeFilename(text))
	if len(prefix) > 24 {
		prefix = prefix[:24]
	}
	tmp, err := os.CreateTemp("", "lexicarte-tts-"+string(prefix)+"-*.mp3")
	if err != nil {
		return fmt.Errorf("failed to create temp audio file: %w", err)
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, response)
	tmp.Close()
	if err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if written == 0 {
		return fmt.Errorf("no audio data received from OpenAI")
	}

	return playAudioFile(ctx, tmp.Name())
}

// Name returns the engine name
func (e *OpenAIEngine) Name() string {
	return "openai"
}

// playAudioFile plays an audio file using platform-specific commands.
func playAudioFile(ctx context.Context, path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "afplay", path)
	case "linux":
		// Try multiple commands in order of preference
		// mpg123 first since it handles MP3 files best
		if _, err := exec.LookPath("mpg123"); err == nil {
			cmd = exec.CommandContext(ctx, "mpg123", "-q", path)
		} else if _, err := exec.LookPath("ffplay"); err == nil {
			cmd = exec.CommandContext(ctx, "ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", path)
		} else if _, err := exec.LookPath("play"); err == nil {
			cmd = exec.CommandContext(ctx, "play", "-q", path)
		} else if _, err := exec.LookPath("paplay"); err == nil {
			cmd = exec.CommandContext(ctx, "paplay", path)
		} else {
			return fmt.Errorf("no audio player found. Install mpg123, ffplay, sox, or paplay")
		}
	case "windows":
		cmd = exec.CommandContext(ctx, "cmd", "/c", "start", "/min", "/wait", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("audio playback failed: %w", err)
	}
	return nil
}
