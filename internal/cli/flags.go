package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	DBPath     string
	BackupDir  string
	ListVoices bool

	// Generation flags
	Provider        string
	GenerationModel string

	// Speech flags
	SpeechEngine string
	SpeechRate   int
	OpenAIModel  string
	OpenAIVoice  string
	OpenAISpeed  float64
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Provider:     "openai",
		SpeechEngine: "espeak",
		SpeechRate:   130,
		OpenAIModel:  "gpt-4o-mini-tts",
		OpenAISpeed:  0.9,
	}
}
