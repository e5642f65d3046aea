package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/lexicarte/internal"
	"codeberg.org/snonux/lexicarte/internal/store"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lexicarte",
		Short: "French Vocabulary Flashcard App",
		Long: `lexicarte is a visual flashcard application for learning French vocabulary.

Entered words are enriched by a generative language model (translation,
definition, example sentence, phonetic transcription, gender, cultural nuance
and a visual texture tag), rendered as cards and spoken aloud via
text-to-speech.

Examples:
  lexicarte                       # Launch the card browser
  lexicarte --list-voices         # List the configured speech engine's voices
  lexicarte --backup ~/Downloads  # Write a collection backup and exit`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.lexicarte.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.DBPath, "db", store.DefaultPath(), "Path to the card database")
	cmd.Flags().StringVar(&flags.BackupDir, "backup", "", "Write a timestamped collection backup to this directory and exit")
	cmd.Flags().BoolVar(&flags.ListVoices, "list-voices", false, "List the configured speech engine's voices and exit")

	// Generation flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Generation provider: openai or gemini")
	cmd.Flags().StringVar(&flags.GenerationModel, "generation-model", "", "Generation model override (provider default if empty)")

	// Speech flags
	cmd.Flags().StringVar(&flags.SpeechEngine, "speech-engine", flags.SpeechEngine, "Speech engine: espeak or openai")
	cmd.Flags().IntVar(&flags.SpeechRate, "speech-rate", flags.SpeechRate, "espeak speaking rate in words per minute")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", "", "OpenAI voice: alloy, ash, ballad, coral, echo, fable, onyx, nova, sage, shimmer, verse (default: policy selection)")
	cmd.Flags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0)")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("store.db", cmd.Flags().Lookup("db"))
	viper.BindPFlag("generation.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("generation.model", cmd.Flags().Lookup("generation-model"))
	viper.BindPFlag("speech.engine", cmd.Flags().Lookup("speech-engine"))
	viper.BindPFlag("speech.rate", cmd.Flags().Lookup("speech-rate"))
	viper.BindPFlag("speech.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("speech.openai_voice", cmd.Flags().Lookup("openai-voice"))
	viper.BindPFlag("speech.openai_speed", cmd.Flags().Lookup("openai-speed"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".lexicarte" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lexicarte")
	}

	// Environment variables
	viper.SetEnvPrefix("LEXICARTE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("generation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("generation.gemini_key")
}
