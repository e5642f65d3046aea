package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/lexicarte/internal/cli"
	"codeberg.org/snonux/lexicarte/internal/gui"
	"codeberg.org/snonux/lexicarte/internal/speech"
	"codeberg.org/snonux/lexicarte/internal/store"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(flags *cli.Flags) error {
	// Handle --backup flag
	if flags.BackupDir != "" {
		return backupCards(flags)
	}

	// Handle --list-voices flag
	if flags.ListVoices {
		return listVoices(flags)
	}

	app, err := gui.New(&gui.Config{
		DBPath:          flags.DBPath,
		Provider:        flags.Provider,
		GenerationModel: flags.GenerationModel,
		OpenAIKey:       cli.GetOpenAIKey(),
		GeminiKey:       cli.GetGeminiKey(),
		SpeechEngine:    flags.SpeechEngine,
		SpeechRate:      flags.SpeechRate,
		OpenAIModel:     flags.OpenAIModel,
		OpenAIVoice:     flags.OpenAIVoice,
		OpenAISpeed:     flags.OpenAISpeed,
	})
	if err != nil {
		return err
	}
	app.Run()
	return nil
}

func backupCards(flags *cli.Flags) error {
	st, err := store.Open(flags.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open card store: %w", err)
	}
	defer st.Close()

	path, err := st.Backup(flags.BackupDir)
	if err != nil {
		return fmt.Errorf("failed to back up cards: %w", err)
	}
	fmt.Printf("Cards backed up to %s\n", path)
	return nil
}

func listVoices(flags *cli.Flags) error {
	engine, err := speech.NewEngine(&speech.Config{
		Engine:      flags.SpeechEngine,
		Locale:      "fr-FR",
		ESpeakRate:  flags.SpeechRate,
		OpenAIKey:   cli.GetOpenAIKey(),
		OpenAIModel: flags.OpenAIModel,
		OpenAIVoice: flags.OpenAIVoice,
		OpenAISpeed: flags.OpenAISpeed,
	})
	if err != nil {
		return err
	}

	voices, err := engine.Voices()
	if err != nil {
		return fmt.Errorf("failed to list voices: %w", err)
	}

	fmt.Printf("Available %s voices:\n", engine.Name())
	for _, v := range voices {
		fmt.Printf("  %-24s %s\n", v.Name, v.Language)
	}
	return nil
}
