package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "lexicarte" {
		t.Errorf("Expected Use to be 'lexicarte', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "French Vocabulary Flashcard App") {
		t.Errorf("Expected Short description to contain 'French Vocabulary Flashcard App'")
	}

	// Test that flags are set up
	flagTests := []string{
		"config",
		"db",
		"backup",
		"list-voices",
		"provider",
		"generation-model",
		"speech-engine",
		"speech-rate",
		"openai-model",
		"openai-voice",
		"openai-speed",
	}

	for _, name := range flagTests {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag
			if name == "config" {
				flag = cmd.PersistentFlags().Lookup(name)
			} else {
				flag = cmd.Flags().Lookup(name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}
}

func TestSetupFlags_Defaults(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	providerFlag := cmd.Flags().Lookup("provider")
	if providerFlag == nil {
		t.Fatal("provider flag not found")
	}
	if providerFlag.DefValue != "openai" {
		t.Errorf("Expected default provider to be openai, got %s", providerFlag.DefValue)
	}

	engineFlag := cmd.Flags().Lookup("speech-engine")
	if engineFlag == nil {
		t.Fatal("speech-engine flag not found")
	}
	if engineFlag.DefValue != "espeak" {
		t.Errorf("Expected default speech engine to be espeak, got %s", engineFlag.DefValue)
	}

	dbFlag := cmd.Flags().Lookup("db")
	if dbFlag == nil {
		t.Fatal("db flag not found")
	}
	if !strings.Contains(dbFlag.DefValue, "lexicarte") {
		t.Errorf("Expected default db path under the lexicarte state dir, got %s", dbFlag.DefValue)
	}
}

func TestInitConfig_EnvPrefix(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()
	InitConfig("")

	os.Setenv("LEXICARTE_TEST_VAR", "test-value")
	defer os.Unsetenv("LEXICARTE_TEST_VAR")

	if viper.GetString("test_var") != "test-value" {
		t.Error("Environment variable not properly loaded")
	}
}

func TestGetOpenAIKey(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		envKey    string
		configKey string
		expected  string
	}{
		{
			name:      "from environment",
			envKey:    "env-test-key",
			configKey: "config-test-key",
			expected:  "env-test-key",
		},
		{
			name:      "from config when no env",
			envKey:    "",
			configKey: "config-test-key",
			expected:  "config-test-key",
		},
		{
			name:      "empty when neither set",
			envKey:    "",
			configKey: "",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			if tt.envKey != "" {
				os.Setenv("OPENAI_API_KEY", tt.envKey)
				defer os.Unsetenv("OPENAI_API_KEY")
			} else {
				os.Unsetenv("OPENAI_API_KEY")
			}

			if tt.configKey != "" {
				viper.Set("generation.openai_key", tt.configKey)
			}

			if got := GetOpenAIKey(); got != tt.expected {
				t.Errorf("GetOpenAIKey() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGetGeminiKey(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()
	os.Setenv("GEMINI_API_KEY", "env-gemini-key")
	defer os.Unsetenv("GEMINI_API_KEY")

	if got := GetGeminiKey(); got != "env-gemini-key" {
		t.Errorf("GetGeminiKey() = %q, want 'env-gemini-key'", got)
	}
}
