package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/hanki/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hanki [input.csv]",
		Short: "Mandarin Anki Flashcard Generator",
		Long: `hanki turns a CSV of Mandarin words and sentences into an Anki deck.

Each row is looked up in CC-CEDICT, given a zhuyin or pinyin reading,
translated and voiced via Azure Cognitive Services, and written as a note
with Listening and Reading cards into a single .apkg package.

Examples:
  hanki words.csv                   # Build mandarin.apkg from words.csv
  hanki -o deck.apkg words.csv      # Choose the output package
  hanki --notation pinyin words.csv # Pinyin readings instead of zhuyin
  hanki --list-voices               # List Azure voices for the locale`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	defaultMediaDir := filepath.Join(home, ".local", "state", "hanki", "audio")
	defaultDict := filepath.Join(home, ".local", "share", "hanki", "cedict_ts.u8")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.hanki.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", flags.OutputFile, "Output .apkg file")
	cmd.Flags().StringVar(&flags.MediaDir, "media-dir", defaultMediaDir, "Directory for generated audio files")
	cmd.Flags().StringVar(&flags.DictFile, "dict", defaultDict, "CC-CEDICT dictionary file")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().StringVar(&flags.Notation, "notation", flags.Notation, "Reading notation (zhuyin or pinyin)")
	cmd.Flags().StringVar(&flags.Script, "script", flags.Script, "Chinese script variant (traditional or simplified)")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "j", flags.Workers, "Number of rows processed concurrently")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Debug output on the console")
	cmd.Flags().StringVar(&flags.TraceFile, "trace-file", flags.TraceFile, "Trace log file (all API traffic is logged here)")

	// Audio flags
	cmd.Flags().StringVar(&flags.AudioProvider, "audio-provider", flags.AudioProvider, "Audio provider (azure or espeak)")
	cmd.Flags().StringVar(&flags.Voice, "voice", flags.Voice, "Azure neural voice for speech synthesis")
	cmd.Flags().StringVar(&flags.ESpeakVoice, "espeak-voice", flags.ESpeakVoice, "eSpeak voice used by the fallback provider")
	cmd.Flags().IntVar(&flags.ESpeakSpeed, "espeak-speed", flags.ESpeakSpeed, "eSpeak speaking rate in words per minute")
	cmd.Flags().BoolVar(&flags.ListVoices, "list-voices", false, "List available Azure voices and exit")
	cmd.Flags().StringVar(&flags.VoiceLocale, "voice-locale", flags.VoiceLocale, "Locale filter for --list-voices")

	// Suggestion flags
	cmd.Flags().StringVar(&flags.Suggester, "suggester", flags.Suggester, "Related-word suggester (openai, gemini or none)")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for related words")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for related words")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.file", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.media_dir", cmd.Flags().Lookup("media-dir"))
	viper.BindPFlag("output.deck_name", cmd.Flags().Lookup("deck-name"))
	viper.BindPFlag("dict.file", cmd.Flags().Lookup("dict"))
	viper.BindPFlag("reading.notation", cmd.Flags().Lookup("notation"))
	viper.BindPFlag("reading.script", cmd.Flags().Lookup("script"))
	viper.BindPFlag("audio.provider", cmd.Flags().Lookup("audio-provider"))
	viper.BindPFlag("audio.voice", cmd.Flags().Lookup("voice"))
	viper.BindPFlag("audio.espeak_voice", cmd.Flags().Lookup("espeak-voice"))
	viper.BindPFlag("audio.espeak_speed", cmd.Flags().Lookup("espeak-speed"))
	viper.BindPFlag("suggest.provider", cmd.Flags().Lookup("suggester"))
	viper.BindPFlag("suggest.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("suggest.gemini_model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".hanki" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hanki")
	}

	// Environment variables
	viper.SetEnvPrefix("HANKI")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetAzureTranslatorKey retrieves the Azure Translator key from environment
// or config
func GetAzureTranslatorKey() string {
	if key := os.Getenv("AZURE_TRANSLATOR_KEY"); key != "" {
		return key
	}
	return viper.GetString("azure.translator_key")
}

// GetAzureSpeechKey retrieves the Azure Speech key from environment or config
func GetAzureSpeechKey() string {
	if key := os.Getenv("AZURE_SPEECH_KEY"); key != "" {
		return key
	}
	return viper.GetString("azure.speech_key")
}

// GetAzureRegion retrieves the Azure service region from environment or config
func GetAzureRegion() string {
	if region := os.Getenv("AZURE_REGION"); region != "" {
		return region
	}
	if region := viper.GetString("azure.region"); region != "" {
		return region
	}
	return "westeurope"
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("suggest.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("suggest.gemini_key")
}
