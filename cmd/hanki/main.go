package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/hanki/internal/anki"
	"codeberg.org/snonux/hanki/internal/audio"
	"codeberg.org/snonux/hanki/internal/azure"
	"codeberg.org/snonux/hanki/internal/batch"
	"codeberg.org/snonux/hanki/internal/card"
	"codeberg.org/snonux/hanki/internal/cli"
	"codeberg.org/snonux/hanki/internal/dict"
	"codeberg.org/snonux/hanki/internal/logging"
	"codeberg.org/snonux/hanki/internal/phonetic"
	"codeberg.org/snonux/hanki/internal/related"
)

func main() {
	flags := cli.NewFlags()

	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	log, closeLog, err := logging.Setup(flags.TraceFile, flags.Verbose)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closeLog()

	ctx := context.Background()

	variant, err := scriptVariant(viper.GetString("reading.script"))
	if err != nil {
		return err
	}

	azureClient := azure.NewClient(azure.Config{
		Region:        cli.GetAzureRegion(),
		TranslatorKey: cli.GetAzureTranslatorKey(),
		SpeechKey:     cli.GetAzureSpeechKey(),
		VoiceName:     viper.GetString("audio.voice"),
		Locale:        flags.VoiceLocale,
		Language:      variant.Language(),
		FromScript:    variant.FromScript(),
	}, log)

	// Handle --list-voices flag
	if flags.ListVoices {
		return listVoices(ctx, azureClient, flags.VoiceLocale)
	}

	if len(args) == 0 {
		return fmt.Errorf("no input file given, see --help")
	}

	notation := phonetic.Notation(viper.GetString("reading.notation"))
	if !notation.Valid() {
		return fmt.Errorf("unknown notation %q (want zhuyin or pinyin)", notation)
	}

	dictionary, err := dict.Load(viper.GetString("dict.file"))
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}
	log.Info().Int("entries", dictionary.Size()).Msg("Dictionary loaded")

	speech, err := audioProvider(azureClient, log)
	if err != nil {
		return err
	}

	suggester, err := buildSuggester(ctx, variant, log)
	if err != nil {
		return err
	}

	mediaDir := viper.GetString("output.media_dir")
	if err := os.MkdirAll(mediaDir, 0755); err != nil {
		return fmt.Errorf("failed to create media directory: %w", err)
	}

	converter := phonetic.NewConverter(cli.StdinCorrector(os.Stdin, os.Stderr), log)
	builder := card.NewBuilder(dictionary, azureClient, azureClient, speech, suggester, converter,
		card.Options{
			Notation: notation,
			Variant:  variant,
			MediaDir: mediaDir,
		}, log)

	rows, err := batch.ReadCSV(args[0])
	if err != nil {
		return err
	}
	log.Info().Int("rows", len(rows)).Str("file", args[0]).Msg("Input loaded")

	ankiConfig := anki.DefaultConfig()
	if name := viper.GetString("output.deck_name"); name != "" {
		ankiConfig.DeckName = name
	}
	// Stable IDs make re-imports update existing notes; the config file can
	// pin its own so several decks coexist.
	if id := viper.GetInt64("deck.id"); id != 0 {
		ankiConfig.DeckID = id
	}
	if id := viper.GetInt64("deck.word_model_id"); id != 0 {
		ankiConfig.WordModelID = id
	}
	if id := viper.GetInt64("deck.sentence_model_id"); id != 0 {
		ankiConfig.SentenceModelID = id
	}
	gen := anki.NewGenerator(ankiConfig)

	processor := batch.NewProcessor(dictionary, builder, viper.GetInt("batch.workers"), log)
	summary, err := processor.Process(ctx, rows, gen)
	if err != nil {
		return err
	}

	outputFile := viper.GetString("output.file")
	if err := gen.WriteAPKG(outputFile); err != nil {
		return fmt.Errorf("failed to write Anki package: %w", err)
	}

	log.Info().
		Int("words", summary.Words).
		Int("sentences", summary.Sentences).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Str("output", outputFile).
		Msg("Done")

	fmt.Printf("\nDone! %d word and %d sentence notes written to %s\n",
		summary.Words, summary.Sentences, outputFile)
	if summary.Failed > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d rows failed, see %s for details\n",
			summary.Failed, flags.TraceFile)
	}
	return nil
}

func scriptVariant(name string) (dict.ScriptVariant, error) {
	switch name {
	case "traditional", "":
		return dict.Traditional, nil
	case "simplified":
		return dict.Simplified, nil
	default:
		return "", fmt.Errorf("unknown script %q (want traditional or simplified)", name)
	}
}

func audioProvider(client *azure.Client, log zerolog.Logger) (audio.Provider, error) {
	config := audio.DefaultConfig()
	config.Provider = viper.GetString("audio.provider")
	config.ESpeakVoice = viper.GetString("audio.espeak_voice")
	config.ESpeakSpeed = viper.GetInt("audio.espeak_speed")

	provider, err := audio.NewProvider(config, client, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio provider: %w", err)
	}

	// Keep generating with eSpeak when Azure speech is unavailable
	if config.Provider == "azure" {
		if fallback, err := audio.NewESpeakProvider(config); err == nil {
			provider = audio.NewProviderWithFallback(provider, fallback, log)
		}
	}
	return provider, nil
}

func buildSuggester(ctx context.Context, variant dict.ScriptVariant, log zerolog.Logger) (related.Suggester, error) {
	switch viper.GetString("suggest.provider") {
	case "openai", "":
		return related.NewOpenAISuggester(cli.GetOpenAIKey(), os.Getenv("OPENAI_ORGANISATION"),
			viper.GetString("suggest.openai_model"), variant, log), nil
	case "gemini":
		return related.NewGeminiSuggester(ctx, cli.GetGeminiKey(),
			viper.GetString("suggest.gemini_model"), variant, log)
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown suggester %q (want openai, gemini or none)", viper.GetString("suggest.provider"))
	}
}

func listVoices(ctx context.Context, client *azure.Client, locale string) error {
	voices, err := client.Voices(ctx, locale)
	if err != nil {
		return fmt.Errorf("failed to list voices: %w", err)
	}
	for _, v := range voices {
		fmt.Printf("%-40s %-10s %s\n", v.ShortName, v.Gender, v.VoiceType)
	}
	return nil
}
