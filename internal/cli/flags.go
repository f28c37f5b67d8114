package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	OutputFile string
	MediaDir   string
	DictFile   string
	DeckName   string
	Notation   string
	Script     string
	Workers    int
	Verbose    bool
	TraceFile  string

	// Audio flags
	AudioProvider string
	Voice         string
	ESpeakVoice   string
	ESpeakSpeed   int
	ListVoices    bool
	VoiceLocale   string

	// Related-word suggestion flags
	Suggester   string
	OpenAIModel string
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputFile:    "mandarin.apkg",
		DeckName:      "Generated Mandarin Flashcards",
		Notation:      "zhuyin",
		Script:        "traditional",
		Workers:       4,
		TraceFile:     "trace.log",
		AudioProvider: "azure",
		Voice:         "zh-TW-YunJheNeural",
		ESpeakVoice:   "cmn",
		ESpeakSpeed:   140,
		VoiceLocale:   "zh-TW",
		Suggester:     "openai",
		OpenAIModel:   "gpt-3.5-turbo",
		GeminiModel:   "gemini-2.0-flash",
	}
}
