package phonetic

import "testing"

func TestEncodeZhuyin(t *testing.T) {
	tests := []struct {
		syllable string
		want     string
	}{
		{"ni3", "ㄋㄧˇ"},
		{"hao3", "ㄏㄠˇ"},
		{"chuan2", "ㄔㄨㄢˊ"},
		{"tong3", "ㄊㄨㄥˇ"},
		{"shi2", "ㄕˊ"},
		{"shang4", "ㄕㄤˋ"},
		{"zhang1", "ㄓㄤ"},
		{"de5", "˙ㄉㄜ"},
		{"er2", "ㄦˊ"},
		{"r5", "˙ㄦ"},
		{"ju4", "ㄐㄩˋ"},
		{"jun1", "ㄐㄩㄣ"},
		{"que4", "ㄑㄩㄝˋ"},
		{"xuan3", "ㄒㄩㄢˇ"},
		{"lu:4", "ㄌㄩˋ"},
		{"lv3", "ㄌㄩˇ"},
		{"yi1", "ㄧ"},
		{"wu3", "ㄨˇ"},
		{"yu2", "ㄩˊ"},
		{"ye4", "ㄧㄝˋ"},
		{"yue4", "ㄩㄝˋ"},
		{"you3", "ㄧㄡˇ"},
		{"wo3", "ㄨㄛˇ"},
		{"weng1", "ㄨㄥ"},
		{"ying2", "ㄧㄥˊ"},
		{"hui4", "ㄏㄨㄟˋ"},
		{"jin1", "ㄐㄧㄣ"},
	}

	for _, tt := range tests {
		got, ok := EncodeZhuyin(tt.syllable)
		if !ok {
			t.Errorf("EncodeZhuyin(%q) failed, want %q", tt.syllable, tt.want)
			continue
		}
		if got != tt.want {
			t.Errorf("EncodeZhuyin(%q) = %q, want %q", tt.syllable, got, tt.want)
		}
	}
}

func TestEncodeZhuyinInvalid(t *testing.T) {
	for _, syllable := range []string{"", "xyz1", "ng2", "q3"} {
		if got, ok := EncodeZhuyin(syllable); ok {
			t.Errorf("EncodeZhuyin(%q) = %q, expected failure", syllable, got)
		}
	}
}

func TestStripMarks(t *testing.T) {
	tests := []struct {
		syllable string
		wantBase string
		wantTone int
	}{
		{"nǐ", "ni", 3},
		{"hǎo", "hao", 3},
		{"chuán", "chuan", 2},
		{"mā", "ma", 1},
		{"de", "de", 5},
		{"lǜ", "lü", 4},
	}

	for _, tt := range tests {
		base, tone := stripMarks(tt.syllable)
		if base != tt.wantBase || tone != tt.wantTone {
			t.Errorf("stripMarks(%q) = %q, %d, want %q, %d", tt.syllable, base, tone, tt.wantBase, tt.wantTone)
		}
	}
}

func TestMarksFromNumbers(t *testing.T) {
	tests := []struct {
		numbers string
		want    string
	}{
		{"ni3 hao3", "nǐ hǎo"},
		{"chuan2 tong3", "chuán tǒng"},
		{"shi2 shang4", "shí shàng"},
		{"de5", "de"},
		{"xiu1", "xiū"},
		{"gou3", "gǒu"},
		{"dui4", "duì"},
		{"lu:4 shi1", "lǜ shī"},
	}

	for _, tt := range tests {
		if got := MarksFromNumbers(tt.numbers); got != tt.want {
			t.Errorf("MarksFromNumbers(%q) = %q, want %q", tt.numbers, got, tt.want)
		}
	}
}
