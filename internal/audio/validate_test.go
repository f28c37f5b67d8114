package audio

import "testing"

func TestValidateMandarinText(t *testing.T) {
	tests := []struct {
		text    string
		wantErr bool
	}{
		{"你好", false},
		{"你很時尚", false},
		{" 你好 ", false},
		{"", true},
		{"   ", true},
		{"hello", true},
		{"你很*時尚*", true},
		{"<span class=starred>時尚</span>", true},
	}

	for _, tt := range tests {
		err := ValidateMandarinText(tt.text)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateMandarinText(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
		}
	}
}
