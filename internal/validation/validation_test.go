package validation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Invalid: empty", "", MsgNameEmpty},
		{"Invalid: spaces only", "   ", MsgNameEmpty},
		{"Invalid: tabs and newlines", "\t\n \r", MsgNameEmpty},
		{"Invalid: eleven valid words", strings.Repeat("Ann ", 11), MsgNameTooMany},
		{"Invalid: eleven short words", strings.Repeat("a ", 11), MsgNameTooMany},
		{"Invalid: eleven long words", strings.Repeat("abcdefghijkl ", 11), MsgNameTooMany},
		{"Invalid: single two-char word", "Al", MsgWordTooShort},
		{"Invalid: single eleven-char word", "Bartholomew", MsgWordTooLong},
		{"Invalid: short word after valid", "Ann Li", MsgWordTooShort},
		{"Invalid: long before short", "Maximiliano Al", MsgWordTooLong},
		{"Invalid: short before long", "Al Maximiliano", MsgWordTooShort},
		{"Valid: Ann Lee", "Ann Lee", ""},
		{"Valid: exactly ten words", strings.Repeat("Bob ", 10), ""},
		{"Valid: ten-char word", "Alexandria", ""},
		{"Valid: three-char word", "Eve", ""},
		{"Valid: surrounding whitespace", "  Ann   Lee \n", ""},
		{"Valid: multibyte runes counted as characters", "Zoë Åsa", ""},
		{"Invalid: two emoji are two characters", "😀😀", MsgWordTooShort},
		{"Valid: five emoji are five characters", "😀😀😀😀😀", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateName(tt.input); got != tt.want {
				t.Errorf("ValidateName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Invalid: empty", "", MsgTextEmpty},
		{"Invalid: whitespace", " \t\n ", MsgTextEmpty},
		{"Valid: single char", "x", ""},
		{"Valid: sentence", "listen silent", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateText(tt.input); got != tt.want {
				t.Errorf("ValidateText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		userName  string
		inputText string
		want      Result
	}{
		{
			name:      "both valid",
			userName:  "Ann Lee",
			inputText: "listen",
			want:      Result{Valid: true},
		},
		{
			name:      "both invalid",
			userName:  " ",
			inputText: "",
			want:      Result{NameError: MsgNameEmpty, TextError: MsgTextEmpty},
		},
		{
			name:      "name invalid only",
			userName:  "Al",
			inputText: "listen",
			want:      Result{NameError: MsgWordTooShort},
		},
		{
			name:      "text invalid only",
			userName:  "Ann Lee",
			inputText: "   ",
			want:      Result{TextError: MsgTextEmpty},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.userName, tt.inputText)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateIdempotent(t *testing.T) {
	inputs := [][2]string{
		{"", ""},
		{"Ann Lee", "abc"},
		{"Al", "abc"},
		{strings.Repeat("word ", 12), ""},
	}

	for _, in := range inputs {
		first := Validate(in[0], in[1])
		for i := 0; i < 3; i++ {
			if again := Validate(in[0], in[1]); again != first {
				t.Fatalf("Validate(%q, %q) not idempotent: %+v != %+v", in[0], in[1], again, first)
			}
		}
	}
}

func TestResultErrors(t *testing.T) {
	r := Validate("", "")
	errs := r.Errors()
	if len(errs) != 2 {
		t.Fatalf("Errors() returned %d entries, want 2", len(errs))
	}
	if errs["name"] != MsgNameEmpty {
		t.Errorf("Errors()[name] = %q, want %q", errs["name"], MsgNameEmpty)
	}
	if errs["text"] != MsgTextEmpty {
		t.Errorf("Errors()[text] = %q, want %q", errs["text"], MsgTextEmpty)
	}

	if got := Validate("Ann Lee", "abc").Errors(); len(got) != 0 {
		t.Errorf("Errors() for valid input = %v, want empty", got)
	}
}
