package validation

import (
	"strings"
	"unicode/utf8"
)

// Name rule limits
const (
	// MaxWords is the maximum number of words in a user name
	MaxWords = 10

	// MinWordLength is the minimum length of each name word, in characters
	MinWordLength = 3

	// MaxWordLength is the maximum length of each name word, in characters
	MaxWordLength = 10
)

// User-visible field error messages
const (
	MsgNameEmpty    = "Name cannot be empty."
	MsgNameTooMany  = "Name cannot have more than 10 words."
	MsgWordTooShort = "Each word must be at least 3 characters long."
	MsgWordTooLong  = "Each word must not exceed 10 characters."
	MsgTextEmpty    = "Input text cannot be empty."
)

// Result is the outcome of validating both form fields.
// An empty error string means the field is valid.
type Result struct {
	Valid     bool
	NameError string
	TextError string
}

// Validate checks the user name and input text against the form rules.
// Same inputs always produce the same Result.
func Validate(name, text string) Result {
	nameErr := ValidateName(name)
	textErr := ValidateText(text)

	return Result{
		Valid:     nameErr == "" && textErr == "",
		NameError: nameErr,
		TextError: textErr,
	}
}

// ValidateName returns the first rule violation for the user name, or "".
func ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return MsgNameEmpty
	}

	words := strings.Fields(trimmed)
	if len(words) > MaxWords {
		return MsgNameTooMany
	}

	for _, word := range words {
		n := utf8.RuneCountInString(word)
		if n < MinWordLength {
			return MsgWordTooShort
		}
		if n > MaxWordLength {
			return MsgWordTooLong
		}
	}

	return ""
}

// ValidateText returns the rule violation for the input text, or "".
func ValidateText(text string) string {
	if strings.TrimSpace(text) == "" {
		return MsgTextEmpty
	}
	return ""
}

// Errors returns the non-empty field messages keyed by field name.
// Used by the CLI to print every failing field at once.
func (r Result) Errors() map[string]string {
	errs := make(map[string]string)
	if r.NameError != "" {
		errs["name"] = r.NameError
	}
	if r.TextError != "" {
		errs["text"] = r.TextError
	}
	return errs
}
