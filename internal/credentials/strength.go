package credentials

import (
	"strings"
	"unicode/utf8"
)

const (
	// MinLength is the absolute minimum password length, in characters.
	MinLength = 6
	// MaxLength is the longest password accepted for new credentials.
	MaxLength = 50
)

const symbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// Strength is the result of scoring a candidate password.
type Strength int

const (
	StrengthRejected Strength = iota
	StrengthWeak
	StrengthMedium
	StrengthStrong
)

func (s Strength) String() string {
	switch s {
	case StrengthRejected:
		return "rejected"
	case StrengthWeak:
		return "weak"
	case StrengthMedium:
		return "medium"
	case StrengthStrong:
		return "strong"
	default:
		return "unknown"
	}
}

// Message returns a human readable verdict. Rejected has its own wording so a
// too-short password is never confused with a merely weak one.
func (s Strength) Message() string {
	switch s {
	case StrengthRejected:
		return "password is very weak (minimum 6 characters)"
	case StrengthWeak:
		return "weak password"
	case StrengthMedium:
		return "medium password"
	case StrengthStrong:
		return "strong password"
	default:
		return "unknown password strength"
	}
}

// Evaluation is a Strength together with the points that produced it.
type Evaluation struct {
	Strength Strength
	Score    int
	Message  string
}

// Evaluate scores plaintext and returns the full evaluation.
func Evaluate(plaintext string) Evaluation {
	if plaintext == "" {
		return Evaluation{Strength: StrengthRejected, Message: "password cannot be empty"}
	}

	n := utf8.RuneCountInString(plaintext)
	score := 0
	if n >= 8 {
		score++
	}
	if n >= 12 {
		score++
	}

	var upper, lower, digit, symbol bool
	for _, r := range plaintext {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(symbols, r):
			symbol = true
		}
	}
	for _, ok := range []bool{upper, lower, digit, symbol} {
		if ok {
			score++
		}
	}

	var s Strength
	switch {
	case n < MinLength:
		s = StrengthRejected
	case score <= 2:
		s = StrengthWeak
	case score <= 4:
		s = StrengthMedium
	default:
		s = StrengthStrong
	}
	return Evaluation{Strength: s, Score: score, Message: s.Message()}
}

// Score returns the Strength of plaintext.
func Score(plaintext string) Strength {
	return Evaluate(plaintext).Strength
}
