package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_Boundaries(t *testing.T) {
	tests := []struct {
		password string
		want     Strength
		score    int
	}{
		{"", StrengthRejected, 0},
		{"123", StrengthRejected, 1},
		{"abc", StrengthRejected, 1},
		{"Ab1@x", StrengthRejected, 4},
		{"abcdef", StrengthWeak, 1},
		{"abc123", StrengthWeak, 2},
		{"Abc123", StrengthMedium, 3},
		{"Abc@123", StrengthMedium, 4},
		{"abcdefgh", StrengthWeak, 2},
		{"abcdefgh1", StrengthMedium, 3},
		{"Abcdefgh1", StrengthMedium, 4},
		{"Abcdefgh1!", StrengthStrong, 5},
		{"MyP@ssw0rd2024!", StrengthStrong, 6},
		{"abcdefghijkl", StrengthMedium, 3},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			ev := Evaluate(tt.password)
			assert.Equal(t, tt.want, ev.Strength)
			assert.Equal(t, tt.score, ev.Score)
			assert.Equal(t, tt.want, Score(tt.password))
		})
	}
}

func TestScore_SymbolSet(t *testing.T) {
	for _, r := range symbols {
		ev := Evaluate("abcdef" + string(r))
		assert.Equal(t, 2, ev.Score, "symbol %q should score", r)
	}

	// Characters outside the fixed set earn nothing.
	for _, s := range []string{"abcdef~", "abcdef`", "abcdef ", "abcdefé"} {
		assert.Equal(t, 1, Evaluate(s).Score, "input %q", s)
	}
}

func TestScore_CountsRunes(t *testing.T) {
	// Five two-byte runes stay below the minimum length.
	assert.Equal(t, StrengthRejected, Score("ééééé"))
	assert.Equal(t, StrengthWeak, Score("éééééé"))
}

func TestMessages_AreDistinct(t *testing.T) {
	seen := map[string]Strength{}
	for _, s := range []Strength{StrengthRejected, StrengthWeak, StrengthMedium, StrengthStrong} {
		msg := s.Message()
		if prev, ok := seen[msg]; ok {
			t.Fatalf("%v and %v share message %q", prev, s, msg)
		}
		seen[msg] = s
	}

	assert.Equal(t, "password cannot be empty", Evaluate("").Message)
	assert.Equal(t, StrengthRejected.Message(), Evaluate("abc").Message)
	assert.NotEqual(t, Evaluate("").Message, Evaluate("abc").Message)
}

func TestStrength_String(t *testing.T) {
	assert.Equal(t, "rejected", StrengthRejected.String())
	assert.Equal(t, "weak", StrengthWeak.String())
	assert.Equal(t, "medium", StrengthMedium.String())
	assert.Equal(t, "strong", StrengthStrong.String())
	assert.Equal(t, "unknown", Strength(9).String())
}
