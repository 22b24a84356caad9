package credentials

import "regexp"

// Format tells how a stored credential value is represented.
type Format int

const (
	// FormatLegacy is any value that does not have the bcrypt token shape.
	FormatLegacy Format = iota
	// FormatHashed is a value shaped like a 60-character bcrypt token.
	FormatHashed
)

func (f Format) String() string {
	switch f {
	case FormatHashed:
		return "hashed"
	case FormatLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// hashedShape matches "$" + scheme tag + "$" + two-digit cost + "$" + 53
// characters of salt and digest.
var hashedShape = regexp.MustCompile(`^\$2[aby]\$\d{2}\$.{53}$`)

// IsHashed reports whether value has the bcrypt token shape. It checks shape
// only; a matching value may still fail to decode.
func IsHashed(value string) bool {
	if value == "" {
		return false
	}
	return hashedShape.MatchString(value)
}

// Classify maps a stored value to its Format.
func Classify(value string) Format {
	if IsHashed(value) {
		return FormatHashed
	}
	return FormatLegacy
}
