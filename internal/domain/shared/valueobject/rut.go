package valueobject

import (
	"errors"
	"strconv"
	"strings"
)

// RUT is a value object representing a Chilean tax identification number
// (Rol Único Tributario). It is stored normalized: digits without thousand
// separators, a hyphen, and an uppercase check digit, e.g. "12345678-5".
type RUT struct {
	number int
	dv     byte
}

var (
	// ErrInvalidRUTFormat indicates the input cannot be parsed as a RUT
	ErrInvalidRUTFormat = errors.New("invalid RUT format")
	// ErrInvalidRUTCheckDigit indicates the check digit does not match
	ErrInvalidRUTCheckDigit = errors.New("invalid RUT check digit")
)

// ParseRUT parses and validates a RUT string. Accepted inputs may contain
// dots as thousand separators and an optional hyphen before the check digit.
func ParseRUT(input string) (RUT, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(input))
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")

	if len(cleaned) < 2 {
		return RUT{}, ErrInvalidRUTFormat
	}

	dv := cleaned[len(cleaned)-1]
	body := cleaned[:len(cleaned)-1]

	if dv != 'K' && (dv < '0' || dv > '9') {
		return RUT{}, ErrInvalidRUTFormat
	}

	number, err := strconv.Atoi(body)
	if err != nil || number <= 0 {
		return RUT{}, ErrInvalidRUTFormat
	}

	if computeCheckDigit(number) != dv {
		return RUT{}, ErrInvalidRUTCheckDigit
	}

	return RUT{number: number, dv: dv}, nil
}

// MustParseRUT parses a RUT and panics on failure. For tests and constants.
func MustParseRUT(input string) RUT {
	rut, err := ParseRUT(input)
	if err != nil {
		panic("invalid RUT: " + input)
	}
	return rut
}

// computeCheckDigit implements the modulo-11 algorithm with the 2..7
// repeating factor sequence applied right to left.
func computeCheckDigit(number int) byte {
	sum := 0
	factor := 2
	for n := number; n > 0; n /= 10 {
		sum += (n % 10) * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}
	switch rem := 11 - sum%11; rem {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + rem)
	}
}

// String returns the normalized representation, e.g. "12345678-5"
func (r RUT) String() string {
	return strconv.Itoa(r.number) + "-" + string(r.dv)
}

// Number returns the numeric body of the RUT
func (r RUT) Number() int {
	return r.number
}

// CheckDigit returns the check digit character
func (r RUT) CheckDigit() byte {
	return r.dv
}

// IsZero reports whether the RUT is the zero value
func (r RUT) IsZero() bool {
	return r.number == 0
}

// Equals compares two RUTs by value
func (r RUT) Equals(other RUT) bool {
	return r.number == other.number && r.dv == other.dv
}

// IsValidRUT reports whether the input parses as a well-formed RUT
func IsValidRUT(input string) bool {
	_, err := ParseRUT(input)
	return err == nil
}

// NormalizeRUT returns the canonical form of a RUT string, or the trimmed
// input unchanged when it does not parse. Lookups normalize before matching
// so that "12.345.678-5" and "12345678-5" hit the same row.
func NormalizeRUT(input string) string {
	rut, err := ParseRUT(input)
	if err != nil {
		return strings.TrimSpace(input)
	}
	return rut.String()
}
