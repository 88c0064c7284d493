// Package duration parses the short moderation duration grammar (30s, 5m, 1h, 1d).
package duration

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalid is returned for any input that does not match the grammar.
var ErrInvalid = errors.New("duración inválida, usa: 30s, 5m, 1h, 1d")

// pattern accepts one or more digits followed by exactly one unit letter.
// Compound durations ("1h30m") are rejected on purpose.
var pattern = regexp.MustCompile(`^(\d+)([smhd])$`)

// unitSeconds maps each unit letter to its length in seconds
var unitSeconds = map[string]int{
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,
}

// Spec is a parsed duration: a positive amount and a single unit
type Spec struct {
	Amount int
	Unit   string
}

// Parse converts text like "30s" or "1h" into a Spec.
// Matching is case-insensitive but otherwise exact: no whitespace, no
// extra characters. The empty string, zero amounts and anything outside
// the grammar return ErrInvalid.
func Parse(text string) (Spec, error) {
	match := pattern.FindStringSubmatch(strings.ToLower(text))
	if match == nil {
		return Spec{}, ErrInvalid
	}

	amount, err := strconv.Atoi(match[1])
	if err != nil || amount < 1 {
		return Spec{}, ErrInvalid
	}

	return Spec{Amount: amount, Unit: match[2]}, nil
}

// Seconds returns the total length of the spec in seconds
func (s Spec) Seconds() int {
	return s.Amount * unitSeconds[s.Unit]
}

// Duration returns the spec as a time.Duration
func (s Spec) Duration() time.Duration {
	return time.Duration(s.Seconds()) * time.Second
}

// String returns the original short form, e.g. "30s"
func (s Spec) String() string {
	return strconv.Itoa(s.Amount) + s.Unit
}
