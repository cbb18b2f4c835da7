// Package firststrong detects the direction of text by the first-strong
// heuristic: the first character with a strong bidi class decides.
// It is used by tests to check what a renderer would make of
// pseudolocalized text.
package firststrong

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction is the paragraph direction of a text.
type Direction int8

// Directions. Text without strong characters is Neutral.
const (
	Neutral Direction = iota
	LeftToRight
	RightToLeft
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LTR"
	case RightToLeft:
		return "RTL"
	}
	return "neutral"
}

// Detect returns the direction of the first character of s with bidi class
// L, R or AL. Explicit formatting characters are not strong and are skipped;
// the marks LRM and RLM are strong.
func Detect(s string) Direction {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return LeftToRight
		case bidi.R, bidi.AL:
			return RightToLeft
		}
	}
	return Neutral
}

// IsLeftToRight reports whether s is displayed left-to-right in a paragraph
// with default direction left-to-right.
func IsLeftToRight(s string) bool {
	return Detect(s) != RightToLeft
}

// HasStrong reports whether s contains any character with a strong direction.
func HasStrong(s string) bool {
	return Detect(s) != Neutral
}
