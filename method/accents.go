package method

import (
	"strings"

	"github.com/npillmayer/pseudoloc/message"
)

// Accents is a method which replaces ASCII letters by accented versions of
// the same letter. Every replacement is a precomposed character whose
// canonical decomposition starts with the original letter, so text stays
// readable. 'q' and 'Q' have no precomposed accented forms and are kept.
type Accents struct{}

// Name is part of interface Method.
func (Accents) Name() string {
	return "accents"
}

// Apply is part of interface Method.
func (a Accents) Apply(msg message.Message) (message.Message, error) {
	return mapText(a.Name(), msg, func(text string) (string, error) {
		return strings.Map(accented, text), nil
	})
}

func accented(r rune) rune {
	if r < 'A' || r > 'z' {
		return r
	}
	if acc, ok := accentTable[r]; ok {
		return acc
	}
	return r
}

var accentTable = map[rune]rune{
	'a': '\u00e5', // å
	'b': '\u1e03', // ḃ
	'c': '\u00e7', // ç
	'd': '\u1e0b', // ḋ
	'e': '\u00e9', // é
	'f': '\u1e1f', // ḟ
	'g': '\u011d', // ĝ
	'h': '\u0125', // ĥ
	'i': '\u00ee', // î
	'j': '\u0135', // ĵ
	'k': '\u0137', // ķ
	'l': '\u013c', // ļ
	'm': '\u1e41', // ṁ
	'n': '\u00f1', // ñ
	'o': '\u00f6', // ö
	'p': '\u1e57', // ṗ
	'r': '\u0155', // ŕ
	's': '\u0161', // š
	't': '\u0163', // ţ
	'u': '\u00fb', // û
	'v': '\u1e7d', // ṽ
	'w': '\u0175', // ŵ
	'x': '\u1e8b', // ẋ
	'y': '\u00fd', // ý
	'z': '\u017e', // ž
	'A': '\u00c5', // Å
	'B': '\u1e02', // Ḃ
	'C': '\u00c7', // Ç
	'D': '\u1e0a', // Ḋ
	'E': '\u00c9', // É
	'F': '\u1e1e', // Ḟ
	'G': '\u011c', // Ĝ
	'H': '\u0124', // Ĥ
	'I': '\u00ce', // Î
	'J': '\u0134', // Ĵ
	'K': '\u0136', // Ķ
	'L': '\u013b', // Ļ
	'M': '\u1e40', // Ṁ
	'N': '\u00d1', // Ñ
	'O': '\u00d6', // Ö
	'P': '\u1e56', // Ṗ
	'R': '\u0154', // Ŕ
	'S': '\u0160', // Š
	'T': '\u0162', // Ţ
	'U': '\u00db', // Û
	'V': '\u1e7c', // Ṽ
	'W': '\u0174', // Ŵ
	'X': '\u1e8a', // Ẋ
	'Y': '\u00dd', // Ý
	'Z': '\u017d', // Ž
}
