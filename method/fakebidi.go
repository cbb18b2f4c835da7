package method

import (
	"strings"

	"github.com/npillmayer/pseudoloc"
	"github.com/npillmayer/pseudoloc/message"
)

// Unicode bidi controls used to fake right-to-left text.
const (
	RLM = '\u200f' // RIGHT-TO-LEFT MARK
	RLO = '\u202e' // RIGHT-TO-LEFT OVERRIDE
	PDF = '\u202c' // POP DIRECTIONAL FORMATTING
)

const (
	wordPrefix = string(RLM) + string(RLO)
	wordSuffix = string(PDF) + string(RLM)
)

// FakeBidi is a method which makes left-to-right text render as if it was
// written in a right-to-left script. See the package documentation.
type FakeBidi struct{}

// Name is part of interface Method.
func (FakeBidi) Name() string {
	return "fakebidi"
}

// Apply is part of interface Method.
func (fb FakeBidi) Apply(msg message.Message) (message.Message, error) {
	return mapText(fb.Name(), msg, fakeBidi)
}

func fakeBidi(text string) (string, error) {
	if !pseudoloc.HasLetters(text) {
		return text, nil
	}
	var b strings.Builder
	b.Grow(len(text) + 8*len(wordPrefix))
	err := pseudoloc.Tokenize(text, func(tok pseudoloc.Token) {
		if tok.Word {
			b.WriteString(wordPrefix)
			b.WriteString(tok.Text)
			b.WriteString(wordSuffix)
		} else {
			b.WriteString(tok.Text)
		}
	})
	if err != nil {
		return "", err
	}
	T().Debugf("fakebidi: %q -> %q", text, b.String())
	return b.String(), nil
}
