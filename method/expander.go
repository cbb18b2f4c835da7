package method

import (
	"strings"

	"github.com/npillmayer/pseudoloc"
	"github.com/npillmayer/pseudoloc/message"
	"github.com/npillmayer/pseudoloc/width"
)

// Expander is a method which lengthens messages. Translations are often
// considerably longer than English source text, short texts more so than long
// ones. Expander appends padding words to the last translatable fragment of a
// message, growing its display width by
//
//   up to 10 en    100 %
//   up to 20 en     80 %
//   up to 30 en     60 %
//   up to 50 en     40 %
//   longer          30 %
//
// Widths are measured in the width context of the Expander; a nil Context
// means width.LatinContext. Messages without letters are not expanded.
type Expander struct {
	Context *width.Context
}

// Name is part of interface Method.
func (Expander) Name() string {
	return "expander"
}

// Apply is part of interface Method.
func (e Expander) Apply(msg message.Message) (message.Message, error) {
	if err := check(e.Name(), msg); err != nil {
		return nil, err
	}
	out := message.New(msg...)
	last, w, letters := -1, 0, false
	for i, f := range msg {
		if f.IsTranslatable() {
			last = i
			w += width.StringWidth(f.Text(), e.Context)
			letters = letters || pseudoloc.HasLetters(f.Text())
		}
	}
	if !letters {
		return out, nil
	}
	padding := Padding(ExpansionFor(w))
	T().Debugf("expander: width %d, padding %q", w, padding)
	out[last] = out[last].WithText(out[last].Text() + padding)
	return out, nil
}

// ExpansionFor returns the extra width, in en, for a text of width w.
func ExpansionFor(w int) int {
	var percent int
	switch {
	case w <= 10:
		percent = 100
	case w <= 20:
		percent = 80
	case w <= 30:
		percent = 60
	case w <= 50:
		percent = 40
	default:
		percent = 30
	}
	return (w*percent + 99) / 100
}

var paddingWords = [...]string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
}

// Padding returns a padding text of exactly n ASCII characters, made up of a
// leading space and a cycle of number words.
func Padding(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(n + 8)
	for i := 0; b.Len() < n; i++ {
		b.WriteByte(' ')
		b.WriteString(paddingWords[i%len(paddingWords)])
	}
	return b.String()[:n]
}
