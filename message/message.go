package message

import (
	"fmt"
	"strings"
)

// Kind tells translatable fragments from fixed ones. The zero value is not
// a valid kind.
type Kind uint8

const (
	invalid Kind = iota
	// Translatable fragments are subject to pseudolocalization.
	Translatable
	// Fixed fragments have to survive pseudolocalization unchanged.
	Fixed
)

func (k Kind) String() string {
	switch k {
	case Translatable:
		return "text"
	case Fixed:
		return "fixed"
	}
	return "invalid"
}

// Fragment is a segment of a message, either translatable or fixed.
// Fragments are values and immutable. The zero Fragment is invalid.
type Fragment struct {
	kind Kind
	text string
}

// Text creates a translatable fragment.
func Text(s string) Fragment {
	return Fragment{kind: Translatable, text: s}
}

// NewFixed creates a fixed fragment.
func NewFixed(s string) Fragment {
	return Fragment{kind: Fixed, text: s}
}

// Kind returns the kind of a fragment.
func (f Fragment) Kind() Kind {
	return f.kind
}

// Text returns the text of a fragment.
func (f Fragment) Text() string {
	return f.text
}

// IsTranslatable is true for fragments created by Text.
func (f Fragment) IsTranslatable() bool {
	return f.kind == Translatable
}

// IsFixed is true for fragments created by NewFixed.
func (f Fragment) IsFixed() bool {
	return f.kind == Fixed
}

// Valid is false for zero fragments.
func (f Fragment) Valid() bool {
	return f.kind == Translatable || f.kind == Fixed
}

// WithText returns a fragment of the same kind as f, carrying text s.
func (f Fragment) WithText(s string) Fragment {
	return Fragment{kind: f.kind, text: s}
}

func (f Fragment) String() string {
	return fmt.Sprintf("%s(%q)", f.kind, f.text)
}

// --- Messages ----------------------------------------------------------

// Message is an ordered sequence of fragments. Clients must not modify a
// message after handing it over to a pseudolocalization method.
type Message []Fragment

// FromString creates a message consisting of a single translatable fragment.
func FromString(s string) Message {
	return Message{Text(s)}
}

// New creates a message from a list of fragments. The fragments are copied.
func New(frags ...Fragment) Message {
	m := make(Message, len(frags))
	copy(m, frags)
	return m
}

// String concatenates the texts of all fragments, in order.
func (m Message) String() string {
	var b strings.Builder
	for _, f := range m {
		b.WriteString(f.text)
	}
	return b.String()
}

// Len returns the byte length of the concatenated text.
func (m Message) Len() int {
	l := 0
	for _, f := range m {
		l += len(f.text)
	}
	return l
}

// Translatable returns the texts of all translatable fragments, in order.
func (m Message) Translatable() []string {
	var texts []string
	for _, f := range m {
		if f.IsTranslatable() {
			texts = append(texts, f.text)
		}
	}
	return texts
}

// Fixed returns the texts of all fixed fragments, in order.
func (m Message) Fixed() []string {
	var texts []string
	for _, f := range m {
		if f.IsFixed() {
			texts = append(texts, f.text)
		}
	}
	return texts
}

// Dump is a debugging helper.
func (m Message) Dump() string {
	parts := make([]string, len(m))
	for i, f := range m {
		parts[i] = f.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
