package method

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/pseudoloc/message"
)

// Method is a pseudolocalization method. Apply produces a new message from
// msg and must not modify msg. Fixed fragments of msg must appear in the
// result unchanged and in the same relative order.
type Method interface {
	Name() string
	Apply(msg message.Message) (message.Message, error)
}

// Errors wrapped by ProcessingError.
var (
	ErrInvalidFragment = errors.New("fragment is neither translatable nor fixed")
	ErrInvalidText     = errors.New("translatable text is not valid UTF-8")
)

// ProcessingError is returned by methods which cannot process a message.
// Index is the position of the offending fragment, or -1.
type ProcessingError struct {
	Method string
	Index  int
	Err    error
}

func (e *ProcessingError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("pseudoloc method %s: %v", e.Method, e.Err)
	}
	return fmt.Sprintf("pseudoloc method %s: fragment #%d: %v", e.Method, e.Index, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// check validates all fragments of a message.
func check(name string, msg message.Message) error {
	for i, f := range msg {
		if !f.Valid() {
			return &ProcessingError{Method: name, Index: i, Err: ErrInvalidFragment}
		}
		if f.IsTranslatable() && !utf8.ValidString(f.Text()) {
			return &ProcessingError{Method: name, Index: i, Err: ErrInvalidText}
		}
	}
	return nil
}

// mapText creates a new message by applying rewrite to the text of every
// translatable fragment of msg. Fixed fragments are copied.
func mapText(name string, msg message.Message, rewrite func(string) (string, error)) (message.Message, error) {
	if err := check(name, msg); err != nil {
		return nil, err
	}
	out := make(message.Message, len(msg))
	for i, f := range msg {
		if !f.IsTranslatable() {
			out[i] = f
			continue
		}
		text, err := rewrite(f.Text())
		if err != nil {
			return nil, &ProcessingError{Method: name, Index: i, Err: err}
		}
		out[i] = f.WithText(text)
	}
	return out, nil
}
