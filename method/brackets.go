package method

import "github.com/npillmayer/pseudoloc/message"

// Brackets is a method which encloses a message in square brackets. Missing
// brackets in a user interface reveal truncated text, and brackets in the
// middle of a sentence reveal messages built by concatenation.
type Brackets struct{}

// Name is part of interface Method.
func (Brackets) Name() string {
	return "brackets"
}

// Apply is part of interface Method. Empty messages are not bracketed.
func (b Brackets) Apply(msg message.Message) (message.Message, error) {
	if err := check(b.Name(), msg); err != nil {
		return nil, err
	}
	if msg.Len() == 0 {
		return message.New(msg...), nil
	}
	out := make(message.Message, 0, len(msg)+2)
	out = append(out, message.Text("["))
	out = append(out, msg...)
	out = append(out, message.Text("]"))
	return out, nil
}
