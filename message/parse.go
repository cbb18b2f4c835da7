package message

import "strings"

// Parse splits a raw message string into translatable and fixed fragments.
// The following constructs are recognized as fixed text:
//
//   <a href="...">, </a>, <br/>, <!-- -->    markup tags
//   &amp; &#233; &#xE9;                       character entities
//   {{ .Count }}                              template actions
//   {0}, {name}, {n, plural, one {#} ...}     message format placeholders
//   %s, %5.2f, %[1]d, %%                      printf verbs
//
// Everything else is translatable. Constructs which are not terminated are
// taken as plain text. Concatenating the fragments of the result restores s.
func Parse(s string) Message {
	return ParseWithDelims(s, "", "")
}

// ParseWithDelims is like Parse, but template actions are delimited by left
// and right instead of "{{" and "}}", as with text/template's Delims.
// Empty delimiters select the defaults.
func ParseWithDelims(s, left, right string) Message {
	if left == "" {
		left = "{{"
	}
	if right == "" {
		right = "}}"
	}
	var m Message
	text := 0 // start of pending translatable text
	i := 0
	for i < len(s) {
		n := 0
		if strings.HasPrefix(s[i:], left) {
			n = scanAction(s[i:], left, right)
		}
		if n == 0 {
			switch s[i] {
			case '<':
				n = scanTag(s[i:])
			case '&':
				n = scanEntity(s[i:])
			case '{':
				if strings.HasPrefix(s[i:], "{{") { // no action here, and no placeholder
					i += 2
					continue
				}
				n = scanPlaceholder(s[i:])
			case '%':
				n = scanVerb(s[i:])
			}
		}
		if n == 0 {
			i++
			continue
		}
		if i > text {
			m = append(m, Text(s[text:i]))
		}
		m = append(m, NewFixed(s[i:i+n]))
		i += n
		text = i
	}
	if text < len(s) || len(m) == 0 {
		m = append(m, Text(s[text:]))
	}
	tracer().Debugf("parsed message %s", m.Dump())
	return m
}

// scanTag returns the length of a markup tag at the start of s, or 0.
func scanTag(s string) int {
	if len(s) < 3 {
		return 0
	}
	if strings.HasPrefix(s, "<!--") {
		if end := strings.Index(s[4:], "-->"); end >= 0 {
			return 4 + end + 3
		}
		return 0
	}
	c := s[1]
	if !(isASCIILetter(c) || c == '/' || c == '!' || c == '?') {
		return 0
	}
	end := strings.IndexAny(s[1:], "<>")
	if end < 0 || s[1+end] != '>' {
		return 0
	}
	return 1 + end + 1
}

// scanEntity returns the length of a character entity at the start of s, or 0.
func scanEntity(s string) int {
	i := 1
	if i < len(s) && s[i] == '#' {
		i++
		hex := false
		if i < len(s) && (s[i] == 'x' || s[i] == 'X') {
			hex = true
			i++
		}
		start := i
		for i < len(s) && (isDigit(s[i]) || hex && isHexLetter(s[i])) {
			i++
		}
		if i == start {
			return 0
		}
	} else {
		if i >= len(s) || !isASCIILetter(s[i]) {
			return 0
		}
		for i < len(s) && (isASCIILetter(s[i]) || isDigit(s[i])) {
			i++
		}
	}
	if i < len(s) && s[i] == ';' {
		return i + 1
	}
	return 0
}

// scanAction returns the length of a template action left ... right, or 0.
func scanAction(s, left, right string) int {
	if end := strings.Index(s[len(left):], right); end >= 0 {
		return len(left) + end + len(right)
	}
	return 0
}

// scanPlaceholder returns the length of a brace-balanced placeholder, or 0.
func scanPlaceholder(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				if i == 1 {
					return 0 // "{}" is no placeholder
				}
				return i + 1
			}
		}
	}
	return 0
}

// scanVerb returns the length of a printf verb at the start of s, or 0.
func scanVerb(s string) int {
	if len(s) < 2 {
		return 0
	}
	if s[1] == '%' {
		return 2
	}
	i := 1
	for i < len(s) && strings.IndexByte("+-#0", s[i]) >= 0 {
		i++
	}
	if i < len(s) && s[i] == '[' { // explicit argument index
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j == i+1 || j >= len(s) || s[j] != ']' {
			return 0
		}
		i = j + 1
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && isASCIILetter(s[i]) {
		return i + 1
	}
	return 0
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexLetter(c byte) bool {
	return 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
