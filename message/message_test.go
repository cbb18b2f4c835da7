package message

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestFragmentKinds(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	txt, fix := Text("Hello"), NewFixed("<b>")
	if !txt.IsTranslatable() || txt.IsFixed() || !txt.Valid() {
		t.Errorf("expected %v to be a valid translatable fragment", txt)
	}
	if !fix.IsFixed() || fix.IsTranslatable() || !fix.Valid() {
		t.Errorf("expected %v to be a valid fixed fragment", fix)
	}
	var zero Fragment
	if zero.Valid() {
		t.Errorf("zero fragment must not be valid")
	}
	if w := fix.WithText("<i>"); !w.IsFixed() || w.Text() != "<i>" {
		t.Errorf("WithText changed kind or lost text: %v", w)
	}
	if fix.Text() != "<b>" {
		t.Errorf("WithText modified the original fragment")
	}
}

func TestMessageConcatenation(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	m := New(NewFixed("<a>"), Text("Google"), Text(""), NewFixed("</a>"))
	if m.String() != "<a>Google</a>" {
		t.Errorf("unexpected concatenation: %q", m.String())
	}
	if m.Len() != len("<a>Google</a>") {
		t.Errorf("unexpected length %d", m.Len())
	}
	if tt := m.Translatable(); len(tt) != 2 || tt[0] != "Google" {
		t.Errorf("unexpected translatable texts %q", tt)
	}
	if ff := m.Fixed(); len(ff) != 2 || ff[1] != "</a>" {
		t.Errorf("unexpected fixed texts %q", ff)
	}
	if FromString("").String() != "" {
		t.Errorf("empty message should concatenate to empty string")
	}
}

func TestNewCopiesFragments(t *testing.T) {
	frags := []Fragment{Text("a"), Text("b")}
	m := New(frags...)
	frags[0] = NewFixed("x")
	if m[0].Text() != "a" {
		t.Errorf("New must not share its argument slice")
	}
}

func TestParse(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var tests = []struct {
		input string
		fixed []string
	}{
		{"Hello World", nil},
		{`<a href="http://google.com/">Google</a>`, []string{`<a href="http://google.com/">`, "</a>"}},
		{"Hello {name}, you have {0} messages", []string{"{name}", "{0}"}},
		{"{count, plural, one {# item} other {# items}} left", []string{"{count, plural, one {# item} other {# items}}"}},
		{"You have {{ .Count }} unread", []string{"{{ .Count }}"}},
		{"%d files (%5.2f%%), %[1]s", []string{"%d", "%5.2f", "%%", "%[1]s"}},
		{"Fish &amp; chips &#233; &#xE9;", []string{"&amp;", "&#233;", "&#xE9;"}},
		{"50% off, a < b > c", nil},
		{"unterminated {brace and <tag", nil},
		{"<!-- note -->Text<br/>", []string{"<!-- note -->", "<br/>"}},
		{"empty {} braces", nil},
	}
	for i, test := range tests {
		m := Parse(test.input)
		if m.String() != test.input {
			t.Errorf("test #%d: parse does not restore input, have %q", i, m.String())
		}
		fixed := m.Fixed()
		if len(fixed) != len(test.fixed) {
			t.Errorf("test #%d: expected fixed %q, have %q", i, test.fixed, fixed)
			continue
		}
		for j := range fixed {
			if fixed[j] != test.fixed[j] {
				t.Errorf("test #%d: expected fixed %q, have %q", i, test.fixed[j], fixed[j])
			}
		}
		for _, f := range m {
			if !f.Valid() {
				t.Errorf("test #%d: parse produced invalid fragment", i)
			}
		}
	}
}

func TestParseEmpty(t *testing.T) {
	m := Parse("")
	if len(m) != 1 || !m[0].IsTranslatable() || m[0].Text() != "" {
		t.Errorf("expected single empty translatable fragment, have %s", m.Dump())
	}
}

func TestParseOnlyFixed(t *testing.T) {
	m := Parse("{0}")
	if len(m) != 1 || !m[0].IsFixed() {
		t.Errorf("expected single fixed fragment, have %s", m.Dump())
	}
}

func TestParseWithDelims(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var tests = []struct {
		input, left, right string
		fixed              []string
	}{
		{"Hello <<.Name>>", "<<", ">>", []string{"<<.Name>>"}},
		{"<<.Count>> new in <b>[[.Box]]</b>", "[[", "]]", []string{"<b>", "[[.Box]]", "</b>"}},
		{"Hi {{.Name}}, [[.Name]]", "[[", "]]", []string{"[[.Name]]"}},
		{"Hi {{.Name}}", "", "", []string{"{{.Name}}"}},
		{"open <<.Name", "<<", ">>", nil},
	}
	for i, test := range tests {
		m := ParseWithDelims(test.input, test.left, test.right)
		if m.String() != test.input {
			t.Errorf("test #%d: parse does not restore input, have %q", i, m.String())
		}
		fixed := m.Fixed()
		if len(fixed) != len(test.fixed) {
			t.Errorf("test #%d: expected fixed %q, have %q", i, test.fixed, fixed)
			continue
		}
		for j := range fixed {
			if fixed[j] != test.fixed[j] {
				t.Errorf("test #%d: expected fixed %q, have %q", i, test.fixed[j], fixed[j])
			}
		}
	}
}
