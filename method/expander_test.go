package method

import (
	"strings"
	"testing"

	"github.com/npillmayer/pseudoloc/message"
	"github.com/npillmayer/pseudoloc/width"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestExpansionFor(t *testing.T) {
	var tests = []struct {
		w, extra int
	}{
		{0, 0}, {1, 1}, {10, 10}, {11, 9}, {20, 16}, {25, 15}, {50, 20}, {100, 30}, {101, 31},
	}
	for _, test := range tests {
		if extra := ExpansionFor(test.w); extra != test.extra {
			t.Errorf("expected expansion for width %d to be %d, is %d", test.w, test.extra, extra)
		}
	}
}

func TestPadding(t *testing.T) {
	var tests = []struct {
		n       int
		padding string
	}{
		{0, ""},
		{-3, ""},
		{1, " "},
		{6, " one t"},
		{14, " one two three"},
	}
	for _, test := range tests {
		if p := Padding(test.n); p != test.padding {
			t.Errorf("expected padding(%d) = %q, have %q", test.n, test.padding, p)
		}
	}
	if len(Padding(200)) != 200 {
		t.Errorf("long padding has wrong length")
	}
}

func TestExpander(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var tests = []struct {
		input, expected string
	}{
		{"", ""},
		{"123", "123"},
		{"Hello", "Hello one "},
		{"Save", "Save one"},
	}
	for _, test := range tests {
		result := applyString(t, Expander{}, test.input)
		if result != test.expected {
			t.Errorf("expected %q -> %q, have %q", test.input, test.expected, result)
		}
	}
}

func TestExpanderEastAsian(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	result := applyString(t, Expander{Context: width.EastAsianContext}, "東京")
	if result != "東京 one" {
		t.Errorf("expected wide text to be expanded by width, have %q", result)
	}
}

func TestExpanderPadsLastTranslatable(t *testing.T) {
	msg := message.New(
		message.NewFixed("<p>"), message.Text("Open"),
		message.NewFixed("{file}"), message.Text("?"),
		message.NewFixed("</p>"))
	out, err := Expander{}.Apply(msg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out[3].Text(), "?") || len(out[3].Text()) != 1+5 {
		t.Errorf("expected padding of 5 after '?', have %q", out[3].Text())
	}
	if strings.Join(out.Fixed(), "") != "<p>{file}</p>" {
		t.Errorf("fixed fragments changed: %s", out.Dump())
	}
	if out[1].Text() != "Open" {
		t.Errorf("only the last translatable fragment should be padded")
	}
}
