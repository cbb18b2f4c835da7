package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/pseudoloc/pipeline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogTOML = `
HelloPerson = "Hello {{.Name}}"

[Unread]
description = "Number of unread emails"
one = "You have {{.Count}} unread email"
other = "You have {{.Count}} unread emails"
`

const catalogDelimsTOML = `
[Greeting]
leftDelim = "<<"
rightDelim = ">>"
other = "Hello <<.Name>>"
`

const catalogJSON = `{
  "Link": "<a href=\"/home\">Home</a>"
}`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	conf := &Config{Methods: defaultMethods, Locale: defaultLocale, TraceLevel: tracing.LevelError}
	cmd := newRootCmd(conf)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunArguments(t *testing.T) {
	out, err := execute(t, "", "run", "--methods", "fakebidi", "Hello 123 Goodbye!")
	require.NoError(t, err)
	assert.Equal(t, "\u200f\u202eHello\u202c\u200f 123 \u200f\u202eGoodbye\u202c\u200f!\n", out)
}

func TestRunStdin(t *testing.T) {
	out, err := execute(t, "a\nb\n", "run", "-m", "brackets")
	require.NoError(t, err)
	assert.Equal(t, "[a]\n[b]\n", out)
}

func TestRunParse(t *testing.T) {
	out, err := execute(t, "", "run", "-m", "accents", "--parse", "Hi <b>{name}</b>")
	require.NoError(t, err)
	assert.Equal(t, "Ĥî <b>{name}</b>\n", out)
}

func TestRunUnknownMethod(t *testing.T) {
	_, err := execute(t, "", "run", "-m", "klingon", "Hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, pipeline.ErrUnknownMethod)
}

func TestMethodsCommand(t *testing.T) {
	out, err := execute(t, "", "methods")
	require.NoError(t, err)
	assert.Contains(t, out, "fakebidi\n")
	assert.Contains(t, out, "psaccent")
	assert.Contains(t, out, "accents,expander,brackets")
}

func TestCatalogTOML(t *testing.T) {
	cat, err := readCatalog([]byte(catalogTOML), "active.en.toml")
	require.NoError(t, err)
	require.Len(t, cat.Messages, 2)
	assert.Equal(t, "toml", cat.Format)

	p := pipeline.MustBuild("brackets")
	pcat, err := pseudolocalize(cat, p, "en-XA")
	require.NoError(t, err)
	assert.Equal(t, "en-XA", pcat.Tag.String())

	data, err := pcat.encode()
	require.NoError(t, err)
	back, err := readCatalog(data, "active.en-XA.toml")
	require.NoError(t, err)
	forms := map[string]string{}
	for _, msg := range back.Messages {
		forms[msg.ID+"/one"] = msg.One
		forms[msg.ID+"/other"] = msg.Other
		if msg.ID == "Unread" {
			assert.Equal(t, "Number of unread emails", msg.Description)
		}
	}
	assert.Equal(t, "[Hello {{.Name}}]", forms["HelloPerson/other"])
	assert.Equal(t, "[You have {{.Count}} unread email]", forms["Unread/one"])
	assert.Equal(t, "[You have {{.Count}} unread emails]", forms["Unread/other"])
}

func TestCatalogKeepsPlaceholders(t *testing.T) {
	cat, err := readCatalog([]byte(catalogJSON), "active.en.json")
	require.NoError(t, err)
	p := pipeline.MustBuild("fakebidi")
	pcat, err := pseudolocalize(cat, p, "ar-XB")
	require.NoError(t, err)
	require.Len(t, pcat.Messages, 1)
	assert.Equal(t, "<a href=\"/home\">\u200f\u202eHome\u202c\u200f</a>", pcat.Messages[0].Other)
	assert.Equal(t, "<a href=\"/home\">Home</a>", cat.Messages[0].Other, "input catalog modified")
}

func TestCatalogInvalidLocale(t *testing.T) {
	cat, err := readCatalog([]byte(catalogJSON), "active.en.json")
	require.NoError(t, err)
	_, err = pseudolocalize(cat, pipeline.MustBuild("accents"), "not a locale!")
	assert.Error(t, err)
}

func TestCatalogCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "active.en.toml")
	require.NoError(t, os.WriteFile(in, []byte(catalogTOML), 0644))
	_, err := execute(t, "", "catalog", in, "-m", "accents", "--write", "--locale", "en-XA")
	require.NoError(t, err)
	outFile := filepath.Join(dir, "active.en-XA.toml")
	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	back, err := readCatalog(data, outFile)
	require.NoError(t, err)
	var hello string
	for _, msg := range back.Messages {
		if msg.ID == "HelloPerson" {
			hello = msg.Other
		}
	}
	assert.Equal(t, "Ĥéļļö {{.Name}}", hello)
}

func TestCatalogCustomDelimiters(t *testing.T) {
	cat, err := readCatalog([]byte(catalogDelimsTOML), "active.en.toml")
	require.NoError(t, err)
	require.Len(t, cat.Messages, 1)
	pcat, err := pseudolocalize(cat, pipeline.MustBuild("accents"), "en-XA")
	require.NoError(t, err)
	data, err := pcat.encode()
	require.NoError(t, err)
	back, err := readCatalog(data, "active.en-XA.toml")
	require.NoError(t, err)
	require.Len(t, back.Messages, 1)
	msg := back.Messages[0]
	assert.Equal(t, "<<", msg.LeftDelim)
	assert.Equal(t, ">>", msg.RightDelim)
	assert.Equal(t, "Ĥéļļö <<.Name>>", msg.Other)
}

func TestCatalogMeasuresInTargetLocale(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "active.en.toml")
	require.NoError(t, os.WriteFile(in, []byte("Omega = \"\u03a9\u03a9\"\n"), 0644))
	var tests = []struct {
		locale, expected string
	}{
		{"en-XA", "\u03a9\u03a9 o"},   // ambiguous width is narrow
		{"ja-XA", "\u03a9\u03a9 one"}, // ambiguous width is wide
	}
	for _, test := range tests {
		out, err := execute(t, "", "catalog", in, "-m", "expander", "--locale", test.locale)
		require.NoError(t, err)
		back, err := readCatalog([]byte(out), "active."+test.locale+".toml")
		require.NoError(t, err)
		require.Len(t, back.Messages, 1)
		assert.Equal(t, test.expected, back.Messages[0].Other, "locale %s", test.locale)
	}
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, filepath.Join("i18n", "active.en-XA.toml"), outputName("i18n/active.en.toml", "en-XA"))
	assert.Equal(t, "messages.ar-XB.json", outputName("messages.json", "ar-XB"))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(envMethods, "fakebidi")
	t.Setenv(envTrace, "debug")
	t.Setenv(envLocale, "")
	conf := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "fakebidi", conf.Methods)
	assert.Equal(t, defaultLocale, conf.Locale)
	assert.Equal(t, tracing.LevelDebug, conf.TraceLevel)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	t.Setenv(envMethods, "")
	os.Unsetenv(envMethods)
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("PSEUDOLOC_METHODS=psbidi\n"), 0644))
	conf := loadConfig(envFile)
	assert.Equal(t, "psbidi", conf.Methods)
}
