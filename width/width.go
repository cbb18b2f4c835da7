package width

import (
	"fmt"
	"unicode"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
	xwidth "golang.org/x/text/width"
)

// Category is one of 6 char categories as defined in UAX#11.
type Category int8

// East_Asian_Width properties
const (
	N  Category = iota // Neutral (Not East Asian)
	A                  // East Asian Ambiguous
	W                  // East Asian Wide
	Na                 // East Asian Narrow
	H                  // East Asian Halfwidth
	F                  // East Asian Fullwidth
)

func (c Category) String() string {
	switch c {
	case A:
		return "A"
	case W:
		return "W"
	case Na:
		return "Na"
	case H:
		return "H"
	case F:
		return "F"
	}
	return "N"
}

// WidthCategory returns the width category of a single rune as proposed by the UAX#11
// standard.
//
// Returns one of N, A, Na, W, H, F.
func WidthCategory(r rune) Category {
	switch xwidth.LookupRune(r).Kind() {
	case xwidth.EastAsianAmbiguous:
		return A
	case xwidth.EastAsianWide:
		return W
	case xwidth.EastAsianNarrow:
		return Na
	case xwidth.EastAsianHalfwidth:
		return H
	case xwidth.EastAsianFullwidth:
		return F
	}
	if unicode.Is(_CJK_Default_W, r) {
		return W
	}
	// UAX#11:
	//  - All code points, assigned or unassigned, that are not listed
	//      explicitly are given the value "N".
	return N
}

// Context represents information about the typesetting environment.
//
// From UAX#11:
// The term context as used here includes extra information such as explicit
// markup, knowledge of the source code page, font information, or language and
// script identification
type Context struct {
	ForceEastAsian bool            // force East Asian context
	Script         language.Script // ISO 15924 script identifier
	Locale         string          // ISO 639/3166 locale string
	resolve        resolver
}

// EastAsianContext is a context for East Asian languages.
var EastAsianContext = makeEastAsianContext()

// LatinContext is a context for western languages.
var LatinContext = makeLatinContext()

func makeEastAsianContext() *Context {
	return &Context{
		ForceEastAsian: true,
		Script:         language.MustParseScript("Hant"),
		Locale:         "zh-Hant",
		resolve:        resolveToWide,
	}
}

func makeLatinContext() *Context {
	return &Context{
		ForceEastAsian: false,
		Script:         language.MustParseScript("Latn"),
		Locale:         "en-US",
		resolve:        resolveToNarrow,
	}
}

// resolver decides on ambiguous width categories.
type resolver func(Category) Category

func resolveToNarrow(cat Category) Category {
	if cat == A {
		return Na
	}
	return cat
}

func resolveToWide(cat Category) Category {
	if cat == A {
		return W
	}
	return cat
}

func findResolver(script language.Script, lang language.Tag) resolver {
	if isEastAsianScript(script) {
		return resolveToWide
	}
	_, _, confidence := eaMatch.Match(lang)
	if confidence == language.No {
		return resolveToNarrow
	}
	return resolveToWide
}

func isEastAsianScript(script language.Script) bool {
	switch script.String() {
	case
		// East Asian
		"Bopo", "Hanb", "Hani", "Hans",
		"Hant", "Hang", "Hira", "Kana",
		"Lana", "Kitl", "Kits", "Nkdb",
		"Nkgb", "Plrd",
		// South East Asian
		"Batk", "Beng", "Bugi", "Mymr",
		"Cham", "Java", "Khmr", "Laoo",
		"Lisu", "Mtei", "Thai", "Yiii",
		"Bali", "Khar", "Rjng", "Roro",
		"Tglg", "Wole", "Buhd", "Tagb":
		return true
	}
	return false
}

var eaMatch = language.NewMatcher([]language.Tag{
	language.Chinese, // The first language is used as fallback.
	language.Japanese,
	language.Korean,
	language.Vietnamese,
	language.Thai,
	language.Mongolian,
	language.Burmese,
	language.Khmer,
})

// ContextForLocale creates a context for an IETF locale string, e.g. "ja-JP".
// An unparsable locale results in a Latin context for that locale.
func ContextForLocale(locale string) *Context {
	lang, err := language.Parse(locale)
	if err != nil {
		T().Infof("width: cannot parse locale %q: %v", locale, err)
		ctx := makeLatinContext()
		ctx.Locale = locale
		return ctx
	}
	script, _ := lang.Script()
	res := findResolver(script, lang)
	ctx := &Context{
		Script:  script,
		Locale:  locale,
		resolve: res,
	}
	T().Debugf("width: created %v", ctx)
	return ctx
}

// ContextFromEnvironment creates a context for the user's locale as reported by
// the operating system. If no locale can be detected, "en-US" is assumed.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf("width: %v", err)
		userLocale = "en-US"
		T().Infof("width sets default user locale %v", userLocale)
	} else {
		T().Infof("width detected user locale %v", userLocale)
	}
	return ContextForLocale(userLocale)
}

// resolver returns the resolver for ambiguous widths. Contexts created by
// clients have none and derive it from Script and Locale.
func (ctx *Context) resolver() resolver {
	if ctx.resolve != nil {
		return ctx.resolve
	}
	if ctx.Locale != "" {
		if lang, err := language.Parse(ctx.Locale); err == nil {
			script := ctx.Script
			if script == (language.Script{}) {
				script, _ = lang.Script()
			}
			return findResolver(script, lang)
		}
	}
	if isEastAsianScript(ctx.Script) {
		return resolveToWide
	}
	return resolveToNarrow
}

func (ctx *Context) category(r rune) Category {
	cat := WidthCategory(r)
	if ctx.ForceEastAsian {
		return resolveToWide(cat)
	}
	return ctx.resolver()(cat)
}

func (ctx *Context) String() string {
	return fmt.Sprintf("width.Context[%s, %q, east-asian=%v]", ctx.Script, ctx.Locale, ctx.ForceEastAsian)
}

// RuneWidth returns the width of a rune in terms of `en`s.
// Non-spacing marks, enclosing marks, format characters (including bidi controls)
// and control characters have width 0.
//
// If a nil context is given, LatinContext is assumed.
//
// Returns either 0, 1 (narrow character) or 2 (wide character).
func RuneWidth(r rune, context *Context) int {
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Cc) {
		return 0
	}
	if context == nil {
		context = LatinContext
	}
	switch context.category(r) {
	case W, F:
		return 2
	}
	return 1
}

// StringWidth returns the width of a string in terms of `en`s.
// Invalid bytes count as a narrow replacement character.
//
// If a nil context is given, LatinContext is assumed.
func StringWidth(s string, context *Context) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r, context)
	}
	return w
}

// ---------------------------------------------------------------------------

// UAX#11:
//  - The unassigned code points in the following blocks default to "W":
//         CJK Unified Ideographs Extension A: U+3400..U+4DBF
//         CJK Unified Ideographs:             U+4E00..U+9FFF
//         CJK Compatibility Ideographs:       U+F900..U+FAFF
//  - All undesignated code points in Planes 2 and 3, whether inside or
//      outside of allocated blocks, default to "W":
//         Plane 2:                            U+20000..U+2FFFD
//         Plane 3:                            U+30000..U+3FFFD
var _CJK_Default_W = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x3400, 0x4dbf, 1},
		{0x4e00, 0x9fff, 1},
		{0xf900, 0xfaff, 1},
	},
	R32: []unicode.Range32{
		{0x20000, 0x2fffd, 1},
		{0x30000, 0x3fffd, 1},
	},
}
