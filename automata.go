package pseudoloc

import (
	"context"
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	pool "github.com/jolestar/go-commons-pool"
)

// ErrInvalidUTF8 is returned when text to tokenize is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("pseudoloc: text is not valid UTF-8")

// Token is a piece of text as emitted by the tokenizer. Word tokens are
// maximal runs of letters, all other tokens are runs of non-letters.
type Token struct {
	Text string
	Word bool
}

func (tok Token) String() string {
	if tok.Word {
		return fmt.Sprintf("<word %q>", tok.Text)
	}
	return fmt.Sprintf("<%q>", tok.Text)
}

// StateFn represents a state of the tokenizing automaton. A StateFn consumes
// a single rune and returns the StateFn to process the next rune with.
//
// The Scanner carrying the state function is handed in as the first
// argument. State functions find the byte position of the rune in
// Scanner.Pos().
type StateFn func(*Scanner, rune) StateFn

// A Scanner runs an automaton of StateFns over a string and emits tokens.
// Scanners are short-lived and pooled; clients usually call Tokenize
// instead of handling Scanners themselves.
type Scanner struct {
	input  string      // text to tokenize
	start  int         // byte position of the current run
	pos    int         // byte position of the rune being processed
	inWord bool        // is the current run a word?
	emit   func(Token) // receiver for tokens
	next   StateFn     // next step of the automaton
}

// Pos returns the byte position of the rune currently processed.
func (sc *Scanner) Pos() int {
	return sc.pos
}

// IsLetter classifies a rune as a letter, i.e. a member of Unicode general
// category L. Accented and non-Latin letters are letters; digits,
// punctuation, whitespace, symbols and combining marks are not.
func IsLetter(r rune) bool {
	return unicode.IsLetter(r)
}

// --- State functions ---------------------------------------------------

func outside(sc *Scanner, r rune) StateFn {
	if IsLetter(r) {
		sc.flush()
		sc.inWord = true
		return inside
	}
	return outside
}

func inside(sc *Scanner, r rune) StateFn {
	if IsLetter(r) {
		return inside
	}
	sc.flush()
	sc.inWord = false
	return outside
}

// flush emits the run between start and the current position, if any.
func (sc *Scanner) flush() {
	if sc.pos > sc.start {
		tok := Token{Text: sc.input[sc.start:sc.pos], Word: sc.inWord}
		sc.emit(tok)
	}
	sc.start = sc.pos
}

func (sc *Scanner) run() {
	sc.next = outside
	for i, r := range sc.input {
		sc.pos = i
		sc.next = sc.next(sc, r)
	}
	sc.pos = len(sc.input)
	sc.flush() // implicit close at end of input
}

// --- Tokenizing --------------------------------------------------------

// Tokenize splits text into word and non-word tokens and calls emit for
// each of them, in order. Concatenating the texts of all emitted tokens
// restores text exactly. An empty text emits nothing.
//
// Tokenize returns ErrInvalidUTF8 without emitting anything if text is not
// valid UTF-8.
func Tokenize(text string, emit func(Token)) error {
	if !utf8.ValidString(text) {
		return ErrInvalidUTF8
	}
	if text == "" {
		return nil
	}
	sc := borrowScanner(text, emit)
	defer sc.releaseIntoPool()
	sc.run()
	return nil
}

// Tokens returns the tokens of text as a slice.
func Tokens(text string) ([]Token, error) {
	var toks []Token
	err := Tokenize(text, func(tok Token) {
		toks = append(toks, tok)
	})
	return toks, err
}

// HasLetters is a predicate to check whether a text contains at least one letter.
func HasLetters(text string) bool {
	for _, r := range text {
		if IsLetter(r) {
			return true
		}
	}
	return false
}

// --- Pooling -----------------------------------------------------------

// Scanners are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type scannerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScannerPool *scannerPool

func init() {
	globalScannerPool = &scannerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Scanner{}, nil
		})
	globalScannerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScannerPool.opool = pool.NewObjectPool(globalScannerPool.ctx, factory, config)
}

func borrowScanner(input string, emit func(Token)) *Scanner {
	var sc *Scanner
	if o, err := globalScannerPool.opool.BorrowObject(globalScannerPool.ctx); err == nil {
		sc = o.(*Scanner)
	} else {
		CT().Errorf("scanner pool: %v", err)
		sc = &Scanner{}
	}
	sc.input = input
	sc.emit = emit
	return sc
}

// Clears the Scanner and puts it back into the pool.
func (sc *Scanner) releaseIntoPool() {
	sc.input = ""
	sc.start, sc.pos = 0, 0
	sc.inWord = false
	sc.emit = nil
	sc.next = nil
	_ = globalScannerPool.opool.ReturnObject(globalScannerPool.ctx, sc)
}
