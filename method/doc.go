/*
Package method implements pseudolocalization methods.

A method transforms a message into a new message. Methods rewrite
translatable fragments only; fixed fragments are handed through unchanged
and stay in place. Methods are stateless and may be shared between
goroutines.

Available methods are

   FakeBidi    make text render right-to-left, keeping words readable
   Accents     replace ASCII letters by accented look-alikes
   Brackets    enclose a message in [ and ]
   Expander    lengthen a message by padding words

Fake Bidi

Method FakeBidi wraps every word of translatable text with Unicode bidi
control characters:

   RLM RLO word PDF RLM

where RLM is U+200F RIGHT-TO-LEFT MARK, RLO is U+202E RIGHT-TO-LEFT OVERRIDE
and PDF is U+202C POP DIRECTIONAL FORMATTING. Renderers will display the
words of a message in right-to-left order, each word with its letters
mirrored, very much as if the message had been translated to a
right-to-left language. Digits, punctuation and whitespace are not wrapped.

Words are runs of letters within a single fragment. A word interrupted by a
fixed fragment is wrapped as two words.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package method

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
