/*
Package pseudoloc is about pseudolocalization of user interface messages.

Description

Pseudolocalization simulates what translated text will look like in a user
interface, long before real translations are available. Translatable text
of a message is rewritten in ways that mimic the properties of foreign
languages: accented letters, longer words, or a right-to-left writing
direction. Developers running an application with pseudolocalized messages
will spot truncated labels, concatenated strings, hard-coded text
direction and other internationalization bugs early.

A message is made up of fragments (see sub-package message). Fragments are
either translatable text or fixed text, i.e. markup and placeholders which
have to survive pseudolocalization untouched. Messages are threaded through
a pipeline of methods (see sub-packages method and pipeline), each of which
rewrites translatable fragments only.

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

Base package pseudoloc provides the tokenizer shared by pseudolocalization
methods which operate on words. Words are maximal runs of letters, where a
letter is any code-point of Unicode general category L. Everything else
(digits, punctuation, whitespace, symbols) is passed through as non-word
tokens. No attempt is made at locale-aware word breaking: methods need a
reproducible policy, not a linguistically correct one.

Tokenizing is done by a small automaton. Every state of the automaton is a
function which consumes a rune and returns the function for the next
state, very much like the recognizers of UAX breaking algorithms.

   outside --letter-->     inside   (open a word)
   inside  --non-letter--> outside  (emit the word)
   inside  --letter-->     inside
   outside --non-letter--> outside

At end of input a word still open is emitted.
*/
package pseudoloc

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
