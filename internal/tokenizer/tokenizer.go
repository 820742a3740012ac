// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

// Package tokenizer turns a raw address into classified tokens. It depends
// only on the lexer.LexicalRules contract, never on a concrete ruleset.
package tokenizer

import (
	"regexp"
	"strings"

	"github.com/TFMV/AddressLexer/internal/lexer"
)

// Kind names a grammar fragment that tokens are classified against.
type Kind struct {
	Name    string
	Pattern string
}

// Token is one cleaned token plus the names of every fragment it matches
// in full. A token can carry several kinds; "12A" is both a number with
// suffix and a unit number.
type Token struct {
	Text  string   `json:"text"`
	Kinds []string `json:"kinds,omitempty"`
}

type compiledKind struct {
	name string
	re   *regexp.Regexp
}

// Tokenizer splits cleaned sentences into tokens, runs the join pass, and
// classifies the result. Safe for concurrent use once constructed.
type Tokenizer struct {
	rules lexer.LexicalRules
	kinds []compiledKind
}

// New builds a Tokenizer over the given ruleset. Kinds are classified in
// the order supplied; a malformed fragment panics at construction.
func New(rules lexer.LexicalRules, kinds []Kind) *Tokenizer {
	t := &Tokenizer{rules: rules}
	for _, k := range kinds {
		t.kinds = append(t.kinds, compiledKind{
			name: k.Name,
			re:   regexp.MustCompile(`\A(?:` + k.Pattern + `)\z`),
		})
	}
	return t
}

// Tokenize runs the full pass over raw address text: clean, strip postal
// junk, split on spaces, fuse adjacent tokens under the join rules, and
// classify each surviving token.
func (t *Tokenizer) Tokenize(raw string) []Token {
	cleaned := t.rules.CleanSentence(raw)
	final := t.rules.RunSpecialRules(cleaned)
	return t.TokenizeCleaned(final)
}

// TokenizeCleaned tokenizes text that has already been through the
// cleaning and special passes.
func (t *Tokenizer) TokenizeCleaned(cleaned string) []Token {
	words := strings.Fields(cleaned)
	words = lexer.JoinTokens(t.rules.JoinRules(), words)

	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, Token{Text: w, Kinds: t.classify(w)})
	}
	return tokens
}

func (t *Tokenizer) classify(word string) []string {
	var kinds []string
	for _, k := range t.kinds {
		if k.re.MatchString(word) {
			kinds = append(kinds, k.name)
		}
	}
	return kinds
}
