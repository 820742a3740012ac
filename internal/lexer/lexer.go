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

// Package lexer holds the rule primitives and the rule engine for the
// lexical normalization stage of the geocoding pipeline. Rule sets are
// built once at startup, are immutable afterwards, and every operation is
// a pure function of its input, so they are safe for concurrent use.
package lexer

import (
	"golang.org/x/text/unicode/norm"
)

// LexicalRules is the contract every jurisdiction or language ruleset
// satisfies. The tokenizer and the service depend only on this interface,
// never on a concrete ruleset.
type LexicalRules interface {
	// CleanSentence normalizes arbitrary free-form address text into the
	// canonical token stream. Total over any Unicode input.
	CleanSentence(raw string) string
	// RunSpecialRules strips postal-routing artifacts from an already
	// cleaned sentence and appends the postal junk sentinel when any were
	// found.
	RunSpecialRules(cleaned string) string
	// JoinRules returns the ordered token-join rules for the tokenizer.
	JoinRules() []JoinRule
}

// Clean decomposes the sentence to NFD and applies the rules strictly in
// declaration order, each rule's output feeding the next. The NFD step is
// part of the contract: the diacritic-stripping rule only sees combining
// marks once precomposed characters have been split.
func Clean(rules []CleanRule, sentence string) string {
	sentence = norm.NFD.String(sentence)
	for _, rule := range rules {
		sentence = rule.Apply(sentence)
	}
	return sentence
}

// JoinTokens makes a single left-to-right pass over the token list, fusing
// any adjacent pair matched by a join rule. Rules are tried in order and
// the first match wins; a fused token is not reconsidered for further
// joining.
func JoinTokens(rules []JoinRule, tokens []string) []string {
	if len(tokens) < 2 {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if i+1 < len(tokens) {
			if fused, ok := joinPair(rules, tokens[i], tokens[i+1]); ok {
				out = append(out, fused)
				i += 2
				continue
			}
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}

func joinPair(rules []JoinRule, a, b string) (string, bool) {
	for _, rule := range rules {
		if fused, ok := rule.Join(a, b); ok {
			return fused, true
		}
	}
	return "", false
}
