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

package lexer

import (
	"regexp"
	"strings"
)

// CleanRule is a single sentence-wide rewrite. Rules are built once at
// startup and applied in declaration order; a malformed pattern panics at
// construction, never at call time.
type CleanRule interface {
	Apply(sentence string) string
}

// CleanRuleFunc adapts a plain rewrite function to a CleanRule.
type CleanRuleFunc func(string) string

func (f CleanRuleFunc) Apply(sentence string) string { return f(sentence) }

type patternRule struct {
	re   *regexp.Regexp
	repl string
}

// NewCleanRule builds a CleanRule that substitutes every match of pattern
// with replacement.
func NewCleanRule(pattern, replacement string) CleanRule {
	return &patternRule{re: regexp.MustCompile(pattern), repl: replacement}
}

func (r *patternRule) Apply(sentence string) string {
	return r.re.ReplaceAllString(sentence, r.repl)
}

// RemoveBetweenLetters builds a CleanRule that deletes any of the given
// punctuation bytes when bounded by ASCII letters, treating the start and
// end of the sentence as letter boundaries. "O'Brien" becomes "OBrien",
// but "St. Ives" keeps its period for a later rule to strip.
func RemoveBetweenLetters(punct string) CleanRule {
	return CleanRuleFunc(func(sentence string) string {
		var b strings.Builder
		b.Grow(len(sentence))
		for i := 0; i < len(sentence); i++ {
			c := sentence[i]
			if strings.IndexByte(punct, c) >= 0 {
				prevOK := i == 0 || isASCIILetter(sentence[i-1])
				nextOK := i == len(sentence)-1 || isASCIILetter(sentence[i+1])
				if prevOK && nextOK {
					continue
				}
			}
			b.WriteByte(c)
		}
		return b.String()
	})
}

// ReplaceRun builds a CleanRule that replaces every run of exactly length
// consecutive ch bytes with replacement. Runs of any other length pass
// through untouched.
func ReplaceRun(ch byte, length int, replacement string) CleanRule {
	return CleanRuleFunc(func(sentence string) string {
		if strings.IndexByte(sentence, ch) < 0 {
			return sentence
		}
		var b strings.Builder
		b.Grow(len(sentence))
		for i := 0; i < len(sentence); {
			if sentence[i] != ch {
				b.WriteByte(sentence[i])
				i++
				continue
			}
			j := i
			for j < len(sentence) && sentence[j] == ch {
				j++
			}
			if j-i == length {
				b.WriteString(replacement)
			} else {
				b.WriteString(sentence[i:j])
			}
			i = j
		}
		return b.String()
	})
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// JoinRule fuses two adjacent tokens into one. Both patterns must match
// their token in full and carry one capture group; the fused token is the
// concatenation of the two captured fragments.
type JoinRule struct {
	first  *regexp.Regexp
	second *regexp.Regexp
}

// NewJoinRule compiles the two full-token patterns of a JoinRule.
func NewJoinRule(firstPattern, secondPattern string) JoinRule {
	return JoinRule{
		first:  regexp.MustCompile(`\A(?:` + firstPattern + `)\z`),
		second: regexp.MustCompile(`\A(?:` + secondPattern + `)\z`),
	}
}

// Join reports whether the adjacent pair (a, b) fuses under this rule and,
// if so, returns the fused token.
func (j JoinRule) Join(a, b string) (string, bool) {
	ma := j.first.FindStringSubmatch(a)
	if ma == nil {
		return "", false
	}
	mb := j.second.FindStringSubmatch(b)
	if mb == nil {
		return "", false
	}
	return ma[1] + mb[1], true
}

// ArtifactPattern identifies one class of postal-routing junk. A guarded
// pattern refuses any match that has the guard token somewhere after it in
// the sentence: a box or route number sitting ahead of a front gate marker
// is a real unit number, not mail routing.
type ArtifactPattern struct {
	re    *regexp.Regexp
	guard string
}

// NewArtifactPattern compiles an artifact matcher. An empty guard means
// the pattern matches unconditionally.
func NewArtifactPattern(pattern, guard string) ArtifactPattern {
	return ArtifactPattern{re: regexp.MustCompile(pattern), guard: guard}
}

// Strip deletes every match of the pattern from the sentence and reports
// whether anything was deleted. The guard check is evaluated against the
// whole remainder of the sentence after each candidate match, so a guard
// token anywhere later suppresses that match.
func (p ArtifactPattern) Strip(sentence string) (string, bool) {
	locs := p.re.FindAllStringIndex(sentence, -1)
	if len(locs) == 0 {
		return sentence, false
	}
	var b strings.Builder
	b.Grow(len(sentence))
	prev := 0
	found := false
	for _, loc := range locs {
		if p.guard != "" && strings.Contains(sentence[loc[1]:], p.guard) {
			continue
		}
		b.WriteString(sentence[prev:loc[0]])
		prev = loc[1]
		found = true
	}
	if !found {
		return sentence, false
	}
	b.WriteString(sentence[prev:])
	return b.String(), true
}
