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

// Package dra is the lexical ruleset for BC civic addressing: the ordered
// cleaning table, the cross-language join rules, the postal junk matchers,
// and the grammar fragments the tokenizer builds its own patterns from.
package dra

import (
	"github.com/TFMV/AddressLexer/internal/lexer"
	"github.com/TFMV/AddressLexer/internal/tokenizer"
)

// Grammar fragments reused by the tokenizer. These are configuration, not
// behavior: the cleaning and special passes never consult them.
const (
	// Word matches any non-numeric token, or any long alphanumeric one.
	Word = `[^0-9]+|\w{9,}`

	And = `AND`

	Number = `\d{1,8}`

	NumberWithSuffix = `\d{1,8}[a-zA-Z]`

	NumberWithOptionalSuffix = `\d{1,8}([a-zA-Z])?`

	Ordinal = `(?i)(ST|TH|RD|ND|E|ER|RE|EME|ERE|IEME|IERE)`

	// UnitNumber is a single letter, or an optional leading letter followed
	// by digits and an optional trailing letter. The trailing letter is
	// only legal after a digit.
	UnitNumber = `[a-zA-Z0-9]?\d{1,8}[a-zA-Z]?|[a-zA-Z0-9]?`

	Directional = `N|NW|NE|S|SE|SW|E|W`

	Province = `BC|AB|YT|SK|MB|ON|QC|NB|NS|NL|NT|NU|PE`

	Suffix = `[A-Z]|1/2`
)

// Sentinel tokens emitted into the text stream and understood by the
// downstream matcher. Slash is reserved for them: the cleaning pass strips
// every other non-alphanumeric character.
const (
	// PostalAddressElement flags that postal-routing junk was found and
	// stripped.
	PostalAddressElement = "/PJ"
	// FrontGate replaces a double hyphen, the structural separator between
	// a unit range and a street number.
	FrontGate = "/FG"
	// OccupantSeparator replaces a double asterisk between multiple named
	// occupants at one address.
	OccupantSeparator = "/OS"
)

// Kinds returns the grammar fragments in classification order, ready for
// the tokenizer.
func Kinds() []tokenizer.Kind {
	return []tokenizer.Kind{
		{Name: "number", Pattern: Number},
		{Name: "number_with_suffix", Pattern: NumberWithSuffix},
		{Name: "ordinal", Pattern: Ordinal},
		{Name: "unit_number", Pattern: UnitNumber},
		{Name: "directional", Pattern: Directional},
		{Name: "province", Pattern: Province},
		{Name: "suffix", Pattern: Suffix},
		{Name: "word", Pattern: Word},
	}
}

// Rules is the concrete LexicalRules for BC. Construct once with NewRules
// and share; all state is read-only after construction.
type Rules struct {
	cleanRules     []lexer.CleanRule
	joinRules      []lexer.JoinRule
	postalPatterns []lexer.ArtifactPattern
}

var _ lexer.LexicalRules = (*Rules)(nil)

// NewRules compiles the full BC ruleset. A malformed pattern panics here,
// at startup, so the process never runs with a partially built ruleset.
func NewRules() *Rules {
	return &Rules{
		cleanRules: []lexer.CleanRule{
			// squish periods and apostrophes out from between letters
			lexer.RemoveBetweenLetters(".'"),
			// strip combining diacritical marks; the sentence is NFD by now
			lexer.NewCleanRule(`\p{Mn}+`, ""),
			// expand the small set of ligatures seen in practice
			lexer.NewCleanRule("æ", "ae"),
			lexer.NewCleanRule("Æ", "AE"),
			lexer.NewCleanRule("Œ", "OE"),
			lexer.NewCleanRule("œ", "oe"),
			lexer.NewCleanRule("½", " 1/2"),
			// change & into "and"
			lexer.NewCleanRule("&", " and "),
			// exactly two hyphens mark a front gate; longer runs are noise
			lexer.ReplaceRun('-', 2, " "+FrontGate+" "),
			// exactly two asterisks separate occupants
			lexer.ReplaceRun('*', 2, " "+OccupantSeparator+" "),
			// everything that is not a letter, digit or slash becomes a space
			lexer.NewCleanRule(`[^a-zA-Z0-9/]`, " "),
			// reduce all whitespace to single spaces
			lexer.NewCleanRule(`\s+`, " "),
		},
		joinRules: []lexer.JoinRule{
			lexer.NewJoinRule(`(?i)(B)RITISH`, `(?i)(C)OLUMBIA`),
			lexer.NewJoinRule(`(?i)(C)OLUMBIE`, `(?i)(B)RITANIQUE`),
			lexer.NewJoinRule(`(?i)(C)`, `(?i)(B)`),
		},
		postalPatterns: []lexer.ArtifactPattern{
			// postal code, eg V9K 1X9
			lexer.NewArtifactPattern(
				`(?i)\b[ABCEGHJ-NPRSTVXY][0-9][ABCEGHJ-NPRSTV-Z]\s*[0-9][ABCEGHJ-NPRSTV-Z][0-9]\b`, ""),
			// postal box, eg PO BOX 55 STN MAIN
			lexer.NewArtifactPattern(`(?i)\b(PO\s*)?BOX\s*[0-9]+\s*(STN\s+[^\s]*)?\b`, FrontGate),
			// mailbag, eg MAILBAG 11
			lexer.NewArtifactPattern(`(?i)\b(((MAIL)?BAG)|LCD)\s*[0-9]+\b`, FrontGate),
			// rural route, mail route, suburban service, eg RR 2
			lexer.NewArtifactPattern(`(?i)\b(RR|MR|SS|RURAL ROUTE)\s*[0-9]+\s*(STN\s+[^\s]*)?\b`, FrontGate),
			// general delivery station, eg GD STN MAIN
			lexer.NewArtifactPattern(`(?i)\b(GD\s*)?STN\s+[^\s]+\b`, FrontGate),
			// general delivery
			lexer.NewArtifactPattern(`(?i)\bGENERAL\s+DELIVERY\b`, ""),
		},
	}
}

// CleanSentence normalizes raw address text through the ordered cleaning
// table. NFD decomposition happens inside lexer.Clean, ahead of the first
// rule.
func (r *Rules) CleanSentence(raw string) string {
	return lexer.Clean(r.cleanRules, raw)
}

// RunSpecialRules strips postal junk from a cleaned sentence. Each pattern
// runs against the sentence as mutated by the patterns before it, and a
// single postal junk sentinel is appended if anything matched, no matter
// how many patterns fired.
func (r *Rules) RunSpecialRules(cleaned string) string {
	found := false
	for _, p := range r.postalPatterns {
		var hit bool
		cleaned, hit = p.Strip(cleaned)
		found = found || hit
	}
	if found {
		cleaned += " " + PostalAddressElement
	}
	return cleaned
}

// JoinRules returns the ordered join rules for the tokenizer.
func (r *Rules) JoinRules() []lexer.JoinRule {
	return r.joinRules
}
