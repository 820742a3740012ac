package dra

import (
	"strings"
	"sync"
	"testing"

	"github.com/TFMV/AddressLexer/internal/lexer"
)

func TestCleanSentence(t *testing.T) {
	rules := NewRules()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "periods and apostrophes between letters",
			input:    "O'Brien's Rd.",
			expected: "OBriens Rd",
		},
		{
			name:     "double hyphen becomes front gate",
			input:    "123--45 Main St",
			expected: "123 /FG 45 Main St",
		},
		{
			name:     "single hyphen is stripped",
			input:    "123-45 Main St",
			expected: "123 45 Main St",
		},
		{
			name:     "triple hyphen is stripped",
			input:    "123---45 Main St",
			expected: "123 45 Main St",
		},
		{
			name:     "double asterisk becomes occupant separator",
			input:    "SMITH**JONES",
			expected: "SMITH /OS JONES",
		},
		{
			name:     "diacritics and ampersand",
			input:    "Café & Société",
			expected: "Cafe and Societe",
		},
		{
			name:     "ligatures expand",
			input:    "Œrsted æther",
			expected: "OErsted aether",
		},
		{
			name:     "vulgar half expands",
			input:    "12½ Fort St",
			expected: "12 1/2 Fort St",
		},
		{
			name:     "punctuation becomes spaces and collapses",
			input:    "  12,  Main   St!!",
			expected: " 12 Main St ",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.CleanSentence(tt.input); got != tt.expected {
				t.Errorf("CleanSentence(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleanSentenceIdempotent(t *testing.T) {
	rules := NewRules()
	inputs := []string{
		"O'Brien's Rd.",
		"123--45 Main St",
		"Café & Société",
		"12½ Fort St **A. B-C** x",
		"PO BOX 55 STN MAIN V8W 1P6",
		"",
	}
	for _, in := range inputs {
		once := rules.CleanSentence(in)
		twice := rules.CleanSentence(once)
		if once != twice {
			t.Errorf("CleanSentence is not a fixed point for %q: %q != %q", in, once, twice)
		}
	}
}

func TestCleanSentenceNormalizationForms(t *testing.T) {
	rules := NewRules()
	// precomposed vs decomposed input must clean identically
	pre := rules.CleanSentence("Montréal")
	dec := rules.CleanSentence("Montréal")
	if pre != dec || pre != "Montreal" {
		t.Errorf("normalization forms diverge: %q vs %q", pre, dec)
	}
}

func TestRunSpecialRules(t *testing.T) {
	rules := NewRules()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "postal code stripped and flagged",
			input:    "123 Main St V8W 1P6",
			expected: "123 Main St  /PJ",
		},
		{
			name:     "po box with station stripped entirely",
			input:    "PO BOX 55 STN MAIN",
			expected: " /PJ",
		},
		{
			name:     "box before front gate survives",
			input:    "PO BOX 55 /FG 12",
			expected: "PO BOX 55 /FG 12",
		},
		{
			name:     "rural route stripped",
			input:    "RR 2 COBBLE HILL",
			expected: "COBBLE HILL /PJ",
		},
		{
			name:     "mailbag stripped",
			input:    "MAILBAG 13 VICTORIA",
			expected: " VICTORIA /PJ",
		},
		{
			name:     "general delivery stripped",
			input:    "GENERAL DELIVERY NANAIMO",
			expected: " NANAIMO /PJ",
		},
		{
			name:     "no junk leaves sentence alone",
			input:    "123 Main St",
			expected: "123 Main St",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.RunSpecialRules(tt.input); got != tt.expected {
				t.Errorf("RunSpecialRules(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRunSpecialRulesSingleSentinel(t *testing.T) {
	rules := NewRules()
	// several distinct artifact classes in one sentence still yield one flag
	out := rules.RunSpecialRules("PO BOX 1 RR 2 GENERAL DELIVERY V8W 1P6")
	if n := strings.Count(out, PostalAddressElement); n != 1 {
		t.Errorf("got %d postal junk sentinels in %q, want exactly 1", n, out)
	}
	if !strings.HasSuffix(out, PostalAddressElement) {
		t.Errorf("sentinel is not terminal in %q", out)
	}
}

func TestJoinRulesCrossLanguage(t *testing.T) {
	rules := NewRules()

	tests := []struct {
		name     string
		tokens   []string
		expected string
	}{
		{name: "english", tokens: []string{"BRITISH", "COLUMBIA"}, expected: "BC"},
		{name: "french", tokens: []string{"COLUMBIE", "BRITANIQUE"}, expected: "CB"},
		{name: "abbreviated", tokens: []string{"C", "B"}, expected: "CB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lexer.JoinTokens(rules.JoinRules(), tt.tokens)
			if len(got) != 1 || got[0] != tt.expected {
				t.Errorf("JoinTokens(%v) = %v, want [%s]", tt.tokens, got, tt.expected)
			}
		})
	}
}

func TestRulesetConcurrentUse(t *testing.T) {
	rules := NewRules()
	const input = "123--45 O'Brien Rd, V8W 1P6"
	want := rules.RunSpecialRules(rules.CleanSentence(input))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := rules.RunSpecialRules(rules.CleanSentence(input)); got != want {
					t.Errorf("concurrent call diverged: %q != %q", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
