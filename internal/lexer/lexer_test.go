package lexer

import (
	"reflect"
	"testing"
)

func TestCleanAppliesRulesInOrder(t *testing.T) {
	rules := []CleanRule{
		NewCleanRule("a", "b"),
		NewCleanRule("b", "c"),
	}
	// each rule's output feeds the next, so "a" rides both rewrites
	if got := Clean(rules, "a"); got != "c" {
		t.Errorf("Clean = %q, want %q", got, "c")
	}
}

func TestCleanDecomposesBeforeRules(t *testing.T) {
	rules := []CleanRule{NewCleanRule(`\p{Mn}+`, "")}
	// precomposed and decomposed forms of é must clean identically
	if got := Clean(rules, "Café"); got != "Cafe" {
		t.Errorf("Clean(precomposed) = %q, want Cafe", got)
	}
	if got := Clean(rules, "Café"); got != "Cafe" {
		t.Errorf("Clean(decomposed) = %q, want Cafe", got)
	}
}

func TestJoinTokens(t *testing.T) {
	rules := []JoinRule{
		NewJoinRule(`(?i)(B)RITISH`, `(?i)(C)OLUMBIA`),
		NewJoinRule(`(?i)(C)`, `(?i)(B)`),
	}

	tests := []struct {
		name     string
		tokens   []string
		expected []string
	}{
		{
			name:     "adjacent pair fuses",
			tokens:   []string{"BRITISH", "COLUMBIA", "AVE"},
			expected: []string{"BC", "AVE"},
		},
		{
			name:     "single-letter pair fuses",
			tokens:   []string{"C", "B"},
			expected: []string{"CB"},
		},
		{
			name:     "pair offset by one",
			tokens:   []string{"A", "C", "B"},
			expected: []string{"A", "CB"},
		},
		{
			name:     "no rule applies",
			tokens:   []string{"MAIN", "ST"},
			expected: []string{"MAIN", "ST"},
		},
		{
			name:     "single token passes through",
			tokens:   []string{"BRITISH"},
			expected: []string{"BRITISH"},
		},
		{
			name:     "empty list",
			tokens:   nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JoinTokens(rules, tt.tokens)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("JoinTokens(%v) = %v, want %v", tt.tokens, got, tt.expected)
			}
		})
	}
}
