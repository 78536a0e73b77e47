package quizgen

import "testing"

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		canonical string
		want      bool
	}{
		{"exact", "Paris", "Paris", true},
		{"case insensitive", "PARIS", "Paris, France", true},
		{"punctuation stripped", "photo-synthesis!", "photosynthesis", true},
		{"submission inside canonical", "Paris", "the city of Paris, France", true},
		{"canonical inside submission", "the city of Paris, France", "Paris", true},
		{"wrong answer", "Paris", "London", false},
		{"true false", "true", "True", true},
		{"empty submission", "", "Paris", false},
		{"empty canonical matches nothing", "anything", "", false},
		{"punctuation-only canonical", "anything", "!!!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.submitted, tt.canonical); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.submitted, tt.canonical, got, tt.want)
			}
		})
	}
}

// TestMatches_ShortSubstringLeniency pins down the known leniency of the
// containment rule: a single-character submission is contained in almost
// any canonical answer and is accepted. This is intentional, preserved
// behavior, not a regression to "fix" by tightening the matcher.
func TestMatches_ShortSubstringLeniency(t *testing.T) {
	if !Matches("a", "cat") {
		t.Error(`Matches("a", "cat") = false; the short-substring leniency is intentional and must hold`)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello, World!", "helloworld"},
		{"  spaced  out  ", "spacedout"},
		{"ABC123", "abc123"},
		{"¿qué?", "qu"},
	}
	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
