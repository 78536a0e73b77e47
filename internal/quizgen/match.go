package quizgen

import (
	"regexp"
	"strings"
)

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]`)

// normalize lowercases the string and strips everything that is not an
// ASCII letter or digit, removing spacing, punctuation and case from the
// comparison entirely.
func normalize(s string) string {
	return nonAlnumRe.ReplaceAllString(strings.ToLower(s), "")
}

// Matches reports whether a submitted answer is equivalent to the
// canonical answer. Both sides are normalized; equivalence holds on
// equality or containment in either direction, so "Paris" is accepted
// against "the city of Paris, France".
//
// The containment rule is a deliberate leniency trade-off, not a bug: it
// tolerates partial and overlong phrasing at the cost of false positives
// for very short answers (a single-character submission is contained in
// almost anything). That behavior is preserved intentionally.
//
// An answer that normalizes to the empty string matches nothing, which
// covers questions whose Answer line the provider omitted.
func Matches(submitted, canonical string) bool {
	sub := normalize(submitted)
	can := normalize(canonical)

	if sub == "" || can == "" {
		return false
	}

	return sub == can ||
		strings.Contains(can, sub) ||
		strings.Contains(sub, can)
}
