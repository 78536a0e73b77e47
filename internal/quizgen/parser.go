package quizgen

import (
	"regexp"
	"strings"
)

// categoryHeaders maps reply block headers to their category. The mapping
// lives only here; the rest of the codebase branches on Category values.
var categoryHeaders = map[string]Category{
	"MCQs":   CategoryMultipleChoice,
	"F-I-Bs": CategoryFillInBlank,
	"T or F": CategoryTrueFalse,
}

var (
	headerRe   = regexp.MustCompile(`^(MCQs|F-I-Bs|T or F):`)
	questionRe = regexp.MustCompile(`^Q\d+:`)
	optionRe   = regexp.MustCompile(`^[a-d]\)`)
	answerRe   = regexp.MustCompile(`^Answer:`)

	// Malformed provider output sometimes embeds the answer at the end of
	// a True/False question line; it is stripped defensively without
	// consuming the dedicated Answer line.
	embeddedTFAnswerRe = regexp.MustCompile(`(?i)\s*Answer:\s*(True|False)\s*$`)
)

// Parse converts the provider's raw reply into an ordered question list.
// It walks the reply line by line, tolerating free-form whitespace and
// stray commentary, but depending on the exact line-prefix markers of the
// reply grammar. A non-empty reply that yields no questions is reported
// as ErrNoQuestions.
func Parse(reply string) ([]Question, error) {
	var questions []Question
	var category Category
	cur := -1 // index of the open question, -1 when none

	for _, raw := range strings.Split(reply, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case headerRe.MatchString(line):
			header := strings.TrimSpace(strings.SplitN(line, ":", 2)[0])
			category = categoryHeaders[header]

		case questionRe.MatchString(line):
			// A question outside any recognized category block is invalid
			// and discarded whole; closing the open question keeps its
			// option and answer lines from attaching to an earlier one.
			if category == "" {
				cur = -1
				continue
			}
			text := afterColon(line)
			if category == CategoryTrueFalse {
				text = strings.TrimSpace(embeddedTFAnswerRe.ReplaceAllString(text, ""))
			}
			questions = append(questions, Question{
				Category: category,
				Text:     text,
			})
			cur = len(questions) - 1

		case optionRe.MatchString(line):
			if cur < 0 {
				continue
			}
			var opt string
			if len(line) > 3 {
				opt = line[3:]
			}
			questions[cur].Options = append(questions[cur].Options, opt)

		case answerRe.MatchString(line):
			if cur < 0 {
				continue
			}
			questions[cur].Answer = strings.TrimSpace(afterColon(line))
		}
		// Anything else is stray commentary; ignore it.
	}

	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}

// afterColon returns the text after the first ": " on the line, or ""
// when the line has no payload.
func afterColon(line string) string {
	parts := strings.SplitN(line, ": ", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// Categories returns the distinct categories present across questions, in
// encounter order. Used to build the persisted quiz_type label.
func Categories(questions []Question) []Category {
	var out []Category
	seen := make(map[Category]bool)
	for _, q := range questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out
}
