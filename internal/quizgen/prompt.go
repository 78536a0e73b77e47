package quizgen

import (
	"fmt"
	"strings"
)

// difficultyClause returns the difficulty modifier sentence for the prompt.
func difficultyClause(d Difficulty) string {
	switch d {
	case DifficultyEasy:
		return "Make questions straightforward and basic."
	case DifficultyHard:
		return "Make questions challenging and require deep understanding."
	default:
		return "Make questions moderately challenging."
	}
}

// BuildPrompt renders the instruction document sent to the generation
// provider. It is a pure function of its inputs: same request and passage,
// byte-identical prompt.
//
// The passage argument is the budget-shaped passage from PlanBudget, not
// the raw request passage.
func BuildPrompt(req Request, passage string) string {
	var b strings.Builder

	b.WriteString("You are an expert AI question generator.\n")
	fmt.Fprintf(&b,
		"Generate exactly %d multiple-choice questions, %d fill-in-the-blank questions, and %d True/False questions from the following text.\n",
		req.MCQs, req.FillInBlanks, req.TrueFalse)
	b.WriteString(difficultyClause(req.Difficulty))
	b.WriteString("\n\nText:\n")
	b.WriteString(passage)
	b.WriteString("\n\nRules:\n")
	b.WriteString("1. Cover distinct ideas across questions; avoid duplicates within each category.\n")
	b.WriteString("2. Use clear, concise phrasing and test understanding (not copy-paste trivia).\n")
	b.WriteString("3. MCQs: exactly 4 options (a-d), one correct. Distractors must be plausible but clearly wrong. Avoid \"All of the above\" and double negatives.\n")
	b.WriteString("4. F-I-Bs: use a single blank (__________) for a key term/phrase from the text; keep grammar correct.\n")
	b.WriteString("5. T or F: statements must be factual and directly verifiable from the text.\n")
	b.WriteString("6. Output ONLY the format below. Do not include explanations.\n")
	b.WriteString("7. For MCQs, the Answer must be the EXACT TEXT of the correct option, not the letter.\n")
	b.WriteString("\nFormat the response as follows:\n\n")
	b.WriteString("MCQs:\n")
	b.WriteString("Q1: [Question text]\n")
	b.WriteString("a) [Option 1]\n")
	b.WriteString("b) [Option 2]\n")
	b.WriteString("c) [Option 3]\n")
	b.WriteString("d) [Option 4]\n")
	b.WriteString("Answer: [Exact text of the correct option]\n\n")
	b.WriteString("F-I-Bs:\n")
	b.WriteString("Q1: [Sentence with a blank like __________]\n")
	b.WriteString("Answer: [Correct Answer]\n\n")
	b.WriteString("T or F:\n")
	b.WriteString("Q1: [Statement]\n")
	b.WriteString("Answer: [True/False]\n")

	return b.String()
}
