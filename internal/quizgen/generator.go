package quizgen

import (
	"context"
	"fmt"

	"github.com/abhisek/quizcraft/internal/llm"
)

// Generator produces quiz questions from a generation request.
type Generator interface {
	// Generate validates the request, shapes the budget, compiles the
	// prompt, calls the provider and parses the reply into questions.
	Generate(ctx context.Context, req Request) ([]Question, error)
}

// LLMGenerator implements Generator using a generation provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// GenerateText runs the generation pipeline up to and including the
// provider call, returning the raw reply text. The HTTP endpoint serves
// this directly; the TUI continues into Parse via Generate.
func (g *LLMGenerator) GenerateText(ctx context.Context, req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	passage, budget, err := PlanBudget(req.Passage, req.TotalQuestions())
	if err != nil {
		return "", err
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildPrompt(req, passage)},
		},
		MaxTokens:   budget,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("quiz generation failed: %w", err)
	}

	return resp.Content, nil
}

// Generate produces the parsed question list for the request.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) ([]Question, error) {
	reply, err := g.GenerateText(ctx, req)
	if err != nil {
		return nil, err
	}
	return Parse(reply)
}
