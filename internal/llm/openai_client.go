package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blaisecz/sleep-coach/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultCoachPrompt is the built-in system prompt, used when no managed
// prompt is available.
const DefaultCoachPrompt = `You are a non-medical sleep coaching assistant.

You receive a weekly sleep report for a single user: average sleep debt, social
jetlag, bedtime consistency, how often each rule was violated, average quality
score, and the rule-based adjustments already recommended. Base your
conclusions only on the provided data.

Your goals:
- Describe the user's week in clear, neutral language.
- Highlight the factors costing the most score points (caffeine, alcohol,
  screens, exercise timing, meals, environment, schedule drift).
- Reinforce or refine the rule-based recommendations; never contradict them.
- Give practical, behavioral suggestions to improve sleep habits.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (caffeine cutoff, wind-down habits,
  schedule regularity, bedroom setup).
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the week.",
  "observations": [
    "3-6 bullet points about patterns in debt, consistency, jetlag, and violations."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's weekly sleep report.

- "debt_trend" summarizes accumulated sleep debt across the window.
- "social_jetlag_minutes" is the weekday/weekend wake-time gap.
- "consistency" scores bedtime regularity.
- "violation_frequency" counts how often each rule was broken.
- "recommendations" are rule-based adjustments already shown to the user.

JSON:

%s

Based on this data, respond in the required JSON format.`

// CoachLLM is the interface for generating coaching advice using an LLM.
type CoachLLM interface {
	// GenerateAdvice takes a weekly report and returns LLM-generated advice.
	GenerateAdvice(ctx context.Context, report *domain.WeeklyReport) (*domain.CoachAdvice, error)
}

// OpenAIClient implements CoachLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating advice.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if systemPrompt == "" {
		systemPrompt = DefaultCoachPrompt
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// GenerateAdvice calls OpenAI to generate coaching advice.
func (c *OpenAIClient) GenerateAdvice(ctx context.Context, report *domain.WeeklyReport) (*domain.CoachAdvice, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	reportJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize report: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(reportJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var advice domain.CoachAdvice
	if err := json.Unmarshal([]byte(content), &advice); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &advice, nil
}
