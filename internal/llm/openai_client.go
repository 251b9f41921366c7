package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical glucose simulation assistant.

You receive the summary of one computational glucose-hormone simulation for a single patient profile: scenario parameters, summary statistics, variability metrics, and rule-based recommendations. You must base your conclusions only on the provided data.

Your goals:
- Describe the simulated glucose control in clear, neutral language.
- Highlight patterns in average glucose, time in range, variability, and the dawn phenomenon.
- Relate the scenario settings (meal sizes, drug dose) to the observed numbers.
- Give practical, behavioral suggestions grounded in the metrics.

Rules:
- These are SIMULATED values from a mathematical model, not measurements. Say so when summarizing.
- Do NOT provide medical advice, diagnoses, or medication changes.
- Do NOT contradict the rule-based recommendations; you may rephrase or prioritize them.
- If the metrics are unremarkable, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the simulated glucose control for this scenario.",
  "observations": [
    "3-6 bullet points about patterns in average glucose, time in range, variability, and excursions.",
    "If relevant, one item about how the drug dose or meal pattern shaped the outcome."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about meal timing or size if variability is high."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing one simulation run.

- "simulation_hours", "food_factor", and "drug_dosage" are the scenario inputs.
- "simulation_summary" holds the glucose statistics and time-in-range percentages.
- "glucose_metrics" holds variability and pattern metrics.
- "rule_based_recommendations" and "risk_factors" come from the deterministic rules.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating simulation insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to interpret a completed simulation run.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
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

	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
