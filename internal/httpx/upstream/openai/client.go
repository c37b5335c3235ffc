// Package openai wraps the OpenAI chat completions API as the
// generative content provider behind SWOT analysis and caption assist.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const defaultModel = "gpt-4o-mini"

// Client is a thin generative content client over the OpenAI API
type Client struct {
	api   sdk.Client
	model string
}

// ClientOption is a function that configures the Client
type ClientOption func(*Client)

// WithModel sets the chat model used for all requests
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// New creates a new generative content client
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		api:   sdk.NewClient(option.WithAPIKey(apiKey)),
		model: defaultModel,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// complete runs one system+user chat completion and returns the text
func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	completion, err := c.api.Chat.Completions.New(ctx, sdk.ChatCompletionNewParams{
		Model: sdk.ChatModel(c.model),
		Messages: []sdk.ChatCompletionMessageParamUnion{
			sdk.SystemMessage(system),
			sdk.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return completion.Choices[0].Message.Content, nil
}

// SWOTInput describes the business being analyzed
type SWOTInput struct {
	Name       string
	Segment    string
	Objectives []string
	Notes      string
}

// SWOTOutput is the structured analysis parsed from the model response
type SWOTOutput struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

const swotSystemPrompt = `You are a marketing strategist. Respond with a JSON object
containing exactly the keys "strengths", "weaknesses", "opportunities" and
"threats", each an array of short strings. No prose outside the JSON.`

// AnalyzeSWOT asks the model for a SWOT analysis of a client business
func (c *Client) AnalyzeSWOT(ctx context.Context, in SWOTInput) (*SWOTOutput, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Business: %s\n", in.Name)
	if in.Segment != "" {
		fmt.Fprintf(&b, "Segment: %s\n", in.Segment)
	}
	if len(in.Objectives) > 0 {
		fmt.Fprintf(&b, "Strategic objectives: %s\n", strings.Join(in.Objectives, "; "))
	}
	if in.Notes != "" {
		fmt.Fprintf(&b, "Additional context: %s\n", in.Notes)
	}

	raw, err := c.complete(ctx, swotSystemPrompt, b.String())
	if err != nil {
		return nil, err
	}

	var out SWOTOutput
	if err := json.Unmarshal([]byte(extractJSON(raw)), &out); err != nil {
		return nil, fmt.Errorf("parsing swot response: %w", err)
	}

	return &out, nil
}

// CaptionInput describes the post a caption is wanted for
type CaptionInput struct {
	Title  string
	Body   string
	Format string
	Count  int
}

const captionSystemPrompt = `You write social media captions for a marketing agency.
Respond with a JSON array of caption strings, nothing else.`

// SuggestCaptions asks the model for caption ideas for a planned post
func (c *Client) SuggestCaptions(ctx context.Context, in CaptionInput) ([]string, error) {
	count := in.Count
	if count <= 0 {
		count = 3
	}

	user := fmt.Sprintf("Write %d caption options for a %s titled %q.\nBrief: %s",
		count, in.Format, in.Title, in.Body)

	raw, err := c.complete(ctx, captionSystemPrompt, user)
	if err != nil {
		return nil, err
	}

	var captions []string
	if err := json.Unmarshal([]byte(extractJSON(raw)), &captions); err != nil {
		return nil, fmt.Errorf("parsing captions response: %w", err)
	}

	return captions, nil
}

// extractJSON strips markdown code fences models occasionally wrap around
// JSON answers
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
