package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/vocamate/vocamate/internal/provider"
)

// geminiGreeting opens the simulated system exchange: the Gemini API
// models conversations as user/model turns only, so the system prompt
// is sent as a leading user message answered by this canned greeting.
const geminiGreeting = "Hello! I'm VocaMate, your AI assistant. How can I help you today?"

// GeminiAdapter implements ChatProvider against the Gemini
// generate-content API.
type GeminiAdapter struct {
	client *genai.Client
	model  string
	retry  provider.RetryPolicy
}

// NewGeminiAdapter creates a Gemini adapter. An empty apiKey produces
// an adapter that reports unavailable and fails with NotConfigured.
func NewGeminiAdapter(ctx context.Context, apiKey, model string) (*GeminiAdapter, error) {
	a := &GeminiAdapter{
		model: model,
		retry: provider.DefaultRetryPolicy(),
	}
	if apiKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		a.client = client
	}
	return a, nil
}

func (a *GeminiAdapter) Name() string    { return "gemini" }
func (a *GeminiAdapter) Model() string   { return a.model }
func (a *GeminiAdapter) Available() bool { return a.client != nil }

func (a *GeminiAdapter) GenerateReply(ctx context.Context, messages []provider.Message, language string) (provider.Reply, error) {
	if a.client == nil {
		return provider.Reply{}, provider.NotConfiguredError("Gemini")
	}

	var reply provider.Reply
	err := a.retry.Do(ctx, func() error {
		r, err := a.generate(ctx, messages, language)
		if err != nil {
			return err
		}
		reply = r
		return nil
	})
	if err != nil && provider.KindOf(err) == provider.KindRateLimited {
		return provider.Reply{}, provider.Errorf(provider.KindRateLimited, "Rate limit exceeded. Please try again in a few minutes.")
	}
	return reply, err
}

func (a *GeminiAdapter) generate(ctx context.Context, messages []provider.Message, language string) (provider.Reply, error) {
	contents := buildGeminiContents(messages, language)

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopK:            genai.Ptr[float32](40),
		TopP:            genai.Ptr[float32](0.95),
		MaxOutputTokens: 1000,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		},
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model, contents, config)
	if err != nil {
		return provider.Reply{}, classifyGeminiError(err)
	}

	text := extractGeminiText(result)
	if text == "" {
		return provider.Reply{}, provider.Errorf(provider.KindUpstream, "Gemini service error: no candidates in response")
	}

	reply := provider.Reply{Text: text, Model: a.model}
	if result.UsageMetadata != nil {
		reply.Usage = &provider.Usage{
			PromptTokens:     int(result.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(result.UsageMetadata.TotalTokenCount),
		}
	}
	return reply, nil
}

// buildGeminiContents prepends the simulated system exchange, then maps
// conversation turns to user/model roles. System-role entries in the
// caller's history are skipped; the localized prompt covers them.
func buildGeminiContents(messages []provider.Message, language string) []*genai.Content {
	contents := []*genai.Content{
		textContent("user", SystemPrompt(language)),
		textContent("model", geminiGreeting),
	}
	for _, m := range messages {
		switch m.Role {
		case "user":
			contents = append(contents, textContent("user", m.Content))
		case "assistant":
			contents = append(contents, textContent("model", m.Content))
		}
	}
	return contents
}

func textContent(role, text string) *genai.Content {
	return &genai.Content{
		Role:  role,
		Parts: []*genai.Part{genai.NewPartFromText(text)},
	}
}

func extractGeminiText(result *genai.GenerateContentResponse) string {
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests {
			return provider.WrapError(provider.KindRateLimited, "Gemini rate limit", err)
		}
		return provider.WrapError(provider.KindUpstream, "Gemini service error", err)
	}
	return provider.WrapError(provider.KindUnreachable, "Gemini is unreachable", err)
}
