package llm

import (
	"context"
	"errors"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/vocamate/vocamate/internal/provider"
)

// OpenAIAdapter implements ChatProvider against the OpenAI chat
// completions API.
type OpenAIAdapter struct {
	client    *openai.Client
	available bool
	model     string
	retry     provider.RetryPolicy
}

// NewOpenAIAdapter creates an OpenAI adapter. An empty apiKey produces
// an adapter that reports unavailable and fails with NotConfigured.
func NewOpenAIAdapter(apiKey, model string) *OpenAIAdapter {
	a := &OpenAIAdapter{
		available: apiKey != "",
		model:     model,
		retry:     provider.DefaultRetryPolicy(),
	}
	if apiKey != "" {
		// The SDK retries internally by default; the shared policy
		// owns the backoff schedule instead.
		client := openai.NewClient(option.WithAPIKey(apiKey), option.WithMaxRetries(0))
		a.client = &client
	}
	return a
}

func (a *OpenAIAdapter) Name() string    { return "openai" }
func (a *OpenAIAdapter) Model() string   { return a.model }
func (a *OpenAIAdapter) Available() bool { return a.available }

func (a *OpenAIAdapter) GenerateReply(ctx context.Context, messages []provider.Message, language string) (provider.Reply, error) {
	if !a.available {
		return provider.Reply{}, provider.NotConfiguredError("OpenAI")
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

func (a *OpenAIAdapter) generate(ctx context.Context, messages []provider.Message, language string) (provider.Reply, error) {
	chatMessages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(SystemPrompt(language)),
	}
	for _, m := range messages {
		switch m.Role {
		case "system":
			chatMessages = append(chatMessages, openai.SystemMessage(m.Content))
		case "user":
			chatMessages = append(chatMessages, openai.UserMessage(m.Content))
		case "assistant":
			chatMessages = append(chatMessages, openai.AssistantMessage(m.Content))
		}
	}

	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:            openai.ChatModel(a.model),
		Messages:         chatMessages,
		MaxTokens:        openai.Int(1000),
		Temperature:      openai.Float(0.7),
		TopP:             openai.Float(1),
		FrequencyPenalty: openai.Float(0),
		PresencePenalty:  openai.Float(0),
	})
	if err != nil {
		return provider.Reply{}, classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return provider.Reply{}, provider.Errorf(provider.KindUpstream, "OpenAI service error: empty completion response")
	}

	return provider.Reply{
		Text:  resp.Choices[0].Message.Content,
		Model: a.model,
		Usage: &provider.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}

func classifyOpenAIError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		if apierr.StatusCode == http.StatusTooManyRequests {
			return provider.WrapError(provider.KindRateLimited, "OpenAI rate limit", err)
		}
		return provider.WrapError(provider.KindUpstream, "OpenAI service error", err)
	}
	return provider.WrapError(provider.KindUnreachable, "OpenAI is unreachable", err)
}
