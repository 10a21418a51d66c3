// Package orchestrator is the request-level policy layer: it validates
// chat requests, applies the repeat-message guard, dispatches to the
// selected chat provider and optionally pipes the reply through speech
// synthesis with graceful degradation.
package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"github.com/vocamate/vocamate/internal/catalog"
	"github.com/vocamate/vocamate/internal/provider"
)

// repeatNotice is returned without an upstream call when the caller
// resends the same message back to back.
const repeatNotice = "I noticed you sent the same message again. Is there something specific you'd like to discuss?"

const (
	chatTimeout   = 30 * time.Second
	speechTimeout = 60 * time.Second
)

// SpeechOptions carries caller-supplied synthesis preferences.
type SpeechOptions struct {
	VoiceID        string   `json:"voiceId,omitempty"`
	Format         string   `json:"format,omitempty"`
	EncodeAsBase64 *bool    `json:"encodeAsBase64,omitempty"`
	Pitch          *float64 `json:"pitch,omitempty"`
	Rate           *float64 `json:"rate,omitempty"`
	Style          string   `json:"style,omitempty"`
	ChannelType    string   `json:"channelType,omitempty"`
	SampleRate     *int     `json:"sampleRate,omitempty"`
}

// ChatRequest is the inbound chat operation payload.
type ChatRequest struct {
	Messages         []provider.Message `json:"messages"`
	AIProvider       string             `json:"aiProvider,omitempty"`
	Language         string             `json:"language,omitempty"`
	ConversationID   string             `json:"conversationId,omitempty"`
	SynthesizeSpeech bool               `json:"synthesizeSpeech,omitempty"`
	SpeechOptions    *SpeechOptions     `json:"speechOptions,omitempty"`
}

// AudioPayload is the synthesized-audio section of a chat response.
type AudioPayload struct {
	URL     string `json:"url,omitempty"`
	Base64  string `json:"base64,omitempty"`
	VoiceID string `json:"voiceId,omitempty"`
}

// ChatResponse is the outbound chat operation payload.
type ChatResponse struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	Provider    string          `json:"provider"`
	Model       string          `json:"model"`
	Language    string          `json:"language"`
	Usage       *provider.Usage `json:"usage,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
	Audio       *AudioPayload   `json:"audio,omitempty"`
	SpeechError string          `json:"speechError,omitempty"`
}

// Orchestrator composes chat providers, the speech provider and the
// voice catalog behind a single chat operation.
type Orchestrator struct {
	registry        *provider.Registry
	speech          provider.SpeechProvider
	catalog         *catalog.Catalog
	defaultProvider string
	guard           *RepeatGuard
}

// New creates an Orchestrator. defaultProvider is used when the request
// names no provider or an unrecognized one.
func New(registry *provider.Registry, speech provider.SpeechProvider, cat *catalog.Catalog, defaultProvider string) *Orchestrator {
	return &Orchestrator{
		registry:        registry,
		speech:          speech,
		catalog:         cat,
		defaultProvider: defaultProvider,
		guard:           NewRepeatGuard(),
	}
}

// HandleChat runs the full chat policy for one request.
func (o *Orchestrator) HandleChat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	chat, err := o.selectProvider(req.AIProvider)
	if err != nil {
		return nil, err
	}

	// The guard runs identically for every provider, but a missing
	// credential still takes precedence over the repeat notice.
	lastContent := req.Messages[len(req.Messages)-1].Content
	if chat.Available() && o.guard.Repeated(req.ConversationID, lastContent) {
		return &ChatResponse{
			Success:   true,
			Message:   repeatNotice,
			Provider:  chat.Name(),
			Model:     chat.Model(),
			Language:  language,
			Timestamp: time.Now().UTC(),
		}, nil
	}

	chatCtx, cancel := context.WithTimeout(ctx, chatTimeout)
	defer cancel()
	reply, err := chat.GenerateReply(chatCtx, req.Messages, language)
	if err != nil {
		return nil, err
	}

	resp := &ChatResponse{
		Success:   true,
		Message:   reply.Text,
		Provider:  chat.Name(),
		Model:     reply.Model,
		Language:  language,
		Usage:     reply.Usage,
		Timestamp: time.Now().UTC(),
	}

	if req.SynthesizeSpeech && reply.Text != "" {
		o.attachSpeech(ctx, resp, reply.Text, language, req.SpeechOptions)
	}

	return resp, nil
}

// selectProvider resolves the provider id, falling back to the default
// for empty or unrecognized ids.
func (o *Orchestrator) selectProvider(id string) (provider.ChatProvider, error) {
	if id != "" {
		if p, err := o.registry.Chat(id); err == nil {
			return p, nil
		}
	}
	return o.registry.Chat(o.defaultProvider)
}

// attachSpeech synthesizes the reply text. A synthesis failure never
// fails the chat response; it is reported in the speechError field.
func (o *Orchestrator) attachSpeech(ctx context.Context, resp *ChatResponse, text, language string, opts *SpeechOptions) {
	speechCtx, cancel := context.WithTimeout(ctx, speechTimeout)
	defer cancel()

	result, err := o.speech.Synthesize(speechCtx, o.buildSpeechRequest(text, language, opts))
	if err != nil {
		slog.Error("speech synthesis failed", "provider", o.speech.Name(), "error", err)
		resp.SpeechError = err.Error()
		return
	}

	resp.Audio = &AudioPayload{
		URL:     result.AudioURL,
		Base64:  result.AudioBase64,
		VoiceID: result.VoiceID,
	}
}

func (o *Orchestrator) buildSpeechRequest(text, language string, opts *SpeechOptions) provider.SpeechRequest {
	if opts == nil {
		opts = &SpeechOptions{}
	}

	voiceID := opts.VoiceID
	if voiceID == "" {
		if v, ok := o.catalog.DefaultVoice(language); ok {
			voiceID = v.VoiceID
		} else if v, ok := o.catalog.DefaultVoice("en"); ok {
			voiceID = v.VoiceID
		}
	}

	// Inline audio is the default so the frontend can play without a
	// second fetch; callers opt out explicitly.
	encode := opts.EncodeAsBase64 == nil || *opts.EncodeAsBase64

	prosody := provider.ProsodyOptions{
		Pitch:       opts.Pitch,
		Rate:        opts.Rate,
		Style:       opts.Style,
		ChannelType: opts.ChannelType,
		SampleRate:  opts.SampleRate,
	}
	// A named style implies its prosody preset unless the caller pinned
	// pitch or rate themselves.
	if preset, ok := o.catalog.Style(opts.Style); ok {
		if prosody.Pitch == nil {
			p := preset.Pitch
			prosody.Pitch = &p
		}
		if prosody.Rate == nil {
			r := preset.Rate
			prosody.Rate = &r
		}
	}

	return provider.SpeechRequest{
		Text:           text,
		VoiceID:        voiceID,
		Format:         opts.Format,
		EncodeAsBase64: encode,
		Prosody:        prosody,
	}
}

func validate(req ChatRequest) error {
	if len(req.Messages) == 0 {
		return provider.Errorf(provider.KindInvalidRequest, "Messages array is required and cannot be empty")
	}
	for _, m := range req.Messages {
		if m.Role == "" || m.Content == "" {
			return provider.Errorf(provider.KindInvalidRequest, "Each message must have role and content fields")
		}
	}
	return nil
}
