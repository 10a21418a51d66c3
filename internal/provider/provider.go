package provider

import "context"

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// Usage records token accounting reported by an upstream provider.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// Reply is the normalized result of one successful chat generation.
type Reply struct {
	Text  string
	Model string
	Usage *Usage
}

// SpeechResult is the normalized result of one speech synthesis call.
// At least one of AudioURL or AudioBase64 is set on success.
type SpeechResult struct {
	AudioURL    string
	AudioBase64 string
	VoiceID     string
}

// Voice describes one synthesizable voice offered by the speech provider.
type Voice struct {
	VoiceID     string `json:"voiceId"`
	DisplayName string `json:"displayName"`
	Locale      string `json:"locale"`
}

// ProsodyOptions carries optional delivery controls for synthesis.
// Nil fields are omitted from the upstream payload so the provider's
// own defaults apply.
type ProsodyOptions struct {
	Pitch       *float64 `json:"pitch,omitempty"`
	Rate        *float64 `json:"rate,omitempty"`
	Style       string   `json:"style,omitempty"`
	ChannelType string   `json:"channelType,omitempty"`
	SampleRate  *int     `json:"sampleRate,omitempty"`
}

// ChatProvider defines the contract for AI text-generation adapters.
type ChatProvider interface {
	// Name returns the provider identifier ("openai", "gemini").
	Name() string
	// Model returns the configured model identifier.
	Model() string
	// Available reports whether a credential is configured.
	Available() bool
	// GenerateReply turns an ordered conversation into one reply.
	// The language code selects the system prompt; unrecognized codes
	// fall back to English.
	GenerateReply(ctx context.Context, messages []Message, language string) (Reply, error)
}

// SpeechRequest is the normalized input to a speech adapter.
type SpeechRequest struct {
	Text           string
	VoiceID        string
	Format         string
	EncodeAsBase64 bool
	Prosody        ProsodyOptions
}

// SpeechProvider defines the contract for text-to-speech adapters.
type SpeechProvider interface {
	// Name returns the provider identifier ("murf").
	Name() string
	// Available reports whether a credential is configured.
	Available() bool
	// Synthesize converts text into audio, returning a hosted URL
	// and/or inline base64 audio.
	Synthesize(ctx context.Context, req SpeechRequest) (SpeechResult, error)
	// Voices lists the voices the provider can synthesize with.
	Voices(ctx context.Context) ([]Voice, error)
}
