package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vocamate/vocamate/internal/provider"
)

const defaultMurfBaseURL = "https://api.murf.ai/v1"

// MurfAdapter implements SpeechProvider against the Murf speech
// generation API.
type MurfAdapter struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewMurfAdapter creates a Murf TTS adapter. baseURL may be empty for
// the production endpoint.
func NewMurfAdapter(apiKey, baseURL string) *MurfAdapter {
	if baseURL == "" {
		baseURL = defaultMurfBaseURL
	}
	return &MurfAdapter{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (a *MurfAdapter) Name() string    { return "murf" }
func (a *MurfAdapter) Available() bool { return a.apiKey != "" }

// murfPayload is the Murf speech/generate request body. Prosody fields
// are omitted when the caller did not supply them so Murf's own
// defaults apply.
type murfPayload struct {
	Text           string   `json:"text"`
	VoiceID        string   `json:"voiceId"`
	Format         string   `json:"format"`
	ModelVersion   string   `json:"modelVersion"`
	EncodeAsBase64 bool     `json:"encodeAsBase64"`
	Pitch          *float64 `json:"pitch,omitempty"`
	Rate           *float64 `json:"rate,omitempty"`
	Style          string   `json:"style,omitempty"`
	ChannelType    string   `json:"channelType,omitempty"`
	SampleRate     *int     `json:"sampleRate,omitempty"`
}

type murfResponse struct {
	AudioFile    string `json:"audioFile"`
	EncodedAudio string `json:"encodedAudio"`
}

type murfError struct {
	Message string `json:"message"`
}

func (a *MurfAdapter) Synthesize(ctx context.Context, req provider.SpeechRequest) (provider.SpeechResult, error) {
	if a.apiKey == "" {
		return provider.SpeechResult{}, provider.NotConfiguredError("Murf")
	}
	if req.Text == "" {
		return provider.SpeechResult{}, provider.Errorf(provider.KindInvalidRequest, "Text input is empty")
	}
	if req.VoiceID == "" {
		return provider.SpeechResult{}, provider.Errorf(provider.KindInvalidRequest, "voiceId is required for speech synthesis")
	}

	format := req.Format
	if format == "" {
		format = "MP3"
	}
	payload := murfPayload{
		Text:           req.Text,
		VoiceID:        req.VoiceID,
		Format:         format,
		ModelVersion:   "GEN2",
		EncodeAsBase64: req.EncodeAsBase64,
		Pitch:          req.Prosody.Pitch,
		Rate:           req.Prosody.Rate,
		Style:          req.Prosody.Style,
		ChannelType:    req.Prosody.ChannelType,
		SampleRate:     req.Prosody.SampleRate,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return provider.SpeechResult{}, fmt.Errorf("murf marshal error: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/speech/generate", bytes.NewReader(body))
	if err != nil {
		return provider.SpeechResult{}, fmt.Errorf("murf request error: %w", err)
	}
	a.setHeaders(httpReq)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return provider.SpeechResult{}, provider.WrapError(provider.KindUnreachable, "Murf is unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return provider.SpeechResult{}, classifyMurfStatus(resp)
	}

	var out murfResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return provider.SpeechResult{}, provider.WrapError(provider.KindUpstream, "Murf returned a malformed response", err)
	}
	if out.AudioFile == "" && out.EncodedAudio == "" {
		return provider.SpeechResult{}, provider.Errorf(provider.KindNoAudio, "Audio not returned from Murf API")
	}

	return provider.SpeechResult{
		AudioURL:    out.AudioFile,
		AudioBase64: out.EncodedAudio,
		VoiceID:     req.VoiceID,
	}, nil
}

func (a *MurfAdapter) Voices(ctx context.Context) ([]provider.Voice, error) {
	if a.apiKey == "" {
		return nil, provider.NotConfiguredError("Murf")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/speech/voices", nil)
	if err != nil {
		return nil, fmt.Errorf("murf request error: %w", err)
	}
	a.setHeaders(httpReq)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, provider.WrapError(provider.KindUnreachable, "Murf is unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, classifyMurfStatus(resp)
	}

	var voices []provider.Voice
	if err := json.NewDecoder(resp.Body).Decode(&voices); err != nil {
		return nil, provider.WrapError(provider.KindUpstream, "Murf returned a malformed voice list", err)
	}
	return voices, nil
}

func (a *MurfAdapter) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", a.apiKey)
}

func classifyMurfStatus(resp *http.Response) error {
	msg := fmt.Sprintf("Murf API error: status %d", resp.StatusCode)
	var body murfError
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		msg = body.Message
	}
	kind := provider.KindUpstream
	if resp.StatusCode == http.StatusTooManyRequests {
		kind = provider.KindRateLimited
	}
	return provider.Errorf(kind, "%s", msg)
}
