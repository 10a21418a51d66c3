package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vocamate/vocamate/internal/catalog"
	"github.com/vocamate/vocamate/internal/config"
	"github.com/vocamate/vocamate/internal/orchestrator"
	"github.com/vocamate/vocamate/internal/provider"
)

const serviceVersion = "1.0.0"

// providerDisplayNames maps provider ids to the names shown in the
// providers listing.
var providerDisplayNames = map[string]string{
	"gemini": "Google Gemini 2.0 Flash",
	"openai": "OpenAI GPT-4",
}

// Server holds dependencies for API handlers.
type Server struct {
	cfg      *config.Config
	registry *provider.Registry
	orch     *orchestrator.Orchestrator
	speech   provider.SpeechProvider
	catalog  *catalog.Catalog
}

// NewRouter creates a fully wired Chi router.
func NewRouter(cfg *config.Config, registry *provider.Registry, orch *orchestrator.Orchestrator, speech provider.SpeechProvider, cat *catalog.Catalog) *chi.Mux {
	s := &Server{cfg: cfg, registry: registry, orch: orch, speech: speech, catalog: cat}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(CORSMiddleware(cfg.AllowedOrigin))

	limiter := NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	r.Use(limiter.Middleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.handleAPIInfo)
		r.Route("/chat", func(r chi.Router) {
			r.Post("/", s.handleChat)
			r.Get("/providers", s.handleProviders)
		})
		r.Route("/speech", func(r chi.Router) {
			r.Post("/speak", s.handleSpeak)
			r.Get("/voices", s.handleVoices)
			r.Get("/languages", s.handleLanguages)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"error":   "Endpoint not found",
			"path":    r.URL.Path,
			"method":  r.Method,
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"message":     "VocaMate Backend is running!",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"version":     serviceVersion,
		"environment": s.cfg.Env,
	})
}

func (s *Server) handleAPIInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"name":        "VocaMate API",
		"version":     serviceVersion,
		"description": "Backend API for VocaMate - AI Voice Assistant",
		"endpoints": map[string]string{
			"chat":   "/api/chat",
			"speech": "/api/speech",
			"health": "/health",
		},
		"features": []string{
			"AI Chat with OpenAI GPT-4 and Google Gemini",
			"Text-to-Speech with Murf AI",
			"Multi-language support",
			"Conversation context management",
		},
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req orchestrator.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	resp, err := s.orch.HandleChat(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleProviders(w http.ResponseWriter, r *http.Request) {
	type providerInfo struct {
		ID        string   `json:"id"`
		Name      string   `json:"name"`
		Available bool     `json:"available"`
		Features  []string `json:"features"`
	}

	var providers []providerInfo
	for _, p := range s.registry.ChatProviders() {
		name := providerDisplayNames[p.Name()]
		if name == "" {
			name = p.Name()
		}
		providers = append(providers, providerInfo{
			ID:        p.Name(),
			Name:      name,
			Available: p.Available(),
			Features:  []string{"Text Generation", "Conversation", "Multi-language"},
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"providers": providers,
		"speechSynthesis": map[string]any{
			"available": s.speech.Available(),
			"provider":  "Murf AI",
			"formats":   []string{"MP3", "WAV"},
			"features":  []string{"Multi-voice", "Pitch Control", "Rate Control", "Style Control"},
		},
	})
}

// speakRequest is the direct synthesis payload. Unlike the chat path,
// no voice defaulting happens here: voiceId is the caller's job.
type speakRequest struct {
	Text           string   `json:"text"`
	VoiceID        string   `json:"voiceId"`
	Format         string   `json:"format"`
	EncodeAsBase64 *bool    `json:"encodeAsBase64"`
	Pitch          *float64 `json:"pitch"`
	Rate           *float64 `json:"rate"`
	Style          string   `json:"style"`
	ChannelType    string   `json:"channelType"`
	SampleRate     *int     `json:"sampleRate"`
}

func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	var req speakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	result, err := s.speech.Synthesize(r.Context(), provider.SpeechRequest{
		Text:           req.Text,
		VoiceID:        req.VoiceID,
		Format:         req.Format,
		EncodeAsBase64: req.EncodeAsBase64 == nil || *req.EncodeAsBase64,
		Prosody: provider.ProsodyOptions{
			Pitch:       req.Pitch,
			Rate:        req.Rate,
			Style:       req.Style,
			ChannelType: req.ChannelType,
			SampleRate:  req.SampleRate,
		},
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"audioUrl":    result.AudioURL,
		"audioBase64": result.AudioBase64,
		"voiceId":     result.VoiceID,
	})
}

func (s *Server) handleVoices(w http.ResponseWriter, r *http.Request) {
	voices, err := s.speech.Voices(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"voices":  voices,
	})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"languages": s.catalog.Languages,
	})
}

// writeError maps adapter error kinds to HTTP statuses. Unclassified
// failures get a generic message in production so upstream details
// never reach the caller.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := err.Error()

	switch provider.KindOf(err) {
	case provider.KindInvalidRequest:
		status = http.StatusBadRequest
	case provider.KindUnknown:
		slog.Error("unclassified handler error", "error", err)
		if s.cfg.Production() {
			msg = "Internal server error"
		}
	}

	writeJSON(w, status, map[string]any{
		"success":   false,
		"error":     msg,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
