package provider

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages the available chat and speech providers.
type Registry struct {
	mu     sync.RWMutex
	chat   map[string]ChatProvider
	speech map[string]SpeechProvider
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		chat:   make(map[string]ChatProvider),
		speech: make(map[string]SpeechProvider),
	}
}

// RegisterChat registers a chat provider. Providers are registered even
// without a credential so a selected-but-unconfigured provider surfaces
// a NotConfigured error instead of a lookup failure.
func (r *Registry) RegisterChat(p ChatProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chat[p.Name()] = p
}

// RegisterSpeech registers a speech provider.
func (r *Registry) RegisterSpeech(p SpeechProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.speech[p.Name()] = p
}

// Chat returns the named chat provider.
func (r *Registry) Chat(name string) (ChatProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.chat[name]
	if !ok {
		return nil, fmt.Errorf("chat provider %q not found", name)
	}
	return p, nil
}

// Speech returns the named speech provider.
func (r *Registry) Speech(name string) (SpeechProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.speech[name]
	if !ok {
		return nil, fmt.Errorf("speech provider %q not found", name)
	}
	return p, nil
}

// ChatProviders returns all registered chat providers sorted by name.
func (r *Registry) ChatProviders() []ChatProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ChatProvider, 0, len(r.chat))
	for _, p := range r.chat {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// SpeechProviders returns all registered speech providers sorted by name.
func (r *Registry) SpeechProviders() []SpeechProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]SpeechProvider, 0, len(r.speech))
	for _, p := range r.speech {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
