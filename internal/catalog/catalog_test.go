package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vocamate/vocamate/internal/catalog"
)

func TestDefault_VoicePerLanguage(t *testing.T) {
	c := catalog.Default()

	v, ok := c.DefaultVoice("hi")
	if !ok {
		t.Fatal("expected a Hindi default voice")
	}
	if v.VoiceID != "hi-IN-shaan" {
		t.Errorf("unexpected voice: %q", v.VoiceID)
	}

	if _, ok := c.DefaultVoice("zz"); ok {
		t.Error("expected no voice for an unknown language")
	}
}

func TestDefault_TwelveLanguages(t *testing.T) {
	c := catalog.Default()
	if len(c.Languages) != 12 {
		t.Errorf("expected 12 languages, got %d", len(c.Languages))
	}
	if c.Languages[0].Code != "en" {
		t.Errorf("expected English first, got %q", c.Languages[0].Code)
	}
}

func TestDefault_StylePresets(t *testing.T) {
	c := catalog.Default()

	s, ok := c.Style("professional")
	if !ok {
		t.Fatal("expected the professional preset")
	}
	if s.Pitch != 0.9 || s.Rate != 0.95 {
		t.Errorf("unexpected preset: %+v", s)
	}

	if _, ok := c.Style("shouty"); ok {
		t.Error("expected no preset for an unknown style")
	}
}

func TestLoad_EmptyPathUsesBuiltins(t *testing.T) {
	c, err := catalog.Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.DefaultVoice("en"); !ok {
		t.Error("expected the built-in catalog")
	}
}

func TestLoad_YAMLOverridesVoices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voices.yaml")
	data := `
voices:
  en:
    default:
      voiceId: en-US-custom
      name: Custom
      style: conversational
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	c, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, ok := c.DefaultVoice("en")
	if !ok || v.VoiceID != "en-US-custom" {
		t.Errorf("expected the overridden voice, got %+v", v)
	}

	// Untouched sections keep the built-ins.
	if len(c.Languages) != 12 {
		t.Errorf("expected built-in languages preserved, got %d", len(c.Languages))
	}
}

func TestLoad_BadFile(t *testing.T) {
	if _, err := catalog.Load("/nonexistent/voices.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "voices.yaml")
	os.WriteFile(path, []byte("voices: [not: a: map"), 0644)
	if _, err := catalog.Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
