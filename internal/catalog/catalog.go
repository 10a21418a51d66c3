// Package catalog holds the voice, style and language tables the
// orchestrator and API serve from. Built-in defaults cover the shipped
// locales; a YAML file can override any section.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Voice identifies one synthesizable voice.
type Voice struct {
	VoiceID string `yaml:"voiceId" json:"voiceId"`
	Name    string `yaml:"name" json:"name"`
	Style   string `yaml:"style" json:"style"`
}

// LanguageVoices groups the default and alternative voices for a language.
type LanguageVoices struct {
	Default      Voice   `yaml:"default" json:"default"`
	Alternatives []Voice `yaml:"alternatives" json:"alternatives"`
}

// StylePreset maps a speaking style to prosody values.
type StylePreset struct {
	Pitch float64 `yaml:"pitch" json:"pitch"`
	Rate  float64 `yaml:"rate" json:"rate"`
}

// Language is one supported conversation language.
type Language struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
}

// Catalog is the full voice/style/language configuration.
type Catalog struct {
	Voices    map[string]LanguageVoices `yaml:"voices"`
	Styles    map[string]StylePreset    `yaml:"styles"`
	Languages []Language                `yaml:"languages"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Voices: map[string]LanguageVoices{
			"en": {
				Default: Voice{VoiceID: "en-US-natalie", Name: "Natalie (US)", Style: "conversational"},
				Alternatives: []Voice{
					{VoiceID: "en-US-miles", Name: "Miles (US)", Style: "professional"},
					{VoiceID: "en-UK-ruby", Name: "Ruby (UK)", Style: "friendly"},
					{VoiceID: "en-AU-leyton", Name: "Leyton (AU)", Style: "casual"},
				},
			},
			"hi": {
				Default: Voice{VoiceID: "hi-IN-shaan", Name: "Shaan", Style: "conversational"},
				Alternatives: []Voice{
					{VoiceID: "hi-IN-shweta", Name: "Shweta", Style: "professional"},
				},
			},
			"es": {
				Default: Voice{VoiceID: "es-ES-elvira", Name: "Elvira (Spain)", Style: "conversational"},
				Alternatives: []Voice{
					{VoiceID: "es-ES-enrique", Name: "Enrique (Spain)", Style: "professional"},
					{VoiceID: "es-MX-alejandro", Name: "Alejandro (Mexico)", Style: "casual"},
				},
			},
			"fr": {
				Default: Voice{VoiceID: "fr-FR-adélie", Name: "Adélie", Style: "conversational"},
				Alternatives: []Voice{
					{VoiceID: "fr-FR-justine", Name: "Justine", Style: "professional"},
					{VoiceID: "fr-FR-louis", Name: "Louis", Style: "casual"},
				},
			},
			"de": {
				Default: Voice{VoiceID: "de-DE-matthias", Name: "Matthias", Style: "professional"},
				Alternatives: []Voice{
					{VoiceID: "de-DE-josephine", Name: "Josephine", Style: "conversational"},
					{VoiceID: "de-DE-björn", Name: "Björn", Style: "promo"},
				},
			},
			"ja": {
				Default: Voice{VoiceID: "ja-JP-kenji", Name: "Kenji", Style: "conversational"},
				Alternatives: []Voice{
					{VoiceID: "ja-JP-kimi", Name: "Kimi", Style: "conversational"},
				},
			},
			"ko": {
				Default: Voice{VoiceID: "ko-KR-hwan", Name: "Hwan", Style: "conversational"},
				Alternatives: []Voice{
					{VoiceID: "ko-KR-sanghoon", Name: "Sanghoon", Style: "promo"},
				},
			},
		},
		Styles: map[string]StylePreset{
			"conversational": {Pitch: 1.0, Rate: 1.0},
			"professional":   {Pitch: 0.9, Rate: 0.95},
			"friendly":       {Pitch: 1.1, Rate: 1.05},
			"casual":         {Pitch: 1.05, Rate: 1.1},
			"polite":         {Pitch: 0.95, Rate: 0.9},
		},
		Languages: []Language{
			{Code: "en", Name: "English"},
			{Code: "hi", Name: "Hindi"},
			{Code: "es", Name: "Spanish"},
			{Code: "fr", Name: "French"},
			{Code: "de", Name: "German"},
			{Code: "ja", Name: "Japanese"},
			{Code: "ko", Name: "Korean"},
			{Code: "zh", Name: "Chinese"},
			{Code: "ar", Name: "Arabic"},
			{Code: "pt", Name: "Portuguese"},
			{Code: "ru", Name: "Russian"},
			{Code: "it", Name: "Italian"},
		},
	}
}

// Load returns the built-in catalog, overlaid with the YAML file at
// path when one is given. Sections present in the file replace the
// corresponding built-in sections wholesale.
func Load(path string) (*Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %q: %w", path, err)
	}

	var override Catalog
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse catalog file %q: %w", path, err)
	}

	if len(override.Voices) > 0 {
		c.Voices = override.Voices
	}
	if len(override.Styles) > 0 {
		c.Styles = override.Styles
	}
	if len(override.Languages) > 0 {
		c.Languages = override.Languages
	}
	return c, nil
}

// DefaultVoice returns the default voice for a language code.
func (c *Catalog) DefaultVoice(language string) (Voice, bool) {
	lv, ok := c.Voices[language]
	if !ok {
		return Voice{}, false
	}
	return lv.Default, true
}

// Style returns the prosody preset for a speaking style name.
func (c *Catalog) Style(name string) (StylePreset, bool) {
	s, ok := c.Styles[name]
	return s, ok
}
