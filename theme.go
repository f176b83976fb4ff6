package scribe

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// Theme is the declarative styling section of the site config: a custom font
// stack plus the knobs the generated typography rules read. Values land as
// CSS custom properties in the emitted stylesheet.
type Theme struct {
	FontFamily     string `yaml:"font_family"`
	MonoFontFamily string `yaml:"mono_font_family"`
	AccentColor    string `yaml:"accent_color"`
	TextColor      string `yaml:"text_color"`
	ContentWidth   string `yaml:"content_width"`
}

func (t Theme) withDefaults() Theme {
	if t.FontFamily == "" {
		t.FontFamily = `"Atkinson Hyperlegible", system-ui, sans-serif`
	}
	if t.MonoFontFamily == "" {
		t.MonoFontFamily = "ui-monospace, SFMono-Regular, Menlo, monospace"
	}
	if t.AccentColor == "" {
		t.AccentColor = "#2563eb"
	}
	if t.TextColor == "" {
		t.TextColor = "#1f2937"
	}
	if t.ContentWidth == "" {
		t.ContentWidth = "65ch"
	}
	return t
}

// renderStylesheet fills the stylesheet template with the theme. A stylesheet
// in the template dir overrides the embedded one, same as page templates.
func renderStylesheet(theme Theme, templateDir string) ([]byte, error) {
	src, err := stylesheetSource(templateDir)
	if err != nil {
		return nil, err
	}

	t, err := template.New("style.css").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse stylesheet template: %w", err)
	}

	var b bytes.Buffer
	if err := t.Execute(&b, theme); err != nil {
		return nil, fmt.Errorf("render stylesheet: %w", err)
	}
	return b.Bytes(), nil
}

func stylesheetSource(templateDir string) ([]byte, error) {
	if templateDir != "" {
		src, err := os.ReadFile(filepath.Join(templateDir, "style.css"))
		if err == nil {
			return src, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return defaultTemplates.ReadFile("templates/style.css")
}
