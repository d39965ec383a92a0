// Package style defines the visual styling for the filter's terminal output.
//
// Styles use semantic names and adaptive colors declared in an embedded YAML
// file, so they adjust to light and dark terminal themes. Color is disabled
// automatically when stdout is not a terminal or the terminal reports a
// monochrome profile.
package style

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

//go:embed embedded/styles.yaml
var stylesYAML []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// config represents the complete styles configuration
type config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// registry maps semantic names to lipgloss styles
var registry map[string]lipgloss.Style

// colorEnabled reports whether styled output should carry color codes
var colorEnabled bool

func init() {
	colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) &&
		termenv.EnvColorProfile() != termenv.Ascii

	if err := loadStyles(stylesYAML); err != nil {
		panic(fmt.Sprintf("failed to load embedded styles: %v", err))
	}
}

// loadStyles parses the YAML definitions and builds the style registry
func loadStyles(data []byte) error {
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse styles: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry = make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		s := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if def.Foreground != "" {
			if c, ok := colors[def.Foreground]; ok && colorEnabled {
				s = s.Foreground(c)
			}
		}
		registry[name] = s
	}
	return nil
}

// Render applies the named style to the given text. Unknown style names
// return the text unchanged.
func Render(name, text string) string {
	s, ok := registry[name]
	if !ok {
		return text
	}
	return s.Render(text)
}

// Title renders text in the title style
func Title(text string) string { return Render("title", text) }

// Success renders text in the success style
func Success(text string) string { return Render("success", text) }

// Warning renders text in the warning style
func Warning(text string) string { return Render("warning", text) }

// Error renders text in the error style
func Error(text string) string { return Render("error", text) }

// Path renders a filesystem path in the path style
func Path(text string) string { return Render("path", text) }

// Muted renders text in the muted style
func Muted(text string) string { return Render("muted", text) }
