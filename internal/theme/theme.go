// Package theme handles loading and resolving the demo's appearance
// configuration: spinner frames, widget labels, per-mode colors, and
// size-conditional variants.
package theme

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/madnoberson/tui-widgets/interaction"
	"github.com/madnoberson/tui-widgets/internal/pathutil"
	"github.com/madnoberson/tui-widgets/widget"
)

// Duration wraps time.Duration for YAML values like "80ms".
type Duration time.Duration

// UnmarshalYAML parses Go duration syntax.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config is the top-level theme configuration.
type Config struct {
	Spinner  SpinnerSection `yaml:"spinner,omitempty"`
	Text     TextSection    `yaml:"text,omitempty"`
	Button   ButtonSection  `yaml:"button,omitempty"`
	Variants []Variant      `yaml:"variants,omitempty"`
}

// SpinnerSection configures the demo spinner.
type SpinnerSection struct {
	Frames   []string `yaml:"frames,omitempty"`
	Interval Duration `yaml:"interval,omitempty"`
	Label    string   `yaml:"label,omitempty"`
	Color    string   `yaml:"color,omitempty"`
}

// TextSection configures the demo label.
type TextSection struct {
	Content string `yaml:"content,omitempty"`
	Color   string `yaml:"color,omitempty"`
}

// ButtonSection configures the demo button. Colors maps interaction
// mode names (idle, hovered, focused, pressed, disabled) to foreground
// colors.
type ButtonSection struct {
	Label    string            `yaml:"label,omitempty"`
	Colors   map[string]string `yaml:"colors,omitempty"`
	Disabled bool              `yaml:"disabled,omitempty"`
}

// Variant overrides sections of the base theme when its rule matches
// the terminal size. Later matching variants win.
type Variant struct {
	When    string          `yaml:"when"`
	Spinner *SpinnerSection `yaml:"spinner,omitempty"`
	Text    *TextSection    `yaml:"text,omitempty"`
	Button  *ButtonSection  `yaml:"button,omitempty"`

	rule *Rule
}

var modesByName = map[string]interaction.Mode{
	"idle":     interaction.Idle,
	"hovered":  interaction.Hovered,
	"focused":  interaction.Focused,
	"pressed":  interaction.Pressed,
	"disabled": interaction.Disabled,
}

// Default returns the built-in theme.
func Default() *Config {
	return &Config{
		Spinner: SpinnerSection{
			Frames:   widget.DefaultFrames,
			Interval: Duration(80 * time.Millisecond),
			Label:    "working",
			Color:    "14",
		},
		Text: TextSection{
			Content: "tui-widgets showcase",
			Color:   "7",
		},
		Button: ButtonSection{
			Label: "Press me",
			Colors: map[string]string{
				"idle":     "8",
				"hovered":  "14",
				"focused":  "11",
				"pressed":  "10",
				"disabled": "240",
			},
		},
	}
}

// Load reads a theme file, merges it over the defaults, and compiles
// variant rules.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(pathutil.Expand(path))
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	for i := range cfg.Variants {
		v := &cfg.Variants[i]
		if v.When == "" {
			return nil, fmt.Errorf("invalid theme: variant %d has no when rule", i)
		}
		rule, err := CompileRule(v.When)
		if err != nil {
			return nil, fmt.Errorf("invalid theme: %w", err)
		}
		v.rule = rule
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Spinner.Frames) == 0 {
		return errors.New("spinner frames must not be empty")
	}
	if c.Spinner.Interval <= 0 {
		return errors.New("spinner interval must be positive")
	}
	if err := validateColors(c.Button.Colors); err != nil {
		return err
	}
	for i := range c.Variants {
		if v := c.Variants[i].Button; v != nil {
			if err := validateColors(v.Colors); err != nil {
				return fmt.Errorf("variant %d: %w", i, err)
			}
		}
	}
	return nil
}

func validateColors(colors map[string]string) error {
	for name := range colors {
		if _, ok := modesByName[name]; !ok {
			return fmt.Errorf("unknown button mode %q", name)
		}
	}
	return nil
}

// Resolve applies the variants matching the given terminal size, in
// order, and returns the effective theme. The receiver is not modified.
func (c *Config) Resolve(width, height int) (*Config, error) {
	out := *c
	out.Variants = nil
	env := Env{Width: width, Height: height}

	for i := range c.Variants {
		v := &c.Variants[i]
		matched, err := v.rule.Matches(env)
		if err != nil {
			return nil, err
		}
		if !matched {
			continue
		}

		if v.Spinner != nil {
			out.Spinner = mergeSpinner(out.Spinner, *v.Spinner)
		}
		if v.Text != nil {
			out.Text = mergeText(out.Text, *v.Text)
		}
		if v.Button != nil {
			out.Button = mergeButton(out.Button, *v.Button)
		}
	}

	return &out, nil
}

func mergeSpinner(base, over SpinnerSection) SpinnerSection {
	if len(over.Frames) > 0 {
		base.Frames = over.Frames
	}
	if over.Interval > 0 {
		base.Interval = over.Interval
	}
	if over.Label != "" {
		base.Label = over.Label
	}
	if over.Color != "" {
		base.Color = over.Color
	}
	return base
}

func mergeText(base, over TextSection) TextSection {
	if over.Content != "" {
		base.Content = over.Content
	}
	if over.Color != "" {
		base.Color = over.Color
	}
	return base
}

func mergeButton(base, over ButtonSection) ButtonSection {
	if over.Label != "" {
		base.Label = over.Label
	}
	if len(over.Colors) > 0 {
		merged := make(map[string]string, len(base.Colors)+len(over.Colors))
		for k, v := range base.Colors {
			merged[k] = v
		}
		for k, v := range over.Colors {
			merged[k] = v
		}
		base.Colors = merged
	}
	if over.Disabled {
		base.Disabled = true
	}
	return base
}

// SpinnerConfig converts the section into a widget config.
func (s SpinnerSection) SpinnerConfig() widget.SpinnerConfig {
	return widget.SpinnerConfig{
		Frames:     s.Frames,
		Interval:   time.Duration(s.Interval),
		Label:      s.Label,
		Style:      colorStyle(s.Color),
		LabelStyle: lipgloss.NewStyle(),
	}
}

// TextConfig converts the section into a widget config.
func (t TextSection) TextConfig() widget.TextConfig {
	return widget.TextConfig{
		Content: t.Content,
		Style:   colorStyle(t.Color),
	}
}

// ButtonConfig converts the section into a widget config.
func (b ButtonSection) ButtonConfig() widget.ButtonConfig {
	styles := make(map[interaction.Mode]lipgloss.Style, len(b.Colors))
	for name, color := range b.Colors {
		styles[modesByName[name]] = colorStyle(color)
	}
	return widget.ButtonConfig{
		Label:    b.Label,
		Styles:   styles,
		Disabled: b.Disabled,
	}
}

func colorStyle(color string) lipgloss.Style {
	if color == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
