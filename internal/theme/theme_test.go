package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := writeTheme(t, `
spinner:
  label: syncing
button:
  label: Go
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "syncing", cfg.Spinner.Label)
	assert.Equal(t, "Go", cfg.Button.Label)
	// Untouched fields keep their defaults.
	assert.NotEmpty(t, cfg.Spinner.Frames)
	assert.Equal(t, Duration(80*time.Millisecond), cfg.Spinner.Interval)
}

func TestLoad_ParsesDurations(t *testing.T) {
	path := writeTheme(t, `
spinner:
  interval: 250ms
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, Duration(250*time.Millisecond), cfg.Spinner.Interval)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		errContain string
	}{
		{
			name:       "malformed yaml",
			content:    "spinner: [oops",
			errContain: "parse theme",
		},
		{
			name: "empty frames",
			content: `
spinner:
  frames: []
`,
			errContain: "frames must not be empty",
		},
		{
			name: "bad duration",
			content: `
spinner:
  interval: fast
`,
			errContain: "parse duration",
		},
		{
			name: "unknown button mode",
			content: `
button:
  colors:
    glowing: "12"
`,
			errContain: "unknown button mode",
		},
		{
			name: "variant without rule",
			content: `
variants:
  - text:
      content: wide
`,
			errContain: "no when rule",
		},
		{
			name: "variant with bad rule",
			content: `
variants:
  - when: "width >="
    text:
      content: wide
`,
			errContain: "compile rule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeTheme(t, tt.content))

			if tt.errContain == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errContain)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "read theme")
}

func TestResolve_AppliesMatchingVariants(t *testing.T) {
	path := writeTheme(t, `
text:
  content: base
variants:
  - when: "width >= 80"
    text:
      content: wide
  - when: "width >= 120"
    text:
      content: extra wide
    button:
      label: Wide button
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	tests := []struct {
		name        string
		width       int
		wantContent string
		wantButton  string
	}{
		{name: "narrow keeps base", width: 60, wantContent: "base", wantButton: "Press me"},
		{name: "first variant", width: 90, wantContent: "wide", wantButton: "Press me"},
		{name: "later variant wins", width: 140, wantContent: "extra wide", wantButton: "Wide button"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := cfg.Resolve(tt.width, 24)

			require.NoError(t, err)
			assert.Equal(t, tt.wantContent, resolved.Text.Content)
			assert.Equal(t, tt.wantButton, resolved.Button.Label)
		})
	}
}

func TestResolve_DoesNotMutateBase(t *testing.T) {
	path := writeTheme(t, `
variants:
  - when: "width >= 10"
    text:
      content: resolved
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	baseContent := cfg.Text.Content

	_, err = cfg.Resolve(100, 40)

	require.NoError(t, err)
	assert.Equal(t, baseContent, cfg.Text.Content)
}

func TestSectionConversions(t *testing.T) {
	cfg := Default()

	spinnerCfg := cfg.Spinner.SpinnerConfig()
	assert.Equal(t, cfg.Spinner.Frames, spinnerCfg.Frames)
	assert.Equal(t, 80*time.Millisecond, spinnerCfg.Interval)

	buttonCfg := cfg.Button.ButtonConfig()
	assert.Equal(t, "Press me", buttonCfg.Label)
	assert.Len(t, buttonCfg.Styles, 5)
}

func TestCompileRule_Matches(t *testing.T) {
	rule, err := CompileRule("width >= 80 && height > 10")
	require.NoError(t, err)

	matched, err := rule.Matches(Env{Width: 100, Height: 24})
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = rule.Matches(Env{Width: 100, Height: 5})
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestCompileRule_NonBoolean(t *testing.T) {
	_, err := CompileRule("width + 1")

	require.Error(t, err)
}

func TestRule_NilAlwaysMatches(t *testing.T) {
	var rule *Rule

	matched, err := rule.Matches(Env{})

	require.NoError(t, err)
	assert.True(t, matched)
}
