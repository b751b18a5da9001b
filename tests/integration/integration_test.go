package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madnoberson/tui-widgets/cell"
	"github.com/madnoberson/tui-widgets/interaction"
	"github.com/madnoberson/tui-widgets/internal/theme"
	"github.com/madnoberson/tui-widgets/widget"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestThemeDrivesSpinner_EndToEnd(t *testing.T) {
	path := writeTheme(t, `spinner:
  frames: ["-", "="]
  interval: 50ms
  label: syncing
`)

	cfg, err := theme.Load(path)
	require.NoError(t, err)

	spinner, err := widget.NewSpinner(cfg.Spinner.SpinnerConfig())
	require.NoError(t, err)

	buf := cell.NewBuffer(20, 1)
	spinner.Render(cell.NewRect(0, 0, 20, 1), buf)
	assert.Equal(t, "- syncing", strings.TrimRight(buf.Line(0), " "))

	base := time.Now()
	assert.False(t, spinner.Advance(base), "first offer only records the baseline")
	require.True(t, spinner.Advance(base.Add(50*time.Millisecond)))

	buf = cell.NewBuffer(20, 1)
	spinner.Render(cell.NewRect(0, 0, 20, 1), buf)
	assert.Equal(t, "= syncing", strings.TrimRight(buf.Line(0), " "))
}

func TestThemeVariantChangesText_EndToEnd(t *testing.T) {
	path := writeTheme(t, `text:
  content: narrow view
variants:
  - when: "width >= 100"
    text:
      content: wide view
`)

	cfg, err := theme.Load(path)
	require.NoError(t, err)

	tests := []struct {
		width int
		want  string
	}{
		{width: 80, want: "narrow view"},
		{width: 120, want: "wide view"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("width_%d", tt.width), func(t *testing.T) {
			resolved, err := cfg.Resolve(tt.width, 24)
			require.NoError(t, err)

			text, err := widget.NewText(resolved.Text.TextConfig())
			require.NoError(t, err)

			buf := cell.NewBuffer(20, 1)
			info := text.Render(cell.NewRect(0, 0, 20, 1), buf)

			assert.False(t, info.Truncated)
			assert.Equal(t, tt.want, strings.TrimRight(buf.Line(0), " "))
		})
	}
}

func TestTextTruncation_EndToEnd(t *testing.T) {
	path := writeTheme(t, `text:
  content: Download complete
`)

	cfg, err := theme.Load(path)
	require.NoError(t, err)

	text, err := widget.NewText(cfg.Text.TextConfig())
	require.NoError(t, err)

	buf := cell.NewBuffer(10, 1)
	info := text.Render(cell.NewRect(0, 0, 10, 1), buf)

	assert.True(t, info.Truncated)
	assert.Equal(t, "Download …", buf.Line(0))
}

func TestButtonActivation_EndToEnd(t *testing.T) {
	path := writeTheme(t, `button:
  label: Deploy
`)

	cfg, err := theme.Load(path)
	require.NoError(t, err)

	button := widget.NewButton(cfg.Button.ButtonConfig())

	// Hover, press, release over the widget: exactly one activation.
	assert.False(t, button.HandleEvent(interaction.PointerEnter))
	assert.False(t, button.HandleEvent(interaction.PressStart))
	assert.Equal(t, interaction.Pressed, button.Mode())
	assert.True(t, button.HandleEvent(interaction.PressEndInside))
	assert.Equal(t, interaction.Hovered, button.Mode())

	// A drag off the widget cancels the next press.
	assert.False(t, button.HandleEvent(interaction.PressStart))
	assert.False(t, button.HandleEvent(interaction.PressEndOutside))
	assert.Equal(t, interaction.Idle, button.Mode())

	buf := cell.NewBuffer(10, 1)
	info := button.Render(cell.NewRect(0, 0, 10, 1), buf)

	assert.Equal(t, 10, info.CellsWritten, "button pads its row")
	assert.Equal(t, "Deploy    ", buf.Line(0))
}

func TestDisabledButton_EndToEnd(t *testing.T) {
	path := writeTheme(t, `button:
  label: Deploy
  disabled: true
`)

	cfg, err := theme.Load(path)
	require.NoError(t, err)

	button := widget.NewButton(cfg.Button.ButtonConfig())
	assert.Equal(t, interaction.Disabled, button.Mode())

	assert.False(t, button.HandleEvent(interaction.PressStart))
	assert.False(t, button.HandleEvent(interaction.PressEndInside))
	assert.Equal(t, interaction.Disabled, button.Mode())

	assert.False(t, button.HandleEvent(interaction.Enable))
	assert.Equal(t, interaction.Idle, button.Mode())
}

func TestCycleLimitedSpinner_EndToEnd(t *testing.T) {
	path := writeTheme(t, `spinner:
  frames: ["1", "2"]
  interval: 10ms
`)

	cfg, err := theme.Load(path)
	require.NoError(t, err)

	spinnerCfg := cfg.Spinner.SpinnerConfig()
	spinnerCfg.Cycles = 1

	spinner, err := widget.NewSpinner(spinnerCfg)
	require.NoError(t, err)

	now := time.Now()
	spinner.Advance(now)
	for i := 1; i <= 4; i++ {
		spinner.Advance(now.Add(time.Duration(i) * 10 * time.Millisecond))
	}

	assert.True(t, spinner.Done())
	assert.Equal(t, "2", spinner.Frame(), "finished spinner holds its last frame")
}
