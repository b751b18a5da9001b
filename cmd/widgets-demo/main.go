package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/madnoberson/tui-widgets/internal/theme"
	"github.com/madnoberson/tui-widgets/internal/tui"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

type CLI struct {
	Theme   string     `help:"Path to theme file" type:"path"`
	Run     RunCmd     `cmd:"" default:"withargs" help:"Run the widget showcase (default)"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type RunCmd struct {
	Interactive bool `help:"Prompt for the button label before starting"`
	Check       bool `help:"Validate the theme and exit without starting the UI"`
}

func (c *RunCmd) Run(cli *CLI) error {
	cfg, err := loadTheme(cli.Theme)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}

	if c.Check {
		fmt.Printf("theme ok: %d spinner frames, %d variant(s), button %q\n",
			len(cfg.Spinner.Frames), len(cfg.Variants), cfg.Button.Label)
		return nil
	}

	if c.Interactive {
		label, err := tui.NewLabelPrompter().Prompt("Button label", cfg.Button.Label)
		if err != nil {
			return err
		}
		cfg.Button.Label = label
	}

	model, err := tui.New(cfg)
	if err != nil {
		return fmt.Errorf("build UI: %w", err)
	}

	zone.NewGlobal()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

func loadTheme(path string) (*theme.Config, error) {
	if path == "" {
		return theme.Default(), nil
	}
	return theme.Load(path)
}

type VersionCmd struct{}

func (c *VersionCmd) Run(cli *CLI) error {
	fmt.Printf("widgets-demo %s (commit: %s, built: %s)\n", Version, Commit, Date)
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("widgets-demo"),
		kong.Description("Showcase of animated, interactive terminal widgets"),
		kong.UsageOnError(),
	)

	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
