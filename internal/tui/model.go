// Package tui hosts the showcase program for the widget library. It owns
// the event loop concerns the widgets deliberately avoid: ticking the
// spinner, classifying keyboard and mouse input into interaction events,
// and compositing rendered buffers into panels.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/madnoberson/tui-widgets/cell"
	"github.com/madnoberson/tui-widgets/interaction"
	"github.com/madnoberson/tui-widgets/internal/theme"
	"github.com/madnoberson/tui-widgets/internal/util"
	"github.com/madnoberson/tui-widgets/widget"
)

// buttonZone identifies the button's mouse hit zone.
const buttonZone = "demo_button"

type tickMsg time.Time

// Model drives the three widgets from a bubbletea event loop.
type Model struct {
	base *theme.Config

	spinner *widget.Spinner
	text    *widget.Text
	button  *widget.Button

	layout Layout
	log    LogPanelModel
	width  int
	height int

	hovered     bool
	focused     bool
	activations int
	lastErr     string
}

// New builds the demo model from a loaded theme.
func New(cfg *theme.Config) (Model, error) {
	resolved, err := cfg.Resolve(0, 0)
	if err != nil {
		return Model{}, err
	}

	m := Model{base: cfg, log: NewLogPanel()}
	if err := m.buildWidgets(resolved); err != nil {
		return Model{}, err
	}
	return m, nil
}

// buildWidgets constructs the spinner and text from the resolved theme.
// The button keeps its interaction state across resizes, so it is built
// exactly once.
func (m *Model) buildWidgets(cfg *theme.Config) error {
	spinner, err := widget.NewSpinner(cfg.Spinner.SpinnerConfig())
	if err != nil {
		return fmt.Errorf("build spinner: %w", err)
	}

	text, err := widget.NewText(cfg.Text.TextConfig())
	if err != nil {
		return fmt.Errorf("build text: %w", err)
	}

	m.spinner = spinner
	m.text = text
	if m.button == nil {
		m.button = widget.NewButton(cfg.Button.ButtonConfig())
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.spinner.Interval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.spinner.Advance(time.Time(msg))
		return m, m.tickCmd()

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.layout = NewLayout(msg.Width, msg.Height)

	resolved, err := m.base.Resolve(msg.Width, msg.Height)
	if err != nil {
		m.lastErr = err.Error()
		return m
	}
	if err := m.buildWidgets(resolved); err != nil {
		m.lastErr = err.Error()
		return m
	}
	m.lastErr = ""

	if m.layout.IsTwoColumn() {
		m.log.SetSize(m.layout.LogWidth-2, m.panelHeight()-3)
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		if m.focused {
			m.button.HandleEvent(interaction.FocusLost)
			m.focused = false
		} else {
			m.button.HandleEvent(interaction.FocusGained)
			m.focused = m.button.Mode() == interaction.Focused
		}

	case "enter", " ":
		// Keyboard activation targets the focused widget, so focus it
		// first; the press itself is an instantaneous press and release
		// over the widget.
		if !m.focused {
			m.button.HandleEvent(interaction.FocusGained)
			m.focused = m.button.Mode() == interaction.Focused
		}
		m.button.HandleEvent(interaction.PressStart)
		if m.button.HandleEvent(interaction.PressEndInside) {
			m = m.recordActivation("keyboard")
		}

	case "d":
		if m.button.Mode() == interaction.Disabled {
			m.button.HandleEvent(interaction.Enable)
		} else {
			m.button.HandleEvent(interaction.Disable)
			m.focused = false
			m.hovered = false
		}

	case "p":
		if m.spinner.Paused() {
			m.spinner.Unpause()
		} else {
			m.spinner.Pause()
		}

	case "r":
		m.spinner.Reset()

	case "k", "up":
		m.log.ScrollUp(1)

	case "j", "down":
		m.log.ScrollDown(1)
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	inBounds := zone.Get(buttonZone).InBounds(msg)

	switch msg.Action {
	case tea.MouseActionMotion:
		m = m.syncHover(inBounds)

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m = m.syncHover(inBounds)
			if inBounds {
				m.button.HandleEvent(interaction.PressStart)
			}
		case tea.MouseButtonWheelUp:
			m.log.ScrollUp(1)
		case tea.MouseButtonWheelDown:
			m.log.ScrollDown(1)
		}

	case tea.MouseActionRelease:
		ev := interaction.PressEndOutside
		if inBounds {
			ev = interaction.PressEndInside
		}
		if m.button.HandleEvent(ev) {
			m = m.recordActivation("mouse")
		}
		m = m.syncHover(inBounds)
	}

	return m
}

// syncHover reconciles the machine with where the pointer actually is.
func (m Model) syncHover(inBounds bool) Model {
	if inBounds && !m.hovered {
		m.button.HandleEvent(interaction.PointerEnter)
	}
	if !inBounds && m.hovered {
		m.button.HandleEvent(interaction.PointerLeave)
	}
	m.hovered = inBounds
	return m
}

func (m Model) recordActivation(source string) Model {
	m.activations++
	line := fmt.Sprintf("#%d %q via %s", m.activations, m.button.Label(), source)
	m.log.Append(activationStyle.Render(line))
	return m
}

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	contentWidth := max(m.layout.WidgetWidth-2, 1)

	textBuf := cell.NewBuffer(contentWidth, 1)
	m.text.Render(cell.NewRect(0, 0, contentWidth, 1), textBuf)

	spinnerBuf := cell.NewBuffer(contentWidth, 1)
	m.spinner.Render(cell.NewRect(0, 0, contentWidth, 1), spinnerBuf)

	buttonWidth := util.Clamp(lipgloss.Width(m.button.Label())+4, 6, contentWidth)
	buttonBuf := cell.NewBuffer(buttonWidth, 1)
	m.button.Render(cell.NewRect(0, 0, buttonWidth, 1), buttonBuf)

	status := statusStyle.Render(fmt.Sprintf(
		"button: %s  •  activations: %d", m.button.Mode(), m.activations,
	))
	if m.lastErr != "" {
		status = statusStyle.Render("theme error: " + m.lastErr)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		textBuf.Render(),
		spinnerBuf.Render(),
		zone.Mark(buttonZone, buttonBuf.Render()),
		status,
		helpStyle.Render("tab focus • enter press • d disable • p pause • j/k scroll • q quit"),
	)

	left := RenderPanel(Panel{
		Title:       "widgets",
		Content:     body,
		Width:       m.layout.WidgetWidth,
		Height:      m.panelHeight(),
		BorderColor: FocusedBorderColor,
		Focused:     true,
	})

	if !m.layout.IsTwoColumn() {
		return zone.Scan(left)
	}

	right := RenderPanel(Panel{
		Title:       "activations",
		Content:     m.log.View(),
		Width:       m.layout.LogWidth,
		Height:      m.panelHeight(),
		BorderColor: UnfocusedBorderColor,
		Focused:     m.activations > 0,
	})

	return zone.Scan(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
}

func (m Model) panelHeight() int {
	return util.Clamp(m.height-1, 9, 24)
}
