package tui

import "github.com/madnoberson/tui-widgets/internal/util"

type LayoutMode int

const (
	LayoutSingleColumn LayoutMode = iota

	LayoutTwoColumn
)

// Layout splits the terminal between the widget pane and the activation
// log. Narrow terminals drop the log entirely.
type Layout struct {
	Mode        LayoutMode
	Width       int
	Height      int
	WidgetWidth int
	LogWidth    int
}

const (
	minWidthTwoColumn = 60

	wideTerminalWidth = 101

	// The widget pane takes a fixed share; the log gets the rest.
	mediumWidgetPercent = 55

	wideWidgetPercent = 50
)

func NewLayout(width, height int) Layout {
	if width <= 0 {
		return Layout{
			Mode:   LayoutSingleColumn,
			Width:  width,
			Height: height,
		}
	}

	if width < minWidthTwoColumn {
		return Layout{
			Mode:        LayoutSingleColumn,
			Width:       width,
			Height:      height,
			WidgetWidth: width,
		}
	}

	percent := mediumWidgetPercent
	if width >= wideTerminalWidth {
		percent = wideWidgetPercent
	}

	widgetWidth := util.Percent(width, percent)

	return Layout{
		Mode:        LayoutTwoColumn,
		Width:       width,
		Height:      height,
		WidgetWidth: widgetWidth,
		LogWidth:    width - widgetWidth,
	}
}

func (l Layout) IsTwoColumn() bool {
	return l.Mode == LayoutTwoColumn
}
