package config

import "actionsearch/internal/domain"

// Opacity bounds and scroll step, in percent.
const (
	MinOpacity  = 10
	MaxOpacity  = 100
	OpacityStep = 5
)

// DialogGeometry is the persisted position, size and opacity of the search
// dialog. Negative sizes and positions mean "not set yet".
type DialogGeometry struct {
	X       int `toml:"x" mapstructure:"x"`
	Y       int `toml:"y" mapstructure:"y"`
	Width   int `toml:"width" mapstructure:"width"`
	Height  int `toml:"height" mapstructure:"height"`
	Opacity int `toml:"opacity" mapstructure:"opacity"`
}

// Place recomputes invalid or out-of-range values against the parent
// window and the screen, and returns the rectangle the dialog opens at.
// The dialog always opens one row high; Height is the size used once
// results are shown.
func (g *DialogGeometry) Place(parent, screen domain.Rect) domain.Rect {
	if g.Width < 0 {
		g.Width = parent.Width / 2
	} else if g.Width > screen.Width {
		g.Width = parent.Width
	}
	if g.Height < 0 {
		g.Height = parent.Height / 2
	} else if g.Height > screen.Height {
		g.Height = parent.Height
	}

	if g.X < 0 || g.X+g.Width > screen.Width {
		g.X = parent.X + (parent.Width-g.Width)/2
	}
	if g.Y < 0 || g.Y+g.Height > screen.Height {
		g.Y = parent.Y + (parent.Height-g.Height)/2
	}
	g.Opacity = clampOpacity(g.Opacity)

	return domain.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: 1}
}

// Configure records the window geometry after the user moved or resized
// the dialog. The height is only remembered while results are visible,
// since the collapsed dialog is a single row.
func (g *DialogGeometry) Configure(r domain.Rect, resultsVisible bool) {
	g.X = max(r.X, 0)
	g.Y = max(r.Y, 0)
	g.Width = r.Width
	if resultsVisible {
		g.Height = r.Height
	}
}

// AdjustOpacity moves the opacity one step up or down and reports whether
// the value changed.
func (g *DialogGeometry) AdjustOpacity(up bool) bool {
	next := g.Opacity
	if up {
		next = min(g.Opacity+OpacityStep, MaxOpacity)
	} else {
		next = max(g.Opacity-OpacityStep, MinOpacity)
	}
	if next == g.Opacity {
		return false
	}
	g.Opacity = next
	return true
}

func clampOpacity(v int) int {
	if v == 0 {
		return MaxOpacity
	}
	return min(max(v, MinOpacity), MaxOpacity)
}
