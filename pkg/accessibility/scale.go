// Package accessibility holds the clamped presentation-scale state offered to
// visitors: a per-surface font size and a page zoom level. The values only
// drive presentation; nothing else in the system reads them.
package accessibility

// Bounds configures one clamped font-size surface. The bounds are deliberately
// tuned per page (the site layout uses a wider range than the dense form
// pages), so they are carried with the state instead of being unified.
type Bounds struct {
	Min  int `json:"min"`
	Max  int `json:"max"`
	Step int `json:"step"`
}

// Surface presets matching the pages they came from.
var (
	// LayoutBounds is the sitewide header/layout control (A+/A- in steps of 2).
	LayoutBounds = Bounds{Min: 12, Max: 24, Step: 2}
	// PageBounds is the per-page toolbar found on the form-heavy pages.
	PageBounds = Bounds{Min: 14, Max: 24, Step: 1}
)

const (
	ZoomMin  = 0.5
	ZoomMax  = 2.0
	ZoomStep = 0.1
)

// Prefs is a visitor's accessibility state. Zero value is not meaningful;
// use NewPrefs.
type Prefs struct {
	FontSizePx int     `json:"font_size_px"`
	ZoomLevel  float64 `json:"zoom_level"`
	Bounds     Bounds  `json:"bounds"`
}

// NewPrefs returns defaults for a surface: the original pages start at 16px
// (layout) or 18px (forms) and no zoom.
func NewPrefs(bounds Bounds) Prefs {
	base := 16
	if bounds == PageBounds {
		base = 18
	}
	return Prefs{FontSizePx: base, ZoomLevel: 1.0, Bounds: bounds}
}

// AdjustFont moves the font size by delta steps, clamped to the surface
// bounds. Adjusting past a bound repeatedly never exceeds it.
func (p Prefs) AdjustFont(delta int) Prefs {
	p.FontSizePx = clampInt(p.FontSizePx+delta*p.Bounds.Step, p.Bounds.Min, p.Bounds.Max)
	return p
}

// AdjustZoom moves the zoom level by delta tenths, clamped to [0.5, 2.0].
func (p Prefs) AdjustZoom(delta int) Prefs {
	p.ZoomLevel = clampFloat(p.ZoomLevel+float64(delta)*ZoomStep, ZoomMin, ZoomMax)
	return p
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
