package accessibility

import (
	"math"
	"math/rand"
	"testing"
)

func TestAdjustFontClamps(t *testing.T) {
	p := NewPrefs(LayoutBounds)

	for i := 0; i < 50; i++ {
		p = p.AdjustFont(1)
	}
	if p.FontSizePx != LayoutBounds.Max {
		t.Errorf("FontSizePx = %d, want max %d", p.FontSizePx, LayoutBounds.Max)
	}

	for i := 0; i < 50; i++ {
		p = p.AdjustFont(-1)
	}
	if p.FontSizePx != LayoutBounds.Min {
		t.Errorf("FontSizePx = %d, want min %d", p.FontSizePx, LayoutBounds.Min)
	}
}

func TestPerSurfaceBounds(t *testing.T) {
	layout := NewPrefs(LayoutBounds)
	page := NewPrefs(PageBounds)

	if layout.FontSizePx != 16 {
		t.Errorf("layout base = %d, want 16", layout.FontSizePx)
	}
	if page.FontSizePx != 18 {
		t.Errorf("page base = %d, want 18", page.FontSizePx)
	}

	// Layout steps by 2, page steps by 1.
	if got := layout.AdjustFont(1).FontSizePx; got != 18 {
		t.Errorf("layout after +1 step = %d, want 18", got)
	}
	if got := page.AdjustFont(1).FontSizePx; got != 19 {
		t.Errorf("page after +1 step = %d, want 19", got)
	}

	// Page surface floors at 14, not 12.
	for i := 0; i < 20; i++ {
		page = page.AdjustFont(-1)
	}
	if page.FontSizePx != 14 {
		t.Errorf("page floor = %d, want 14", page.FontSizePx)
	}
}

func TestAdjustZoomClamps(t *testing.T) {
	p := NewPrefs(LayoutBounds)

	for i := 0; i < 100; i++ {
		p = p.AdjustZoom(1)
	}
	if math.Abs(p.ZoomLevel-ZoomMax) > 1e-9 {
		t.Errorf("ZoomLevel = %f, want %f", p.ZoomLevel, ZoomMax)
	}

	for i := 0; i < 100; i++ {
		p = p.AdjustZoom(-1)
	}
	if math.Abs(p.ZoomLevel-ZoomMin) > 1e-9 {
		t.Errorf("ZoomLevel = %f, want %f", p.ZoomLevel, ZoomMin)
	}
}

func TestRandomDeltaSequenceStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := NewPrefs(PageBounds)

	for i := 0; i < 1000; i++ {
		delta := rng.Intn(7) - 3
		p = p.AdjustFont(delta)
		p = p.AdjustZoom(delta)

		if p.FontSizePx < p.Bounds.Min || p.FontSizePx > p.Bounds.Max {
			t.Fatalf("step %d: FontSizePx %d out of [%d,%d]", i, p.FontSizePx, p.Bounds.Min, p.Bounds.Max)
		}
		if p.ZoomLevel < ZoomMin-1e-9 || p.ZoomLevel > ZoomMax+1e-9 {
			t.Fatalf("step %d: ZoomLevel %f out of [%f,%f]", i, p.ZoomLevel, ZoomMin, ZoomMax)
		}
	}
}
