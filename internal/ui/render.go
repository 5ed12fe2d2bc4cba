package ui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"yeardots/internal/debug"
	"yeardots/internal/grid"
	"yeardots/internal/settings"
)

// MinWidth is the absolute minimum terminal width we try to support.
// The grid itself needs 7 dot columns at pitch 2.
const MinWidth = 2*grid.Columns + 2

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 8

// glowRadius is how far the halo reaches, in dot radii.
const glowRadius = 3.0

// chromeRows is the vertical space the view spends around the grid:
// padding, title, clock, weekday header, status, and help lines.
const chromeRows = 10

// minVisibleRows is the smallest row window Frame will emit.
const minVisibleRows = 4

// SettingsSource is the renderer's read access to live settings. The
// renderer picks up changes on its next frame; no explicit notification
// is required beyond the palette apply.
type SettingsSource interface {
	Get() settings.Settings
}

// Renderer paints the year grid. It holds the current grid and palette
// and produces one frame string per animation tick.
type Renderer struct {
	src SettingsSource
	pal Palette

	g    grid.Grid
	rows int

	// Terminal dimensions from the last Resize, and how many grid
	// rows fit beside the chrome
	width   int
	height  int
	visible int

	// Animation loop state
	running bool
	origin  time.Time
}

// NewRenderer creates a renderer reading live settings from src.
func NewRenderer(src SettingsSource) *Renderer {
	return &Renderer{src: src}
}

// ApplyPalette installs a freshly built palette. Wired to the settings
// store's apply callback.
func (r *Renderer) ApplyPalette(p Palette) {
	r.pal = p
}

// Palette returns the active palette.
func (r *Renderer) Palette() Palette {
	return r.pal
}

// Grid returns the current grid.
func (r *Renderer) Grid() grid.Grid {
	return r.g
}

// BuildGrid rebuilds the grid wholesale for the given year and current
// day of year, then recomputes dimensions.
func (r *Renderer) BuildGrid(year, currentDayOfYear int) {
	debug.Log("rebuilding grid: year=%d day=%d", year, currentDayOfYear)
	r.g = grid.Build(year, currentDayOfYear)
	r.Resize(r.width, r.height)
}

// Resize recomputes layout dimensions from the current grid and the
// given terminal size: which portion of the grid fits beside the view
// chrome. Sizes below the supported minimum are clamped rather than
// rejected.
func (r *Renderer) Resize(width, height int) {
	if width < MinWidth {
		width = MinWidth
	}
	if height < MinHeight {
		height = MinHeight
	}
	r.width = width
	r.height = height
	r.rows = len(r.g.Rows)

	r.visible = height - chromeRows
	if r.visible < minVisibleRows {
		r.visible = minVisibleRows
	}
}

// visibleWindow returns the half-open row range Frame paints. When the
// grid is taller than the viewport the window is centered on today, so
// the current day never scrolls off-screen.
func (r *Renderer) visibleWindow() (start, end int) {
	rows := len(r.g.Rows)
	if rows <= r.visible {
		return 0, rows
	}

	todayRow, _ := r.g.TodayPosition()
	if todayRow < 0 {
		todayRow = 0
	}

	start = todayRow - r.visible/2
	if start < 0 {
		start = 0
	}
	if start > rows-r.visible {
		start = rows - r.visible
	}
	return start, start + r.visible
}

// Start resets the elapsed-time origin and begins the animation loop.
func (r *Renderer) Start(now time.Time) {
	r.origin = now
	r.running = true
}

// Stop halts the animation loop. The scheduler checks Running before
// requesting the next frame.
func (r *Renderer) Stop() {
	r.running = false
}

// Running reports whether the animation loop is active.
func (r *Renderer) Running() bool {
	return r.running
}

// Elapsed returns the time since Start.
func (r *Renderer) Elapsed(now time.Time) time.Duration {
	return now.Sub(r.origin)
}

// Pulse is the glow opacity at the given elapsed time: a sine wave in
// [0,1] with a period of about 3.14 seconds.
func Pulse(elapsed time.Duration) float64 {
	return 0.5 + 0.5*math.Sin(float64(elapsed.Milliseconds())*0.002)
}

// dotRune maps the configured dot size to a glyph. All candidates are
// single-cell wide so the grid stays aligned; the top tier renders bold
// instead of using a wider glyph.
func dotRune(size float64) (glyph string, bold bool) {
	switch {
	case size < 0.75:
		return "·", false
	case size < 1.25:
		return "•", false
	case size < 1.75:
		return "●", false
	default:
		return "●", true
	}
}

// Frame paints the visible portion of the grid for one animation
// frame: every non-empty cell gets a dot colored by its status, and
// the today dot carries the pulsing glow when enabled.
func (r *Renderer) Frame(now time.Time) string {
	s := r.src.Get()
	dot, bold := dotRune(s.DotSize)
	pulse := Pulse(r.Elapsed(now))

	todayRow, todayCol := r.g.TodayPosition()
	glowing := s.GlowEnabled && todayRow >= 0

	start, end := r.visibleWindow()

	var b strings.Builder
	for ri := start; ri < end; ri++ {
		row := r.g.Rows[ri]
		for ci, cell := range row {
			if ci > 0 {
				b.WriteString(" ")
			}
			if cell.Empty() {
				b.WriteString(" ")
				continue
			}

			color := r.cellColor(cell)
			if glowing {
				color = r.glowTint(color, cell, ri, ci, todayRow, todayCol, pulse)
			}
			style := styleFor(color)
			if bold {
				style = style.Bold(true)
			}
			b.WriteString(style.Render(dot))
		}
		if ri < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// cellColor returns the base color for a cell from the live palette.
func (r *Renderer) cellColor(cell grid.Cell) colorful.Color {
	switch cell.Status {
	case grid.StatusToday:
		return r.pal.Accent
	case grid.StatusPast:
		return r.pal.PastDot
	default:
		return r.pal.FutureDot
	}
}

// glowTint applies the pulsing halo. The today dot brightens with the
// pulse; neighbors blend toward the accent with opacity falling off to
// zero at glowRadius.
func (r *Renderer) glowTint(base colorful.Color, cell grid.Cell, row, col, todayRow, todayCol int, pulse float64) colorful.Color {
	if cell.Status == grid.StatusToday {
		// Soft highlight on the dot itself
		white, _ := colorful.Hex("#ffffff")
		return base.BlendRgb(white, 0.30*pulse)
	}

	dr := float64(row - todayRow)
	dc := float64(col - todayCol)
	dist := math.Sqrt(dr*dr + dc*dc)
	if dist >= glowRadius {
		return base
	}

	alpha := pulse * (1 - dist/glowRadius)
	return base.BlendRgb(r.pal.Accent, alpha)
}

// FormatClock formats t as a zero-padded 24-hour clock.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// FormatDate formats t in British day-first style.
func FormatDate(t time.Time) string {
	return t.Format("Monday, 2 January 2006")
}

// WeekdayHeader renders the Mo..Su column header at the grid pitch.
func WeekdayHeader(style lipgloss.Style) string {
	return style.Render(strings.Join([]string{"M", "T", "W", "T", "F", "S", "S"}, " "))
}
