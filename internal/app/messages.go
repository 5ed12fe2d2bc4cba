// Package app contains the main application state and logic.
package app

import "time"

// Message types for the bubbletea app.

// FrameMsg drives the animation loop; one per frame while the renderer
// is running.
type FrameMsg time.Time

// ClockTickMsg fires once per second for the clock text and the
// midnight rollover check.
type ClockTickMsg time.Time
