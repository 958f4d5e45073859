package constants

import "time"

// Phrase Matcher
const (
	// PhraseTimeout clears the typed buffer after this much keyboard silence
	PhraseTimeout = 2000 * time.Millisecond
)

// Swipe Matcher
const (
	// SwipeThreshold is the minimum dominant-axis travel, in pointer units
	SwipeThreshold = 50.0

	// CellWidthUnits and CellHeightUnits convert terminal cells to pointer units
	// Approximates the pixel size of a typical monospace cell
	CellWidthUnits  = 8.0
	CellHeightUnits = 16.0
)

// Shake Matcher
const (
	// ShakeThreshold is the per-axis acceleration delta that counts as a shake
	ShakeThreshold = 15.0

	ShakeCooldown = 3000 * time.Millisecond
)

// Rate Matcher
const (
	RateWindow    = 2000 * time.Millisecond
	RateThreshold = 10
)

// Inactivity Matcher
const (
	IdleTimeout = 30000 * time.Millisecond
)

// Dwell Matcher
const (
	// HoverDwell is how long the pointer must rest on the orc
	HoverDwell = 5000 * time.Millisecond

	// PressDwell is the long-press hold, shorter since it is intentional
	PressDwell = 3000 * time.Millisecond
)

// Unload Prompt
const (
	// IsildurChance is the probability a quit request is challenged
	IsildurChance = 0.2

	// IsildurWindow is how long a challenged quit waits for confirmation
	IsildurWindow = 3000 * time.Millisecond
)
