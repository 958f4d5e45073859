package constants

import "time"

// Storage Keys
const (
	KeyKills    = "orchead_kills"
	KeyVisitors = "orchead_visitors"

	// KeySessionFlag marks a session as already counted
	KeySessionFlag = "orchead_counted"
)

// Session Flag Lifetime
const (
	// SessionFlagTTL bounds a redis-backed session flag when the session never ends cleanly
	SessionFlagTTL = 12 * time.Hour
)

// Display
const (
	// VisitorDigits is the zero-padded width of the visitor counter
	VisitorDigits = 6
)
