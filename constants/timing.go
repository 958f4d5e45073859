package constants

import "time"

// Ambient Animation Timing
const (
	// AmbientMinDelay is the lower bound of the random gap between ambient animations
	AmbientMinDelay = 3 * time.Second

	// AmbientMaxDelay is the exclusive upper bound of the ambient gap
	AmbientMaxDelay = 15 * time.Second

	// AnimationDefaultDuration applies to animation names missing from the duration table
	AnimationDefaultDuration = 1000 * time.Millisecond
)

// Quote Ticker Timing
const (
	QuoteMinDelay = 15 * time.Second
	QuoteMaxDelay = 45 * time.Second

	// QuoteDuration is how long the quote overlay stays visible
	QuoteDuration = 3000 * time.Millisecond
)

// Notification Timing
const (
	// NotificationDuration is the time before a notification starts fading
	NotificationDuration = 2500 * time.Millisecond

	// NotificationFade is the fade-out tail after NotificationDuration
	NotificationFade = 500 * time.Millisecond
)

// Render Timing
const (
	// FrameInterval is the stage redraw interval (~30 FPS)
	FrameInterval = 33 * time.Millisecond
)
