// Package session identifies the terminal login session for once-per-session counting
package session

import (
	"os"
	"strconv"

	"github.com/google/uuid"
)

// EnvID overrides the detected session identifier
const EnvID = "ORCHEAD_SESSION_ID"

// ID returns a stable identifier for the current terminal session
// Order: EnvID, the process session leader, then a random per-process ID
func ID() string {
	if id := os.Getenv(EnvID); id != "" {
		return id
	}
	if sid, ok := leader(); ok {
		return "sid" + strconv.Itoa(sid)
	}
	return uuid.NewString()
}
