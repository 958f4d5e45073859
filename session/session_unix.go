//go:build unix

package session

import "golang.org/x/sys/unix"

// leader returns the session ID of the calling process
func leader() (int, bool) {
	sid, err := unix.Getsid(0)
	if err != nil || sid <= 0 {
		return 0, false
	}
	return sid, true
}
