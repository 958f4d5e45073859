//go:build !unix

package session

func leader() (int, bool) { return 0, false }
