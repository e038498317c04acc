package domain

import "strings"

// Creator handles are stored and compared without the @ sigil and
// rendered with it. These two helpers are the only place the sigil
// convention lives.

// CleanHandle strips a leading @ sigil from a creator handle.
func CleanHandle(handle string) string {
	return strings.TrimPrefix(strings.TrimSpace(handle), "@")
}

// DisplayHandle renders a handle with its @ sigil.
func DisplayHandle(handle string) string {
	return "@" + CleanHandle(handle)
}
