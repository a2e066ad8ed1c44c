//go:build !linux && !darwin

package log

// IsTerminal always reports false on platforms without termios.
func IsTerminal(fd uintptr) bool {
	return false
}
