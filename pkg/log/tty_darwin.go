//go:build darwin

package log

import "golang.org/x/sys/unix"

const ioctlGetTermios = unix.TIOCGETA
