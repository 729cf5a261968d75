package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(file *os.File) bool {
	_, err := unix.IoctlGetTermios(int(file.Fd()), unix.TCGETS)
	return err == nil
}

// readKey reads one keystroke from stdin with echo and line buffering
// disabled, restoring the terminal before returning.
func readKey() (key byte, err error) {
	fd := int(os.Stdin.Fd())

	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}

	restore := *termios
	termstate := *termios

	termstate.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON
	termstate.Cc[unix.VMIN] = 1
	termstate.Cc[unix.VTIME] = 0

	err = unix.IoctlSetTermios(fd, unix.TCSETS, &termstate)
	if err != nil {
		return
	}
	defer unix.IoctlSetTermios(fd, unix.TCSETS, &restore)

	var one [1]byte
	_, err = os.Stdin.Read(one[:])
	if err != nil {
		return
	}

	key = one[0]
	return
}
