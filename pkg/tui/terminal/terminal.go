// ABOUTME: Defines the Terminal interface for raw mode, size queries, input, and output.
// ABOUTME: Coach-mark hosts render through it so tests can substitute VirtualTerminal.

package terminal

import "io"

// Terminal abstracts low-level terminal operations: raw mode, size
// queries, the input stream, output writing, and resize notifications.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Input() io.Reader
	Write(p []byte) (n int, err error)
	OnResize(fn func(width, height int))
}
