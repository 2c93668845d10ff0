//go:build linux

package builtin

import "fmt"

// clipboardAvailable indicates if clipboard functionality is available on this platform
const clipboardAvailable = false

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// NewSystemClipboard returns an error on platforms without clipboard support.
func NewSystemClipboard() (*SystemClipboard, error) {
	return nil, fmt.Errorf("clipboard not available on this platform (Linux without X11)")
}

// Write returns an error indicating clipboard is not available
func (c *SystemClipboard) Write(string) error {
	return fmt.Errorf("clipboard not available on this platform (Linux without X11)")
}
