//go:build !linux

package builtin

import "golang.design/x/clipboard"

// clipboardAvailable indicates if clipboard functionality is available on this platform
const clipboardAvailable = true

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// NewSystemClipboard initializes the clipboard library.
func NewSystemClipboard() (*SystemClipboard, error) {
	if err := clipboard.Init(); err != nil {
		return nil, err
	}
	return &SystemClipboard{}, nil
}

// Write writes text to the system clipboard
func (c *SystemClipboard) Write(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
