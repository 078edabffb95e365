package notepad

import "github.com/atotto/clipboard"

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Unsupported reports whether no clipboard utility was found at startup.
func (SystemClipboard) Unsupported() bool { return clipboard.Unsupported }
