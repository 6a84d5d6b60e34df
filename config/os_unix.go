//go:build !windows

package config

import "os"

// enableVirtualTerminal is a no-op, unix terminals understand escape
// sequences as is.
func enableVirtualTerminal(*os.File) bool {
	return true
}
