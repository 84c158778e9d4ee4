//go:build !linux

package benchmark

import (
	"runtime/debug"
)

// SetMaxResources lifts the Go runtime thread cap. There is no portable
// equivalent of the Linux descriptor limit adjustment on other platforms.
func SetMaxResources() error {
	debug.SetMaxThreads(10000)
	return nil
}
