//go:build arm64

package wordops

import "golang.org/x/sys/cpu"

func init() {
	// CNT is part of the base ASIMD instruction set.
	hasPopcount = cpu.ARM64.HasASIMD
	initCapabilities()
}
