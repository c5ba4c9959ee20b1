//go:build amd64

package wordops

import "golang.org/x/sys/cpu"

func init() {
	hasPopcount = cpu.X86.HasPOPCNT
	initCapabilities()
}
