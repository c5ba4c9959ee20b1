package wordops

// Kernel identifies the popcount implementation selected at init.
type Kernel uint8

const (
	// SWAR is the portable shift-and-mask popcount.
	SWAR Kernel = iota
	// Native uses the CPU population count instruction.
	Native
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case SWAR:
		return "swar"
	case Native:
		return "native"
	default:
		return "unknown"
	}
}

var hasPopcount bool

var activeKernel = SWAR

func initCapabilities() {
	if hasPopcount {
		kernelPopcount = popcountWordsNative
		activeKernel = Native
	}
}

// ActiveKernel reports which popcount kernel is in use.
func ActiveKernel() Kernel { return activeKernel }
