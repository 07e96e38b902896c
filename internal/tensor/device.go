package tensor

// Device identifies the execution context a tensor's memory and kernels
// belong to. Reference accessors are only meaningful in a context that can
// reach the owner's memory; packed accessors exist to cross between
// contexts.
type Device int

// Supported execution contexts.
const (
	// CPU is the controlling host context. Construction, allocation, and
	// accessor packing all happen here.
	CPU Device = iota
	// WebGPU is the detached accelerator context. Kernels running there
	// receive self-contained packed metadata, never borrowed pointers.
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}
