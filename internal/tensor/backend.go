package tensor

// Backend is the compute interface tensors dispatch kernels through. The
// surface is deliberately small: every operation exists to drive strided
// accessors through a backend, not to be a math library.
//
// Implementations:
//   - internal/backend/cpu: host kernels over reference accessors
//   - internal/backend/webgpu: device kernels fed by packed accessors
type Backend interface {
	// Add performs element-wise addition of same-shaped tensors.
	Add(a, b *RawTensor) *RawTensor

	// Scale multiplies every visible element by alpha.
	Scale(x *RawTensor, alpha float64) *RawTensor

	// MatMul performs 2-D matrix multiplication: (M, K) @ (K, N) -> (M, N).
	MatMul(a, b *RawTensor) *RawTensor

	// Materialize gathers a (possibly strided) view into a fresh
	// contiguous tensor.
	Materialize(x *RawTensor) *RawTensor

	// Sum reduces all visible elements to a float64.
	Sum(x *RawTensor) float64

	// Metadata
	Name() string
	Device() Device
}
