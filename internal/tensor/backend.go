package tensor

// Backend is the compute seam consumed by the contraction engines.
// It covers exactly the capability set the engines need: axis
// permutation, reshape and 2D matrix multiplication.
//
// Backend operations panic on programmer error (wrong rank, mismatched
// inner dimensions, bad permutations): callers are expected to validate
// user input before reaching the backend.
//
// Implementations:
//   - cpu: pure Go data movement with gonum-backed matmul
type Backend interface {
	// MatMul computes the 2D matrix product (M, K) @ (K, N) -> (M, N).
	MatMul(a, b *Dense) *Dense

	// Transpose returns a contiguous tensor with axes reordered per the
	// given permutation. Empty axes reverses all dimensions.
	Transpose(t *Dense, axes ...int) *Dense

	// Reshape returns a tensor with the same data and a new shape of
	// equal element count.
	Reshape(t *Dense, newShape Shape) *Dense

	// Name returns the backend name.
	Name() string
}
