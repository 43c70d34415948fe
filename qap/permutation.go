package qap

// ValidatePermutation checks that perm is a permutation of {0..len(perm)-1}.
//
// Errors:
//   - ErrDimensionMismatch for an empty permutation.
//   - ErrInvalidPermutation for an out-of-range or duplicate value.
//
// Complexity: O(n) time, O(n) space (one marker slice).
func ValidatePermutation(perm []int) error {
	n := len(perm)
	if n == 0 {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrInvalidPermutation
		}
		if seen[v] {
			return ErrInvalidPermutation
		}
		seen[v] = true
	}

	return nil
}

// Identity returns the permutation [0, 1, ..., n-1].
func Identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// applyExchange swaps positions m.R and m.S in place.
func applyExchange(perm []int, m Move) {
	perm[m.R], perm[m.S] = perm[m.S], perm[m.R]
}
