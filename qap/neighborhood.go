package qap

// Neighborhood returns every pairwise exchange of an order-n permutation,
// (r,s) with r < s, in row-major order: (0,1), (0,2), ..., (n-2,n-1).
// The slice has n(n−1)/2 elements; it is empty for n < 2.
func Neighborhood(n int) []Move {
	if n < 2 {
		return nil
	}
	moves := make([]Move, 0, n*(n-1)/2)

	var r, s int
	for r = 0; r < n-1; r++ {
		for s = r + 1; s < n; s++ {
			moves = append(moves, Move{R: r, S: s})
		}
	}

	return moves
}
