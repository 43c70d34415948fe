// SPDX-License-Identifier: MIT

package matrix

// Flatten returns a row-major copy of m: out[i*Cols()+j] == m.At(i, j).
// *Dense takes a single copy() of its backing buffer; any other Matrix is
// read element by element through At.
//
// Solvers call Flatten once at setup so their inner loops index a plain
// []float64 instead of going through the interface.
//
// Errors: ErrNilMatrix, or an At error wrapped with the failing coordinates.
// Complexity: O(r*c) time and space.
func Flatten(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, validatorErrorf("Flatten", err)
	}
	if d, ok := m.(*Dense); ok {
		out := make([]float64, len(d.data))
		copy(out, d.data)
		return out, nil
	}

	var (
		r   = m.Rows()
		c   = m.Cols()
		out = make([]float64, r*c)
		i   int
		j   int
		v   float64
		err error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, validatorErrorf("Flatten", err)
			}
			out[i*c+j] = v
		}
	}

	return out, nil
}
