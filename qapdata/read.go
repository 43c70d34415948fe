package qapdata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/qaplocal/matrix"
)

// maxOrder bounds n so a corrupt header cannot trigger a huge allocation.
const maxOrder = 1 << 12

// Parse reads one instance from r.
//
// Errors: ErrBadSize, ErrMalformed, ErrTruncated (wrapped), or the reader's
// own error.
func Parse(r io.Reader) (*Instance, error) {
	const op = "Parse"
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, dataErrorf(op, err)
		}
		return nil, dataErrorf(op, ErrTruncated)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return nil, dataErrorf(op, fmt.Errorf("order %q: %w", sc.Text(), ErrMalformed))
	}
	if n < 1 || n > maxOrder {
		return nil, dataErrorf(op, fmt.Errorf("order %d: %w", n, ErrBadSize))
	}

	flow, err := readMatrix(sc, n, "flow")
	if err != nil {
		return nil, dataErrorf(op, err)
	}
	dist, err := readMatrix(sc, n, "distance")
	if err != nil {
		return nil, dataErrorf(op, err)
	}
	if sc.Scan() {
		return nil, dataErrorf(op, fmt.Errorf("trailing token %q: %w", sc.Text(), ErrMalformed))
	}
	if err = sc.Err(); err != nil {
		return nil, dataErrorf(op, err)
	}

	return &Instance{Flow: flow, Dist: dist}, nil
}

// readMatrix consumes n² tokens in row-major order.
func readMatrix(sc *bufio.Scanner, n int, what string) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if !sc.Scan() {
				if err = sc.Err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("%s[%d][%d]: %w", what, i, j, ErrTruncated)
			}
			v, err = strconv.ParseFloat(sc.Text(), 64)
			if err != nil {
				return nil, fmt.Errorf("%s[%d][%d] %q: %w", what, i, j, sc.Text(), ErrMalformed)
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("%s[%d][%d]: %w", what, i, j, ErrMalformed)
			}
		}
	}

	return m, nil
}

// Load parses the instance stored at path. The instance is named after the
// file without its extension.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, dataErrorf("Load", err)
	}
	defer f.Close()

	in, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	base := filepath.Base(path)
	in.Name = strings.TrimSuffix(base, filepath.Ext(base))

	return in, nil
}
