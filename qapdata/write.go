package qapdata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/qaplocal/matrix"
)

// Write serializes in using the layout Parse reads: the order, a blank
// line, the flow rows, a blank line, the distance rows.
func Write(w io.Writer, in *Instance) error {
	const op = "Write"
	if in == nil || matrix.ValidateSquareNonNil(in.Flow) != nil || matrix.ValidateSquareNonNil(in.Dist) != nil ||
		in.Flow.Rows() != in.Dist.Rows() {
		return dataErrorf(op, ErrBadSize)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n\n", in.N())
	writeRows(bw, in.Flow)
	bw.WriteByte('\n')
	writeRows(bw, in.Dist)
	if err := bw.Flush(); err != nil {
		return dataErrorf(op, err)
	}

	return nil
}

// writeRows prints one matrix row per line; whole numbers print without a
// fractional part.
func writeRows(bw *bufio.Writer, m *matrix.Dense) {
	for _, row := range m.ToRows() {
		for j, v := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
}

// Save writes in to path atomically: the data goes to a temp file in the
// same directory which is then renamed over path.
func Save(path string, in *Instance) error {
	const op = "Save"
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return dataErrorf(op, err)
		}
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return dataErrorf(op, err)
	}
	if err = Write(f, in); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err = f.Close(); err != nil {
		os.Remove(tmp)
		return dataErrorf(op, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return dataErrorf(op, err)
	}

	return nil
}
