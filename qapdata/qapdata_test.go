package qapdata_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/qaplocal/qap"
	"github.com/katalvlaran/qaplocal/qapdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `3
0 1 2
1 0 3
2 3 0

0 4 5
4 0 6
5 6 0
`

func TestParse_Example(t *testing.T) {
	in, err := qapdata.Parse(strings.NewReader(example))
	require.NoError(t, err)
	require.Equal(t, 3, in.N())
	assert.Equal(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}, in.Flow.ToRows())
	assert.Equal(t, [][]float64{{0, 4, 5}, {4, 0, 6}, {5, 6, 0}}, in.Dist.ToRows())

	ev, err := in.Evaluator()
	require.NoError(t, err)
	cost, err := ev.Total(qap.Identity(3))
	require.NoError(t, err)
	assert.Equal(t, 64.0, cost)
}

// TestParse_FreeLayout: only token order matters.
func TestParse_FreeLayout(t *testing.T) {
	in, err := qapdata.Parse(strings.NewReader("2 0 1.5 2 0\t0 3\n\n\n4 0"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1.5}, {2, 0}}, in.Flow.ToRows())
	assert.Equal(t, [][]float64{{0, 3}, {4, 0}}, in.Dist.ToRows())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", qapdata.ErrTruncated},
		{"order not a number", "x 1 2", qapdata.ErrMalformed},
		{"zero order", "0", qapdata.ErrBadSize},
		{"negative order", "-2 1 2", qapdata.ErrBadSize},
		{"huge order", "100000", qapdata.ErrBadSize},
		{"short flow", "2 0 1 1", qapdata.ErrTruncated},
		{"short distance", "2 0 1 1 0 0 1", qapdata.ErrTruncated},
		{"bad value", "2 0 one 1 0 0 1 1 0", qapdata.ErrMalformed},
		{"NaN value", "2 0 NaN 1 0 0 1 1 0", qapdata.ErrMalformed},
		{"trailing data", "2 0 1 1 0 0 1 1 0 7", qapdata.ErrMalformed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := qapdata.Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	in, err := qapdata.Generate(6, 1, 100, qap.NewRNG(123456))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, qapdata.Write(&buf, in))
	back, err := qapdata.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, in.Flow.ToRows(), back.Flow.ToRows())
	assert.Equal(t, in.Dist.ToRows(), back.Dist.ToRows())
}

func TestWrite_Nil(t *testing.T) {
	require.ErrorIs(t, qapdata.Write(&bytes.Buffer{}, nil), qapdata.ErrBadSize)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "tai6.dat")
	in, err := qapdata.Generate(6, 0, 10, qap.NewRNG(7))
	require.NoError(t, err)

	require.NoError(t, qapdata.Save(path, in))
	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err), "temp file must not survive a successful save")

	back, err := qapdata.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tai6", back.Name)
	assert.Equal(t, in.Flow.ToRows(), back.Flow.ToRows())
}

func TestLoad_Missing(t *testing.T) {
	_, err := qapdata.Load(filepath.Join(t.TempDir(), "absent.dat"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerate(t *testing.T) {
	a, err := qapdata.Generate(25, 1, 100, qap.NewRNG(987654))
	require.NoError(t, err)
	b, err := qapdata.Generate(25, 1, 100, qap.NewRNG(987654))
	require.NoError(t, err)
	assert.Equal(t, a.Flow.ToRows(), b.Flow.ToRows())
	assert.Equal(t, a.Dist.ToRows(), b.Dist.ToRows())

	rows := a.Flow.ToRows()
	for i := range rows {
		for j, v := range rows[i] {
			if i == j {
				require.Zero(t, v)
				continue
			}
			require.GreaterOrEqual(t, v, 1.0)
			require.LessOrEqual(t, v, 100.0)
		}
	}

	ev, err := a.Evaluator()
	require.NoError(t, err)
	assert.True(t, ev.Exact())
}

func TestGenerate_Errors(t *testing.T) {
	_, err := qapdata.Generate(0, 1, 10, qap.NewRNG(1))
	require.ErrorIs(t, err, qapdata.ErrBadSize)
	_, err = qapdata.Generate(5, 10, 1, qap.NewRNG(1))
	require.ErrorIs(t, err, qapdata.ErrBadSize)
	_, err = qapdata.Generate(5, 1, 10, nil)
	require.ErrorIs(t, err, qap.ErrNilRNG)
}
