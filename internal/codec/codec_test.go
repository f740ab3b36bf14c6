package codec

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/sqmatrix/matrix"
	"github.com/katalvlaran/sqmatrix/nvector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "YAML", "json"} {
		_, err := ParseFormat(s)
		require.NoError(t, err, s)
	}
	_, err := ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, YAML, FormatFromPath("a.yaml"))
	assert.Equal(t, YAML, FormatFromPath("dir/a.YML"))
	assert.Equal(t, JSON, FormatFromPath("a.json"))
	assert.Equal(t, Text, FormatFromPath("a.txt"))
	assert.Equal(t, Text, FormatFromPath("matrix"))
}

func TestInferDim(t *testing.T) {
	for count, want := range map[int]int{0: 0, 1: 1, 4: 2, 9: 3, 144: 12} {
		got, err := inferDim(count)
		require.NoError(t, err)
		assert.Equal(t, want, got, "count=%d", count)
	}
	for _, count := range []int{2, 3, 5, 8, 143} {
		_, err := inferDim(count)
		require.ErrorIs(t, err, ErrNotSquareCount, "count=%d", count)
	}
}

func TestReadTextMatrix(t *testing.T) {
	m, err := ReadMatrix[int](strings.NewReader("1 2\n3 4\n\n"), Text, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, m.Rows())

	// Explicit dimension ignores trailing tokens.
	m, err = ReadMatrix[int](strings.NewReader("5 6 7 8 9"), Text, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{5, 6}, {7, 8}}, m.Rows())

	_, err = ReadMatrix[int](strings.NewReader("1 2 3"), Text, 0)
	require.ErrorIs(t, err, ErrNotSquareCount)

	_, err = ReadMatrix[int](strings.NewReader(""), Text, 2)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = ReadMatrix[int](strings.NewReader("1 a 3 4"), Text, 0)
	require.ErrorIs(t, err, matrix.ErrMalformedInput)

	empty, err := ReadMatrix[float64](strings.NewReader("  "), Text, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Dimension())
}

func TestReadStructuredMatrix(t *testing.T) {
	m, err := ReadMatrix[float64](strings.NewReader("- [1, 2]\n- [3, 4.5]\n"), YAML, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4.5}}, m.Rows())

	m, err = ReadMatrix[float64](strings.NewReader(`[[1,0],[0,1]]`), JSON, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, m.Rows())

	_, err = ReadMatrix[int](strings.NewReader(`[[1,2]]`), JSON, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = ReadMatrix[int](strings.NewReader(""), Format("xml"), 0)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestReadVector(t *testing.T) {
	v, err := ReadVector[int](strings.NewReader("1 2\n3"), Text)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, v.Values())

	v, err = ReadVector[int](strings.NewReader("[4, 5]"), YAML)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, v.Values())

	vf, err := ReadVector[float64](strings.NewReader("[0.5]"), JSON)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, vf.Values())

	_, err = ReadVector[int](strings.NewReader("1 z"), Text)
	require.ErrorIs(t, err, matrix.ErrMalformedInput)
}

func TestWriteMatrix(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteMatrix(&buf, m, Text))
	assert.Equal(t, "1 2\n3 4\n\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteMatrix(&buf, m, JSON))
	assert.JSONEq(t, `[[1,2],[3,4]]`, buf.String())

	buf.Reset()
	require.NoError(t, WriteMatrix(&buf, m, YAML))
	back, err := ReadMatrix[int](&buf, YAML, 0)
	require.NoError(t, err)
	assert.True(t, m.Equal(back))

	require.ErrorIs(t, WriteMatrix(&buf, m, Format("csv")), ErrUnknownFormat)
}

func TestWriteVector(t *testing.T) {
	v := nvector.FromSlice([]float64{4, 6})

	var buf bytes.Buffer
	require.NoError(t, WriteVector(&buf, v, Text))
	assert.Equal(t, "4 6\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteVector(&buf, v, JSON))
	var got []float64
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []float64{4, 6}, got)
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "m.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("[[1, 2], [3, 4]]\n"), 0o644))
	vecPath := filepath.Join(dir, "v.txt")
	require.NoError(t, os.WriteFile(vecPath, []byte("1 1\n"), 0o644))

	l := Loader{Stdin: strings.NewReader("9 8 7 6")}

	m, err := LoadMatrix[int](l, yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Dimension())

	fromStdin, err := LoadMatrix[int](l, StdinPath)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{9, 8}, {7, 6}}, fromStdin.Rows())

	v, err := LoadVector[int](l, vecPath)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, v.Values())

	_, err = LoadMatrix[int](l, filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadMatrix[int](Loader{}, StdinPath)
	require.Error(t, err)
}
