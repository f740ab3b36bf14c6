// Package codec loads and encodes matrices and vectors for the sqmat CLI.
//
// Formats:
//
//	text  whitespace-separated numbers, row-major (the matrix stream format)
//	yaml  a sequence of row sequences (vector: a flat sequence)
//	json  an array of row arrays (vector: a flat array)
//
// Input format is chosen from the file extension (.yaml, .yml, .json; any
// other extension and stdin are text).
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/sqmatrix/matrix"
	"github.com/katalvlaran/sqmatrix/nvector"
	"gopkg.in/yaml.v3"
)

// Format identifies a serialization format.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
)

// StdinPath is the path argument that selects standard input.
const StdinPath = "-"

var (
	// ErrUnknownFormat is returned for an unsupported format name.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrNotSquareCount is returned when the dimension of a text matrix must
	// be inferred but the token count is not a perfect square.
	ErrNotSquareCount = errors.New("codec: token count is not a perfect square")
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, YAML, JSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks the input format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	case ".json":
		return JSON
	default:
		return Text
	}
}

// Loader opens input paths. Stdin is used for StdinPath; Dim is the
// dimension for text matrices (0 infers it from the token count).
type Loader struct {
	Stdin io.Reader
	Dim   int
}

// open returns a reader for path and the format to decode it with.
func (l Loader) open(path string) (io.ReadCloser, Format, error) {
	if path == StdinPath {
		if l.Stdin == nil {
			return nil, "", fmt.Errorf("codec: no standard input available")
		}
		return io.NopCloser(l.Stdin), Text, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("codec: %w", err)
	}

	return f, FormatFromPath(path), nil
}

// LoadMatrix reads a square matrix from path.
func LoadMatrix[T matrix.Number](l Loader, path string) (*matrix.Square[T], error) {
	rc, format, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	m, err := ReadMatrix[T](rc, format, l.Dim)
	if err != nil {
		return nil, fmt.Errorf("codec: %s: %w", path, err)
	}

	return m, nil
}

// LoadVector reads a vector from path.
func LoadVector[T matrix.Number](l Loader, path string) (*nvector.Vector[T], error) {
	rc, format, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	v, err := ReadVector[T](rc, format)
	if err != nil {
		return nil, fmt.Errorf("codec: %s: %w", path, err)
	}

	return v, nil
}

// ReadMatrix decodes a matrix from r. For Text, dim > 0 presets the
// dimension and dim == 0 infers it as the square root of the token count.
func ReadMatrix[T matrix.Number](r io.Reader, f Format, dim int) (*matrix.Square[T], error) {
	switch f {
	case YAML:
		var m matrix.Square[T]
		if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return &m, nil
	case JSON:
		var m matrix.Square[T]
		if err := json.NewDecoder(r).Decode(&m); err != nil {
			return nil, err
		}
		return &m, nil
	case Text:
		return readTextMatrix[T](r, dim)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// readTextMatrix sizes the matrix (explicitly or from the token count) and
// hands the stream to Square.Scan.
func readTextMatrix[T matrix.Number](r io.Reader, dim int) (*matrix.Square[T], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if dim == 0 {
		dim, err = inferDim(len(strings.Fields(string(data))))
		if err != nil {
			return nil, err
		}
	}

	m, err := matrix.New[T](dim)
	if err != nil {
		return nil, err
	}
	if dim == 0 {
		return m, nil
	}
	if err := m.Scan(bytes.NewReader(data)); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	return m, nil
}

// inferDim returns n such that n*n == count.
func inferDim(count int) (int, error) {
	n := int(math.Sqrt(float64(count)))
	for n*n > count {
		n--
	}
	for (n+1)*(n+1) <= count {
		n++
	}
	if n*n != count {
		return 0, fmt.Errorf("%w: %d", ErrNotSquareCount, count)
	}

	return n, nil
}

// ReadVector decodes a vector from r.
func ReadVector[T matrix.Number](r io.Reader, f Format) (*nvector.Vector[T], error) {
	switch f {
	case YAML:
		var v nvector.Vector[T]
		if err := yaml.NewDecoder(r).Decode(&v); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return &v, nil
	case JSON:
		var v nvector.Vector[T]
		if err := json.NewDecoder(r).Decode(&v); err != nil {
			return nil, err
		}
		return &v, nil
	case Text:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(string(data))
		vals := make([]T, len(fields))
		for i, tok := range fields {
			x, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("element %d %q: %w", i, tok, matrix.ErrMalformedInput)
			}
			vals[i] = T(x)
		}
		return nvector.FromSlice(vals), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteMatrix encodes m to w in format f.
func WriteMatrix[T matrix.Number](w io.Writer, m *matrix.Square[T], f Format) error {
	return write(w, m, f, func() error {
		_, err := m.WriteTo(w)
		return err
	})
}

// WriteVector encodes v to w in format f. Text output is a single line.
func WriteVector[T matrix.Number](w io.Writer, v *nvector.Vector[T], f Format) error {
	return write(w, v, f, func() error {
		_, err := fmt.Fprintln(w, v.String())
		return err
	})
}

// write dispatches on f; text uses the caller-provided writer.
func write(w io.Writer, val interface{}, f Format, text func() error) error {
	switch f {
	case Text:
		return text()
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(val); err != nil {
			return err
		}
		return enc.Close()
	case JSON:
		return json.NewEncoder(w).Encode(val)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
