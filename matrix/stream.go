// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ---------- formatting literals ----------

const (
	_fmtRowEnd    = "\n"
	_fmtMatrixEnd = "\n"
)

const ctxScan = "Scan"

// Compile-time assertion for io.WriterTo conformance.
var _ io.WriterTo = (*Square[float64])(nil)

// String renders every row on its own line (elements separated by single
// spaces) followed by one empty line:
//
//	1 2
//	3 4
//	<empty line>
//
// A 0×0 matrix renders as a single "\n".
func (m *Square[T]) String() string {
	var sb strings.Builder
	for _, r := range m.rows {
		sb.WriteString(r.String())
		sb.WriteString(_fmtRowEnd)
	}
	sb.WriteString(_fmtMatrixEnd)

	return sb.String()
}

// WriteTo writes String() to w and reports the number of bytes written.
func (m *Square[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())

	return int64(n), err
}

// Scan reads Dimension()² whitespace-separated numbers from r in row-major
// order, parses each as float64 and converts it to T.
// MAIN DESCRIPTION:
//   - Populates an already sized matrix; the dimension is never inferred.
//
// Implementation:
//   - Stage 1: read tokens one by one into a scratch buffer.
//   - Stage 2: commit the buffer into the rows once every token parsed.
//
// Behavior highlights:
//   - Reads exactly Dimension()² tokens, so several matrices can be read
//     from one stream in sequence.
//   - Conversion follows Go rules: float → integer truncates toward zero.
//   - On any error the matrix is left unchanged.
//
// Errors:
//   - io.EOF when r is exhausted before the first token.
//   - io.ErrUnexpectedEOF when r ends after some but not all tokens.
//   - ErrMalformedInput for a token that is not a number.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the scratch buffer.
func (m *Square[T]) Scan(r io.Reader) error {
	total := m.dim * m.dim
	buf := make([]T, total)

	var tok string
	for k := 0; k < total; k++ {
		if _, err := fmt.Fscan(r, &tok); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				if k == 0 {
					return io.EOF
				}
				return squareErrorf(ctxScan, k/m.dim, k%m.dim, io.ErrUnexpectedEOF)
			}
			return matrixErrorf(ctxScan, err)
		}
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return squareErrorf(ctxScan, k/m.dim, k%m.dim, fmt.Errorf("%q: %w", tok, ErrMalformedInput))
		}
		buf[k] = T(f)
	}

	for k, x := range buf {
		_ = m.rows[k/m.dim].Set(k%m.dim, x) // safe: k < dim²
	}

	return nil
}
