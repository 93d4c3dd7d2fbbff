package mat

import "fmt"

// Mat is a typed, row major, channel interleaved, two dimensional
// matrix. Once an operation returns a Mat the object is never mutated
// by the library again, the only mutating entry points are SetAt and
// the explicit CopyTo destination.
type Mat struct {
	rows  int
	cols  int
	mtype MatType
	data  []float64
}

// Scalar holds up to 4 per channel values, it is used to fill
// multi channel matrices at construction time.
type Scalar struct {
	Val1 float64
	Val2 float64
	Val3 float64
	Val4 float64
}

// NewScalar creates a Scalar from up to 4 values.
func NewScalar(values ...float64) Scalar {
	s := Scalar{}
	for i, v := range values {
		switch i {
		case 0:
			s.Val1 = v
		case 1:
			s.Val2 = v
		case 2:
			s.Val3 = v
		case 3:
			s.Val4 = v
		}
	}
	return s
}

func (s Scalar) at(ch int) float64 {
	switch ch {
	case 0:
		return s.Val1
	case 1:
		return s.Val2
	case 2:
		return s.Val3
	}
	return s.Val4
}

// Empty creates a 0x0 matrix, the equivalent of a default constructed
// Mat in the wrapped library.
func Empty() *Mat {
	return &Mat{mtype: MatTypeCV64F}
}

func zeros(rows, cols int, t MatType) *Mat {
	return &Mat{
		rows:  rows,
		cols:  cols,
		mtype: t,
		data:  make([]float64, rows*cols*t.Channels()),
	}
}

// New creates a zero filled rows x cols matrix of the given type.
func New(rows, cols int, t MatType) (*Mat, error) {
	if !t.Valid() {
		return nil, ErrInvalidType
	} else if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("invalid mat size %dx%d", rows, cols)
	}
	return zeros(rows, cols, t), nil
}

// NewWithScalar creates a rows x cols matrix of the given type with
// every element set to the per channel values of the scalar.
func NewWithScalar(rows, cols int, t MatType, s Scalar) (*Mat, error) {
	m, err := New(rows, cols, t)
	if err != nil {
		return nil, err
	}

	nch := t.Channels()
	depth := t.Depth()
	fill := make([]float64, nch)
	for ch := 0; ch < nch; ch++ {
		fill[ch] = saturate(depth, s.at(ch))
	}

	for i := range m.data {
		m.data[i] = fill[i%nch]
	}
	return m, nil
}

// FromData creates a matrix from flat, row major, channel interleaved
// values. The slice is copied.
func FromData(rows, cols int, t MatType, data []float64) (*Mat, error) {
	m, err := New(rows, cols, t)
	if err != nil {
		return nil, err
	} else if len(data) != len(m.data) {
		return nil, ErrDataLength
	}

	depth := t.Depth()
	for i, v := range data {
		m.data[i] = saturate(depth, v)
	}
	return m, nil
}

// FromNested creates a matrix from nested row major data. Every row
// must have the same length and, for multi channel types, carry
// channel interleaved values, so its length must be a multiple of the
// channel count.
func FromNested(values [][]float64, t MatType) (*Mat, error) {
	if !t.Valid() {
		return nil, ErrInvalidType
	}

	rows := len(values)
	if rows == 0 {
		return &Mat{mtype: t}, nil
	}

	nch := t.Channels()
	width := len(values[0])
	if width%nch != 0 {
		return nil, ErrRowsLength
	}

	flat := make([]float64, 0, rows*width)
	for _, row := range values {
		if len(row) != width {
			return nil, ErrRowsLength
		}
		flat = append(flat, row...)
	}

	return FromData(rows, width/nch, t, flat)
}

// Rows returns the number of rows.
func (m *Mat) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Mat) Cols() int {
	return m.cols
}

// Type returns the packed element type of this matrix.
func (m *Mat) Type() MatType {
	return m.mtype
}

// Channels returns the number of interleaved channels.
func (m *Mat) Channels() int {
	return m.mtype.Channels()
}

// Empty returns true if this matrix holds no elements.
func (m *Mat) Empty() bool {
	return len(m.data) == 0
}

// Total returns the number of elements, regardless of channels.
func (m *Mat) Total() int {
	return m.rows * m.cols
}

func (m *Mat) index(row, col, ch int) int {
	nch := m.mtype.Channels()
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols || ch < 0 || ch >= nch {
		panic(fmt.Sprintf("index (%d,%d,%d) out of range for %dx%d %s mat",
			row, col, ch, m.rows, m.cols, m.mtype))
	}
	return (row*m.cols+col)*nch + ch
}

// GetAt returns the value at a given row, column and channel. It
// panics if the position is out of range.
func (m *Mat) GetAt(row, col, ch int) float64 {
	return m.data[m.index(row, col, ch)]
}

// SetAt stores a value at a given row, column and channel, saturating
// it to the range of the matrix depth. It panics if the position is
// out of range.
func (m *Mat) SetAt(row, col, ch int, v float64) {
	m.data[m.index(row, col, ch)] = saturate(m.mtype.Depth(), v)
}

// Row returns a copy of the channel interleaved values of a row.
func (m *Mat) Row(row int) []float64 {
	nch := m.mtype.Channels()
	start := m.index(row, 0, 0)
	out := make([]float64, m.cols*nch)
	copy(out, m.data[start:start+m.cols*nch])
	return out
}

func (m *Mat) sameShape(b *Mat) error {
	if m.rows != b.rows {
		return ErrRowsMismatch
	} else if m.cols != b.cols {
		return ErrColsMismatch
	}
	return nil
}

func (m *Mat) String() string {
	return fmt.Sprintf("Mat<%dx%d %s>", m.rows, m.cols, m.mtype)
}
