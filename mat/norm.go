package mat

import (
	"math"

	"github.com/matscript/matscript/backend"
)

// NormType selects which norm Norm, NormWith and Normalize compute,
// the values match the wrapped library's constants.
type NormType int

const (
	NormInf    NormType = 1
	NormL1     NormType = 2
	NormL2     NormType = 4
	NormMinMax NormType = 32
)

// Point is a matrix element position.
type Point struct {
	X int
	Y int
}

// Norm computes a scalar magnitude over all the elements of the
// matrix. NormL2 is what callers get when they do not care.
func (m *Mat) Norm(nt NormType) float64 {
	if m.Empty() {
		return 0
	}

	v := backend.Wrap(len(m.data), m.data)
	switch nt {
	case NormL1:
		return backend.AbsSum(v)
	case NormInf:
		return backend.AbsMax(v)
	}
	return math.Sqrt(backend.Dot(v, v))
}

// NormWith computes the norm of the element wise difference between
// this matrix and another of the same shape and type.
func (m *Mat) NormWith(b *Mat, nt NormType) (float64, error) {
	diff, err := AbsDiff(m, b)
	if err != nil {
		return 0, err
	}
	return diff.Norm(nt), nil
}

// AbsDiff returns the element wise absolute difference of two
// matrices of the same shape and type.
func AbsDiff(a, b *Mat) (*Mat, error) {
	if err := a.sameShape(b); err != nil {
		return nil, err
	} else if a.mtype != b.mtype {
		return nil, ErrTypeMismatch
	}

	out := zeros(a.rows, a.cols, a.mtype)
	for i, v := range a.data {
		out.data[i] = math.Abs(v - b.data[i])
	}
	return out, nil
}

// MinMaxLoc returns the smallest and largest element values and their
// positions. For multi channel matrices the scan covers every channel
// and positions refer to the element owning the value.
func (m *Mat) MinMaxLoc() (minVal, maxVal float64, minLoc, maxLoc Point, err error) {
	if m.Empty() {
		return 0, 0, Point{}, Point{}, ErrEmptyMat
	}

	v := backend.Wrap(len(m.data), m.data)
	minVal = backend.Min(v)
	maxVal = backend.Max(v)

	nch := m.mtype.Channels()
	for i, val := range m.data {
		el := i / nch
		if val == minVal {
			minLoc = Point{X: el % m.cols, Y: el / m.cols}
			break
		}
	}
	for i, val := range m.data {
		el := i / nch
		if val == maxVal {
			maxLoc = Point{X: el % m.cols, Y: el / m.cols}
			break
		}
	}
	return
}

// Mean returns the per channel mean of the matrix elements.
func (m *Mat) Mean() Scalar {
	if m.Empty() {
		return Scalar{}
	}

	nch := m.mtype.Channels()
	sums := make([]float64, nch)
	for i, v := range m.data {
		sums[i%nch] += v
	}

	total := float64(m.Total())
	for ch := range sums {
		sums[ch] /= total
	}
	return NewScalar(sums...)
}
