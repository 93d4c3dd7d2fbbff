package mat

import (
	"github.com/matscript/matscript/backend"
)

const normEpsilon = 2.220446049250313e-16

// NormalizeOptions configures Normalize. Alpha is the target norm
// value, or the lower range boundary for NormMinMax, Beta is the upper
// range boundary and is only used by NormMinMax.
type NormalizeOptions struct {
	Alpha    float64
	Beta     float64
	NormType NormType
}

// DefaultNormalizeOptions returns the defaults of the wrapped library:
// alpha 1, beta 0, L2 norm.
func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{Alpha: 1, Beta: 0, NormType: NormL2}
}

// Normalize rescales the element values of the matrix, preserving its
// shape and type. Under NormMinMax the values are mapped into the
// [alpha, beta] range, under the other norms they are scaled so that
// the chosen norm of the result equals alpha. A constant input under
// NormMinMax maps every element to the lower boundary.
func (m *Mat) Normalize(opts NormalizeOptions) (*Mat, error) {
	if m.Empty() {
		return m.Clone(), nil
	}

	var scale, shift float64
	if opts.NormType == NormMinMax {
		lo, hi := opts.Alpha, opts.Beta
		if lo > hi {
			lo, hi = hi, lo
		}

		v := backend.Wrap(len(m.data), m.data)
		smin, smax := backend.Min(v), backend.Max(v)
		if delta := smax - smin; delta > normEpsilon {
			scale = (hi - lo) / delta
		}
		shift = lo - smin*scale
	} else {
		if norm := m.Norm(opts.NormType); norm > normEpsilon {
			scale = opts.Alpha / norm
		}
	}

	depth := m.mtype.Depth()
	out := zeros(m.rows, m.cols, m.mtype)
	for i, v := range m.data {
		out.data[i] = saturate(depth, v*scale+shift)
	}
	return out, nil
}
