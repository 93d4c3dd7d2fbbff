package mat

// ThresholdType selects how Threshold maps values around the
// threshold, values match the wrapped library's constants.
type ThresholdType int

const (
	ThresholdBinary    ThresholdType = 0
	ThresholdBinaryInv ThresholdType = 1
	ThresholdTrunc     ThresholdType = 2
	ThresholdToZero    ThresholdType = 3
	ThresholdToZeroInv ThresholdType = 4
)

// Threshold applies a fixed level threshold to every element of a
// single channel matrix, the usual way to produce the binary input of
// connected component labeling.
func Threshold(m *Mat, thresh, maxval float64, tt ThresholdType) (*Mat, error) {
	if m.Channels() != 1 {
		return nil, ErrNotSingleChannel
	}

	depth := m.mtype.Depth()
	out := zeros(m.rows, m.cols, m.mtype)
	for i, v := range m.data {
		var r float64
		switch tt {
		case ThresholdBinary:
			if v > thresh {
				r = maxval
			}
		case ThresholdBinaryInv:
			if v <= thresh {
				r = maxval
			}
		case ThresholdTrunc:
			if v > thresh {
				r = thresh
			} else {
				r = v
			}
		case ThresholdToZero:
			if v > thresh {
				r = v
			}
		case ThresholdToZeroInv:
			if v <= thresh {
				r = v
			}
		default:
			return nil, ErrInvalidType
		}
		out.data[i] = saturate(depth, r)
	}
	return out, nil
}
