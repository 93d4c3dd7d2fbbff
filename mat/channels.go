package mat

// Split returns one single channel matrix per channel of the source,
// preserving row and column dimensions.
func (m *Mat) Split() []*Mat {
	nch := m.mtype.Channels()
	depth := m.mtype.Depth()

	out := make([]*Mat, nch)
	for ch := 0; ch < nch; ch++ {
		out[ch] = zeros(m.rows, m.cols, depth)
	}

	for i, v := range m.data {
		out[i%nch].data[i/nch] = v
	}
	return out
}

// Merge builds a multi channel matrix out of a list of source
// matrices, the channel count of the result is the sum of the channel
// counts of the inputs. Every source must have the same shape and
// depth of the first one.
func Merge(channels []*Mat) (*Mat, error) {
	if len(channels) == 0 {
		return nil, ErrEmptyChannels
	}

	first := channels[0]
	depth := first.mtype.Depth()
	total := 0
	for _, c := range channels {
		if c.rows != first.rows {
			return nil, ErrRowsMismatch
		} else if c.cols != first.cols {
			return nil, ErrColsMismatch
		} else if c.mtype.Depth() != depth {
			return nil, ErrTypeMismatch
		}
		total += c.Channels()
	}

	if total > maxChannels {
		return nil, ErrTooManyChannels
	}

	out := zeros(first.rows, first.cols, MakeType(depth, total))
	for i := 0; i < first.rows*first.cols; i++ {
		ch := 0
		for _, c := range channels {
			cch := c.Channels()
			for j := 0; j < cch; j++ {
				out.data[i*total+ch] = c.data[i*cch+j]
				ch++
			}
		}
	}
	return out, nil
}
