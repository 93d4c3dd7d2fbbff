package mat

// ConvertTo returns a new matrix with the same dimensions and channel
// count of the source and the element depth of the requested type,
// saturating every value to the new depth range.
func (m *Mat) ConvertTo(t MatType) (*Mat, error) {
	if !t.Valid() {
		return nil, ErrInvalidType
	}

	// like the wrapped library, only the depth of the requested type
	// matters, the channel count is taken from the source
	depth := t.Depth()
	out := zeros(m.rows, m.cols, MakeType(depth, m.Channels()))
	for i, v := range m.data {
		out.data[i] = saturate(depth, v)
	}
	return out, nil
}
