package mat

// Clone returns a full copy of this matrix.
func (m *Mat) Clone() *Mat {
	out := zeros(m.rows, m.cols, m.mtype)
	copy(out.data, m.data)
	return out
}

// CloneMasked returns a copy of this matrix where only the elements
// with a non zero mask value are taken from the source, every other
// element is left at zero. The mask must be a single channel matrix
// with the same shape of the source.
func (m *Mat) CloneMasked(mask *Mat) (*Mat, error) {
	if err := m.checkMask(mask); err != nil {
		return nil, err
	}

	out := zeros(m.rows, m.cols, m.mtype)
	m.copyMasked(out, mask)
	return out, nil
}

// CopyTo copies every element of this matrix into a caller supplied
// destination of matching shape and type.
func (m *Mat) CopyTo(dst *Mat) error {
	if dst == nil {
		return ErrNoDestination
	} else if err := m.sameShape(dst); err != nil {
		return err
	} else if dst.mtype != m.mtype {
		return ErrTypeMismatch
	}

	copy(dst.data, m.data)
	return nil
}

// CopyToMasked copies into a caller supplied destination only the
// elements with a non zero mask value, the other destination elements
// keep their previous values.
func (m *Mat) CopyToMasked(dst, mask *Mat) error {
	if dst == nil {
		return ErrNoDestination
	} else if err := m.sameShape(dst); err != nil {
		return err
	} else if dst.mtype != m.mtype {
		return ErrTypeMismatch
	} else if err := m.checkMask(mask); err != nil {
		return err
	}

	m.copyMasked(dst, mask)
	return nil
}

func (m *Mat) checkMask(mask *Mat) error {
	if mask == nil {
		return ErrNoMask
	} else if mask.Channels() != 1 {
		return ErrNotSingleChannel
	}
	return m.sameShape(mask)
}

// copyMasked assumes dst and mask have been validated already.
func (m *Mat) copyMasked(dst, mask *Mat) {
	nch := m.mtype.Channels()
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			if mask.data[row*mask.cols+col] == 0 {
				continue
			}
			base := (row*m.cols + col) * nch
			for ch := 0; ch < nch; ch++ {
				dst.data[base+ch] = m.data[base+ch]
			}
		}
	}
}
