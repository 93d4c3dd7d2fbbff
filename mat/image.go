package mat

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// FromImage converts a Go image into a matrix: grayscale images become
// CV_8UC1, everything else becomes CV_8UC3 with RGB channel order.
// The alpha channel, if any, is dropped.
func FromImage(img image.Image) *Mat {
	bounds := img.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()

	if gray, ok := img.(*image.Gray); ok {
		m := zeros(rows, cols, MatTypeCV8UC1)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				m.data[y*cols+x] = float64(gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
		return m
	}

	// imaging gives us a premultiplication free NRGBA no matter what
	// the decoder produced
	nrgba := imaging.Clone(img)
	m := zeros(rows, cols, MatTypeCV8UC3)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := nrgba.NRGBAAt(x, y)
			base := (y*cols + x) * 3
			m.data[base] = float64(c.R)
			m.data[base+1] = float64(c.G)
			m.data[base+2] = float64(c.B)
		}
	}
	return m
}

// ToImage converts a CV_8U matrix back into a Go image, single
// channel matrices become grayscale, 3 and 4 channel ones NRGBA.
func (m *Mat) ToImage() (image.Image, error) {
	if m.mtype.Depth() != MatTypeCV8U {
		return nil, fmt.Errorf("cannot convert a %s mat to an image", m.mtype)
	}

	switch m.Channels() {
	case 1:
		img := image.NewGray(image.Rect(0, 0, m.cols, m.rows))
		for y := 0; y < m.rows; y++ {
			for x := 0; x < m.cols; x++ {
				img.SetGray(x, y, color.Gray{Y: uint8(m.data[y*m.cols+x])})
			}
		}
		return img, nil
	case 3, 4:
		nch := m.Channels()
		img := image.NewNRGBA(image.Rect(0, 0, m.cols, m.rows))
		for y := 0; y < m.rows; y++ {
			for x := 0; x < m.cols; x++ {
				base := (y*m.cols + x) * nch
				a := uint8(255)
				if nch == 4 {
					a = uint8(m.data[base+3])
				}
				img.SetNRGBA(x, y, color.NRGBA{
					R: uint8(m.data[base]),
					G: uint8(m.data[base+1]),
					B: uint8(m.data[base+2]),
					A: a,
				})
			}
		}
		return img, nil
	}

	return nil, fmt.Errorf("cannot convert a %d channel mat to an image", m.Channels())
}
