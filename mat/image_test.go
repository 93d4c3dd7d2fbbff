package mat

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromImageGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(1, 0, color.Gray{Y: 128})
	img.SetGray(2, 1, color.Gray{Y: 255})

	m := FromImage(img)
	require.Equal(t, MatTypeCV8UC1, m.Type())
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 128.0, m.GetAt(0, 1, 0))
	require.Equal(t, 255.0, m.GetAt(1, 2, 0))
	require.Zero(t, m.GetAt(0, 0, 0))
}

func TestFromImageColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 40, G: 50, B: 60, A: 255})

	m := FromImage(img)
	require.Equal(t, MatTypeCV8UC3, m.Type())
	require.Equal(t, 10.0, m.GetAt(0, 0, 0))
	require.Equal(t, 20.0, m.GetAt(0, 0, 1))
	require.Equal(t, 30.0, m.GetAt(0, 0, 2))
	require.Equal(t, 60.0, m.GetAt(1, 1, 2))
}

func TestImageRoundTrip(t *testing.T) {
	m, err := FromNested([][]float64{{0, 100}, {200, 255}}, MatTypeCV8UC1)
	require.NoError(t, err)

	img, err := m.ToImage()
	require.NoError(t, err)

	back := FromImage(img)
	require.Equal(t, m.Type(), back.Type())
	require.Equal(t, m.Row(0), back.Row(0))
	require.Equal(t, m.Row(1), back.Row(1))
}

func TestToImageWithUnsupportedDepth(t *testing.T) {
	m, _ := New(2, 2, MatTypeCV64FC1)
	if _, err := m.ToImage(); err == nil {
		t.Fatal("an error was expected")
	}
}
