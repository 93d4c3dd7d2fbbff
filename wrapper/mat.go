// Package wrapper contains the objects the script environment sees,
// thin read mostly views over the mat and ml packages. Contract
// violations panic, the script layer turns panics into exceptions the
// calling script can catch.
package wrapper

import (
	"github.com/matscript/matscript/mat"
)

// Mat is the wrapper for a single *mat.Mat object used to give
// scripts access to a matrix during execution.
type Mat struct {
	// Rows can be used to read the number of rows.
	Rows int
	// Cols can be used to read the number of columns.
	Cols int
	// Channels can be used to read the number of channels.
	Channels int

	m *mat.Mat
}

// WrapMat creates a Mat wrapper around a raw *mat.Mat object.
func WrapMat(m *mat.Mat) *Mat {
	w := &Mat{m: m}
	if m != nil {
		w.Rows = m.Rows()
		w.Cols = m.Cols()
		w.Channels = m.Channels()
	}
	return w
}

// IsNull returns true if the matrix wrapped by this object is nil.
func (w *Mat) IsNull() bool {
	return w == nil || w.m == nil
}

// Unwrap returns the raw *mat.Mat this object wraps.
func (w *Mat) Unwrap() *mat.Mat {
	return w.m
}

// Type returns the packed element type code of the matrix.
func (w *Mat) Type() int {
	return int(w.m.Type())
}

// Empty returns true if the matrix holds no elements.
func (w *Mat) Empty() bool {
	return w.m.Empty()
}

// At returns the value at a given row, column and channel.
func (w *Mat) At(row, col, ch int) float64 {
	return w.m.GetAt(row, col, ch)
}

// Get returns the first channel value at a given row and column.
func (w *Mat) Get(row, col int) float64 {
	return w.m.GetAt(row, col, 0)
}

// Set stores a value in the first channel at a given row and column.
func (w *Mat) Set(row, col int, v float64) {
	w.m.SetAt(row, col, 0, v)
}

// Row returns the channel interleaved values of a row.
func (w *Mat) Row(row int) []float64 {
	return w.m.Row(row)
}

// Copy duplicates all the data into a new matrix.
func (w *Mat) Copy() *Mat {
	return WrapMat(w.m.Clone())
}

// CopyWithMask copies only the elements where the mask is non zero,
// the rest of the result stays at zero.
func (w *Mat) CopyWithMask(mask *Mat) *Mat {
	if mask.IsNull() {
		panic(mat.ErrNoMask)
	}
	out, err := w.m.CloneMasked(mask.m)
	if err != nil {
		panic(err)
	}
	return WrapMat(out)
}

// CopyTo writes every element into a caller supplied destination of
// matching shape.
func (w *Mat) CopyTo(dst *Mat) {
	if dst.IsNull() {
		panic(mat.ErrNoDestination)
	}
	if err := w.m.CopyTo(dst.m); err != nil {
		panic(err)
	}
}

// CopyToWithMask writes into a caller supplied destination only the
// elements where the mask is non zero.
func (w *Mat) CopyToWithMask(dst, mask *Mat) {
	if dst.IsNull() {
		panic(mat.ErrNoDestination)
	} else if mask.IsNull() {
		panic(mat.ErrNoMask)
	}
	if err := w.m.CopyToMasked(dst.m, mask.m); err != nil {
		panic(err)
	}
}

// ConvertTo returns a new matrix with the same dimensions and the
// element depth of the given type code.
func (w *Mat) ConvertTo(t int) *Mat {
	out, err := w.m.ConvertTo(mat.MatType(t))
	if err != nil {
		panic(err)
	}
	return WrapMat(out)
}

// Norm computes the L2 norm over all the elements.
func (w *Mat) Norm() float64 {
	return w.m.Norm(mat.NormL2)
}

// NormWithType computes the norm selected by the given type code.
func (w *Mat) NormWithType(t int) float64 {
	return w.m.Norm(mat.NormType(t))
}

// NormWith computes the L2 norm of the element wise difference with
// another matrix of the same shape.
func (w *Mat) NormWith(b *Mat) float64 {
	if b.IsNull() {
		panic(mat.ErrNoDestination)
	}
	norm, err := w.m.NormWith(b.m, mat.NormL2)
	if err != nil {
		panic(err)
	}
	return norm
}

// Normalize rescales the element values according to an option
// object with alpha, beta and normType keys, every missing key falls
// back to the wrapped library's default.
func (w *Mat) Normalize(opts map[string]interface{}) *Mat {
	o := mat.DefaultNormalizeOptions()
	if v, found := opts["alpha"]; found {
		o.Alpha = toFloat(v)
	}
	if v, found := opts["beta"]; found {
		o.Beta = toFloat(v)
	}
	if v, found := opts["normType"]; found {
		o.NormType = mat.NormType(toFloat(v))
	}

	out, err := w.m.Normalize(o)
	if err != nil {
		panic(err)
	}
	return WrapMat(out)
}

// SplitChannels returns one single channel matrix per channel.
func (w *Mat) SplitChannels() []*Mat {
	parts := w.m.Split()
	out := make([]*Mat, len(parts))
	for i, p := range parts {
		out[i] = WrapMat(p)
	}
	return out
}

// Threshold applies a fixed level threshold to every element.
func (w *Mat) Threshold(thresh, maxval float64, typ int) *Mat {
	out, err := mat.Threshold(w.m, thresh, maxval, mat.ThresholdType(typ))
	if err != nil {
		panic(err)
	}
	return WrapMat(out)
}

// ConnectedComponents labels the connected non zero regions with the
// default connectivity of the wrapped library.
func (w *Mat) ConnectedComponents() *Mat {
	return w.ConnectedComponentsWithConnectivity(int(mat.Connectivity8))
}

// ConnectedComponentsWithConnectivity labels the connected non zero
// regions using 4 or 8 way connectivity.
func (w *Mat) ConnectedComponentsWithConnectivity(conn int) *Mat {
	labels, _, err := mat.ConnectedComponents(w.m, mat.Connectivity(conn))
	if err != nil {
		panic(err)
	}
	return WrapMat(labels)
}

// ConnectedComponentsWithStats additionally returns per label
// bounding box, area and centroid statistics.
func (w *Mat) ConnectedComponentsWithStats() *ConnectedComponents {
	return w.ConnectedComponentsWithStatsAndConnectivity(int(mat.Connectivity8))
}

// ConnectedComponentsWithStatsAndConnectivity is the configurable
// variant of ConnectedComponentsWithStats.
func (w *Mat) ConnectedComponentsWithStatsAndConnectivity(conn int) *ConnectedComponents {
	labels, stats, centroids, count, err := mat.ConnectedComponentsWithStats(w.m, mat.Connectivity(conn))
	if err != nil {
		panic(err)
	}
	return &ConnectedComponents{
		Labels:    WrapMat(labels),
		Stats:     WrapMat(stats),
		Centroids: WrapMat(centroids),
		Count:     count,
	}
}

// Mean returns the per channel mean values.
func (w *Mat) Mean() []float64 {
	s := w.m.Mean()
	all := []float64{s.Val1, s.Val2, s.Val3, s.Val4}
	return all[:w.m.Channels()]
}

// MinMax returns the smallest and largest element values.
func (w *Mat) MinMax() []float64 {
	minVal, maxVal, _, _, err := w.m.MinMaxLoc()
	if err != nil {
		panic(err)
	}
	return []float64{minVal, maxVal}
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	}
	return 0
}
