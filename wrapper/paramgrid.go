package wrapper

import (
	"github.com/matscript/matscript/ml"
)

// ParamGrid is the wrapper for a *ml.ParamGrid object, it only
// exposes the read only accessors of the underlying grid.
type ParamGrid struct {
	grid *ml.ParamGrid
}

// WrapParamGrid creates a ParamGrid wrapper around a raw
// *ml.ParamGrid object.
func WrapParamGrid(grid *ml.ParamGrid) *ParamGrid {
	return &ParamGrid{grid: grid}
}

// IsNull returns true if the grid wrapped by this object is nil.
func (w *ParamGrid) IsNull() bool {
	return w == nil || w.grid == nil
}

// MinVal returns the inclusive lower boundary of the grid.
func (w *ParamGrid) MinVal() float64 {
	return w.grid.MinVal()
}

// MaxVal returns the exclusive upper boundary of the grid.
func (w *ParamGrid) MaxVal() float64 {
	return w.grid.MaxVal()
}

// LogStep returns the multiplicative step between grid values.
func (w *ParamGrid) LogStep() float64 {
	return w.grid.LogStep()
}

// Values enumerates the grid.
func (w *ParamGrid) Values() []float64 {
	return w.grid.Values()
}

// Count returns the number of values the grid enumerates.
func (w *ParamGrid) Count() int {
	return w.grid.Count()
}
