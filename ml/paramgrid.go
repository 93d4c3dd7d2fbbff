// Package ml implements the machine learning parameter objects the
// script environment exposes, currently only the logarithmic
// parameter grid used to drive hyper parameter searches.
package ml

import "errors"

var (
	// ErrGridRange is returned when the grid minimum is not lower than
	// its maximum.
	ErrGridRange = errors.New("min val must be lower than max val")
	// ErrGridMin is returned when the grid minimum is not strictly
	// positive, a zero minimum would never advance during enumeration.
	ErrGridMin = errors.New("min val must be positive")
	// ErrGridStep is returned when the logarithmic step is not
	// strictly greater than 1.
	ErrGridStep = errors.New("log step must be greater than 1")
)

// gridEpsilon is the smallest minimum the wrapped library accepts.
const gridEpsilon = 2.220446049250313e-16

// ParamGrid is a logarithmic grid of parameter values, iterated as
// minVal, minVal*logStep, minVal*logStep^2, ... while below maxVal.
// The fields are read only once the grid is built.
type ParamGrid struct {
	minVal  float64
	maxVal  float64
	logStep float64
}

// NewParamGrid creates and validates a parameter grid.
func NewParamGrid(minVal, maxVal, logStep float64) (*ParamGrid, error) {
	g := &ParamGrid{
		minVal:  minVal,
		maxVal:  maxVal,
		logStep: logStep,
	}
	if err := g.Check(); err != nil {
		return nil, err
	}
	return g, nil
}

// MinVal returns the inclusive lower boundary of the grid.
func (g *ParamGrid) MinVal() float64 {
	return g.minVal
}

// MaxVal returns the exclusive upper boundary of the grid.
func (g *ParamGrid) MaxVal() float64 {
	return g.maxVal
}

// LogStep returns the multiplicative step between grid values.
func (g *ParamGrid) LogStep() float64 {
	return g.logStep
}

// Check validates the grid the same way the wrapped library does.
func (g *ParamGrid) Check() error {
	if g.minVal > g.maxVal {
		return ErrGridRange
	} else if g.minVal < gridEpsilon {
		return ErrGridMin
	} else if g.logStep <= 1 {
		return ErrGridStep
	}
	return nil
}

// Values enumerates the grid.
func (g *ParamGrid) Values() []float64 {
	values := make([]float64, 0, g.Count())
	for v := g.minVal; v < g.maxVal; v *= g.logStep {
		values = append(values, v)
	}
	return values
}

// Count returns the number of values the grid enumerates.
func (g *ParamGrid) Count() int {
	n := 0
	for v := g.minVal; v < g.maxVal; v *= g.logStep {
		n++
	}
	return n
}
