package ml

import "fmt"

// SVMParam identifies the SVM hyper parameter a default grid is
// requested for.
type SVMParam int

const (
	SVMC SVMParam = iota
	SVMGamma
	SVMP
	SVMNu
	SVMCoef
	SVMDegree
)

// DefaultGrid returns the stock search grid of the wrapped library
// for a given SVM hyper parameter.
func DefaultGrid(param SVMParam) (*ParamGrid, error) {
	switch param {
	case SVMC:
		return NewParamGrid(0.1, 500, 5)
	case SVMGamma:
		return NewParamGrid(1e-5, 0.6, 15)
	case SVMP:
		return NewParamGrid(0.01, 100, 7)
	case SVMNu:
		return NewParamGrid(0.01, 0.2, 3)
	case SVMCoef:
		return NewParamGrid(0.1, 300, 14)
	case SVMDegree:
		return NewParamGrid(0.01, 4, 7)
	}
	return nil, fmt.Errorf("unknown SVM parameter %d", param)
}
