package backend

import (
	"math"
	"runtime"

	"github.com/pbnjay/memory"
)

type naive struct {
}

func (impl naive) Name() string {
	return "naive"
}

func (impl naive) Space() uint64 {
	return memory.TotalMemory()
}

func (impl naive) Used() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Sys
}

func (impl naive) Wrap(size int, data []float64) Vector {
	return data
}

func (impl naive) Dot(a, b Vector) float64 {
	dot := 0.0
	for i, va := range a.([]float64) {
		dot += va * b.([]float64)[i]
	}
	return dot
}

func (impl naive) Sum(a Vector) float64 {
	sum := 0.0
	for _, v := range a.([]float64) {
		sum += v
	}
	return sum
}

func (impl naive) AbsSum(a Vector) float64 {
	sum := 0.0
	for _, v := range a.([]float64) {
		sum += math.Abs(v)
	}
	return sum
}

func (impl naive) Min(a Vector) float64 {
	min := math.Inf(1)
	for _, v := range a.([]float64) {
		if v < min {
			min = v
		}
	}
	return min
}

func (impl naive) Max(a Vector) float64 {
	max := math.Inf(-1)
	for _, v := range a.([]float64) {
		if v > max {
			max = v
		}
	}
	return max
}

func (impl naive) AbsMax(a Vector) float64 {
	max := 0.0
	for _, v := range a.([]float64) {
		if av := math.Abs(v); av > max {
			max = av
		}
	}
	return max
}
