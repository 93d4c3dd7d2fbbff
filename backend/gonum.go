package backend

import (
	"math"

	"github.com/pbnjay/memory"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

type gonum struct {
}

type gonumWrap struct {
	v    blas64.Vector
	data []float64
	sz   int
}

func (impl gonum) Name() string {
	return "gonum"
}

func (impl gonum) Space() uint64 {
	return memory.TotalMemory()
}

func (impl gonum) Wrap(size int, data []float64) Vector {
	return gonumWrap{
		v: blas64.Vector{
			Inc:  1,
			Data: data,
		},
		data: data,
		sz:   size,
	}
}

func (impl gonum) Dot(a, b Vector) float64 {
	return blas64.Dot(a.(gonumWrap).sz, a.(gonumWrap).v, b.(gonumWrap).v)
}

func (impl gonum) Sum(a Vector) float64 {
	return floats.Sum(a.(gonumWrap).data)
}

func (impl gonum) AbsSum(a Vector) float64 {
	return blas64.Asum(a.(gonumWrap).sz, a.(gonumWrap).v)
}

func (impl gonum) Min(a Vector) float64 {
	return floats.Min(a.(gonumWrap).data)
}

func (impl gonum) Max(a Vector) float64 {
	return floats.Max(a.(gonumWrap).data)
}

func (impl gonum) AbsMax(a Vector) float64 {
	w := a.(gonumWrap)
	if w.sz == 0 {
		return 0
	}
	return math.Abs(w.data[blas64.Iamax(w.sz, w.v)])
}
