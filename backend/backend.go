package backend

// Vector is an opaque interface to whatever the specific backend implementation
// will return as object wrapper.
type Vector interface{}

// each backend must implement these methods.
type implementation interface {
	Name() string
	Space() uint64

	Wrap(size int, data []float64) Vector

	Dot(a, b Vector) float64
	Sum(a Vector) float64
	AbsSum(a Vector) float64
	Min(a Vector) float64
	Max(a Vector) float64
	AbsMax(a Vector) float64
}

// TODO: pick at runtime the best backend available ( CUDA, OpenCL or gonum ).
var impl = gonum{}

func Name() string {
	return impl.Name()
}

func Space() uint64 {
	return impl.Space()
}

func Wrap(size int, data []float64) Vector {
	return impl.Wrap(size, data)
}

func Dot(a, b Vector) float64 {
	return impl.Dot(a, b)
}

func Sum(a Vector) float64 {
	return impl.Sum(a)
}

func AbsSum(a Vector) float64 {
	return impl.AbsSum(a)
}

func Min(a Vector) float64 {
	return impl.Min(a)
}

func Max(a Vector) float64 {
	return impl.Max(a)
}

func AbsMax(a Vector) float64 {
	return impl.AbsMax(a)
}
