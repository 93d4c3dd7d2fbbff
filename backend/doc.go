/*
Package backend provides an abstraction layer to the available computational backends, currently implemented:

	- naive (naive implementation, no optimizations)
	- gonum (gonum blas64 + floats interfaces)

Future:

	- cuda
	- opencl
*/
package backend
