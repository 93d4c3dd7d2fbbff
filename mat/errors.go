package mat

import "errors"

var (
	// ErrRowsMismatch is returned when an operation is given matrices
	// with different row counts.
	ErrRowsMismatch = errors.New("rows mismatch")
	// ErrColsMismatch is returned when an operation is given matrices
	// with different column counts.
	ErrColsMismatch = errors.New("cols mismatch")
	// ErrInvalidType is returned when a type code does not map to any
	// known element depth and channel count combination.
	ErrInvalidType = errors.New("Invalid type for type")
	// ErrNoDestination is returned by CopyTo when the caller did not
	// supply a destination matrix.
	ErrNoDestination = errors.New("expected arg: destination mat")
	// ErrNoMask is returned by masked operations when no mask is supplied.
	ErrNoMask = errors.New("expected arg: mask mat")
	// ErrTypeMismatch is returned when two matrices are expected to
	// share the same element type but do not.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrRowsLength is returned when nested row data is ragged.
	ErrRowsLength = errors.New("every row must have the same number of columns")
	// ErrEmptyChannels is returned when merging an empty channel list.
	ErrEmptyChannels = errors.New("expected at least one channel mat")
	// ErrTooManyChannels is returned when merging would exceed the
	// maximum of 4 channels.
	ErrTooManyChannels = errors.New("channel count out of range")
	// ErrNotSingleChannel is returned by operations defined on single
	// channel matrices only.
	ErrNotSingleChannel = errors.New("expected a single channel mat")
	// ErrDataLength is returned when flat data does not cover
	// rows * cols * channels elements.
	ErrDataLength = errors.New("data length does not match matrix size")
	// ErrEmptyMat is returned by operations that need at least one element.
	ErrEmptyMat = errors.New("mat is empty")
)
