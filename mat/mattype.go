package mat

import (
	"fmt"
	"math"
)

// MatType encodes the element depth and the number of interleaved channels
// of a matrix with the packed code convention used by mainstream computer
// vision libraries: code = depth | (channels - 1) << 3.
type MatType int

// Element depths.
const (
	MatTypeCV8U  MatType = 0
	MatTypeCV8S  MatType = 1
	MatTypeCV16U MatType = 2
	MatTypeCV16S MatType = 3
	MatTypeCV32S MatType = 4
	MatTypeCV32F MatType = 5
	MatTypeCV64F MatType = 6
)

const (
	channelShift = 3
	depthMask    = (1 << channelShift) - 1
	maxChannels  = 4
)

// Packed depth + channel codes.
const (
	MatTypeCV8UC1 = MatTypeCV8U + 0<<channelShift
	MatTypeCV8UC2 = MatTypeCV8U + 1<<channelShift
	MatTypeCV8UC3 = MatTypeCV8U + 2<<channelShift
	MatTypeCV8UC4 = MatTypeCV8U + 3<<channelShift

	MatTypeCV8SC1 = MatTypeCV8S + 0<<channelShift
	MatTypeCV8SC2 = MatTypeCV8S + 1<<channelShift
	MatTypeCV8SC3 = MatTypeCV8S + 2<<channelShift
	MatTypeCV8SC4 = MatTypeCV8S + 3<<channelShift

	MatTypeCV16UC1 = MatTypeCV16U + 0<<channelShift
	MatTypeCV16UC2 = MatTypeCV16U + 1<<channelShift
	MatTypeCV16UC3 = MatTypeCV16U + 2<<channelShift
	MatTypeCV16UC4 = MatTypeCV16U + 3<<channelShift

	MatTypeCV16SC1 = MatTypeCV16S + 0<<channelShift
	MatTypeCV16SC2 = MatTypeCV16S + 1<<channelShift
	MatTypeCV16SC3 = MatTypeCV16S + 2<<channelShift
	MatTypeCV16SC4 = MatTypeCV16S + 3<<channelShift

	MatTypeCV32SC1 = MatTypeCV32S + 0<<channelShift
	MatTypeCV32SC2 = MatTypeCV32S + 1<<channelShift
	MatTypeCV32SC3 = MatTypeCV32S + 2<<channelShift
	MatTypeCV32SC4 = MatTypeCV32S + 3<<channelShift

	MatTypeCV32FC1 = MatTypeCV32F + 0<<channelShift
	MatTypeCV32FC2 = MatTypeCV32F + 1<<channelShift
	MatTypeCV32FC3 = MatTypeCV32F + 2<<channelShift
	MatTypeCV32FC4 = MatTypeCV32F + 3<<channelShift

	MatTypeCV64FC1 = MatTypeCV64F + 0<<channelShift
	MatTypeCV64FC2 = MatTypeCV64F + 1<<channelShift
	MatTypeCV64FC3 = MatTypeCV64F + 2<<channelShift
	MatTypeCV64FC4 = MatTypeCV64F + 3<<channelShift
)

// MakeType builds a packed type code from an element depth and a
// channel count.
func MakeType(depth MatType, channels int) MatType {
	return (depth & depthMask) + MatType(channels-1)<<channelShift
}

// Depth returns the element depth of this type, without channel
// information.
func (t MatType) Depth() MatType {
	return t & depthMask
}

// Channels returns the number of channels encoded in this type.
func (t MatType) Channels() int {
	return int(t>>channelShift) + 1
}

// Valid returns true if this type maps to a known depth and a channel
// count between 1 and 4.
func (t MatType) Valid() bool {
	return t >= 0 && t.Depth() <= MatTypeCV64F && t.Channels() >= 1 && t.Channels() <= maxChannels
}

var depthNames = map[MatType]string{
	MatTypeCV8U:  "CV_8U",
	MatTypeCV8S:  "CV_8S",
	MatTypeCV16U: "CV_16U",
	MatTypeCV16S: "CV_16S",
	MatTypeCV32S: "CV_32S",
	MatTypeCV32F: "CV_32F",
	MatTypeCV64F: "CV_64F",
}

func (t MatType) String() string {
	name, found := depthNames[t.Depth()]
	if !found {
		return fmt.Sprintf("CV_?(%d)", int(t))
	}
	return fmt.Sprintf("%sC%d", name, t.Channels())
}

// saturate clamps v to the representable range of the given depth,
// rounding to the nearest integer for integral depths.
func saturate(depth MatType, v float64) float64 {
	switch depth {
	case MatTypeCV8U:
		return clampRound(v, 0, math.MaxUint8)
	case MatTypeCV8S:
		return clampRound(v, math.MinInt8, math.MaxInt8)
	case MatTypeCV16U:
		return clampRound(v, 0, math.MaxUint16)
	case MatTypeCV16S:
		return clampRound(v, math.MinInt16, math.MaxInt16)
	case MatTypeCV32S:
		return clampRound(v, math.MinInt32, math.MaxInt32)
	case MatTypeCV32F:
		return float64(float32(v))
	}
	return v
}

func clampRound(v, lo, hi float64) float64 {
	v = math.Round(v)
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}
