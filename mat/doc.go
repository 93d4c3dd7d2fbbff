/*
Package mat implements a typed, multi channel, two dimensional matrix
and the numeric operations scripts are allowed to perform on it:
copying (optionally through a mask), depth conversion, norm computation,
normalization, channel splitting and merging, thresholding and connected
component labeling.

Values are kept as float64 internally while the declared element depth
of the matrix governs saturation, so that a CV_8U matrix can never hold
a value outside [0, 255] no matter which operation produced it.
*/
package mat
