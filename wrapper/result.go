package wrapper

// ConnectedComponents is the result object of connected component
// labeling with statistics: a labels matrix, a stats matrix with one
// {left, top, width, height, area} row per label, a centroids matrix
// with one {x, y} row per label and the label count, background
// included.
type ConnectedComponents struct {
	Labels    *Mat
	Stats     *Mat
	Centroids *Mat
	Count     int
}
