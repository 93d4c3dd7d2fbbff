package mat

// Connectivity selects how many neighbors a pixel has during
// connected component labeling.
type Connectivity int

const (
	// Connectivity4 considers the 4 orthogonal neighbors.
	Connectivity4 Connectivity = 4
	// Connectivity8 also considers the diagonals, it is the default of
	// the wrapped library.
	Connectivity8 Connectivity = 8
)

// Columns of the stats matrix returned by ConnectedComponentsWithStats.
const (
	StatLeft   = 0
	StatTop    = 1
	StatWidth  = 2
	StatHeight = 3
	StatArea   = 4

	statCols = 5
)

var (
	offsets4 = [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	offsets8 = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// ConnectedComponents labels the connected non zero regions of a
// single channel matrix. Label 0 is the background, foreground
// components get sequential labels in raster scan order of their
// first pixel. The returned matrix is CV_32SC1 and the count includes
// the background label.
func ConnectedComponents(m *Mat, conn Connectivity) (*Mat, int, error) {
	if m.Channels() != 1 {
		return nil, 0, ErrNotSingleChannel
	}

	offsets := offsets8
	if conn == Connectivity4 {
		offsets = offsets4
	}

	labels := zeros(m.rows, m.cols, MatTypeCV32S)
	next := 1

	// BFS from every unlabeled foreground pixel, raster scan order
	// keeps the labels sequential and deterministic.
	queue := make([]int, 0, 64)
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			i0 := y*m.cols + x
			if m.data[i0] == 0 || labels.data[i0] != 0 {
				continue
			}

			labels.data[i0] = float64(next)
			queue = append(queue[:0], i0)

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ux, uy := u%m.cols, u/m.cols
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if vx < 0 || vx >= m.cols || vy < 0 || vy >= m.rows {
						continue
					}
					vi := vy*m.cols + vx
					if m.data[vi] != 0 && labels.data[vi] == 0 {
						labels.data[vi] = float64(next)
						queue = append(queue, vi)
					}
				}
			}
			next++
		}
	}

	return labels, next, nil
}

// ConnectedComponentsWithStats labels the connected non zero regions
// of a single channel matrix and additionally returns a CV_32SC1
// stats matrix with one {left, top, width, height, area} row per
// label and a CV_64FC1 centroids matrix with one {x, y} row per
// label. Row 0 describes the background.
func ConnectedComponentsWithStats(m *Mat, conn Connectivity) (labels, stats, centroids *Mat, count int, err error) {
	labels, count, err = ConnectedComponents(m, conn)
	if err != nil {
		return nil, nil, nil, 0, err
	}

	type acc struct {
		minX, minY int
		maxX, maxY int
		area       int
		sumX, sumY float64
	}

	accs := make([]acc, count)
	for i := range accs {
		accs[i] = acc{minX: m.cols, minY: m.rows, maxX: -1, maxY: -1}
	}

	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			a := &accs[int(labels.data[y*m.cols+x])]
			if x < a.minX {
				a.minX = x
			}
			if x > a.maxX {
				a.maxX = x
			}
			if y < a.minY {
				a.minY = y
			}
			if y > a.maxY {
				a.maxY = y
			}
			a.area++
			a.sumX += float64(x)
			a.sumY += float64(y)
		}
	}

	stats = zeros(count, statCols, MatTypeCV32S)
	centroids = zeros(count, 2, MatTypeCV64F)
	for label, a := range accs {
		if a.area == 0 {
			continue
		}
		stats.SetAt(label, StatLeft, 0, float64(a.minX))
		stats.SetAt(label, StatTop, 0, float64(a.minY))
		stats.SetAt(label, StatWidth, 0, float64(a.maxX-a.minX+1))
		stats.SetAt(label, StatHeight, 0, float64(a.maxY-a.minY+1))
		stats.SetAt(label, StatArea, 0, float64(a.area))
		centroids.SetAt(label, 0, 0, a.sumX/float64(a.area))
		centroids.SetAt(label, 1, 0, a.sumY/float64(a.area))
	}

	return labels, stats, centroids, count, nil
}
