package gridmap

// Regions labels lattice points by connectivity over traversable unit steps.
//
// Two points with different labels cannot be joined by any path of any
// planner in this module: every segment with line of sight can be replaced
// by a chain of traversable unit steps. The converse does not hold (a
// pinched corner joins regions here), so equal labels are only a hint.
type Regions struct {
	w     int // lattice width
	label []int32
	count int
}

// unit steps between lattice points
var latticeOffsets = [4]Direction{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Regions computes the region labels of m by breadth-first flood fill.
//
// Time:   O((H+1)·(W+1)).
// Memory: O((H+1)·(W+1)).
func (m *Map) Regions() *Regions {
	w, h := m.width+1, m.height+1
	r := &Regions{w: w, label: make([]int32, w*h)}
	for idx := range r.label {
		r.label[idx] = -1
	}

	queue := make([]int, 0, w)
	for i0 := 0; i0 < h; i0++ {
		for j0 := 0; j0 < w; j0++ {
			if r.label[i0*w+j0] >= 0 {
				continue
			}
			id := int32(r.count)
			r.count++
			r.label[i0*w+j0] = id

			queue = append(queue[:0], i0*w+j0)
			for qi := 0; qi < len(queue); qi++ {
				ui, uj := queue[qi]/w, queue[qi]%w
				for _, d := range latticeOffsets {
					vi, vj := ui+d.DI, uj+d.DJ
					if !m.InBounds(vi, vj) || r.label[vi*w+vj] >= 0 {
						continue
					}
					if !m.TraversableStep(ui, uj, vi, vj) {
						continue
					}
					r.label[vi*w+vj] = id
					queue = append(queue, vi*w+vj)
				}
			}
		}
	}

	return r
}

// Count returns the number of regions.
func (r *Regions) Count() int { return r.count }

// Label returns the region of p, or -1 when p is off the lattice.
func (r *Regions) Label(p Point) int {
	if p.I < 0 || p.J < 0 || p.J >= r.w || p.I*r.w+p.J >= len(r.label) {
		return -1
	}
	return int(r.label[p.I*r.w+p.J])
}

// Connected reports whether a and b share a region. Off-lattice points are
// never connected.
func (r *Regions) Connected(a, b Point) bool {
	la := r.Label(a)
	return la >= 0 && la == r.Label(b)
}
