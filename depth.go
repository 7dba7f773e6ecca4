package adventure

import "math"

// depthItem is one entity queued for projection this tick.
type depthItem struct {
	entity *Entity
	depth  float64
	order  int
}

// depthSorter orders entities back to front. Buffers are retained between
// ticks so steady-state sorting does not allocate.
type depthSorter struct {
	items []depthItem
	buf   []depthItem
}

// reset fills the sorter from entities, computing each depth against cam.
func (s *depthSorter) reset(entities []*Entity, cam *Camera) {
	s.items = s.items[:0]
	for i, e := range entities {
		d := cam.Distance(e.Position)
		if math.IsNaN(d) {
			d = math.Inf(-1)
		}
		s.items = append(s.items, depthItem{entity: e, depth: d, order: i})
	}
}

// itemLessOrEqual returns true if a should paint before or with b.
// Farther items paint first; <= on order keeps ties stable.
func itemLessOrEqual(a, b depthItem) bool {
	if a.depth != b.depth {
		return a.depth > b.depth
	}
	return a.order <= b.order
}

// sort orders s.items in place, farthest first.
// Bottom-up merge sort using s.buf as scratch space.
func (s *depthSorter) sort() {
	n := len(s.items)
	if n <= 1 {
		return
	}
	if cap(s.buf) < n {
		s.buf = make([]depthItem, n)
	}
	s.buf = s.buf[:n]

	a := s.items
	b := s.buf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeDepthRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(s.items, s.buf)
	}
}

// mergeDepthRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeDepthRun(src, dst []depthItem, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if itemLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}

// SortByDepth returns entities ordered back to front relative to cam,
// preserving input order on equal depth. The input slice is not modified.
func SortByDepth(entities []*Entity, cam *Camera) []*Entity {
	var s depthSorter
	s.reset(entities, cam)
	s.sort()
	out := make([]*Entity, len(s.items))
	for i, it := range s.items {
		out[i] = it.entity
	}
	return out
}
