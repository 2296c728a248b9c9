package geometry

import "sort"

// Intersection is an immutable (t, shape) pair produced by a ray-shape
// test.
type Intersection struct {
	T      float64
	Object Shape
}

// Intersections is a collection of intersections; sorted ascending by t
// it is the unit of "all hits" for a ray.
type Intersections []Intersection

// Sort orders the intersections ascending by t.
func (xs Intersections) Sort() {
	sort.Slice(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the intersection with the smallest strictly positive t,
// which is the one visible from the ray's origin. The second return is
// false when every t is non-positive. The scan is linear and
// deterministic for a fixed input order.
func Hit(xs Intersections) (Intersection, bool) {
	var result Intersection
	found := false
	for _, i := range xs {
		if i.T <= 0 {
			continue
		}
		if !found || i.T < result.T {
			result = i
			found = true
		}
	}
	return result, found
}
