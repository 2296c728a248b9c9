package geometry

import (
	"github.com/dmf77/go-whitted-raytracer/pkg/core"
)

// Computations holds the per-hit geometric state derived from an
// intersection and the ray that produced it. It is recomputed for every
// shaded hit and never cached across rays.
type Computations struct {
	T       float64
	Object  Shape
	Point   core.Tuple
	EyeV    core.Tuple
	NormalV core.Tuple
	// ReflectV is the ray direction reflected about the normal.
	ReflectV core.Tuple
	// Inside is true when the hit is on the far side of the surface,
	// in which case NormalV has been flipped toward the eye.
	Inside bool
	// OverPoint is the hit point nudged along +normal; shadow and
	// reflection rays originate here to avoid self-intersection acne.
	OverPoint core.Tuple
	// UnderPoint is the hit point nudged along -normal; refraction
	// rays originate here.
	UnderPoint core.Tuple
	// N1 and N2 are the refractive indices of the medium the ray is
	// leaving and entering at this hit.
	N1, N2 float64
}

// PrepareComputations derives the shading state for a hit. The full
// sorted intersection list is replayed up to and through the hit to
// track which shapes the ray is currently inside of, which yields the
// n1/n2 pair; membership in that containers list toggles by shape
// identity, never by value.
func PrepareComputations(hit Intersection, ray core.Ray, xs Intersections) (Computations, error) {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
	}

	comps.Point = ray.Position(hit.T)
	comps.EyeV = ray.Direction.Negate()

	normal, err := NormalAt(hit.Object, comps.Point)
	if err != nil {
		return Computations{}, err
	}
	if normal.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		normal = normal.Negate()
	}
	comps.NormalV = normal
	comps.ReflectV = ray.Direction.Reflect(normal)

	offset := normal.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps, nil
}

// refractiveIndices replays the sorted intersections up to the hit,
// maintaining the stack of shapes the ray is currently inside: entering
// a shape appends it, exiting removes it. N1 is the index of the
// innermost container before the hit toggles the shape's membership, N2
// the one after; an empty stack means vacuum/air (1.0).
func refractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	containers := make([]Shape, 0, len(xs))

	for _, i := range xs {
		if i == hit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := indexOfShape(containers, i.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, i.Object)
		}

		if i == hit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			return n1, n2
		}
	}
	return n1, n2
}

func indexOfShape(shapes []Shape, s Shape) int {
	for i, candidate := range shapes {
		if candidate.ID() == s.ID() {
			return i
		}
	}
	return -1
}
