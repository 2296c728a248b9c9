package world

import (
	"math"

	"github.com/dmf77/go-whitted-raytracer/pkg/core"
	"github.com/dmf77/go-whitted-raytracer/pkg/geometry"
	"github.com/dmf77/go-whitted-raytracer/pkg/material"
	"github.com/dmf77/go-whitted-raytracer/pkg/matrix"
	"github.com/dmf77/go-whitted-raytracer/pkg/pattern"
)

// MaxDepth is the default bound on reflection/refraction recursion.
// Mutually reflective surfaces would otherwise bounce a ray forever.
const MaxDepth = 5

// World is a flat collection of shapes plus an optional light source.
// It is populated at scene-setup time and read-only during rendering.
type World struct {
	Light   *material.PointLight
	Objects []geometry.Shape
}

// New creates an empty world with no light and no shapes.
func New() *World {
	return &World{}
}

// Default returns the canonical two-sphere test world: a white point
// light, an outer green-ish sphere and an inner half-scale sphere.
func Default() *World {
	light, _ := material.NewPointLight(core.NewPoint(-10, 10, -10), core.White())

	s1 := geometry.NewSphere()
	m1 := s1.Material()
	m1.Pattern = pattern.NewSolid(core.NewColor(0.8, 1.0, 0.6))
	m1.Diffuse = 0.7
	m1.Specular = 0.2
	s1.SetMaterial(m1)

	s2 := geometry.NewSphere()
	s2.SetTransform(matrix.Scaling(0.5, 0.5, 0.5))

	return &World{
		Light:   &light,
		Objects: []geometry.Shape{s1, s2},
	}
}

// Intersect collects the intersections of a ray with every shape in the
// world, sorted ascending by t.
func (w *World) Intersect(ray core.Ray) (geometry.Intersections, error) {
	var xs geometry.Intersections
	for _, o := range w.Objects {
		hits, err := geometry.Intersect(o, ray)
		if err != nil {
			return nil, err
		}
		xs = append(xs, hits...)
	}
	xs.Sort()
	return xs, nil
}

// IsShadowed reports whether a point is occluded from the world's light.
// It casts a ray from the point toward the light; any hit closer than
// the light itself blocks it.
func (w *World) IsShadowed(point core.Tuple) (bool, error) {
	if w.Light == nil {
		return false, nil
	}
	toLight := w.Light.Position.Subtract(point)
	distance := toLight.Magnitude()

	ray, err := core.NewRay(point, toLight.Normalize())
	if err != nil {
		return false, err
	}
	xs, err := w.Intersect(ray)
	if err != nil {
		return false, err
	}
	if hit, ok := geometry.Hit(xs); ok && hit.T < distance {
		return true, nil
	}
	return false, nil
}

// ShadeHit resolves the color of a prepared hit: the Phong surface term
// with the shadow test taken at the over point, plus the reflected and
// refracted contributions.
func (w *World) ShadeHit(comps geometry.Computations, remaining int) (core.Color, error) {
	if w.Light == nil {
		return core.Black(), nil
	}

	shadowed, err := w.IsShadowed(comps.OverPoint)
	if err != nil {
		return core.Color{}, err
	}

	surface, err := material.Lighting(
		comps.Object.Material(), comps.Object, *w.Light,
		comps.OverPoint, comps.EyeV, comps.NormalV, shadowed,
	)
	if err != nil {
		return core.Color{}, err
	}

	reflected, err := w.ReflectedColor(comps, remaining)
	if err != nil {
		return core.Color{}, err
	}
	refracted, err := w.RefractedColor(comps, remaining)
	if err != nil {
		return core.Color{}, err
	}

	return surface.Add(reflected).Add(refracted), nil
}

// ColorAt resolves the color seen along a ray: black if nothing is hit,
// otherwise the shaded color of the nearest positive hit. The remaining
// parameter bounds reflection/refraction recursion.
func (w *World) ColorAt(ray core.Ray, remaining int) (core.Color, error) {
	xs, err := w.Intersect(ray)
	if err != nil {
		return core.Color{}, err
	}
	hit, ok := geometry.Hit(xs)
	if !ok {
		return core.Black(), nil
	}
	comps, err := geometry.PrepareComputations(hit, ray, xs)
	if err != nil {
		return core.Color{}, err
	}
	return w.ShadeHit(comps, remaining)
}

// ReflectedColor casts a ray from the over point along the reflection
// vector and scales the resolved color by the material's reflectivity.
// It contributes black once the depth budget is spent or the material is
// not reflective.
func (w *World) ReflectedColor(comps geometry.Computations, remaining int) (core.Color, error) {
	if remaining <= 0 {
		return core.Black(), nil
	}
	reflective := comps.Object.Material().Reflective
	if reflective == 0 {
		return core.Black(), nil
	}

	ray, err := core.NewRay(comps.OverPoint, comps.ReflectV)
	if err != nil {
		return core.Color{}, err
	}
	color, err := w.ColorAt(ray, remaining-1)
	if err != nil {
		return core.Color{}, err
	}
	return color.Multiply(reflective), nil
}

// RefractedColor applies Snell's law at the hit and casts the refracted
// ray from the under point, scaling the result by the material's
// transparency. Total internal reflection contributes black, as do an
// opaque material and a spent depth budget.
func (w *World) RefractedColor(comps geometry.Computations, remaining int) (core.Color, error) {
	if remaining <= 0 {
		return core.Black(), nil
	}
	transparency := comps.Object.Material().Transparency
	if transparency == 0 {
		return core.Black(), nil
	}

	// Snell's law: sin(theta_i) / sin(theta_t) = n2 / n1
	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		// total internal reflection
		return core.Black(), nil
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))

	ray, err := core.NewRay(comps.UnderPoint, direction)
	if err != nil {
		return core.Color{}, err
	}
	color, err := w.ColorAt(ray, remaining-1)
	if err != nil {
		return core.Color{}, err
	}
	return color.Multiply(transparency), nil
}
