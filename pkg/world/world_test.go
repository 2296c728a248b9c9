package world

import (
	"math"
	"testing"

	"github.com/dmf77/go-whitted-raytracer/pkg/core"
	"github.com/dmf77/go-whitted-raytracer/pkg/geometry"
	"github.com/dmf77/go-whitted-raytracer/pkg/material"
	"github.com/dmf77/go-whitted-raytracer/pkg/matrix"
	"github.com/dmf77/go-whitted-raytracer/pkg/pattern"
)

func mustRay(t *testing.T, origin, direction core.Tuple) core.Ray {
	t.Helper()
	r, err := core.NewRay(origin, direction)
	if err != nil {
		t.Fatalf("NewRay: %v", err)
	}
	return r
}

// pointPattern reports the sample point as a color, which makes the
// two-stage pattern transform observable in refraction tests.
type pointPattern struct {
	transform matrix.Matrix4
}

func newPointPattern() *pointPattern {
	return &pointPattern{transform: matrix.Identity()}
}

func (p *pointPattern) Transform() matrix.Matrix4     { return p.transform }
func (p *pointPattern) SetTransform(m matrix.Matrix4) { p.transform = m }
func (p *pointPattern) At(point core.Tuple) core.Color {
	return core.NewColor(point.X, point.Y, point.Z)
}

var _ pattern.Pattern = (*pointPattern)(nil)

func TestNewWorldIsEmpty(t *testing.T) {
	w := New()
	if w.Light != nil || len(w.Objects) != 0 {
		t.Errorf("New world = %+v", w)
	}
}

func TestDefaultWorld(t *testing.T) {
	w := Default()
	if w.Light == nil {
		t.Fatal("default world should have a light")
	}
	if !w.Light.Position.Equals(core.NewPoint(-10, 10, -10)) {
		t.Errorf("light position = %+v", w.Light.Position)
	}
	if len(w.Objects) != 2 {
		t.Fatalf("default world has %d objects", len(w.Objects))
	}
}

func TestIntersectWorld(t *testing.T) {
	w := Default()
	ray := mustRay(t, core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	xs, err := w.Intersect(ray)
	if err != nil {
		t.Fatalf("Intersect: %v", err)
	}
	want := []float64{4, 4.5, 5.5, 6}
	if len(xs) != len(want) {
		t.Fatalf("got %d intersections, want %d", len(xs), len(want))
	}
	for i, tv := range want {
		if !core.FloatEquals(xs[i].T, tv) {
			t.Errorf("xs[%d].T = %v, want %v", i, xs[i].T, tv)
		}
	}
}

func TestShadeHit(t *testing.T) {
	w := Default()
	ray := mustRay(t, core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	hit := geometry.Intersection{T: 4, Object: w.Objects[0]}

	comps, err := geometry.PrepareComputations(hit, ray, geometry.Intersections{hit})
	if err != nil {
		t.Fatalf("PrepareComputations: %v", err)
	}
	got, err := w.ShadeHit(comps, MaxDepth)
	if err != nil {
		t.Fatalf("ShadeHit: %v", err)
	}
	if !got.Equals(core.NewColor(0.38066, 0.47583, 0.2855)) {
		t.Errorf("ShadeHit = %+v", got)
	}
}

func TestShadeHitFromInside(t *testing.T) {
	w := Default()
	light, err := material.NewPointLight(core.NewPoint(0, 0.25, 0), core.White())
	if err != nil {
		t.Fatalf("NewPointLight: %v", err)
	}
	w.Light = &light

	ray := mustRay(t, core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	hit := geometry.Intersection{T: 0.5, Object: w.Objects[1]}

	comps, err := geometry.PrepareComputations(hit, ray, geometry.Intersections{hit})
	if err != nil {
		t.Fatalf("PrepareComputations: %v", err)
	}
	got, err := w.ShadeHit(comps, MaxDepth)
	if err != nil {
		t.Fatalf("ShadeHit: %v", err)
	}
	if !got.Equals(core.NewColor(0.90498, 0.90498, 0.90498)) {
		t.Errorf("ShadeHit = %+v", got)
	}
}

func TestShadeHitInShadow(t *testing.T) {
	w := New()
	light, err := material.NewPointLight(core.NewPoint(0, 0, -10), core.White())
	if err != nil {
		t.Fatalf("NewPointLight: %v", err)
	}
	w.Light = &light

	s1 := geometry.NewSphere()
	s2 := geometry.NewSphere()
	s2.SetTransform(matrix.Translation(0, 0, 10))
	w.Objects = []geometry.Shape{s1, s2}

	ray := mustRay(t, core.NewPoint(0, 0, 5), core.NewVector(0, 0, 1))
	hit := geometry.Intersection{T: 4, Object: s2}

	comps, err := geometry.PrepareComputations(hit, ray, geometry.Intersections{hit})
	if err != nil {
		t.Fatalf("PrepareComputations: %v", err)
	}
	got, err := w.ShadeHit(comps, MaxDepth)
	if err != nil {
		t.Fatalf("ShadeHit: %v", err)
	}
	// only the ambient term survives
	if !got.Equals(core.NewColor(0.1, 0.1, 0.1)) {
		t.Errorf("ShadeHit = %+v", got)
	}
}

func TestColorAt(t *testing.T) {
	w := Default()

	// the ray misses everything
	ray := mustRay(t, core.NewPoint(0, 0, -5), core.NewVector(0, 1, 0))
	got, err := w.ColorAt(ray, MaxDepth)
	if err != nil {
		t.Fatalf("ColorAt: %v", err)
	}
	if !got.Equals(core.Black()) {
		t.Errorf("miss = %+v", got)
	}

	// the ray hits the outer sphere
	ray = mustRay(t, core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	got, err = w.ColorAt(ray, MaxDepth)
	if err != nil {
		t.Fatalf("ColorAt: %v", err)
	}
	if !got.Equals(core.NewColor(0.38066, 0.47583, 0.2855)) {
		t.Errorf("hit = %+v", got)
	}
}

func TestColorAtIntersectionBehindRay(t *testing.T) {
	w := Default()
	for _, o := range w.Objects {
		m := o.Material()
		m.Ambient = 1
		o.SetMaterial(m)
	}

	// between the spheres looking at the inner one
	ray := mustRay(t, core.NewPoint(0, 0, 0.75), core.NewVector(0, 0, -1))
	got, err := w.ColorAt(ray, MaxDepth)
	if err != nil {
		t.Fatalf("ColorAt: %v", err)
	}

	inner, err := pattern.AtShape(w.Objects[1].Material().Pattern, w.Objects[1], core.NewPoint(0, 0, 0))
	if err != nil {
		t.Fatalf("AtShape: %v", err)
	}
	if !got.Equals(inner) {
		t.Errorf("ColorAt = %+v, want inner surface color %+v", got, inner)
	}
}

func TestIsShadowed(t *testing.T) {
	w := Default()

	tests := []struct {
		name  string
		point core.Tuple
		want  bool
	}{
		{"nothing collinear with the point and light", core.NewPoint(0, 10, 0), false},
		{"an object between the point and the light", core.NewPoint(10, -10, 10), true},
		{"the light between the point and the object", core.NewPoint(-20, 20, -20), false},
		{"the point between the light and the object", core.NewPoint(-2, 2, -2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := w.IsShadowed(tt.point)
			if err != nil {
				t.Fatalf("IsShadowed: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsShadowed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReflectedColorForNonReflectiveMaterial(t *testing.T) {
	w := Default()
	inner := w.Objects[1]
	m := inner.Material()
	m.Ambient = 1
	inner.SetMaterial(m)

	ray := mustRay(t, core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	hit := geometry.Intersection{T: 1, Object: inner}
	comps, err := geometry.PrepareComputations(hit, ray, geometry.Intersections{hit})
	if err != nil {
		t.Fatalf("PrepareComputations: %v", err)
	}

	got, err := w.ReflectedColor(comps, MaxDepth)
	if err != nil {
		t.Fatalf("ReflectedColor: %v", err)
	}
	if !got.Equals(core.Black()) {
		t.Errorf("ReflectedColor = %+v", got)
	}
}

func reflectiveFloorWorld(t *testing.T) (*World, geometry.Computations) {
	t.Helper()
	sq2 := math.Sqrt2 / 2

	w := Default()
	floor := geometry.NewPlane()
	floor.SetTransform(matrix.Translation(0, -1, 0))
	m := floor.Material()
	m.Reflective = 0.5
	floor.SetMaterial(m)
	w.Objects = append(w.Objects, floor)

	ray := mustRay(t, core.NewPoint(0, 0, -3), core.NewVector(0, -sq2, sq2))
	hit := geometry.Intersection{T: math.Sqrt2, Object: floor}
	comps, err := geometry.PrepareComputations(hit, ray, geometry.Intersections{hit})
	if err != nil {
		t.Fatalf("PrepareComputations: %v", err)
	}
	return w, comps
}

func TestReflectedColor(t *testing.T) {
	w, comps := reflectiveFloorWorld(t)

	got, err := w.ReflectedColor(comps, MaxDepth)
	if err != nil {
		t.Fatalf("ReflectedColor: %v", err)
	}
	if !got.Equals(core.NewColor(0.19032, 0.2379, 0.14274)) {
		t.Errorf("ReflectedColor = %+v", got)
	}

	// a spent depth budget forces the contribution to exactly black
	got, err = w.ReflectedColor(comps, 0)
	if err != nil {
		t.Fatalf("ReflectedColor: %v", err)
	}
	if got != core.Black() {
		t.Errorf("ReflectedColor at depth 0 = %+v", got)
	}
}

func TestShadeHitWithReflectiveMaterial(t *testing.T) {
	w, comps := reflectiveFloorWorld(t)

	got, err := w.ShadeHit(comps, MaxDepth)
	if err != nil {
		t.Fatalf("ShadeHit: %v", err)
	}
	if !got.Equals(core.NewColor(0.87677, 0.92436, 0.82918)) {
		t.Errorf("ShadeHit = %+v", got)
	}
}

// Two fully reflective planes facing each other must not recurse
// forever; the depth cap terminates the bounce.
func TestColorAtTerminatesBetweenParallelMirrors(t *testing.T) {
	w := New()
	light, err := material.NewPointLight(core.NewPoint(0, 0, 0), core.White())
	if err != nil {
		t.Fatalf("NewPointLight: %v", err)
	}
	w.Light = &light

	lower := geometry.NewPlane()
	lower.SetTransform(matrix.Translation(0, -1, 0))
	lm := lower.Material()
	lm.Reflective = 1
	lower.SetMaterial(lm)

	upper := geometry.NewPlane()
	upper.SetTransform(matrix.Translation(0, 1, 0))
	um := upper.Material()
	um.Reflective = 1
	upper.SetMaterial(um)

	w.Objects = []geometry.Shape{lower, upper}

	ray := mustRay(t, core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0))
	if _, err := w.ColorAt(ray, MaxDepth); err != nil {
		t.Fatalf("ColorAt: %v", err)
	}
}

func TestRefractedColorOpaqueMaterial(t *testing.T) {
	w := Default()
	shape := w.Objects[0]
	ray := mustRay(t, core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	xs := geometry.Intersections{
		{T: 4, Object: shape},
		{T: 6, Object: shape},
	}

	comps, err := geometry.PrepareComputations(xs[0], ray, xs)
	if err != nil {
		t.Fatalf("PrepareComputations: %v", err)
	}
	got, err := w.RefractedColor(comps, MaxDepth)
	if err != nil {
		t.Fatalf("RefractedColor: %v", err)
	}
	if !got.Equals(core.Black()) {
		t.Errorf("RefractedColor = %+v", got)
	}
}

func TestRefractedColorAtMaxDepth(t *testing.T) {
	w := Default()
	shape := w.Objects[0]
	m := shape.Material()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	shape.SetMaterial(m)

	ray := mustRay(t, core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	xs := geometry.Intersections{
		{T: 4, Object: shape},
		{T: 6, Object: shape},
	}
	comps, err := geometry.PrepareComputations(xs[0], ray, xs)
	if err != nil {
		t.Fatalf("PrepareComputations: %v", err)
	}
	got, err := w.RefractedColor(comps, 0)
	if err != nil {
		t.Fatalf("RefractedColor: %v", err)
	}
	if got != core.Black() {
		t.Errorf("RefractedColor at depth 0 = %+v", got)
	}
}

func TestRefractedColorTotalInternalReflection(t *testing.T) {
	sq2 := math.Sqrt2 / 2

	w := Default()
	shape := w.Objects[0]
	m := shape.Material()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	shape.SetMaterial(m)

	// from inside the sphere, past the critical angle
	ray := mustRay(t, core.NewPoint(0, 0, sq2), core.NewVector(0, 1, 0))
	xs := geometry.Intersections{
		{T: -sq2, Object: shape},
		{T: sq2, Object: shape},
	}
	comps, err := geometry.PrepareComputations(xs[1], ray, xs)
	if err != nil {
		t.Fatalf("PrepareComputations: %v", err)
	}
	got, err := w.RefractedColor(comps, MaxDepth)
	if err != nil {
		t.Fatalf("RefractedColor: %v", err)
	}
	if !got.Equals(core.Black()) {
		t.Errorf("RefractedColor under TIR = %+v", got)
	}
}

func TestRefractedColorWithRefractedRay(t *testing.T) {
	w := Default()

	a := w.Objects[0]
	ma := a.Material()
	ma.Ambient = 1.0
	ma.Pattern = newPointPattern()
	a.SetMaterial(ma)

	b := w.Objects[1]
	mb := b.Material()
	mb.Transparency = 1.0
	mb.RefractiveIndex = 1.5
	b.SetMaterial(mb)

	ray := mustRay(t, core.NewPoint(0, 0, 0.1), core.NewVector(0, 1, 0))
	xs := geometry.Intersections{
		{T: -0.9899, Object: a},
		{T: -0.4899, Object: b},
		{T: 0.4899, Object: b},
		{T: 0.9899, Object: a},
	}

	comps, err := geometry.PrepareComputations(xs[2], ray, xs)
	if err != nil {
		t.Fatalf("PrepareComputations: %v", err)
	}
	got, err := w.RefractedColor(comps, MaxDepth)
	if err != nil {
		t.Fatalf("RefractedColor: %v", err)
	}
	// the refracted ray bends toward -y and samples the outer sphere
	if !got.Equals(core.NewColor(0, 0.99888, 0.04725)) {
		t.Errorf("RefractedColor = %+v", got)
	}
}

func TestShadeHitWithTransparentMaterial(t *testing.T) {
	sq2 := math.Sqrt2 / 2
	w := Default()

	floor := geometry.NewPlane()
	floor.SetTransform(matrix.Translation(0, -1, 0))
	fm := floor.Material()
	fm.Transparency = 0.5
	fm.RefractiveIndex = 1.5
	floor.SetMaterial(fm)

	ball := geometry.NewSphere()
	ball.SetTransform(matrix.Translation(0, -3.5, -0.5))
	bm := ball.Material()
	bm.Pattern = pattern.NewSolid(core.NewColor(1, 0, 0))
	bm.Ambient = 0.5
	ball.SetMaterial(bm)

	w.Objects = append(w.Objects, floor, ball)

	ray := mustRay(t, core.NewPoint(0, 0, -3), core.NewVector(0, -sq2, sq2))
	xs := geometry.Intersections{{T: math.Sqrt2, Object: floor}}
	comps, err := geometry.PrepareComputations(xs[0], ray, xs)
	if err != nil {
		t.Fatalf("PrepareComputations: %v", err)
	}

	got, err := w.ShadeHit(comps, MaxDepth)
	if err != nil {
		t.Fatalf("ShadeHit: %v", err)
	}
	// every color source here has equal G and B channels (white light,
	// white floor, red ball), so the result must too: the refracted
	// contribution is the shadowed ball's ambient (0.25, 0, 0)
	if !got.Equals(core.NewColor(0.93642, 0.68642, 0.68642)) {
		t.Errorf("ShadeHit = %+v", got)
	}
}
