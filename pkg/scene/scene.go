package scene

import (
	"math"

	"github.com/dmf77/go-whitted-raytracer/pkg/core"
	"github.com/dmf77/go-whitted-raytracer/pkg/geometry"
	"github.com/dmf77/go-whitted-raytracer/pkg/material"
	"github.com/dmf77/go-whitted-raytracer/pkg/matrix"
	"github.com/dmf77/go-whitted-raytracer/pkg/pattern"
	"github.com/dmf77/go-whitted-raytracer/pkg/renderer"
	"github.com/dmf77/go-whitted-raytracer/pkg/world"
)

// Scene couples a world with the camera that views it.
type Scene struct {
	World  *world.World
	Camera *renderer.Camera
}

// NewDefaultScene builds a checkered floor with three spheres: a striped
// one, a mirror and a glass one.
func NewDefaultScene(width, height int) (*Scene, error) {
	light, err := material.NewPointLight(core.NewPoint(-10, 10, -10), core.White())
	if err != nil {
		return nil, err
	}

	floor := geometry.NewPlane()
	floorMaterial := floor.Material()
	floorMaterial.Pattern = pattern.NewChecker(core.White(), core.NewColor(0.2, 0.2, 0.2))
	floorMaterial.Specular = 0
	floorMaterial.Reflective = 0.1
	floor.SetMaterial(floorMaterial)

	striped := geometry.NewSphere()
	striped.SetTransform(matrix.Translation(-2.2, 1, 0.5))
	stripedMaterial := striped.Material()
	stripes := pattern.NewStripe(core.NewColor(0.1, 0.6, 0.2), core.NewColor(0.9, 0.9, 0.1))
	stripes.SetTransform(matrix.Scaling(0.25, 0.25, 0.25).Multiply(matrix.RotationZ(math.Pi / 4)))
	stripedMaterial.Pattern = stripes
	stripedMaterial.Diffuse = 0.7
	stripedMaterial.Specular = 0.3
	striped.SetMaterial(stripedMaterial)

	mirror := geometry.NewSphere()
	mirror.SetTransform(matrix.Translation(0, 1, 2))
	mirrorMaterial := mirror.Material()
	mirrorMaterial.Pattern = pattern.NewSolid(core.NewColor(0.1, 0.1, 0.1))
	mirrorMaterial.Diffuse = 0.1
	mirrorMaterial.Specular = 1
	mirrorMaterial.Shininess = 300
	mirrorMaterial.Reflective = 0.9
	mirror.SetMaterial(mirrorMaterial)

	glass := geometry.NewGlassSphere()
	glass.SetTransform(matrix.Translation(1.8, 1, -0.5))
	glassMaterial := glass.Material()
	glassMaterial.Pattern = pattern.NewSolid(core.NewColor(0.05, 0.05, 0.05))
	glassMaterial.Diffuse = 0.1
	glassMaterial.Specular = 1
	glassMaterial.Shininess = 300
	glassMaterial.Reflective = 0.9
	glass.SetMaterial(glassMaterial)

	w := world.New()
	w.Light = &light
	w.Objects = []geometry.Shape{floor, striped, mirror, glass}

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(matrix.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{World: w, Camera: camera}, nil
}

// NewPatternScene shows each procedural pattern on its own sphere above
// a ring-patterned floor.
func NewPatternScene(width, height int) (*Scene, error) {
	light, err := material.NewPointLight(core.NewPoint(-10, 12, -10), core.White())
	if err != nil {
		return nil, err
	}

	floor := geometry.NewPlane()
	floorMaterial := floor.Material()
	floorMaterial.Pattern = pattern.NewRing(core.NewColor(0.4, 0.45, 0.5), core.NewColor(0.8, 0.85, 0.9))
	floorMaterial.Specular = 0
	floor.SetMaterial(floorMaterial)

	patterns := []pattern.Pattern{
		pattern.NewGradient(core.NewColor(0.9, 0.1, 0.1), core.NewColor(0.1, 0.1, 0.9)),
		pattern.NewChecker(core.NewColor(0.1, 0.4, 0.1), core.NewColor(0.9, 0.9, 0.9)),
		pattern.NewRadialGradient(core.NewColor(0.9, 0.6, 0.1), core.NewColor(0.2, 0.1, 0.5)),
	}

	w := world.New()
	w.Light = &light
	w.Objects = []geometry.Shape{floor}

	for i, p := range patterns {
		s := geometry.NewSphere()
		s.SetTransform(matrix.Translation(float64(i-1)*2.4, 1, 0))
		m := s.Material()
		p.SetTransform(matrix.Scaling(0.5, 0.5, 0.5))
		m.Pattern = p
		m.Diffuse = 0.8
		m.Specular = 0.2
		s.SetMaterial(m)
		w.Objects = append(w.Objects, s)
	}

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(matrix.ViewTransform(
		core.NewPoint(0, 2.5, -6),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{World: w, Camera: camera}, nil
}
