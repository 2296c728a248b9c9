package renderer

import (
	"math"

	"github.com/dmf77/go-whitted-raytracer/pkg/core"
	"github.com/dmf77/go-whitted-raytracer/pkg/matrix"
)

// Camera maps pixels on a virtual canvas one unit in front of the eye
// (at z = -1 in camera space) to world-space rays.
type Camera struct {
	hsize       int
	vsize       int
	fieldOfView float64
	transform   matrix.Matrix4
	pixelSize   float64
	halfWidth   float64
	halfHeight  float64
}

// NewCamera creates a camera with the given horizontal and vertical
// pixel counts and field of view in radians. The transform defaults to
// identity (eye at the origin looking down -z).
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   matrix.Identity(),
		pixelSize:   (halfWidth * 2) / float64(hsize),
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
	}
}

// HSize returns the horizontal pixel count.
func (c *Camera) HSize() int { return c.hsize }

// VSize returns the vertical pixel count.
func (c *Camera) VSize() int { return c.vsize }

// FieldOfView returns the field of view in radians.
func (c *Camera) FieldOfView() float64 { return c.fieldOfView }

// PixelSize returns the world-space size of a pixel on the canvas.
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// Transform returns the camera's view transform.
func (c *Camera) Transform() matrix.Matrix4 { return c.transform }

// SetTransform replaces the camera's view transform.
func (c *Camera) SetTransform(m matrix.Matrix4) { c.transform = m }

// RayForPixel returns the world-space ray through the center of the
// given pixel.
func (c *Camera) RayForPixel(px, py int) (core.Ray, error) {
	// offsets from the canvas edge to the pixel's center
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// the camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	inv, err := c.transform.Inverse()
	if err != nil {
		return core.Ray{}, err
	}

	// the canvas sits at z = -1 in camera space
	pixel := inv.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := inv.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
