package core

import (
	"errors"
	"fmt"
)

// ErrInvalidTupleRole is returned when a point is supplied where a vector
// is required, or the other way around.
var ErrInvalidTupleRole = errors.New("invalid tuple role")

// Ray represents a ray with a point of origin and a direction vector.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray. The origin must be a point and the direction
// must be a vector; anything else is a scene-construction bug.
func NewRay(origin, direction Tuple) (Ray, error) {
	if !origin.IsPoint() {
		return Ray{}, fmt.Errorf("ray origin must be a point: %w", ErrInvalidTupleRole)
	}
	if !direction.IsVector() {
		return Ray{}, fmt.Errorf("ray direction must be a vector: %w", ErrInvalidTupleRole)
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// Position returns the point t units along the ray from its origin.
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}
