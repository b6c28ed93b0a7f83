package voronoi

import (
	"github.com/pkg/errors"
)

var (
	// ErrSurfaceLost is returned by surfaces that can no longer create
	// resources or present frames (closed, device lost etc). The host is
	// expected to recreate the surface and repaint.
	ErrSurfaceLost = errors.New("drawing surface lost")

	// ErrInvalidConfig implies a Config failed validation.
	ErrInvalidConfig = errors.New("invalid config")
)

// IsSurfaceLost returns if err was caused by a lost surface.
func IsSurfaceLost(err error) bool {
	return errors.Cause(err) == ErrSurfaceLost
}
