package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	LookDir       core.Vec3 // Viewing direction; used instead of LookAt when non-zero
	Up            core.Vec3 // Up direction, defaults to +Y
	VFov          float64   // Vertical field of view in degrees, defaults to 40
	AspectRatio   float64   // Width / height, defaults to 16:9
	Aperture      float64   // Lens diameter; 0 gives a pinhole camera
	FocusDistance float64   // Distance to the plane in focus; 0 means |LookAt - Center|
}

// Camera generates primary rays through a thin lens
type Camera struct {
	origin          core.Vec3
	upperLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Camera basis: right, up, backward
	lensRadius      float64
}

// NewCamera creates a camera from config, filling in defaults for zero fields
func NewCamera(config CameraConfig) *Camera {
	up := config.Up
	if up.NearZero() {
		up = core.NewVec3(0, 1, 0)
	}
	vfov := config.VFov
	if vfov <= 0 {
		vfov = 40
	}
	aspectRatio := config.AspectRatio
	if aspectRatio <= 0 {
		aspectRatio = 16.0 / 9.0
	}

	lookDir := config.LookDir
	focusDistance := config.FocusDistance
	if lookDir.NearZero() {
		lookDir = config.LookAt.Subtract(config.Center)
		if focusDistance <= 0 {
			focusDistance = lookDir.Length()
		}
	} else if focusDistance <= 0 {
		focusDistance = 1
	}

	// Viewport at the focus plane
	theta := vfov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2) * focusDistance
	viewportWidth := aspectRatio * viewportHeight

	w := lookDir.Negate().Unit()
	u := up.Cross(w).Unit()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)

	// Image row 0 is the top of the picture
	upperLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Add(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          config.Center,
		upperLeftCorner: upperLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1,
// s running left to right and t top to bottom. The origin is jittered over
// the lens and the ray gets a random time in [0,1) for motion blur.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.upperLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Subtract(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction, sampler.Get1D())
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}
