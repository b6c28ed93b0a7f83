package voronoi

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// DefaultSites is how many sites we scatter if not told otherwise.
	DefaultSites = 100

	// DefaultStep is the horizontal sampling stride (surface units) used
	// when approximating arcs with line segments.
	DefaultStep = 5.0

	// MinStep is the smallest sampling stride a Config accepts.
	MinStep = 0.1
)

// Config outlines how a Scene lays out & draws things.
// Zero values are replaced by defaults in DefaultConfig / withDefaults.
type Config struct {
	// Number of sites to scatter over the surface.
	// These are re-generated whenever the surface is resized.
	Sites int

	// Attempts made per site when placing at random. Only relevant if
	// MinSiteDistance rejects candidates.
	// 0 implies 10 attempts per site.
	AttemptsPerSite int

	// Sites are never placed closer than this to each other (approx).
	// 0 or less is "no min"
	MinSiteDistance float64

	// Horizontal sampling stride used for the beach line.
	// Smaller is smoother but costs more line segments.
	Step float64

	// Seed for rng (random number chosen if not set)
	Seed int64

	// Radius of the ellipse drawn around each site
	SiteRadius float64

	// Stroke widths
	SiteWidth      float64
	SweepLineWidth float64
	BeachLineWidth float64

	// SweepDashes is the dash pattern for the sweep line.
	// nil draws a solid line.
	SweepDashes []float64

	// Colours to paint with. DefaultScheme() if not given.
	Scheme *ColourScheme
}

// DefaultConfig returns a reasonable Config.
func DefaultConfig() *Config {
	return &Config{
		Sites:           DefaultSites,
		AttemptsPerSite: 10,
		Step:            DefaultStep,
		SiteRadius:      2,
		SiteWidth:       1,
		SweepLineWidth:  1,
		BeachLineWidth:  1,
		SweepDashes:     []float64{4, 4},
		Scheme:          DefaultScheme(),
	}
}

// withDefaults returns a copy of c with any unset values filled in.
func (c *Config) withDefaults() *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}

	out := *c
	if out.Sites == 0 {
		out.Sites = d.Sites
	}
	if out.AttemptsPerSite <= 0 {
		out.AttemptsPerSite = d.AttemptsPerSite
	}
	if out.Step == 0 {
		out.Step = d.Step
	}
	if out.SiteRadius == 0 {
		out.SiteRadius = d.SiteRadius
	}
	if out.SiteWidth == 0 {
		out.SiteWidth = d.SiteWidth
	}
	if out.SweepLineWidth == 0 {
		out.SweepLineWidth = d.SweepLineWidth
	}
	if out.BeachLineWidth == 0 {
		out.BeachLineWidth = d.BeachLineWidth
	}
	if out.Scheme == nil {
		out.Scheme = d.Scheme
	}
	return &out
}

// Validate checks that settings make sense.
func (c *Config) Validate() error {
	if c.Sites < 0 {
		return errors.Wrapf(ErrInvalidConfig, "sites must not be negative, got %d", c.Sites)
	}
	if !(c.Step >= MinStep) || math.IsInf(c.Step, 0) {
		return errors.Wrapf(ErrInvalidConfig, "step must be finite and at least %v, got %v", MinStep, c.Step)
	}
	if c.SiteRadius < 0 || c.SiteWidth < 0 || c.SweepLineWidth < 0 || c.BeachLineWidth < 0 {
		return errors.Wrap(ErrInvalidConfig, "radius & stroke widths must not be negative")
	}
	for _, d := range c.SweepDashes {
		if d < 0 {
			return errors.Wrapf(ErrInvalidConfig, "dash lengths must not be negative, got %v", c.SweepDashes)
		}
	}
	return nil
}
