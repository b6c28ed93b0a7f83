package voronoi

import (
	"encoding/json"
	"math"
	"os"
	"reflect"

	"github.com/b-grooters-byte/voronoi/internal/damage"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// State is where a Scene is in its resource lifecycle.
type State int

const (
	// Uninitialized means no resources have ever been created.
	Uninitialized State = iota

	// Ready means resources exist for the current surface.
	Ready

	// NeedsResourceRebuild means resources were released (resize, lost
	// surface, explicit Release) and must be recreated before drawing.
	NeedsResourceRebuild
)

// String returns a human readable State
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case NeedsResourceRebuild:
		return "needs-resource-rebuild"
	}
	return "unknown"
}

// Clipper is implemented by surfaces that can restrict drawing to a rect.
type Clipper interface {
	PushClip(r r2.Rect)
	PopClip()
}

// resources are the device dependent things we draw with.
type resources struct {
	site  Brush
	sweep Brush
	beach Brush
	solid StrokeStyle
	dash  StrokeStyle
}

// release everything that was created, in reverse order.
func (r *resources) release() {
	for _, res := range []Resource{r.dash, r.solid, r.beach, r.sweep, r.site} {
		if res != nil {
			res.Release()
		}
	}
}

// Scene holds the sites, sweep line & drawing resources for one surface and
// handles events from a host. It is not safe for concurrent use, hosts are
// expected to deliver events from a single goroutine.
type Scene struct {
	cfg *Config

	width  int
	height int
	sweep  float64
	sites  *SiteSet

	state  State
	res    *resources
	target Surface

	damage *damage.Rows
}

var _ EventHandler = (*Scene)(nil)

// NewScene returns a Scene with no size. Nothing is drawn until the host
// calls Resized.
func NewScene(cfg *Config) (*Scene, error) {
	c := cfg.withDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Scene{
		cfg:    c,
		sites:  &SiteSet{Bounds: r2.EmptyRect()},
		damage: damage.New(0, 0),
	}, nil
}

// State returns where we are in the resource lifecycle
func (s *Scene) State() State {
	return s.state
}

// Size returns the current surface size
func (s *Scene) Size() (int, int) {
	return s.width, s.height
}

// Bounds returns the surface area as a rect
func (s *Scene) Bounds() r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: 0, Hi: float64(s.width)},
		Y: r1.Interval{Lo: 0, Hi: float64(s.height)},
	}
}

// Sweep returns the current sweep line y
func (s *Scene) Sweep() float64 {
	return s.sweep
}

// Sites returns the current site set
func (s *Scene) Sites() *SiteSet {
	return s.sites
}

// Pending returns everything invalidated since the last successful Paint.
func (s *Scene) Pending() r2.Rect {
	return s.damage.Bounds()
}

// Arcs returns the beach line arcs across the whole surface for the
// current sweep line.
func (s *Scene) Arcs() []Arc {
	return BeachLines(s.sites.Sites, s.sweep, SampleRange(s.Bounds(), s.cfg.Step), s.cfg.Step)
}

// Resized drops our resources (they're bound to the old surface) and
// scatters a new set of sites over the new area.
func (s *Scene) Resized(width, height int) r2.Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	s.releaseResources()
	s.width, s.height = width, height
	s.sites = s.generateSites()

	s.damage = damage.New(width, height)
	s.damage.MarkAll()

	Logger().Debug("surface resized",
		zap.Int("width", width), zap.Int("height", height),
		zap.String("site_set", s.sites.ID), zap.Int("sites", s.sites.Len()),
	)
	return s.Bounds()
}

// PointerMoved moves the sweep line to y.
// Arcs only ever exist above the sweep line, so moving it changes at most
// the band from the top of the surface down to the lower of the old & new
// positions (+ room for the sweep stroke & site markers).
func (s *Scene) PointerMoved(x, y float64) r2.Rect {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return r2.EmptyRect()
	}
	old := s.sweep
	s.sweep = y
	if old == y {
		return r2.EmptyRect()
	}

	// room for the widest stroke & a site marker either side of a line
	stroke := math.Max(s.cfg.SweepLineWidth, s.cfg.BeachLineWidth) / 2
	margin := math.Max(stroke, s.cfg.SiteRadius+s.cfg.SiteWidth) + 1
	dirty := r2.Rect{
		X: r1.Interval{Lo: 0, Hi: float64(s.width)},
		Y: r1.Interval{Lo: 0, Hi: math.Max(old, y) + margin},
	}.Intersection(s.Bounds())

	s.damage.Mark(dirty)
	return dirty
}

// Paint draws the scene on to surf, restricted to clip. surf must be
// comparable (see Surface).
// Resources are (re)created first if required; failures there are
// returned & we'll try again on the next Paint.
func (s *Scene) Paint(surf Surface, clip r2.Rect) error {
	if surf == nil {
		return errors.New("paint: nil surface")
	}
	if !reflect.TypeOf(surf).Comparable() {
		return errors.Errorf("paint: surface %T is not comparable", surf)
	}
	clip = clip.Intersection(s.Bounds())
	if clip.IsEmpty() {
		return nil
	}

	if s.target != surf && s.state == Ready {
		// resources belong to another surface
		s.releaseResources()
	}
	if s.state != Ready {
		if err := s.createResources(surf); err != nil {
			return err
		}
	}

	framer, framed := surf.(Framer)
	if framed {
		framer.BeginDraw()
	}
	clipper, clipped := surf.(Clipper)
	if clipped {
		clipper.PushClip(clip)
	}

	s.draw(surf, clip)

	if clipped {
		clipper.PopClip()
	}
	if framed {
		if err := framer.EndDraw(); err != nil {
			Logger().Warn("presenting frame failed", zap.Error(err))
			if IsSurfaceLost(err) {
				s.releaseResources()
			}
			return errors.Wrap(err, "paint: end draw")
		}
	}

	s.damage.Reset()
	return nil
}

// Release frees all drawing resources. The next Paint recreates them.
func (s *Scene) Release() {
	s.releaseResources()
}

// draw issues all primitives for clip. Resources must be Ready.
func (s *Scene) draw(surf Surface, clip r2.Rect) {
	surf.Clear(s.cfg.Scheme.Background)

	// sites first so arcs sit on top
	reach := s.cfg.SiteRadius + s.cfg.SiteWidth
	for _, site := range s.sites.Sites {
		if !clip.ExpandedByMargin(reach).ContainsPoint(site.Point) {
			continue
		}
		surf.DrawEllipse(site.Point, s.cfg.SiteRadius, s.cfg.SiteRadius, s.res.site, s.cfg.SiteWidth, s.res.solid)
	}

	if clip.Y.Expanded(s.cfg.SweepLineWidth).Contains(s.sweep) {
		surf.DrawLine(
			r2.Point{X: clip.X.Lo, Y: s.sweep},
			r2.Point{X: clip.X.Hi, Y: s.sweep},
			s.res.sweep, s.cfg.SweepLineWidth, s.res.dash,
		)
	}

	arcs := BeachLines(s.sites.Sites, s.sweep, SampleRange(clip, s.cfg.Step), s.cfg.Step)
	DrawBeachLines(surf, arcs, s.res.beach, s.cfg.BeachLineWidth, s.res.solid)
}

// createResources makes everything we need to draw on surf. On failure
// anything already made is released.
func (s *Scene) createResources(surf Surface) error {
	res := &resources{}
	fail := func(err error, what string) error {
		res.release()
		Logger().Warn("creating drawing resources failed", zap.String("resource", what), zap.Error(err))
		return errors.Wrapf(err, "creating %s", what)
	}

	var err error
	if res.site, err = surf.CreateSolidBrush(s.cfg.Scheme.Sites); err != nil {
		return fail(err, "site brush")
	}
	if res.sweep, err = surf.CreateSolidBrush(s.cfg.Scheme.Sweep); err != nil {
		return fail(err, "sweep line brush")
	}
	if res.beach, err = surf.CreateSolidBrush(s.cfg.Scheme.BeachLine); err != nil {
		return fail(err, "beach line brush")
	}
	if res.solid, err = surf.CreateStrokeStyle(nil); err != nil {
		return fail(err, "stroke style")
	}
	if res.dash, err = surf.CreateStrokeStyle(s.cfg.SweepDashes); err != nil {
		return fail(err, "sweep line stroke style")
	}

	s.res = res
	s.target = surf
	s.state = Ready
	Logger().Debug("drawing resources created")
	return nil
}

// releaseResources drops resources if we have any.
func (s *Scene) releaseResources() {
	if s.res == nil {
		return
	}
	s.res.release()
	s.res = nil
	s.target = nil
	s.state = NeedsResourceRebuild
	Logger().Debug("drawing resources released")
}

// generateSites scatters cfg.Sites over the current size.
func (s *Scene) generateSites() *SiteSet {
	bounds := s.Bounds()
	if s.width == 0 || s.height == 0 {
		bounds = r2.EmptyRect()
	}

	b := NewBuilder(bounds)
	if s.cfg.Seed != 0 {
		b.SetSeed(s.cfg.Seed)
	}
	if s.cfg.MinSiteDistance > 0 {
		b.SetSiteFilters(MinDistance(s.cfg.MinSiteDistance))
	}
	b.Generate(s.cfg.Sites, s.cfg.AttemptsPerSite)
	return b.SiteSet()
}

// snapshot is the JSON form of a Scene
type snapshot struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Sweep  float64  `json:"sweep"`
	Sites  *SiteSet `json:"site_set"`
	Arcs   []Arc    `json:"arcs,omitempty"`
}

// JSON returns the current sites, sweep line & arcs as json.
func (s *Scene) JSON() ([]byte, error) {
	return json.Marshal(&snapshot{
		Width:  s.width,
		Height: s.height,
		Sweep:  s.sweep,
		Sites:  s.sites,
		Arcs:   s.Arcs(),
	})
}

// SaveJSON writes a json file to the given path.
func (s *Scene) SaveJSON(fpath string) error {
	data, err := s.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, data, 0644)
}
