package voronoi

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/golang/geo/r2"
	"github.com/google/uuid"
)

// Site is a point whose beach line arc we sketch.
type Site struct {
	ID int `json:"id"`
	r2.Point
}

// SiteSet is a complete set of sites generated for a given surface area.
// Sets are never updated in place, a resize generates a new one.
type SiteSet struct {
	ID     string  `json:"id"`
	Bounds r2.Rect `json:"-"`
	Sites  []Site  `json:"sites"`
}

// Len returns the number of sites
func (s *SiteSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Sites)
}

// CandidateFilter accepts or rejects a candidate point (x, y) based
// purely on the given (x, y).
// These filters are run before SiteFilter(s) which naturally require
// us to iterate each site.
type CandidateFilter func(x, y float64) bool

// SiteFilter is a filter for a candidate (x, y) point that is run
// against every current Site in the builder.
// Ie. we must 'accept' the candidate point when compared with every
// existing Site that we've previously accepted.
type SiteFilter func(ax, ay float64, s Site) bool

// MinDistance ensures that a candidate (x, y) point is at least `dist`
// distance away from every other site.
func MinDistance(dist float64) SiteFilter {
	return func(ax, ay float64, s Site) bool {
		return s.Sub(r2.Point{X: ax, Y: ay}).Norm() >= dist
	}
}

// Within rejects candidates outside of the given rect.
func Within(r r2.Rect) CandidateFilter {
	return func(x, y float64) bool {
		return r.ContainsPoint(r2.Point{X: x, Y: y})
	}
}

// Builder makes managing the placement of sites easier.
type Builder struct {
	bounds r2.Rect
	sites  []Site
	rng    *rand.Rand
	sfilt  []SiteFilter
	cfilt  []CandidateFilter
}

// NewBuilder returns a new site builder placing sites within bounds.
func NewBuilder(bounds r2.Rect) *Builder {
	return &Builder{
		bounds: bounds,
		sites:  []Site{},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed sets our internal RNG seed
func (b *Builder) SetSeed(seed int64) {
	b.rng = rand.New(rand.NewSource(seed))
}

// SetCandidateFilters sets filters that accept / reject a proposed site without
// reference to other currently set site(s).
func (b *Builder) SetCandidateFilters(f ...CandidateFilter) {
	b.cfilt = f
}

// SetSiteFilters sets filters that compare proposed sites to all current sites.
func (b *Builder) SetSiteFilters(f ...SiteFilter) {
	b.sfilt = f
}

// SiteCount returns how many sites we've currently got
func (b *Builder) SiteCount() int {
	return len(b.sites)
}

// AddRandomSite places a site at random, assuming it obeys all currently set filters.
func (b *Builder) AddRandomSite() (Site, bool) {
	if b.bounds.IsEmpty() {
		return Site{}, false
	}
	x := b.bounds.X.Lo + b.rng.Float64()*b.bounds.X.Length()
	y := b.bounds.Y.Lo + b.rng.Float64()*b.bounds.Y.Length()
	return b.AddSite(x, y)
}

// AddSite places a site at the given location, assuming it obeys currently set filters.
func (b *Builder) AddSite(x, y float64) (Site, bool) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return Site{}, false
	}
	if !b.accepted(x, y) {
		return Site{}, false
	}
	s := Site{ID: len(b.sites), Point: r2.Point{X: x, Y: y}}
	b.sites = append(b.sites, s)
	return s, true
}

// Generate adds up to n random sites, making at most attempts tries per
// site. Returns how many were actually added.
func (b *Builder) Generate(n, attempts int) int {
	if attempts < 1 {
		attempts = 1
	}
	added := 0
	for i := 0; i < n*attempts && added < n; i++ {
		if _, ok := b.AddRandomSite(); ok {
			added++
		}
	}
	return added
}

// SiteSet returns all sites placed so far, sorted by Y.
func (b *Builder) SiteSet() *SiteSet {
	sites := make([]Site, len(b.sites))
	copy(sites, b.sites)
	sort.SliceStable(sites, func(i, j int) bool {
		return sites[i].Y < sites[j].Y
	})
	return &SiteSet{
		ID:     uuid.NewString(),
		Bounds: b.bounds,
		Sites:  sites,
	}
}

// accepted returns if the proposed site location (x, y) is acceptable to our filters.
// We run CandidateFilter(s) first so we can hopefully reject candidates early.
func (b *Builder) accepted(x, y float64) bool {
	for _, fn := range b.cfilt {
		if !fn(x, y) {
			return false
		}
	}
	for _, s := range b.sites {
		for _, fn := range b.sfilt {
			if !fn(x, y, s) {
				return false
			}
		}
	}
	return true
}
