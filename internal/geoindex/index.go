// Package geoindex provides an R-Tree based spatial index over hospitals,
// used to prefilter proximity queries before exact great-circle checks.
package geoindex

import (
	"math"
	"sort"
	"sync"

	"github.com/dhconnelly/rtreego"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
	"github.com/lifeline-labs/organ-backend-go/internal/spatial"
)

const (
	tolerance   = 0.01
	minChildren = 25
	maxChildren = 50
	dimensions  = 2

	// Rough kilometers per degree of latitude, used to size bounding boxes.
	// The box only prefilters; the exact haversine check decides membership.
	kmPerDegree = 111.0
)

// hospitalEntry wraps a hospital to implement rtreego.Spatial
type hospitalEntry struct {
	hospital models.Hospital
	seq      int
	rect     *rtreego.Rect
}

func (e *hospitalEntry) Bounds() *rtreego.Rect {
	return e.rect
}

// HospitalIndex is a thread-safe R-Tree index of hospital locations
type HospitalIndex struct {
	mu   sync.RWMutex
	tree *rtreego.Rtree
	size int
}

// NewHospitalIndex creates an empty hospital index
func NewHospitalIndex() *HospitalIndex {
	return &HospitalIndex{
		tree: rtreego.NewTree(dimensions, minChildren, maxChildren),
	}
}

// Load replaces the index contents with the given hospitals. Insertion order
// is preserved so that equidistant results keep a stable ordering.
func (idx *HospitalIndex) Load(hospitals []models.Hospital) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.tree = rtreego.NewTree(dimensions, minChildren, maxChildren)
	idx.size = 0

	for i, h := range hospitals {
		p := rtreego.Point{h.Longitude, h.Latitude}
		rect, err := rtreego.NewRect(p, []float64{tolerance, tolerance})
		if err != nil {
			return err
		}
		idx.tree.Insert(&hospitalEntry{hospital: h, seq: i, rect: rect})
		idx.size++
	}

	return nil
}

// Size returns the number of indexed hospitals
func (idx *HospitalIndex) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.size
}

// Nearby returns hospitals within maxDistanceKm of the user location, with an
// exact distance per hit, sorted nearest-first. The R-Tree bounding box query
// over-fetches; every candidate is re-checked with the exact great-circle
// distance.
func (idx *HospitalIndex) Nearby(user models.Coordinate, maxDistanceKm float64) []models.HospitalDistance {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	latDelta := maxDistanceKm / kmPerDegree
	cosLat := math.Cos(user.Latitude * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	lonDelta := maxDistanceKm / (kmPerDegree * cosLat)

	latMin := math.Max(user.Latitude-latDelta, -90)
	latMax := math.Min(user.Latitude+latDelta, 90)

	var entries []*hospitalEntry
	distances := make(map[int]models.DistanceResult)
	seen := make(map[int]bool)

	for _, span := range lonSpans(user.Longitude, lonDelta) {
		rect, err := rtreego.NewRectFromPoints(
			rtreego.Point{span[0], latMin},
			rtreego.Point{span[1], latMax},
		)
		if err != nil {
			continue
		}

		for _, c := range idx.tree.SearchIntersect(rect) {
			entry := c.(*hospitalEntry)
			if seen[entry.seq] {
				continue
			}
			seen[entry.seq] = true

			d := spatial.CalculateDistance(user, entry.hospital.Coordinate())
			if d.DistanceKm <= maxDistanceKm {
				entries = append(entries, entry)
				distances[entry.seq] = d
			}
		}
	}

	// Restore insertion order, then stable-sort by distance so equidistant
	// hospitals keep their original relative order
	sortEntries(entries, distances)

	results := make([]models.HospitalDistance, 0, len(entries))
	for _, e := range entries {
		results = append(results, models.HospitalDistance{
			Hospital: e.hospital,
			Distance: distances[e.seq],
		})
	}
	return results
}

// lonSpans returns the longitude interval(s) covering center±delta. A query
// box crossing the antimeridian wraps into a second interval on the far side
// so hospitals across longitude ±180 are still candidates.
func lonSpans(center, delta float64) [][2]float64 {
	lo := center - delta
	hi := center + delta

	switch {
	case hi-lo >= 360:
		return [][2]float64{{-180, 180}}
	case lo < -180:
		return [][2]float64{{-180, hi}, {lo + 360, 180}}
	case hi > 180:
		return [][2]float64{{lo, 180}, {-180, hi - 360}}
	default:
		return [][2]float64{{lo, hi}}
	}
}

func sortEntries(entries []*hospitalEntry, distances map[int]models.DistanceResult) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
	sort.SliceStable(entries, func(i, j int) bool {
		return distances[entries[i].seq].DistanceKm < distances[entries[j].seq].DistanceKm
	})
}
