package placement

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

const (
	tagSurface = "surface"
	tagProbe   = "probe"

	// resolv works on a positive integer grid; surfaces are stored in centimetres.
	unitsPerMeter = 100.0
	cellSize      = 25
)

// Surface is a tracked horizontal plane, bounded in X and Z.
type Surface struct {
	ID     string
	Min    mgl64.Vec2 // x, z
	Max    mgl64.Vec2 // x, z
	Height float64
}

func (s Surface) Contains(x, z float64) bool {
	return x >= s.Min[0] && x <= s.Max[0] && z >= s.Min[1] && z <= s.Max[1]
}

// SurfaceMap indexes tracked surfaces in a spatial hash covering a square of
// extent metres centred on the world origin.
type SurfaceMap struct {
	space    *resolv.Space
	half     float64
	probe    *resolv.Object
	surfaces []*Surface
	heights  []float64
}

func NewSurfaceMap(extent float64) *SurfaceMap {
	if extent <= 0 || math.IsNaN(extent) {
		extent = 20
	}
	size := int(math.Ceil(extent * unitsPerMeter))
	m := &SurfaceMap{
		space: resolv.NewSpace(size, size, cellSize, cellSize),
		half:  extent / 2,
	}
	m.probe = resolv.NewObject(0, 0, 1, 1, tagProbe)
	m.space.Add(m.probe)
	return m
}

// Add registers a surface. Bounds given in the wrong order are swapped.
func (m *SurfaceMap) Add(s Surface) {
	for i := 0; i < 2; i++ {
		if s.Min[i] > s.Max[i] {
			s.Min[i], s.Max[i] = s.Max[i], s.Min[i]
		}
	}

	stored := s
	x, y := m.toSpace(s.Min[0], s.Min[1])
	w := (s.Max[0] - s.Min[0]) * unitsPerMeter
	h := (s.Max[1] - s.Min[1]) * unitsPerMeter
	obj := resolv.NewObject(x, y, math.Max(w, 1), math.Max(h, 1), tagSurface)
	obj.Data = &stored
	m.space.Add(obj)

	m.surfaces = append(m.surfaces, &stored)
	m.addHeight(s.Height)
}

func (m *SurfaceMap) addHeight(h float64) {
	for _, existing := range m.heights {
		if existing == h {
			return
		}
	}
	m.heights = append(m.heights, h)
	sort.Float64s(m.heights)
}

func (m *SurfaceMap) Len() int {
	return len(m.surfaces)
}

func (m *SurfaceMap) Surfaces() []Surface {
	out := make([]Surface, 0, len(m.surfaces))
	for _, s := range m.surfaces {
		out = append(out, *s)
	}
	return out
}

// Heights lists the distinct surface heights in ascending order.
func (m *SurfaceMap) Heights() []float64 {
	out := make([]float64, len(m.heights))
	copy(out, m.heights)
	return out
}

// SurfaceAt finds a surface at the given height that covers (x, z).
func (m *SurfaceMap) SurfaceAt(x, z, height float64) (Surface, bool) {
	if math.Abs(x) > m.half || math.Abs(z) > m.half {
		return Surface{}, false
	}

	m.probe.X, m.probe.Y = m.toSpace(x, z)
	m.probe.Update()

	check := m.probe.Check(0, 0, tagSurface)
	if check == nil {
		return Surface{}, false
	}
	for _, obj := range check.Objects {
		s, ok := obj.Data.(*Surface)
		if !ok || s.Height != height {
			continue
		}
		if s.Contains(x, z) {
			return *s, true
		}
	}
	return Surface{}, false
}

func (m *SurfaceMap) toSpace(x, z float64) (float64, float64) {
	return (x + m.half) * unitsPerMeter, (z + m.half) * unitsPerMeter
}
