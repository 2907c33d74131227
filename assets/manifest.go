package assets

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"github.com/automoto/segview/placement"
	"github.com/automoto/segview/playback"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed all:manifests
	manifestFS embed.FS
)

const defaultManifestPath = "manifests/default.yaml"

// Manifest is the viewer configuration for one model: its clip, its
// bind-pose bounds, the segment table and the placement surfaces.
type Manifest struct {
	Version   string
	Clip      *playback.Clip
	Bounds    playback.Box
	Segments  playback.SegmentTable
	Placement PlacementSettings
}

type PlacementSettings struct {
	Enabled  bool
	Extent   float64
	Surfaces []placement.Surface
}

type manifestFile struct {
	Version   string         `yaml:"version"`
	Clip      *clipFile      `yaml:"clip"`
	Bounds    *boundsFile    `yaml:"bounds"`
	Segments  []segmentFile  `yaml:"segments"`
	Placement *placementFile `yaml:"placement"`
}

type clipFile struct {
	URL      string  `yaml:"url"`
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"`
}

type boundsFile struct {
	Min []float64 `yaml:"min"`
	Max []float64 `yaml:"max"`
}

type segmentFile struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Cam   struct {
		Position    []float64 `yaml:"position"`
		Target      []float64 `yaml:"target"`
		FOV         *float64  `yaml:"fov"`
		MoveSeconds *float64  `yaml:"moveSeconds"`
	} `yaml:"cam"`
}

type placementFile struct {
	Enabled  bool          `yaml:"enabled"`
	Extent   float64       `yaml:"extent"`
	Surfaces []surfaceFile `yaml:"surfaces"`
}

type surfaceFile struct {
	ID     string    `yaml:"id"`
	Min    []float64 `yaml:"min"`
	Max    []float64 `yaml:"max"`
	Height float64   `yaml:"height"`
}

// DefaultManifest returns the manifest bundled with the binary.
func DefaultManifest() (*Manifest, error) {
	data, err := manifestFS.ReadFile(defaultManifestPath)
	if err != nil {
		return nil, fmt.Errorf("read embedded manifest: %w", err)
	}
	return ParseManifest(data)
}

// LoadManifest reads a manifest from disk.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// ParseManifest decodes a YAML manifest. Only structural problems are errors;
// out-of-range times and durations are left for playback to clamp.
func ParseManifest(data []byte) (*Manifest, error) {
	var f manifestFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	m := &Manifest{Version: f.Version, Bounds: playback.EmptyBox()}

	if f.Clip != nil {
		m.Clip = &playback.Clip{Name: f.Clip.Name, URL: f.Clip.URL, Duration: f.Clip.Duration}
	}

	if f.Bounds != nil {
		lo, err := vec3(f.Bounds.Min)
		if err != nil {
			return nil, fmt.Errorf("bounds.min: %w", err)
		}
		hi, err := vec3(f.Bounds.Max)
		if err != nil {
			return nil, fmt.Errorf("bounds.max: %w", err)
		}
		m.Bounds = m.Bounds.Extend(lo).Extend(hi)
	}

	segments := make([]playback.AnimationSegment, 0, len(f.Segments))
	for i, s := range f.Segments {
		pos, err := vec3(s.Cam.Position)
		if err != nil {
			return nil, fmt.Errorf("segments[%d].cam.position: %w", i, err)
		}
		target, err := vec3(s.Cam.Target)
		if err != nil {
			return nil, fmt.Errorf("segments[%d].cam.target: %w", i, err)
		}
		segments = append(segments, playback.AnimationSegment{
			Start: s.Start,
			End:   s.End,
			Cam: playback.CameraSpec{
				Position:    pos,
				Target:      target,
				FOV:         s.Cam.FOV,
				MoveSeconds: s.Cam.MoveSeconds,
			},
		})
	}
	m.Segments = playback.NewSegmentTable(segments)

	if f.Placement != nil {
		m.Placement.Enabled = f.Placement.Enabled
		m.Placement.Extent = f.Placement.Extent
		for i, s := range f.Placement.Surfaces {
			lo, err := vec2(s.Min)
			if err != nil {
				return nil, fmt.Errorf("placement.surfaces[%d].min: %w", i, err)
			}
			hi, err := vec2(s.Max)
			if err != nil {
				return nil, fmt.Errorf("placement.surfaces[%d].max: %w", i, err)
			}
			m.Placement.Surfaces = append(m.Placement.Surfaces, placement.Surface{
				ID:     s.ID,
				Min:    lo,
				Max:    hi,
				Height: s.Height,
			})
		}
	}

	return m, nil
}

var errVectorLength = errors.New("wrong number of components")

func vec3(v []float64) (mgl64.Vec3, error) {
	if v == nil {
		return mgl64.Vec3{}, nil
	}
	if len(v) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("%w: want 3, got %d", errVectorLength, len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

func vec2(v []float64) (mgl64.Vec2, error) {
	if len(v) != 2 {
		return mgl64.Vec2{}, fmt.Errorf("%w: want 2, got %d", errVectorLength, len(v))
	}
	return mgl64.Vec2{v[0], v[1]}, nil
}
