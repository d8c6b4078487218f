package render

import (
	"strings"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimtrace/game"
	"github.com/oomph-ac/aimtrace/oerror"
	"github.com/oomph-ac/aimtrace/trajectory"
)

const (
	// impactHalfSize is half the side length of the square drawn on a struck block face.
	impactHalfSize = 0.25
	// impactOffset is how far the impact square is lifted off the struck face.
	impactOffset = 0.01
	// particleSize is the size of the point markers drawn by StyleParticles.
	particleSize = 0.15
)

// Target is a drawing handle for a single frame. All coordinates passed are relative to the camera.
type Target interface {
	// Line draws a line segment between two points.
	Line(from, to mgl32.Vec3, colour mgl32.Vec4)
	// Point draws a point marker.
	Point(at mgl32.Vec3, size float32, colour mgl32.Vec4)
}

// Camera is the viewpoint a frame is rendered from.
type Camera struct {
	Position mgl64.Vec3
}

// Style is the way the samples of a path are drawn.
type Style uint8

const (
	// StyleLine draws a polyline through every sample.
	StyleLine Style = iota
	// StyleParticles draws a point marker at every few samples.
	StyleParticles
	// StylePreview draws a polyline through the first samples only.
	StylePreview
)

func (s Style) String() string {
	switch s {
	case StyleParticles:
		return "particles"
	case StylePreview:
		return "preview"
	default:
		return "line"
	}
}

// ParseStyle parses the name of a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "line":
		return StyleLine, nil
	case "particles", "particle":
		return StyleParticles, nil
	case "preview":
		return StylePreview, nil
	}
	return StyleLine, oerror.New("unknown render style %q", s)
}

// Renderer draws predicted paths and their impact markers to a Target.
type Renderer struct {
	Style Style

	PathColour   mgl32.Vec4
	ImpactColour mgl32.Vec4

	// ParticleInterval is the amount of samples between two point markers of StyleParticles.
	ParticleInterval int
	// PreviewPoints is the amount of samples drawn by StylePreview.
	PreviewPoints int
}

// DefaultRenderer returns a Renderer drawing a near-white line with a red impact marker.
func DefaultRenderer() Renderer {
	return Renderer{
		Style:            StyleLine,
		PathColour:       mgl32.Vec4{1, 1, 1, 0.8},
		ImpactColour:     mgl32.Vec4{1, 0, 0, 1},
		ParticleInterval: 4,
		PreviewPoints:    200,
	}
}

// Render draws the path passed relative to the camera. The path is never modified.
func (r Renderer) Render(path trajectory.Path, cam Camera, t Target) {
	if t == nil || path.Empty() {
		return
	}
	origin := cam.Position

	switch r.Style {
	case StyleParticles:
		interval := max(r.ParticleInterval, 1)
		last := len(path.Points) - 1
		for i, p := range path.Points {
			if i%interval == 0 || i == last {
				t.Point(game.RelativeVec(p, origin), particleSize, r.PathColour)
			}
		}
	case StylePreview:
		n := len(path.Points)
		if r.PreviewPoints > 0 {
			n = min(n, r.PreviewPoints)
		}
		r.polyline(path.Points[:n], origin, t)
	default:
		r.polyline(path.Points, origin, t)
	}

	switch c := path.Collision.(type) {
	case trajectory.BlockCollision:
		r.blockImpact(c, origin, t)
	case trajectory.EntityCollision:
		r.entityImpact(c, origin, t)
	}
}

func (r Renderer) polyline(points []mgl64.Vec3, origin mgl64.Vec3, t Target) {
	for i := 1; i < len(points); i++ {
		t.Line(game.RelativeVec(points[i-1], origin), game.RelativeVec(points[i], origin), r.PathColour)
	}
}

// blockImpact draws a square on the struck face, lifted slightly along the face normal.
func (r Renderer) blockImpact(c trajectory.BlockCollision, origin mgl64.Vec3, t Target) {
	centre := game.RelativeVec(c.Pos, origin)
	corners := impactSquare(centre, c.Face)
	for i := range corners {
		t.Line(corners[i], corners[(i+1)%len(corners)], r.ImpactColour)
	}
}

// impactSquare returns the corners of the impact square on the face passed, in drawing order.
func impactSquare(centre mgl32.Vec3, face cube.Face) [4]mgl32.Vec3 {
	const h = impactHalfSize
	x, y, z := centre.X(), centre.Y(), centre.Z()

	switch face {
	case cube.FaceUp, cube.FaceDown:
		if face == cube.FaceUp {
			y += impactOffset
		} else {
			y -= impactOffset
		}
		return [4]mgl32.Vec3{{x - h, y, z - h}, {x + h, y, z - h}, {x + h, y, z + h}, {x - h, y, z + h}}
	case cube.FaceNorth, cube.FaceSouth:
		if face == cube.FaceSouth {
			z += impactOffset
		} else {
			z -= impactOffset
		}
		return [4]mgl32.Vec3{{x - h, y - h, z}, {x + h, y - h, z}, {x + h, y + h, z}, {x - h, y + h, z}}
	default:
		if face == cube.FaceEast {
			x += impactOffset
		} else {
			x -= impactOffset
		}
		return [4]mgl32.Vec3{{x, y - h, z - h}, {x, y + h, z - h}, {x, y + h, z + h}, {x, y - h, z + h}}
	}
}

// entityImpact draws the wireframe of the current bounding box of the struck entity.
func (r Renderer) entityImpact(c trajectory.EntityCollision, origin mgl64.Vec3, t Target) {
	if c.Entity == nil {
		return
	}
	for _, edge := range game.BoxEdges(game.RelativeBox(c.Entity.BBox(), origin)) {
		t.Line(edge[0], edge[1], r.ImpactColour)
	}
}
