package driftspace

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// PolygonBatcher accumulates screen-space triangles and flushes them in a
// single DrawTriangles call. Accumulation is pure, so painting code can be
// exercised in tests without a display.
type PolygonBatcher struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewPolygonBatcher() *PolygonBatcher {
	return &PolygonBatcher{
		vertices: make([]ebiten.Vertex, 0, 4096),
		indices:  make([]uint16, 0, 8192),
	}
}

func (b *PolygonBatcher) Reset() {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

func (b *PolygonBatcher) TriangleCount() int {
	return len(b.indices) / 3
}

// AddPolygon fan-triangulates a convex polygon given in screen coordinates.
func (b *PolygonBatcher) AddPolygon(xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0

	baseIndex := uint16(len(b.vertices))
	for i := range xp {
		b.vertices = append(b.vertices, ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	for i := 2; i < len(xp); i++ {
		b.indices = append(b.indices, baseIndex, baseIndex+uint16(i-1), baseIndex+uint16(i))
	}
}

// AddPoint adds a small screen-aligned quad, used for starfield points.
func (b *PolygonBatcher) AddPoint(x, y, size float32, clr color.RGBA) {
	half := size / 2
	xp := []float32{x - half, x + half, x + half, x - half}
	yp := []float32{y - half, y - half, y + half, y + half}
	b.AddPolygon(xp, yp, clr)
}

func (b *PolygonBatcher) Flush(dst *ebiten.Image) {
	if len(b.indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(b.vertices, b.indices, whiteSub, op)
	b.Reset()
}
