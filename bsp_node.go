package driftspace

import (
	"image/color"
	"math"
)

// BspNode is one face of a model's BSP tree. Traversal order gives correct
// back-to-front painting without a depth buffer.
type BspNode struct {
	normal           *Vector3
	Left             *BspNode
	Right            *BspNode
	colRed           uint8
	colGreen         uint8
	colBlue          uint8
	facePointIndices []int
	normalIndex      int
	pointsToUse      [][]float64 // scratch buffer reused between frames
}

const nearPlaneZ = 25.0
const conversionFactor = 700.0

func NewBspNode(faceNormal *Vector3, faceColor color.RGBA, pointIndices []int, normalIdx int) *BspNode {
	return &BspNode{
		normal:           faceNormal,
		colRed:           faceColor.R,
		colGreen:         faceColor.G,
		colBlue:          faceColor.B,
		facePointIndices: pointIndices,
		normalIndex:      normalIdx,
		pointsToUse:      make([][]float64, 0, len(pointIndices)*2),
	}
}

// Paint walks the tree in visibility order, appending each visible face to
// the batcher. transPoints and transNormals are the camera-space buffers of
// the owning model; lightLevel scales the shading result.
func (b *BspNode) Paint(batcher *PolygonBatcher, x, y int, transPoints, transNormals *Matrix, shade bool, lightLevel float64) {
	if len(b.facePointIndices) == 0 {
		return
	}

	transformedNormal := transNormals.ThisMatrix[b.normalIndex]
	firstTransformedPoint := transPoints.ThisMatrix[b.facePointIndices[0]]

	where := transformedNormal[0]*firstTransformedPoint[0] +
		transformedNormal[1]*firstTransformedPoint[1] +
		transformedNormal[2]*firstTransformedPoint[2]

	if where <= 0 {
		if b.Left != nil {
			b.Left.Paint(batcher, x, y, transPoints, transNormals, shade, lightLevel)
		}
		if b.Right != nil {
			b.Right.Paint(batcher, x, y, transPoints, transNormals, shade, lightLevel)
		}
		return
	}

	if b.Right != nil {
		b.Right.Paint(batcher, x, y, transPoints, transNormals, shade, lightLevel)
	}

	// The face itself may be fully clipped by the near plane; the left
	// subtree is painted either way.
	b.paintPoly(batcher, x, y, transPoints, shade, transformedNormal, lightLevel)

	if b.Left != nil {
		b.Left.Paint(batcher, x, y, transPoints, transNormals, shade, lightLevel)
	}
}

func (b *BspNode) cameraSpaceFace(verticesInCameraSpace *Matrix) *Face {
	f := NewFaceEmpty(color.RGBA{R: b.colRed, G: b.colGreen, B: b.colBlue, A: 255}, b.normal)
	for _, pointIndex := range b.facePointIndices {
		pnt := verticesInCameraSpace.ThisMatrix[pointIndex]
		f.AddPoint(pnt[0], pnt[1], pnt[2])
	}
	f.Finished(FACE_NORMAL)
	return f
}

// faceInFrontOfNearPlane splits the camera-space face at the near plane and
// returns the part in front of it, or nil.
func (b *BspNode) faceInFrontOfNearPlane(face *Face) [][]float64 {
	plane := NewPlaneFromPoint(NewPoint3d(0, 0, nearPlaneZ), NewVector3(0, 0, 1))

	for _, f := range plane.SplitFace(face) {
		if f == nil {
			continue
		}
		for _, point := range f.Points {
			if point[2] > nearPlaneZ+0.2 {
				return f.Points
			}
		}
	}
	return nil
}

func getMidpoint(points [][]float64) []float64 {
	if len(points) == 0 {
		return nil
	}

	midpoint := make([]float64, 3)
	for _, point := range points {
		midpoint[0] += point[0]
		midpoint[1] += point[1]
		midpoint[2] += point[2]
	}
	midpoint[0] /= float64(len(points))
	midpoint[1] /= float64(len(points))
	midpoint[2] /= float64(len(points))
	return midpoint
}

// paintPoly projects the face and appends it to the batcher. Returns true
// when every vertex is behind the near plane.
func (b *BspNode) paintPoly(batcher *PolygonBatcher, x, y int, verticesInCameraSpace *Matrix, shade bool, transformedNormal []float64, lightLevel float64) bool {
	pointsToUse := b.pointsToUse[:0]

	numPointsBehind := 0
	for _, pointIndex := range b.facePointIndices {
		pnt := verticesInCameraSpace.ThisMatrix[pointIndex]
		if pnt[2] < nearPlaneZ {
			numPointsBehind++
		}
		pointsToUse = append(pointsToUse, pnt)
	}

	if numPointsBehind == len(b.facePointIndices) {
		return true
	}
	if numPointsBehind > 0 {
		pointsToUse = b.faceInFrontOfNearPlane(b.cameraSpaceFace(verticesInCameraSpace))
		if len(pointsToUse) == 0 {
			return true
		}
	}

	screenPointsX := make([]float32, len(pointsToUse))
	screenPointsY := make([]float32, len(pointsToUse))
	for i, pnt := range pointsToUse {
		screenPointsX[i] = float32((conversionFactor*pnt[0])/pnt[2]) + float32(x)
		screenPointsY[i] = float32((conversionFactor*pnt[1])/pnt[2]) + float32(y)
	}

	polyColor := color.RGBA{R: b.colRed, G: b.colGreen, B: b.colBlue, A: 255}
	if shade {
		polyColor = b.calcColor(getMidpoint(pointsToUse), transformedNormal, lightLevel)
	}

	batcher.AddPolygon(screenPointsX, screenPointsY, polyColor)
	return false
}

// calcColor shades the face with an ambient term plus a camera-aligned
// spotlight, scaled by the world light level.
func (b *BspNode) calcColor(midPoint, transformedNormal []float64, lightLevel float64) color.RGBA {
	const ambientLight = 0.65
	const spotlightConePower = 10.0
	const spotlightLightAmount = 1.0 - ambientLight

	diffuseFactor := transformedNormal[2]
	if diffuseFactor < 0 {
		diffuseFactor = 0
	}

	var spotlightFactor float64
	lenVecToPoint := GetLength(midPoint)
	if lenVecToPoint > 0 {
		cosAngle := midPoint[2] / lenVecToPoint
		if cosAngle < 0 {
			cosAngle = 0
		}
		spotlightFactor = math.Pow(cosAngle, spotlightConePower)
	} else {
		spotlightFactor = 1.0
	}

	finalBrightness := ambientLight + diffuseFactor*spotlightFactor*spotlightLightAmount
	finalBrightness *= clampF(lightLevel, 0, 2)

	c := 240 - int(finalBrightness*240)

	const minChannel = 7
	r1 := clamp(int(b.colRed)-c, minChannel, 255)
	g1 := clamp(int(b.colGreen)-c, minChannel, 255)
	b1 := clamp(int(b.colBlue)-c, minChannel, 255)
	return color.RGBA{R: uint8(r1), G: uint8(g1), B: uint8(b1), A: 255}
}
