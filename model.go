package driftspace

import "log"

// Model is a solid renderable built from faces. Geometry and the BSP tree
// are shared between clones; transform buffers and the rotation state are
// per instance, which is what makes cheap instancing possible.
type Model struct {
	faceMesh        *FaceMesh
	normalMesh      *NormalMesh
	transFaceMesh   *FaceMesh
	transNormalMesh *NormalMesh
	theFaces        *FaceStore
	builtFaces      int
	root            *BspNode
	rotMatrix       *Matrix
	xLength         float64
	yLength         float64
	zLength         float64
}

func NewModel() *Model {
	return &Model{
		transFaceMesh:   NewFaceMesh(),
		transNormalMesh: NewNormalMesh(),
		theFaces:        NewFaceStore(),
		rotMatrix:       IdentMatrix(),
	}
}

func (o *Model) AddFace(f *Face) {
	o.theFaces.AddFace(f)
}

// Finished builds the BSP tree and freezes the geometry. Must be called once
// after the last AddFace.
func (o *Model) Finished(centerObject bool) {
	o.builtFaces = o.theFaces.FaceCount()
	if o.theFaces.FaceCount() > 0 {
		o.root = o.createBspTree(o.theFaces, o.transFaceMesh, o.transNormalMesh)
	}

	o.faceMesh = o.transFaceMesh.Copy()
	o.normalMesh = o.transNormalMesh.Copy()

	if centerObject {
		o.CentreObject()
	}
	o.calcSize()
}

func (o *Model) Clone() *Model {
	return &Model{
		// shared geometry
		faceMesh:   o.faceMesh,
		normalMesh: o.normalMesh,
		theFaces:   o.theFaces,
		builtFaces: o.builtFaces,
		root:       o.root,

		// instance state
		transFaceMesh:   o.transFaceMesh.Copy(),
		transNormalMesh: o.transNormalMesh.Copy(),
		rotMatrix:       IdentMatrix(),
		xLength:         o.xLength,
		yLength:         o.yLength,
		zLength:         o.zLength,
	}
}

func (o *Model) Paint(batcher *PolygonBatcher, x, y int, shade bool, lightLevel float64) {
	if o.root != nil {
		o.root.Paint(batcher, x, y, o.transFaceMesh.Points, o.transNormalMesh.Points, shade, lightLevel)
	}
}

// CentreObject translates all points so the bounding-box center sits at the
// origin.
func (o *Model) CentreObject() {
	if o.faceMesh == nil || len(o.faceMesh.Points.ThisMatrix) == 0 {
		return
	}

	minX, maxX, minY, maxY, minZ, maxZ := o.bounds()
	centerX := (minX + maxX) / 2.0
	centerY := (minY + maxY) / 2.0
	centerZ := (minZ + maxZ) / 2.0

	for i := range o.faceMesh.Points.ThisMatrix {
		o.faceMesh.Points.ThisMatrix[i][0] -= centerX
		o.faceMesh.Points.ThisMatrix[i][1] -= centerY
		o.faceMesh.Points.ThisMatrix[i][2] -= centerZ
	}
}

func (o *Model) bounds() (minX, maxX, minY, maxY, minZ, maxZ float64) {
	pts := o.faceMesh.Points.ThisMatrix
	minX, maxX = pts[0][0], pts[0][0]
	minY, maxY = pts[0][1], pts[0][1]
	minZ, maxZ = pts[0][2], pts[0][2]
	for _, point := range pts {
		if point[0] < minX {
			minX = point[0]
		} else if point[0] > maxX {
			maxX = point[0]
		}
		if point[1] < minY {
			minY = point[1]
		} else if point[1] > maxY {
			maxY = point[1]
		}
		if point[2] < minZ {
			minZ = point[2]
		} else if point[2] > maxZ {
			maxZ = point[2]
		}
	}
	return
}

func (o *Model) calcSize() {
	if o.faceMesh == nil || len(o.faceMesh.Points.ThisMatrix) == 0 {
		o.xLength, o.yLength, o.zLength = 0, 0, 0
		return
	}
	minX, maxX, minY, maxY, minZ, maxZ := o.bounds()
	o.xLength = maxX - minX
	o.yLength = maxY - minY
	o.zLength = maxZ - minZ
}

func (o *Model) XLength() float64 { return o.xLength }
func (o *Model) YLength() float64 { return o.yLength }
func (o *Model) ZLength() float64 { return o.zLength }

// ApplyMatrix accumulates a permanent rotation on the model.
func (o *Model) ApplyMatrix(m *Matrix) {
	o.rotMatrix = m.MultiplyBy(o.rotMatrix)
}

// ApplyMatrixTemp fills the camera-space buffers for this frame without
// touching the stored geometry.
func (o *Model) ApplyMatrixTemp(aMatrix *Matrix) {
	rotMatrixTemp := aMatrix.MultiplyBy(o.rotMatrix)
	rotMatrixTemp.TransformNormals(o.normalMesh.Points, o.transNormalMesh.Points)
	rotMatrixTemp.TransformObj(o.faceMesh.Points, o.transFaceMesh.Points)
}

func (o *Model) RotateY(rads float64) {
	o.rotMatrix = NewRotationMatrix(ROTY, rads).MultiplyBy(o.rotMatrix)
}

func (o *Model) RotateX(rads float64) {
	o.rotMatrix = NewRotationMatrix(ROTX, rads).MultiplyBy(o.rotMatrix)
}

func (o *Model) ScaleAllPoints(scale float64) {
	if o.faceMesh == nil {
		return
	}
	for i := range o.faceMesh.Points.ThisMatrix {
		o.faceMesh.Points.ThisMatrix[i][0] *= scale
		o.faceMesh.Points.ThisMatrix[i][1] *= scale
		o.faceMesh.Points.ThisMatrix[i][2] *= scale
	}
	o.calcSize()
}

func (o *Model) createBspTree(faces *FaceStore, newFaces *FaceMesh, newNormMesh *NormalMesh) *BspNode {
	if faces.FaceCount() == 0 {
		return nil
	}

	parentFace := o.choosePlane(faces)
	originalNormal, normalIndex := newNormMesh.AddNormal(parentFace.GetNormal())
	parentFace.SetNormal(NewVector3(originalNormal[0], originalNormal[1], originalNormal[2]))
	newFace, parentIndices := newFaces.AddFace(parentFace)
	parent := NewBspNode(newFace.GetNormal(), newFace.Col, parentIndices, normalIndex)
	pPlane := NewPlane(newFace, newFace.GetNormal())

	fvLeft := NewFaceStore()
	fvRight := NewFaceStore()

	for a := 0; a < faces.FaceCount(); a++ {
		currentFace := faces.GetFace(a)
		if pPlane.FaceIntersect(currentFace) {
			for _, facePart := range pPlane.SplitFace(currentFace) {
				if facePart == nil || len(facePart.Points) == 0 {
					continue
				}
				part := NewFace(facePart.Points, currentFace.Col, currentFace.GetNormal())
				if pPlane.Where(facePart) <= 0 {
					fvLeft.AddFace(part)
				} else {
					fvRight.AddFace(part)
				}
			}
		} else {
			if pPlane.Where(currentFace) <= 0 {
				fvLeft.AddFace(currentFace)
			} else {
				fvRight.AddFace(currentFace)
			}
		}
	}

	if fvLeft.FaceCount() > 0 {
		parent.Left = o.createBspTree(fvLeft, newFaces, newNormMesh)
	}
	if fvRight.FaceCount() > 0 {
		parent.Right = o.createBspTree(fvRight, newFaces, newNormMesh)
	}

	return parent
}

// choosePlane picks the face whose plane splits the fewest other faces, and
// removes it from the store.
func (o *Model) choosePlane(fs *FaceStore) *Face {
	leastFace, leastFaceTotal := 0, fs.FaceCount()

	for chosen := 0; chosen < fs.FaceCount(); chosen++ {
		total := 0
		p := fs.GetFace(chosen).GetPlane()
		for i := 0; i < fs.FaceCount(); i++ {
			if i == chosen {
				continue
			}
			if p.FaceIntersect(fs.GetFace(i)) {
				total++
			}
		}
		if total < leastFaceTotal {
			leastFaceTotal = total
			leastFace = chosen
			if total == 0 {
				break
			}
		}
	}
	return fs.RemoveFaceAt(leastFace)
}

// FaceCount reports how many faces the model was built from.
func (o *Model) FaceCount() int {
	if o.faceMesh == nil {
		log.Println("FaceCount called before Finished")
		return 0
	}
	return o.builtFaces
}
