package driftspace

import (
	"image/color"
	"math"
	"math/rand"
	"sort"
)

// worldObject ties a renderable model to its world position and spin.
type worldObject struct {
	model      *Model
	pos        *Vector3
	spinRate   float64
	tumbleRate float64     // additional x-axis spin, rocks only
	light      *PulseLight // nil for unlit objects
}

// World owns everything in the scene: models, the starfield, anomaly zone
// positions and their pulsing lights. Content is fixed at construction;
// Update only advances rotation and light levels.
type World struct {
	objects   []*worldObject
	starfield *Starfield
	anomalies []*Vector3
	lights    []*PulseLight
}

// NewWorld builds the whole scene from a seeded source of randomness, so the
// same seed reproduces the same layout.
func NewWorld(seed int64) *World {
	rng := rand.New(rand.NewSource(seed))
	w := &World{}

	w.starfield = NewStarfield(rng, starCount, starRadius, starSpinRate)
	w.buildIslands(rng)
	w.buildAnomalies(rng)
	w.buildTeleporters(rng)

	return w
}

func (w *World) buildIslands(rng *rand.Rand) {
	topCol := color.RGBA{70, 160, 90, 255}
	rockCol := color.RGBA{120, 105, 95, 255}

	rockProto := NewRockModel(rng, 6, rockCol)

	for i := 0; i < islandCount; i++ {
		pos := NewVector3(
			(rng.Float64()*2-1)*400,
			(rng.Float64()*2-1)*120,
			120+rng.Float64()*500,
		)
		island := NewIslandModel(rng, 45+rng.Float64()*35, 30, topCol, rockCol)
		w.objects = append(w.objects, &worldObject{model: island, pos: pos})

		// rocks orbiting the island share one mesh and BSP tree
		for r := 0; r < rocksPerIsland; r++ {
			a := rng.Float64() * 2 * math.Pi
			dist := 70 + rng.Float64()*40
			rockPos := NewVector3(
				pos.X+dist*math.Cos(a),
				pos.Y+(rng.Float64()*2-1)*25,
				pos.Z+dist*math.Sin(a),
			)
			rock := rockProto.Clone()
			rock.ApplyMatrix(NewRotationMatrix(ROTY, rng.Float64()*2*math.Pi))
			w.objects = append(w.objects, &worldObject{
				model:      rock,
				pos:        rockPos,
				spinRate:   meshSpinRate * (0.5 + rng.Float64()),
				tumbleRate: meshSpinRate * rng.Float64() * 0.6,
			})
		}
	}
}

func (w *World) buildAnomalies(rng *rand.Rand) {
	zoneA := color.RGBA{150, 60, 200, 255}
	zoneB := color.RGBA{220, 120, 255, 255}

	for i := 0; i < anomalyCount; i++ {
		pos := NewVector3(
			(rng.Float64()*2-1)*350,
			(rng.Float64()*2-1)*100,
			180+rng.Float64()*450,
		)
		zone := NewUVSphere(14, 10, 6, zoneA, zoneB, 1)
		light := NewPulseLight(lightBase, lightGain)

		w.objects = append(w.objects, &worldObject{
			model:    zone,
			pos:      pos,
			spinRate: meshSpinRate,
			light:    light,
		})
		w.anomalies = append(w.anomalies, pos.Copy())
		w.lights = append(w.lights, light)
	}
}

func (w *World) buildTeleporters(rng *rand.Rand) {
	ringCol := color.RGBA{80, 200, 230, 255}

	for i := 0; i < teleporterPair*2; i++ {
		pos := NewVector3(
			(rng.Float64()*2-1)*300,
			(rng.Float64()*2-1)*80,
			150+rng.Float64()*400,
		)
		ring := NewTeleporterModel(22, 5, ringCol)
		w.objects = append(w.objects, &worldObject{
			model:    ring,
			pos:      pos,
			spinRate: meshSpinRate * 2,
		})
	}
}

// Anomalies returns the fixed anomaly zone positions.
func (w *World) Anomalies() []*Vector3 {
	return w.anomalies
}

func (w *World) ObjectCount() int {
	return len(w.objects)
}

// Update advances object spin, the starfield drift and the anomaly lights.
func (w *World) Update(elapsed, intensity float64) {
	for _, obj := range w.objects {
		if obj.spinRate != 0 {
			obj.model.RotateY(obj.spinRate * elapsed)
		}
		if obj.tumbleRate != 0 {
			obj.model.RotateX(obj.tumbleRate * elapsed)
		}
	}
	w.starfield.Update(elapsed)
	for _, l := range w.lights {
		l.Update(elapsed, intensity)
	}
}

// Paint draws the starfield then every object, farthest first so the
// painter's algorithm resolves overlap between objects.
func (w *World) Paint(batcher *PolygonBatcher, cam *Camera, width, height int) {
	w.starfield.Paint(batcher, cam, width, height)

	camPos := cam.GetPosition()
	order := make([]int, len(w.objects))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return camPos.DistanceTo(w.objects[order[i]].pos) >
			camPos.DistanceTo(w.objects[order[j]].pos)
	})

	camMat := cam.GetMatrix()
	for _, i := range order {
		obj := w.objects[i]
		objToWorld := TransMatrix(obj.pos.X, obj.pos.Y, obj.pos.Z)
		obj.model.ApplyMatrixTemp(camMat.MultiplyBy(objToWorld))

		level := 1.0
		if obj.light != nil {
			level = obj.light.Level()
		}
		obj.model.Paint(batcher, width/2, height/2, true, level)
	}
}
