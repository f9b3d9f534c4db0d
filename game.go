package driftspace

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game is the driver loop: each tick runs controls, world update, the
// intensity computation, then forwards the scalar to effects and audio.
type Game struct {
	world    *World
	camera   *Camera
	composer *Composer
	audio    *AudioDirector
	meter    *IntensityMeter
	batcher  *PolygonBatcher

	width, height int
	intensity     float64

	dragged      bool
	lastX, lastY int
	debug        bool
}

func NewGame(seed int64, muted, noPost, debug bool) *Game {
	log.Println("Building world...")
	g := &Game{
		world:    NewWorld(seed),
		camera:   NewCamera(0, 0, cameraStartZ, 0, 0, 0),
		composer: NewComposer(ScreenWidth, ScreenHeight, !noPost),
		meter:    NewIntensityMeter(),
		batcher:  NewPolygonBatcher(),
		width:    ScreenWidth,
		height:   ScreenHeight,
		debug:    debug,
	}
	g.audio = NewAudioDirector(muted, rand.New(rand.NewSource(seed+1)))
	log.Printf("World ready, %d objects, %d sound sources", g.world.ObjectCount(), g.audio.SourceCount())
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	elapsed := 1.0 / float64(ebiten.TPS())
	g.updateControls(elapsed)

	g.world.Update(elapsed, g.intensity)

	g.intensity = g.meter.Step(g.camera.GetPosition(), g.world.Anomalies())

	g.composer.Advance(elapsed)
	g.composer.SetIntensity(g.intensity)
	g.audio.Update(g.intensity, g.camera.GetPosition())

	return nil
}

func (g *Game) updateControls(elapsed float64) {
	var forward, right, up float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		forward += moveSpeed * elapsed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		forward -= moveSpeed * elapsed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		right += moveSpeed * elapsed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		right -= moveSpeed * elapsed
	}
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		up += moveSpeed * elapsed
	}
	if ebiten.IsKeyPressed(ebiten.KeyF) {
		up -= moveSpeed * elapsed
	}
	if forward != 0 || right != 0 || up != 0 {
		g.camera.Move(forward, right, up)
	}

	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.camera.AddAngle(0, 0, -rollSpeed*elapsed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		g.camera.AddAngle(0, 0, rollSpeed*elapsed)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragged = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.dragged {
		x, y := ebiten.CursorPosition()
		dx := float64(x - g.lastX)
		dy := float64(y - g.lastY)
		g.camera.AddAngle(dy*lookSpeed, dx*lookSpeed, 0)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragged = false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.meter.TriggerBoost()
		g.audio.TriggerPill()
	}

	// back to the starting point, keeping the current view direction
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.camera.SetPosition(0, 0, cameraStartZ)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	scene := g.composer.Scene()
	scene.Fill(color.Black)

	g.batcher.Reset()
	g.world.Paint(g.batcher, g.camera, g.width, g.height)
	triangles := g.batcher.TriangleCount()
	g.batcher.Flush(scene)

	g.composer.Render(screen)

	if g.debug {
		pos := g.camera.GetPosition()
		ang := g.camera.GetAngle()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %0.2f\nintensity: %0.3f\nboost: %0.3f\npos: %0.1f %0.1f %0.1f\nang: %0.2f %0.2f %0.2f\ntris: %d",
			ebiten.ActualFPS(), g.intensity, g.meter.Boost(),
			pos.X, pos.Y, pos.Z, ang.X, ang.Y, ang.Z, triangles))
	}
}

// Layout tracks the window size so the camera viewport and the composer's
// buffers never disagree.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.composer.Resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}
