package driftspace

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Linear parameter maps from the intensity scalar. Each is a pure function;
// the composer is the only thing that applies them to uniforms.

func bloomStrength(i float64) float64     { return 0.8 + i*2.0 }
func bloomRadius(i float64) float64       { return 0.3 + i*0.7 }
func chromaMagnitude(i float64) float64   { return 0.001 + i*0.012 }
func grainMagnitude(i float64) float64    { return 0.2 + i*0.8 }
func scanlineMagnitude(i float64) float64 { return 0.3 + i*0.7 }
func vignetteOffset(i float64) float64    { return 0.9 - i*0.4 }
func vignetteDarkness(i float64) float64  { return 1.0 + i*0.8 }

const bloomShaderSrc = `
package main

var Strength float
var Radius float

func Fragment(position vec4, texCoord vec2, color vec4) vec4 {
	base := imageSrc0At(texCoord)

	r := Radius * 0.008
	sum := vec4(0.0)
	sum += imageSrc0At(texCoord + vec2(-r, -r))
	sum += imageSrc0At(texCoord + vec2(0.0, -r))
	sum += imageSrc0At(texCoord + vec2(r, -r))
	sum += imageSrc0At(texCoord + vec2(-r, 0.0))
	sum += imageSrc0At(texCoord + vec2(r, 0.0))
	sum += imageSrc0At(texCoord + vec2(-r, r))
	sum += imageSrc0At(texCoord + vec2(0.0, r))
	sum += imageSrc0At(texCoord + vec2(r, r))
	sum = sum / 8.0

	bright := max(sum-vec4(0.4), vec4(0.0))
	col := base + bright*Strength
	col.a = 1.0
	return col
}
`

const chromaShaderSrc = `
package main

var Magnitude float

func Fragment(position vec4, texCoord vec2, color vec4) vec4 {
	r := imageSrc0At(texCoord + vec2(Magnitude, 0.0)).r
	g := imageSrc0At(texCoord).g
	b := imageSrc0At(texCoord - vec2(Magnitude, 0.0)).b
	return vec4(r, g, b, 1.0)
}
`

// The grain pass applies two independent modulations: Noise scales the
// per-pixel random speckle and Lines scales the horizontal line pattern.
const grainShaderSrc = `
package main

var Noise float
var Lines float
var Time float

func Fragment(position vec4, texCoord vec2, color vec4) vec4 {
	col := imageSrc0At(texCoord)

	n := fract(sin(dot(texCoord+vec2(Time, Time), vec2(12.9898, 78.233))) * 43758.5453)
	col.rgb = col.rgb + (n-0.5)*0.15*Noise

	scan := sin(texCoord.y*600.0) * 0.04 * Lines
	col.rgb = col.rgb - scan

	col.a = 1.0
	return col
}
`

const vignetteShaderSrc = `
package main

var Offset float
var Darkness float

func Fragment(position vec4, texCoord vec2, color vec4) vec4 {
	col := imageSrc0At(texCoord)
	uv := (texCoord - vec2(0.5, 0.5)) * (Darkness / Offset)
	col.rgb = col.rgb * clamp(1.0-dot(uv, uv), 0.0, 1.0)
	col.a = 1.0
	return col
}
`

// Pass is one full-screen shader step with its current uniform values.
type Pass struct {
	name     string
	shader   *ebiten.Shader
	uniforms map[string]any
}

// Composer owns the offscreen scene target and the ordered post chain:
// scene -> bloom -> chromatic shift -> grain -> vignette -> display.
type Composer struct {
	width, height int
	scene         *ebiten.Image
	ping          *ebiten.Image
	pong          *ebiten.Image
	passes        []*Pass
	elapsed       float64
	enabled       bool
}

func NewComposer(width, height int, enabled bool) *Composer {
	c := &Composer{enabled: enabled}
	c.Resize(width, height)

	for _, def := range []struct {
		name string
		src  string
	}{
		{"bloom", bloomShaderSrc},
		{"chromatic", chromaShaderSrc},
		{"grain", grainShaderSrc},
		{"vignette", vignetteShaderSrc},
	} {
		shader, err := ebiten.NewShader([]byte(def.src))
		if err != nil {
			log.Printf("could not compile %s shader, pass disabled: %v", def.name, err)
			continue
		}
		c.passes = append(c.passes, &Pass{
			name:     def.name,
			shader:   shader,
			uniforms: map[string]any{},
		})
	}
	c.SetIntensity(0)
	return c
}

// Scene is the offscreen target the world is painted into.
func (c *Composer) Scene() *ebiten.Image {
	return c.scene
}

func (c *Composer) Size() (int, int) {
	return c.width, c.height
}

func (c *Composer) PassCount() int {
	return len(c.passes)
}

// Resize recreates the scene and ping-pong targets at the new size.
func (c *Composer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == c.width && height == c.height && c.scene != nil {
		return
	}
	c.width, c.height = width, height
	c.scene = ebiten.NewImage(width, height)
	c.ping = ebiten.NewImage(width, height)
	c.pong = ebiten.NewImage(width, height)
}

// Advance moves the time uniform used by the animated grain.
func (c *Composer) Advance(elapsed float64) {
	c.elapsed += elapsed
}

// SetIntensity applies the linear maps to every present pass. A pass that
// failed to compile is simply absent and skipped.
func (c *Composer) SetIntensity(intensity float64) {
	for _, p := range c.passes {
		switch p.name {
		case "bloom":
			p.uniforms["Strength"] = float32(bloomStrength(intensity))
			p.uniforms["Radius"] = float32(bloomRadius(intensity))
		case "chromatic":
			p.uniforms["Magnitude"] = float32(chromaMagnitude(intensity))
		case "grain":
			p.uniforms["Noise"] = float32(grainMagnitude(intensity))
			p.uniforms["Lines"] = float32(scanlineMagnitude(intensity))
			p.uniforms["Time"] = float32(c.elapsed)
		case "vignette":
			p.uniforms["Offset"] = float32(vignetteOffset(intensity))
			p.uniforms["Darkness"] = float32(vignetteDarkness(intensity))
		}
	}
}

// Render runs the chain over the scene target and writes the final pass to
// dst. With the chain disabled or empty the scene is presented as-is.
func (c *Composer) Render(dst *ebiten.Image) {
	if !c.enabled || len(c.passes) == 0 {
		dst.DrawImage(c.scene, nil)
		return
	}

	src := c.scene
	buffers := [2]*ebiten.Image{c.ping, c.pong}
	for i, p := range c.passes {
		var target *ebiten.Image
		if i == len(c.passes)-1 {
			target = dst
		} else {
			target = buffers[i%2]
			target.Clear()
		}

		op := &ebiten.DrawRectShaderOptions{}
		op.Images[0] = src
		op.Uniforms = p.uniforms
		target.DrawRectShader(c.width, c.height, p.shader, op)
		src = target
	}
}

func (c *Composer) String() string {
	return fmt.Sprintf("composer %dx%d, %d passes", c.width, c.height, len(c.passes))
}
