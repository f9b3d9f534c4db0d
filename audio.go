package driftspace

import (
	"bytes"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const audioSampleRate = 44100

// backgroundVolume maps intensity to the music volume.
func backgroundVolume(intensity float64) float64 {
	return backgroundBaseVolume + backgroundGainVolume*intensity
}

// spatialGain attenuates a positional source linearly with listener distance.
func spatialGain(distance float64) float64 {
	return clampF(1-distance/positionalRange, 0, 1)
}

// soundSource is one player plus an explicit ready state. A source stays
// unready forever if its file is missing or fails to decode; every caller
// checks readiness before touching the player.
type soundSource struct {
	path   string
	pos    *Vector3 // nil for non-positional sources
	loop   bool
	player *audio.Player
	ready  atomic.Bool
}

func (s *soundSource) isReady() bool {
	return s.ready.Load()
}

// load decodes the file and builds the player. Run on its own goroutine; the
// frame loop only sees the source after ready flips.
func (s *soundSource) load(ctx *audio.Context, startVolume float64) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		log.Printf("audio: %v, source stays silent", err)
		return
	}

	var stream io.ReadSeeker
	switch filepath.Ext(s.path) {
	case ".mp3":
		d, derr := mp3.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(raw))
		if derr != nil {
			log.Printf("audio: decoding %q: %v, source stays silent", s.path, derr)
			return
		}
		if s.loop {
			stream = audio.NewInfiniteLoop(d, d.Length())
		} else {
			stream = d
		}
	default:
		d, derr := wav.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(raw))
		if derr != nil {
			log.Printf("audio: decoding %q: %v, source stays silent", s.path, derr)
			return
		}
		if s.loop {
			stream = audio.NewInfiniteLoop(d, d.Length())
		} else {
			stream = d
		}
	}

	player, err := ctx.NewPlayer(stream)
	if err != nil {
		log.Printf("audio: player for %q: %v, source stays silent", s.path, err)
		return
	}
	player.SetVolume(startVolume)
	if s.loop {
		player.Play()
	}

	s.player = player
	s.ready.Store(true)
}

// heartbeat anchor points, fixed at setup
var heartbeatPositions = [heartbeatCount]*Vector3{
	NewVector3(-300, 40, 200),
	NewVector3(300, -40, 250),
	NewVector3(0, 80, 450),
	NewVector3(-200, -60, 550),
	NewVector3(250, 60, 600),
	NewVector3(0, 0, 320),
}

// AudioDirector owns every sound source: the background track, the fixed
// heartbeat loops, the scattered ambient loops and the one-shot pill sound.
type AudioDirector struct {
	ctx        *audio.Context
	muted      bool
	background *soundSource
	pill       *soundSource
	positional []*soundSource
}

// NewAudioDirector starts asynchronous loads for every source and returns
// immediately. With muted set nothing is loaded at all.
func NewAudioDirector(muted bool, rng *rand.Rand) *AudioDirector {
	d := &AudioDirector{muted: muted}
	if muted {
		return d
	}
	d.ctx = audio.NewContext(audioSampleRate)

	d.background = &soundSource{path: musicFile, loop: true}
	go d.background.load(d.ctx, backgroundVolume(0))

	d.pill = &soundSource{path: pillFile}
	go d.pill.load(d.ctx, 1.0)

	for _, pos := range heartbeatPositions {
		src := &soundSource{path: heartbeatFile, pos: pos.Copy(), loop: true}
		d.positional = append(d.positional, src)
		go src.load(d.ctx, 0)
	}

	for i := 0; i < ambientCount; i++ {
		sample := ambientSampleFiles[rng.Intn(len(ambientSampleFiles))]
		pos := NewVector3(
			(rng.Float64()*2-1)*400,
			(rng.Float64()*2-1)*120,
			100+rng.Float64()*550,
		)
		src := &soundSource{path: sample, pos: pos, loop: true}
		d.positional = append(d.positional, src)
		go src.load(d.ctx, 0)
	}

	return d
}

// Update sets the background volume from intensity and re-attenuates every
// ready positional source against the listener.
func (d *AudioDirector) Update(intensity float64, listener *Vector3) {
	if d.muted {
		return
	}
	if d.background.isReady() {
		d.background.player.SetVolume(backgroundVolume(intensity))
	}
	for _, src := range d.positional {
		if !src.isReady() {
			continue
		}
		src.player.SetVolume(spatialGain(listener.DistanceTo(src.pos)))
	}
}

// TriggerPill restarts the pill sound from the beginning, stopping any
// playback already in flight. No-op until the buffer has loaded.
func (d *AudioDirector) TriggerPill() {
	if d.muted || !d.pill.isReady() {
		return
	}
	p := d.pill.player
	if p.IsPlaying() {
		p.Pause()
	}
	if err := p.Rewind(); err != nil {
		log.Printf("audio: rewinding pill sound: %v", err)
		return
	}
	p.Play()
}

func (d *AudioDirector) SourceCount() int {
	if d.muted {
		return 0
	}
	return len(d.positional) + 2
}
