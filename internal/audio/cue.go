package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/log"
)

const (
	SampleRate = 44100
	channels   = 2
)

// Cue is a short sine blip with a linear fade out.
type Cue struct {
	Frequency float64
	Duration  float64 // seconds
}

var (
	SelectCue   = Cue{Frequency: 880, Duration: 0.08}
	DeselectCue = Cue{Frequency: 440, Duration: 0.06}
)

// Samples renders c as interleaved stereo float32 little-endian PCM.
func (c Cue) Samples(volume, pan float32) []byte {
	n := int(c.Duration * SampleRate)
	if n <= 0 {
		return nil
	}
	// Equal power pan
	angle := float64(clamp01(pan)) * math.Pi / 2
	left := float32(math.Cos(angle)) * volume
	right := float32(math.Sin(angle)) * volume

	buf := make([]byte, n*channels*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		s := float32(math.Sin(2*math.Pi*c.Frequency*float64(i)/SampleRate) * env)
		binary.LittleEndian.PutUint32(buf[i*8:], math.Float32bits(s*left))
		binary.LittleEndian.PutUint32(buf[i*8+4:], math.Float32bits(s*right))
	}
	return buf
}

// Player plays cues on a shared oto context. A Player whose context failed to
// open stays silent.
type Player struct {
	mu      sync.Mutex
	ctx     *oto.Context
	playing []*oto.Player
}

var (
	otoContext     *oto.Context
	otoContextOnce sync.Once
	otoContextErr  error
)

func initOtoContext() {
	otoContextOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: channels,
			Format:       oto.FormatFloat32LE,
		}
		var ready chan struct{}
		otoContext, ready, otoContextErr = oto.NewContext(op)
		if otoContextErr != nil {
			log.Warn("audio cues disabled", "err", otoContextErr)
			return
		}
		<-ready
		log.Info("audio context initialized", "sampleRate", SampleRate)
	})
}

// NewPlayer opens the audio device on first use.
func NewPlayer() *Player {
	initOtoContext()
	return &Player{ctx: otoContext}
}

func (p *Player) Enabled() bool {
	return p != nil && p.ctx != nil
}

// Play starts c without blocking. Finished players are released on the next call.
func (p *Player) Play(c Cue, volume, pan float32) {
	if !p.Enabled() || volume <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	kept := p.playing[:0]
	for _, pl := range p.playing {
		if pl.IsPlaying() {
			kept = append(kept, pl)
		} else {
			pl.Close()
		}
	}
	p.playing = kept

	pl := p.ctx.NewPlayer(bytes.NewReader(c.Samples(volume, pan)))
	pl.Play()
	p.playing = append(p.playing, pl)
}
