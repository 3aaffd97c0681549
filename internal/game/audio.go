package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundMenuSelect SoundKind = iota
	SoundPickup
	SoundDelivery
	SoundBoost
	SoundBoostEmpty
	SoundCrash
	SoundHorn
	SoundDayDone
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

// activeCrashes limits simultaneous crash sounds to avoid speaker clipping.
var activeCrashes int32

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	playSoundWithGain(kind, 1.0)
}

func PlaySoundWithGain(kind SoundKind, gain float64) {
	playSoundWithGain(kind, gain)
}

func playSoundWithGain(kind SoundKind, gain float64) {
	if globalAudio == nil {
		return
	}
	if gain <= 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	// Limit simultaneous crashes to 2 — more causes speaker clipping.
	if kind == SoundCrash {
		if atomic.LoadInt32(&activeCrashes) >= 2 {
			return
		}
		atomic.AddInt32(&activeCrashes, 1)
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		if kind == SoundCrash {
			atomic.AddInt32(&activeCrashes, -1)
		}
		return
	}
	go func() {
		if kind == SoundCrash {
			defer atomic.AddInt32(&activeCrashes, -1)
		}
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation — no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundMenuSelect:
		return genMenuSelect()
	case SoundPickup:
		return genPickup()
	case SoundDelivery:
		return genDelivery()
	case SoundBoost:
		return genBoost()
	case SoundBoostEmpty:
		return genBoostEmpty()
	case SoundCrash:
		return genCrash()
	case SoundHorn:
		return genHorn()
	case SoundDayDone:
		return genDayDone()
	}
	return nil
}

// genMenuSelect: crisp click + brief high tone.
func genMenuSelect() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genPickup: snappy two-note FM pop, ascending.
func genPickup() []byte {
	n := int(0.14 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.05, 0.2)
		freq := 520.0
		if p > 0.5 {
			freq = 780.0
		}
		s := fm(t, freq, 2.0, 3.0*env) * env * 0.45
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genDelivery: ascending major arpeggio, each note rings over the next.
func genDelivery() []byte {
	freqs := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
	noteLen := SampleRate * 75 / 1000
	tail := int(0.18 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			s := fm(t, freq, 2.756, 5.0*env) * env * 0.38
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.09
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genBoost: short rising whoosh, noise through a sweeping lowpass.
func genBoost() []byte {
	n := int(0.30 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(77777)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		raw := lcg(&seed)
		cut := 0.15 + 0.7*p
		lp = lp*(1-cut) + raw*cut
		env := adsr(p, 0.1, 0.2, 0.7, 0.3)
		s := lp * env * 0.45
		s += fm(t, 90+160*p, 1.0, 1.2) * env * 0.18
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genBoostEmpty: dull descending blip, boost denied.
func genBoostEmpty() []byte {
	n := int(0.10 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.6, 0.0, 0.2)
		freq := 260 - 120*p
		s := fm(t, freq, 1.0, 0.8) * env * 0.32
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genCrash: sub thump + filtered noise burst.
func genCrash() []byte {
	n := int(0.25 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(time.Now().UnixNano())
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		raw := lcg(&seed)
		lp = lp*0.7 + raw*0.3
		env := math.Exp(-p * 6)
		s := lp * env * 0.5
		s += math.Sin(2*math.Pi*(70-30*p)*t) * env * 0.45
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genHorn: classic dual-tone car horn, slightly detuned.
func genHorn() []byte {
	n := int(0.35 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.03, 0.05, 0.85, 0.2)
		s := fm(t, 440, 1.0, 0.4) * 0.28
		s += fm(t, 349.2, 1.0, 0.4) * 0.28
		s += math.Sin(2*math.Pi*443*t) * 0.05
		putStereoF32(buf, i, softSat(s*env))
	}
	return buf
}

// genDayDone: slow descending minor chord, staggered.
func genDayDone() []byte {
	dur := 0.75
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025) // slight pitch drop
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1 // sub
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

var sfxVolume float64 = 0.58

func SetSFXVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}
	sfxVolume = vol
}
