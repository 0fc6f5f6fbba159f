// Package synth renders the game's procedural sound effects.
package synth

import "math"

const SampleRate = 44100

// Kind identifies a sound effect.
type Kind int

const (
	Honk      Kind = iota // goose herded
	Chime                 // power-up grabbed
	PowerDown             // boost expired
	Plop                  // poop dropped
	Fanfare               // flock cleared
	Select                // start / restart

	KindCount
)

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

// softSat applies gentle tanh-like saturation, no harsh clipping.
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

func mixToBuf(mix []float64) []byte {
	buf := makeBuf(len(mix))
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// Generate renders a sound effect as interleaved stereo float32 LE.
func Generate(kind Kind) []byte {
	switch kind {
	case Honk:
		return genHonk()
	case Chime:
		return genChime()
	case PowerDown:
		return genPowerDown()
	case Plop:
		return genPlop()
	case Fanfare:
		return genFanfare()
	case Select:
		return genSelect()
	}
	return nil
}

// genHonk: two nasal FM honks with a falling pitch and a breathy edge.
func genHonk() []byte {
	honk := int(0.11 * SampleRate)
	gap := int(0.04 * SampleRate)
	total := 2*honk + gap
	mix := make([]float64, total)
	seed := uint64(0x6005E)

	for h, base := range [2]float64{392, 330} {
		start := h * (honk + gap)
		for j := 0; j < honk; j++ {
			t := float64(j) / SampleRate
			p := float64(j) / float64(honk)
			env := adsr(p, 0.05, 0.3, 0.6, 0.3)
			freq := base * (1 - 0.18*p)
			s := fm(t, freq, 1.0, 2.8*env) * env * 0.42
			s += math.Sin(2*math.Pi*freq*3*t) * env * 0.08
			s += lcg(&seed) * env * 0.04
			mix[start+j] += s
		}
	}
	return mixToBuf(mix)
}

// genChime: rising bell arpeggio C5 E5 G5 C6.
func genChime() []byte {
	freqs := []float64{523.25, 659.25, 783.99, 1046.5}
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
	return mixToBuf(mix)
}

// genPowerDown: a deflating sweep.
func genPowerDown() []byte {
	n := int(0.32 * SampleRate)
	mix := make([]float64, n)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.2, 0.7, 0.4)
		freq := 880 * math.Pow(0.25, p)
		phase += 2 * math.Pi * freq / SampleRate
		mix[i] = (math.Sin(phase) + 0.3*math.Sin(phase*2.01)) * env * 0.3
	}
	return mixToBuf(mix)
}

// genPlop: short low drop.
func genPlop() []byte {
	n := int(0.07 * SampleRate)
	mix := make([]float64, n)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.2, 0.4)
		freq := 190 - 110*p
		phase += 2 * math.Pi * freq / SampleRate
		mix[i] = math.Sin(phase) * env * 0.35
	}
	return mixToBuf(mix)
}

// genFanfare: A major run up to the octave with a long ring.
func genFanfare() []byte {
	notes := []float64{440, 554.37, 659.25, 880, 1108.73}
	noteStep := int(0.09 * SampleRate)
	total := len(notes)*noteStep + int(0.25*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	return mixToBuf(mix)
}

func genSelect() []byte {
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
