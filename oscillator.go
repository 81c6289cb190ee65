// oscillator.go - stateful oscillator descriptor
//
// An Oscillator is a flat value type: no pointers, no cyclic
// references, no heap allocation beyond the struct itself. A
// descriptor is owned exclusively by its caller, who must serialise
// access to it — there is no internal locking here, the same "caller
// holds the mutex" contract the teacher's register descriptors use
// for their writes, just without the mutex itself since a single
// descriptor never fans out across goroutines.
package main

// Oscillator is a per-generator descriptor: a fixed-point phase
// accumulator driving a modulated sine, plus the dither postprocessor
// that smooths its low-amplitude output. All fields are <=16-bit
// state words.
type Oscillator struct {
	freq UQ016 // constrained to [0, 0x4000]; 0 pauses phase advance
	phi  UQ016 // current phase
	att  UQ016 // attenuation in [0, 1)

	pp postprocessor
}

// maxFreq is the Nyquist-respecting upper bound on freq: Fo/Fs <= 1/4.
const maxFreq = 0x4000

// NewOscillator returns a descriptor reset to silence: freq = phi =
// att = 0, postprocessing disabled.
func NewOscillator() *Oscillator {
	o := &Oscillator{}
	o.Init()
	return o
}

// Init resets the descriptor to its silent, unconfigured state.
func (o *Oscillator) Init() {
	o.freq = 0
	o.phi = 0
	o.att = 0
	o.pp = postprocessor{}
}

// SetFreq sets the oscillator frequency. freq must be <= maxFreq;
// violating that is a caller bug.
func (o *Oscillator) SetFreq(freq UQ016) {
	checkUQ016(freq)
	if freq > maxFreq {
		domainPanic("freq exceeds Nyquist-respecting range 0x4000", int64(freq))
	}
	o.freq = freq
	o.restart()
}

// SetPhi sets the current phase directly.
func (o *Oscillator) SetPhi(phi UQ016) {
	checkUQ016(phi)
	o.phi = phi
	o.restart()
}

// SetAtt sets the attenuation.
func (o *Oscillator) SetAtt(att UQ016) {
	checkUQ016(att)
	o.att = att
	o.restart()
}

// SetPP enables or disables the low-amplitude dither postprocessor.
func (o *Oscillator) SetPP(enable bool) {
	o.pp.en = enable
	o.restart()
}

// restart re-seeds the postprocessor and, if it is enabled and freq is
// non-zero, immediately runs a fresh lookahead: any parameter change
// invalidates whatever interval the postprocessor had planned.
func (o *Oscillator) restart() {
	o.pp.active = false
	if o.pp.en && o.freq > 0 {
		o.pp.lookahead(o.phi, o.freq, o.att)
	}
}

// Output returns the current momentary sample.
func (o *Oscillator) Output() SQ015 {
	if o.pp.active {
		return o.pp.sample()
	}
	return msin(o.phi, o.att)
}

// Step advances the oscillator by one sample period. A freq of zero
// makes Step a no-op: phase never advances while the oscillator is
// paused.
func (o *Oscillator) Step() {
	if o.freq == 0 {
		return
	}
	o.phi = wrapAdd(o.phi, o.freq) // unsigned 16-bit wrap
	if o.pp.active {
		o.pp.advance(o.phi, o.freq, o.att)
	}
}

// Freq, Phi and Att expose the current configured state read-only;
// used by drivers/tests that need to inspect the descriptor without
// mutating it.
func (o *Oscillator) Freq() UQ016 { return o.freq }
func (o *Oscillator) Phi() UQ016  { return o.phi }
func (o *Oscillator) Att() UQ016  { return o.att }
