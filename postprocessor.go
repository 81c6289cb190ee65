// postprocessor.go - duty-cycle dither for low-amplitude intervals
//
// When (1-att) and the local slope of sin are both tiny, msin returns
// the same SQ0.15 code for many consecutive phases: a staircase whose
// steps are harmonic spurs. This hides those steps by interleaving the
// two adjacent codes with a duty cycle that ramps smoothly across the
// interval, so the average tracks the analytic sine instead of a
// quantised step.
package main

// postprocessor holds the look-ahead interval state of a single
// Oscillator. Every field is a plain <=16-bit-range word.
type postprocessor struct {
	en     bool // postprocessing enabled
	active bool // an interval is currently active

	phi0, phi1 UQ016
	val0, val1 SQ015

	sampl int // samples in [phi0, phi1)
	steps int // isqrt(sampl), clamped to 0 if < 2
	msize int // sampl / steps
	asize int // sampl mod steps

	sidx int // current sample index within the interval
	ridx int // sampl - (steps/2)*msize
	aidx int // ridx - asize
}

// phiMask wraps phase arithmetic to the 16-bit UQ0.16 container.
const phiMask = 0xFFFF

func wrapAdd(a, n UQ016) UQ016 { return (a + n) & phiMask }

// wrapDistance returns the forward distance from b to a, modulo 2^16.
func wrapDistance(a, b UQ016) UQ016 { return (a - b) & phiMask }

// absDiff15 returns the absolute difference between two SQ0.15 codes.
func absDiff15(a, b SQ015) SQ015 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}

// scanRun advances from start in steps of freq while msin(.,att) keeps
// returning target, bounded by a one-quadrant phase distance from
// anchor and by a 14-bit step counter. It returns the phase where the
// value first differs from target (or the last phase reached if the
// bound tripped first), the number of steps taken, and whether a
// genuine change was found before the bound tripped.
func scanRun(start, anchor, freq UQ016, att UQ016, target SQ015) (end UQ016, count int, changed bool) {
	pos := start
	for count < phiQ1Max {
		next := wrapAdd(pos, freq)
		if wrapDistance(next, anchor) >= phiQ1Max {
			return pos, count, false
		}
		val := msin(next, att)
		pos = next
		count++
		if val != target {
			return pos, count, true
		}
	}
	return pos, count, false
}

// lookahead scans forward from phi to find the next low-amplitude
// plateau (a run of identical quantised codes) and, if one exists and
// is worth dithering, plans a centered two-code interval spanning it.
// Precondition: !pp.active, 0 < freq <= maxFreq, pp.en.
func (pp *postprocessor) lookahead(phi, freq, att UQ016) {
	pp.active = false

	phi0 := phi
	val0 := msin(phi0, att)

	phi1, cnt1, changed := scanRun(phi0, phi0, freq, att, val0)
	if !changed {
		return
	}
	val1 := msin(phi1, att)
	if absDiff15(val1, val0) > 1 {
		return
	}

	_, cnt2, _ := scanRun(phi1, phi1, freq, att, val1)

	sampl := cnt1 + cnt2/2
	phi1 = wrapAdd(phi1, UQ016(cnt2/2)*freq)

	steps := isqrtClamped(sampl)
	if steps < 2 {
		return
	}

	pp.phi0, pp.val0 = phi0, val0
	pp.phi1, pp.val1 = phi1, val1
	pp.sampl = sampl
	pp.steps = steps
	pp.msize = sampl / steps
	pp.asize = sampl % steps
	pp.ridx = sampl - (steps/2)*pp.msize
	pp.aidx = pp.ridx - pp.asize
	pp.sidx = 0
	pp.active = true
}

// isqrtClamped adapts isqrt (whose table covers x < 0x4000) to the
// wider range a centered interval can reach, saturating at the
// table's largest exact root rather than panicking: an interval this
// long no longer benefits from finer dithering resolution anyway.
func isqrtClamped(x int) int {
	if x < 0 {
		return 0
	}
	if x >= 0x4000 {
		return isqrtTableSize - 1
	}
	return isqrt(x)
}

// sample returns the dithered output for the current position in the
// active interval: a duty-cycle ramp between val0 and val1 whose mean
// tracks the true sine value the staircase alone would lose.
func (pp *postprocessor) sample() SQ015 {
	s := pp.sidx
	if pp.aidx <= s && s < pp.ridx {
		if (s-pp.aidx)%2 != 0 {
			return pp.val1
		}
		return pp.val0
	}

	m := s
	if s >= pp.ridx {
		m = s - pp.asize
	}
	istep := m / pp.msize
	iidx := m % pp.msize
	pidx := iidx % pp.steps
	if pidx >= istep {
		return pp.val0
	}
	return pp.val1
}

// advance assumes the caller has already advanced phi by freq, and
// rolls the interval over (re-running lookahead for the next one) once
// sidx reaches sampl.
func (pp *postprocessor) advance(phi, freq, att UQ016) {
	pp.sidx++
	if pp.sidx != pp.sampl {
		return
	}
	pp.phi0, pp.val0 = pp.phi1, pp.val1
	pp.active = false
	if pp.en && freq > 0 {
		pp.lookahead(pp.phi0, freq, att)
	}
}
