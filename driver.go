// driver.go - the reference CSV rendering driver
//
// Fields: phi decimal in [0,65535]; sample decimal in [-32768,32767].
// Semicolon-space delimiter, one line per sample, flushed after each
// full fundamental period.
package main

import (
	"bufio"
	"fmt"
	"os"
)

func openCSVWriter(path string) (*bufio.Writer, func(), error) {
	if path == "" {
		w := bufio.NewWriter(os.Stdout)
		return w, func() { w.Flush() }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	return w, func() { w.Flush(); f.Close() }, nil
}

// periodSamples returns the number of samples in one full fundamental
// period at the oscillator's current frequency, or 0 if freq==0 (the
// phase never advances).
func periodSamples(freq UQ016) uint {
	if freq == 0 {
		return 0
	}
	return uint(0x10000) / uint(freq)
}

// runFixed renders cycles full periods of osc to w (and, if monitor is
// non-nil, to the live audio sink), one "phi; sample" line per sample.
func runFixed(osc *Oscillator, w *bufio.Writer, monitor *otoSink, cycles uint) error {
	period := periodSamples(osc.Freq())
	total := period * cycles
	if osc.Freq() == 0 {
		total = 1 // output is constant; emit a single observation
	}

	for i := uint(0); i < total; i++ {
		s := osc.Output()
		fmt.Fprintf(w, "%d; %d\n", osc.Phi(), s)
		if monitor != nil {
			monitor.Write(s)
		}
		osc.Step()
		if period != 0 && (i+1)%period == 0 {
			w.Flush()
		}
	}
	return w.Flush()
}

// runCompare runs a reference oscillator (pp disabled) against a test
// oscillator (pp enabled) with identical freq/phi/att, emitting the
// dual-generator "phi; sample1; sample2" format. The two generators are
// independent descriptors advanced concurrently via dualGenerate (see
// dualgen.go), sharing no mutable state.
func runCompare(osc *Oscillator, w *bufio.Writer, cycles uint) error {
	ref := NewOscillator()
	ref.SetFreq(osc.Freq())
	ref.SetPhi(osc.Phi())
	ref.SetAtt(osc.Att())
	ref.SetPP(false)

	test := NewOscillator()
	test.SetFreq(osc.Freq())
	test.SetPhi(osc.Phi())
	test.SetAtt(osc.Att())
	test.SetPP(true)

	period := periodSamples(osc.Freq())
	total := period * cycles
	if osc.Freq() == 0 {
		total = 1
	}

	rows, err := dualGenerate(ref, test, total)
	if err != nil {
		return err
	}
	for i, row := range rows {
		fmt.Fprintf(w, "%d; %d; %d\n", row.phi, row.s1, row.s2)
		if period != 0 && (uint(i)+1)%period == 0 {
			w.Flush()
		}
	}
	return w.Flush()
}
