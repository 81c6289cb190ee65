package main

import "testing"

func TestOscillator_InitIsSilent(t *testing.T) {
	o := NewOscillator()
	if o.Output() != 0 {
		t.Fatalf("fresh oscillator output = %d, want 0", o.Output())
	}
}

func TestOscillator_PhaseWrapsAfterFullPeriod(t *testing.T) {
	// Scenario S1: freq=4 must return to phi=0 after exactly
	// 65536/4 = 16384 steps.
	o := NewOscillator()
	o.SetFreq(4)
	const steps = 0x10000 / 4
	for i := 0; i < steps; i++ {
		o.Step()
	}
	if o.Phi() != 0 {
		t.Fatalf("phi after full period = %d, want 0", o.Phi())
	}
}

func TestOscillator_ZeroFreqNeverSteps(t *testing.T) {
	o := NewOscillator()
	o.SetPhi(1234)
	o.SetFreq(0)
	for i := 0; i < 100; i++ {
		o.Step()
	}
	if o.Phi() != 1234 {
		t.Fatalf("phi moved with freq=0: got %d, want 1234", o.Phi())
	}
}

func TestOscillator_SetFreqRejectsAboveNyquist(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for freq > maxFreq")
		}
	}()
	NewOscillator().SetFreq(maxFreq + 1)
}

func TestOscillator_OutputMatchesPlainMsinWhenPPDisabled(t *testing.T) {
	o := NewOscillator()
	o.SetAtt(0x2000)
	o.SetPhi(12345)
	if got, want := o.Output(), msin(12345, 0x2000); got != want {
		t.Fatalf("Output() = %d, want msin() = %d", got, want)
	}
}

func TestOscillator_AnySetterRestartsPostprocessor(t *testing.T) {
	o := NewOscillator()
	o.SetFreq(1)
	o.SetAtt(0xFF00) // heavy attenuation, likely to trigger an interval
	o.SetPP(true)
	wasActive := o.pp.active
	// Changing phi must reset and re-run lookahead from the new point,
	// not silently continue the old interval.
	o.SetPhi(o.Phi() + 1)
	if wasActive && !o.pp.active && o.pp.en {
		t.Fatalf("restart left postprocessor disabled despite en=true")
	}
}

func TestOscillator_StepAdvancesByFreqEachCall(t *testing.T) {
	o := NewOscillator()
	o.SetFreq(7)
	o.SetPhi(10)
	o.Step()
	if o.Phi() != 17 {
		t.Fatalf("phi after one step = %d, want 17", o.Phi())
	}
}
