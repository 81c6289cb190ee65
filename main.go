// main.go - reference CLI driver for the fixed-point sine oscillator
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func banner() {
	fmt.Println("sinegen - fixed-point Q-format sinusoid generator")
	fmt.Println("produces u(t) = sin(phi(t)) * (1-att) with duty-cycle dither at high attenuation")
}

func main() {
	var (
		freq    = flag.Uint("freq", 4, "oscillator frequency code, UQ0.16 in [0, 0x4000]")
		phi     = flag.Uint("phi", 0, "initial phase, UQ0.16 in [0, 0xFFFF]")
		att     = flag.Uint("att", 0, "attenuation, UQ0.16 in [0, 0xFFFF]")
		pp      = flag.Bool("pp", false, "enable low-amplitude dither postprocessing")
		cycles  = flag.Uint("cycles", 1, "number of full 2^16/freq cycles to render (ignored if freq==0: one sample is rendered)")
		out     = flag.String("out", "", "CSV output path (default: stdout)")
		compare = flag.Bool("compare", false, "run a second, pp-enabled generator alongside and emit 'phi; sample1; sample2' rows")
		play    = flag.Bool("play", false, "also play the generated stream on the default audio device")
		script  = flag.String("script", "", "Lua script path driving the generator instead of -freq/-phi/-att/-pp/-cycles")
		interactive = flag.Bool("interactive", false, "drive the generator live from the keyboard instead of rendering a fixed run")
	)
	flag.Parse()
	banner()

	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				if de := recoverDomainError(r); de != nil {
					err = de
					return
				}
			}
		}()
		err = run(runConfig{
			freq: UQ016(*freq), phi: UQ016(*phi), att: UQ016(*att),
			pp: *pp, cycles: *cycles, out: *out, compare: *compare,
			play: *play, script: *script, interactive: *interactive,
		})
	}()

	if err != nil {
		log.Printf("sinegen: %v", err)
		os.Exit(1)
	}
}

type runConfig struct {
	freq, phi, att UQ016
	pp             bool
	cycles         uint
	out            string
	compare        bool
	play           bool
	script         string
	interactive    bool
}

func run(cfg runConfig) error {
	if cfg.script != "" {
		return runScript(cfg.script, cfg.out)
	}

	osc := NewOscillator()
	osc.SetFreq(cfg.freq)
	osc.SetPhi(cfg.phi)
	osc.SetAtt(cfg.att)
	osc.SetPP(cfg.pp)

	w, closeW, err := openCSVWriter(cfg.out)
	if err != nil {
		return err
	}
	defer closeW()

	var monitor *otoSink
	if cfg.play {
		monitor, err = newOtoSink(44100)
		if err != nil {
			return fmt.Errorf("audio sink: %w", err)
		}
		defer monitor.Close()
		monitor.Start()
	}

	if cfg.interactive {
		return runInteractive(osc, monitor)
	}

	if cfg.compare {
		return runCompare(osc, w, cfg.cycles)
	}

	return runFixed(osc, w, monitor, cfg.cycles)
}
