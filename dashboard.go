// dashboard.go - interactive keyboard-driven control panel, adapted
// from the teacher's raw-stdin terminal host: the same
// non-blocking-read-in-a-goroutine shape, driving an Oscillator
// instead of a terminal-emulation MMIO device.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// dashboard reads raw stdin in a background goroutine and exposes the
// most recent keypress to the main render loop.
type dashboard struct {
	fd           int
	oldTermState *term.State
	nonblockSet  bool

	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once

	keys chan byte
}

func newDashboard() *dashboard {
	return &dashboard{
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
		keys:   make(chan byte, 16),
	}
}

func (d *dashboard) start() error {
	d.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(d.fd)
	if err != nil {
		close(d.done)
		return fmt.Errorf("dashboard: set raw mode: %w", err)
	}
	d.oldTermState = oldState

	if err := syscall.SetNonblock(d.fd, true); err != nil {
		_ = term.Restore(d.fd, d.oldTermState)
		d.oldTermState = nil
		close(d.done)
		return fmt.Errorf("dashboard: set nonblocking stdin: %w", err)
	}
	d.nonblockSet = true

	go func() {
		defer close(d.done)
		buf := make([]byte, 1)
		for {
			select {
			case <-d.stopCh:
				return
			default:
			}
			n, err := syscall.Read(d.fd, buf)
			if n > 0 {
				select {
				case d.keys <- buf[0]:
				default:
				}
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil {
				return
			}
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
	return nil
}

func (d *dashboard) stop() {
	d.stopped.Do(func() {
		close(d.stopCh)
	})
	<-d.done
	if d.nonblockSet {
		_ = syscall.SetNonblock(d.fd, false)
		d.nonblockSet = false
	}
	if d.oldTermState != nil {
		_ = term.Restore(d.fd, d.oldTermState)
		d.oldTermState = nil
	}
}

// attStep and freqStep are the per-keypress adjustment increments.
const (
	attStep  = 0x0800
	freqStep = 1
)

// runInteractive drives osc live from the keyboard: '+'/'-' adjust
// attenuation, arrow keys (ESC '[' 'A'/'B' sequences) adjust frequency,
// 'p' toggles the dither postprocessor, 'q' or Ctrl-C exits. The
// current phi/sample pair prints once per step; if monitor is non-nil
// the sample is also pushed to the live audio sink.
func runInteractive(osc *Oscillator, monitor *otoSink) error {
	dash := newDashboard()
	if err := dash.start(); err != nil {
		return err
	}
	defer dash.stop()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	fmt.Fprintln(out, "interactive: +/- attenuation, up/down arrows frequency, p toggles pp, q quits")
	out.Flush()

	var escState int // 0 idle, 1 saw ESC, 2 saw ESC '['
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case b := <-dash.keys:
			switch escState {
			case 1:
				if b == '[' {
					escState = 2
					continue
				}
				escState = 0
			case 2:
				escState = 0
				switch b {
				case 'A': // up
					if osc.Freq()+freqStep <= maxFreq {
						osc.SetFreq(osc.Freq() + freqStep)
					}
				case 'B': // down
					if osc.Freq() >= freqStep {
						osc.SetFreq(osc.Freq() - freqStep)
					}
				}
				continue
			}

			switch b {
			case 0x1b: // ESC
				escState = 1
			case 'q', 0x03: // q or Ctrl-C
				return nil
			case '+':
				if osc.Att() <= 0xFFFF-attStep {
					osc.SetAtt(osc.Att() + attStep)
				} else {
					osc.SetAtt(0xFFFF)
				}
			case '-':
				if osc.Att() >= attStep {
					osc.SetAtt(osc.Att() - attStep)
				} else {
					osc.SetAtt(0)
				}
			case 'p':
				osc.SetPP(!osc.pp.en)
			}

		case <-ticker.C:
			s := osc.Output()
			fmt.Fprintf(out, "phi=%5d sample=%6d freq=%4d att=%5d pp=%v\r\n",
				osc.Phi(), s, osc.Freq(), osc.Att(), osc.pp.en)
			out.Flush()
			if monitor != nil {
				monitor.Write(s)
			}
			osc.Step()
		}
	}
}
