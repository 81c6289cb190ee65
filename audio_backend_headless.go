//go:build headless

package main

// otoSink is a no-op stand-in for headless builds (CI, CSV-only
// batch runs) where no audio device is expected to exist.
type otoSink struct{}

func newOtoSink(sampleRate int) (*otoSink, error) {
	return &otoSink{}, nil
}

func (s *otoSink) Write(sample SQ015) {}

func (s *otoSink) Start() {}

func (s *otoSink) Close() error { return nil }
