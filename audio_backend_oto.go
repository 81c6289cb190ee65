//go:build !headless

// audio_backend_oto.go - live PCM monitoring sink, built on the
// teacher's oto/v3 backend.
//
// Samples are already SQ0.15 - signed 16-bit - so the sink feeds them
// straight into FormatSignedInt16LE with no float conversion: the
// oscillator's computation path never touches floating point, and the
// playback path shouldn't either.
package main

import (
	"encoding/binary"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// otoSink is a push-style PCM monitor: the driver calls Write per
// sample instead of oto pulling from a Read callback, since the
// generator - not the audio backend - owns the sample clock here.
type otoSink struct {
	ctx    *oto.Context
	player *oto.Player

	mutex sync.Mutex
	buf   []byte
}

func newOtoSink(sampleRate int) (*otoSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	s := &otoSink{ctx: ctx}
	s.player = ctx.NewPlayer(s)
	return s, nil
}

// Write appends one SQ0.15 sample to the playback ring, encoded
// little-endian as the oscillator's native 16-bit signed code.
func (s *otoSink) Write(sample SQ015) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(int16(sample)))
	s.buf = append(s.buf, b[:]...)
}

// Read implements io.Reader for oto.Player, draining the samples
// written so far and padding with silence once they run out, rather
// than blocking the audio callback on the generator's pace.
func (s *otoSink) Read(p []byte) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	n := copy(p, s.buf)
	s.buf = s.buf[n:]
	for i := n; i < len(p); i++ {
		p[i] = 0
	}
	return len(p), nil
}

func (s *otoSink) Start() { s.player.Play() }

func (s *otoSink) Close() error {
	return s.player.Close()
}
