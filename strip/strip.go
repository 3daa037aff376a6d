// Package strip drives LPD8806 based RGB strands. The buffer holds pixels in
// the device's wire encoding; the strip pushes that buffer, framed by the
// chip's zero-byte latch sequence, through a byte sink.
package strip

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Strip owns a pixel buffer and the sink it is transmitted through. One owner,
// one writer: calls must be strictly sequential.
type Strip struct {
	buf        *Buffer
	sink       Sink
	latchBytes []byte
}

// New builds a strip of numPixels pixels on sink. A latch is sent immediately
// to put the strand's shift registers in a known state, and the buffer starts
// with every pixel encoded off.
func New(sink Sink, numPixels int) (*Strip, error) {
	buf, err := NewBuffer(numPixels)
	if err != nil {
		return nil, err
	}
	s := &Strip{
		buf:        buf,
		sink:       sink,
		latchBytes: make([]byte, (numPixels+31)/32),
	}
	if err := s.Latch(); err != nil {
		return nil, fmt.Errorf("couldn't reset strand: %w", err)
	}
	if err := buf.FillOff(0, numPixels); err != nil {
		return nil, err
	}
	log.Infof("Initialized %d pixel LPD8806 strand, %d latch bytes", numPixels, len(s.latchBytes))
	return s, nil
}

// Buffer returns the strip's pixel buffer.
func (s *Strip) Buffer() *Buffer {
	return s.buf
}

// SetChannelOrder replaces the buffer's channel permutation.
func (s *Strip) SetChannelOrder(o Order) {
	s.buf.SetChannelOrder(o)
}

// SetMasterBrightness scales every future pixel write by bright.
func (s *Strip) SetMasterBrightness(bright float64) error {
	return s.buf.SetMasterBrightness(bright)
}

// Latch writes the reset pulse, one zero byte per 32 pixels rounded up, and
// flushes. This commits the previously shifted-in frame to the strand's
// output registers.
func (s *Strip) Latch() error {
	if _, err := s.sink.Write(s.latchBytes); err != nil {
		return err
	}
	return s.sink.Flush()
}

// Update pushes the full frame to the strand, followed by a latch. There are
// no partial writes; every call transmits the whole buffer.
func (s *Strip) Update() error {
	if _, err := s.sink.Write(s.buf.Bytes()); err != nil {
		return err
	}
	return s.Latch()
}

// AllOff blanks the strand. The frame is sent twice in case the first one is
// lost to power-up or bus contention.
func (s *Strip) AllOff() error {
	for i := 0; i < 2; i++ {
		if err := s.buf.FillOff(0, s.buf.Len()); err != nil {
			return err
		}
		if err := s.Update(); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the sink. The strip must not be used afterwards.
func (s *Strip) Close() error {
	return s.sink.Close()
}
