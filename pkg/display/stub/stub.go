// Package stub provides a display driver that draws nothing. At every
// frame it walks the LY register through a frame, so programs polling
// LY for VBlank make progress.
package stub

import (
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/display"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Stub is the stub display driver.
type Stub struct {
	host   display.Host
	log    log.Logger
	frames uint64
	err    error
}

// New returns a Stub logging to l.
func New(l log.Logger) *Stub {
	return &Stub{log: l}
}

// SetLogger sets the logger "Drawing!" is reported to.
func (s *Stub) SetLogger(l log.Logger) {
	s.log = l
}

// Initialize implements display.Driver.
func (s *Stub) Initialize(host display.Host) error {
	s.host = host
	if s.log == nil {
		s.log = log.NewNullLogger()
	}
	return nil
}

// FrameReady resets LY to the first scanline, then moves it into VBlank
// and raises the VBlank interrupt.
func (s *Stub) FrameReady() {
	s.frames++
	s.log.Debugf("Drawing!")

	if err := s.host.Write8(types.LY, 0); err != nil {
		s.fail(err)
		return
	}
	if err := s.host.Write8(types.LY, types.LYVBlank); err != nil {
		s.fail(err)
		return
	}
	s.host.RequestVBlank()
}

func (s *Stub) fail(err error) {
	if s.err == nil {
		s.log.Errorf("stub: updating LY: %v", err)
	}
	s.err = err
}

// Frames returns the number of frames drawn.
func (s *Stub) Frames() uint64 {
	return s.frames
}

// Err returns the first error raised while updating LY.
func (s *Stub) Err() error {
	return s.err
}

// Close implements display.Driver.
func (s *Stub) Close() error {
	return nil
}

func init() {
	display.Install("stub", New(nil), nil)
}
