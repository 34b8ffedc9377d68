package scale

// Surface is the scrollable primitive the controller drives. The surface
// owns the offset storage; the controller reads it on scroll events and
// commands it while settling. The host's gesture layer mutates the offset
// directly and then tells the controller via Controller.OffsetChanged.
type Surface interface {
	// Attached reports whether the surface is laid out and usable.
	// Commands against a detached surface fail with ErrSurfaceDetached.
	Attached() bool

	// Offset returns the current scroll position
	Offset() float64

	// SetOffset moves the scroll position
	SetOffset(offset float64) error
}

// SlideSurface is the owned in-memory Surface used when the host does not
// supply one. It starts detached; the host calls Attach once its layout is
// known (in a TUI, after the first window size message).
type SlideSurface struct {
	attached bool
	offset   float64
}

// NewSlideSurface returns a surface in the detached state.
func NewSlideSurface() *SlideSurface {
	return &SlideSurface{}
}

// Attach marks the surface as laid out and ready for commands.
func (s *SlideSurface) Attach() {
	s.attached = true
}

// Detach releases the surface. Subsequent commands fail until reattached.
func (s *SlideSurface) Detach() {
	s.attached = false
}

// Attached reports whether the surface accepts commands.
func (s *SlideSurface) Attached() bool {
	return s.attached
}

// Offset returns the current scroll position.
func (s *SlideSurface) Offset() float64 {
	return s.offset
}

// SetOffset moves the scroll position.
func (s *SlideSurface) SetOffset(offset float64) error {
	if !s.attached {
		return ErrSurfaceDetached
	}
	s.offset = offset
	return nil
}
