package gif89

import (
	internalframe "github.com/loopdecode/gif89/frame"
)

// DisposalMethod is re-exported from the frame package so callers never
// need to import it directly.
type DisposalMethod = internalframe.DisposalMethod

const (
	DisposalUnspecified       = internalframe.DisposalUnspecified
	DisposalKeep              = internalframe.DisposalKeep
	DisposalRestoreBackground = internalframe.DisposalRestoreBackground
	DisposalRestorePrevious   = internalframe.DisposalRestorePrevious
)

// Frame is one decoded image block: geometry, decoded indices, and the
// timing/disposal/transparency metadata from its graphic control record.
// It additionally resolves its own palette against the decoder's global
// palette, so callers never need to thread that through themselves.
type Frame struct {
	inner  internalframe.Frame
	global Palette
}

// Left, Top, Width, and Height describe the frame's placement and extent
// on the logical screen.
func (f *Frame) Left() int   { return f.inner.Left }
func (f *Frame) Top() int    { return f.inner.Top }
func (f *Frame) Width() int  { return f.inner.Width }
func (f *Frame) Height() int { return f.inner.Height }

// Interlaced reports whether the stream marked this frame's rows as
// interlaced. Row de-interleaving is left to the caller.
func (f *Frame) Interlaced() bool { return f.inner.Interlaced }

// Indices returns the frame's decoded palette-index buffer, in row-major
// order, length width*height (subject to the documented tolerance policy
// for encoders that overran slightly).
func (f *Frame) Indices() []byte { return f.inner.Indices }

// Delay returns the frame's display duration in hundredths of a second,
// or 0 if no graphic control preceded this frame.
func (f *Frame) Delay() uint16 { return f.inner.Delay() }

// Disposal returns the frame's disposal method.
func (f *Frame) Disposal() DisposalMethod { return f.inner.Disposal() }

// UserInput reports whether the frame's graphic control set the
// user-input flag.
func (f *Frame) UserInput() bool { return f.inner.UserInput() }

// Transparent reports whether the frame has a transparent color index.
func (f *Frame) Transparent() (index uint8, ok bool) { return f.inner.Transparent() }

// Palette resolves the palette in scope for this frame: local if the
// frame carries one, otherwise the decoder's global palette. It fails if
// neither is present.
func (f *Frame) Palette() (Palette, error) { return f.inner.Palette(f.global) }
