// Package frame binds a decoded image block to its controlling graphic
// control record and local palette, and resolves which palette is in
// scope for it: the frame's own local palette if it has one, otherwise
// the stream's global palette.
package frame

import (
	"errors"

	"github.com/loopdecode/gif89/internal/container"
)

// DisposalMethod is the post-display canvas operation a consumer should
// apply before rendering the next frame. Disposal application itself is
// the consumer's responsibility; this package only reports which method
// a frame names.
type DisposalMethod int

const (
	// DisposalUnspecified leaves disposal behavior up to the consumer.
	DisposalUnspecified DisposalMethod = iota
	// DisposalKeep leaves the canvas as rendered.
	DisposalKeep
	// DisposalRestoreBackground fills the frame's region with the
	// background color before the next frame is rendered.
	DisposalRestoreBackground
	// DisposalRestorePrevious restores the canvas to its state before
	// this frame was rendered.
	DisposalRestorePrevious
)

// ErrNoPaletteInScope is returned by Palette when a frame has neither a
// local palette nor a global palette available to fall back to.
var ErrNoPaletteInScope = errors.New("gif89: no palette in scope for frame")

// Frame is one fully decoded image block: its geometry, its decoded
// palette-index buffer, and the timing/disposal/transparency metadata
// from its (optional) preceding graphic control record.
type Frame struct {
	Left, Top     int
	Width, Height int
	Interlaced    bool
	Indices       []byte

	localPalette container.Palette

	hasGraphicControl bool
	delay             uint16
	disposal          DisposalMethod
	userInput         bool
	hasTransparency   bool
	transparentIndex  uint8
}

// FromRawImage builds a Frame from the parser's raw accumulation for one
// image block, grounded on the GraphicControl it carried (if any).
func FromRawImage(img container.RawImage) Frame {
	f := Frame{
		Left:         int(img.Descriptor.Left),
		Top:          int(img.Descriptor.Top),
		Width:        int(img.Descriptor.Width),
		Height:       int(img.Descriptor.Height),
		Interlaced:   img.Descriptor.Interlaced,
		Indices:      img.Indices,
		localPalette: img.LocalPalette,
	}
	if img.GraphicCtl != nil {
		f.hasGraphicControl = true
		f.delay = img.GraphicCtl.DelayTime
		f.disposal = DisposalMethod(img.GraphicCtl.DisposalMethod)
		f.userInput = img.GraphicCtl.UserInputFlag
		f.hasTransparency = img.GraphicCtl.TransparentColorFlag
		f.transparentIndex = img.GraphicCtl.TransparentColorIndex
	}
	return f
}

// Delay returns the frame's display duration in hundredths of a second,
// or 0 if the frame carried no graphic control.
func (f *Frame) Delay() uint16 { return f.delay }

// Disposal returns the frame's disposal method.
func (f *Frame) Disposal() DisposalMethod { return f.disposal }

// UserInput reports whether the frame's graphic control set the
// user-input flag.
func (f *Frame) UserInput() bool { return f.userInput }

// Transparent reports whether the frame has a transparent color index,
// and returns it.
func (f *Frame) Transparent() (index uint8, ok bool) {
	return f.transparentIndex, f.hasTransparency
}

// HasLocalPalette reports whether this frame carries its own palette.
func (f *Frame) HasLocalPalette() bool { return f.localPalette != nil }

// Palette resolves the palette in scope for this frame: its own local
// palette if present, otherwise global. Fails if neither is available.
func (f *Frame) Palette(global container.Palette) (container.Palette, error) {
	if f.localPalette != nil {
		return f.localPalette, nil
	}
	if global != nil {
		return global, nil
	}
	return nil, ErrNoPaletteInScope
}
