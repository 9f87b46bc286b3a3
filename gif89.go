package gif89

import (
	"github.com/loopdecode/gif89/frame"
	"github.com/loopdecode/gif89/internal/container"
)

// Decoder holds everything parsed from one 87a/89a stream: header and
// screen metadata, the global palette (if any), the loop directive (if
// any), the ordered comment/application extensions, and the ordered
// frames. Nothing is mutated after Decode returns it.
type Decoder struct {
	version       Version
	screen        ScreenDescriptor
	globalPalette Palette
	loop          *LoopDirective
	extensions    []Extension
	frames        []Frame
}

// Decode parses a complete 87a/89a byte stream and returns the fully
// decoded result, or the first error encountered. No partial result is
// returned on failure.
func Decode(data []byte, opts ...Option) (*Decoder, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	p := container.NewParser(data, cfg.logger)
	res, err := p.Parse()
	if err != nil {
		return nil, err
	}

	d := &Decoder{
		version:       res.Version,
		screen:        res.Screen,
		globalPalette: res.GlobalPalette,
		loop:          res.Loop,
		extensions:    res.Extensions,
	}
	d.frames = make([]Frame, len(res.Images))
	for i, img := range res.Images {
		d.frames[i] = Frame{inner: frame.FromRawImage(img), global: d.globalPalette}
	}
	return d, nil
}

// Version reports the stream's header version, 87a or 89a.
func (d *Decoder) Version() Version { return d.version }

// ScreenDescriptor returns the stream's logical screen descriptor.
func (d *Decoder) ScreenDescriptor() ScreenDescriptor { return d.screen }

// GlobalPalette returns the stream's global palette, or nil if none.
func (d *Decoder) GlobalPalette() Palette { return d.globalPalette }

// HasGlobalPalette reports whether the stream carries a global palette.
func (d *Decoder) HasGlobalPalette() bool { return d.globalPalette != nil }

// Loop returns the stream's NETSCAPE2.0 loop directive, or nil if the
// stream carried none.
func (d *Decoder) Loop() *LoopDirective { return d.loop }

// Extensions returns the stream's comment and application extensions, in
// the order they appeared.
func (d *Decoder) Extensions() []Extension { return d.extensions }

// Frames returns the stream's decoded frames, in the order they appeared.
func (d *Decoder) Frames() []*Frame {
	out := make([]*Frame, len(d.frames))
	for i := range d.frames {
		out[i] = &d.frames[i]
	}
	return out
}

// FrameCount returns the number of decoded frames.
func (d *Decoder) FrameCount() int { return len(d.frames) }
