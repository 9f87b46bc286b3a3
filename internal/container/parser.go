package container

import (
	"github.com/loopdecode/gif89/internal/lzw"
)

// Parser drives the BlockParser state machine over a single 87a/89a byte
// stream: header, screen descriptor, optional global palette, then zero or
// more extension/image blocks until the trailer. It is strictly forward
// and single-pass; nothing is re-read once consumed.
type Parser struct {
	src    *ByteSource
	logger Logger
	result Result
}

// Logger receives debug-level tracing of the parser's state transitions.
// A nil Logger disables tracing entirely.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// NewParser constructs a parser over data. logger may be nil.
func NewParser(data []byte, logger Logger) *Parser {
	return &Parser{src: NewByteSource(data), logger: logger}
}

func (p *Parser) debugf(format string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debugf(format, args...)
	}
}

// Parse runs the state machine to completion and returns everything it
// accumulated, or the first error encountered.
func (p *Parser) Parse() (*Result, error) {
	if err := p.processHeader(); err != nil {
		return nil, err
	}
	if err := p.processScreenDescriptor(); err != nil {
		return nil, err
	}

	var pendingGC *GraphicControl
	for {
		terminated, next, err := p.dispatch(pendingGC)
		if err != nil {
			return nil, err
		}
		if terminated {
			p.debugf("reached trailer, parsing done")
			return &p.result, nil
		}
		pendingGC = next
	}
}

// processHeader validates the 6-byte signature+version and records version.
func (p *Parser) processHeader() error {
	sig, err := p.src.ReadASCII(3)
	if err != nil {
		return err
	}
	if sig != "GIF" {
		return ErrInvalidSignature
	}
	verStr, err := p.src.ReadASCII(3)
	if err != nil {
		return err
	}
	version, err := ParseVersion(verStr)
	if err != nil {
		return err
	}
	p.result.Version = version
	p.debugf("processed header, version %s", version)
	return nil
}

// processScreenDescriptor parses the fixed 7-byte logical screen
// descriptor and, when present, the global palette that follows it.
func (p *Parser) processScreenDescriptor() error {
	width, err := p.src.ReadUint16LE()
	if err != nil {
		return err
	}
	height, err := p.src.ReadUint16LE()
	if err != nil {
		return err
	}
	packed, err := p.src.ReadByte()
	if err != nil {
		return err
	}
	background, err := p.src.ReadByte()
	if err != nil {
		return err
	}
	aspect, err := p.src.ReadByte()
	if err != nil {
		return err
	}

	desc := ScreenDescriptor{
		Width:            width,
		Height:           height,
		HasGlobalPalette: packed&0x80 != 0,
		ColorResolution:  (packed >> 4) & 0x07,
		Sorted:           packed&0x08 != 0,
		BackgroundColor:  background,
		PixelAspectRatio: aspect,
	}
	if desc.HasGlobalPalette {
		desc.GlobalPaletteSize = PaletteEntries(packed)
	}
	p.result.Screen = desc
	p.debugf("processed screen descriptor %+v", desc)

	if !desc.HasGlobalPalette {
		return nil
	}
	raw, err := p.src.ReadBytes(3 * desc.GlobalPaletteSize)
	if err != nil {
		return err
	}
	p.result.GlobalPalette = ParsePalette(raw)
	p.debugf("processed global palette, %d entries", len(p.result.GlobalPalette))
	return nil
}

// dispatch reads the single byte that decides what comes next: an
// extension introducer, an image descriptor, or the trailer.
func (p *Parser) dispatch(pendingGC *GraphicControl) (terminated bool, next *GraphicControl, err error) {
	b, err := p.src.ReadByte()
	if err != nil {
		return false, nil, err
	}
	switch b {
	case ExtensionIntroducer:
		label, err := p.src.ReadByte()
		if err != nil {
			return false, nil, err
		}
		gc, err := p.processExtension(label, pendingGC)
		return false, gc, err
	case ImageDescriptorLabel:
		if err := p.processImageDescriptor(pendingGC); err != nil {
			return false, nil, err
		}
		return false, nil, nil
	case TrailerLabel:
		if pendingGC != nil {
			return false, nil, ErrExpectedImageAfterGraphicControl
		}
		return true, nil, nil
	default:
		return false, nil, &UnexpectedBlockLabelError{Label: b}
	}
}

// processExtension handles one extension block. Comment, application, and
// plain text extensions carry pendingGC through unchanged; only a graphic
// control extension may set it, and only when none is already pending.
func (p *Parser) processExtension(label byte, pendingGC *GraphicControl) (*GraphicControl, error) {
	switch label {
	case GraphicControlLabel:
		if pendingGC != nil {
			return nil, ErrUnexpectedGraphicControl
		}
		gc, err := p.processGraphicControl()
		if err != nil {
			return nil, err
		}
		return gc, nil

	case CommentLabel:
		data, err := ReadSubBlocks(p.src)
		if err != nil {
			return nil, err
		}
		p.result.Extensions = append(p.result.Extensions, CommentExtension{Data: data})
		p.debugf("processed comment extension, %d bytes", len(data))
		return pendingGC, nil

	case ApplicationLabel:
		if err := p.processApplication(); err != nil {
			return nil, err
		}
		return pendingGC, nil

	case PlainTextLabel:
		if err := p.processPlainText(); err != nil {
			return nil, err
		}
		return pendingGC, nil

	default:
		return nil, &UnknownExtensionLabelError{Label: label}
	}
}

func (p *Parser) processGraphicControl() (*GraphicControl, error) {
	size, err := p.src.ReadByte()
	if err != nil {
		return nil, err
	}
	if int(size) != GraphicControlBlockSize {
		return nil, &MalformedExtensionBlockSizeError{Label: GraphicControlLabel, Expected: GraphicControlBlockSize, Actual: int(size)}
	}
	packed, err := p.src.ReadByte()
	if err != nil {
		return nil, err
	}
	delay, err := p.src.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	transparentIndex, err := p.src.ReadByte()
	if err != nil {
		return nil, err
	}
	terminator, err := p.src.ReadByte()
	if err != nil {
		return nil, err
	}
	if terminator != 0 {
		return nil, &MalformedExtensionBlockSizeError{Label: GraphicControlLabel, Expected: 0, Actual: int(terminator)}
	}

	disposal := int(packed>>2) & 0x07
	if disposal > DisposalRestorePrevious {
		return nil, &InvalidDisposalMethodError{Value: disposal}
	}

	gc := &GraphicControl{
		DisposalMethod:        disposal,
		UserInputFlag:         packed&0x02 != 0,
		TransparentColorFlag:  packed&0x01 != 0,
		DelayTime:             delay,
		TransparentColorIndex: transparentIndex,
	}
	p.debugf("processed graphic control %+v", gc)
	return gc, nil
}

func (p *Parser) processApplication() error {
	size, err := p.src.ReadByte()
	if err != nil {
		return err
	}
	if int(size) != ApplicationBlockSize {
		return &MalformedExtensionBlockSizeError{Label: ApplicationLabel, Expected: ApplicationBlockSize, Actual: int(size)}
	}
	identifier, err := p.src.ReadASCII(8)
	if err != nil {
		return err
	}
	auth, err := p.src.ReadBytes(3)
	if err != nil {
		return err
	}
	data, err := ReadSubBlocks(p.src)
	if err != nil {
		return err
	}

	if identifier == NetscapeIdentifier && string(auth) == NetscapeAuth {
		if len(data) != 3 {
			return &ApplicationDataLengthMismatchError{Identifier: identifier, Expected: 3, Actual: len(data)}
		}
		count := uint16(data[1]) | uint16(data[2])<<8
		p.result.Loop = &LoopDirective{Count: count}
		p.debugf("processed NETSCAPE loop directive, count=%d", count)
	}

	p.result.Extensions = append(p.result.Extensions, ApplicationExtension{
		Identifier:         identifier,
		AuthenticationCode: auth,
		Data:               data,
	})
	p.debugf("processed application extension %q", identifier)
	return nil
}

func (p *Parser) processPlainText() error {
	size, err := p.src.ReadByte()
	if err != nil {
		return err
	}
	if int(size) != PlainTextBlockSize {
		return &MalformedExtensionBlockSizeError{Label: PlainTextLabel, Expected: PlainTextBlockSize, Actual: int(size)}
	}
	// Plain text rendering is out of scope; the fixed header and data
	// sub-blocks are consumed and discarded.
	if _, err := p.src.ReadBytes(PlainTextBlockSize); err != nil {
		return err
	}
	if _, err := ReadSubBlocks(p.src); err != nil {
		return err
	}
	p.debugf("discarded plain text extension")
	return nil
}

// processImageDescriptor parses the fixed 9-byte image descriptor,
// reads an optional local palette, then reads the compressed image data.
func (p *Parser) processImageDescriptor(pendingGC *GraphicControl) error {
	left, err := p.src.ReadUint16LE()
	if err != nil {
		return err
	}
	top, err := p.src.ReadUint16LE()
	if err != nil {
		return err
	}
	width, err := p.src.ReadUint16LE()
	if err != nil {
		return err
	}
	height, err := p.src.ReadUint16LE()
	if err != nil {
		return err
	}
	packed, err := p.src.ReadByte()
	if err != nil {
		return err
	}

	desc := ImageDescriptor{
		Left:            left,
		Top:             top,
		Width:           width,
		Height:          height,
		HasLocalPalette: packed&0x80 != 0,
		Interlaced:      packed&0x40 != 0,
		Sorted:          packed&0x20 != 0,
	}
	if desc.HasLocalPalette {
		desc.LocalPaletteSize = PaletteEntries(packed)
	}
	p.debugf("processed image descriptor %+v", desc)

	img := RawImage{Descriptor: desc, GraphicCtl: pendingGC}

	if desc.HasLocalPalette {
		raw, err := p.src.ReadBytes(3 * desc.LocalPaletteSize)
		if err != nil {
			return err
		}
		img.LocalPalette = ParsePalette(raw)
		p.debugf("processed local palette, %d entries", len(img.LocalPalette))
	}

	if err := p.processImageData(&img); err != nil {
		return err
	}

	p.result.Images = append(p.result.Images, img)
	return nil
}

// processImageData reads the LZW minimum code size, the compressed
// sub-block chain, decompresses it, and attaches the index buffer.
//
// A decoded index count that doesn't match width*height is tolerated
// rather than treated as fatal (real-world encoders occasionally overrun
// slightly): longer output is truncated to width*height, shorter output
// is kept as-is so the caller can see exactly what was recovered.
func (p *Parser) processImageData(img *RawImage) error {
	minCodeSize, err := p.src.ReadByte()
	if err != nil {
		return err
	}
	if minCodeSize < 1 || minCodeSize > 8 {
		return &InvalidLzwCodeSizeError{Value: int(minCodeSize)}
	}
	data, err := ReadSubBlocks(p.src)
	if err != nil {
		return err
	}
	indices, err := lzw.Decode(data, int(minCodeSize))
	if err != nil {
		return err
	}

	want := int(img.Descriptor.Width) * int(img.Descriptor.Height)
	if len(indices) > want {
		indices = indices[:want]
	}

	img.MinCodeSize = int(minCodeSize)
	img.Indices = indices
	p.debugf("processed image data, %d indices (want %d)", len(indices), want)
	return nil
}
