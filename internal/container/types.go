package container

// Version is the stream's header version, either 87a or 89a.
type Version int

const (
	VersionUnknown Version = iota
	Version87a
	Version89a
)

func (v Version) String() string {
	switch v {
	case Version87a:
		return "87a"
	case Version89a:
		return "89a"
	default:
		return "unknown"
	}
}

// ParseVersion maps the header's trailing three ASCII bytes to a Version.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "87a":
		return Version87a, nil
	case "89a":
		return Version89a, nil
	default:
		return VersionUnknown, &UnsupportedVersionError{Actual: s}
	}
}

// ScreenDescriptor is the logical screen descriptor, exactly one per stream.
type ScreenDescriptor struct {
	Width             uint16
	Height            uint16
	HasGlobalPalette  bool
	ColorResolution   uint8
	Sorted            bool
	GlobalPaletteSize int // entry count, valid only when HasGlobalPalette
	BackgroundColor   uint8
	PixelAspectRatio  uint8
}

// RGB is one palette entry.
type RGB struct {
	R, G, B uint8
}

// Palette is an ordered table of RGB triples addressed by one-byte indices.
type Palette []RGB

// ParsePalette decodes a flat 3*entries byte run into a Palette.
func ParsePalette(raw []byte) Palette {
	p := make(Palette, len(raw)/3)
	for i := range p {
		p[i] = RGB{R: raw[i*3], G: raw[i*3+1], B: raw[i*3+2]}
	}
	return p
}

// GraphicControl is the timing/transparency metadata that precedes at
// most one image block.
type GraphicControl struct {
	DisposalMethod        int
	UserInputFlag         bool
	TransparentColorFlag  bool
	DelayTime             uint16 // hundredths of a second
	TransparentColorIndex uint8
}

// ImageDescriptor is the fixed 9-byte geometry and flags for one image block.
type ImageDescriptor struct {
	Left             uint16
	Top              uint16
	Width            uint16
	Height           uint16
	HasLocalPalette  bool
	Interlaced       bool
	Sorted           bool
	LocalPaletteSize int // entry count, valid only when HasLocalPalette
}

// RawImage is everything ProcessImageDescriptor through ProcessImageData
// accumulates about one image block, before FrameAssembler binds it to its
// preceding graphic control.
type RawImage struct {
	Descriptor   ImageDescriptor
	LocalPalette Palette // nil when the descriptor carries no local palette
	MinCodeSize  int
	Indices      []byte
	GraphicCtl   *GraphicControl // nil when no graphic control preceded this image
}

// Extension is the marker interface satisfied by every special-purpose
// extension kept for the caller (comment and application blocks; plain
// text and graphic control extensions are consumed internally and never
// surface here).
type Extension interface {
	extension()
}

// ApplicationExtension is a vendor application block: an 8-byte
// identifier, a 3-byte authentication code, and its data sub-blocks.
type ApplicationExtension struct {
	Identifier         string
	AuthenticationCode []byte
	Data               []byte
}

func (ApplicationExtension) extension() {}

// CommentExtension is a comment block's raw concatenated sub-block bytes.
type CommentExtension struct {
	Data []byte
}

func (CommentExtension) extension() {}

// LoopDirective is the animation repeat count carried by a NETSCAPE2.0
// application extension. Count == 0 means infinite.
type LoopDirective struct {
	Count uint16
}

// Result is everything BlockParser produces from one stream: header and
// screen metadata, the ordered extensions and images in encounter order.
type Result struct {
	Version       Version
	Screen        ScreenDescriptor
	GlobalPalette Palette // nil when the stream has no global palette
	Loop          *LoopDirective
	Extensions    []Extension
	Images        []RawImage
}
