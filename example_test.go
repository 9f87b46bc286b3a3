package gif89_test

import (
	"fmt"

	"github.com/loopdecode/gif89"
)

// oneByOneBlackPixel is the literal worked example from the stream
// format's documentation: a 1x1 frame with a two-entry global palette,
// decoding to a single black pixel.
func oneByOneBlackPixel() []byte {
	return []byte{
		'G', 'I', 'F', '8', '7', 'a',
		0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00,
		0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF,
		0x2C, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00,
		0x02, 0x02, 0x44, 0x01, 0x00,
		0x3B,
	}
}

func ExampleDecode() {
	d, err := gif89.Decode(oneByOneBlackPixel())
	if err != nil {
		fmt.Println(err)
		return
	}
	f := d.Frames()[0]
	palette, err := f.Palette()
	if err != nil {
		fmt.Println(err)
		return
	}
	idx := f.Indices()[0]
	c := palette[idx]
	fmt.Printf("frames: %d, size: %dx%d, color: %v\n", d.FrameCount(), f.Width(), f.Height(), c)
	// Output:
	// frames: 1, size: 1x1, color: {0 0 0}
}
