// Package gif89 decodes the 87a/89a animated bitmap container down to a
// list of fully-decoded, palette-indexed frames.
//
// It implements only the decode-side core: the block-oriented stream
// parser and the variable-width LZW decompressor. Rendering a frame to
// RGBA, applying disposal methods against a persistent canvas, writing
// any output file format, and encoding are all left to the caller; this
// package hands back indices, palettes, and timing/disposal metadata
// exactly as the stream carried them.
//
// Basic usage:
//
//	d, err := gif89.Decode(data)
//	if err != nil {
//		// handle err
//	}
//	for _, f := range d.Frames() {
//		palette, err := f.Palette()
//		// render f.Indices() against palette using f.Disposal()
//	}
package gif89
