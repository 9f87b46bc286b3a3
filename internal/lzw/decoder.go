// Package lzw implements the variable-width LZW decompression used by GIF
// image data: a dictionary that starts at the palette's bit depth, grows
// one entry per emitted code, and resets on an explicit clear code.
package lzw

import (
	"github.com/loopdecode/gif89/internal/bitio"
	"github.com/loopdecode/gif89/internal/pool"
)

// maxTableSize is the largest a GIF LZW dictionary is ever allowed to
// grow to: one entry per possible 12-bit code.
const maxTableSize = 1 << 12

// entry is one dictionary slot. Rather than storing each entry's full
// expansion as an independently cloned byte string (quadratic in memory
// for large images), every entry after the initial single-byte roots is
// represented as a reference to its parent entry plus one trailing byte.
// Expanding a code walks the parent chain back to a root and reverses it.
type entry struct {
	parent int32 // -1 for the initial single-byte roots
	suffix byte
}

// decoder holds the dictionary and code-width state for one LZW stream.
type decoder struct {
	table    []entry
	clear    int
	eoi      int
	width    int
	minWidth int
}

func newDecoder(minCodeSize int) *decoder {
	d := &decoder{minWidth: minCodeSize}
	d.resetTable()
	return d
}

// resetTable rebuilds the initial dictionary and code width, the
// operation triggered both at stream start and on every clear code.
//
// The table reserves two slots beyond the literal byte codes for clear
// and end-of-information, even though those control codes are never
// looked up here (the decode loop intercepts them before consulting the
// table). Reserving the slots keeps freshly added entries numbered from
// clear+2 onward, the classic GIF/LZW convention, and is what keeps the
// code-width growth threshold (table size == 1<<width) aligned with the
// set of values a code of that width can actually express.
func (d *decoder) resetTable() {
	clear := 1 << d.minWidth
	d.clear = clear
	d.eoi = clear + 1
	d.width = d.minWidth + 1
	d.table = make([]entry, clear+2, maxTableSize)
	for i := 0; i < clear; i++ {
		d.table[i] = entry{parent: -1, suffix: byte(i)}
	}
}

// expand appends code's expansion to dst and returns the grown slice.
func (d *decoder) expand(code int, dst []byte) []byte {
	start := len(dst)
	for code >= 0 {
		e := d.table[code]
		dst = append(dst, e.suffix)
		code = int(e.parent)
	}
	for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}
	return dst
}

// firstByte returns the first byte of code's expansion without
// allocating, by walking to the root of its parent chain.
func (d *decoder) firstByte(code int) byte {
	for {
		e := d.table[code]
		if e.parent < 0 {
			return e.suffix
		}
		code = int(e.parent)
	}
}

// full reports whether the dictionary has reached its 4096-entry ceiling.
func (d *decoder) full() bool {
	return len(d.table) >= maxTableSize
}

// growWidth bumps the code width once the dictionary's next-assigned
// index can no longer be expressed at the current width, i.e. once the
// table size reaches 1<<width.
func (d *decoder) growWidth() {
	if len(d.table) == 1<<d.width && d.width < 12 {
		d.width++
	}
}

// Decode reconstructs the palette-index stream packed into data as a
// variable-width LZW code stream with minCodeSize as the dictionary's
// starting bit depth. minCodeSize must already be validated to 1..8 by
// the caller; Decode itself only ever fails on the bit stream's content.
//
// The expansion buffer is borrowed from internal/pool rather than
// allocated fresh: LZW output commonly runs several times the size of
// its compressed input, and that scratch space is pure overhead once
// the caller has its own copy. The pooled buffer is returned before
// Decode hands back ownership of anything.
func Decode(data []byte, minCodeSize int) ([]byte, error) {
	scratch := pool.Get(len(data) * 3)
	out, err := decode(data, minCodeSize, scratch[:0])
	result := append([]byte(nil), out...)
	pool.Put(scratch)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// decode runs the LZW algorithm, appending output to out (which may grow
// past its initial capacity; the caller owns copying the result out).
func decode(data []byte, minCodeSize int, out []byte) ([]byte, error) {
	d := newDecoder(minCodeSize)
	br := bitio.NewReader(data)

	code, ok := br.Next(d.width)
	if !ok {
		return nil, ErrBitStreamTruncated
	}
	// A leading clear code is legal and simply reaffirms the initial
	// dictionary state that resetTable already established.
	if int(code) == d.clear {
		code, ok = br.Next(d.width)
		if !ok {
			return nil, ErrBitStreamTruncated
		}
	}
	if int(code) == d.eoi {
		return out, nil
	}
	if int(code) >= len(d.table) {
		return nil, ErrInvalidCode
	}
	out = d.expand(int(code), out)
	prev := int(code)

	for {
		next, ok := br.Next(d.width)
		if !ok {
			return nil, ErrBitStreamTruncated
		}
		c := int(next)

		switch {
		case c == d.clear:
			d.resetTable()
			first, ok := br.Next(d.width)
			if !ok {
				return nil, ErrBitStreamTruncated
			}
			if int(first) == d.eoi {
				return out, nil
			}
			if int(first) >= len(d.table) {
				return nil, ErrInvalidCode
			}
			out = d.expand(int(first), out)
			prev = int(first)
			continue

		case c == d.eoi:
			return out, nil

		case c < len(d.table):
			out = d.expand(c, out)
			if !d.full() {
				d.table = append(d.table, entry{parent: int32(prev), suffix: d.firstByte(c)})
			}
			prev = c

		case c == len(d.table):
			// The KwKwK case: c is exactly the next slot the dictionary
			// would assign, so its expansion is {prev}+first-byte-of-{prev}.
			if d.full() {
				return nil, ErrCodeWidthOverflow
			}
			d.table = append(d.table, entry{parent: int32(prev), suffix: d.firstByte(prev)})
			out = d.expand(len(d.table)-1, out)
			prev = len(d.table) - 1

		default:
			return nil, ErrInvalidCode
		}

		d.growWidth()
	}
}
