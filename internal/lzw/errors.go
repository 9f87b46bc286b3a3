package lzw

import "errors"

// Errors returned by Decode. They are re-exported by the top-level
// package so callers never need to import this internal package
// directly to match on them with errors.Is.
var (
	// ErrBitStreamTruncated is returned when the bit reader runs out of
	// input before an end-of-information code is seen.
	ErrBitStreamTruncated = errors.New("gif89: lzw bit stream ended before an end-of-information code")

	// ErrInvalidCode is returned when a code references a dictionary
	// slot beyond the one the decoder could legally add next.
	ErrInvalidCode = errors.New("gif89: lzw code references an undefined dictionary entry")

	// ErrCodeWidthOverflow is returned when the dictionary has reached
	// its 4096-entry ceiling and an undefined code still demands a new
	// entry be created for it.
	ErrCodeWidthOverflow = errors.New("gif89: lzw dictionary is full and cannot add another entry")
)
