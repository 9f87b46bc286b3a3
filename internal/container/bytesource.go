package container

import "encoding/binary"

// ByteSource is a forward-only typed reader over an in-memory byte stream.
// It never seeks backward and never peeks past the byte it returns.
type ByteSource struct {
	data []byte
	pos  int
}

// NewByteSource wraps data for sequential reading. The slice is not copied;
// callers must not mutate it while the source is in use.
func NewByteSource(data []byte) *ByteSource {
	return &ByteSource{data: data}
}

// ReadByte returns the next byte, or ErrUnexpectedEof if none remain.
func (s *ByteSource) ReadByte() (byte, error) {
	if s.pos >= len(s.data) {
		return 0, ErrUnexpectedEof
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

// ReadUint16LE returns the next two bytes as a little-endian uint16.
func (s *ByteSource) ReadUint16LE() (uint16, error) {
	b, err := s.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadBytes returns the next n bytes. The returned slice is a copy; the
// source retains no reference to it.
func (s *ByteSource) ReadBytes(n int) ([]byte, error) {
	if n < 0 || s.pos+n > len(s.data) {
		return nil, ErrUnexpectedEof
	}
	b := make([]byte, n)
	copy(b, s.data[s.pos:s.pos+n])
	s.pos += n
	return b, nil
}

// ReadASCII returns the next n bytes decoded as an ASCII string.
func (s *ByteSource) ReadASCII(n int) (string, error) {
	b, err := s.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Remaining reports how many bytes are left unread.
func (s *ByteSource) Remaining() int {
	return len(s.data) - s.pos
}
