package bitio

import "testing"

func TestReader_SingleByte(t *testing.T) {
	// 0xA5 = 1010_0101. LSB-first: low nibble comes out first.
	data := []byte{0xA5}
	r := NewReader(data)

	v, ok := r.Next(4)
	if !ok || v != 0x5 {
		t.Fatalf("Next(4) = %d,%v want 0x5,true", v, ok)
	}
	v, ok = r.Next(4)
	if !ok || v != 0xA {
		t.Fatalf("Next(4) = %d,%v want 0xA,true", v, ok)
	}
}

func TestReader_CrossesByteBoundary(t *testing.T) {
	// Matches the worked example from the reference LZW bit reader:
	// codes of width 3 read back-to-back across byte boundaries.
	data := []byte{
		0b10000100,
		0b10001111,
		0b10101001,
		0b11001011,
		0b11101101,
		0b00001111,
		0b10100011,
	}
	want := []uint16{4, 0, 6, 7, 0, 3, 2, 5}
	r := NewReader(data)
	for i, w := range want {
		got, ok := r.Next(3)
		if !ok {
			t.Fatalf("Next(3) #%d: unexpected eof", i)
		}
		if got != w {
			t.Fatalf("Next(3) #%d = %d, want %d", i, got, w)
		}
	}
}

func TestReader_ExhaustionLeavesPositionUnchanged(t *testing.T) {
	data := []byte{0xFF}
	r := NewReader(data)

	if _, ok := r.Next(8); !ok {
		t.Fatal("first Next(8) should succeed")
	}
	for i := 0; i < 3; i++ {
		if _, ok := r.Next(1); ok {
			t.Fatalf("Next(1) after exhaustion should fail (attempt %d)", i)
		}
	}
}

func TestReader_PartitionInvariance(t *testing.T) {
	data := []byte{0x5A, 0xC3, 0x0F, 0x99, 0x42}

	// Reading the whole buffer 1 bit at a time must match reading it in
	// larger width chunks that sum to the same bit positions.
	bits := make([]uint16, 0, len(data)*8)
	bitReader := NewReader(data)
	for {
		v, ok := bitReader.Next(1)
		if !ok {
			break
		}
		bits = append(bits, v)
	}

	widths := []int{3, 5, 2, 7, 4, 1, 8, 2, 8}
	chunked := NewReader(data)
	pos := 0
	for _, w := range widths {
		v, ok := chunked.Next(w)
		if !ok {
			break
		}
		var want uint16
		for i := 0; i < w; i++ {
			want |= bits[pos+i] << uint(i)
		}
		if v != want {
			t.Fatalf("chunk width %d at bit %d = %d, want %d", w, pos, v, want)
		}
		pos += w
	}
}

func TestReader_MaxWidth(t *testing.T) {
	data := []byte{0xFF, 0x0F}
	r := NewReader(data)
	v, ok := r.Next(12)
	if !ok || v != 0x0FFF {
		t.Fatalf("Next(12) = %d,%v want 0xFFF,true", v, ok)
	}
}
