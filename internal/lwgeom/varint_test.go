package lwgeom

import "testing"

func TestUvarintRoundTrip(t *testing.T) {
	tests := []uint64{0, 1, 127, 128, 300, 16384, 1 << 32, 1<<64 - 1}
	for _, v := range tests {
		buf, n := AppendUvarint(nil, v)
		if n != len(buf) {
			t.Fatalf("AppendUvarint(%d): reported %d bytes, got %d", v, n, len(buf))
		}
		got, consumed, err := DecodeUvarint(buf)
		if err != nil {
			t.Fatalf("DecodeUvarint(%d): %v", v, err)
		}
		if got != v || consumed != n {
			t.Errorf("round trip for %d: got %d (consumed %d, want %d)", v, got, consumed, n)
		}
	}
}

func TestVarintRoundTrip(t *testing.T) {
	tests := []int64{0, 1, -1, 300, -300, 1 << 40, -(1 << 40)}
	for _, v := range tests {
		buf, n := AppendVarint(nil, v)
		got, consumed, err := DecodeVarint(buf)
		if err != nil {
			t.Fatalf("DecodeVarint(%d): %v", v, err)
		}
		if got != v || consumed != n {
			t.Errorf("round trip for %d: got %d", v, got)
		}
	}
}

func TestVarintEncodingOf300(t *testing.T) {
	// 300 as an unsigned varint is two bytes: 0xAC 0x02.
	buf, n := AppendUvarint(nil, 300)
	if n != 2 || buf[0] != 0xAC || buf[1] != 0x02 {
		t.Errorf("AppendUvarint(300) = % x, want ac 02", buf)
	}
}

func TestZigZagSigned1(t *testing.T) {
	// Signed 1 zig-zags to unsigned 2.
	if got := zigzagEncode64(1); got != 2 {
		t.Errorf("zigzagEncode64(1) = %d, want 2", got)
	}
	if got := zigzagEncode64(-1); got != 1 {
		t.Errorf("zigzagEncode64(-1) = %d, want 1", got)
	}
}

func TestDecodeUvarintOverrun(t *testing.T) {
	buf := make([]byte, 11)
	for i := range buf {
		buf[i] = 0x80
	}
	if _, _, err := DecodeUvarint(buf); err == nil {
		t.Error("expected an error decoding an 11-byte all-continuation-bit buffer")
	}
}

func TestDecodeUvarintShortBuffer(t *testing.T) {
	buf := []byte{0x80, 0x80}
	if _, _, err := DecodeUvarint(buf); err == nil {
		t.Error("expected an error decoding a buffer that ends mid-group")
	}
}

func TestZigZagNarrowWidths(t *testing.T) {
	if ZigZagDecode8(ZigZagEncode8(-5)) != -5 {
		t.Error("8-bit zig-zag round trip failed for -5")
	}
	if ZigZagDecode32(ZigZagEncode32(-70000)) != -70000 {
		t.Error("32-bit zig-zag round trip failed for -70000")
	}
}
