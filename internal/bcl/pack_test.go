package bcl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestByteLen(t *testing.T) {
	tests := map[string]int{
		"":          0,
		"01":        1,
		"10100":     1,
		"11010000":  1,
		"110100001": 2,
	}
	for bits, want := range tests {
		if got := ByteLen(bits); got != want {
			t.Fatalf("ByteLen(%q) = %d, want %d", bits, got, want)
		}
	}
}

func TestPack(t *testing.T) {
	tests := []struct {
		bits string
		want []byte
	}{
		{"", []byte{}},
		{"10100", []byte{0xa0}},
		{"11010000", []byte{0xd0}},
		{"110100001", []byte{0xd0, 0x80}},
	}
	for _, tt := range tests {
		got, err := Pack(tt.bits)
		if err != nil {
			t.Fatalf("Pack(%q) returned error: %v", tt.bits, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("Pack(%q) mismatch (-want +got):\n%s", tt.bits, diff)
		}
	}
}

func TestPackRejectsNonBits(t *testing.T) {
	if _, err := Pack("0102"); err == nil {
		t.Fatalf("expected error for non-bit character")
	}
}
