package bcl

import "fmt"

// ByteLen returns the number of bytes needed to store bits.
func ByteLen(bits string) int {
	return (len(bits) + 7) / 8
}

// Pack stores a bit-string most significant bit first. The last byte is
// padded with zero bits.
func Pack(bits string) ([]byte, error) {
	out := make([]byte, ByteLen(bits))
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
		case '1':
			out[i/8] |= 0x80 >> (i % 8)
		default:
			return nil, fmt.Errorf("bcl: invalid bit %q at %d", bits[i], i)
		}
	}
	return out, nil
}
