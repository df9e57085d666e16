package rc5

import "math/bits"

const (
	// Magic constants for 32-bit words: Odd((e-2)*2^32) and Odd((phi-1)*2^32).
	p32 = 0xB7E15163
	q32 = 0x9E3779B9

	wordBytes = 4
)

// roundKeyCount is the size of the expanded table, t = 2*(rounds+1).
func roundKeyCount(rounds uint32) int {
	return 2 * (int(rounds) + 1)
}

// expandKey derives the round-key table from key. key must be non-empty and
// rounds positive; New checks both before calling in.
func expandKey(key []byte, rounds uint32) []uint32 {
	t := roundKeyCount(rounds)
	s := make([]uint32, t)
	s[0] = p32
	for i := 1; i < t; i++ {
		s[i] = s[i-1] + q32
	}

	// Key words, little-endian, final word zero padded.
	l := make([]uint32, (len(key)+wordBytes-1)/wordBytes)
	defer zeroizeWords(l)
	for i, k := range key {
		l[i/wordBytes] |= uint32(k) << (8 * uint(i%wordBytes))
	}

	var a, b uint32
	i, j := 0, 0
	for n := 3 * max(t, len(l)); n > 0; n-- {
		a = bits.RotateLeft32(s[i]+a+b, 3)
		s[i] = a
		b = bits.RotateLeft32(l[j]+a+b, int((a+b)&31))
		l[j] = b
		i = (i + 1) % t
		j = (j + 1) % len(l)
	}

	return s
}
