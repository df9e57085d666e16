package rc5

import (
	"crypto/cipher"
	"encoding/binary"
	"math/bits"
)

// BlockSize is the RC5-32 block size in bytes.
const BlockSize = 8

// Block is a single RC5-32 block. Bytes 0-3 hold word A and bytes 4-7 hold
// word B, both little-endian.
type Block [BlockSize]byte

// A Cipher is an instance of RC5-32 using a particular key and round count.
// The round-key table is never modified after New returns.
type Cipher struct {
	rounds    uint32
	roundKeys []uint32
}

var _ cipher.Block = (*Cipher)(nil)

// New expands key into a Cipher that runs the given number of rounds. It
// returns an error wrapping ErrInvalidParameter if rounds is zero or key is
// empty. The key slice is not retained.
func New(key []byte, rounds uint32) (*Cipher, error) {
	if rounds == 0 {
		return nil, invalidParameter("New", "round count must be positive")
	}
	if len(key) == 0 {
		return nil, invalidParameter("New", "key must not be empty")
	}

	return &Cipher{
		rounds:    rounds,
		roundKeys: expandKey(key, rounds),
	}, nil
}

// Rounds returns the number of rounds the Cipher runs.
func (c *Cipher) Rounds() uint32 {
	return c.rounds
}

// RoundKeys returns a copy of the expanded key table. The table holds
// 2*(Rounds()+1) words.
func (c *Cipher) RoundKeys() []uint32 {
	out := make([]uint32, len(c.roundKeys))
	copy(out, c.roundKeys)
	return out
}

// BlockSize returns BlockSize. It is part of the cipher.Block interface.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// EncryptBlock encrypts blk in place.
func (c *Cipher) EncryptBlock(blk *Block) {
	s := c.roundKeys

	a := binary.LittleEndian.Uint32(blk[0:4]) + s[0]
	b := binary.LittleEndian.Uint32(blk[4:8]) + s[1]

	for r := 1; r <= int(c.rounds); r++ {
		a = bits.RotateLeft32(a^b, int(b&31)) + s[2*r]
		b = bits.RotateLeft32(b^a, int(a&31)) + s[2*r+1]
	}

	binary.LittleEndian.PutUint32(blk[0:4], a)
	binary.LittleEndian.PutUint32(blk[4:8], b)
}

// DecryptBlock decrypts blk in place. It undoes EncryptBlock for the same
// Cipher.
func (c *Cipher) DecryptBlock(blk *Block) {
	s := c.roundKeys

	a := binary.LittleEndian.Uint32(blk[0:4])
	b := binary.LittleEndian.Uint32(blk[4:8])

	for r := int(c.rounds); r >= 1; r-- {
		b = bits.RotateLeft32(b-s[2*r+1], -int(a&31)) ^ a
		a = bits.RotateLeft32(a-s[2*r], -int(b&31)) ^ b
	}

	b -= s[1]
	a -= s[0]

	binary.LittleEndian.PutUint32(blk[0:4], a)
	binary.LittleEndian.PutUint32(blk[4:8], b)
}

// Encrypt encrypts the first block of src into dst. dst and src may overlap
// entirely. Like other cipher.Block implementations it panics if either
// slice is shorter than BlockSize.
func (c *Cipher) Encrypt(dst, src []byte) {
	blk := loadBlock(dst, src)
	c.EncryptBlock(&blk)
	copy(dst, blk[:])
}

// Decrypt decrypts the first block of src into dst. dst and src may overlap
// entirely.
func (c *Cipher) Decrypt(dst, src []byte) {
	blk := loadBlock(dst, src)
	c.DecryptBlock(&blk)
	copy(dst, blk[:])
}

func loadBlock(dst, src []byte) Block {
	if len(src) < BlockSize {
		panic("rc5: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rc5: output not full block")
	}
	var blk Block
	copy(blk[:], src)
	return blk
}
