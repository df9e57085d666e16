package rc5

import (
	"crypto/subtle"

	"github.com/coinbase/cb-rc5-go/internal/kat"
)

// SelfTest runs the built-in known-answer vectors, including the RC5-32/12/16
// examples from the original RC5 paper, through New, EncryptBlock and
// DecryptBlock. It returns an error wrapping ErrSelfTest on the first vector
// that does not reproduce.
func SelfTest() error {
	for _, v := range kat.All() {
		c, err := New(v.Key, v.Rounds)
		if err != nil {
			return errorf("SelfTest", "%w: %s: %w", ErrSelfTest, v.Name, err)
		}

		var blk Block
		copy(blk[:], v.Plaintext)

		c.EncryptBlock(&blk)
		if subtle.ConstantTimeCompare(blk[:], v.Ciphertext) != 1 {
			return errorf("SelfTest", "%w: %s: ciphertext mismatch", ErrSelfTest, v.Name)
		}

		c.DecryptBlock(&blk)
		if subtle.ConstantTimeCompare(blk[:], v.Plaintext) != 1 {
			return errorf("SelfTest", "%w: %s: plaintext mismatch", ErrSelfTest, v.Name)
		}
	}
	return nil
}
