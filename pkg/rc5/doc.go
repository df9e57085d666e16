// Package rc5 implements the RC5-32 block cipher with a variable-length key and
// a caller-chosen number of rounds.
//
// The package exposes the raw block primitive only. Modes of operation,
// padding, authentication and key derivation are left to the caller.
//
// # Usage
//
// Expand the key once and reuse the Cipher for any number of blocks:
//
//	c, err := rc5.New([]byte("my secret key"), 12)
//	if err != nil {
//	    return err
//	}
//
//	blk := rc5.Block{'t', 'e', 's', 't', 't', 'e', 's', 't'}
//	c.EncryptBlock(&blk)
//	c.DecryptBlock(&blk) // blk holds "testtest" again
//
// A Block is a fixed [8]byte, read as two little-endian 32-bit words. The
// Cipher also satisfies crypto/cipher.Block, so the standard library's modes
// can be layered on top of it:
//
//	var _ cipher.Block = c
//
// # Errors
//
// Construction fails with an *Error wrapping ErrInvalidParameter when the
// round count is zero or the key is empty:
//
//	if _, err := rc5.New(nil, 12); errors.Is(err, rc5.ErrInvalidParameter) {
//	    // supply a non-empty key
//	}
//
// Block transforms never fail.
//
// # Concurrency
//
// A Cipher is immutable once New returns. It may be shared by any number of
// goroutines transforming independent blocks without additional locking.
//
// # Security Considerations
//
//   - RC5 is a legacy design. Prefer AES for new protocols.
//   - The implementation is not constant time. Rotation amounts are data
//     dependent by construction.
//   - New does not retain the key. Callers that want the key buffer wiped
//     should call ZeroizeBytes once construction succeeds.
package rc5
