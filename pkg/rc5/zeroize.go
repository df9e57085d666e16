package rc5

import "runtime"

// ZeroizeBytes overwrites the provided slice with zeros and prevents compiler
// dead store elimination using runtime.KeepAlive.
//
// New never keeps a reference to the key, so callers may wipe their key
// buffer as soon as construction returns. Copies made elsewhere (by the
// garbage collector or by the caller) are not reached.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(buf)
}

// zeroizeWords clears the packed key words used while mixing the schedule.
func zeroizeWords(words []uint32) {
	for i := range words {
		words[i] = 0
	}
	runtime.KeepAlive(words)
}
