// Package random provides cryptographically secure random keys.
package random

import "crypto/rand"

// Key returns n random bytes, suitable as a signing key.
func Key(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return b
}
