package config

import (
	"crypto/subtle"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// PINLength is fixed; the gate is casual on-device privacy, not an
// adversarial security boundary, so a short PIN and an unsalted digest
// are acceptable here.
const PINLength = 4

// HashPIN returns the hex BLAKE3 digest of the PIN.
func HashPIN(pin string) string {
	sum := blake3.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// VerifyPIN compares a candidate PIN against a stored digest.
func VerifyPIN(pin, storedHash string) bool {
	if storedHash == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(HashPIN(pin)), []byte(storedHash)) == 1
}
