// Package cryptox derives protocol secrets from passwords and wipes
// sensitive material once it is no longer needed.
package cryptox

import (
	"crypto/sha256"
	"math/big"

	"golang.org/x/crypto/argon2"
)

// saltDomain separates this key derivation from any other argon2 use
// of the same password.
const saltDomain = "zkpauth/v1"

// DeriveSecret maps a (username, password) pair to an exponent in [0, q).
// The same inputs always produce the same secret, so the client can
// re-derive x at login without storing anything. The caller owns the
// password buffer and should wipe it afterwards.
func DeriveSecret(username string, password []byte, q *big.Int) *big.Int {
	salt := sha256.Sum256([]byte(saltDomain + "|" + username))
	key := argon2.IDKey(password, salt[:], 1, 64*1024, 4, 32)
	defer WipeBytes(key)

	x := new(big.Int).SetBytes(key)
	return x.Mod(x, q)
}

// WipeBytes overwrites b with zeros.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// WipeInt overwrites the absolute value of v with zeros and resets it.
// The big.Int remains usable afterwards and equals zero.
func WipeInt(v *big.Int) {
	if v == nil {
		return
	}
	limbs := v.Bits()
	for i := range limbs {
		limbs[i] = 0
	}
	v.SetInt64(0)
}
