// Package chaumpedersen implements the Chaum-Pedersen sigma protocol: an
// interactive zero-knowledge proof that the prover knows an exponent x
// with y1 = g^x and y2 = h^x in a prime-order group, without revealing x.
//
// A round consists of a commitment (r1, r2) built from a fresh random
// nonce k, a uniformly random verifier challenge c, and the prover's
// response s = k - c*x mod q. The verifier accepts when
//
//	r1 == g^s * y1^c mod p  and  r2 == h^s * y2^c mod p.
//
// All functions are pure and safe for concurrent use; none of them retain
// their arguments.
package chaumpedersen

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
)

// RandomExponent samples a uniform value in [0, q) from crypto/rand. It
// serves both the prover's nonce k and, via Challenge, the verifier's c.
func RandomExponent(params *Params) (*big.Int, error) {
	k, err := rand.Int(rand.Reader, params.Q)
	if err != nil {
		return nil, fmt.Errorf("chaumpedersen: sampling exponent: %w", err)
	}
	return k, nil
}

// Challenge samples the verifier's challenge uniformly from [0, q).
// Challenges must never be reused across rounds.
func Challenge(params *Params) (*big.Int, error) {
	c, err := RandomExponent(params)
	if err != nil {
		return nil, fmt.Errorf("chaumpedersen: sampling challenge: %w", err)
	}
	return c, nil
}

// Commit raises both generators to the same exponent: g^k mod p and
// h^k mod p. With the long-term secret as exponent it yields the public
// registration pair (y1, y2); with a fresh nonce it yields the
// per-round commitment (r1, r2).
func Commit(params *Params, k *big.Int) (r1, r2 *big.Int) {
	r1 = new(big.Int).Exp(params.G, k, params.P)
	r2 = new(big.Int).Exp(params.H, k, params.P)
	return r1, r2
}

// Respond computes the prover's response s = (k - c*x) mod q, reduced to
// the canonical non-negative representative.
func Respond(params *Params, k, c, x *big.Int) *big.Int {
	s := new(big.Int).Mul(c, x)
	s.Sub(k, s)
	// big.Int.Mod is Euclidean, so s lands in [0, q) even when k < c*x.
	return s.Mod(s, params.Q)
}

// Verify reports whether (r1, r2, s) is an accepting transcript for the
// public values (y1, y2) under challenge c. It recomputes both group
// equations and compares in constant time; it returns false, never an
// error, so callers cannot leak which side failed.
func Verify(params *Params, y1, y2, r1, r2, c, s *big.Int) bool {
	v1 := new(big.Int).Exp(params.G, s, params.P)
	v1.Mul(v1, new(big.Int).Exp(y1, c, params.P))
	v1.Mod(v1, params.P)

	v2 := new(big.Int).Exp(params.H, s, params.P)
	v2.Mul(v2, new(big.Int).Exp(y2, c, params.P))
	v2.Mod(v2, params.P)

	ok1 := subtle.ConstantTimeCompare(v1.Bytes(), r1.Bytes())
	ok2 := subtle.ConstantTimeCompare(v2.Bytes(), r2.Bytes())
	return ok1&ok2 == 1
}
