package chaumpedersen

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHonestProverAcceptedExhaustive(t *testing.T) {
	params := testParams()
	q := params.Q.Int64()

	for x := int64(0); x < q; x++ {
		y1, y2 := Commit(params, big.NewInt(x))
		for k := int64(0); k < q; k++ {
			r1, r2 := Commit(params, big.NewInt(k))
			for c := int64(0); c < q; c++ {
				s := Respond(params, big.NewInt(k), big.NewInt(c), big.NewInt(x))
				if !Verify(params, y1, y2, r1, r2, big.NewInt(c), s) {
					t.Fatalf("honest transcript rejected: x=%d k=%d c=%d s=%s", x, k, c, s)
				}
			}
		}
	}
}

// A prover who answers with the wrong secret can satisfy the verifier for
// at most one challenge value per commitment, so a uniformly random
// challenge defeats it with probability 1 - 1/q.
func TestWrongSecretAcceptedForAtMostOneChallenge(t *testing.T) {
	params := testParams()
	q := params.Q.Int64()

	x := big.NewInt(4)
	wrong := big.NewInt(9)
	y1, y2 := Commit(params, x)

	for k := int64(0); k < q; k++ {
		r1, r2 := Commit(params, big.NewInt(k))
		accepted := 0
		for c := int64(0); c < q; c++ {
			s := Respond(params, big.NewInt(k), big.NewInt(c), wrong)
			if Verify(params, y1, y2, r1, r2, big.NewInt(c), s) {
				accepted++
			}
		}
		assert.LessOrEqual(t, accepted, 1, "k=%d", k)
	}
}

// A pair built from two different secrets (y1 = g^a, y2 = h^b, a != b) has
// no witness; answering with either secret only survives the zero challenge.
func TestMismatchedPairRejected(t *testing.T) {
	params := testParams()
	q := params.Q.Int64()

	a := big.NewInt(3)
	y1 := new(big.Int).Exp(params.G, a, params.P)
	y2 := new(big.Int).Exp(params.H, big.NewInt(8), params.P)

	for k := int64(0); k < q; k++ {
		r1, r2 := Commit(params, big.NewInt(k))
		for c := int64(1); c < q; c++ {
			s := Respond(params, big.NewInt(k), big.NewInt(c), a)
			assert.False(t, Verify(params, y1, y2, r1, r2, big.NewInt(c), s), "k=%d c=%d", k, c)
		}
	}
}

func TestProductionGroupMismatchedPairRejected(t *testing.T) {
	params := Default()

	x1, err := RandomExponent(params)
	require.NoError(t, err)
	x2 := new(big.Int).Add(x1, big.NewInt(1))
	x2.Mod(x2, params.Q)

	y1 := new(big.Int).Exp(params.G, x1, params.P)
	y2 := new(big.Int).Exp(params.H, x2, params.P)

	k, err := RandomExponent(params)
	require.NoError(t, err)
	r1, r2 := Commit(params, k)

	c := big.NewInt(7)
	s := Respond(params, k, c, x1)
	assert.False(t, Verify(params, y1, y2, r1, r2, c, s))
}

func TestKnownTranscript(t *testing.T) {
	params := testParams()

	// Fixed round: secret 42, nonce 7, challenge 5.
	x := big.NewInt(42)
	k := big.NewInt(7)
	c := big.NewInt(5)

	y1, y2 := Commit(params, x)
	assert.Equal(t, int64(13), y1.Int64())
	assert.Equal(t, int64(2), y2.Int64())

	r1, r2 := Commit(params, k)
	assert.Equal(t, int64(8), r1.Int64())
	assert.Equal(t, int64(4), r2.Int64())

	s := Respond(params, k, c, x)
	assert.Equal(t, int64(6), s.Int64())
	assert.True(t, Verify(params, y1, y2, r1, r2, c, s))

	// A neighbouring secret produces a rejected response for the same round.
	bad := Respond(params, k, c, big.NewInt(41))
	assert.Equal(t, int64(0), bad.Int64())
	assert.False(t, Verify(params, y1, y2, r1, r2, c, bad))
}

func TestRespondStaysNonNegative(t *testing.T) {
	params := testParams()

	tests := []struct {
		name    string
		k, c, x int64
		want    int64
	}{
		{"k smaller than c*x", 1, 5, 9, 0},
		{"wraps below zero", 2, 3, 5, 9},
		{"zero nonce", 0, 10, 10, 10},
		{"zero challenge", 7, 0, 4, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Respond(params, big.NewInt(tt.k), big.NewInt(tt.c), big.NewInt(tt.x))
			assert.Equal(t, tt.want, s.Int64())
			assert.GreaterOrEqual(t, s.Sign(), 0)
			assert.Negative(t, s.Cmp(params.Q))
		})
	}
}

func TestProductionGroupRound(t *testing.T) {
	params := Default()

	x, err := RandomExponent(params)
	require.NoError(t, err)
	y1, y2 := Commit(params, x)

	k, err := RandomExponent(params)
	require.NoError(t, err)
	r1, r2 := Commit(params, k)

	c, err := Challenge(params)
	require.NoError(t, err)

	s := Respond(params, k, c, x)
	assert.True(t, Verify(params, y1, y2, r1, r2, c, s))
}

func TestProductionGroupRejectsTampering(t *testing.T) {
	params := Default()

	x, err := RandomExponent(params)
	require.NoError(t, err)
	y1, y2 := Commit(params, x)

	k, err := RandomExponent(params)
	require.NoError(t, err)
	r1, r2 := Commit(params, k)

	c, err := Challenge(params)
	require.NoError(t, err)
	s := Respond(params, k, c, x)
	require.True(t, Verify(params, y1, y2, r1, r2, c, s))

	bump := func(v, mod *big.Int) *big.Int {
		out := new(big.Int).Add(v, big.NewInt(1))
		return out.Mod(out, mod)
	}

	assert.False(t, Verify(params, bump(y1, params.P), y2, r1, r2, c, s), "tampered y1")
	assert.False(t, Verify(params, y1, bump(y2, params.P), r1, r2, c, s), "tampered y2")
	assert.False(t, Verify(params, y1, y2, bump(r1, params.P), r2, c, s), "tampered r1")
	assert.False(t, Verify(params, y1, y2, r1, bump(r2, params.P), c, s), "tampered r2")
	assert.False(t, Verify(params, y1, y2, r1, r2, bump(c, params.Q), s), "tampered c")
	assert.False(t, Verify(params, y1, y2, r1, r2, c, bump(s, params.Q)), "tampered s")
}

func TestRandomExponentWithinRange(t *testing.T) {
	params := testParams()

	seen := map[int64]bool{}
	for i := 0; i < 200; i++ {
		v, err := RandomExponent(params)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v.Sign(), 0)
		require.Negative(t, v.Cmp(params.Q))
		seen[v.Int64()] = true
	}
	// 200 draws from 11 values collapse to a single one only if the
	// sampler is broken.
	assert.Greater(t, len(seen), 1)
}

func TestChallengeWithinRange(t *testing.T) {
	params := Default()

	c, err := Challenge(params)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c.Sign(), 0)
	assert.Negative(t, c.Cmp(params.Q))
}
