package chaumpedersen

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpetrovs/zkpauth/internal/common"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	params := Default()

	tests := []struct {
		name string
		v    *big.Int
	}{
		{"zero", big.NewInt(0)},
		{"one", big.NewInt(1)},
		{"q minus one", new(big.Int).Sub(params.Q, big.NewInt(1))},
		{"p minus one", new(big.Int).Sub(params.P, big.NewInt(1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeInt(EncodeInt(tt.v))
			assert.Zero(t, got.Cmp(tt.v))
		})
	}
}

func TestEncodeIntMinimal(t *testing.T) {
	assert.Empty(t, EncodeInt(big.NewInt(0)))
	assert.Equal(t, []byte{0x01}, EncodeInt(big.NewInt(1)))
	assert.Len(t, EncodeInt(new(big.Int).Sub(Default().P, big.NewInt(1))), 32)
}

func TestDecodeGroupElement(t *testing.T) {
	params := Default()

	v, err := DecodeGroupElement(params, EncodeInt(big.NewInt(9)))
	require.NoError(t, err)
	assert.Equal(t, int64(9), v.Int64())

	// Non-minimal but in-width encodings are accepted.
	padded, err := DecodeGroupElement(params, []byte{0x00, 0x09})
	require.NoError(t, err)
	assert.Equal(t, int64(9), padded.Int64())

	tests := []struct {
		name string
		b    []byte
	}{
		{"empty", nil},
		{"explicit zero", []byte{0x00}},
		{"equal to modulus", EncodeInt(params.P)},
		{"above modulus", EncodeInt(new(big.Int).Add(params.P, big.NewInt(1)))},
		{"oversized", bytes.Repeat([]byte{0xff}, 33)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeGroupElement(params, tt.b)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestDecodeScalar(t *testing.T) {
	params := Default()

	zero, err := DecodeScalar(params, nil)
	require.NoError(t, err)
	assert.Zero(t, zero.Sign())

	max := new(big.Int).Sub(params.Q, big.NewInt(1))
	v, err := DecodeScalar(params, EncodeInt(max))
	require.NoError(t, err)
	assert.Zero(t, v.Cmp(max))

	_, err = DecodeScalar(params, EncodeInt(params.Q))
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = DecodeScalar(params, bytes.Repeat([]byte{0xff}, 33))
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestDecodeRespectsGroupWidth(t *testing.T) {
	params := testParams()

	// One byte wide: two-byte inputs are rejected before range checks.
	_, err := DecodeGroupElement(params, []byte{0x00, 0x05})
	assert.ErrorIs(t, err, common.ErrValidation)
}
