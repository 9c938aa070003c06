package chaumpedersen

import (
	"fmt"
	"math/big"

	"github.com/dpetrovs/zkpauth/internal/common"
)

// EncodeInt renders a non-negative integer as the minimal big-endian byte
// string used on the wire. Zero encodes as the empty slice.
func EncodeInt(v *big.Int) []byte {
	return v.Bytes()
}

// DecodeInt parses a minimal big-endian byte string produced by EncodeInt.
func DecodeInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// DecodeGroupElement parses b and checks that it is a usable element of
// the group: inside (0, p) and no wider than the group's byte size, so a
// peer cannot smuggle in the identity, a non-residue above p, or an
// oversized payload.
func DecodeGroupElement(params *Params, b []byte) (*big.Int, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty group element", common.ErrValidation)
	}
	if len(b) > params.ByteSize() {
		return nil, fmt.Errorf("%w: group element exceeds %d bytes", common.ErrValidation, params.ByteSize())
	}
	v := new(big.Int).SetBytes(b)
	if v.Sign() == 0 || v.Cmp(params.P) >= 0 {
		return nil, fmt.Errorf("%w: group element out of range", common.ErrValidation)
	}
	return v, nil
}

// DecodeScalar parses b as an exponent value in [0, q). The empty slice
// decodes to zero, which is a legal challenge and a legal response.
func DecodeScalar(params *Params, b []byte) (*big.Int, error) {
	if len(b) > params.ByteSize() {
		return nil, fmt.Errorf("%w: scalar exceeds %d bytes", common.ErrValidation, params.ByteSize())
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(params.Q) >= 0 {
		return nil, fmt.Errorf("%w: scalar out of range", common.ErrValidation)
	}
	return v, nil
}
