package chaumpedersen

import (
	"errors"
	"fmt"
	"math/big"
)

// Params describes the cyclic group the protocol runs in: the subgroup of
// Z_p^* of prime order q, with two independent generators g and h. Both
// sides of the protocol must use the same parameters; they are fixed at
// startup and never mutated.
type Params struct {
	P *big.Int // prime modulus
	Q *big.Int // prime order of the subgroup generated by G and H
	G *big.Int // first generator
	H *big.Int // second generator
}

// MinGroupBits is the smallest modulus size the server accepts at
// startup. The production group sits just below 2^255.
const MinGroupBits = 255

// primalityRounds keeps ProbablyPrime's error probability below 2^-128.
const primalityRounds = 64

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Default returns the production group shared by client and server: a
// safe prime p with q = (p-1)/2 and the quadratic residues 4 and 9 as
// generators of the order-q subgroup.
func Default() *Params {
	p, _ := new(big.Int).SetString("42765216643065397982265462252423826320512529931694366715111734768493812630447", 10)
	q, _ := new(big.Int).SetString("21382608321532698991132731126211913160256264965847183357555867384246906315223", 10)
	return &Params{P: p, Q: q, G: big.NewInt(4), H: big.NewInt(9)}
}

// Validate checks the group invariants: p and q prime, q dividing p-1,
// and both generators of multiplicative order exactly q modulo p.
// A server must refuse to start when this fails.
func (p *Params) Validate() error {
	if p == nil || p.P == nil || p.Q == nil || p.G == nil || p.H == nil {
		return errors.New("chaumpedersen: incomplete group parameters")
	}
	if !p.P.ProbablyPrime(primalityRounds) {
		return errors.New("chaumpedersen: modulus p is not prime")
	}
	if !p.Q.ProbablyPrime(primalityRounds) {
		return errors.New("chaumpedersen: subgroup order q is not prime")
	}

	pm1 := new(big.Int).Sub(p.P, one)
	if new(big.Int).Mod(pm1, p.Q).Sign() != 0 {
		return errors.New("chaumpedersen: q does not divide p-1")
	}

	if err := p.validateGenerator("g", p.G); err != nil {
		return err
	}
	if err := p.validateGenerator("h", p.H); err != nil {
		return err
	}
	if p.G.Cmp(p.H) == 0 {
		return errors.New("chaumpedersen: generators g and h must be distinct")
	}
	return nil
}

func (p *Params) validateGenerator(name string, gen *big.Int) error {
	if gen.Cmp(two) < 0 || gen.Cmp(p.P) >= 0 {
		return fmt.Errorf("chaumpedersen: generator %s out of range", name)
	}
	// gen^q == 1 and gen != 1 together pin the order to exactly q,
	// because q is prime.
	if new(big.Int).Exp(gen, p.Q, p.P).Cmp(one) != 0 {
		return fmt.Errorf("chaumpedersen: generator %s does not have order q", name)
	}
	return nil
}

// ByteSize returns the width of a group element on the wire: the number
// of bytes needed to hold values up to p.
func (p *Params) ByteSize() int {
	return (p.P.BitLen() + 7) / 8
}
