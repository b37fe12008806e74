// Package field implements concrete coefficient fields for use with the
// root f4 package: the prime field of residues modulo a fixed prime p.
package field

import (
	"math/big"

	"github.com/pkg/errors"
)

// A Modulus is a prime field GF(p), constructed once and shared by every
// element reduced against it.
type Modulus struct {
	p *big.Int
}

// NewPrimeField returns the prime field of residues modulo p. NewPrimeField
// returns an error if p is not prime: Z/nZ is only a field when n is prime,
// and the arithmetic below (in particular Inv's use of ModInverse) silently
// produces meaningless results for a composite modulus instead of failing.
func NewPrimeField(p *big.Int) (*Modulus, error) {
	if p.Sign() <= 0 {
		return nil, errors.Errorf("field: modulus %s is not positive", p)
	}
	if !p.ProbablyPrime(20) {
		return nil, errors.Errorf("field: modulus %s is not prime", p)
	}
	return &Modulus{p: new(big.Int).Set(p)}, nil
}

// NewPrimeFieldInt64 is a convenience wrapper around NewPrimeField for
// small, literal moduli.
func NewPrimeFieldInt64(p int64) (*Modulus, error) {
	return NewPrimeField(big.NewInt(p))
}

// Element returns the reduction of v modulo the field's prime.
func (m *Modulus) Element(v *big.Int) *Elem {
	r := new(big.Int).Mod(v, m.p)
	return &Elem{m: m, v: r}
}

// ElementInt64 is a convenience wrapper around Element for small, literal
// values.
func (m *Modulus) ElementInt64(v int64) *Elem {
	return m.Element(big.NewInt(v))
}

// An Elem is an element of a prime field GF(p), represented by its
// canonical residue in [0, p).
type Elem struct {
	m *Modulus
	v *big.Int
}

// NewZero returns the additive identity 0.
func (x *Elem) NewZero() *Elem {
	return &Elem{m: x.m, v: big.NewInt(0)}
}

// NewOne returns the multiplicative identity 1.
func (x *Elem) NewOne() *Elem {
	return &Elem{m: x.m, v: big.NewInt(1)}
}

// Equal reports whether x and y are equal.
func (x *Elem) Equal(y *Elem) bool {
	return x.v.Cmp(y.v) == 0
}

// Add sets z to the sum x+y and returns z.
func (z *Elem) Add(x, y *Elem) *Elem {
	z.m = x.m
	z.v = new(big.Int).Add(x.v, y.v)
	z.v.Mod(z.v, z.m.p)
	return z
}

// Sub sets z to the difference x-y and returns z.
func (z *Elem) Sub(x, y *Elem) *Elem {
	z.m = x.m
	z.v = new(big.Int).Sub(x.v, y.v)
	z.v.Mod(z.v, z.m.p)
	return z
}

// Mul sets z to the product x*y and returns z.
func (z *Elem) Mul(x, y *Elem) *Elem {
	z.m = x.m
	z.v = new(big.Int).Mul(x.v, y.v)
	z.v.Mod(z.v, z.m.p)
	return z
}

// Div sets z to the quotient x/y and returns z. Div panics if y is zero.
func (z *Elem) Div(x, y *Elem) *Elem {
	inv := y.NewZero().Inv(y)
	return z.Mul(x, inv)
}

// Inv sets z to 1/x and returns z. Inv panics if x is zero.
func (z *Elem) Inv(x *Elem) *Elem {
	if x.v.Sign() == 0 {
		panic("field: division by zero")
	}
	z.m = x.m
	z.v = new(big.Int).ModInverse(x.v, x.m.p)
	return z
}

// String returns the decimal representation of x's residue.
func (x *Elem) String() string {
	return x.v.String()
}
