// Package f4 implements algorithms in commutative algebraic geometry.
// In particular, this package provides functions to compute [Gröbner bases]
// of ideals of multivariate polynomials using the classical Buchberger
// algorithm, Buchberger's algorithm accelerated by the product and chain
// criteria, and the matrix-based F4 completion procedure.
//
// [Gröbner bases]: https://en.wikipedia.org/wiki/Gr%C3%B6bner_basis
package f4

import "math/big"

// A Field is an element whose addition and multiplication operations satisfy
// the [field] axioms.
//
// [field]: https://en.wikipedia.org/wiki/Field_(mathematics)
type Field[T any] interface {
	// NewZero returns the additive identity of the field.
	NewZero() T
	// NewOne returns the multiplicative identity of the field.
	NewOne() T

	// Equal reports whether x and y are equal, where x is the method receiver.
	Equal(y T) bool
	// Add sets z to the sum x+y and returns z, where z is the method receiver.
	Add(x, y T) T
	// Sub sets z to the difference x-y and returns z, where z is the method receiver.
	Sub(x, y T) T
	// Mul sets z to the product x*y and returns z, where z is the method receiver.
	Mul(x, y T) T
	// Div sets z to the quotient x/y and returns z, where z is the method receiver.
	Div(x, y T) T
	// Inv sets z to 1/x and returns z, where z is the method receiver.
	Inv(x T) T

	// String returns the string representation.
	String() string
}

// A Rational represents an element of the field of rational numbers, stored
// as an arbitrary-precision fraction in canonical form (denominator positive,
// numerator and denominator coprime).
type Rational struct{ *big.Rat }

// NewRational creates a new [Rational] with numerator a and denominator b.
// NewRational panics if b is zero.
func NewRational(a, b int64) *Rational {
	if b == 0 {
		panic("f4: zero denominator")
	}
	return &Rational{big.NewRat(a, b)}
}

// NewZero returns the additive identity 0.
func (x *Rational) NewZero() *Rational {
	return &Rational{big.NewRat(0, 1)}
}

// NewOne returns the multiplicative identity 1.
func (x *Rational) NewOne() *Rational {
	return &Rational{big.NewRat(1, 1)}
}

// Add sets z to the sum x+y and returns z.
func (z *Rational) Add(x, y *Rational) *Rational { return &Rational{z.ratOf(z).Add(x.Rat, y.Rat)} }

// Sub sets z to the difference x-y and returns z.
func (z *Rational) Sub(x, y *Rational) *Rational { return &Rational{z.ratOf(z).Sub(x.Rat, y.Rat)} }

// Mul sets z to the product x*y and returns z.
func (z *Rational) Mul(x, y *Rational) *Rational { return &Rational{z.ratOf(z).Mul(x.Rat, y.Rat)} }

// Div sets z to the quotient x/y and returns z. Div panics if y is zero.
func (z *Rational) Div(x, y *Rational) *Rational {
	if y.Sign() == 0 {
		panic("f4: division by zero")
	}
	return &Rational{z.ratOf(z).Quo(x.Rat, y.Rat)}
}

// Inv sets z to 1/x and returns z. Inv panics if x is zero.
func (z *Rational) Inv(x *Rational) *Rational {
	if x.Sign() == 0 {
		panic("f4: division by zero")
	}
	return &Rational{z.ratOf(z).Inv(x.Rat)}
}

// Equal reports whether x and y are equal.
func (x *Rational) Equal(y *Rational) bool {
	return x.Rat.Cmp(y.Rat) == 0
}

// String returns a string representation of x in the form "a/b" if b != 1,
// and in the form "a" if b == 1.
func (x *Rational) String() string {
	return x.RatString()
}

// ratOf returns z's underlying *big.Rat, allocating one if z has none yet.
func (z *Rational) ratOf(_ *Rational) *big.Rat {
	if z.Rat == nil {
		z.Rat = new(big.Rat)
	}
	return z.Rat
}
