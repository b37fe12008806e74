package f4

import (
	"testing"

	"github.com/KaurkerDevourer/f4/field"
)

// engines lists all four completion engines under test, keyed by name so
// failures identify which engine misbehaved.
func engines[K Field[K]]() map[string]func([]*Polynomial[K]) []*Polynomial[K] {
	return map[string]func([]*Polynomial[K]) []*Polynomial[K]{
		"plain":            BuchbergerPlain[K],
		"criteria":         BuchbergerWithCriteria[K],
		"criteria-retired": BuchbergerWithCriteriaRetiring[K],
		"f4":               F4[K],
	}
}

// cyclic4 returns the cyclic-4 generators over a field constructed by one.
func cyclic4[K Field[K]](one K) []*Polynomial[K] {
	z := one.NewZero()
	mk := func(ms ...Monomial[K]) *Polynomial[K] { return NewPolynomial(z, Grevlex, ms...) }
	c := func(v int64) K {
		if v == 1 {
			return one.NewOne()
		}
		return scaleOne(one, v)
	}

	f1 := mk(
		Monomial[K]{Term: NewTerm(1, 0, 0, 0), Coefficient: c(1)},
		Monomial[K]{Term: NewTerm(0, 1, 0, 0), Coefficient: c(1)},
		Monomial[K]{Term: NewTerm(0, 0, 1, 0), Coefficient: c(1)},
		Monomial[K]{Term: NewTerm(0, 0, 0, 1), Coefficient: c(1)},
	)
	f2 := mk(
		Monomial[K]{Term: NewTerm(1, 1, 0, 0), Coefficient: c(1)},
		Monomial[K]{Term: NewTerm(0, 1, 1, 0), Coefficient: c(1)},
		Monomial[K]{Term: NewTerm(0, 0, 1, 1), Coefficient: c(1)},
		Monomial[K]{Term: NewTerm(1, 0, 0, 1), Coefficient: c(1)},
	)
	f3 := mk(
		Monomial[K]{Term: NewTerm(1, 1, 1, 0), Coefficient: c(1)},
		Monomial[K]{Term: NewTerm(0, 1, 1, 1), Coefficient: c(1)},
		Monomial[K]{Term: NewTerm(1, 0, 1, 1), Coefficient: c(1)},
		Monomial[K]{Term: NewTerm(1, 1, 0, 1), Coefficient: c(1)},
	)
	f4 := mk(
		Monomial[K]{Term: NewTerm(1, 1, 1, 1), Coefficient: c(1)},
		Monomial[K]{Term: NewTerm(), Coefficient: c(-1)},
	)
	return []*Polynomial[K]{f1, f2, f3, f4}
}

// scaleOne returns the field element v*one, built by repeated addition so it
// works identically for Rational and prime-field coefficients.
func scaleOne[K Field[K]](one K, v int64) K {
	neg := v < 0
	if neg {
		v = -v
	}
	acc := one.NewZero()
	for i := int64(0); i < v; i++ {
		acc = acc.NewZero().Add(acc, one)
	}
	if neg {
		acc = acc.NewZero().Sub(one.NewZero(), acc)
	}
	return acc
}

func TestCyclic4Rationals(t *testing.T) {
	one := NewRational(1, 1)
	f := cyclic4[*Rational](one)
	for name, engine := range engines[*Rational]() {
		t.Run(name, func(t *testing.T) {
			g := engine(f)
			if len(g) == 0 {
				t.Fatal("basis is empty")
			}
			if !IsGroebnerBasis(g) {
				t.Error("output is not a Gröbner basis")
			}
		})
	}
}

func TestCyclic4Mod31(t *testing.T) {
	k := mustField(t, 31)
	one := k.ElementInt64(1)
	f := cyclic4[*field.Elem](one)
	for name, engine := range engines[*field.Elem]() {
		t.Run(name, func(t *testing.T) {
			g := engine(f)
			if len(g) == 0 {
				t.Fatal("basis is empty")
			}
			if !IsGroebnerBasis(g) {
				t.Error("output is not a Gröbner basis")
			}
		})
	}
}

func TestKatsura4Mod31(t *testing.T) {
	k := mustField(t, 31)
	one := k.ElementInt64(1)
	z := one.NewZero()
	mk := func(ms ...Monomial[*field.Elem]) *Polynomial[*field.Elem] { return NewPolynomial(z, Grevlex, ms...) }

	// a^2 - a + 2b^2 + 2c^2 + 2d^2
	f1 := mk(
		Monomial[*field.Elem]{Term: NewTerm(2, 0, 0, 0), Coefficient: k.ElementInt64(1)},
		Monomial[*field.Elem]{Term: NewTerm(1, 0, 0, 0), Coefficient: k.ElementInt64(-1)},
		Monomial[*field.Elem]{Term: NewTerm(0, 2, 0, 0), Coefficient: k.ElementInt64(2)},
		Monomial[*field.Elem]{Term: NewTerm(0, 0, 2, 0), Coefficient: k.ElementInt64(2)},
		Monomial[*field.Elem]{Term: NewTerm(0, 0, 0, 2), Coefficient: k.ElementInt64(2)},
	)
	// 2ab + 2bc - b + 2cd
	f2 := mk(
		Monomial[*field.Elem]{Term: NewTerm(1, 1, 0, 0), Coefficient: k.ElementInt64(2)},
		Monomial[*field.Elem]{Term: NewTerm(0, 1, 1, 0), Coefficient: k.ElementInt64(2)},
		Monomial[*field.Elem]{Term: NewTerm(0, 1, 0, 0), Coefficient: k.ElementInt64(-1)},
		Monomial[*field.Elem]{Term: NewTerm(0, 0, 1, 1), Coefficient: k.ElementInt64(2)},
	)
	// 2ac + b^2 + 2bd - c
	f3 := mk(
		Monomial[*field.Elem]{Term: NewTerm(1, 0, 1, 0), Coefficient: k.ElementInt64(2)},
		Monomial[*field.Elem]{Term: NewTerm(0, 2, 0, 0), Coefficient: k.ElementInt64(1)},
		Monomial[*field.Elem]{Term: NewTerm(0, 1, 0, 1), Coefficient: k.ElementInt64(2)},
		Monomial[*field.Elem]{Term: NewTerm(0, 0, 1, 0), Coefficient: k.ElementInt64(-1)},
	)
	// a + 2b + 2c + 2d - 1
	f4 := mk(
		Monomial[*field.Elem]{Term: NewTerm(1, 0, 0, 0), Coefficient: k.ElementInt64(1)},
		Monomial[*field.Elem]{Term: NewTerm(0, 1, 0, 0), Coefficient: k.ElementInt64(2)},
		Monomial[*field.Elem]{Term: NewTerm(0, 0, 1, 0), Coefficient: k.ElementInt64(2)},
		Monomial[*field.Elem]{Term: NewTerm(0, 0, 0, 1), Coefficient: k.ElementInt64(2)},
		Monomial[*field.Elem]{Term: NewTerm(), Coefficient: k.ElementInt64(-1)},
	)
	f := []*Polynomial[*field.Elem]{f1, f2, f3, f4}

	for name, engine := range engines[*field.Elem]() {
		t.Run(name, func(t *testing.T) {
			g := engine(f)
			if len(g) == 0 {
				t.Fatal("basis is empty")
			}
			if !IsGroebnerBasis(g) {
				t.Error("output is not a Gröbner basis")
			}
		})
	}
}

func TestSym3_3Mod31(t *testing.T) {
	k := mustField(t, 31)
	one := k.ElementInt64(1)
	z := one.NewZero()
	mk := func(ms ...Monomial[*field.Elem]) *Polynomial[*field.Elem] { return NewPolynomial(z, Grevlex, ms...) }

	// a + bc^3 - 2
	f1 := mk(
		Monomial[*field.Elem]{Term: NewTerm(1, 0, 0), Coefficient: k.ElementInt64(1)},
		Monomial[*field.Elem]{Term: NewTerm(0, 1, 3), Coefficient: k.ElementInt64(1)},
		Monomial[*field.Elem]{Term: NewTerm(), Coefficient: k.ElementInt64(-2)},
	)
	// a^3c + b - 2
	f2 := mk(
		Monomial[*field.Elem]{Term: NewTerm(3, 0, 1), Coefficient: k.ElementInt64(1)},
		Monomial[*field.Elem]{Term: NewTerm(0, 1, 0), Coefficient: k.ElementInt64(1)},
		Monomial[*field.Elem]{Term: NewTerm(), Coefficient: k.ElementInt64(-2)},
	)
	// ab^3 + c - 2
	f3 := mk(
		Monomial[*field.Elem]{Term: NewTerm(1, 3, 0), Coefficient: k.ElementInt64(1)},
		Monomial[*field.Elem]{Term: NewTerm(0, 0, 1), Coefficient: k.ElementInt64(1)},
		Monomial[*field.Elem]{Term: NewTerm(), Coefficient: k.ElementInt64(-2)},
	)
	f := []*Polynomial[*field.Elem]{f1, f2, f3}

	for name, engine := range engines[*field.Elem]() {
		t.Run(name, func(t *testing.T) {
			g := engine(f)
			if len(g) == 0 {
				t.Fatal("basis is empty")
			}
			if !IsGroebnerBasis(g) {
				t.Error("output is not a Gröbner basis")
			}
		})
	}
}

func TestReducedBasisOfXSquaredMinusOneAndXMinusOne(t *testing.T) {
	one := NewRational(1, 1)
	z := one.NewZero()
	xm1 := NewPolynomial(z, Grevlex,
		Monomial[*Rational]{Term: NewTerm(1), Coefficient: NewRational(1, 1)},
		Monomial[*Rational]{Term: NewTerm(), Coefficient: NewRational(-1, 1)},
	)
	x2m1 := NewPolynomial(z, Grevlex,
		Monomial[*Rational]{Term: NewTerm(2), Coefficient: NewRational(1, 1)},
		Monomial[*Rational]{Term: NewTerm(), Coefficient: NewRational(-1, 1)},
	)
	f := []*Polynomial[*Rational]{x2m1, xm1}

	for name, engine := range engines[*Rational]() {
		t.Run(name, func(t *testing.T) {
			g := Reduced(engine(f))
			if len(g) != 1 {
				t.Fatalf("len(basis) = %d, want 1", len(g))
			}
			if !g[0].Equal(xm1) {
				t.Errorf("basis = %v, want {x-1}", g)
			}
		})
	}
}

func TestEmptyIdealCompactsToEmptyBasis(t *testing.T) {
	one := NewRational(1, 1)
	z := one.NewZero()
	zero := NewPolynomial(z, Grevlex)
	f := []*Polynomial[*Rational]{zero}

	for name, engine := range engines[*Rational]() {
		t.Run(name, func(t *testing.T) {
			g := engine(f)
			if len(g) != 0 {
				t.Fatalf("basis = %v, want empty", g)
			}
		})
	}
}

// TestCrossEngineEquivalence checks that all four engines, run on the same
// input, produce bases generating the same ideal: every output polynomial
// of one engine reduces to zero against every other engine's output basis.
func TestCrossEngineEquivalence(t *testing.T) {
	k := mustField(t, 31)
	one := k.ElementInt64(1)
	f := cyclic4[*field.Elem](one)

	results := make(map[string][]*Polynomial[*field.Elem])
	for name, engine := range engines[*field.Elem]() {
		results[name] = engine(f)
	}

	for nameA, gA := range results {
		for nameB, gB := range results {
			if nameA == nameB {
				continue
			}
			for _, p := range gA {
				r := p.Clone()
				if !ReduceToZero(r, gB) {
					t.Errorf("%s basis element %v does not reduce to zero against %s basis", nameA, p, nameB)
				}
			}
		}
	}
}
