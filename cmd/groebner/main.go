// Command groebner runs all four completion engines against the cyclic-4
// ideal over the rationals and logs the size and timing of each resulting
// basis, as a runnable demonstration of the library.
package main

import (
	"log"
	"time"

	f4 "github.com/KaurkerDevourer/f4"
)

func cyclic4() []*f4.Polynomial[*f4.Rational] {
	one := f4.NewRational(1, 1)
	z := one.NewZero()
	r := func(n int64) *f4.Rational { return f4.NewRational(n, 1) }
	poly := func(ms ...f4.Monomial[*f4.Rational]) *f4.Polynomial[*f4.Rational] {
		return f4.NewPolynomial(z, f4.Grevlex, ms...)
	}
	m := func(c int64, exps ...uint16) f4.Monomial[*f4.Rational] {
		return f4.Monomial[*f4.Rational]{Term: f4.NewTerm(exps...), Coefficient: r(c)}
	}

	return []*f4.Polynomial[*f4.Rational]{
		poly(m(1, 1, 0, 0, 0), m(1, 0, 1, 0, 0), m(1, 0, 0, 1, 0), m(1, 0, 0, 0, 1)),
		poly(m(1, 1, 1, 0, 0), m(1, 0, 1, 1, 0), m(1, 0, 0, 1, 1), m(1, 1, 0, 0, 1)),
		poly(m(1, 1, 1, 1, 0), m(1, 0, 1, 1, 1), m(1, 1, 0, 1, 1), m(1, 1, 1, 0, 1)),
		poly(m(1, 1, 1, 1, 1), m(-1)),
	}
}

func main() {
	engines := []struct {
		name string
		run  func([]*f4.Polynomial[*f4.Rational]) []*f4.Polynomial[*f4.Rational]
	}{
		{"Plain", f4.BuchbergerPlain[*f4.Rational]},
		{"WithCriteria", f4.BuchbergerWithCriteria[*f4.Rational]},
		{"WithCriteriaRetiring", f4.BuchbergerWithCriteriaRetiring[*f4.Rational]},
		{"F4", f4.F4[*f4.Rational]},
	}

	for _, e := range engines {
		ideal := cyclic4()
		start := time.Now()
		basis := e.run(ideal)
		elapsed := time.Since(start)
		if !f4.IsGroebnerBasis(basis) {
			log.Fatalf("%s: output is not a Gröbner basis", e.name)
		}
		log.Printf("%s: basis size=%d elapsed=%s", e.name, len(basis), elapsed)
	}
}
