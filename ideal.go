package f4

import "slices"

// An Ideal is a finite generating set of polynomials under a fixed
// monomial order.
type Ideal[K Field[K]] []*Polynomial[K]

// Reduced reduces a Gröbner basis to the unique reduced Gröbner basis of
// the same ideal: every element is interreduced against the others and
// scaled to be monic. Any of the four completion engines' output can be
// passed to Reduced as an optional post-step.
func Reduced[K Field[K]](basis []*Polynomial[K]) []*Polynomial[K] {
	return finishBasis(slices.Clone(basis))
}

// IsGroebnerBasis reports whether g is a Gröbner basis, that is, whether the
// S-polynomial of every pair in g reduces to zero against g. This is the
// standard checker used to validate the output of a completion engine.
func IsGroebnerBasis[K Field[K]](g []*Polynomial[K]) bool {
	for j := 1; j < len(g); j++ {
		for i := range j {
			s := SPolynomial(g[i], g[j])
			if !ReduceToZero(s, g) {
				return false
			}
		}
	}
	return true
}
