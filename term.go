package f4

import "cmp"

// A Term is a vector of nonnegative integer exponents, one per variable, in
// a fixed variable order. Trailing zero exponents are insignificant: the
// terms {2,1} and {2,1,0,0} denote the same monomial x0^2*x1.
type Term []uint16

// NewTerm returns a new term with the given exponents, trimmed of trailing
// zeros.
func NewTerm(exponents ...uint16) Term {
	return trim(Term(append([]uint16(nil), exponents...)))
}

func trim(t Term) Term {
	n := len(t)
	for n > 0 && t[n-1] == 0 {
		n--
	}
	return t[:n]
}

func expAt(t Term, i int) uint16 {
	if i < len(t) {
		return t[i]
	}
	return 0
}

// TermEqual reports whether x and y denote the same monomial.
func TermEqual(x, y Term) bool {
	n := max(len(x), len(y))
	for i := range n {
		if expAt(x, i) != expAt(y, i) {
			return false
		}
	}
	return true
}

// Degree returns the total degree of t, the sum of its exponents.
func Degree(t Term) int {
	var d int
	for _, e := range t {
		d += int(e)
	}
	return d
}

// Divides reports whether a divides b, that is, whether a[i] <= b[i] for
// every variable i.
func Divides(a, b Term) bool {
	n := max(len(a), len(b))
	for i := range n {
		if expAt(a, i) > expAt(b, i) {
			return false
		}
	}
	return true
}

// MulTerm returns the product a*b, the componentwise sum of exponents.
func MulTerm(a, b Term) Term {
	n := max(len(a), len(b))
	w := make(Term, n)
	for i := range n {
		w[i] = expAt(a, i) + expAt(b, i)
	}
	return trim(w)
}

// Quo returns a/b and reports whether the division is exact, that is,
// whether b divides a. If it does not, the returned term is meaningless.
func Quo(a, b Term) (Term, bool) {
	if !Divides(b, a) {
		return nil, false
	}
	n := max(len(a), len(b))
	w := make(Term, n)
	for i := range n {
		w[i] = expAt(a, i) - expAt(b, i)
	}
	return trim(w), true
}

// LCM returns the least common multiple of a and b, the componentwise
// maximum of exponents.
func LCM(a, b Term) Term {
	n := max(len(a), len(b))
	w := make(Term, n)
	for i := range n {
		w[i] = max(expAt(a, i), expAt(b, i))
	}
	return trim(w)
}

// Coprime reports whether a and b have no common variable with nonzero
// exponent in both, equivalently lcm(a,b) == a*b.
func Coprime(a, b Term) bool {
	n := max(len(a), len(b))
	for i := range n {
		if expAt(a, i) != 0 && expAt(b, i) != 0 {
			return false
		}
	}
	return true
}

func cloneTerm(t Term) Term {
	w := make(Term, len(t))
	copy(w, t)
	return w
}

// termCmp is a total order on terms, comparing exponents from the first
// variable forward; it is unrelated to any monomial Order. Nothing in the
// package calls it.
func termCmp(x, y Term) int {
	n := max(len(x), len(y))
	for i := range n {
		if c := cmp.Compare(expAt(x, i), expAt(y, i)); c != 0 {
			return c
		}
	}
	return 0
}
