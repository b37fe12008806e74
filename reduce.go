package f4

// Reduce performs single-polynomial reduction of f against g: while f is
// nonzero and its leading term is divisible by the leading term of some
// element of g, f is replaced by f - g_i*(head(f)/head(g_i)). Reduce stops
// as soon as no element of g divides the (possibly new) leading term of f;
// it does not reduce trailing terms. Reduce mutates f in place and returns
// it.
func Reduce[K Field[K]](f *Polynomial[K], g []*Polynomial[K]) *Polynomial[K] {
	for !f.IsZero() {
		lt := f.LeadingTerm()
		gi, quo, ok := findReductor(lt, g)
		if !ok {
			return f
		}
		subtractMultiple(f, quo, gi)
	}
	return f
}

// ReduceToZero fully reduces f against g, sweeping trailing terms as well as
// the leading term (the standard multivariate division algorithm), and
// reports whether f reduced to the zero polynomial. On return f holds the
// remainder of the division.
func ReduceToZero[K Field[K]](f *Polynomial[K], g []*Polynomial[K]) bool {
	remainder := NewPolynomial(f.field, f.order)
	for !f.IsZero() {
		lt := f.LeadingTerm()
		gi, quo, ok := findReductor(lt, g)
		if !ok {
			// lt is irreducible against g; move it to the remainder and
			// keep sweeping the rest of f.
			remainder.addTerm(1, lt)
			f.addTerm(-1, lt)
			continue
		}
		subtractMultiple(f, quo, gi)
	}
	f.Set(remainder)
	return f.IsZero()
}

// findReductor returns the first g_i (in iteration order) whose leading term
// divides lt.Term, along with the monomial quotient lt/head(g_i).
func findReductor[K Field[K]](lt Monomial[K], g []*Polynomial[K]) (*Polynomial[K], Monomial[K], bool) {
	for _, gi := range g {
		if gi == nil || gi.IsZero() {
			continue
		}
		ltg := gi.LeadingTerm()
		if quo, ok := lt.Quo(ltg); ok {
			return gi, quo, true
		}
	}
	return nil, Monomial[K]{}, false
}

// subtractMultiple replaces f with f - quo*gi.
func subtractMultiple[K Field[K]](f *Polynomial[K], quo Monomial[K], gi *Polynomial[K]) {
	multiple := NewPolynomial(f.field, f.order).MulMonomial(gi, quo)
	f.Sub(f, multiple)
}
