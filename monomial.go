package f4

// A Monomial is a term paired with a nonzero coefficient in a field.
type Monomial[K Field[K]] struct {
	Term        Term
	Coefficient K
}

// Divides reports whether x's term divides y's term.
func (x Monomial[K]) Divides(y Monomial[K]) bool {
	return Divides(x.Term, y.Term)
}

// Mul returns the product of x and y: the term product, and the coefficient
// product in the field.
func (x Monomial[K]) Mul(y Monomial[K]) Monomial[K] {
	return Monomial[K]{Term: MulTerm(x.Term, y.Term), Coefficient: x.Coefficient.NewZero().Mul(x.Coefficient, y.Coefficient)}
}

// Quo returns the quotient of x by y and reports whether the term division
// is exact. If it is not exact, Quo returns the zero Monomial and false
// without dividing the coefficients.
func (x Monomial[K]) Quo(y Monomial[K]) (Monomial[K], bool) {
	t, ok := Quo(x.Term, y.Term)
	if !ok {
		return Monomial[K]{}, false
	}
	c := x.Coefficient.NewZero().Div(x.Coefficient, y.Coefficient)
	return Monomial[K]{Term: t, Coefficient: c}, true
}
