package f4

import (
	"fmt"
	"iter"
	"strings"

	"github.com/jba/omap"
)

// A Polynomial is an ordered sequence of monomials, strictly descending by
// term under the active monomial order, with no zero coefficients. The
// empty polynomial represents zero.
type Polynomial[K Field[K]] struct {
	field K
	order Order
	m     *omap.MapFunc[Term, K]
}

// NewPolynomial returns a new polynomial containing the given monomials,
// normalized: duplicate terms are coalesced by coefficient addition, and
// any resulting zero coefficients are dropped.
func NewPolynomial[K Field[K]](field K, order Order, terms ...Monomial[K]) *Polynomial[K] {
	x := &Polynomial[K]{
		field: field,
		order: order,
		m:     omap.NewMapFunc[Term, K](order),
	}
	for _, term := range terms {
		x.addTerm(1, term)
	}
	return x
}

// Field returns the field of the coefficients in x.
func (x *Polynomial[K]) Field() K { return x.field }

// Order returns the monomial order employed by x.
func (x *Polynomial[K]) Order() Order { return x.order }

// Len reports the number of terms in x.
func (x *Polynomial[K]) Len() int { return x.m.Len() }

// IsZero reports whether x is the zero polynomial.
func (x *Polynomial[K]) IsZero() bool { return x.m.Len() == 0 }

// Terms iterates the monomials of x in descending order, leading term first.
func (x *Polynomial[K]) Terms() iter.Seq2[K, Term] {
	return func(yield func(K, Term) bool) {
		for w, c := range x.m.Backward() {
			if !yield(c, w) {
				return
			}
		}
	}
}

// Equal reports whether x and y have the same terms and coefficients.
func (x *Polynomial[K]) Equal(y *Polynomial[K]) bool {
	if x.m.Len() != y.m.Len() {
		return false
	}
	for i := range x.m.Len() {
		xw, xc := x.m.At(i)
		yw, yc := y.m.At(i)
		if !TermEqual(xw, yw) {
			return false
		}
		if !xc.Equal(yc) {
			return false
		}
	}
	return true
}

// Set sets z to a copy of x and returns z.
func (z *Polynomial[K]) Set(x *Polynomial[K]) *Polynomial[K] {
	if z == x {
		return z
	}
	z.field = x.field
	z.order = x.order
	z.m = omap.NewMapFunc[Term, K](z.order)
	for xw, xc := range x.m.All() {
		z.addTerm(1, Monomial[K]{Term: cloneTerm(xw), Coefficient: xc})
	}
	return z
}

// Clone returns an independent copy of x.
func (x *Polynomial[K]) Clone() *Polynomial[K] {
	return NewPolynomial(x.field, x.order).Set(x)
}

// Add sets z to the sum x+y and returns z.
func (z *Polynomial[K]) Add(x, y *Polynomial[K]) *Polynomial[K] {
	// Set z = x, handling the case where x or y is z itself.
	if y == z {
		x, y = y, x
	}
	if z != x {
		z.Set(x)
	}
	for _, term := range y.snapshot() {
		z.addTerm(1, term)
	}
	return z
}

// Sub sets z to the difference x-y and returns z.
func (z *Polynomial[K]) Sub(x, y *Polynomial[K]) *Polynomial[K] {
	ySnap := y.snapshot()
	if z != x {
		z.Set(x)
	}
	for _, term := range ySnap {
		z.addTerm(-1, term)
	}
	return z
}

// Negate sets z to -x and returns z.
func (z *Polynomial[K]) Negate(x *Polynomial[K]) *Polynomial[K] {
	return z.Sub(NewPolynomial(x.field, x.order), x)
}

// snapshot returns the terms of x as a plain slice, safe to range over even
// while x is being mutated through another alias.
func (x *Polynomial[K]) snapshot() []Monomial[K] {
	out := make([]Monomial[K], 0, x.Len())
	for xw, xc := range x.m.All() {
		out = append(out, Monomial[K]{Term: cloneTerm(xw), Coefficient: xc})
	}
	return out
}

// MulMonomial sets z to the product of x and the monomial m, and returns z.
// Multiplying by a single monomial preserves the descending order of terms.
func (z *Polynomial[K]) MulMonomial(x *Polynomial[K], m Monomial[K]) *Polynomial[K] {
	z.field = x.field
	z.order = x.order
	newM := omap.NewMapFunc[Term, K](z.order)
	for xw, xc := range x.m.All() {
		w := MulTerm(xw, m.Term)
		c := x.field.NewZero().Mul(xc, m.Coefficient)
		newM.Set(w, c)
	}
	z.m = newM
	return z
}

// Mul sets z to the product x*y and returns z. Full polynomial
// multiplication is not used by the completion engines; it exists for
// constructing and checking test inputs.
func (z *Polynomial[K]) Mul(x, y *Polynomial[K]) *Polynomial[K] {
	if z == x || z == y {
		panic("f4: Mul destination aliases an operand")
	}
	z.field = x.field
	z.order = x.order
	z.m = omap.NewMapFunc[Term, K](z.order)
	for xw, xc := range x.m.All() {
		for yw, yc := range y.m.All() {
			c := z.field.Mul(xc, yc)
			w := MulTerm(xw, yw)
			z.addTerm(1, Monomial[K]{Term: w, Coefficient: c})
		}
	}
	return z
}

// mulScalar scales every coefficient of x by scalar and stores the result in z.
func (z *Polynomial[K]) mulScalar(scalar K, x *Polynomial[K]) *Polynomial[K] {
	if z == x {
		for zw, zc := range z.m.All() {
			zc.Mul(scalar, zc)
			z.m.Set(zw, zc)
		}
		return z
	}
	z.field = x.field
	z.order = x.order
	z.m = omap.NewMapFunc[Term, K](z.order)
	for xw, xc := range x.m.All() {
		c := z.field.Mul(scalar, xc)
		z.addTerm(1, Monomial[K]{Term: cloneTerm(xw), Coefficient: c})
	}
	return z
}

// LeadingTerm returns the monomial of maximal term under the active order.
// LeadingTerm panics if x is the zero polynomial.
func (x *Polynomial[K]) LeadingTerm() Monomial[K] {
	w, ok := x.m.Max()
	if !ok {
		panic("f4: zero polynomial has no leading term")
	}
	c, _ := x.m.Get(w)
	return Monomial[K]{Term: w, Coefficient: c}
}

// String returns a string representation of x using variable names x0, x1, ...
func (x *Polynomial[K]) String() string {
	if x.Len() == 0 {
		return "0"
	}
	var b strings.Builder
	first := true
	for c, w := range x.Terms() {
		s := c.String()
		if first {
			fmt.Fprintf(&b, "%s", s)
			first = false
		} else if s[0] == '-' {
			fmt.Fprintf(&b, "%s", s)
		} else {
			fmt.Fprintf(&b, "+%s", s)
		}
		printTerm(&b, w)
	}
	return b.String()
}

func printTerm(b *strings.Builder, w Term) {
	for i, e := range w {
		if e == 0 {
			continue
		}
		fmt.Fprintf(b, "*x%d", i)
		if e != 1 {
			fmt.Fprintf(b, "^%d", e)
		}
	}
}

func (x *Polynomial[K]) addTerm(sign int, term Monomial[K]) {
	c, ok := x.m.Get(term.Term)
	if !ok {
		c = x.field.NewZero()
	}
	if sign < 0 {
		c = c.NewZero().Sub(c, term.Coefficient)
	} else {
		c = c.NewZero().Add(c, term.Coefficient)
	}
	if c.Equal(x.field.NewZero()) {
		x.m.Delete(term.Term)
	} else {
		x.m.Set(term.Term, c)
	}
}
