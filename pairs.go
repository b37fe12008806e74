package f4

// A Pair is an unordered index pair {I, J} with I < J into a work set,
// representing a potential S-polynomial between two basis elements.
type Pair struct {
	I, J int
}

func newPair(i, j int) Pair {
	if i > j {
		i, j = j, i
	}
	return Pair{I: i, J: j}
}

// SPolynomial returns the S-polynomial of f and g:
//
//	S(f,g) = (L/head(f))*f - (L/head(g))*g
//
// where L = lcm(lt(f), lt(g)), treated as a monomial with coefficient one.
func SPolynomial[K Field[K]](f, g *Polynomial[K]) *Polynomial[K] {
	ltf, ltg := f.LeadingTerm(), g.LeadingTerm()
	l := LCM(ltf.Term, ltg.Term)
	one := f.field.NewOne()

	qf, _ := Quo(l, ltf.Term)
	mf := Monomial[K]{Term: qf, Coefficient: one.NewZero().Div(one, ltf.Coefficient)}

	qg, _ := Quo(l, ltg.Term)
	mg := Monomial[K]{Term: qg, Coefficient: one.NewZero().Div(one, ltg.Coefficient)}

	left := NewPolynomial(f.field, f.order).MulMonomial(f, mf)
	right := NewPolynomial(g.field, g.order).MulMonomial(g, mg)
	return left.Sub(left, right)
}

// ProductCriterion reports whether the leading terms of f and g are
// coprime, in which case S(f,g) is guaranteed to reduce to zero against
// {f,g} and the pair can be discarded without computing the S-polynomial.
func ProductCriterion[K Field[K]](f, g *Polynomial[K]) bool {
	return Coprime(f.LeadingTerm().Term, g.LeadingTerm().Term)
}

// ChainCriterion reports whether there is a third basis element g[k]
// (k != i, k != j, g[k] active) whose leading term divides
// lcm(lt(g[i]), lt(g[j])), with both {i,k} and {j,k} already resolved
// (recorded in processed). When true, pair {i,j} can be safely discarded:
// it is implied by the two already-resolved pairs. retired may be nil, in
// which case every index in g is considered active.
func ChainCriterion[K Field[K]](g []*Polynomial[K], retired []bool, i, j int, processed map[Pair]bool) bool {
	l := LCM(g[i].LeadingTerm().Term, g[j].LeadingTerm().Term)
	for k, gk := range g {
		if k == i || k == j || gk == nil {
			continue
		}
		if retired != nil && retired[k] {
			continue
		}
		if !Divides(gk.LeadingTerm().Term, l) {
			continue
		}
		if processed[newPair(i, k)] && processed[newPair(j, k)] {
			return true
		}
	}
	return false
}
