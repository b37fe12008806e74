package f4

import "encoding/binary"

// termKey returns a canonical, comparable encoding of a term, suitable for
// use as a Go map key. Two terms denoting the same monomial (after trailing
// zero trimming) always produce the same key.
func termKey(t Term) string {
	t = trim(t)
	b := make([]byte, 2*len(t))
	for i, e := range t {
		binary.LittleEndian.PutUint16(b[2*i:], e)
	}
	return string(b)
}

// symbolicPreprocess closes a set of F4 matrix rows under available
// reductions from basis: for every term occurring in some row that is not
// already the leading term of any row, if some (non-nil, nonzero) basis element
// has a leading term dividing it, a new row (t/lt(g))*g is added. Repeats
// until no new rows are introduced. Ties among eligible basis elements are
// broken deterministically by lowest index.
func symbolicPreprocess[K Field[K]](rows []*Polynomial[K], basis []*Polynomial[K]) []*Polynomial[K] {
	considered := make(map[string]bool)
	for {
		leading := make(map[string]bool, len(rows))
		terms := make(map[string]Term)
		for _, r := range rows {
			if r.IsZero() {
				continue
			}
			leading[termKey(r.LeadingTerm().Term)] = true
			for _, t := range r.termSet() {
				terms[termKey(t)] = t
			}
		}

		addedAny := false
		for key, t := range terms {
			if leading[key] || considered[key] {
				continue
			}
			considered[key] = true
			for _, g := range basis {
				if g == nil || g.IsZero() {
					continue
				}
				ltg := g.LeadingTerm()
				q, ok := Quo(t, ltg.Term)
				if !ok {
					continue
				}
				m := Monomial[K]{Term: q, Coefficient: g.field.NewOne()}
				row := NewPolynomial(g.field, g.order).MulMonomial(g, m)
				rows = append(rows, row)
				addedAny = true
				break
			}
		}
		if !addedAny {
			return rows
		}
	}
}

// termSet returns the distinct terms occurring in x.
func (x *Polynomial[K]) termSet() []Term {
	out := make([]Term, 0, x.Len())
	for _, w := range x.Terms() {
		out = append(out, w)
	}
	return out
}

// rowReduce performs Gaussian elimination of rows to row-echelon form over
// the coefficient field, pivoting on each row's leading term in the active
// monomial order (columns ordered descending, matching the order's ranking
// of terms). The returned rows are interreduced against each other and
// dropped if they reduce to zero; the surviving set is safe to scan for
// newly discovered leading terms.
func rowReduce[K Field[K]](rows []*Polynomial[K]) []*Polynomial[K] {
	pivots := make(map[string]*Polynomial[K])
	for _, row := range rows {
		r := row.Clone()
		for !r.IsZero() {
			lt := r.LeadingTerm()
			piv, ok := pivots[termKey(lt.Term)]
			if !ok {
				break
			}
			pivLT := piv.LeadingTerm()
			factor := lt.Coefficient.NewZero().Div(lt.Coefficient, pivLT.Coefficient)
			scaled := NewPolynomial(r.field, r.order).MulMonomial(piv, Monomial[K]{Term: NewTerm(), Coefficient: factor})
			r.Sub(r, scaled)
		}
		if r.IsZero() {
			continue
		}
		pivots[termKey(r.LeadingTerm().Term)] = r
	}

	out := make([]*Polynomial[K], 0, len(pivots))
	for _, p := range pivots {
		out = append(out, p)
	}
	return Interreduce(out)
}
