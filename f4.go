package f4

import "slices"

// F4 computes a Gröbner basis of the ideal generated by F using Faugère's F4
// algorithm: pending pairs of minimal lcm degree are selected together,
// their S-polynomial multiples and the rows needed to close the set under
// reduction (symbolic preprocessing) are assembled into a matrix, the matrix
// is row-reduced over the coefficient field, and rows with genuinely new
// leading terms are appended to the basis.
func F4[K Field[K]](f []*Polynomial[K]) []*Polynomial[K] {
	g := cloneBasis(f)
	processed := make(map[Pair]bool)

	var pending []Pair
	enqueueAgainst := func(newIdx int) {
		for i := range newIdx {
			p := newPair(i, newIdx)
			if ProductCriterion(g[i], g[newIdx]) {
				processed[p] = true
				continue
			}
			pending = append(pending, p)
		}
	}
	for j := 1; j < len(g); j++ {
		enqueueAgainst(j)
	}

	for len(pending) > 0 {
		batch, rest := selectMinDegree(g, pending)
		pending = rest

		batch = slices.DeleteFunc(batch, func(p Pair) bool {
			if ChainCriterion(g, nil, p.I, p.J, processed) {
				processed[p] = true
				return true
			}
			return false
		})
		if len(batch) == 0 {
			continue
		}

		rows := buildRows(g, batch)
		for _, p := range batch {
			processed[p] = true
		}

		rows = symbolicPreprocess(rows, g)
		leadingBefore := make(map[string]bool, len(rows))
		for _, r := range rows {
			if !r.IsZero() {
				leadingBefore[termKey(r.LeadingTerm().Term)] = true
			}
		}

		reduced := rowReduce(rows)
		var fresh []*Polynomial[K]
		for _, r := range reduced {
			if r.IsZero() {
				continue
			}
			if leadingBefore[termKey(r.LeadingTerm().Term)] {
				continue
			}
			fresh = append(fresh, r)
		}
		slices.SortFunc(fresh, polynomialCmp[K])

		for _, r := range fresh {
			k := len(g)
			g = append(g, r)
			enqueueAgainst(k)
		}
	}

	return finishBasis(g)
}

// selectMinDegree removes from pending, and returns separately, every pair
// whose lcm has the minimal total degree among all pending pairs (Faugère's
// "normal selection strategy").
func selectMinDegree[K Field[K]](g []*Polynomial[K], pending []Pair) (batch, rest []Pair) {
	minDeg := -1
	for _, p := range pending {
		d := Degree(LCM(g[p.I].LeadingTerm().Term, g[p.J].LeadingTerm().Term))
		if minDeg == -1 || d < minDeg {
			minDeg = d
		}
	}
	for _, p := range pending {
		d := Degree(LCM(g[p.I].LeadingTerm().Term, g[p.J].LeadingTerm().Term))
		if d == minDeg {
			batch = append(batch, p)
		} else {
			rest = append(rest, p)
		}
	}
	return batch, rest
}

// buildRows returns the two S-polynomial multiples (L/head(f_i))*f_i and
// (L/head(f_j))*f_j for every pair in batch.
func buildRows[K Field[K]](g []*Polynomial[K], batch []Pair) []*Polynomial[K] {
	rows := make([]*Polynomial[K], 0, 2*len(batch))
	for _, p := range batch {
		fi, fj := g[p.I], g[p.J]
		ltI, ltJ := fi.LeadingTerm(), fj.LeadingTerm()
		l := LCM(ltI.Term, ltJ.Term)
		one := fi.field.NewOne()

		qi, _ := Quo(l, ltI.Term)
		qj, _ := Quo(l, ltJ.Term)
		rows = append(rows,
			NewPolynomial(fi.field, fi.order).MulMonomial(fi, Monomial[K]{Term: qi, Coefficient: one}),
			NewPolynomial(fj.field, fj.order).MulMonomial(fj, Monomial[K]{Term: qj, Coefficient: one}),
		)
	}
	return rows
}
