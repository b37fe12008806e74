package f4

import (
	"cmp"
	"slices"
)

// BuchbergerPlain computes a Gröbner basis of the ideal generated by F using
// the classical Buchberger algorithm: a FIFO queue of all pairs, reducing
// every S-polynomial against the current work set and appending non-zero
// reductions until the queue is exhausted.
func BuchbergerPlain[K Field[K]](f []*Polynomial[K]) []*Polynomial[K] {
	g := cloneBasis(f)

	var pending []Pair
	for j := 1; j < len(g); j++ {
		for i := range j {
			pending = append(pending, newPair(i, j))
		}
	}

	for len(pending) > 0 {
		p := pending[0]
		pending = pending[1:]

		s := SPolynomial(g[p.I], g[p.J])
		if ReduceToZero(s, g) {
			continue
		}

		k := len(g)
		g = append(g, s)
		for i := range k {
			pending = append(pending, newPair(i, k))
		}
	}

	return finishBasis(g)
}

// BuchbergerWithCriteria computes a Gröbner basis like BuchbergerPlain, but
// prunes pairs using the product criterion at enqueue time and the chain
// (LCM) criterion at dequeue time: both criteria identify pairs whose
// S-polynomial is guaranteed to reduce to zero given the rest of the work
// set, so they can be discarded without ever being computed.
func BuchbergerWithCriteria[K Field[K]](f []*Polynomial[K]) []*Polynomial[K] {
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
		p := pending[0]
		pending = pending[1:]

		if ChainCriterion(g, nil, p.I, p.J, processed) {
			processed[p] = true
			continue
		}

		s := SPolynomial(g[p.I], g[p.J])
		processed[p] = true
		if ReduceToZero(s, g) {
			continue
		}

		k := len(g)
		g = append(g, s)
		enqueueAgainst(k)
	}

	return finishBasis(g)
}

// BuchbergerWithCriteriaRetiring computes a Gröbner basis like
// BuchbergerWithCriteria, but additionally retires (tail-reduces) any
// existing basis element whose leading term becomes divisible by a newly
// accepted polynomial's leading term. Retired elements are skipped for
// reduction and pair generation but keep their slot, so pair indices stay
// stable; a final compaction drops them. This variant is markedly faster on
// cyclic/katsura-family inputs and markedly slower on highly symmetric
// inputs such as sym3, a genuine trade-off, not a defect.
func BuchbergerWithCriteriaRetiring[K Field[K]](f []*Polynomial[K]) []*Polynomial[K] {
	g := cloneBasis(f)
	retired := make([]bool, len(g))
	processed := make(map[Pair]bool)

	active := func() []*Polynomial[K] { return compact(g, retired) }

	var pending []Pair
	enqueueAgainst := func(newIdx int) {
		for i := range newIdx {
			if retired[i] {
				continue
			}
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
		p := pending[0]
		pending = pending[1:]
		if retired[p.I] || retired[p.J] {
			continue
		}

		if ChainCriterion(g, retired, p.I, p.J, processed) {
			processed[p] = true
			continue
		}

		s := SPolynomial(g[p.I], g[p.J])
		processed[p] = true
		if ReduceToZero(s, active()) {
			continue
		}

		k := len(g)
		g = append(g, s)
		retired = append(retired, false)
		enqueueAgainst(k)

		lts := g[k].LeadingTerm().Term
		for i := range k {
			if retired[i] {
				continue
			}
			if Divides(lts, g[i].LeadingTerm().Term) {
				retired[i] = true
			}
		}
	}

	return finishBasis(compact(g, retired))
}

// cloneBasis returns an independent copy of the input generators, the
// initial work set of a completion engine.
func cloneBasis[K Field[K]](f []*Polynomial[K]) []*Polynomial[K] {
	g := make([]*Polynomial[K], len(f))
	for i, fi := range f {
		g[i] = fi.Clone()
	}
	return g
}

// compact returns the elements of g whose retired flag is false.
func compact[K Field[K]](g []*Polynomial[K], retired []bool) []*Polynomial[K] {
	out := make([]*Polynomial[K], 0, len(g))
	for i, gi := range g {
		if !retired[i] {
			out = append(out, gi)
		}
	}
	return out
}

// Interreduce reduces every polynomial in g against the others, discarding
// any that reduce to zero, and restarting the sweep whenever a polynomial
// changes, until a full pass makes no changes.
func Interreduce[K Field[K]](g []*Polynomial[K]) []*Polynomial[K] {
	g = slices.Clone(g)
	i, n := 0, len(g)
	for i != n {
		gi := g[i]
		g[i] = nil
		f := gi.Clone()
		isZero := ReduceToZero(f, g)

		switch {
		case isZero:
			g[i] = nil
			i++
		case !f.Equal(gi):
			g[i] = f
			i = 0
		default:
			g[i] = gi
			i++
		}
	}
	return slices.DeleteFunc(g, func(x *Polynomial[K]) bool { return x == nil })
}

// finishBasis interreduces g, scales every element to be monic (leading
// coefficient one), and sorts the result into a deterministic order.
func finishBasis[K Field[K]](g []*Polynomial[K]) []*Polynomial[K] {
	g = Interreduce(g)
	for _, gi := range g {
		lc := gi.LeadingTerm().Coefficient
		inv := lc.NewZero().Inv(lc)
		gi.mulScalar(inv, gi)
	}
	slices.SortFunc(g, polynomialCmp[K])
	return g
}

// polynomialCmp is a deterministic total order over polynomials, used only
// to fix the output order of a basis; it has no mathematical significance.
func polynomialCmp[K Field[K]](x, y *Polynomial[K]) int {
	for i := range max(x.Len(), y.Len()) {
		if i >= x.Len() {
			return -1
		}
		if i >= y.Len() {
			return 1
		}
		xw, _ := x.m.At(x.Len() - 1 - i)
		yw, _ := y.m.At(y.Len() - 1 - i)
		if c := x.order(xw, yw); c != 0 {
			return c
		}
	}
	for i := range x.Len() {
		_, xc := x.m.At(x.Len() - 1 - i)
		_, yc := y.m.At(y.Len() - 1 - i)
		if c := cmp.Compare(xc.String(), yc.String()); c != 0 {
			return c
		}
	}
	return 0
}
