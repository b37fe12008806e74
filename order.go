package f4

import "cmp"

// An Order is a [monomial order] for comparing terms. The meaning of the
// return value is the same as [cmp.Compare]: negative if x is smaller than y
// under the order, positive if larger, zero if equal.
//
// [monomial order]: https://en.wikipedia.org/wiki/Monomial_order
type Order func(x, y Term) int

// Grevlex is the degree-reverse-lexicographic monomial order: terms are
// compared first by total degree, and on a tie by examining exponents from
// the last variable backward, preferring the term with the smaller exponent
// at the first position where they differ.
//
// [Grevlex]: https://en.wikipedia.org/wiki/Monomial_order#Degree_reverse_lexicographic_order
func Grevlex(x, y Term) int {
	if c := cmp.Compare(Degree(x), Degree(y)); c != 0 {
		return c
	}
	n := max(len(x), len(y))
	for i := n - 1; i >= 0; i-- {
		xi, yi := expAt(x, i), expAt(y, i)
		if xi != yi {
			return cmp.Compare(yi, xi)
		}
	}
	return 0
}

// Lex is the lexicographic monomial order: terms are compared from the
// first variable forward, with a larger exponent sorting greater.
//
// [Lex]: https://en.wikipedia.org/wiki/Monomial_order#Lexicographic_order
func Lex(x, y Term) int {
	n := max(len(x), len(y))
	for i := range n {
		xi, yi := expAt(x, i), expAt(y, i)
		if xi != yi {
			return cmp.Compare(xi, yi)
		}
	}
	return 0
}
