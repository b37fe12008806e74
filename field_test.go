package f4

import "testing"

func TestRationalCanonicalForm(t *testing.T) {
	tests := []struct {
		num, den   int64
		wantNum    int64
		wantDen    int64
	}{
		{2, 4, 1, 2},
		{-2, 4, -1, 2},
		{2, -4, -1, 2},
		{-2, -4, 1, 2},
		{0, 5, 0, 1},
	}
	for _, test := range tests {
		r := NewRational(test.num, test.den)
		if r.Num().Int64() != test.wantNum || r.Denom().Int64() != test.wantDen {
			t.Errorf("NewRational(%d, %d) = %s, want %d/%d", test.num, test.den, r, test.wantNum, test.wantDen)
		}
		if r.Denom().Sign() <= 0 {
			t.Errorf("NewRational(%d, %d) has non-positive denominator", test.num, test.den)
		}
	}
}

func TestRationalFieldLaws(t *testing.T) {
	a := NewRational(1, 3)
	b := NewRational(-2, 5)
	c := NewRational(7, 11)

	lhs := a.NewZero().Add(a.NewZero().Add(a, b), c)
	rhs := a.NewZero().Add(a, a.NewZero().Add(b, c))
	if !lhs.Equal(rhs) {
		t.Errorf("(a+b)+c = %s, a+(b+c) = %s", lhs, rhs)
	}

	zero := a.NewZero()
	if got := a.NewZero().Add(a, zero); !got.Equal(a) {
		t.Errorf("a+0 = %s, want %s", got, a)
	}

	neg := a.NewZero().Sub(zero, a)
	if got := a.NewZero().Add(a, neg); !got.Equal(zero) {
		t.Errorf("a+(-a) = %s, want 0", got)
	}

	one := a.NewOne()
	if got := a.NewZero().Mul(a, one); !got.Equal(a) {
		t.Errorf("a*1 = %s, want %s", got, a)
	}

	ab := a.NewZero().Mul(a, b)
	ba := a.NewZero().Mul(b, a)
	if !ab.Equal(ba) {
		t.Errorf("a*b = %s, b*a = %s", ab, ba)
	}

	inv := a.NewZero().Inv(a)
	if got := a.NewZero().Mul(a, inv); !got.Equal(one) {
		t.Errorf("a*a^-1 = %s, want 1", got)
	}
}

func TestRationalDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Div by zero did not panic")
		}
	}()
	a := NewRational(1, 1)
	zero := a.NewZero()
	a.NewZero().Div(a, zero)
}
