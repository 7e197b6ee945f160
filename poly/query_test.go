package poly

import "testing"

func TestDegZero(t *testing.T) {
	z := Zero()
	if got := Deg(&z); got != -1 {
		t.Fatalf("Deg(0) = %d, want -1", got)
	}
}

func TestDegConstant(t *testing.T) {
	p := c(42)
	if got := Deg(&p); got != 0 {
		t.Fatalf("Deg(42) = %d, want 0", got)
	}
}

func TestDegComposite(t *testing.T) {
	// (1,2)+(2,3) has degree 3
	p := composite(Monomial{Coeff: c(1), Exp: 2}, Monomial{Coeff: c(2), Exp: 3})
	if got := Deg(&p); got != 3 {
		t.Fatalf("Deg = %d, want 3", got)
	}
}

func TestDegByNestedVariable(t *testing.T) {
	// ((1,1),2) : outer exponent 2, inner exponent 1
	inner := composite(Monomial{Coeff: c(1), Exp: 1})
	outer := composite(Monomial{Coeff: inner, Exp: 2})
	if got := DegBy(&outer, 0); got != 2 {
		t.Fatalf("DegBy(outer,0) = %d, want 2", got)
	}
	if got := DegBy(&outer, 1); got != 1 {
		t.Fatalf("DegBy(outer,1) = %d, want 1", got)
	}
}

func TestDegProductAddsWhenNeitherZero(t *testing.T) {
	p := composite(Monomial{Coeff: c(1), Exp: 2})
	q := composite(Monomial{Coeff: c(1), Exp: 3})
	prod := Mul(&p, &q)
	if got, want := Deg(&prod), Deg(&p)+Deg(&q); got != want {
		t.Fatalf("Deg(p*q) = %d, want %d", got, want)
	}
}

func TestDegSumBoundedByMax(t *testing.T) {
	p := composite(Monomial{Coeff: c(1), Exp: 5})
	q := composite(Monomial{Coeff: c(1), Exp: 2})
	sum := Add(&p, &q)
	max := Deg(&p)
	if dq := Deg(&q); dq > max {
		max = dq
	}
	if got := Deg(&sum); got > max {
		t.Fatalf("Deg(p+q) = %d, exceeds max(%d)", got, max)
	}
}

func TestIsEqReflexiveAndDiscriminating(t *testing.T) {
	p := composite(Monomial{Coeff: c(1), Exp: 2}, Monomial{Coeff: c(2), Exp: 3})
	q := Clone(&p)
	if !IsEq(&p, &q) {
		t.Fatalf("clone should equal original")
	}
	r := composite(Monomial{Coeff: c(1), Exp: 2}, Monomial{Coeff: c(3), Exp: 3})
	if IsEq(&p, &r) {
		t.Fatalf("differing coefficient should not be equal")
	}
}

func TestCloneIsDeep(t *testing.T) {
	inner := composite(Monomial{Coeff: c(1), Exp: 1})
	outer := composite(Monomial{Coeff: inner, Exp: 2})
	clone := Clone(&outer)
	if !IsEq(&outer, &clone) {
		t.Fatalf("clone mismatch")
	}
	if &clone.monos[0] == &outer.monos[0] {
		t.Fatalf("clone shares the outer monomial slice")
	}
	if &clone.monos[0].Coeff.monos[0] == &outer.monos[0].Coeff.monos[0] {
		t.Fatalf("clone shares the nested monomial slice")
	}
}
