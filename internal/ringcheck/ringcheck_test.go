package ringcheck

import (
	"testing"

	"github.com/stretchr/testify/require"

	"polycalc/poly"
)

func mono(coeff int64, exp uint32) poly.Monomial {
	return poly.Monomial{Coeff: poly.FromConstant(coeff), Exp: exp}
}

func univariate(t *testing.T, terms ...poly.Monomial) poly.Polynomial {
	t.Helper()
	cloned := make([]poly.Monomial, len(terms))
	copy(cloned, terms)
	return poly.AddMonosOwn(cloned)
}

func TestAddMatchesRing(t *testing.T) {
	r, err := NewRing()
	require.NoError(t, err)

	p := univariate(t, mono(3, 0), mono(-5, 1), mono(2, 3))
	q := univariate(t, mono(-1, 0), mono(7, 2))

	sum := poly.Add(&p, &q)
	want := coeffVector(&sum, N)
	got := AddViaRing(r, &p, &q)
	require.Equal(t, want, got)
}

func TestMulMatchesRing(t *testing.T) {
	r, err := NewRing()
	require.NoError(t, err)

	p := univariate(t, mono(3, 0), mono(-5, 1), mono(2, 2))
	q := univariate(t, mono(-1, 0), mono(4, 1))

	prod := poly.Mul(&p, &q)
	want := coeffVector(&prod, N)
	got := MulViaRing(r, &p, &q)
	require.Equal(t, want, got)
}

func TestAddMatchesRingZero(t *testing.T) {
	r, err := NewRing()
	require.NoError(t, err)

	p := poly.Zero()
	q := univariate(t, mono(9, 1))

	sum := poly.Add(&p, &q)
	want := coeffVector(&sum, N)
	got := AddViaRing(r, &p, &q)
	require.Equal(t, want, got)
}
