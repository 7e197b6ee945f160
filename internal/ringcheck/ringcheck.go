// Package ringcheck differentially validates poly.Add and poly.Mul for
// single-variable polynomials against an independent NTT-based
// implementation built on lattigo's ring package.
package ringcheck

import (
	"github.com/tuneinsight/lattigo/v4/ring"

	"polycalc/poly"
)

// N is the ring dimension used for cross-checking. Operands must keep
// deg(p)+deg(q) < N so the negacyclic convolution (mod x^N+1) never wraps
// a term back with a sign flip.
const N = 16

// Modulus is a small NTT-friendly prime (2^16+1), large enough that the
// coefficients exercised by these checks never wrap.
const Modulus = 65537

// NewRing builds the ring used by every check in this package.
func NewRing() (*ring.Ring, error) {
	return ring.NewRing(N, []uint64{Modulus})
}

// ToRingPoly lifts a single-variable poly.Polynomial into r's coefficient
// domain, reducing each coefficient mod r's modulus.
func ToRingPoly(r *ring.Ring, p *poly.Polynomial) *ring.Poly {
	rp := r.NewPoly()
	for i, c := range coeffVector(p, N) {
		rp.Coeffs[0][i] = reduceMod(c, int64(r.Modulus[0]))
	}
	return rp
}

func reduceMod(v, q int64) uint64 {
	v %= q
	if v < 0 {
		v += q
	}
	return uint64(v)
}

// coeffVector reads off p's dense coefficient vector up to degree n-1.
// p must be a Constant or a single-variable Composite (every monomial's
// own coefficient is itself a Constant) — the only shape this package
// cross-checks.
func coeffVector(p *poly.Polynomial, n int) []int64 {
	out := make([]int64, n)
	if p.IsCoeff() {
		v, _ := p.Coeff()
		out[0] = v
		return out
	}
	for _, m := range p.Monomials() {
		if int(m.Exp) < n {
			v, _ := m.Coeff.Coeff()
			out[m.Exp] = v
		}
	}
	return out
}

// CenteredCoeffs reads rp's coefficients back as signed integers centered
// in (-Modulus/2, Modulus/2].
func CenteredCoeffs(r *ring.Ring, rp *ring.Poly) []int64 {
	q := int64(r.Modulus[0])
	half := q / 2
	out := make([]int64, len(rp.Coeffs[0]))
	for i, c := range rp.Coeffs[0] {
		v := int64(c)
		if v > half {
			v -= q
		}
		out[i] = v
	}
	return out
}

// AddViaRing computes p+q through the ring's coefficient-domain adder.
func AddViaRing(r *ring.Ring, p, q *poly.Polynomial) []int64 {
	a := ToRingPoly(r, p)
	b := ToRingPoly(r, q)
	out := r.NewPoly()
	r.Add(a, b, out)
	return CenteredCoeffs(r, out)
}

// MulViaRing computes p*q through forward/inverse NTT and Montgomery
// coefficient multiplication.
func MulViaRing(r *ring.Ring, p, q *poly.Polynomial) []int64 {
	a := ToRingPoly(r, p)
	b := ToRingPoly(r, q)
	r.MForm(a, a)
	r.MForm(b, b)
	r.NTT(a, a)
	r.NTT(b, b)
	out := r.NewPoly()
	r.MulCoeffsMontgomery(a, b, out)
	r.InvNTT(out, out)
	r.InvMForm(out, out)
	return CenteredCoeffs(r, out)
}
