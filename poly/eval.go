package poly

// scalarPower computes a^exp by squaring, relying on Go's defined
// wraparound semantics for signed int64 multiplication/overflow.
func scalarPower(a int64, exp uint32) int64 {
	switch {
	case exp == 0:
		return 1
	case exp == 1:
		return a
	case exp%2 == 0:
		return scalarPower(a*a, exp/2)
	default:
		return a * scalarPower(a*a, (exp-1)/2)
	}
}

// polyPower computes p^exp by squaring.
func polyPower(p *Polynomial, exp uint32) Polynomial {
	switch {
	case exp == 0:
		return One()
	case exp == 1:
		return Clone(p)
	case exp%2 == 0:
		sq := Mul(p, p)
		return polyPower(&sq, exp/2)
	default:
		sq := Mul(p, p)
		rest := polyPower(&sq, (exp-1)/2)
		return Mul(p, &rest)
	}
}

// At substitutes the outermost variable of p with the integer x and
// returns the resulting polynomial (one variable shallower).
func At(p *Polynomial, x int64) Polynomial {
	if p.IsCoeff() {
		return FromConstant(p.constant)
	}
	sol := Zero()
	for i := range p.monos {
		c := FromConstant(scalarPower(x, p.monos[i].Exp))
		term := Mul(&p.monos[i].Coeff, &c)
		next := Add(&sol, &term)
		sol = next
	}
	return sol
}

// Compose substitutes q[i] for the variable at depth i, for i < k, and 0
// for every variable at depth >= k, then returns the resulting polynomial.
func Compose(p *Polynomial, k uint64, q []Polynomial) Polynomial {
	d := uint64(depth(p)) + 1
	sol := Clone(p)
	zero := Zero()

	for i := d; i > 0; i-- {
		level := i - 1
		if level < k {
			sol = singleCompose(&sol, &q[level], level)
		} else {
			sol = singleCompose(&sol, &zero, level)
		}
	}
	return sol
}

// singleCompose substitutes q for the variable at depth k inside p.
func singleCompose(p, q *Polynomial, k uint64) Polynomial {
	if p.IsCoeff() {
		return FromConstant(p.constant)
	}
	if k > 0 {
		monos := make([]Monomial, len(p.monos))
		for i := range p.monos {
			sub := singleCompose(&p.monos[i].Coeff, q, k-1)
			monos[i] = Monomial{Coeff: sub, Exp: p.monos[i].Exp}
		}
		chargeAlloc(len(monos))
		return Polynomial{kind: KindComposite, monos: monos}
	}

	sol := Zero()
	for i := range p.monos {
		power := polyPower(q, p.monos[i].Exp)
		term := Mul(&p.monos[i].Coeff, &power)
		next := Add(&sol, &term)
		sol = next
	}
	return sol
}
