package poly

import "sort"

// Add returns p + q. Constant+Constant overflow wraps per Go's defined
// two's-complement semantics for signed integer arithmetic.
func Add(p, q *Polynomial) Polynomial {
	switch {
	case p.IsCoeff() && q.IsCoeff():
		return FromConstant(p.constant + q.constant)
	case p.IsCoeff():
		return Add(q, p)
	case q.IsCoeff():
		if q.IsZero() {
			return Clone(p)
		}
		sum := make([]Monomial, len(p.monos)+1)
		for i := range p.monos {
			sum[i] = cloneMono(&p.monos[i])
		}
		sum[len(p.monos)] = MonoFromCoeff(q.constant)
		return AddMonosOwn(sum)
	default:
		return addComposites(p, q)
	}
}

// addComposites performs the ordered merge of two canonical monomial lists:
// walk both in lockstep by exponent, recursing on equal exponents, then
// feed the (possibly unnormalized) result to AddMonos so zero coefficients
// are dropped and the single-constant collapse rule applies.
func addComposites(p, q *Polynomial) Polynomial {
	merged := make([]Monomial, 0, len(p.monos)+len(q.monos))
	i, j := 0, 0
	for i < len(p.monos) && j < len(q.monos) {
		switch {
		case p.monos[i].Exp == q.monos[j].Exp:
			merged = append(merged, Monomial{
				Coeff: Add(&p.monos[i].Coeff, &q.monos[j].Coeff),
				Exp:   p.monos[i].Exp,
			})
			i++
			j++
		case p.monos[i].Exp < q.monos[j].Exp:
			merged = append(merged, cloneMono(&p.monos[i]))
			i++
		default:
			merged = append(merged, cloneMono(&q.monos[j]))
			j++
		}
	}
	for ; i < len(p.monos); i++ {
		merged = append(merged, cloneMono(&p.monos[i]))
	}
	for ; j < len(q.monos); j++ {
		merged = append(merged, cloneMono(&q.monos[j]))
	}
	return AddMonosOwn(merged)
}

// AddMonosOwn takes ownership of monos (no further clones are made of its
// elements) and returns the canonical polynomial they sum to. monos may be
// unsorted, may contain repeated exponents, and may contain zero
// coefficients.
func AddMonosOwn(monos []Monomial) Polynomial {
	return ownMonos(monos)
}

// AddMonosClone behaves like AddMonosOwn but first clones every element of
// monos, for callers that must retain their own copy of the input.
func AddMonosClone(monos []Monomial) Polynomial {
	cloned := make([]Monomial, len(monos))
	for i := range monos {
		cloned[i] = cloneMono(&monos[i])
	}
	return ownMonos(cloned)
}

func ownMonos(monos []Monomial) Polynomial {
	if len(monos) == 0 {
		return Zero()
	}

	sort.SliceStable(monos, func(a, b int) bool { return monos[a].Exp < monos[b].Exp })

	result := make([]Monomial, 0, len(monos))
	cur := monos[0]
	for i := 1; i < len(monos); i++ {
		if monos[i].Exp == cur.Exp {
			cur = Monomial{Coeff: Add(&cur.Coeff, &monos[i].Coeff), Exp: cur.Exp}
			continue
		}
		if !cur.Coeff.IsZero() {
			result = append(result, cur)
		}
		cur = monos[i]
	}
	if !cur.Coeff.IsZero() {
		result = append(result, cur)
	}

	switch {
	case len(result) == 0:
		return Zero()
	case len(result) == 1 && result[0].Exp == 0 && result[0].Coeff.IsCoeff():
		return result[0].Coeff
	default:
		return newComposite(result)
	}
}

// Mul returns p * q. Constant*Constant overflow wraps per Go's defined
// two's-complement semantics for signed integer arithmetic.
func Mul(p, q *Polynomial) Polynomial {
	switch {
	case p.IsZero() || q.IsZero():
		return Zero()
	case p.IsCoeff() && q.IsCoeff():
		return FromConstant(p.constant * q.constant)
	case p.IsCoeff():
		return Mul(q, p)
	case q.IsCoeff():
		prod := make([]Monomial, len(p.monos))
		for i := range p.monos {
			prod[i] = Monomial{Coeff: Mul(&p.monos[i].Coeff, q), Exp: p.monos[i].Exp}
		}
		return AddMonosOwn(prod)
	default:
		prod := make([]Monomial, 0, len(p.monos)*len(q.monos))
		for i := range p.monos {
			for j := range q.monos {
				prod = append(prod, Monomial{
					Coeff: Mul(&p.monos[i].Coeff, &q.monos[j].Coeff),
					Exp:   p.monos[i].Exp + q.monos[j].Exp,
				})
			}
		}
		return AddMonosOwn(prod)
	}
}

// Neg returns -p.
func Neg(p *Polynomial) Polynomial {
	minusOne := FromConstant(-1)
	return Mul(p, &minusOne)
}

// Sub returns p - q.
func Sub(p, q *Polynomial) Polynomial {
	negQ := Neg(q)
	return Add(p, &negQ)
}
