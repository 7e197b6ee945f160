package poly

// Clone returns a deep copy of p preserving canonical form.
func Clone(p *Polynomial) Polynomial {
	if p.IsCoeff() {
		return FromConstant(p.constant)
	}
	monos := make([]Monomial, len(p.monos))
	for i := range p.monos {
		monos[i] = cloneMono(&p.monos[i])
	}
	chargeAlloc(len(monos))
	return Polynomial{kind: KindComposite, monos: monos}
}

func cloneMono(m *Monomial) Monomial {
	return Monomial{Coeff: Clone(&m.Coeff), Exp: m.Exp}
}
