package poly

// Deg returns the total degree of p: -1 for zero, 0 for a nonzero
// constant, otherwise the max over monomials of Exp + Deg(Coeff).
func Deg(p *Polynomial) int64 {
	switch {
	case p.IsZero():
		return -1
	case p.IsCoeff():
		return 0
	default:
		var deg int64 = 0
		for i := range p.monos {
			if d := int64(p.monos[i].Exp) + Deg(&p.monos[i].Coeff); d > deg {
				deg = d
			}
		}
		return deg
	}
}

// DegBy returns the degree of p with respect to the variable at depth idx.
func DegBy(p *Polynomial, idx uint64) int64 {
	switch {
	case p.IsZero():
		return -1
	case p.IsCoeff():
		return 0
	case idx == 0:
		var deg int64 = 0
		for i := range p.monos {
			if e := int64(p.monos[i].Exp); e > deg {
				deg = e
			}
		}
		return deg
	default:
		var deg int64 = 0
		for i := range p.monos {
			if d := DegBy(&p.monos[i].Coeff, idx-1); d > deg {
				deg = d
			}
		}
		return deg
	}
}

// IsEq reports structural equality under canonical form, which is
// semantic equality given that every Polynomial is kept in canonical form.
func IsEq(p, q *Polynomial) bool {
	switch {
	case p.IsCoeff() && q.IsCoeff():
		return p.constant == q.constant
	case p.IsCoeff() || q.IsCoeff():
		return false
	case len(p.monos) != len(q.monos):
		return false
	default:
		for i := range p.monos {
			if p.monos[i].Exp != q.monos[i].Exp || !IsEq(&p.monos[i].Coeff, &q.monos[i].Coeff) {
				return false
			}
		}
		return true
	}
}

// depth returns the number of nested composite levels in p (the variable
// count), 0 for a Constant.
func depth(p *Polynomial) int {
	if p.IsCoeff() {
		return 0
	}
	max := 0
	for i := range p.monos {
		if d := 1 + depth(&p.monos[i].Coeff); d > max {
			max = d
		}
	}
	return max
}
