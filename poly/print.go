package poly

import (
	"strconv"
	"strings"
)

// String renders p in the canonical textual form: a signed decimal for a
// Constant, or "+"-joined "(coeff,exp)" monomials for a Composite.
func (p Polynomial) String() string {
	var b strings.Builder
	writePoly(&b, &p)
	return b.String()
}

func writePoly(b *strings.Builder, p *Polynomial) {
	if p.IsCoeff() {
		b.WriteString(strconv.FormatInt(p.constant, 10))
		return
	}
	for i := range p.monos {
		if i > 0 {
			b.WriteByte('+')
		}
		writeMono(b, &p.monos[i])
	}
}

func writeMono(b *strings.Builder, m *Monomial) {
	b.WriteByte('(')
	writePoly(b, &m.Coeff)
	b.WriteByte(',')
	b.WriteString(strconv.FormatUint(uint64(m.Exp), 10))
	b.WriteByte(')')
}
