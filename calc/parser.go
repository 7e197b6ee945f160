// Package calc implements the command interpreter and polynomial-literal
// parser for the polynomial stack calculator.
package calc

import (
	"math"
	"strconv"

	"polycalc/poly"
)

// Validate reports whether line is a syntactically correct polynomial
// literal, without allocating a Polynomial.
func Validate(line string) bool {
	return validatePoly(line)
}

// Load parses line into a canonical Polynomial. Its behavior is
// unspecified unless Validate(line) is true — callers must validate first.
func Load(line string) poly.Polynomial {
	return loadPoly(line)
}

func validatePoly(s string) bool {
	if s == "" {
		return false
	}
	if s[0] != '(' {
		return validateCoeff(s)
	}
	monos, ok := splitTopLevel(s, '+')
	if !ok || len(monos) == 0 {
		return false
	}
	for _, m := range monos {
		if !validateMono(m) {
			return false
		}
	}
	return true
}

func validateMono(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	body := s[1 : len(s)-1]
	polyPart, expPart, ok := splitFirstTopLevelComma(body)
	if !ok {
		return false
	}
	if !validatePoly(polyPart) {
		return false
	}
	return validateExp(expPart)
}

// validateCoeff implements the Coeff production: an optional leading '-'
// (never '+'), one or more digits, fitting in a signed 64-bit integer.
func validateCoeff(s string) bool {
	if !isStrictInteger(s) {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// validateExp implements the Exp production: digits only, value at most
// 2^31-1, parsed as an integer directly rather than through any
// floating-point path.
func validateExp(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return false
	}
	return v <= math.MaxInt32
}

// isStrictInteger accepts an optional leading '-' followed by one or more
// digits. A bare "-" is rejected, and a leading '+' is rejected
// unconditionally — there is no valid position for '+' anywhere in this
// grammar.
func isStrictInteger(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		i = 1
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// splitTopLevel splits s on sep at bracket depth 0, rejecting unbalanced
// brackets and empty fields (a leading/trailing/doubled separator).
func splitTopLevel(s string, sep byte) ([]string, bool) {
	depth := 0
	start := 0
	var parts []string
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, false
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, false
	}
	parts = append(parts, s[start:])
	for _, p := range parts {
		if p == "" {
			return nil, false
		}
	}
	return parts, true
}

// splitFirstTopLevelComma finds the comma at bracket depth 0 that
// separates a monomial's inner polynomial from its exponent.
func splitFirstTopLevelComma(s string) (before, after string, ok bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return "", "", false
			}
		case ',':
			if depth == 0 {
				return s[:i], s[i+1:], true
			}
		}
	}
	return "", "", false
}

func loadPoly(s string) poly.Polynomial {
	if len(s) == 0 || s[0] != '(' {
		v, _ := strconv.ParseInt(s, 10, 64)
		return poly.FromConstant(v)
	}
	parts, _ := splitTopLevel(s, '+')
	monos := make([]poly.Monomial, 0, len(parts))
	for _, m := range parts {
		monos = append(monos, loadMono(m))
	}
	return poly.AddMonosOwn(monos)
}

func loadMono(s string) poly.Monomial {
	body := s[1 : len(s)-1]
	polyPart, expPart, _ := splitFirstTopLevelComma(body)
	c := loadPoly(polyPart)
	e, _ := strconv.ParseUint(expPart, 10, 32)
	return poly.Monomial{Coeff: c, Exp: uint32(e)}
}
