package calc

import (
	"strconv"
	"strings"

	"polycalc/poly"
)

// separator parse states for DEG_BY/AT/COMPOSE argument splitting.
const (
	sepOK = iota
	sepWrongCommand
	sepMissingArg
)

// splitTokenArg separates prefix from its argument: exactly one ASCII
// space must follow the token; any other character (including a
// different whitespace byte) in that position is a WRONG COMMAND, and an
// argument that is entirely absent is the command's own argument error.
func splitTokenArg(line, prefix string) (arg string, state int) {
	rest := line[len(prefix):]
	if rest == "" {
		return "", sepMissingArg
	}
	if rest[0] != ' ' {
		return "", sepWrongCommand
	}
	arg = rest[1:]
	if arg == "" {
		return "", sepMissingArg
	}
	return arg, sepOK
}

// parseUintStrict parses s as an unsigned integer with no sign characters
// at all (neither '+' nor '-'), rejecting anything strconv would
// otherwise tolerate.
func parseUintStrict(s string, bitSize int) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 10, bitSize)
	return v, err == nil
}

// parseIntStrict parses s as a signed integer, allowing only an optional
// leading '-' (never '+').
func parseIntStrict(s string, bitSize int) (int64, bool) {
	if !isStrictInteger(s) {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, bitSize)
	return v, err == nil
}

func (ip *Interpreter) dispatchCommand(line string) ([]string, error) {
	switch line {
	case "ZERO":
		return ip.processZero()
	case "IS_COEFF":
		return ip.processIsCoeff()
	case "IS_ZERO":
		return ip.processIsZero()
	case "CLONE":
		return ip.processClone()
	case "ADD":
		return ip.processAdd()
	case "MUL":
		return ip.processMul()
	case "NEG":
		return ip.processNeg()
	case "SUB":
		return ip.processSub()
	case "IS_EQ":
		return ip.processIsEq()
	case "DEG":
		return ip.processDeg()
	case "PRINT":
		return ip.processPrint()
	case "POP":
		return ip.processPop()
	}
	switch {
	case strings.HasPrefix(line, "DEG_BY"):
		return ip.processDegBy(line)
	case strings.HasPrefix(line, "AT"):
		return ip.processAt(line)
	case strings.HasPrefix(line, "COMPOSE"):
		return ip.processCompose(line)
	}
	return nil, ErrWrongCommand
}

func (ip *Interpreter) processZero() ([]string, error) {
	ip.stack.Push(poly.Zero())
	return nil, nil
}

func (ip *Interpreter) processIsCoeff() ([]string, error) {
	if ip.stack.Len() < 1 {
		return nil, ErrStackUnderflow
	}
	if ip.stack.PeekAt(0).IsCoeff() {
		return []string{"1"}, nil
	}
	return []string{"0"}, nil
}

func (ip *Interpreter) processIsZero() ([]string, error) {
	if ip.stack.Len() < 1 {
		return nil, ErrStackUnderflow
	}
	if ip.stack.PeekAt(0).IsZero() {
		return []string{"1"}, nil
	}
	return []string{"0"}, nil
}

func (ip *Interpreter) processClone() ([]string, error) {
	if ip.stack.Len() < 1 {
		return nil, ErrStackUnderflow
	}
	ip.stack.Push(poly.Clone(ip.stack.PeekAt(0)))
	return nil, nil
}

func (ip *Interpreter) processAdd() ([]string, error) {
	if ip.stack.Len() < 2 {
		return nil, ErrStackUnderflow
	}
	p1 := ip.stack.Pop()
	p2 := ip.stack.Pop()
	ip.stack.Push(poly.Add(&p1, &p2))
	return nil, nil
}

func (ip *Interpreter) processMul() ([]string, error) {
	if ip.stack.Len() < 2 {
		return nil, ErrStackUnderflow
	}
	p1 := ip.stack.Pop()
	p2 := ip.stack.Pop()
	ip.stack.Push(poly.Mul(&p1, &p2))
	return nil, nil
}

func (ip *Interpreter) processNeg() ([]string, error) {
	if ip.stack.Len() < 1 {
		return nil, ErrStackUnderflow
	}
	p := ip.stack.Pop()
	ip.stack.Push(poly.Neg(&p))
	return nil, nil
}

// processSub implements SUB as the first-popped minus the second-popped:
// with top=3 and next=5 on the stack, the result is 3-5 = -2.
func (ip *Interpreter) processSub() ([]string, error) {
	if ip.stack.Len() < 2 {
		return nil, ErrStackUnderflow
	}
	p1 := ip.stack.Pop()
	p2 := ip.stack.Pop()
	ip.stack.Push(poly.Sub(&p1, &p2))
	return nil, nil
}

func (ip *Interpreter) processIsEq() ([]string, error) {
	if ip.stack.Len() < 2 {
		return nil, ErrStackUnderflow
	}
	if poly.IsEq(ip.stack.PeekAt(0), ip.stack.PeekAt(1)) {
		return []string{"1"}, nil
	}
	return []string{"0"}, nil
}

func (ip *Interpreter) processDeg() ([]string, error) {
	if ip.stack.Len() < 1 {
		return nil, ErrStackUnderflow
	}
	return []string{strconv.FormatInt(poly.Deg(ip.stack.PeekAt(0)), 10)}, nil
}

func (ip *Interpreter) processDegBy(line string) ([]string, error) {
	arg, state := splitTokenArg(line, "DEG_BY")
	switch state {
	case sepWrongCommand:
		return nil, ErrWrongCommand
	case sepMissingArg:
		return nil, ErrDegByWrongVariable
	}
	idx, ok := parseUintStrict(arg, 64)
	if !ok {
		return nil, ErrDegByWrongVariable
	}
	if ip.stack.Len() < 1 {
		return nil, ErrStackUnderflow
	}
	return []string{strconv.FormatInt(poly.DegBy(ip.stack.PeekAt(0), idx), 10)}, nil
}

func (ip *Interpreter) processAt(line string) ([]string, error) {
	arg, state := splitTokenArg(line, "AT")
	switch state {
	case sepWrongCommand:
		return nil, ErrWrongCommand
	case sepMissingArg:
		return nil, ErrAtWrongValue
	}
	x, ok := parseIntStrict(arg, 64)
	if !ok {
		return nil, ErrAtWrongValue
	}
	if ip.stack.Len() < 1 {
		return nil, ErrStackUnderflow
	}
	p := ip.stack.Pop()
	ip.stack.Push(poly.At(&p, x))
	return nil, nil
}

func (ip *Interpreter) processPrint() ([]string, error) {
	if ip.stack.Len() < 1 {
		return nil, ErrStackUnderflow
	}
	return []string{ip.stack.PeekAt(0).String()}, nil
}

func (ip *Interpreter) processPop() ([]string, error) {
	if ip.stack.Len() < 1 {
		return nil, ErrStackUnderflow
	}
	ip.stack.Pop()
	return nil, nil
}

func (ip *Interpreter) processCompose(line string) ([]string, error) {
	arg, state := splitTokenArg(line, "COMPOSE")
	switch state {
	case sepWrongCommand:
		return nil, ErrWrongCommand
	case sepMissingArg:
		return nil, ErrComposeWrongParameter
	}
	k, ok := parseUintStrict(arg, 64)
	if !ok {
		return nil, ErrComposeWrongParameter
	}
	if uint64(ip.stack.Len()) <= k {
		return nil, ErrStackUnderflow
	}
	p := ip.stack.Pop()
	q := make([]poly.Polynomial, k)
	for i := k; i > 0; i-- {
		q[i-1] = ip.stack.Pop()
	}
	ip.stack.Push(poly.Compose(&p, k, q))
	return nil, nil
}
