package calc

import (
	"polycalc/stack"
)

// Interpreter holds one run's evaluation stack and optional telemetry
// sink. The zero value is not usable; construct with New.
type Interpreter struct {
	stack      *stack.Stack
	tel        *Telemetry
	lastDigest string
}

// New returns an Interpreter with an empty stack and telemetry disabled.
func New() *Interpreter {
	return &Interpreter{stack: stack.New()}
}

// NewWithTelemetry returns an Interpreter that records per-command
// counters and digests into tel as lines are processed.
func NewWithTelemetry(tel *Telemetry) *Interpreter {
	return &Interpreter{stack: stack.New(), tel: tel}
}

// StackLen reports the current depth of the evaluation stack, exposed for
// debug logging and telemetry.
func (ip *Interpreter) StackLen() int { return ip.stack.Len() }

// LastDigest returns the SHA3-256-derived correlation id (see
// DigestPolynomial) of the most recently pushed polynomial literal, or ""
// if no polynomial literal has been pushed yet. Results pushed by commands
// (ADD, CLONE, AT, ...) do not update it. Intended for debug logging, to
// correlate a log line with the polynomial that produced it without
// printing the polynomial itself.
func (ip *Interpreter) LastDigest() string { return ip.lastDigest }

// ProcessLine classifies one line of input as blank/comment, command, or
// polynomial literal, and applies it to the evaluation stack. It returns
// zero or more output lines (PRINT, IS_ZERO, DEG, ...) and a sentinel
// error (see errors.go) when the line is invalid or misapplied. The
// stack's once-per-line shrink maintenance runs unconditionally before
// returning, win or lose.
func (ip *Interpreter) ProcessLine(line string) (out []string, err error) {
	defer ip.stack.Maintain()
	defer func() {
		if ip.tel != nil {
			ip.tel.record(line, err)
		}
	}()

	if isIgnoredLine(line) {
		return nil, nil
	}
	if isCommandLine(line) {
		return ip.dispatchCommand(line)
	}
	if !Validate(line) {
		return nil, ErrWrongPoly
	}
	p := Load(line)
	ip.lastDigest = DigestPolynomial(&p)
	ip.stack.Push(p)
	return nil, nil
}

func isIgnoredLine(line string) bool {
	return line == "" || line[0] == '#'
}

func isCommandLine(line string) bool {
	if line == "" {
		return false
	}
	c := line[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
