package calc

import "errors"

// Sentinel errors returned by Interpreter.ProcessLine, one per diagnostic
// the interpreter can raise. The driver maps each to its exact
// "ERROR <n> ..." text.
var (
	ErrWrongCommand          = errors.New("wrong command")
	ErrStackUnderflow        = errors.New("stack underflow")
	ErrWrongPoly             = errors.New("wrong poly")
	ErrDegByWrongVariable    = errors.New("deg by wrong variable")
	ErrAtWrongValue          = errors.New("at wrong value")
	ErrComposeWrongParameter = errors.New("compose wrong parameter")
)
