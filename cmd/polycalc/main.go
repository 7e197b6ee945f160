// Command polycalc reads a line-oriented polynomial-calculator protocol
// from stdin and writes results to stdout, diagnostics to stderr.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"polycalc/calc"
)

func main() {
	fs := flag.NewFlagSet("polycalc", flag.ExitOnError)
	debug := fs.Bool("debug", false, "log per-line telemetry to stderr")
	statsFile := fs.String("stats-file", "", "write a JSON command-frequency snapshot here on EOF")
	fs.Parse(os.Args[1:])

	var tel *calc.Telemetry
	if *debug || *statsFile != "" {
		tel = calc.NewTelemetry()
	}

	var interp *calc.Interpreter
	if tel != nil {
		interp = calc.NewWithTelemetry(tel)
	} else {
		interp = calc.New()
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var lineNo uint64
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		lines, err := interp.ProcessLine(line)
		for _, l := range lines {
			fmt.Fprintln(out, l)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR %d %s\n", lineNo, diagnosticText(err))
		}
		if *debug {
			log.Printf("line %d: stack depth=%d digest=%s err=%v", lineNo, interp.StackLen(), interp.LastDigest(), err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("reading stdin: %v", err)
	}

	if tel != nil && *statsFile != "" {
		if err := tel.WriteFile(*statsFile); err != nil {
			log.Printf("warn: write stats file: %v", err)
		}
	}
}

func diagnosticText(err error) string {
	switch {
	case errors.Is(err, calc.ErrWrongCommand):
		return "WRONG COMMAND"
	case errors.Is(err, calc.ErrStackUnderflow):
		return "STACK UNDERFLOW"
	case errors.Is(err, calc.ErrWrongPoly):
		return "WRONG POLY"
	case errors.Is(err, calc.ErrDegByWrongVariable):
		return "DEG BY WRONG VARIABLE"
	case errors.Is(err, calc.ErrAtWrongValue):
		return "AT WRONG VALUE"
	case errors.Is(err, calc.ErrComposeWrongParameter):
		return "COMPOSE WRONG PARAMETER"
	default:
		return err.Error()
	}
}
