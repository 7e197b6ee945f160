package calc

import (
	"encoding/hex"
	"encoding/json"
	"os"

	"golang.org/x/crypto/sha3"

	"polycalc/poly"
)

// Telemetry accumulates per-run command-frequency counters and error
// counts for an Interpreter. It is not safe for concurrent use; the
// interpreter itself is single-threaded, and Telemetry inherits that.
type Telemetry struct {
	Lines  int64            `json:"lines"`
	Counts map[string]int64 `json:"counts"`
	Errors map[string]int64 `json:"errors"`
}

// NewTelemetry returns an empty Telemetry ready to be passed to
// NewWithTelemetry.
func NewTelemetry() *Telemetry {
	return &Telemetry{Counts: map[string]int64{}, Errors: map[string]int64{}}
}

func (t *Telemetry) record(line string, err error) {
	t.Lines++
	if isIgnoredLine(line) {
		return
	}
	t.Counts[telemetryKey(line)]++
	if err != nil {
		t.Errors[err.Error()]++
	}
}

// telemetryKey buckets a line under its command token, or "PUSH" for a
// polynomial literal. It is deliberately looser than the interpreter's
// own dispatch: an unrecognized command still buckets under whatever
// leading token it has, so WRONG COMMAND lines show up by name in a
// report instead of collapsing into one undifferentiated bucket.
func telemetryKey(line string) string {
	if !isCommandLine(line) {
		return "PUSH"
	}
	i := 0
	for i < len(line) && (isASCIILetter(line[i]) || line[i] == '_') {
		i++
	}
	return line[:i]
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// DigestPolynomial returns a short correlation id for p's canonical
// textual form, for cross-referencing debug log lines against the
// polynomial that produced them without printing the polynomial itself.
func DigestPolynomial(p *poly.Polynomial) string {
	sum := sha3.Sum256([]byte(p.String()))
	return hex.EncodeToString(sum[:6])
}

// WriteFile writes t as a JSON snapshot to path, for later consumption by
// the visualizer.
func (t *Telemetry) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// LoadTelemetryFile reads back a JSON snapshot written by WriteFile.
func LoadTelemetryFile(path string) (*Telemetry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t := NewTelemetry()
	if err := json.Unmarshal(data, t); err != nil {
		return nil, err
	}
	return t, nil
}
