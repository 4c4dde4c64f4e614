// Package config reads the flat named-scalar-parameter configuration
// spec.md §6 describes: a "key = value" text file, read line by line
// with the standard library's bufio.Scanner and strconv, in the way
// gofem/inp reads its own small, explicit configuration files rather
// than through a generic config framework.
package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	gio "github.com/cpmech/gosl/io"
)

// Required parameter keys named in spec.md §6.
const (
	SimulationTimestep    = "simulation.timestep"
	SimulationTemperature = "simulation.temperature"
	SimulationGamma       = "simulation.gamma"
	SimulationDPDLambda   = "simulation.dpd.lambda"
	ForcesNBCutoff        = "forces.nb.cutoff"
	BEMSolventEps         = "bem.solvent.eps"
	BEMSoluteEps          = "bem.solute.eps"
	BEMSolventKa          = "bem.solvent.ka"
)

// Params is a flat map of named scalar configuration values.
type Params map[string]float64

// ReadParams reads "key = value" lines from r, skipping blank lines
// and lines whose first non-blank rune is '#'.
func ReadParams(r io.Reader) (Params, error) {
	p := make(Params)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, rawValue, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected \"key = value\", got %q", lineNo, line)
		}
		key = strings.TrimSpace(key)
		value, err := strconv.ParseFloat(strings.TrimSpace(rawValue), 64)
		if err != nil {
			return nil, fmt.Errorf("config: line %d: invalid value for %q: %w", lineNo, key, err)
		}
		p[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return p, nil
}

// Get returns the value of key and whether it was present.
func (p Params) Get(key string) (float64, bool) {
	v, ok := p[key]
	return v, ok
}

// MustGet returns the value of key, panicking via chk.Panic (a
// configuration error, fatal at startup per spec.md §7) if key is
// absent.
func (p Params) MustGet(key string) float64 {
	v, ok := p[key]
	if !ok {
		chk.Panic("config: missing required parameter %q", key)
	}
	return v
}

// RequireAll panics via chk.Panic, listing every missing key at once,
// unless every key in keys is present.
func (p Params) RequireAll(keys ...string) {
	var missing []string
	for _, k := range keys {
		if _, ok := p[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		chk.Panic("config: missing required parameters: %s", strings.Join(missing, ", "))
	}
}

// String formats p as sorted "key = value" lines, via gosl/io's
// formatted-buffer idiom (io.Ff into a bytes.Buffer), matching
// gofem/inp's MatDb.String-style debug dumps.
func (p Params) String() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, k := range keys {
		gio.Ff(&buf, "%s = %g\n", k, p[k])
	}
	return buf.String()
}
