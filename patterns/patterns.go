// Package patterns contains pattern programs: functions that draw a
// particular piece of artwork on a [sandtrack.Drawing].
//
// Patterns are registered by name, so that front ends can list them and
// run them with arguments from the command line.
package patterns

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"honnef.co/go/sandtrack"
)

// A Pattern is a named pattern program.
type Pattern struct {
	Name string
	// Usage lists the pattern's arguments, e.g. "points inner outer".
	Usage string
	// Help describes the pattern and its arguments.
	Help string
	// Run draws the pattern with the given arguments.
	Run func(d *sandtrack.Drawing, args []string) error
}

var (
	mu       sync.Mutex
	registry = map[string]Pattern{}
)

// Register makes a pattern available by its name. It panics if a pattern
// with the same name is already registered.
func Register(p Pattern) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := registry[p.Name]; ok {
		panic(fmt.Sprintf("patterns: duplicate pattern %q", p.Name))
	}
	registry[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	mu.Lock()
	defer mu.Unlock()
	p, ok := registry[name]
	return p, ok
}

// Names returns the names of all registered patterns, sorted.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var ErrUnknown = errors.New("patterns: unknown pattern")

// Run runs the pattern registered under name.
func Run(d *sandtrack.Drawing, name string, args []string) error {
	p, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknown, name)
	}
	if err := p.Run(d, args); err != nil {
		return fmt.Errorf("patterns: %s: %w", name, err)
	}
	return nil
}

// ArgsAsFloats parses the first n arguments as numbers. If preventZero is
// set, zero is rejected as well.
func ArgsAsFloats(args []string, n int, preventZero bool) ([]float64, error) {
	if len(args) < n {
		return nil, fmt.Errorf("expected %d numeric arguments, got %d", n, len(args))
	}
	out := make([]float64, n)
	for i := range n {
		v, err := strconv.ParseFloat(strings.TrimSpace(args[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not a number", i+1, args[i])
		}
		if preventZero && v == 0 {
			return nil, fmt.Errorf("argument %d: 0 is not a valid value", i+1)
		}
		out[i] = v
	}
	return out, nil
}
