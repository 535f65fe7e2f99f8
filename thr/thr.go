// Package thr reads and writes theta-rho track files.
//
// A track file lists one vertex per line as the unwrapped angle in radians
// and the normalized radius, separated by a space. There is no header and
// no trailer. The device travels from each vertex to the next along an
// arithmetic spiral.
package thr

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/sandtrack"
)

// Write writes vertices to w in order. Rho is clamped to [0, 1].
func Write(w io.Writer, vertices []sandtrack.Position) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, v := range vertices {
		rho := max(0, min(1, v.Rho()))
		buf = strconv.AppendFloat(buf[:0], v.Theta(), 'f', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, rho, 'f', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// A SyntaxError describes a malformed line.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("thr: line %d: %s", e.Line, e.Msg)
}

// Read parses a track. Blank lines and lines starting with '#' are
// ignored; many tracks in the wild carry comments.
func Read(r io.Reader) ([]sandtrack.Position, error) {
	var out []sandtrack.Position
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &SyntaxError{n, fmt.Sprintf("expected 2 fields, got %d", len(fields))}
		}
		theta, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, &SyntaxError{n, fmt.Sprintf("invalid theta %q", fields[0])}
		}
		rho, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &SyntaxError{n, fmt.Sprintf("invalid rho %q", fields[1])}
		}
		out = append(out, sandtrack.Polar(rho, theta))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("thr: %w", err)
	}
	return out, nil
}
