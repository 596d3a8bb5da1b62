package pma

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable rendering of the backing array and the
// current layout parameters to w. It is meant for tests and operator
// debugging, not for machine parsing.
func (p *PMA) Dump(w io.Writer) error {
	p.mustOpen()
	if _, err := fmt.Fprintf(w, "pma: n=%d m=%d s=%d S=%d h=%d\n",
		p.n, p.lt.m, p.lt.s, p.lt.segs, p.lt.h); err != nil {
		return err
	}
	for seg := 0; seg*p.lt.s < p.lt.m; seg++ {
		start := seg * p.lt.s
		end := start + p.lt.s
		if _, err := fmt.Fprintf(w, "segment %d [%d,%d):", seg, start, end); err != nil {
			return err
		}
		for i := start; i < end; i++ {
			if p.a[i].empty() {
				if _, err := io.WriteString(w, " _"); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, " %d=%d", p.a[i].key, p.a[i].value); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// String is a convenience wrapper around Dump for use in tests and %v
// formatting; it silently drops write errors since strings.Builder never
// returns one.
func (p *PMA) String() string {
	var b strings.Builder
	_ = p.Dump(&b)
	return b.String()
}
