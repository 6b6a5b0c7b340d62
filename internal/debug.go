package internal

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

// Debug names for contours. The merge recursion creates many short-lived
// contours, and raw pointer strings are hopeless to tell apart in output, so
// each contour gets a lazily generated readable name. The memo flagrantly
// leaks memory, but names are only generated on demand, so it's not a problem
// unless you're actually debugging.

var contourNames map[*Contour]string

func init() {
	contourNames = make(map[*Contour]string)
	// Names are handed out in order of demand, so make them nondeterministic
	// to remind the user that the same name doesn't refer to the same contour
	// between runs.
	petname.NonDeterministicMode()
}

func (c *Contour) dbgName() string {
	if c == nil {
		return "Ø"
	}
	if name, ok := contourNames[c]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	contourNames[c] = name
	return name
}

func (c *Contour) String() string {
	if c == nil {
		return "Contour Ø"
	}

	name := c.dbgName()
	switch {
	case c.Len() == 0:
		name = aurora.Cyan(name).String()
	case isOnOneLine(c): // Degenerate: a point, segment, or collinear run
		name = aurora.Red(name).String()
	default:
		name = aurora.Green(name).String()
	}

	var parts []string
	for _, p := range c.Points() {
		parts = append(parts, fmt.Sprintf("(%d,%d)", p.X, p.Y))
	}
	return fmt.Sprintf("Contour %s [%s]", name, strings.Join(parts, " "))
}
