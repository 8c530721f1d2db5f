package resolver

import (
	"fmt"
	"strings"
)

// MissingParentError reports an inherits reference that no search location
// could satisfy. Chain holds the names walked so far, requested profile
// first.
type MissingParentError struct {
	Parent string
	Chain  []string
}

func (e *MissingParentError) Error() string {
	return fmt.Sprintf("parent profile not found: %s (chain: %s)", e.Parent, strings.Join(e.Chain, " -> "))
}

// CyclicInheritanceError reports an inheritance chain that revisits a
// profile identity.
type CyclicInheritanceError struct {
	Repeated string
	Chain    []string
}

func (e *CyclicInheritanceError) Error() string {
	return fmt.Sprintf("circular inheritance detected: %s -> %s", strings.Join(e.Chain, " -> "), e.Repeated)
}
