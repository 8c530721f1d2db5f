// Package resolver flattens OrcaSlicer profile inheritance chains into
// self-contained profiles.
package resolver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/orcaflat/orcaflat/pkg/models"
	"github.com/orcaflat/orcaflat/pkg/store"
)

// Accessor is the profile lookup surface the resolver needs. *store.Store
// implements it.
type Accessor interface {
	Load(identifier string, pt models.ProfileType) (*models.Profile, error)
	FindParent(name string, pt models.ProfileType) (*models.Profile, error)
}

// Resolver walks inherits chains and merges them into flattened profiles.
type Resolver struct {
	accessor Accessor
}

// New creates a Resolver backed by the given accessor.
func New(accessor Accessor) *Resolver {
	return &Resolver{accessor: accessor}
}

// Resolve loads the profile named by identifier, follows its inherits chain
// to the root, and returns the merged flattened profile. pt may be empty,
// in which case the type is determined from the file's directory, the
// profile's own type field, or its key set, in that order of authority.
func (r *Resolver) Resolve(identifier string, pt models.ProfileType) (*models.Profile, error) {
	profile, err := r.Load(identifier, pt)
	if err != nil {
		return nil, err
	}

	effectiveType, err := determineType(profile, pt)
	if err != nil {
		return nil, err
	}

	chain, err := r.BuildChain(profile, effectiveType)
	if err != nil {
		return nil, err
	}

	flattened := Merge(chain)
	flattened.Type = effectiveType
	return flattened, nil
}

// Load fetches a profile without resolving inheritance. Bare names with no
// type hint are tried against each template set in turn.
func (r *Resolver) Load(identifier string, pt models.ProfileType) (*models.Profile, error) {
	profile, err := r.accessor.Load(identifier, pt)
	if err != nil && pt == "" && errors.Is(err, store.ErrNotFound) {
		for _, candidate := range models.ProfileTypes {
			if p, loadErr := r.accessor.Load(identifier, candidate); loadErr == nil {
				return p, nil
			}
		}
	}
	return profile, err
}

// BuildChain follows the inherits chain from profile to its root ancestor.
// The returned chain is ordered requested profile first, root last. The
// walk is iterative with a visited set, so malformed input fails with a
// CyclicInheritanceError instead of exhausting the stack.
func (r *Resolver) BuildChain(profile *models.Profile, pt models.ProfileType) ([]*models.Profile, error) {
	chain := []*models.Profile{profile}
	visited := map[string]bool{profile.Name: true}

	current := profile
	for current.Inherits != "" {
		parentName := current.Inherits

		// Cycle check runs before the lookup so a self-referential tree
		// can never recurse through the store.
		if visited[parentName] {
			return nil, &CyclicInheritanceError{Repeated: parentName, Chain: chainNames(chain)}
		}

		parent, err := r.accessor.FindParent(parentName, pt)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, &MissingParentError{Parent: parentName, Chain: chainNames(chain)}
			}
			return nil, fmt.Errorf("failed to load parent %s: %w", parentName, err)
		}

		// The lookup may resolve a filename to a different display name;
		// both identities count for cycle detection.
		if visited[parent.Name] {
			return nil, &CyclicInheritanceError{Repeated: parent.Name, Chain: chainNames(chain)}
		}
		visited[parentName] = true
		visited[parent.Name] = true

		chain = append(chain, parent)
		current = parent
	}

	return chain, nil
}

// Merge flattens a chain root-to-leaf: ancestors apply first and descendant
// values win according to each key's merge strategy. The inherits key is
// dropped; the ancestor names are kept as provenance.
func Merge(chain []*models.Profile) *models.Profile {
	leaf := chain[0]
	out := &models.Profile{
		Name:   leaf.Name,
		Type:   leaf.Type,
		Path:   leaf.Path,
		Fields: make(map[string]any),
	}

	for i := len(chain) - 1; i >= 0; i-- {
		ancestor := chain[i].Clone()
		for key, value := range ancestor.Fields {
			if strategyFor(key) == OverrideOrInherit && emptyValue(value) {
				continue // empty redefinition inherits the ancestor's value
			}
			out.Fields[key] = value
		}
	}

	delete(out.Fields, "inherits")
	out.Fields["name"] = leaf.Name

	for _, ancestor := range chain[1:] {
		out.InheritedFrom = append(out.InheritedFrom, ancestor.Name)
	}
	return out
}

// determineType reconciles the requested type, the file's directory, and
// the profile's own type field. The directory is authoritative when it
// disagrees with the declared type; the mismatch is logged.
func determineType(profile *models.Profile, requested models.ProfileType) (models.ProfileType, error) {
	dirType := store.TypeFromPath(profile.Path)

	if dirType != "" && profile.Type != "" && dirType != profile.Type {
		slog.Warn("profile type field disagrees with its directory, using directory",
			"profile", profile.Name, "declared", profile.Type, "directory", dirType)
	}

	for _, candidate := range []models.ProfileType{requested, dirType, profile.Type} {
		if candidate != "" {
			return candidate, nil
		}
	}
	if inferred := models.InferType(profile.Fields); inferred != "" {
		return inferred, nil
	}
	return "", fmt.Errorf("cannot determine profile type for %s: set a 'type' field or place the file in a filament/machine/process directory", profile.Name)
}

func chainNames(chain []*models.Profile) []string {
	names := make([]string, len(chain))
	for i, p := range chain {
		names[i] = p.Name
	}
	return names
}
