package catalog

import (
	"strings"
	"unicode"
)

// Resolution is the location of one identifier inside a Tree.
type Resolution struct {
	Prefix     string // matched prefix, or the tree placeholder
	Category   string
	Kind       string
	Family     string
	Root       string
	Identifier string // escaped identifier
	Found      bool
}

// Qualified renders "<id> of <category> of <kind> of <family> of <root>".
func (r Resolution) Qualified() string {
	return r.Identifier + " of " + r.Category + " of " + r.Kind + " of " + r.Family + " of " + r.Root
}

// Resolver looks identifiers up in a Tree it owns exclusively.
type Resolver struct {
	tree Tree
}

// NewResolver copies t so later changes by the caller cannot leak in.
func NewResolver(t Tree) *Resolver {
	return &Resolver{tree: t.Clone()}
}

// Tree returns a copy of the resolver's tree.
func (r *Resolver) Tree() Tree {
	return r.tree.Clone()
}

// Resolve returns the first category, in declaration order, holding a prefix
// of id. An identifier nothing matches resolves to the placeholder path.
func (r *Resolver) Resolve(id string) Resolution {
	escaped := EscapeIdentifier(id)
	for _, root := range r.tree.Roots {
		for _, family := range root.Families {
			for _, kind := range family.Kinds {
				for _, cat := range kind.Categories {
					for _, prefix := range cat.Prefixes {
						if strings.HasPrefix(id, prefix) {
							return Resolution{
								Prefix:     prefix,
								Category:   cat.Name,
								Kind:       kind.Name,
								Family:     family.Name,
								Root:       root.Name,
								Identifier: escaped,
								Found:      true,
							}
						}
					}
				}
			}
		}
	}
	return Resolution{
		Prefix:     r.tree.Placeholder,
		Category:   NotInside,
		Kind:       r.tree.Placeholder,
		Family:     NotInside,
		Root:       NotInside,
		Identifier: escaped,
	}
}

// EscapeIdentifier prepends "~" to identifiers starting with a digit, which
// the procedure language does not allow.
func EscapeIdentifier(id string) string {
	for _, r := range id {
		if unicode.IsDigit(r) {
			return "~" + id
		}
		break
	}
	return id
}
