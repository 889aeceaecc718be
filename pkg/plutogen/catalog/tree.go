// Package catalog resolves command, telemetry and sub-procedure identifiers
// to their location in the ground segment repository.
package catalog

// NotInside fills the path levels of an identifier no prefix matches.
const NotInside = "not inside"

// Placeholders used for the prefix and kind of unresolved identifiers.
const (
	ParameterPlaceholder = "SOME_TC_and_TM"
	ProcedurePlaceholder = "SOME_PROCEDURE"
)

// Tree is an ordered catalog: root -> family -> kind -> category -> prefixes.
// Slice order is the resolution order.
type Tree struct {
	// Name identifies the tree in catalog files ("parameters", "procedures").
	Name string `json:"name"`
	// Placeholder replaces prefix and kind when nothing matches.
	Placeholder string `json:"placeholder"`
	Roots       []Root `json:"roots"`
}

// Root is the top level of a repository, e.g. "SSM".
type Root struct {
	Name     string   `json:"name"`
	Families []Family `json:"families"`
}

// Family groups kinds, e.g. "Telecommands" or "Procedures".
type Family struct {
	Name  string `json:"name"`
	Kinds []Kind `json:"kinds"`
}

// Kind groups categories, e.g. "MIB_TCs" or "Routine_nominal".
type Kind struct {
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

// Category holds the identifier prefixes filed under one subsystem.
type Category struct {
	Name     string   `json:"name"`
	Prefixes []string `json:"prefixes"`
}

// Set bundles the two trees a conversion needs.
type Set struct {
	Parameters Tree
	Procedures Tree
}

// Clone returns a deep copy of t.
func (t Tree) Clone() Tree {
	out := Tree{Name: t.Name, Placeholder: t.Placeholder}
	out.Roots = make([]Root, len(t.Roots))
	for i, r := range t.Roots {
		out.Roots[i] = Root{Name: r.Name, Families: make([]Family, len(r.Families))}
		for j, f := range r.Families {
			out.Roots[i].Families[j] = Family{Name: f.Name, Kinds: make([]Kind, len(f.Kinds))}
			for k, kd := range f.Kinds {
				cats := make([]Category, len(kd.Categories))
				for c, cat := range kd.Categories {
					cats[c] = Category{
						Name:     cat.Name,
						Prefixes: append([]string(nil), cat.Prefixes...),
					}
				}
				out.Roots[i].Families[j].Kinds[k] = Kind{Name: kd.Name, Categories: cats}
			}
		}
	}
	return out
}

// PrefixCount returns the number of leaf prefixes in t.
func (t Tree) PrefixCount() int {
	n := 0
	for _, r := range t.Roots {
		for _, f := range r.Families {
			for _, k := range f.Kinds {
				for _, c := range k.Categories {
					n += len(c.Prefixes)
				}
			}
		}
	}
	return n
}
