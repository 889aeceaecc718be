package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ErrUnknownCatalog is returned for catalog blocks other than "parameters"
// and "procedures".
var ErrUnknownCatalog = errors.New("unknown catalog")

// hclCatalogFile is the top-level structure of a catalog file for decoding.
type hclCatalogFile struct {
	Catalogs []*hclCatalog `hcl:"catalog,block"`
}

type hclCatalog struct {
	Name        string     `hcl:"name,label"`
	Placeholder *string    `hcl:"placeholder,optional"`
	Roots       []*hclRoot `hcl:"root,block"`
}

type hclRoot struct {
	Name     string       `hcl:"name,label"`
	Families []*hclFamily `hcl:"family,block"`
}

type hclFamily struct {
	Name  string     `hcl:"name,label"`
	Kinds []*hclKind `hcl:"kind,block"`
}

type hclKind struct {
	Name       string         `hcl:"name,label"`
	Categories []*hclCategory `hcl:"category,block"`
}

type hclCategory struct {
	Name     string   `hcl:"name,label"`
	Prefixes []string `hcl:"prefixes"`
}

// LoadFile reads an HCL catalog file. Trees the file does not define are
// taken from base.
func LoadFile(path string, base Set) (Set, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Set{}, fmt.Errorf("failed to parse catalog file %s: %w", path, diags)
	}
	return decode(file, path, base)
}

// Parse decodes catalog source held in memory.
func Parse(src []byte, filename string, base Set) (Set, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Set{}, fmt.Errorf("failed to parse catalog file %s: %w", filename, diags)
	}
	return decode(file, filename, base)
}

func decode(file *hcl.File, filename string, base Set) (Set, error) {
	var parsed hclCatalogFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return Set{}, fmt.Errorf("failed to decode catalog file %s: %w", filename, diags)
	}

	out := Set{
		Parameters: base.Parameters.Clone(),
		Procedures: base.Procedures.Clone(),
	}
	seen := make(map[string]bool)
	for _, c := range parsed.Catalogs {
		if seen[c.Name] {
			return Set{}, fmt.Errorf("%s: catalog %q defined twice", filename, c.Name)
		}
		seen[c.Name] = true

		var target *Tree
		switch c.Name {
		case "parameters":
			target = &out.Parameters
		case "procedures":
			target = &out.Procedures
		default:
			return Set{}, fmt.Errorf("%s: %w %q", filename, ErrUnknownCatalog, c.Name)
		}

		tree, err := c.toTree(target.Placeholder)
		if err != nil {
			return Set{}, fmt.Errorf("%s: %w", filename, err)
		}
		*target = tree
	}
	return out, nil
}

// toTree converts the decoded block, keeping declaration order.
func (c *hclCatalog) toTree(placeholder string) (Tree, error) {
	if c.Placeholder != nil && *c.Placeholder != "" {
		placeholder = *c.Placeholder
	}
	tree := Tree{Name: c.Name, Placeholder: placeholder}
	for _, r := range c.Roots {
		root := Root{Name: r.Name}
		for _, f := range r.Families {
			family := Family{Name: f.Name}
			for _, k := range f.Kinds {
				kind := Kind{Name: k.Name}
				for _, cat := range k.Categories {
					for _, p := range cat.Prefixes {
						if strings.TrimSpace(p) == "" {
							return Tree{}, fmt.Errorf("catalog %q: empty prefix in category %q", c.Name, cat.Name)
						}
					}
					kind.Categories = append(kind.Categories, Category{
						Name:     cat.Name,
						Prefixes: append([]string(nil), cat.Prefixes...),
					})
				}
				family.Kinds = append(family.Kinds, kind)
			}
			root.Families = append(root.Families, family)
		}
		tree.Roots = append(tree.Roots, root)
	}
	return tree, nil
}
