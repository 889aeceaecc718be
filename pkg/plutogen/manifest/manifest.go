// Package manifest writes the system-element manifests (".se.xml") that
// register generated procedures and their input arguments.
package manifest

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/config"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/parser"
	"github.com/xuri/excelize/v2"
)

const (
	SchemaVersion     = "1.0"
	EstimatedDuration = "000:00:05:00.000"
	ValidationState   = "draft"
	// Suffix is appended to the folder name to form the manifest file name.
	Suffix = ".se.xml"
)

// Header is the XML declaration written before the manifest.
const Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// LocalSystemElement is the manifest of one folder.
type LocalSystemElement struct {
	XMLName       xml.Name   `xml:"LocalSystemElement"`
	SchemaVersion string     `xml:"SchemaVersion,attr"`
	Objects       []SEObject `xml:"SEObject"`
}

// SEObject describes one procedure.
type SEObject struct {
	Name     string             `xml:"Name,attr"`
	Activity ActivityDefinition `xml:"ActivityDefinition"`
}

// ActivityDefinition holds the procedure description and its arguments.
type ActivityDefinition struct {
	Description       string     `xml:"Description,attr"`
	Constraints       string     `xml:"Constraints,attr"`
	Objectives        string     `xml:"Objectives,attr"`
	Preconditions     string     `xml:"Preconditions,attr"`
	Postconditions    string     `xml:"Postconditions,attr"`
	EstimatedDuration string     `xml:"EstimatedDuration,attr"`
	ValidationState   string     `xml:"ValidationState,attr"`
	Arguments         []Argument `xml:"Argument"`
}

// Argument is one procedure input.
type Argument struct {
	Name        string `xml:"Name,attr"`
	Description string `xml:"Description,attr"`
	Scalar      Scalar `xml:"Scalar"`
}

// Scalar carries the argument's schema type.
type Scalar struct {
	Type string `xml:"Type,attr"`
}

// New returns an empty manifest.
func New() *LocalSystemElement {
	return &LocalSystemElement{SchemaVersion: SchemaVersion}
}

// ProcedureName splits a workbook file name into the procedure name (text
// before the first '_', '-' replaced by '_') and its description (the rest,
// '_' replaced by spaces).
func ProcedureName(file string) (name, description string) {
	base := strings.TrimSuffix(filepath.Base(file), ".xlsx")
	head, rest, _ := strings.Cut(base, "_")
	name = strings.ReplaceAll(head, "-", "_")
	description = strings.TrimSpace(strings.ReplaceAll(rest, "_", " "))
	return name, description
}

// NewObject builds the entry of one procedure.
func NewObject(file string, params []models.Parameter) SEObject {
	name, desc := ProcedureName(file)
	obj := SEObject{
		Name: name,
		Activity: ActivityDefinition{
			Description:       desc,
			EstimatedDuration: EstimatedDuration,
			ValidationState:   ValidationState,
		},
	}
	for _, p := range params {
		obj.Activity.Arguments = append(obj.Activity.Arguments, Argument{
			Name:        p.ID,
			Description: p.Description,
			Scalar:      Scalar{Type: models.ParseValueType(p.Type).SchemaName()},
		})
	}
	return obj
}

// ObjectFromWorkbook opens the workbook at path and builds its entry from
// the "Parameters:" block.
func ObjectFromWorkbook(path string, cfg config.Config) (SEObject, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return SEObject{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	params, err := parser.ExtractParameters(f, cfg)
	if err != nil {
		return SEObject{}, fmt.Errorf("failed to read parameters of %s: %w", path, err)
	}
	return NewObject(path, params), nil
}

// Add appends obj to the manifest.
func (l *LocalSystemElement) Add(obj SEObject) {
	l.Objects = append(l.Objects, obj)
}

// Encode writes the manifest with its XML declaration.
func (l *LocalSystemElement) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// FileName returns the manifest name for a folder: its base name plus
// ".se.xml".
func FileName(dir string) string {
	return filepath.Base(filepath.Clean(dir)) + Suffix
}

// WriteFile writes the manifest of dir into outDir, creating outDir when
// needed, and returns the written path.
func (l *LocalSystemElement) WriteFile(outDir, dir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", outDir, err)
	}
	path := filepath.Join(outDir, FileName(dir))
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := l.Encode(out); err != nil {
		out.Close()
		return "", err
	}
	return path, out.Close()
}
