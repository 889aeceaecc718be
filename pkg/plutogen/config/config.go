// Package config holds the layout and generation settings of the converter.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all converter configuration.
type Config struct {
	// Sheet names inside a procedure workbook
	Sheets SheetsConfig `yaml:"sheets"`

	// Front page cell addresses
	FrontPage FrontPageConfig `yaml:"front_page"`

	// Procedure sheet column letters
	Columns ColumnsConfig `yaml:"columns"`

	// BoundaryColor is the step-column fill colour marking operation sections.
	BoundaryColor string `yaml:"boundary_color"`

	// SendWait is the pause emitted after every plain send, e.g. "0.5s".
	SendWait string `yaml:"send_wait"`

	Engineer EngineerConfig `yaml:"engineer"`
	Terminal TerminalConfig `yaml:"terminal"`
	Catalogs CatalogsConfig `yaml:"catalogs"`

	// Workers bounds concurrent conversions in batch mode (1 = sequential).
	Workers int `yaml:"workers"`

	Logging LoggingConfig `yaml:"logging"`
}

// SheetsConfig names the two sheets of a procedure workbook.
type SheetsConfig struct {
	FrontPage string `yaml:"front_page"`
	Procedure string `yaml:"procedure"`
}

// FrontPageConfig locates procedure metadata on the front page.
type FrontPageConfig struct {
	TitleCell string   `yaml:"title_cell"`
	IDCell    string   `yaml:"id_cell"`
	Columns   []string `yaml:"columns"` // copied into the documentation header
}

// ColumnsConfig maps the eight procedure columns to column letters.
type ColumnsConfig struct {
	Step        string `yaml:"step"`
	Operation   string `yaml:"operation"`
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Raw         string `yaml:"raw"`
	Eng         string `yaml:"eng"`
	Unit        string `yaml:"unit"`
}

// EngineerConfig configures the CALL ENGINEER notification call.
type EngineerConfig struct {
	Path    string `yaml:"path"`
	Subject string `yaml:"subject"`
	ToMail  string `yaml:"to_mail"`
	ToName  string `yaml:"to_name"`
}

// TerminalConfig configures the EXECUTE IN TERMINAL call.
type TerminalConfig struct {
	Path string `yaml:"path"`
}

// CatalogsConfig points at an optional HCL catalog file.
type CatalogsConfig struct {
	File string `yaml:"file"`
}

// LoggingConfig configures the zap logger built by the CLI.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the layout used by the mission's procedure templates.
func Default() Config {
	return Config{
		Sheets: SheetsConfig{
			FrontPage: "Front Page",
			Procedure: "Procedure",
		},
		FrontPage: FrontPageConfig{
			TitleCell: "D3",
			IDCell:    "D4",
			Columns:   []string{"A", "B", "C", "D", "E"},
		},
		Columns: ColumnsConfig{
			Step:        "A",
			Operation:   "B",
			ID:          "C",
			Description: "D",
			Type:        "E",
			Raw:         "F",
			Eng:         "G",
			Unit:        "H",
		},
		BoundaryColor: "FF92CDDC",
		SendWait:      "0.5s",
		Engineer: EngineerConfig{
			Path:    "Send of Email of Communicator of SwissKnife of PRIME of D0 of TEST_MISSION of SMF",
			Subject: "MATIS: CALL ENGINEER",
			ToMail:  "operators@localhost",
			ToName:  "Operators",
		},
		Terminal: TerminalConfig{
			Path: "execute_and_get_return of Command_Line of SSM",
		},
		Workers: 1,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file and overlays it on Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data on top of Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks column letters, cell names and limits.
func (c Config) Validate() error {
	cols := map[string]string{
		"step":        c.Columns.Step,
		"operation":   c.Columns.Operation,
		"id":          c.Columns.ID,
		"description": c.Columns.Description,
		"type":        c.Columns.Type,
		"raw":         c.Columns.Raw,
		"eng":         c.Columns.Eng,
		"unit":        c.Columns.Unit,
	}
	for name, letter := range cols {
		if _, err := excelize.ColumnNameToNumber(letter); err != nil {
			return fmt.Errorf("invalid column %q for %s: %w", letter, name, err)
		}
	}
	for _, letter := range c.FrontPage.Columns {
		if _, err := excelize.ColumnNameToNumber(letter); err != nil {
			return fmt.Errorf("invalid front page column %q: %w", letter, err)
		}
	}
	for _, cell := range []string{c.FrontPage.TitleCell, c.FrontPage.IDCell} {
		if _, _, err := excelize.CellNameToCoordinates(cell); err != nil {
			return fmt.Errorf("invalid front page cell %q: %w", cell, err)
		}
	}
	if c.Sheets.FrontPage == "" || c.Sheets.Procedure == "" {
		return errors.New("sheet names must not be empty")
	}
	if NormalizeColor(c.BoundaryColor) == "" {
		return errors.New("boundary_color must not be empty")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// ColumnIndex returns the 0-based index of a column letter. Letters are
// validated by Validate, so an invalid letter yields -1.
func ColumnIndex(letter string) int {
	n, err := excelize.ColumnNameToNumber(letter)
	if err != nil {
		return -1
	}
	return n - 1
}

// NormalizeColor brings ARGB/RGB colour strings to upper-case RGB:
// "FF92CDDC", "#92cddc" and "92CDDC" all become "92CDDC".
func NormalizeColor(c string) string {
	c = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(c), "#"))
	if len(c) == 8 {
		c = c[2:]
	}
	return c
}
