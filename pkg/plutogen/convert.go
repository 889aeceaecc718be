package plutogen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/catalog"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/classify"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/codegen"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/config"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/parser"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/postproc"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Result is one converted procedure.
type Result struct {
	// Source is the workbook file name.
	Source string `json:"source"`
	// Text is the complete output file.
	Text string `json:"text"`
	// Matrix is the identifier matrix the code was generated from.
	Matrix models.Matrix `json:"matrix,omitempty"`
	// Declared lists the variables of the declare block.
	Declared    []string             `json:"declared,omitempty"`
	Diagnostics []codegen.Diagnostic `json:"diagnostics,omitempty"`
}

// WriteFile writes the procedure text to path, creating its directory.
func (r *Result) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return NewConversionError(r.Source, StageWrite, err)
	}
	if err := os.WriteFile(path, []byte(r.Text), 0o644); err != nil {
		return NewConversionError(r.Source, StageWrite, err)
	}
	return nil
}

// Convert converts the workbook at path.
func Convert(path string, opts Options) (*Result, error) {
	return newConverter(opts).convertPath(path)
}

// ConvertWorkbook converts an already opened workbook. name is used as the
// procedure's source file name.
func ConvertWorkbook(f *excelize.File, name string, opts Options) (*Result, error) {
	return newConverter(opts).convert(f, name)
}

// converter holds what every conversion of one run shares. It is safe for
// concurrent use.
type converter struct {
	opts   Options
	cfg    config.Config
	gen    *codegen.Generator
	logger *zap.Logger
}

func newConverter(opts Options) *converter {
	cfg := opts.config()
	set := opts.catalogs()
	logger := opts.logger()
	return &converter{
		opts: opts,
		cfg:  cfg,
		gen: codegen.New(
			catalog.NewResolver(set.Parameters),
			catalog.NewResolver(set.Procedures),
			codegen.SettingsFromConfig(cfg),
			logger,
		),
		logger: logger,
	}
}

func (c *converter) convertPath(path string) (*Result, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, NewConversionError(path, StageOpen, ErrFileNotFound)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewConversionError(path, StageOpen, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	return c.convert(f, filepath.Base(path))
}

func (c *converter) convert(f *excelize.File, name string) (*Result, error) {
	proc, err := parser.ReadProcedure(f, c.cfg)
	if err != nil {
		return nil, NewConversionError(name, StageRead, err)
	}
	proc.Source = name

	matrix, err := classify.Classify(proc.Sheet, c.cfg.BoundaryColor)
	if err != nil {
		return nil, NewConversionError(name, StageClassify, err)
	}
	c.logger.Debug("classified procedure sheet",
		zap.String("file", name),
		zap.Int("rows", proc.Sheet.Len()),
		zap.Int("entries", len(matrix)))

	gen, err := c.gen.Generate(proc, matrix)
	if err != nil {
		return nil, NewConversionError(name, StageGenerate, err)
	}

	text := gen.Text
	if c.opts.ShouldIncludeHeader() {
		text = Header(proc, c.opts.generatedAt()) + text
	}
	if c.opts.Mode == ModeVerbose {
		text += MatrixComment(proc.Sheet, matrix)
	}
	if c.opts.ShouldSanitize() {
		text = postproc.Clean(text)
	}

	return &Result{
		Source:      name,
		Text:        text,
		Matrix:      matrix,
		Declared:    gen.Declared,
		Diagnostics: gen.Diagnostics,
	}, nil
}
