package plutogen

import (
	"errors"
	"fmt"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/classify"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrMissingSheet indicates the front page or procedure sheet is absent.
var ErrMissingSheet = parser.ErrMissingSheet

// ErrNoBoundaries indicates the procedure sheet has no coloured step cells.
var ErrNoBoundaries = classify.ErrNoBoundaries

// Conversion stages reported by ConversionError.
const (
	StageOpen     = "open"
	StageRead     = "read"
	StageClassify = "classify"
	StageGenerate = "generate"
	StageWrite    = "write"
)

// ConversionError represents an error converting one workbook.
type ConversionError struct {
	Path  string
	Stage string // one of the Stage constants
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion error in %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(path, stage string, err error) *ConversionError {
	return &ConversionError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
