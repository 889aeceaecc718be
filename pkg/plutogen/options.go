// Package plutogen converts spreadsheet procedures into procedure-language
// source files.
package plutogen

import (
	"fmt"
	"time"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/catalog"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/config"
	"go.uber.org/zap"
)

// Mode represents the output mode.
type Mode string

const (
	// ModeLight writes procedure code only.
	ModeLight Mode = "light"
	// ModeStandard adds the documentation header with the front page.
	ModeStandard Mode = "standard"
	// ModeVerbose also appends the identifier matrix as a trailing comment.
	ModeVerbose Mode = "verbose"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeLight, ModeStandard, ModeVerbose:
		return m, nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", s)
	}
}

// Options configures conversion behavior.
type Options struct {
	// Mode specifies the output mode (light, standard, verbose).
	Mode Mode
	// Config is the workbook layout and site configuration.
	Config config.Config
	// Catalogs are the identifier trees. Trees without roots fall back to
	// the built-in defaults.
	Catalogs catalog.Set
	// Logger receives diagnostics. If nil, nothing is logged.
	Logger *zap.Logger
	// GeneratedAt is stamped into the header. If zero, the current time is used.
	GeneratedAt time.Time
	// IncludeHeader specifies whether to write the documentation header.
	// If nil, defaults to false for light mode, true otherwise.
	IncludeHeader *bool
	// Sanitize specifies whether to strip forbidden characters and empty
	// steps from the output. If nil, defaults to true.
	Sanitize *bool
	// Manifests makes ConvertTree write one manifest per folder.
	Manifests bool
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Mode:     ModeStandard,
		Config:   config.Default(),
		Catalogs: catalog.Defaults(),
	}
}

// ShouldIncludeHeader returns whether to write the documentation header.
func (o Options) ShouldIncludeHeader() bool {
	if o.IncludeHeader != nil {
		return *o.IncludeHeader
	}
	return o.Mode != ModeLight
}

// ShouldSanitize returns whether to clean the generated text.
func (o Options) ShouldSanitize() bool {
	if o.Sanitize != nil {
		return *o.Sanitize
	}
	return true
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) generatedAt() time.Time {
	if o.GeneratedAt.IsZero() {
		return time.Now()
	}
	return o.GeneratedAt
}

func (o Options) catalogs() catalog.Set {
	set := o.Catalogs
	defaults := catalog.Defaults()
	if len(set.Parameters.Roots) == 0 {
		set.Parameters = defaults.Parameters
	}
	if len(set.Procedures.Roots) == 0 {
		set.Procedures = defaults.Procedures
	}
	return set
}

// config returns the configured layout, or the default one when Config was
// left unset.
func (o Options) config() config.Config {
	if o.Config.Sheets == (config.SheetsConfig{}) {
		return config.Default()
	}
	return o.Config
}
