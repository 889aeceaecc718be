package plutogen

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/manifest"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/walker"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FileReport is the outcome of converting one workbook in a batch.
type FileReport struct {
	// Source is the workbook path relative to the input root.
	Source string `json:"source"`
	// Output is the procedure file written, empty on failure.
	Output      string `json:"output,omitempty"`
	Diagnostics int    `json:"diagnostics"`
	Err         error  `json:"-"`
}

// BatchReport summarises a ConvertTree run. Files are in input order.
type BatchReport struct {
	RunID     string       `json:"run_id"`
	Files     []FileReport `json:"files"`
	Manifests []string     `json:"manifests,omitempty"`
}

// Failed returns the number of workbooks that could not be converted.
func (r *BatchReport) Failed() int {
	n := 0
	for _, f := range r.Files {
		if f.Err != nil {
			n++
		}
	}
	return n
}

// ConvertTree converts every workbook under inRoot into outRoot, mirroring
// the folder layout. A failing workbook is recorded in the report and does
// not stop the others. At most Config.Workers conversions run at once.
func ConvertTree(ctx context.Context, inRoot, outRoot string, opts Options) (*BatchReport, error) {
	sources, err := walker.Discover(inRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", inRoot, err)
	}

	report := &BatchReport{
		RunID: uuid.NewString(),
		Files: make([]FileReport, len(sources)),
	}
	opts.Logger = opts.logger().With(zap.String("run", report.RunID))
	conv := newConverter(opts)
	conv.logger.Info("batch started",
		zap.String("input", inRoot),
		zap.String("output", outRoot),
		zap.Int("files", len(sources)),
		zap.Int("workers", conv.cfg.Workers))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(conv.cfg.Workers, 1))
	for i, src := range sources {
		i, src := i, src
		eg.Go(func() error {
			report.Files[i] = conv.convertSource(egCtx, src, outRoot)
			return nil
		})
	}
	_ = eg.Wait()
	if err := ctx.Err(); err != nil {
		return report, err
	}

	if opts.Manifests {
		report.Manifests, err = conv.writeManifests(inRoot, outRoot, sources)
		if err != nil {
			return report, err
		}
	}

	conv.logger.Info("batch finished",
		zap.Int("files", len(report.Files)),
		zap.Int("failed", report.Failed()))
	return report, nil
}

func (c *converter) convertSource(ctx context.Context, src walker.Source, outRoot string) FileReport {
	rep := FileReport{Source: src.Rel}
	if err := ctx.Err(); err != nil {
		rep.Err = err
		return rep
	}

	res, err := c.convertPath(src.Path)
	if err == nil {
		out := src.Output(outRoot)
		if err = res.WriteFile(out); err == nil {
			rep.Output = out
			rep.Diagnostics = len(res.Diagnostics)
		}
	}
	if err != nil {
		rep.Err = err
		c.logger.Error("conversion failed", zap.String("file", src.Rel), zap.Error(err))
		return rep
	}
	c.logger.Info("converted procedure",
		zap.String("file", src.Rel),
		zap.String("output", rep.Output),
		zap.Int("diagnostics", rep.Diagnostics))
	return rep
}

// WriteManifests writes one manifest per folder of workbooks under inRoot
// into the matching folder under outRoot and returns the written paths.
func WriteManifests(inRoot, outRoot string, opts Options) ([]string, error) {
	sources, err := walker.Discover(inRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", inRoot, err)
	}
	return newConverter(opts).writeManifests(inRoot, outRoot, sources)
}

func (c *converter) writeManifests(inRoot, outRoot string, sources []walker.Source) ([]string, error) {
	rootName := inRoot
	if abs, err := filepath.Abs(inRoot); err == nil {
		rootName = abs
	}

	var written []string
	for _, dir := range walker.Dirs(sources) {
		m := manifest.New()
		for _, src := range sources {
			if src.Dir != dir {
				continue
			}
			obj, err := manifest.ObjectFromWorkbook(src.Path, c.cfg)
			if err != nil {
				c.logger.Warn("skipping workbook in manifest", zap.String("file", src.Rel), zap.Error(err))
				continue
			}
			m.Add(obj)
		}
		name := dir
		if dir == "." {
			name = rootName
		}
		path, err := m.WriteFile(filepath.Join(outRoot, dir), name)
		if err != nil {
			return written, err
		}
		c.logger.Info("wrote manifest", zap.String("path", path), zap.Int("procedures", len(m.Objects)))
		written = append(written, path)
	}
	return written, nil
}
