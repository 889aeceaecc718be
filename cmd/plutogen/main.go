// Package main provides the CLI entry point for plutogen.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/ukaji3/plutogen-go/pkg/plutogen"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/catalog"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/config"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/dyn2dat"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	outputPath  string
	manifestDir string
	inputPath   string
	datPath     string
	mode        string
	configPath  string
	catalogPath string
	workers     int
	manifests   bool
	noSanitize  bool
	verbose     bool
	logLevel    string

	cfg    config.Config
	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plutogen",
		Short: "Generate procedure-language code from spreadsheet procedures",
		Long: `plutogen reads spacecraft operations procedures written as Excel
workbooks and generates the equivalent procedure-language source files.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Development logging at debug level")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	convertCmd := &cobra.Command{
		Use:   "convert [input.xlsx | input-dir]",
		Short: "Convert one workbook or every workbook under a directory",
		Long: `Converts a single workbook to stdout (or --output), or a whole directory
tree into --output, mirroring its folders. Folders named "old" and lock files
are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file, or output directory for a directory input")
	convertCmd.Flags().StringVar(&mode, "mode", "standard", "Output mode: light, standard, verbose")
	convertCmd.Flags().StringVar(&catalogPath, "catalog", "", "HCL catalog file overriding the built-in trees")
	convertCmd.Flags().IntVar(&workers, "workers", 0, "Concurrent conversions for a directory input (default from config)")
	convertCmd.Flags().BoolVar(&manifests, "manifest", false, "Also write one manifest per folder")
	convertCmd.Flags().BoolVar(&noSanitize, "no-sanitize", false, "Keep forbidden characters and empty steps")

	manifestCmd := &cobra.Command{
		Use:   "manifest [input-dir]",
		Short: "Write the folder manifests of a procedure tree",
		Args:  cobra.ExactArgs(1),
		RunE:  runManifest,
	}
	manifestCmd.Flags().StringVarP(&manifestDir, "output", "o", ".", "Output directory")

	dynCmd := &cobra.Command{
		Use:   "dyn2dat",
		Short: "Convert a .dyn parameter list into a .dat file",
		Args:  cobra.NoArgs,
		RunE:  runDyn2Dat,
	}
	dynCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input .dyn file")
	dynCmd.Flags().StringVarP(&datPath, "output", "o", "", "Output .dat file (default: input with .dat extension)")
	_ = dynCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(convertCmd, manifestCmd, dynCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger shared by every
// command.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	var err error
	logger, err = newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func newLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if verbose || lc.Development {
		zc = zap.NewDevelopmentConfig()
	}

	name := lc.Level
	if logLevel != "" {
		name = logLevel
	} else if verbose {
		name = "debug"
	}
	if name != "" {
		level, err := zapcore.ParseLevel(name)
		if err != nil {
			return nil, err
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}
	return zc.Build()
}

func conversionOptions() (plutogen.Options, error) {
	m, err := plutogen.ParseMode(mode)
	if err != nil {
		return plutogen.Options{}, err
	}

	opts := plutogen.DefaultOptions()
	opts.Mode = m
	opts.Config = cfg
	opts.Logger = logger
	opts.Manifests = manifests
	if workers > 0 {
		opts.Config.Workers = workers
	}
	if noSanitize {
		sanitize := false
		opts.Sanitize = &sanitize
	}

	path := catalogPath
	if path == "" {
		path = cfg.Catalogs.File
	}
	if path != "" {
		set, err := catalog.LoadFile(path, catalog.Defaults())
		if err != nil {
			return plutogen.Options{}, err
		}
		opts.Catalogs = set
	}
	return opts, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("file not found: %s", input)
	}

	opts, err := conversionOptions()
	if err != nil {
		return err
	}

	if info.IsDir() {
		return convertDir(cmd.Context(), input, opts)
	}

	res, err := plutogen.Convert(input, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	if outputPath == "" {
		fmt.Print(res.Text)
		return nil
	}
	return res.WriteFile(outputPath)
}

func convertDir(ctx context.Context, input string, opts plutogen.Options) error {
	if outputPath == "" {
		return fmt.Errorf("--output is required for a directory input")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	report, err := plutogen.ConvertTree(ctx, input, outputPath, opts)
	if err != nil {
		return err
	}

	for _, f := range report.Files {
		if f.Err != nil {
			fmt.Printf("FAILED  %s: %v\n", f.Source, f.Err)
			continue
		}
		fmt.Printf("OK      %s -> %s (%d diagnostics)\n", f.Source, f.Output, f.Diagnostics)
	}
	for _, m := range report.Manifests {
		fmt.Printf("MANIFEST %s\n", m)
	}
	if n := report.Failed(); n > 0 {
		return fmt.Errorf("%d of %d conversions failed", n, len(report.Files))
	}
	return nil
}

func runManifest(cmd *cobra.Command, args []string) error {
	opts := plutogen.DefaultOptions()
	opts.Config = cfg
	opts.Logger = logger

	paths, err := plutogen.WriteManifests(args[0], manifestDir, opts)
	if err != nil {
		return fmt.Errorf("failed to write manifests: %w", err)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

func runDyn2Dat(cmd *cobra.Command, args []string) error {
	out := datPath
	if out == "" {
		out = dyn2dat.OutputPath(inputPath)
	}
	n, err := dyn2dat.Convert(inputPath, out)
	if err != nil {
		return err
	}
	logger.Info("converted parameter list",
		zap.String("input", inputPath),
		zap.String("output", out),
		zap.Int("entries", n))
	return nil
}
