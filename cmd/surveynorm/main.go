// Package main provides the CLI entry point for surveynorm.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"surveynorm/pkg/normalizer"
	"surveynorm/pkg/normalizer/tableio"
)

var (
	outputPath       string
	surveyTypeColumn string
	verbose          bool

	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "surveynorm [input.csv|input.xlsx]",
		Short: "Normalize a survey export into a fixed-width table",
		Long: `surveynorm reshapes a school-survey export, where each survey type has
its own column layout, into a table where every row carries the same
columns: nine answers per division (grammar, middle, high) followed by
five whole-school answers, after the export's own leading columns.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "out.csv", "Output file path (.csv or .xlsx)")
	rootCmd.Flags().StringVar(&surveyTypeColumn, "survey-type-column", "K", "Spreadsheet column holding the survey-type value")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable per-row debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts := normalizer.DefaultOptions()
	opts.SurveyTypeColumn = surveyTypeColumn
	n, err := normalizer.New(opts)
	if err != nil {
		return err
	}

	src, err := openSource(inputPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := openSink(outputPath)
	if err != nil {
		return err
	}

	logger.Info("normalizing survey export",
		zap.String("input", inputPath),
		zap.String("output", outputPath))

	counted := &countingSource{src: src}
	if err := n.Run(counted, dst); err != nil {
		dst.Close()
		return fmt.Errorf("normalization failed: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("normalized survey export", zap.Int("rows", counted.rows))
	return nil
}

type rowSourceCloser interface {
	normalizer.RowSource
	io.Closer
}

type rowSinkCloser interface {
	normalizer.RowSink
	io.Closer
}

// openSource picks the input decoder by file extension, as the export may
// be downloaded either as delimited text or as a workbook.
func openSource(path string) (rowSourceCloser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return tableio.OpenCSV(path)
	case ".xlsx":
		rows, err := tableio.ReadXLSX(path)
		if err != nil {
			return nil, err
		}
		return nopCloserSource{tableio.NewSliceSource(rows)}, nil
	default:
		return nil, fmt.Errorf("unsupported input type: %s", ext)
	}
}

func openSink(path string) (rowSinkCloser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return tableio.CreateCSV(path)
	case ".xlsx":
		return tableio.CreateXLSX(path), nil
	default:
		return nil, fmt.Errorf("unsupported output type: %s", ext)
	}
}

type nopCloserSource struct {
	*tableio.SliceSource
}

func (nopCloserSource) Close() error { return nil }

// countingSource logs each row as it is read and tracks the total.
type countingSource struct {
	src  normalizer.RowSource
	rows int
}

func (s *countingSource) Read() ([]string, error) {
	row, err := s.src.Read()
	if err != nil {
		return row, err
	}
	logger.Debug("processing row", zap.Int("row", s.rows))
	s.rows++
	return row, nil
}
