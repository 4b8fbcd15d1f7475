package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/inv2x2/matrix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// errUnknownFormat is returned for a --format value other than text or yaml.
var errUnknownFormat = errors.New("unknown output format")

// loggerFactory builds the command logger once flags are parsed.
type loggerFactory func(verbose bool) (*zap.Logger, error)

// options holds parsed flags and the logger for one invocation.
type options struct {
	file    string
	format  string
	verbose bool

	logger *zap.Logger
}

// report is the --format yaml document.
type report struct {
	Input   [][]any     `yaml:"input,flow"`
	Inverse [][]float64 `yaml:"inverse,flow"`
}

// newRootCmd wires the single inv2x2 command to the given streams.
func newRootCmd(stdin io.Reader, stdout io.Writer, newLogger loggerFactory) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "inv2x2 [matrix]",
		Short: "Invert a 2x2 matrix",
		Long: `Decodes a 2x2 matrix written as YAML or JSON, e.g. '[[4, 7], [2, 6]]',
and prints its inverse.

The matrix is read from the positional argument, from --file, or from stdin,
in that order of preference. A matrix with a zero determinant is rejected as
not invertible; elements must be integers or floats.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			opts.logger, err = newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(opts, args, stdin, stdout); err != nil {
				opts.logger.Error("inversion failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read the matrix from a YAML/JSON file")
	cmd.Flags().StringVar(&opts.format, "format", formatText, "output format: text or yaml")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// run performs one decode → invert → print cycle.
func run(opts *options, args []string, stdin io.Reader, stdout io.Writer) error {
	if opts.format != formatText && opts.format != formatYAML {
		return fmt.Errorf("%w: %q", errUnknownFormat, opts.format)
	}

	raw, source, err := readInput(opts, args, stdin)
	if err != nil {
		return err
	}
	opts.logger.Debug("read matrix", zap.String("source", source), zap.Int("bytes", len(raw)))

	m, err := decodeMatrix(raw)
	if err != nil {
		return err
	}
	opts.logger.Debug("decoded matrix", zap.Any("matrix", m))

	inv, err := matrix.InvertAny(m)
	if err != nil {
		return err
	}
	opts.logger.Debug("inverted matrix", zap.Any("inverse", inv))

	return writeResult(stdout, opts.format, m, inv)
}

// readInput picks the positional argument, then --file, then stdin.
func readInput(opts *options, args []string, stdin io.Reader) ([]byte, string, error) {
	switch {
	case len(args) == 1:
		if opts.file != "" {
			return nil, "", errors.New("give the matrix either as an argument or with --file, not both")
		}
		return []byte(args[0]), "argument", nil
	case opts.file != "":
		raw, err := os.ReadFile(opts.file)
		if err != nil {
			return nil, "", fmt.Errorf("read %s: %w", opts.file, err)
		}
		return raw, opts.file, nil
	default:
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return raw, "stdin", nil
	}
}

// decodeMatrix parses YAML (and therefore JSON) into rows of untyped
// elements and checks the shape, so malformed user input is an error
// rather than the inverter's precondition panic.
func decodeMatrix(raw []byte) ([][]any, error) {
	var m [][]any
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}
	if err := matrix.CheckShape(m); err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}

	return m, nil
}

// writeResult prints the inverse in the requested format.
func writeResult(w io.Writer, format string, in [][]any, inv [][]float64) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(report{Input: in, Inverse: inv}); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return enc.Close()
	}

	for _, row := range inv {
		// +0 folds negative zero so integer-looking results print as 0
		if _, err := fmt.Fprintf(w, "%g %g\n", row[0]+0, row[1]+0); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}

	return nil
}
