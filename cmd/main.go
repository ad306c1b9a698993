package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yokitheyo/col/column"
	"github.com/yokitheyo/col/internal/logger"
)

var version = "dev"

type options struct {
	delimiter string
	separator string
	regex     bool
	debug     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "col COLUMN [INPUT]",
		Short: "print a single column of tabular input",
		Long: "col prints one column from each input line, e.g. `ls -l | col 2`.\n" +
			"COLUMN counts from 1; 0 prints the entire line. INPUT defaults to stdin (\"-\").\n" +
			"Consecutive delimiters count as a single separator.",
		Version:       version,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.delimiter, "delimiter", "d", " ", "delimiter used to split lines; runs of it count as one")
	flags.StringVarP(&opts.separator, "separator", "s", "\n", "output separator written after each value")
	flags.BoolVarP(&opts.regex, "regex", "r", false, "treat the delimiter as a regular expression")
	flags.BoolVar(&opts.debug, "debug", false, "log debug information to stderr")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	log := logger.New(cmd.ErrOrStderr(), opts.debug)
	defer func() { _ = log.Sync() }()

	col, err := parseColumn(args[0])
	if err != nil {
		return err
	}

	var path string
	if len(args) > 1 {
		path = args[1]
	}

	ext, err := column.Compile(column.Options{Delimiter: opts.delimiter, Regex: opts.regex})
	if err != nil {
		log.Debug("compile delimiter failed", zap.Error(err))
		return err
	}
	log.Debug("delimiter compiled", zap.String("pattern", ext.Pattern()))

	input, err := column.OpenInput(path, cmd.InOrStdin())
	if err != nil {
		log.Debug("open input failed", zap.String("path", path), zap.Error(err))
		return err
	}
	defer input.Close()
	log.Debug("reading input", zap.String("source", sourceName(path)), zap.Int("column", col))

	emitted, err := column.Run(input, cmd.OutOrStdout(), col, ext, opts.separator)
	if err != nil {
		log.Debug("extract columns failed", zap.Int("emitted", emitted), zap.Error(err))
		return err
	}
	log.Debug("done", zap.Int("emitted", emitted))
	return nil
}

func parseColumn(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid column %q: must be a non-negative integer", arg)
	}
	return n, nil
}

func sourceName(path string) string {
	if path == "" || path == column.StdinMarker {
		return "stdin"
	}
	return path
}

func printError(w io.Writer, err error) {
	errorColor := color.New(color.FgRed, color.Bold)
	_, _ = errorColor.Fprint(w, "ERROR:")
	_, _ = fmt.Fprintf(w, " %v\n", err)
}
