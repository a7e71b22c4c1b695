package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	opter "github.com/cardinalby/go-opter"
	"github.com/cardinalby/go-opter/cmdargs"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var errStdinWithArgs = errors.New("--stdin does not accept arguments")

type dumpOptions struct {
	format string
	stdin  bool
}

func newRootCmd() *cobra.Command {
	var opts dumpOptions
	cmd := &cobra.Command{
		Use:   "optdump [--format text|json] [--stdin] [--] [args...]",
		Short: "Print how command line arguments are split into options",
		Long: `optdump prints one line per option found in its arguments:
flags, named options with their values, ordinals and raw values after "--".
In text format names and values are Go-quoted strings separated by tabs.

Own flags are read only before the first argument that is not a flag, use "--"
to pass arguments that start with a dash:
  optdump a -bc -d e
  optdump --format json -- -bc -d e -- raw

With --stdin arguments are read one per line from stdin.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", formatText, "Output format: text, json")
	cmd.Flags().BoolVar(&opts.stdin, "stdin", false, "Read arguments from stdin, one per line")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runDump(cmd *cobra.Command, args []string, opts dumpOptions) error {
	var printOpt func(io.Writer, opter.Opt) error
	switch opts.format {
	case formatText:
		printOpt = printText
	case formatJSON:
		printOpt = newJSONPrinter()
	default:
		return fmt.Errorf("unknown format %q (use %s or %s)", opts.format, formatText, formatJSON)
	}

	var tokenizer *opter.Tokenizer
	var lines *cmdargs.LineSource
	if opts.stdin {
		if len(args) > 0 {
			return errStdinWithArgs
		}
		lines = cmdargs.NewLineSource(cmd.InOrStdin())
		tokenizer = opter.ParseSource(lines)
	} else {
		tokenizer = opter.Parse(args)
	}

	out := cmd.OutOrStdout()
	for opt := range tokenizer.All() {
		if err := printOpt(out, opt); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if lines != nil {
		return lines.Err()
	}
	return nil
}

func printText(w io.Writer, opt opter.Opt) error {
	var err error
	switch opt := opt.(type) {
	case opter.FlagOpt:
		_, err = fmt.Fprintf(w, "%s\t%q\n", opt.Kind(), opt.Name())
	case opter.NamedOpt:
		_, err = fmt.Fprintf(w, "%s\t%q\t%q\n", opt.Kind(), opt.Name(), opt.Value())
	default:
		_, err = fmt.Fprintf(w, "%s\t%q\n", opt.Kind(), opt.String())
	}
	return err
}

type jsonOpt struct {
	Kind  string  `json:"kind"`
	Name  string  `json:"name,omitempty"`
	Value *string `json:"value,omitempty"`
}

func newJSONPrinter() func(io.Writer, opter.Opt) error {
	return func(w io.Writer, opt opter.Opt) error {
		res := jsonOpt{Kind: opt.Kind().String()}
		switch opt := opt.(type) {
		case opter.FlagOpt:
			res.Name = opt.Name()
		case opter.NamedOpt:
			res.Name = opt.Name()
			value := opt.Value()
			res.Value = &value
		default:
			value := opt.String()
			res.Value = &value
		}
		return json.NewEncoder(w).Encode(res)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
