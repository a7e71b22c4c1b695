// Package opter splits command line arguments into flags, named options,
// positional (ordinal) arguments and raw values following the "--" terminator.
//
//   - "--name" and "-x" are names. A name followed by another option or by
//     nothing is a flag, otherwise it takes the next argument as its value
//   - "-xyz" is a shorthand for the flags "-x -y -z"
//   - "-" is an ordinal
//   - "--" ends options and is not emitted. All following arguments are values
//
// Names are never checked against a set of known options.
package opter

import (
	"iter"

	"github.com/cardinalby/go-opter/cmdargs"
	"github.com/cardinalby/go-opter/iterator"
)

type (
	Opt        = cmdargs.Opt
	OptKind    = cmdargs.OptKind
	FlagOpt    = cmdargs.FlagOpt
	NamedOpt   = cmdargs.NamedOpt
	OrdinalOpt = cmdargs.OrdinalOpt
	ValueOpt   = cmdargs.ValueOpt
	Tokenizer  = iterator.Tokenizer
)

const (
	KindFlag    = cmdargs.OptKindFlag
	KindNamed   = cmdargs.OptKindNamed
	KindOrdinal = cmdargs.OptKindOrdinal
	KindValue   = cmdargs.OptKindValue
)

// Parse returns a Tokenizer over the given args.
// The program name should not be included
func Parse(args []string) *Tokenizer {
	return iterator.New(cmdargs.NewSliceSource(args))
}

// ParseSeq returns a Tokenizer that pulls args from the sequence lazily
func ParseSeq(args iter.Seq[string]) *Tokenizer {
	return iterator.New(cmdargs.NewSeqSource(args))
}

func ParseSource(src cmdargs.Source) *Tokenizer {
	return iterator.New(src)
}

// Collect reads all remaining Opt values from the tokenizer
func Collect(tokenizer *Tokenizer) []Opt {
	var res []Opt
	for opt := range tokenizer.All() {
		res = append(res, opt)
	}
	return res
}

// Args renders opts back to command line args. A single "--" is inserted before the first ValueOpt.
// A FlagOpt followed by an OrdinalOpt is rendered as is and will be parsed as NamedOpt
func Args(opts []Opt) []string {
	res := make([]string, 0, len(opts))
	terminated := false
	for _, opt := range opts {
		if opt.Kind() == cmdargs.OptKindValue && !terminated {
			res = append(res, cmdargs.Terminator)
			terminated = true
		}
		res = append(res, opt.TokenStrings()...)
	}
	return res
}
