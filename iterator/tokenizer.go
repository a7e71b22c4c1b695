package iterator

import (
	"iter"

	"github.com/cardinalby/go-opter/cmdargs"
)

// Tokenizer turns raw args pulled from a cmdargs.Source into cmdargs.Opt values.
//
// A "-x" or "--name" token can't be classified alone: it's a flag if the next
// token is another option (or there is no next token) and a named option
// taking the next token as value otherwise. Tokenizer keeps such name pending
// until the next token arrives.
//
// Tokenizer is single-pass and must not be used from multiple goroutines
type Tokenizer struct {
	src cmdargs.Source
	// pendingFlags are stacked one-char flags that haven't been emitted yet.
	// They are emitted before the next token is pulled from src
	pendingFlags []string
	// pendingName is a name waiting for the next token to decide its role
	pendingName string
	// drainMode is set after "--", all following tokens are emitted as values
	drainMode bool
	exhausted bool
}

func New(src cmdargs.Source) *Tokenizer {
	return &Tokenizer{src: src}
}

// Next returns the next Opt or false if there are no more.
// Once it has returned false, it keeps returning false
func (t *Tokenizer) Next() (cmdargs.Opt, bool) {
	for {
		if t.exhausted {
			return nil, false
		}

		if len(t.pendingFlags) > 0 {
			flag := t.pendingFlags[0]
			t.pendingFlags = t.pendingFlags[1:]
			return cmdargs.NewFlag(flag), true
		}

		arg, ok := t.src.Next()
		if !ok {
			t.finish()
			if t.pendingName != "" {
				// nothing follows the name, so it can only be a flag
				return cmdargs.NewFlag(t.takePendingName()), true
			}
			return nil, false
		}

		if t.drainMode {
			return cmdargs.NewValue(arg), true
		}

		shape := cmdargs.Classify(arg)
		switch shape.Kind {
		case cmdargs.ShapeTerminator:
			t.drainMode = true
			continue
		case cmdargs.ShapeStacked:
			t.pendingFlags = shape.Flags
		}

		if opt, ok := t.resolve(arg, shape); ok {
			return opt, true
		}
	}
}

// resolve decides the role of the pending name (if any) using the current token.
// Returns false if the current token only updated the state
func (t *Tokenizer) resolve(arg string, shape cmdargs.Shape) (cmdargs.Opt, bool) {
	if t.pendingName != "" {
		prevName := t.takePendingName()
		switch shape.Kind {
		case cmdargs.ShapeName:
			// the current name becomes pending in turn
			t.pendingName = shape.Name
			return cmdargs.NewFlag(prevName), true
		case cmdargs.ShapeStacked:
			return cmdargs.NewFlag(prevName), true
		default:
			return cmdargs.NewNamed(prevName, arg), true
		}
	}

	switch shape.Kind {
	case cmdargs.ShapeName:
		t.pendingName = shape.Name
		return nil, false
	case cmdargs.ShapeStacked:
		return nil, false
	default:
		return cmdargs.NewOrdinal(arg), true
	}
}

func (t *Tokenizer) takePendingName() string {
	name := t.pendingName
	t.pendingName = ""
	return name
}

func (t *Tokenizer) finish() {
	t.exhausted = true
	if stopper, ok := t.src.(cmdargs.Stopper); ok {
		stopper.Stop()
	}
}

// Stop abandons the remaining args. Pending flags and a pending name are discarded.
// It's safe to call Stop several times and after the tokenizer is exhausted
func (t *Tokenizer) Stop() {
	if t.exhausted {
		return
	}
	t.pendingFlags = nil
	t.pendingName = ""
	t.finish()
}

// All returns an iterator over the remaining Opt values.
// Breaking out of the loop stops the tokenizer
func (t *Tokenizer) All() iter.Seq[cmdargs.Opt] {
	return func(yield func(cmdargs.Opt) bool) {
		for {
			opt, ok := t.Next()
			if !ok {
				return
			}
			if !yield(opt) {
				t.Stop()
				return
			}
		}
	}
}
