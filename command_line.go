package opter

import (
	"os"
)

// CommandLine returns a Tokenizer over the command line arguments of the process
// excluding the program name
func CommandLine() *Tokenizer {
	var args []string
	if len(os.Args) > 1 {
		args = os.Args[1:]
	}
	return Parse(args)
}
