package opter

import (
	"fmt"
)

func ExampleParse() {
	tokenizer := Parse([]string{"-v", "--out", "a.txt", "-xz", "in.txt", "--", "-raw"})
	for opt := range tokenizer.All() {
		switch opt := opt.(type) {
		case FlagOpt:
			fmt.Println("flag", opt.Name())
		case NamedOpt:
			fmt.Println("named", opt.Name(), opt.Value())
		case OrdinalOpt:
			fmt.Println("ordinal", opt.Value())
		case ValueOpt:
			fmt.Println("value", opt.Value())
		}
	}
	// Output:
	// flag v
	// named out a.txt
	// flag x
	// flag z
	// ordinal in.txt
	// value -raw
}

func Example_next() {
	tokenizer := Parse([]string{"a", "-b"})
	for {
		opt, ok := tokenizer.Next()
		if !ok {
			break
		}
		fmt.Printf("%s %q\n", opt.Kind(), opt.String())
	}
	// Output:
	// ordinal "a"
	// flag "-b"
}
