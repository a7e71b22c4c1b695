package cmdargs

import "unicode/utf8"

const (
	shortPrefix = "-"
	longPrefix  = "--"
	Terminator  = longPrefix
)

type ShapeKind int

const (
	// ShapePlain is a positional token: no option prefix, a lone "-" or an empty string
	ShapePlain ShapeKind = iota
	// ShapeName is "--name" or "-x". Whether it's a flag or a named option
	// can only be decided by the token that follows it
	ShapeName
	// ShapeStacked is "-xyz" that bundles one-char flags
	ShapeStacked
	// ShapeTerminator is exactly "--"
	ShapeTerminator
)

// Shape is a syntactic form of a single raw token
type Shape struct {
	Kind ShapeKind
	// Name is set for ShapeName
	Name string
	// Flags is set for ShapeStacked and keeps the original left-to-right order.
	// Each flag holds the raw bytes of one rune, invalid UTF-8 bytes are kept as is
	Flags []string
}

// Classify determines the Shape of a token by its prefix and length only.
// Lengths are counted in runes
func Classify(arg string) (res Shape) {
	if len(arg) < 2 || arg[0] != '-' {
		return res
	}
	if arg[1] == '-' {
		if len(arg) == len(longPrefix) {
			res.Kind = ShapeTerminator
			return res
		}
		res.Kind = ShapeName
		res.Name = arg[len(longPrefix):]
		return res
	}
	rest := arg[len(shortPrefix):]
	if utf8.RuneCountInString(rest) > 1 {
		res.Kind = ShapeStacked
		res.Flags = splitRunes(rest)
		return res
	}
	res.Kind = ShapeName
	res.Name = rest
	return res
}

// splitRunes splits s into substrings of one rune each.
// An invalid byte is a rune of width 1, the same way utf8.RuneCountInString counts it
func splitRunes(s string) []string {
	res := make([]string, 0, utf8.RuneCountInString(s))
	for len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		res = append(res, s[:size])
		s = s[size:]
	}
	return res
}
