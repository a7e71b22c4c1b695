package cmdargs

import (
	"strings"
	"unicode/utf8"
)

// FlagOpt is a named option that has no value
type FlagOpt struct {
	name string
}

func NewFlag(name string) Opt {
	return FlagOpt{name: name}
}

func (f FlagOpt) Name() string {
	return f.name
}

func (f FlagOpt) TokenStrings() []string {
	return []string{dashed(f.name)}
}

func (f FlagOpt) Kind() OptKind {
	return OptKindFlag
}

func (f FlagOpt) String() string {
	return dashed(f.name)
}

func (FlagOpt) isOpt() {}

// NamedOpt is a named option followed by a separate value token
type NamedOpt struct {
	name  string
	value string
}

func NewNamed(name, value string) Opt {
	return NamedOpt{name: name, value: value}
}

func (n NamedOpt) Name() string {
	return n.name
}

func (n NamedOpt) Value() string {
	return n.value
}

func (n NamedOpt) TokenStrings() []string {
	return []string{dashed(n.name), n.value}
}

func (n NamedOpt) Kind() OptKind {
	return OptKindNamed
}

func (n NamedOpt) String() string {
	return strings.Join(n.TokenStrings(), " ")
}

func (NamedOpt) isOpt() {}

// dashed prefixes one-char names with "-" and longer names with "--".
// Names starting with a dash always get "--", otherwise "-" would render as "--"
func dashed(name string) string {
	if utf8.RuneCountInString(name) == 1 && !strings.HasPrefix(name, shortPrefix) {
		return shortPrefix + name
	}
	return longPrefix + name
}
