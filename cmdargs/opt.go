package cmdargs

type OptKind int

const (
	OptKindFlag OptKind = iota
	OptKindNamed
	OptKindOrdinal
	OptKindValue
)

func (k OptKind) String() string {
	switch k {
	case OptKindFlag:
		return "flag"
	case OptKindNamed:
		return "named"
	case OptKindOrdinal:
		return "ordinal"
	case OptKindValue:
		return "value"
	default:
		return "unknown"
	}
}

// Opt is one classified command line argument. It's implemented by
// FlagOpt, NamedOpt, OrdinalOpt and ValueOpt only
type Opt interface {
	String() string
	TokenStrings() []string
	Kind() OptKind
	isOpt()
}
