package cmdargs

// OrdinalOpt is a positional argument met before the terminator
type OrdinalOpt struct {
	value string
}

func NewOrdinal(value string) Opt {
	return OrdinalOpt{value: value}
}

func (o OrdinalOpt) Value() string {
	return o.value
}

func (o OrdinalOpt) TokenStrings() []string {
	return []string{o.value}
}

func (o OrdinalOpt) Kind() OptKind {
	return OptKindOrdinal
}

func (o OrdinalOpt) String() string {
	return o.value
}

func (OrdinalOpt) isOpt() {}

// ValueOpt is a raw argument passed through after the "--" terminator.
// The terminator itself is not rendered by TokenStrings
type ValueOpt struct {
	raw string
}

func NewValue(raw string) Opt {
	return ValueOpt{raw: raw}
}

func (v ValueOpt) Value() string {
	return v.raw
}

func (v ValueOpt) TokenStrings() []string {
	return []string{v.raw}
}

func (v ValueOpt) Kind() OptKind {
	return OptKindValue
}

func (v ValueOpt) String() string {
	return v.raw
}

func (ValueOpt) isOpt() {}
