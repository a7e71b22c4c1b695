package cmdargs

// Source provides raw argument tokens one at a time.
// Next returns false when there are no more tokens
type Source interface {
	Next() (arg string, ok bool)
}

// Stopper is implemented by sources that hold resources until exhausted
type Stopper interface {
	Stop()
}

// SliceSource is a Source over an in-memory slice of args
type SliceSource struct {
	args []string
	pos  int
}

func NewSliceSource(args []string) *SliceSource {
	return &SliceSource{args: args}
}

func (s *SliceSource) Next() (string, bool) {
	if s.pos >= len(s.args) {
		return "", false
	}
	arg := s.args[s.pos]
	s.pos++
	return arg, true
}
