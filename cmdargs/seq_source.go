package cmdargs

import "iter"

// SeqSource pulls args from an iter.Seq. It's stopped automatically when the
// sequence ends; call Stop to abandon it earlier
type SeqSource struct {
	next    func() (string, bool)
	stop    func()
	stopped bool
}

func NewSeqSource(seq iter.Seq[string]) *SeqSource {
	next, stop := iter.Pull(seq)
	return &SeqSource{
		next: next,
		stop: stop,
	}
}

func (s *SeqSource) Next() (string, bool) {
	if s.stopped {
		return "", false
	}
	arg, ok := s.next()
	if !ok {
		s.Stop()
	}
	return arg, ok
}

func (s *SeqSource) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	s.stop()
}
