package cmdargs

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func pullAll(src Source) (res []string) {
	for {
		arg, ok := src.Next()
		if !ok {
			return res
		}
		res = append(res, arg)
	}
}

func TestSliceSource(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		src := NewSliceSource(nil)
		require.Empty(t, pullAll(src))
		_, ok := src.Next()
		require.False(t, ok)
	})

	t.Run("pull", func(t *testing.T) {
		args := []string{"a", "-b", "--c"}
		src := NewSliceSource(args)

		arg, ok := src.Next()
		require.True(t, ok)
		require.Equal(t, "a", arg)

		require.Equal(t, []string{"-b", "--c"}, pullAll(src))
		require.Equal(t, []string{"a", "-b", "--c"}, args)
		_, ok = src.Next()
		require.False(t, ok)
	})
}

func TestSeqSource(t *testing.T) {
	t.Parallel()

	t.Run("all", func(t *testing.T) {
		src := NewSeqSource(func(yield func(string) bool) {
			for _, arg := range []string{"a", "b"} {
				if !yield(arg) {
					return
				}
			}
		})
		require.Equal(t, []string{"a", "b"}, pullAll(src))
		require.True(t, src.stopped)
		_, ok := src.Next()
		require.False(t, ok)
	})

	t.Run("stop", func(t *testing.T) {
		finished := false
		src := NewSeqSource(func(yield func(string) bool) {
			defer func() { finished = true }()
			for {
				if !yield("x") {
					return
				}
			}
		})
		arg, ok := src.Next()
		require.True(t, ok)
		require.Equal(t, "x", arg)

		src.Stop()
		src.Stop()
		require.True(t, finished)
		_, ok = src.Next()
		require.False(t, ok)
	})
}

type failingReader struct {
	data io.Reader
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	n, err := r.data.Read(p)
	if err == io.EOF {
		return n, r.err
	}
	return n, err
}

func TestLineSource(t *testing.T) {
	t.Parallel()

	t.Run("lines", func(t *testing.T) {
		src := NewLineSource(strings.NewReader("a\n-bc\r\n\n--\nlast"))
		require.Equal(t, []string{"a", "-bc", "", "--", "last"}, pullAll(src))
		require.NoError(t, src.Err())
	})

	t.Run("empty", func(t *testing.T) {
		src := NewLineSource(strings.NewReader(""))
		require.Empty(t, pullAll(src))
		require.NoError(t, src.Err())
	})

	t.Run("error", func(t *testing.T) {
		readErr := errors.New("broken pipe")
		src := NewLineSource(&failingReader{
			data: strings.NewReader("a\nb\npartial"),
			err:  readErr,
		})
		require.Equal(t, []string{"a", "b", "partial"}, pullAll(src))
		require.ErrorIs(t, src.Err(), readErr)
		_, ok := src.Next()
		require.False(t, ok)
	})
}
