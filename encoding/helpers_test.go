package encoding

import (
	"errors"
	"io"
)

// recordingWriter keeps every Write call as a separate chunk.
type recordingWriter struct {
	chunks [][]byte
}

func (r *recordingWriter) Write(p []byte) (int, error) {
	r.chunks = append(r.chunks, append([]byte(nil), p...))
	return len(p), nil
}

func (r *recordingWriter) Bytes() []byte {
	var out []byte
	for _, c := range r.chunks {
		out = append(out, c...)
	}

	return out
}

// failingWriter rejects every write with err.
type failingWriter struct {
	err error
}

func (f failingWriter) Write(p []byte) (int, error) {
	return 0, f.err
}

// shortWriter accepts one byte less than offered and reports no error,
// breaking the io.Writer contract on purpose.
type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	return len(p) - 1, nil
}

var _ io.Writer = (*recordingWriter)(nil)

// recoverError runs fn and returns the error it panicked with, or nil.
func recoverError(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok {
			err = errors.New("panic value is not an error")
			return
		}
		err = e
	}()
	fn()

	return nil
}
