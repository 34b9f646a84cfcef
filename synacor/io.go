package synacor

import (
	"bufio"
	"io"
)

// ByteSink is the output capability the machine writes OUT bytes to.
// The VM borrows it only for the duration of a single OUT call; it
// does not own the underlying transport.
type ByteSink interface {
	WriteByte(b byte) error
	Flush() error
}

// ByteSource is the input capability the machine reads IN bytes from.
// A failed or exhausted source surfaces as InputFailure.
type ByteSource interface {
	ReadByte() (byte, error)
}

// bufWriter adapts any io.Writer into a ByteSink.
type bufWriter struct {
	w *bufio.Writer
}

// NewWriterSink wraps w as a ByteSink, buffering writes until Flush.
func NewWriterSink(w io.Writer) ByteSink {
	return &bufWriter{w: bufio.NewWriter(w)}
}

func (b *bufWriter) WriteByte(c byte) error { return b.w.WriteByte(c) }
func (b *bufWriter) Flush() error           { return b.w.Flush() }

var _ ByteSink = &bufWriter{}

// bufReader adapts any io.Reader into a ByteSource.
type bufReader struct {
	r *bufio.Reader
}

// NewReaderSource wraps r as a ByteSource.
func NewReaderSource(r io.Reader) ByteSource {
	return &bufReader{r: bufio.NewReader(r)}
}

func (b *bufReader) ReadByte() (byte, error) { return b.r.ReadByte() }

var _ ByteSource = &bufReader{}
