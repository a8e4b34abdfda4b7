package object

import (
	"bytes"
	"io"
)

// Context exposes the single observable capability a running program
// needs: a byte-sink that Print and object printing write to.
type Context interface {
	Output() io.Writer
}

type streamContext struct {
	w io.Writer
}

// NewStreamContext wraps a real output stream for live interpretation.
func NewStreamContext(w io.Writer) Context {
	return streamContext{w: w}
}

func (c streamContext) Output() io.Writer { return c.w }

// BufferContext is an in-memory context for tests: it captures output
// in a buffer instead of writing to a live stream.
type BufferContext struct {
	buf bytes.Buffer
}

// NewBufferContext returns a Context that captures output in memory.
func NewBufferContext() *BufferContext {
	return &BufferContext{}
}

func (c *BufferContext) Output() io.Writer { return &c.buf }

// String returns everything written to the context so far.
func (c *BufferContext) String() string { return c.buf.String() }
