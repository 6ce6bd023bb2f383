// Package generator implements the high-throughput mask expansion engine:
// a fixed-size output buffer, a jump-table odometer for pure-class masks,
// and a length-stratified odometer for masks that mix in word-list slots.
package generator

import "io"

// DefaultBufferSize is the sink's buffer size absent an override, chosen
// to stay comfortably inside a core's L2 cache while amortizing syscall
// overhead across many records.
const DefaultBufferSize = 1 << 20 // 1 MiB

// Sink buffers whole candidate records before flushing them to an
// io.Writer. Its buffer is kept pre-filled with '\n' so the hot path
// never has to write a record's trailing terminator byte.
type Sink struct {
	w   io.Writer
	buf []byte
	pos int
}

// NewSink wraps w with a Sink of DefaultBufferSize.
func NewSink(w io.Writer) *Sink {
	return NewSinkSize(w, DefaultBufferSize)
}

// NewSinkSize wraps w with a Sink using a buffer of the given size.
func NewSinkSize(w io.Writer, size int) *Sink {
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = '\n'
	}
	return &Sink{w: w, buf: buf}
}

// Buf exposes the sink's internal buffer for direct writes by a hot
// generation loop. Callers must only write to buf[:n] where n is the
// content width of a record (excluding its trailing newline) — the byte
// immediately after is already '\n' and must be left untouched.
func (s *Sink) Buf() []byte { return s.buf }

// Pos returns the current write offset into Buf.
func (s *Sink) Pos() int { return s.pos }

// Advance moves the write offset forward by n bytes after a caller has
// written directly into Buf.
func (s *Sink) Advance(n int) { s.pos += n }

// RecordsLeft reports how many whole records of length recordLen
// (content plus trailing newline) currently fit before a flush is
// required.
func (s *Sink) RecordsLeft(recordLen int) int {
	if recordLen <= 0 {
		return 0
	}
	return (len(s.buf) - s.pos) / recordLen
}

// Flush writes whole records only: any bytes from pos onward are never
// observed downstream, so a flush never emits a partial record. The
// flushed bytes are reset to '\n' afterwards, so a following run with a
// different record length still finds a terminator after each record.
func (s *Sink) Flush() error {
	if s.pos == 0 {
		return nil
	}
	_, err := s.w.Write(s.buf[:s.pos])
	for i := 0; i < s.pos; i++ {
		s.buf[i] = '\n'
	}
	s.pos = 0
	return err
}
