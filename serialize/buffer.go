package serialize

import (
	"strings"

	"github.com/goblimey/go-wktcrs/strnum"
)

// MaxOutputLength bounds a single emitted WKT document, mirroring the
// tokenizer's MaxDocumentLength input cap: a round trip
// through this library should never silently grow past what it could
// have parsed back in.
const MaxOutputLength = 4095 * 3 // UTF-8 fields may expand up to 3x.

// Buffer is the append-only text buffer every variant's emitter writes
// into. Truncated reports whether the capacity was exceeded, the
// signal calls "a truncation indicator".
type Buffer struct {
	b         strings.Builder
	opts      Options
	truncated bool
}

// NewBuffer returns an empty Buffer configured with opts.
func NewBuffer(opts Options) *Buffer {
	return &Buffer{opts: opts}
}

// Options returns the options this buffer was configured with.
func (b *Buffer) Options() Options { return b.opts }

// Truncated reports whether any write exceeded MaxOutputLength.
func (b *Buffer) Truncated() bool { return b.truncated }

// String returns the buffer's accumulated text.
func (b *Buffer) String() string { return b.b.String() }

// WriteString appends s verbatim, recording truncation if the result
// would exceed MaxOutputLength.
func (b *Buffer) WriteString(s string) {
	if b.b.Len()+len(s) > MaxOutputLength {
		b.truncated = true
		return
	}
	b.b.WriteString(s)
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) {
	if b.b.Len()+1 > MaxOutputLength {
		b.truncated = true
		return
	}
	b.b.WriteByte(c)
}

// WriteKeyword writes a bare (unquoted) keyword.
func (b *Buffer) WriteKeyword(kw string) { b.WriteString(kw) }

// Open writes the opening bracket selected by the buffer's options.
func (b *Buffer) Open() {
	open, _ := b.opts.OpenClose()
	b.WriteByte(open)
}

// Close writes the closing bracket selected by the buffer's options.
func (b *Buffer) Close() {
	_, close := b.opts.OpenClose()
	b.WriteByte(close)
}

// WriteQuoted writes s as a double-quoted, escaped string.
func (b *Buffer) WriteQuoted(s string) {
	b.WriteByte('"')
	b.WriteString(strnum.EscapeQuoted(s))
	b.WriteByte('"')
}

// WriteFloat writes f in canonical round-trippable form.
func (b *Buffer) WriteFloat(f float64) {
	b.WriteString(strnum.FormatFloat(f))
}

// WriteInt writes n as a plain decimal integer.
func (b *Buffer) WriteInt(n int) {
	b.WriteString(strnum.FormatInt(n))
}

// FieldWriter tracks whether the next field written inside an object's
// brackets needs a leading comma; every emitter constructs one of these
// at the start of its bracketed body.
type FieldWriter struct {
	buf   *Buffer
	wrote bool
}

// Fields returns a FieldWriter bound to buf, used by variant emitters to
// write their comma-separated body: positional
// atoms, then each singleton sub-object in canonical order, then each
// set-of sub-object, skipping any field that contributes an empty
// string (an invisible child, visibility-flag rule).
func Fields(buf *Buffer) *FieldWriter {
	return &FieldWriter{buf: buf}
}

// Write appends s as the next field, preceding it with a comma if this
// is not the first non-empty field written. An empty s contributes
// nothing and no comma, matching the invisible-child rule.
func (f *FieldWriter) Write(s string) {
	if s == "" {
		return
	}
	if f.wrote {
		f.buf.WriteByte(',')
	}
	f.buf.WriteString(s)
	f.wrote = true
}

// WriteQuoted appends a quoted string field.
func (f *FieldWriter) WriteQuoted(s string) {
	if f.wrote {
		f.buf.WriteByte(',')
	}
	f.buf.WriteQuoted(s)
	f.wrote = true
}

// WriteFloat appends a numeric field.
func (f *FieldWriter) WriteFloat(v float64) {
	if f.wrote {
		f.buf.WriteByte(',')
	}
	f.buf.WriteFloat(v)
	f.wrote = true
}

// WriteInt appends an integer field.
func (f *FieldWriter) WriteInt(v int) {
	if f.wrote {
		f.buf.WriteByte(',')
	}
	f.buf.WriteInt(v)
	f.wrote = true
}

// WriteRaw appends an already-rendered sub-object's text (the result of
// its own ToWKT call), which may be empty if that child is invisible.
func (f *FieldWriter) WriteRaw(s string) {
	f.Write(s)
}
