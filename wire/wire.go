// Package wire defines the codec kernel's core contracts.
//
// Every concrete type in this module (VarInt/VarLong, composite scalars,
// domain types, and the message types in the protocol catalog, which
// covers a representative subset of each phase's messages) satisfies
// Field: it knows how to decode itself from a reader, encode itself to a
// writer, and report the byte size its encoding would occupy. The three
// operations are implemented together on each type so they cannot drift
// apart — the class of bug where a hand-written read/write/size trio
// disagrees with itself.
//
// Control flow is bottom-up on encode (an aggregate delegates to its
// fields in declaration order) and top-down on decode (an aggregate reads
// its own framing, then asks each field to decode itself). There is no
// reflection and no shared state between calls: every operation is a pure
// function of its inputs plus the in-place reader/writer side effect.
package wire

import (
	"context"
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/internal/errs"
)

// Decoder reads a value of one wire type from r, consuming exactly the
// bytes that belong to it. Implementations must fail with a wrapped
// errs.ErrUnexpectedEOF when r does not hold enough bytes.
type Decoder interface {
	Decode(r io.Reader) error
}

// Encoder writes a value's wire representation to w in full.
type Encoder interface {
	Encode(w io.Writer) error
}

// Sizer reports the number of bytes Encode would write, without writing
// them. For every conforming value, Size() must equal len(Encode(value)).
type Sizer interface {
	Size() (VarInt, error)
}

// Field is satisfied by every decodable, encodable, sizeable wire type:
// primitives, composite scalars, domain types, and catalog messages alike.
type Field interface {
	Decoder
	Encoder
	Sizer
}

// AsyncWriter is the suspending byte sink consumed by the asynchronous
// encode path (see AsyncField). Write must behave like io.Writer's
// write-all semantics, but may suspend at ctx's discretion between
// individual Write calls; cancellation between writes must leave the
// underlying sink in a byte-accurate state for the caller to discard.
type AsyncWriter interface {
	Write(ctx context.Context, p []byte) (int, error)
}

// AsyncField is the asynchronous counterpart to Encoder. Its behavioral
// contract is identical to Encode: the same value produces the same bytes
// and the same failure conditions. Suspension points occur exactly at each
// AsyncWriter.Write call; no suspension occurs inside pure computation.
type AsyncField interface {
	AsyncEncode(ctx context.Context, w AsyncWriter) error
}

// AsyncWriterFunc adapts an io.Writer into an AsyncWriter whose Write never
// suspends except by observing ctx cancellation before writing.
type AsyncWriterFunc struct {
	W io.Writer
}

// Write writes p to the underlying writer unless ctx has already been
// cancelled.
func (a AsyncWriterFunc) Write(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return a.W.Write(p)
}

// ReadFull reads exactly len(buf) bytes from r into buf, translating any
// short read (including io.EOF and io.ErrUnexpectedEOF) into
// errs.ErrUnexpectedEOF.
func ReadFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if err != nil {
		return errs.ErrUnexpectedEOF
	}

	return nil
}

// WriteAll writes all of buf to w, reporting any short write or error as-is
// (the codec attributes all writer failures to "I/O failed"; the caller's
// writer is responsible for the concrete cause).
func WriteAll(w io.Writer, buf []byte) error {
	_, err := w.Write(buf)
	return err
}
