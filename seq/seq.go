// Package seq implements the generic combinators of L3: length-prefixed
// ordered sequences, optional values, tagged optionals, and fixed
// triples. Reader-terminated payloads are read with types.ReadAll, not
// with a combinator here.
package seq

import (
	"bytes"
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/internal/errs"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// Elem is the minimal contract a sequence element must satisfy for
// DecodeLengthPrefixed: *T with a pointer-receiver Decode that fills a
// fresh zero value. Encoding and sizing are not part of it; the encode and
// size combinators take them as function arguments.
type Elem[T any] interface {
	*T
	wire.Decoder
}

// DecodeLengthPrefixed reads a VarInt count followed by exactly that many
// elements, each decoded via newElem (which must return a pointer to a
// fresh zero value ready for Decode).
func DecodeLengthPrefixed[T any, PT Elem[T]](r io.Reader, newElem func() PT) ([]T, error) {
	var count wire.VarInt
	if err := count.Decode(r); err != nil {
		return nil, err
	}

	if count == 0 {
		return nil, nil
	}

	out := make([]T, count)
	for i := range out {
		ptr := newElem()
		if err := ptr.Decode(r); err != nil {
			return nil, errs.Field("decode", "sequence element", indexName(i), err)
		}
		out[i] = *ptr
	}

	return out, nil
}

// EncodeLengthPrefixed writes the VarInt count followed by each element's
// encoding via encodeElem in order.
func EncodeLengthPrefixed[T any](w io.Writer, elems []T, encodeElem func(io.Writer, T) error) error {
	if err := wire.VarInt(len(elems)).Encode(w); err != nil { //nolint:gosec
		return err
	}

	for i, e := range elems {
		if err := encodeElem(w, e); err != nil {
			return errs.Field("encode", "sequence element", indexName(i), err)
		}
	}

	return nil
}

// SizeLengthPrefixed reports the VarInt count prefix size plus the sum of
// each element's size via sizeElem.
func SizeLengthPrefixed[T any](elems []T, sizeElem func(T) (wire.VarInt, error)) (wire.VarInt, error) {
	prefixSize, err := wire.VarInt(len(elems)).Size() //nolint:gosec
	if err != nil {
		return 0, err
	}

	total := prefixSize
	for _, e := range elems {
		s, err := sizeElem(e)
		if err != nil {
			return 0, err
		}

		total += s
	}

	return total, nil
}

// Optional holds a value whose presence is gated externally by the
// enclosing aggregate's conditional rules (§4.5); the combinator itself
// carries no presence byte of its own.
type Optional[T any] struct {
	Present bool
	Value   T
}

// Some constructs a present Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{Present: true, Value: v} }

// None constructs an absent Optional of T.
func None[T any]() Optional[T] { return Optional[T]{} }

// TaggedOptional is the (bool, T?) combinator: a boolean flag followed,
// iff true, by the payload.
type TaggedOptional[T any] struct {
	Present bool
	Value   T
}

// DecodeTaggedOptional reads the boolean flag and, if true, decodes the
// payload via decodeValue.
func DecodeTaggedOptional[T any](r io.Reader, decodeValue func(io.Reader) (T, error)) (TaggedOptional[T], error) {
	present, err := wire.ReadBool(r)
	if err != nil {
		return TaggedOptional[T]{}, err
	}

	if !present {
		return TaggedOptional[T]{}, nil
	}

	v, err := decodeValue(r)
	if err != nil {
		return TaggedOptional[T]{}, err
	}

	return TaggedOptional[T]{Present: true, Value: v}, nil
}

// EncodeTaggedOptional writes the boolean flag; if Present, it encodes
// Value via encodeValue. The struct always holds a Value, so a present
// flag without a payload cannot be represented and is not checked here
// (Go's type system cannot express "T but only if flag" any more
// precisely than this struct already does).
func EncodeTaggedOptional[T any](w io.Writer, v TaggedOptional[T], encodeValue func(io.Writer, T) error) error {
	if err := wire.WriteBool(w, v.Present); err != nil {
		return err
	}

	if !v.Present {
		return nil
	}

	return encodeValue(w, v.Value)
}

// SizeTaggedOptional reports the boolean size plus the payload size iff
// present.
func SizeTaggedOptional[T any](v TaggedOptional[T], sizeValue func(T) (wire.VarInt, error)) (wire.VarInt, error) {
	if !v.Present {
		return wire.SizeBool(), nil
	}

	s, err := sizeValue(v.Value)
	if err != nil {
		return 0, err
	}

	return wire.SizeBool() + s, nil
}

// Triple is a fixed-arity (X, Y, Z) combinator: each element encoded and
// decoded in field order with no framing of its own.
type Triple[X, Y, Z any] struct {
	First  X
	Second Y
	Third  Z
}

func indexName(i int) string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	writeUint(&buf, uint(i)) //nolint:gosec
	buf.WriteByte(']')

	return buf.String()
}

func writeUint(buf *bytes.Buffer, v uint) {
	if v >= 10 {
		writeUint(buf, v/10)
	}

	buf.WriteByte(byte('0' + v%10))
}
