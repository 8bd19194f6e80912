// Package codec provides the L4 declarator machinery: small helper
// functions that every generated/declared record and tagged-union type
// calls from its own Decode/Encode/Size methods, so the three operations
// stay synchronized by construction (spec §4.5, §9's "Declarator
// machinery" design note — implemented here as an ordinary combinator
// library rather than code generation or reflection, one of the three
// acceptable approaches the design note names).
package codec

import (
	"context"
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/internal/errs"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// DecodeField decodes one record field via decode, wrapping any failure
// with the "failed to decode type T for field name" context (spec §4.5).
func DecodeField(typeName, fieldName string, decode func() error) error {
	if err := decode(); err != nil {
		return errs.Field("decode", typeName, fieldName, err)
	}

	return nil
}

// EncodeField encodes one record field via encode, wrapping any failure
// with the matching "failed to encode ..." context.
func EncodeField(typeName, fieldName string, encode func() error) error {
	if err := encode(); err != nil {
		return errs.Field("encode", typeName, fieldName, err)
	}

	return nil
}

// AsyncEncodeField is EncodeField's asynchronous counterpart: it checks
// ctx for cancellation before invoking encode, then wraps any failure
// with the same "failed to encode ..." context (spec §4.8's async write
// path).
func AsyncEncodeField(ctx context.Context, typeName, fieldName string, encode func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := encode(ctx); err != nil {
		return errs.Field("encode", typeName, fieldName, err)
	}

	return nil
}

// SizeField computes one record field's size via size, wrapping any
// failure with the matching "failed to size ..." context.
func SizeField(typeName, fieldName string, size func() (wire.VarInt, error)) (wire.VarInt, error) {
	s, err := size()
	if err != nil {
		return 0, errs.Field("size", typeName, fieldName, err)
	}

	return s, nil
}

// DecodeConditional runs decode only if predicate is true; otherwise the
// field keeps whatever zero/default value its containing struct already
// holds, per spec §4.5's conditional-field rule ("if false, the field is
// absent and takes its declared default").
func DecodeConditional(predicate bool, decode func() error) error {
	if !predicate {
		return nil
	}

	return decode()
}

// EncodeOptionalField writes the payload iff present is true; this is
// the encode-side mirror of DecodeConditional, driven by the in-memory
// presence of the value rather than by the decode-time predicate (spec
// §4.5: "on encode, an optional field is present iff its held value is
// present").
func EncodeOptionalField(present bool, encode func() error) error {
	if !present {
		return nil
	}

	return encode()
}

// SizeOptionalField returns size() iff present is true, else zero.
func SizeOptionalField(present bool, size func() (wire.VarInt, error)) (wire.VarInt, error) {
	if !present {
		return 0, nil
	}

	return size()
}

// DecodeDiscriminant reads a VarInt discriminant and invokes dispatch
// with its int value; dispatch returns errs.ErrUnknownDiscriminant for
// any index outside the declared closed set (spec §4.5's tagged union).
func DecodeDiscriminant(r io.Reader, dispatch func(index int) error) error {
	var idx wire.VarInt
	if err := idx.Decode(r); err != nil {
		return err
	}

	if err := dispatch(int(idx)); err != nil {
		return errs.Variant("decode", "discriminant", err)
	}

	return nil
}

// DecodeByteDiscriminant is DecodeDiscriminant's counterpart for the few
// catalog unions keyed by a raw unsigned byte instead of a VarInt (spec
// §4.5: "byte discriminants appear in a few places").
func DecodeByteDiscriminant(r io.Reader, dispatch func(index int) error) error {
	b, err := wire.ReadU8(r)
	if err != nil {
		return err
	}

	if err := dispatch(int(b)); err != nil {
		return errs.Variant("decode", "discriminant", err)
	}

	return nil
}

// EncodeDiscriminant writes idx as the VarInt discriminant, then invokes
// payload to write the variant's payload, if any.
func EncodeDiscriminant(w io.Writer, idx int, payload func() error) error {
	if err := wire.VarInt(idx).Encode(w); err != nil { //nolint:gosec
		return err
	}

	if payload == nil {
		return nil
	}

	return payload()
}

// EncodeByteDiscriminant is EncodeDiscriminant's byte-keyed counterpart.
func EncodeByteDiscriminant(w io.Writer, idx int, payload func() error) error {
	if err := wire.WriteU8(w, uint8(idx)); err != nil { //nolint:gosec
		return err
	}

	if payload == nil {
		return nil
	}

	return payload()
}

// SizeDiscriminant reports the VarInt discriminant's size plus the
// payload's size, if any.
func SizeDiscriminant(idx int, payloadSize func() (wire.VarInt, error)) (wire.VarInt, error) {
	discSize, err := wire.VarInt(idx).Size() //nolint:gosec
	if err != nil {
		return 0, err
	}

	if payloadSize == nil {
		return discSize, nil
	}

	pSize, err := payloadSize()
	if err != nil {
		return 0, err
	}

	return discSize + pSize, nil
}

// SizeByteDiscriminant is SizeDiscriminant's byte-keyed counterpart: the
// discriminant itself is always exactly one byte.
func SizeByteDiscriminant(payloadSize func() (wire.VarInt, error)) (wire.VarInt, error) {
	if payloadSize == nil {
		return 1, nil
	}

	pSize, err := payloadSize()
	if err != nil {
		return 0, err
	}

	return 1 + pSize, nil
}
