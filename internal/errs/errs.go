// Package errs defines the sentinel error values shared by every codec layer.
//
// Each sentinel corresponds to one entry of the failure taxonomy: unexpected
// end of input, an overlong variable-length integer, a malformed boolean
// octet, a string whose length violates its static cap, invalid UTF-8, an
// unknown tagged-union discriminant, or a missing payload on encode. Callers
// use errors.Is against these values; wrapping (via Field and Variant)
// attaches the failing field or variant name without losing the sentinel.
package errs

import "errors"

var (
	// ErrUnexpectedEOF is returned when a reader yields fewer bytes than a
	// field requires.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrOverlongVarInt is returned when a VarInt decode does not terminate
	// within 5 bytes (35 bits).
	ErrOverlongVarInt = errors.New("overlong VarInt: exceeds 5 bytes")

	// ErrOverlongVarLong is returned when a VarLong decode does not
	// terminate within 10 bytes (70 bits).
	ErrOverlongVarLong = errors.New("overlong VarLong: exceeds 10 bytes")

	// ErrMalformedBoolean is returned when a boolean octet is not 0x00 or
	// 0x01.
	ErrMalformedBoolean = errors.New("malformed boolean: byte is not 0x00 or 0x01")

	// ErrStringTooLong is returned when a string's encoded byte length
	// exceeds its declared cap (decode: 4*L, encode: L).
	ErrStringTooLong = errors.New("string length exceeds declared limit")

	// ErrInvalidUTF8 is returned when decoded string bytes are not valid
	// UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 in decoded string")

	// ErrUnknownDiscriminant is returned when a tagged union's discriminant
	// does not match any declared variant.
	ErrUnknownDiscriminant = errors.New("unknown tagged-union discriminant")

	// ErrMissingPayload is returned when encoding a tagged-optional whose
	// flag is true but whose payload is absent.
	ErrMissingPayload = errors.New("tagged-optional flag is true but payload is absent")

	// ErrNotRepresentable is returned when a variable-length integer cannot
	// be converted to or from a fixed-width integer without loss.
	ErrNotRepresentable = errors.New("value not representable in target integer width")

	// ErrOverflow is returned when arithmetic on a variable-length integer
	// overflows the underlying signed representation.
	ErrOverflow = errors.New("variable-length integer arithmetic overflow")
)

// Field wraps err with the context "failed to <op> type <typeName> for field
// <fieldName>", preserving err in the chain for errors.Is / errors.As.
func Field(op, typeName, fieldName string, err error) error {
	if err == nil {
		return nil
	}

	return &fieldError{op: op, typeName: typeName, fieldName: fieldName, err: err}
}

type fieldError struct {
	op        string
	typeName  string
	fieldName string
	err       error
}

func (e *fieldError) Error() string {
	return "failed to " + e.op + " type " + e.typeName + " for field " + e.fieldName + ": " + e.err.Error()
}

func (e *fieldError) Unwrap() error {
	return e.err
}

// Variant wraps err with the context "failed to <op> variant <variantName>",
// used by tagged-union dispatch.
func Variant(op, variantName string, err error) error {
	if err == nil {
		return nil
	}

	return &variantError{op: op, variantName: variantName, err: err}
}

type variantError struct {
	op          string
	variantName string
	err         error
}

func (e *variantError) Error() string {
	return "failed to " + e.op + " variant " + e.variantName + ": " + e.err.Error()
}

func (e *variantError) Unwrap() error {
	return e.err
}
