// Package nbt implements the named-binary-tag tree format the codec
// delegates to for NBT-typed fields (spec §3, §4.3: "the codec never
// inspects NBT internals, only delegates read/write"). No dependency in
// the reference pack offers an NBT tree; this package is grounded on the
// standard NBT wire format (Minecraft's Notchian big-endian variant) and
// implemented against the standard library, justified in DESIGN.md.
package nbt

import (
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/internal/errs"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// TagType is the single type-id byte prefixing every named tag.
type TagType uint8

const (
	TagEnd TagType = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

// Tag is one node of an NBT tree: a type id, a name (empty for list
// elements and the implicit root), and exactly one populated payload
// field selected by Type.
type Tag struct {
	Type     TagType
	Name     string
	Byte     int8
	Short    int16
	Int      int32
	Long     int64
	Float    float32
	Double   float64
	Bytes    []byte
	Str      string
	List     []Tag
	ListKind TagType
	Compound []Tag
	Ints     []int32
	Longs    []int64
}

// Empty returns the canonical empty compound tag used by callers that
// need a placeholder NBT payload (e.g. SlotData's empty-tag vector in
// spec §8's concrete scenarios).
func Empty() Tag {
	return Tag{Type: TagCompound, Name: "", Compound: nil}
}

// Decode reads one fully named tag (type byte, name, payload) from r.
func (t *Tag) Decode(r io.Reader) error {
	typ, err := wire.ReadU8(r)
	if err != nil {
		return err
	}
	t.Type = TagType(typ)

	if t.Type == TagEnd {
		return nil
	}

	name, err := readName(r)
	if err != nil {
		return errs.Field("decode", "Tag", "name", err)
	}
	t.Name = name

	return t.decodePayload(r)
}

func (t *Tag) decodePayload(r io.Reader) error {
	switch t.Type {
	case TagEnd:
		return nil
	case TagByte:
		v, err := wire.ReadI8(r)
		t.Byte = v
		return err
	case TagShort:
		v, err := wire.ReadI16(r)
		t.Short = v
		return err
	case TagInt:
		v, err := wire.ReadI32(r)
		t.Int = v
		return err
	case TagLong:
		v, err := wire.ReadI64(r)
		t.Long = v
		return err
	case TagFloat:
		v, err := wire.ReadF32(r)
		t.Float = v
		return err
	case TagDouble:
		v, err := wire.ReadF64(r)
		t.Double = v
		return err
	case TagByteArray:
		n, err := wire.ReadI32(r)
		if err != nil {
			return err
		}
		buf := make([]byte, int(n)) //nolint:gosec
		if err := wire.ReadFull(r, buf); err != nil {
			return err
		}
		t.Bytes = buf
		return nil
	case TagString:
		s, err := readName(r)
		t.Str = s
		return err
	case TagList:
		kind, err := wire.ReadU8(r)
		if err != nil {
			return err
		}
		t.ListKind = TagType(kind)

		n, err := wire.ReadI32(r)
		if err != nil {
			return err
		}

		elems := make([]Tag, 0, n)
		for i := int32(0); i < n; i++ {
			elem := Tag{Type: t.ListKind}
			if err := elem.decodePayload(r); err != nil {
				return errs.Field("decode", "Tag", "list element", err)
			}
			elems = append(elems, elem)
		}
		t.List = elems
		return nil
	case TagCompound:
		var children []Tag
		for {
			var child Tag
			if err := child.Decode(r); err != nil {
				return errs.Field("decode", "Tag", "compound child", err)
			}
			if child.Type == TagEnd {
				break
			}
			children = append(children, child)
		}
		t.Compound = children
		return nil
	case TagIntArray:
		n, err := wire.ReadI32(r)
		if err != nil {
			return err
		}
		ints := make([]int32, n)
		for i := range ints {
			v, err := wire.ReadI32(r)
			if err != nil {
				return err
			}
			ints[i] = v
		}
		t.Ints = ints
		return nil
	case TagLongArray:
		n, err := wire.ReadI32(r)
		if err != nil {
			return err
		}
		longs := make([]int64, n)
		for i := range longs {
			v, err := wire.ReadI64(r)
			if err != nil {
				return err
			}
			longs[i] = v
		}
		t.Longs = longs
		return nil
	default:
		return errs.ErrUnknownDiscriminant
	}
}

// Encode writes the type byte, name, and payload for a named tag.
func (t Tag) Encode(w io.Writer) error {
	if err := wire.WriteU8(w, uint8(t.Type)); err != nil { //nolint:gosec
		return err
	}

	if t.Type == TagEnd {
		return nil
	}

	if err := writeName(w, t.Name); err != nil {
		return errs.Field("encode", "Tag", "name", err)
	}

	return t.encodePayload(w)
}

func (t Tag) encodePayload(w io.Writer) error {
	switch t.Type {
	case TagEnd:
		return nil
	case TagByte:
		return wire.WriteI8(w, t.Byte)
	case TagShort:
		return wire.WriteI16(w, t.Short)
	case TagInt:
		return wire.WriteI32(w, t.Int)
	case TagLong:
		return wire.WriteI64(w, t.Long)
	case TagFloat:
		return wire.WriteF32(w, t.Float)
	case TagDouble:
		return wire.WriteF64(w, t.Double)
	case TagByteArray:
		if err := wire.WriteI32(w, int32(len(t.Bytes))); err != nil { //nolint:gosec
			return err
		}
		return wire.WriteAll(w, t.Bytes)
	case TagString:
		return writeName(w, t.Str)
	case TagList:
		if err := wire.WriteU8(w, uint8(t.ListKind)); err != nil { //nolint:gosec
			return err
		}
		if err := wire.WriteI32(w, int32(len(t.List))); err != nil { //nolint:gosec
			return err
		}
		for _, elem := range t.List {
			if err := elem.encodePayload(w); err != nil {
				return errs.Variant("encode", "list element", err)
			}
		}
		return nil
	case TagCompound:
		for _, child := range t.Compound {
			if err := child.Encode(w); err != nil {
				return errs.Field("encode", "Tag", "compound child", err)
			}
		}
		return wire.WriteU8(w, uint8(TagEnd))
	case TagIntArray:
		if err := wire.WriteI32(w, int32(len(t.Ints))); err != nil { //nolint:gosec
			return err
		}
		for _, v := range t.Ints {
			if err := wire.WriteI32(w, v); err != nil {
				return err
			}
		}
		return nil
	case TagLongArray:
		if err := wire.WriteI32(w, int32(len(t.Longs))); err != nil { //nolint:gosec
			return err
		}
		for _, v := range t.Longs {
			if err := wire.WriteI64(w, v); err != nil {
				return err
			}
		}
		return nil
	default:
		return errs.ErrUnknownDiscriminant
	}
}

// Size computes the wire size of the tag by encoding it into a
// byte-counting writer; NBT trees are not performance-critical enough in
// this codec's surface to warrant a dedicated size-walk per tag kind.
func (t Tag) Size() (wire.VarInt, error) {
	var counter countingWriter
	if err := t.Encode(&counter); err != nil {
		return 0, err
	}

	return wire.VarInt(counter.n), nil //nolint:gosec
}

type countingWriter struct{ n int64 }

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}

// readName reads NBT's string encoding: an unsigned big-endian u16 byte
// length followed by the UTF-8 bytes (distinct from the codec's VarInt-
// prefixed String — NBT is a self-contained external format with its own
// string framing).
func readName(r io.Reader) (string, error) {
	length, err := wire.ReadU16(r)
	if err != nil {
		return "", err
	}

	buf := make([]byte, int(length))
	if err := wire.ReadFull(r, buf); err != nil {
		return "", err
	}

	return string(buf), nil
}

func writeName(w io.Writer, s string) error {
	b := []byte(s)
	if err := wire.WriteU16(w, uint16(len(b))); err != nil { //nolint:gosec
		return err
	}

	return wire.WriteAll(w, b)
}
