// Package endian wraps the single byte order this codec ever speaks.
//
// Unlike a storage format that picks its byte order for host performance,
// the wire protocol here is frozen by the protocol spec at big-endian: every
// primitive, on every platform, in both directions. EndianEngine exists so
// wire/primitives.go has one typed value to thread through Read*/Write*
// instead of sprinkling binary.BigEndian literals through the codec, and so
// a future protocol revision that picks a different order only touches this
// package.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into the single interface wire/primitives.go's Engine value is typed as.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the engine this codec's wire format always
// uses. There is no little-endian counterpart: the protocol has no notion
// of host byte order, so none is exposed here.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
