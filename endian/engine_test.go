package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.BigEndian, engine)

	var testValue uint16 = 0x0102
	buf := make([]byte, 2)
	engine.PutUint16(buf, testValue)

	require.Equal(t, byte(0x01), buf[0], "big endian puts the MSB first")
	require.Equal(t, byte(0x02), buf[1], "big endian puts the LSB second")
	require.Equal(t, testValue, engine.Uint16(buf))
}

func TestGetBigEndianEngineIsStable(t *testing.T) {
	first := GetBigEndianEngine()
	for i := 0; i < 10; i++ {
		require.Equal(t, first, GetBigEndianEngine())
	}
}

func TestGetBigEndianEngineWiderWidths(t *testing.T) {
	engine := GetBigEndianEngine()

	var v32 uint32 = 0x01020304
	buf32 := make([]byte, 4)
	engine.PutUint32(buf32, v32)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf32)
	require.Equal(t, v32, engine.Uint32(buf32))

	var v64 uint64 = 0x0102030405060708
	buf64 := make([]byte, 8)
	engine.PutUint64(buf64, v64)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, buf64)
	require.Equal(t, v64, engine.Uint64(buf64))
}

func TestGetBigEndianEngineAppend(t *testing.T) {
	engine := GetBigEndianEngine()

	buf := engine.AppendUint16(nil, 0x0102)
	buf = engine.AppendUint32(buf, 0x03040506)

	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}, buf)
}
