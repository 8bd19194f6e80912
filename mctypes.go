// Package mctypes provides convenient top-level constructors around the
// handshake/status/login/play protocol packages and the underlying wire
// codec.
//
// # Core Features
//
//   - VarInt/VarLong and fixed-width primitive codecs (package wire)
//   - Length-capped strings, packed positions, UUIDs (package types)
//   - Generic sequence/optional combinators (package seq)
//   - A declarative record/union declarator layer (package codec)
//   - A four-phase message catalog: handshake, status, login, play
//
// # Basic usage
//
// Building and encoding a handshake:
//
//	h := mctypes.NewHandshake(mctypes.ProtocolVersion, "play.example.com", 25565, mctypes.NextStateLogin)
//	var buf bytes.Buffer
//	if err := mctypes.Encode(&buf, &h); err != nil {
//	    log.Fatal(err)
//	}
//
// Decoding it back:
//
//	var got handshake.Handshake
//	if err := mctypes.Decode(bytes.NewReader(buf.Bytes()), &got); err != nil {
//	    log.Fatal(err)
//	}
//
// # Package structure
//
// This package is a thin convenience layer over the subpackages; for
// direct control over a specific phase's messages, import
// protocol/{handshake,status,login,play} and the supporting wire/types/
// seq/codec/domain/nbt packages directly.
package mctypes

import (
	"context"
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/protocol/handshake"
	loginserver "github.com/SubZeroLabs/MinecraftTypes/protocol/login/server"
	statusserver "github.com/SubZeroLabs/MinecraftTypes/protocol/status/server"
	"github.com/SubZeroLabs/MinecraftTypes/types"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// ProtocolVersion is the protocol edition this module's catalog targets.
const ProtocolVersion wire.VarInt = 755

// NextState re-exports handshake.NextState so callers need not import the
// handshake package just to name a target phase.
type NextState = handshake.NextState

const (
	NextStateStatus = handshake.NextStateStatus
	NextStateLogin  = handshake.NextStateLogin
)

// NewHandshake builds the handshake phase's sole message, giving
// serverAddress its 255-character limit via types.NewServerAddress (the
// value itself is not truncated).
func NewHandshake(protocolVersion wire.VarInt, serverAddress string, serverPort uint16, next NextState) handshake.Handshake {
	return handshake.Handshake{
		ProtocolVersion: protocolVersion,
		ServerAddress:   types.NewServerAddress(serverAddress),
		ServerPort:      serverPort,
		NextState:       wire.VarInt(next),
	}
}

// NewLoginStart builds the login phase's opening message, giving name its
// 16-character player-name limit via types.NewPlayerName (the value itself
// is not truncated).
func NewLoginStart(name string) loginserver.LoginStart {
	return loginserver.LoginStart{Name: types.NewPlayerName(name)}
}

// NewPing builds a status-phase Ping carrying an arbitrary echo payload.
func NewPing(payload int64) statusserver.Ping {
	return statusserver.Ping{Payload: payload}
}

// Encode writes f's wire representation to w. It is a direct forward to
// f.Encode, provided so callers driving several message kinds through the
// same loop can write mctypes.Encode(w, msg) without naming each message's
// own Encode method.
func Encode(w io.Writer, f wire.Encoder) error {
	return f.Encode(w)
}

// Decode reads f's wire representation from r. f must be a pointer to a
// concrete message type, matching wire.Decoder's pointer-receiver
// convention.
func Decode(r io.Reader, f wire.Decoder) error {
	return f.Decode(r)
}

// Size reports f's encoded length in bytes.
func Size(f wire.Sizer) (wire.VarInt, error) {
	return f.Size()
}

// AsyncEncode writes f's wire representation to w, suspending at ctx's
// discretion between writes (spec §4.8's asynchronous write path). In the
// catalog, only Handshake (staged through wire.EncodeViaBuffer) and
// ChunkData implement wire.AsyncField; every other message is written
// through Encode.
func AsyncEncode(ctx context.Context, w wire.AsyncWriter, f wire.AsyncField) error {
	return f.AsyncEncode(ctx, w)
}
