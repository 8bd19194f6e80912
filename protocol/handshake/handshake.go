// Package handshake implements the handshake session phase's sole
// message (spec §4.7, grounded on
// original_source/src/packets/handshaking/server.rs).
package handshake

import (
	"context"
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/codec"
	"github.com/SubZeroLabs/MinecraftTypes/types"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// NextState is the handshake's VarInt-enum target phase.
type NextState wire.VarInt

const (
	NextStateStatus NextState = 1
	NextStateLogin  NextState = 2
)

// Handshake is the server-bound opener: protocol_version, server_address
// (255-char limit), server_port, next_state.
type Handshake struct {
	ProtocolVersion wire.VarInt
	ServerAddress   types.String
	ServerPort      uint16
	NextState       wire.VarInt
}

func (h *Handshake) Decode(r io.Reader) error {
	if err := codec.DecodeField("Handshake", "protocol_version", func() error {
		return h.ProtocolVersion.Decode(r)
	}); err != nil {
		return err
	}

	h.ServerAddress = types.String{Limit: types.LimitServerAddr}
	if err := codec.DecodeField("Handshake", "server_address", func() error {
		return h.ServerAddress.Decode(r)
	}); err != nil {
		return err
	}

	if err := codec.DecodeField("Handshake", "server_port", func() error {
		v, err := wire.ReadU16(r)
		h.ServerPort = v
		return err
	}); err != nil {
		return err
	}

	return codec.DecodeField("Handshake", "next_state", func() error {
		return h.NextState.Decode(r)
	})
}

func (h Handshake) Encode(w io.Writer) error {
	if err := codec.EncodeField("Handshake", "protocol_version", func() error {
		return h.ProtocolVersion.Encode(w)
	}); err != nil {
		return err
	}

	if err := codec.EncodeField("Handshake", "server_address", func() error {
		return h.ServerAddress.Encode(w)
	}); err != nil {
		return err
	}

	if err := codec.EncodeField("Handshake", "server_port", func() error {
		return wire.WriteU16(w, h.ServerPort)
	}); err != nil {
		return err
	}

	return codec.EncodeField("Handshake", "next_state", func() error {
		return h.NextState.Encode(w)
	})
}

func (h Handshake) Size() (wire.VarInt, error) {
	pvSize, err := h.ProtocolVersion.Size()
	if err != nil {
		return 0, err
	}

	addrSize, err := h.ServerAddress.Size()
	if err != nil {
		return 0, err
	}

	nsSize, err := h.NextState.Size()
	if err != nil {
		return 0, err
	}

	return pvSize + addrSize + 2 + nsSize, nil
}

// AsyncEncode is Handshake's counterpart to Encode for the suspending
// write path (spec §4.8). A handshake is tiny and atomic enough that
// staging it through wire.EncodeViaBuffer and handing it to w in one
// suspension-checked call is strictly simpler than threading ctx through
// each of its four fields, and produces byte-identical output to Encode.
func (h Handshake) AsyncEncode(ctx context.Context, w wire.AsyncWriter) error {
	return wire.EncodeViaBuffer(ctx, w, &h)
}
