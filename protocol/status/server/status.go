// Package server implements the status phase's server-bound messages.
// Not present in original_source's retrieved file set (only client.rs
// was retrieved); authored here per SPEC_FULL.md §12 from the standard
// protocol shape: an empty request and an echoed i64 ping payload.
package server

import (
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/codec"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// StatusRequest carries no fields; its mere presence triggers a
// StatusResponse.
type StatusRequest struct{}

func (s *StatusRequest) Decode(r io.Reader) error { return nil }
func (s StatusRequest) Encode(w io.Writer) error  { return nil }
func (s StatusRequest) Size() (wire.VarInt, error) { return 0, nil }

// Ping carries an opaque i64 the server echoes back via Pong.
type Ping struct {
	Payload int64
}

func (p *Ping) Decode(r io.Reader) error {
	return codec.DecodeField("Ping", "payload", func() error {
		v, err := wire.ReadI64(r)
		p.Payload = v
		return err
	})
}

func (p Ping) Encode(w io.Writer) error {
	return codec.EncodeField("Ping", "payload", func() error {
		return wire.WriteI64(w, p.Payload)
	})
}

func (p Ping) Size() (wire.VarInt, error) {
	return 8, nil
}
