package wire

import (
	"context"

	"github.com/SubZeroLabs/MinecraftTypes/internal/pool"
)

// EncodeViaBuffer stages f's synchronous encoding into a pooled buffer,
// then hands the whole byte run to w in one suspension-checked call. This
// is the default bridge from the (stateless, cannot suspend mid-field)
// Encoder/Sizer pair to the AsyncField contract: most catalog messages are
// small enough that buffering in full and writing once is cheaper than
// threading ctx through every field, and it preserves Encode's atomicity
// (either the whole value reaches w, or none of it does).
func EncodeViaBuffer(ctx context.Context, w AsyncWriter, f Field) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	buf := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(buf)

	if err := f.Encode(bufferWriter{buf}); err != nil {
		return err
	}

	_, err := w.Write(ctx, buf.Bytes())
	return err
}

// bufferWriter adapts *pool.ByteBuffer to io.Writer for EncodeViaBuffer's
// internal staging pass.
type bufferWriter struct {
	buf *pool.ByteBuffer
}

func (b bufferWriter) Write(p []byte) (int, error) {
	b.buf.MustWrite(p)
	return len(p), nil
}
