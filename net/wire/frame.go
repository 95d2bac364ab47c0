package wire

import (
	"bytes"

	"github.com/copernet/wirecodec/errcode"
)

// ExtractFrame removes the first complete message from buf and returns it,
// header included.  It returns nil and leaves buf untouched when more data is
// needed.  A header announcing more than maxPayload bytes fails with
// ErrFrameTooLarge without consuming anything.
func ExtractFrame(buf *bytes.Buffer, maxPayload uint32) ([]byte, error) {
	data := buf.Bytes()
	if len(data) < MessageHeaderSize {
		return nil, nil
	}

	hdr := parseMessageHeader(data)
	if hdr.length > maxPayload {
		return nil, &MessageError{
			Code:    errcode.ErrFrameTooLarge,
			Command: hdr.command,
			Size:    uint64(hdr.length),
			Max:     uint64(maxPayload),
		}
	}

	total := uint64(MessageHeaderSize) + uint64(hdr.length)
	if uint64(len(data)) < total {
		return nil, nil
	}

	frame := make([]byte, total)
	copy(frame, buf.Next(int(total)))
	return frame, nil
}
