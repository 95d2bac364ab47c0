package wire

import (
	"io"
)

// MsgVerAck defines a bitcoin verack message which is used for a peer to
// acknowledge a version message (MsgVersion) after it has used the information
// to negotiate parameters.  It implements the Command interface.
//
// This message has no payload.
type MsgVerAck struct{}

// Decode decodes r using the bitcoin protocol encoding into the receiver.
// This is part of the Command interface implementation.
func (msg *MsgVerAck) Decode(r io.Reader, pver uint32) error {
	return nil
}

// Encode encodes the receiver to w using the bitcoin protocol encoding.
// This is part of the Command interface implementation.
func (msg *MsgVerAck) Encode(w io.Writer, pver uint32) error {
	return nil
}

// Command returns the protocol command string for the message.  This is part
// of the Command interface implementation.
func (msg *MsgVerAck) Command() string {
	return CmdVerAck
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Command interface implementation.
func (msg *MsgVerAck) MaxPayloadLength(pver uint32) uint64 {
	return 0
}

// NewMsgVerAck returns a new bitcoin verack message that conforms to the
// Command interface.
func NewMsgVerAck() *MsgVerAck {
	return &MsgVerAck{}
}
