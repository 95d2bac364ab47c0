package wire

import (
	"io"
)

// MsgGetAddr implements the Command interface and represents a bitcoin
// getaddr message.  It is used to request a list of known active peers on the
// network from a peer to help identify potential nodes.  The list is returned
// via one or more addr messages (MsgAddr).
//
// This message has no payload.
type MsgGetAddr struct{}

// Decode decodes r using the bitcoin protocol encoding into the receiver.
// This is part of the Command interface implementation.
func (msg *MsgGetAddr) Decode(r io.Reader, pver uint32) error {
	return nil
}

// Encode encodes the receiver to w using the bitcoin protocol encoding.
// This is part of the Command interface implementation.
func (msg *MsgGetAddr) Encode(w io.Writer, pver uint32) error {
	return nil
}

// Command returns the protocol command string for the message.  This is part
// of the Command interface implementation.
func (msg *MsgGetAddr) Command() string {
	return CmdGetAddr
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Command interface implementation.
func (msg *MsgGetAddr) MaxPayloadLength(pver uint32) uint64 {
	return 0
}

// NewMsgGetAddr returns a new bitcoin getaddr message that conforms to the
// Command interface.  See MsgGetAddr for details.
func NewMsgGetAddr() *MsgGetAddr {
	return &MsgGetAddr{}
}
