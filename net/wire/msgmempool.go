package wire

import (
	"fmt"
	"io"
)

// MsgMemPool implements the Command interface and represents a bitcoin mempool
// message.  It is used to request a list of transactions still in the active
// memory pool of a relay.
//
// This message has no payload and was not added until protocol versions
// starting with BIP0035Version.
type MsgMemPool struct{}

// Decode decodes r using the bitcoin protocol encoding into the receiver.
// This is part of the Command interface implementation.
func (msg *MsgMemPool) Decode(r io.Reader, pver uint32) error {
	if pver < BIP0035Version {
		str := fmt.Sprintf("mempool message invalid for protocol "+
			"version %d", pver)
		return payloadError("MsgMemPool.Decode", str)
	}

	return nil
}

// Encode encodes the receiver to w using the bitcoin protocol encoding.
// This is part of the Command interface implementation.
func (msg *MsgMemPool) Encode(w io.Writer, pver uint32) error {
	if pver < BIP0035Version {
		str := fmt.Sprintf("mempool message invalid for protocol "+
			"version %d", pver)
		return payloadError("MsgMemPool.Encode", str)
	}

	return nil
}

// Command returns the protocol command string for the message.  This is part
// of the Command interface implementation.
func (msg *MsgMemPool) Command() string {
	return CmdMemPool
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Command interface implementation.
func (msg *MsgMemPool) MaxPayloadLength(pver uint32) uint64 {
	return 0
}

// NewMsgMemPool returns a new bitcoin mempool message that conforms to the
// Command interface.  See MsgMemPool for details.
func NewMsgMemPool() *MsgMemPool {
	return &MsgMemPool{}
}
