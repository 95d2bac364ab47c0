package wire

import (
	"fmt"
	"io"

	"github.com/copernet/wirecodec/errcode"
	"github.com/copernet/wirecodec/util"
)

// MsgReject implements the Command interface and represents a bitcoin reject
// message.  It was added in protocol version RejectVersion.
type MsgReject struct {
	// Cmd names the rejected message, e.g. CmdBlock or CmdTx.
	Cmd string

	// Code is carried as a single byte on the wire.
	Code errcode.RejectCode

	// Reason is free text detailing the rejection.
	Reason string

	// Hash of the rejected block or transaction.  Only present when Cmd
	// is CmdBlock or CmdTx.
	Hash util.Hash
}

// hasHash reports whether the rejected command is followed by a hash.
func (msg *MsgReject) hasHash() bool {
	return msg.Cmd == CmdBlock || msg.Cmd == CmdTx
}

func checkRejectVersion(f string, pver uint32) error {
	if pver < RejectVersion {
		str := fmt.Sprintf("reject message invalid for protocol version %d", pver)
		return payloadError(f, str)
	}
	return nil
}

// Decode decodes r using the bitcoin protocol encoding into the receiver.
// This is part of the Command interface implementation.
func (msg *MsgReject) Decode(r io.Reader, pver uint32) error {
	err := checkRejectVersion("MsgReject.Decode", pver)
	if err != nil {
		return err
	}

	msg.Cmd, err = util.ReadVarString(r)
	if err != nil {
		return err
	}
	err = readElement(r, &msg.Code)
	if err != nil {
		return err
	}
	msg.Reason, err = util.ReadVarString(r)
	if err != nil {
		return err
	}

	if msg.hasHash() {
		return readElement(r, &msg.Hash)
	}
	return nil
}

// Encode encodes the receiver to w using the bitcoin protocol encoding.
// This is part of the Command interface implementation.
func (msg *MsgReject) Encode(w io.Writer, pver uint32) error {
	err := checkRejectVersion("MsgReject.Encode", pver)
	if err != nil {
		return err
	}

	err = util.WriteVarString(w, msg.Cmd)
	if err != nil {
		return err
	}
	err = writeElement(w, msg.Code)
	if err != nil {
		return err
	}
	err = util.WriteVarString(w, msg.Reason)
	if err != nil {
		return err
	}

	if msg.hasHash() {
		return writeElement(w, &msg.Hash)
	}
	return nil
}

// Command returns the protocol command string for the message.  This is part
// of the Command interface implementation.
func (msg *MsgReject) Command() string {
	return CmdReject
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  The reason has no length limit of its own, so the bound is the
// overall message limit.
func (msg *MsgReject) MaxPayloadLength(pver uint32) uint64 {
	if pver < RejectVersion {
		return 0
	}
	return MaxMessagePayload
}

// NewMsgReject returns a new bitcoin reject message that conforms to the
// Command interface.  See MsgReject for details.
func NewMsgReject(command string, code errcode.RejectCode, reason string) *MsgReject {
	return &MsgReject{
		Cmd:    command,
		Code:   code,
		Reason: reason,
	}
}
