package wire

import (
	"io"

	"github.com/copernet/wirecodec/util"
)

// MsgAlert implements the Command interface and represents a bitcoin alert
// message.  The alert system has been retired, so the payload is kept as the
// serialized alert and its signature without further interpretation.  Alerts
// can be received but never sent.
type MsgAlert struct {
	// SerializedPayload is the alert payload serialized as a string so that
	// the version can change but the Alert can still be passed on by older
	// clients.
	SerializedPayload []byte

	// Signature is the ECDSA signature of the message.
	Signature []byte
}

// Decode decodes r using the bitcoin protocol encoding into the receiver.
// This is part of the Command interface implementation.
func (msg *MsgAlert) Decode(r io.Reader, pver uint32) error {
	var err error

	msg.SerializedPayload, err = util.ReadVarBytes(r, MaxMessagePayload,
		"alert serialized payload")
	if err != nil {
		return err
	}

	msg.Signature, err = util.ReadVarBytes(r, MaxMessagePayload,
		"alert signature")
	return err
}

// Encode encodes the receiver to w using the bitcoin protocol encoding.
// This is part of the Command interface implementation.
func (msg *MsgAlert) Encode(w io.Writer, pver uint32) error {
	err := util.WriteVarBytes(w, msg.SerializedPayload)
	if err != nil {
		return err
	}
	return util.WriteVarBytes(w, msg.Signature)
}

// Command returns the protocol command string for the message.  This is part
// of the Command interface implementation.
func (msg *MsgAlert) Command() string {
	return CmdAlert
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Command interface implementation.
func (msg *MsgAlert) MaxPayloadLength(pver uint32) uint64 {
	// Since this can vary depending on the message, make it the max
	// size allowed.
	return MaxMessagePayload
}

// NewMsgAlert returns a new bitcoin alert message that conforms to the Command
// interface.  See MsgAlert for details.
func NewMsgAlert(serializedPayload []byte, signature []byte) *MsgAlert {
	return &MsgAlert{
		SerializedPayload: serializedPayload,
		Signature:         signature,
	}
}
