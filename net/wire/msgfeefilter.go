package wire

import (
	"fmt"
	"io"
)

// MsgFeeFilter implements the Command interface and represents a bitcoin
// feefilter message.  It is used to request the receiving peer does not
// announce any transactions below the specified minimum fee rate.
//
// This message was not added until protocol versions starting with
// FeeFilterVersion.
type MsgFeeFilter struct {
	// Minimum fee rate in satoshis per kilobyte.
	MinFee int64
}

// Decode decodes r using the bitcoin protocol encoding into the receiver.
// This is part of the Command interface implementation.
func (msg *MsgFeeFilter) Decode(r io.Reader, pver uint32) error {
	if pver < FeeFilterVersion {
		str := fmt.Sprintf("feefilter message invalid for protocol "+
			"version %d", pver)
		return payloadError("MsgFeeFilter.Decode", str)
	}

	return readElement(r, &msg.MinFee)
}

// Encode encodes the receiver to w using the bitcoin protocol encoding.
// This is part of the Command interface implementation.
func (msg *MsgFeeFilter) Encode(w io.Writer, pver uint32) error {
	if pver < FeeFilterVersion {
		str := fmt.Sprintf("feefilter message invalid for protocol "+
			"version %d", pver)
		return payloadError("MsgFeeFilter.Encode", str)
	}

	return writeElement(w, msg.MinFee)
}

// Command returns the protocol command string for the message.  This is part
// of the Command interface implementation.
func (msg *MsgFeeFilter) Command() string {
	return CmdFeeFilter
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Command interface implementation.
func (msg *MsgFeeFilter) MaxPayloadLength(pver uint32) uint64 {
	return 8
}

// NewMsgFeeFilter returns a new bitcoin feefilter message that conforms to
// the Command interface.  See MsgFeeFilter for details.
func NewMsgFeeFilter(minfee int64) *MsgFeeFilter {
	return &MsgFeeFilter{
		MinFee: minfee,
	}
}
