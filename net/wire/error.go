package wire

import (
	"fmt"

	"github.com/copernet/wirecodec/errcode"
	"github.com/pkg/errors"
)

// MessageError describes a message that could not be decoded or encoded.  Only
// the fields relevant to Code are set.
type MessageError struct {
	Code errcode.MessageErr

	// Start holds the offending start bytes for ErrInvalidStartBytes.
	Start [4]byte

	// Net is the network found in a header for ErrNetworkMismatch.
	Net BitcoinNet

	// Command holds the raw header command for command related errors.
	Command CommandName

	// Expected and Actual hold the checksums for ErrChecksumMismatch.
	Expected [4]byte
	Actual   [4]byte

	// Size and Max describe ErrFrameTooLarge.
	Size uint64
	Max  uint64

	// Err is the underlying cause, if any.
	Err error
}

func (e *MessageError) Error() string {
	base := errcode.New(e.Code).Error()
	var detail string
	switch e.Code {
	case errcode.ErrInvalidStartBytes:
		detail = fmt.Sprintf("start bytes %x", e.Start)
	case errcode.ErrNetworkMismatch:
		detail = fmt.Sprintf("message from %v", e.Net)
	case errcode.ErrChecksumMismatch:
		detail = fmt.Sprintf("command %v header indicates %x, but actual checksum is %x", e.Command, e.Expected, e.Actual)
	case errcode.ErrUnknownCommand, errcode.ErrCommandNotSendable, errcode.ErrCommandNotReceivable:
		detail = fmt.Sprintf("command %v (%x)", e.Command, e.Command[:])
	case errcode.ErrFrameTooLarge:
		detail = fmt.Sprintf("command %v payload is %d bytes, max %d", e.Command, e.Size, e.Max)
	}
	if e.Err != nil {
		if detail != "" {
			detail += ": "
		}
		detail += e.Err.Error()
	}
	if detail == "" {
		return base
	}
	return base + ", " + detail
}

// ErrorCode returns the global errcode value.
func (e *MessageError) ErrorCode() int {
	return int(e.Code)
}

func (e *MessageError) Unwrap() error {
	return e.Err
}

// RejectCode is the reject code a node answers this failure with.
func (e *MessageError) RejectCode() errcode.RejectCode {
	return errcode.RejectCodeForMessageErr(e.Code)
}

// AsMessageError finds the first MessageError in err's chain.
func AsMessageError(err error) (*MessageError, bool) {
	var e *MessageError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
