package errcode

import "fmt"

// MessageErr classifies why a wire message could not be decoded or encoded.
type MessageErr int

const (
	ErrInvalidStartBytes MessageErr = MessageErrorBase + iota
	ErrChecksumMismatch
	ErrUnknownCommand
	ErrCommandNotSendable
	ErrCommandNotReceivable
	ErrFrameTooLarge
	ErrPayloadEncode
	ErrPayloadDecode
	ErrTruncatedInput
	ErrNetworkMismatch
)

var messageErrString = map[MessageErr]string{
	ErrInvalidStartBytes:    "Invalid start bytes",
	ErrChecksumMismatch:     "Checksum does not match payload",
	ErrUnknownCommand:       "Unknown command name",
	ErrCommandNotSendable:   "Command is receive only",
	ErrCommandNotReceivable: "Command is send only",
	ErrFrameTooLarge:        "Frame exceeds maximum message size",
	ErrPayloadEncode:        "Payload can not be encoded",
	ErrPayloadDecode:        "Payload is malformed",
	ErrTruncatedInput:       "Input ended inside a message",
	ErrNetworkMismatch:      "Message belongs to another network",
}

func (me MessageErr) String() string {
	if s, ok := messageErrString[me]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", me)
}
