package wire

import (
	"bytes"

	"github.com/copernet/wirecodec/crypto"
	"github.com/copernet/wirecodec/errcode"
)

// emptyPayloadChecksum is the checksum of a message with no payload.
var emptyPayloadChecksum = [4]byte{0x5d, 0xf6, 0xe0, 0xe2}

// Checksum returns the first four bytes of the double sha256 of payload.
func Checksum(payload []byte) [4]byte {
	var sum [4]byte
	if len(payload) == 0 {
		return emptyPayloadChecksum
	}
	copy(sum[:], crypto.DoubleSha256Bytes(payload)[:4])
	return sum
}

// VerifyChecksum checks payload against the checksum carried by its header.
func VerifyChecksum(expected [4]byte, payload []byte) error {
	actual := Checksum(payload)
	if !bytes.Equal(expected[:], actual[:]) {
		return &MessageError{
			Code:     errcode.ErrChecksumMismatch,
			Expected: expected,
			Actual:   actual,
		}
	}
	return nil
}
