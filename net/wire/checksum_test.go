package wire

import (
	"testing"

	"github.com/copernet/wirecodec/errcode"
	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	assert.Equal(t, [4]byte{0x5d, 0xf6, 0xe0, 0xe2}, Checksum(nil))
	assert.Equal(t, [4]byte{0x5d, 0xf6, 0xe0, 0xe2}, Checksum([]byte{}))

	// sha256d("hello") = 9595c9df...
	assert.Equal(t, [4]byte{0x95, 0x95, 0xc9, 0xdf}, Checksum([]byte("hello")))
}

func TestVerifyChecksum(t *testing.T) {
	payload := []byte("hello")
	assert.Nil(t, VerifyChecksum(Checksum(payload), payload))

	err := VerifyChecksum(emptyPayloadChecksum, payload)
	assert.True(t, errcode.IsErrorCode(err, errcode.ErrChecksumMismatch))
	msgErr, ok := AsMessageError(err)
	assert.True(t, ok)
	assert.Equal(t, emptyPayloadChecksum, msgErr.Expected)
	assert.Equal(t, Checksum(payload), msgErr.Actual)

	// Every single bit flip of the payload is caught.
	sum := Checksum(payload)
	for i := 0; i < len(payload)*8; i++ {
		flipped := append([]byte{}, payload...)
		flipped[i/8] ^= 1 << uint(i%8)
		err := VerifyChecksum(sum, flipped)
		assert.True(t, errcode.IsErrorCode(err, errcode.ErrChecksumMismatch), "bit %d", i)
	}
}
