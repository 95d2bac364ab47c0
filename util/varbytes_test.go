package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarBytes(t *testing.T) {
	tests := []struct {
		in  []byte
		buf []byte
	}{
		{[]byte{}, []byte{0x00}},
		{[]byte{0x01, 0x02, 0x03}, []byte{0x03, 0x01, 0x02, 0x03}},
		{bytes.Repeat([]byte{0xaa}, 0xfd), append([]byte{0xfd, 0xfd, 0x00}, bytes.Repeat([]byte{0xaa}, 0xfd)...)},
	}

	for i, test := range tests {
		var buf bytes.Buffer
		err := WriteVarBytes(&buf, test.in)
		assert.NoError(t, err, "WriteVarBytes #%d", i)
		assert.Equal(t, test.buf, buf.Bytes(), "WriteVarBytes #%d", i)

		val, err := ReadVarBytes(bytes.NewReader(test.buf), MaxSize, "test payload")
		assert.NoError(t, err, "ReadVarBytes #%d", i)
		assert.Equal(t, test.in, val, "ReadVarBytes #%d", i)
	}
}

func TestReadVarBytesTooLarge(t *testing.T) {
	_, err := ReadVarBytes(bytes.NewReader([]byte{0x05, 1, 2, 3, 4, 5}), 4, "signature")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "signature")
}

func TestReadVarBytesBeyondInput(t *testing.T) {
	// 0x02000000 bytes declared, none present.
	_, err := ReadVarBytes(bytes.NewReader([]byte{0xfe, 0x00, 0x00, 0x00, 0x02}), MaxSize, "alert payload")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "only 0 remain")

	_, err = ReadVarBytes(bytes.NewBuffer([]byte{0x03, 0x01, 0x02}), MaxSize, "signature")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "signature declares 3 bytes but only 2 remain")
}
