package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeCommandName(t *testing.T) {
	name, err := MakeCommandName("getaddr")
	assert.Nil(t, err)
	assert.Equal(t, CommandName{'g', 'e', 't', 'a', 'd', 'd', 'r', 0, 0, 0, 0, 0}, name)
	assert.Equal(t, "getaddr", name.String())

	name, err = MakeCommandName("sendheaders1")
	assert.Nil(t, err)
	assert.Equal(t, "sendheaders1", name.String())

	tests := []string{"", "sendheaders12", "ver\x00ack", "caf\xc3\xa9"}
	for _, cmd := range tests {
		_, err := MakeCommandName(cmd)
		assert.NotNil(t, err, "%q", cmd)
	}
}

func TestCommandNameString(t *testing.T) {
	raw := CommandName{'f', 'o', 'o', 0, 'b', 'a', 'r', 0, 0, 0, 0, 0}
	assert.Equal(t, `"foo\x00bar\x00\x00\x00\x00\x00"`, raw.String())

	var empty CommandName
	assert.Equal(t, "", empty.String())
}
