package errcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageErr_String(t *testing.T) {
	tests := []struct {
		in   MessageErr
		want string
	}{
		{ErrInvalidStartBytes, "Invalid start bytes"},
		{ErrChecksumMismatch, "Checksum does not match payload"},
		{ErrCommandNotSendable, "Command is receive only"},
		{ErrCommandNotReceivable, "Command is send only"},
		{ErrTruncatedInput, "Input ended inside a message"},
		{MessageErrorBase + 999, "Unknown code (1999)"},
	}

	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result, test.want)
		}
	}
}

func TestMessageErrCodesInRange(t *testing.T) {
	for code := range messageErrString {
		assert.True(t, int(code) >= MessageErrorBase && int(code) < RejectErrorBase, "code %d", code)
	}
}

func TestRejectCodeForMessageErr(t *testing.T) {
	assert.Equal(t, RejectMalformed, RejectCodeForMessageErr(ErrChecksumMismatch))
	assert.Equal(t, RejectMalformed, RejectCodeForMessageErr(ErrPayloadDecode))
	assert.Equal(t, RejectInvalid, RejectCodeForMessageErr(ErrUnknownCommand))
	assert.Equal(t, RejectObsolete, RejectCodeForMessageErr(ErrCommandNotSendable))
}
