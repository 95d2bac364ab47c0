package wire

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Command is implemented by every typed payload this package can carry.  The
// registry maps each header command to one implementation.
type Command interface {
	Decode(r io.Reader, pver uint32) error
	Encode(w io.Writer, pver uint32) error
	Command() string
	MaxPayloadLength(pver uint32) uint64
}

// Message is a decoded or to-be-encoded message: the network it travels on and
// its typed payload.
type Message struct {
	Net     BitcoinNet
	Command Command
}

// NewMessage pairs a payload with the network it is sent on.
func NewMessage(net BitcoinNet, cmd Command) *Message {
	return &Message{Net: net, Command: cmd}
}

func (m *Message) String() string {
	if m.Command == nil {
		return fmt.Sprintf("%v: <nil>", m.Net)
	}
	return fmt.Sprintf("%v: %s", m.Net, m.Command.Command())
}

// payloadError builds the error a Command returns for a value that can not be
// represented at the given protocol version.
func payloadError(f string, desc string) error {
	return errors.Errorf("%s: %s", f, desc)
}
