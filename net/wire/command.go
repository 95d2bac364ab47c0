package wire

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// Commands used in message headers which describe the type of message.
const (
	CmdVersion     = "version"
	CmdVerAck      = "verack"
	CmdGetAddr     = "getaddr"
	CmdAddr        = "addr"
	CmdPing        = "ping"
	CmdPong        = "pong"
	CmdAlert       = "alert"
	CmdMemPool     = "mempool"
	CmdReject      = "reject"
	CmdSendHeaders = "sendheaders"
	CmdFeeFilter   = "feefilter"

	// Only referenced by reject messages.
	CmdBlock = "block"
	CmdTx    = "tx"
)

// CommandName is the NUL padded command field of a message header.
type CommandName [CommandSize]byte

// MakeCommandName pads cmd to the fixed header width.  Only printable ASCII
// up to CommandSize bytes is accepted.
func MakeCommandName(cmd string) (CommandName, error) {
	var name CommandName
	if len(cmd) == 0 || len(cmd) > CommandSize {
		return name, errors.Errorf("command %q must be 1 to %d bytes", cmd, CommandSize)
	}
	for i := 0; i < len(cmd); i++ {
		if cmd[i] < 0x20 || cmd[i] > 0x7e {
			return name, errors.Errorf("command %q contains non printable byte %#x", cmd, cmd[i])
		}
	}
	copy(name[:], cmd)
	return name, nil
}

// String returns the command without its NUL padding.  Bytes that are not
// printable are shown escaped so the result is safe to log.
func (c CommandName) String() string {
	trimmed := bytes.TrimRight(c[:], "\x00")
	for _, b := range trimmed {
		if b < 0x20 || b > 0x7e {
			return fmt.Sprintf("%q", string(c[:]))
		}
	}
	return string(trimmed)
}
