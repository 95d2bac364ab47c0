package wire

import (
	"bytes"
	"reflect"
	"sort"

	"github.com/copernet/wirecodec/errcode"
	"github.com/pkg/errors"
)

// Direction tells which way a command may travel.
type Direction uint8

const (
	// Inbound commands may be decoded.
	Inbound Direction = 1 << iota

	// Outbound commands may be encoded.
	Outbound

	// Bidirectional commands may travel both ways.
	Bidirectional = Inbound | Outbound
)

func (d Direction) String() string {
	switch d {
	case Inbound:
		return "inbound"
	case Outbound:
		return "outbound"
	case Bidirectional:
		return "bidirectional"
	}
	return "none"
}

type binding struct {
	dir  Direction
	newCmd func() Command
}

var registry = map[CommandName]binding{}

func register(cmd string, dir Direction, newCmd func() Command) {
	name, err := MakeCommandName(cmd)
	if err != nil {
		panic(err)
	}
	if _, ok := registry[name]; ok {
		panic("duplicate command " + cmd)
	}
	registry[name] = binding{dir: dir, newCmd: newCmd}
}

func init() {
	register(CmdVersion, Bidirectional, func() Command { return &MsgVersion{} })
	register(CmdVerAck, Bidirectional, func() Command { return &MsgVerAck{} })
	register(CmdGetAddr, Bidirectional, func() Command { return &MsgGetAddr{} })
	register(CmdAddr, Bidirectional, func() Command { return &MsgAddr{} })
	register(CmdPing, Bidirectional, func() Command { return &MsgPing{} })
	register(CmdPong, Bidirectional, func() Command { return &MsgPong{} })
	register(CmdReject, Bidirectional, func() Command { return &MsgReject{} })
	register(CmdSendHeaders, Bidirectional, func() Command { return &MsgSendHeaders{} })
	register(CmdMemPool, Bidirectional, func() Command { return &MsgMemPool{} })
	register(CmdFeeFilter, Bidirectional, func() Command { return &MsgFeeFilter{} })
	register(CmdAlert, Inbound, func() Command { return &MsgAlert{} })
}

// LookupCommand returns the direction a registered command may travel.
func LookupCommand(name CommandName) (Direction, bool) {
	b, ok := registry[name]
	return b.dir, ok
}

// Commands returns the registered command names in sorted order.
func Commands() []string {
	cmds := make([]string, 0, len(registry))
	for name := range registry {
		cmds = append(cmds, name.String())
	}
	sort.Strings(cmds)
	return cmds
}

// DecodeCommand builds the typed payload registered for name.  The payload is
// decoded in full at pver; bytes left over after the last field are ignored.
func DecodeCommand(name CommandName, payload []byte, pver uint32) (Command, error) {
	b, ok := registry[name]
	if !ok {
		return nil, &MessageError{Code: errcode.ErrUnknownCommand, Command: name}
	}
	if b.dir&Inbound == 0 {
		return nil, &MessageError{Code: errcode.ErrCommandNotReceivable, Command: name}
	}

	cmd := b.newCmd()
	if max := cmd.MaxPayloadLength(pver); uint64(len(payload)) > max {
		return nil, &MessageError{
			Code:    errcode.ErrFrameTooLarge,
			Command: name,
			Size:    uint64(len(payload)),
			Max:     max,
		}
	}

	err := cmd.Decode(bytes.NewReader(payload), pver)
	if err != nil {
		return nil, &MessageError{
			Code:    errcode.ErrPayloadDecode,
			Command: name,
			Err:     errors.Wrapf(err, "decode %s", name),
		}
	}
	return cmd, nil
}

// EncodeCommand serializes cmd at pver and returns the header name it travels
// under.  cmd must be the type registered for its name.
func EncodeCommand(cmd Command, pver uint32) (CommandName, []byte, error) {
	var name CommandName
	if cmd == nil {
		return name, nil, &MessageError{
			Code: errcode.ErrPayloadEncode,
			Err:  errors.New("nil command"),
		}
	}

	name, err := MakeCommandName(cmd.Command())
	if err != nil {
		return name, nil, &MessageError{Code: errcode.ErrUnknownCommand, Err: err}
	}
	b, ok := registry[name]
	if !ok || reflect.TypeOf(b.newCmd()) != reflect.TypeOf(cmd) {
		return name, nil, &MessageError{Code: errcode.ErrUnknownCommand, Command: name}
	}
	if b.dir&Outbound == 0 {
		return name, nil, &MessageError{Code: errcode.ErrCommandNotSendable, Command: name}
	}

	var buf bytes.Buffer
	err = cmd.Encode(&buf, pver)
	if err != nil {
		return name, nil, &MessageError{
			Code:    errcode.ErrPayloadEncode,
			Command: name,
			Err:     errors.Wrapf(err, "encode %s", name),
		}
	}

	payload := buf.Bytes()
	if max := cmd.MaxPayloadLength(pver); uint64(len(payload)) > max {
		return name, nil, &MessageError{
			Code:    errcode.ErrFrameTooLarge,
			Command: name,
			Size:    uint64(len(payload)),
			Max:     max,
		}
	}
	return name, payload, nil
}
