package wire

import (
	"bytes"
	"io"

	"github.com/copernet/wirecodec/conf"
	"github.com/copernet/wirecodec/errcode"
	"github.com/copernet/wirecodec/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// Codec turns byte streams into messages and back.  A Codec is immutable after
// construction and safe for concurrent use; the buffers passed to it are not.
// The zero value codes at ProtocolVersion with a MaxMessagePayload limit and
// accepts every network.
type Codec struct {
	pver       uint32
	maxPayload uint32
	net        BitcoinNet
	netSet     bool
	sendOnly   map[CommandName]struct{}
}

// Option configures a Codec.
type Option func(*Codec)

// WithProtocolVersion sets the protocol version payloads are coded at.  Zero
// selects ProtocolVersion.
func WithProtocolVersion(pver uint32) Option {
	return func(c *Codec) {
		c.pver = pver
	}
}

// WithMaxPayload bounds the payload size of a single frame.  Zero selects
// MaxMessagePayload.
func WithMaxPayload(max uint32) Option {
	return func(c *Codec) {
		c.maxPayload = max
	}
}

// WithNet makes the codec reject messages of any other network.
func WithNet(net BitcoinNet) Option {
	return func(c *Codec) {
		c.net = net
		c.netSet = true
	}
}

// WithSendOnly marks commands this side never accepts.  Names that are not
// valid commands can never match a header and are ignored.
func WithSendOnly(cmds ...string) Option {
	return func(c *Codec) {
		for _, cmd := range cmds {
			name, err := MakeCommandName(cmd)
			if err != nil {
				continue
			}
			c.sendOnly[name] = struct{}{}
		}
	}
}

// NewCodec returns a codec at ProtocolVersion accepting every network.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		pver:       ProtocolVersion,
		maxPayload: MaxMessagePayload,
		sendOnly:   make(map[CommandName]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewCodecFromConfig builds a codec from the loaded configuration.
func NewCodecFromConfig(cfg *conf.Configuration) (*Codec, error) {
	if cfg == nil {
		return nil, errors.New("nil configuration")
	}
	net, err := ParseBitcoinNet(cfg.Net)
	if err != nil {
		return nil, err
	}
	return NewCodec(
		WithNet(net),
		WithProtocolVersion(cfg.Protocol.Version),
		WithMaxPayload(cfg.Protocol.MaxPayload),
		WithSendOnly(cfg.Protocol.SendOnly...),
	), nil
}

// ProtocolVersion returns the protocol version payloads are coded at.
func (c *Codec) ProtocolVersion() uint32 {
	if c.pver == 0 {
		return ProtocolVersion
	}
	return c.pver
}

// MaxPayload returns the largest payload a frame may carry.
func (c *Codec) MaxPayload() uint32 {
	if c.maxPayload == 0 {
		return MaxMessagePayload
	}
	return c.maxPayload
}

// Net returns the only network accepted, if the codec is bound to one.
func (c *Codec) Net() (BitcoinNet, bool) {
	return c.net, c.netSet
}

// Decode takes the next message off buf.  It returns nil, nil when buf does
// not yet hold a complete frame; nothing is consumed in that case.  A frame
// that fails validation is consumed and its error returned, so the caller may
// keep decoding the rest of buf.
func (c *Codec) Decode(buf *bytes.Buffer) (*Message, error) {
	frame, err := ExtractFrame(buf, c.MaxPayload())
	if err != nil {
		log.Print("wire", "debug", "frame rejected: %v", err)
		return nil, err
	}
	if frame == nil {
		return nil, nil
	}
	return c.decodeFrame(frame)
}

func (c *Codec) decodeFrame(frame []byte) (*Message, error) {
	hdr := parseMessageHeader(frame)
	payload := frame[MessageHeaderSize:]

	net, err := BitcoinNetFromStartBytes(hdr.start)
	if err != nil {
		log.Print("wire", "debug", "frame rejected: %v", err)
		return nil, err
	}
	if c.netSet && net != c.net {
		err = &MessageError{Code: errcode.ErrNetworkMismatch, Net: net, Command: hdr.command}
		log.Print("wire", "debug", "frame rejected: %v", err)
		return nil, err
	}

	err = VerifyChecksum(hdr.checksum, payload)
	if err != nil {
		err.(*MessageError).Command = hdr.command
		log.Print("wire", "debug", "frame rejected: %v", err)
		return nil, err
	}

	if _, ok := c.sendOnly[hdr.command]; ok {
		err = &MessageError{Code: errcode.ErrCommandNotReceivable, Command: hdr.command}
		log.Print("wire", "debug", "frame rejected: %v", err)
		return nil, err
	}

	cmd, err := DecodeCommand(hdr.command, payload, c.ProtocolVersion())
	if err != nil {
		log.Print("wire", "debug", "frame rejected: %v", err)
		return nil, err
	}

	log.Print("wire", "debug", "received %v on %v (%d bytes): %v", hdr.command, net,
		len(payload), log.InitLogClosure(func() string { return spew.Sdump(cmd) }))
	return &Message{Net: net, Command: cmd}, nil
}

// Encode appends the framed msg to out.  Nothing is written when an error is
// returned.
func (c *Codec) Encode(msg *Message, out *bytes.Buffer) error {
	frame, err := c.encodeFrame(msg)
	if err != nil {
		log.Print("wire", "debug", "encode failed: %v", err)
		return err
	}
	out.Write(frame)
	return nil
}

func (c *Codec) encodeFrame(msg *Message) ([]byte, error) {
	if msg == nil {
		return nil, &MessageError{Code: errcode.ErrPayloadEncode, Err: errors.New("nil message")}
	}
	if !msg.Net.IsValid() {
		return nil, &MessageError{Code: errcode.ErrInvalidStartBytes, Start: msg.Net.StartBytes()}
	}

	name, payload, err := EncodeCommand(msg.Command, c.ProtocolVersion())
	if err != nil {
		return nil, err
	}
	if uint64(len(payload)) > uint64(c.MaxPayload()) {
		return nil, &MessageError{
			Code:    errcode.ErrFrameTooLarge,
			Command: name,
			Size:    uint64(len(payload)),
			Max:     uint64(c.MaxPayload()),
		}
	}

	hdr := messageHeader{
		start:    msg.Net.StartBytes(),
		command:  name,
		length:   uint32(len(payload)),
		checksum: Checksum(payload),
	}
	frame := make([]byte, 0, MessageHeaderSize+len(payload))
	frame = append(frame, hdr.bytes()...)
	frame = append(frame, payload...)

	log.Print("wire", "debug", "sending %v on %v (%d bytes)", name, msg.Net, len(payload))
	return frame, nil
}

// ReadMessage reads exactly one message from r.  io.EOF is returned untouched
// when r ends before the first byte; ending anywhere later is
// ErrTruncatedInput.
func (c *Codec) ReadMessage(r io.Reader) (*Message, error) {
	var header [MessageHeaderSize]byte
	n, err := io.ReadFull(r, header[:])
	if err != nil {
		if err == io.EOF && n == 0 {
			return nil, err
		}
		return nil, truncatedError(err)
	}

	hdr := parseMessageHeader(header[:])
	if hdr.length > c.MaxPayload() {
		return nil, &MessageError{
			Code:    errcode.ErrFrameTooLarge,
			Command: hdr.command,
			Size:    uint64(hdr.length),
			Max:     uint64(c.MaxPayload()),
		}
	}

	frame := make([]byte, MessageHeaderSize+int(hdr.length))
	copy(frame, header[:])
	_, err = io.ReadFull(r, frame[MessageHeaderSize:])
	if err != nil {
		return nil, truncatedError(err)
	}
	return c.decodeFrame(frame)
}

// WriteMessage writes the framed msg to w and returns the bytes written.
func (c *Codec) WriteMessage(w io.Writer, msg *Message) (int, error) {
	frame, err := c.encodeFrame(msg)
	if err != nil {
		return 0, err
	}
	return w.Write(frame)
}

func truncatedError(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &MessageError{Code: errcode.ErrTruncatedInput, Err: io.ErrUnexpectedEOF}
	}
	return err
}
