package wire

import (
	"bytes"
	"net"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/copernet/wirecodec/errcode"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

// baseVersion is used in the various tests as a baseline MsgVersion.
var baseVersion = &MsgVersion{
	ProtocolVersion: int32(ProtocolVersion),
	Services:        SFNodeNetwork,
	Timestamp:       time.Unix(0x495fab29, 0), // 2009-01-03 12:15:05 -0600 CST
	AddrYou: NetAddress{
		Timestamp: time.Time{}, // Zero value -- no timestamp in version
		Services:  SFNodeNetwork,
		IP:        net.ParseIP("192.168.0.1"),
		Port:      8333,
	},
	AddrMe: NetAddress{
		Timestamp: time.Time{}, // Zero value -- no timestamp in version
		Services:  SFNodeNetwork,
		IP:        net.ParseIP("127.0.0.1"),
		Port:      8333,
	},
	Nonce:     123123, // 0x1e0f3
	UserAgent: "/btcdtest:0.0.1/",
	LastBlock: 234234, // 0x392fa
}

// baseVersionEncoded is the wire encoded bytes for baseVersion.
var baseVersionEncoded = []byte{
	0x7f, 0x11, 0x01, 0x00, // Protocol version 70015
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // SFNodeNetwork
	0x29, 0xab, 0x5f, 0x49, 0x00, 0x00, 0x00, 0x00, // 64-bit Timestamp
	// AddrYou -- No timestamp for NetAddress in version message
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // SFNodeNetwork
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xff, 0xff, 0xc0, 0xa8, 0x00, 0x01, // IP 192.168.0.1
	0x20, 0x8d, // Port 8333 in big-endian
	// AddrMe -- No timestamp for NetAddress in version message
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // SFNodeNetwork
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xff, 0xff, 0x7f, 0x00, 0x00, 0x01, // IP 127.0.0.1
	0x20, 0x8d, // Port 8333 in big-endian
	0xf3, 0xe0, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, // Nonce
	0x10, // Varint for user agent length
	0x2f, 0x62, 0x74, 0x63, 0x64, 0x74, 0x65, 0x73,
	0x74, 0x3a, 0x30, 0x2e, 0x30, 0x2e, 0x31, 0x2f, // User agent
	0xfa, 0x92, 0x03, 0x00, // Last block
	0x01, // Relay tx
}

func TestVersionWire(t *testing.T) {
	var buf bytes.Buffer
	err := baseVersion.Encode(&buf, ProtocolVersion)
	assert.Nil(t, err)
	if !bytes.Equal(buf.Bytes(), baseVersionEncoded) {
		t.Errorf("Encode got: %s want: %s", spew.Sdump(buf.Bytes()), spew.Sdump(baseVersionEncoded))
	}

	var msg MsgVersion
	err = msg.Decode(bytes.NewReader(baseVersionEncoded), ProtocolVersion)
	assert.Nil(t, err)
	if !reflect.DeepEqual(&msg, baseVersion) {
		t.Errorf("Decode got: %s want: %s", spew.Sdump(&msg), spew.Sdump(baseVersion))
	}
}

// TestVersionOptionalFields ensures that fields which were added in later
// protocol versions are only read while bytes remain.
func TestVersionOptionalFields(t *testing.T) {
	// Up to AddrYou only.
	onlyRequired := *baseVersion
	onlyRequired.AddrMe = NetAddress{}
	onlyRequired.Nonce = 0
	onlyRequired.UserAgent = ""
	onlyRequired.LastBlock = 0

	// No relay flag means relaying was requested.
	noRelay := *baseVersion
	noRelay.DisableRelayTx = false

	relayOff := append([]byte{}, baseVersionEncoded...)
	relayOff[len(relayOff)-1] = 0x00
	disabled := *baseVersion
	disabled.DisableRelayTx = true

	// Extra bytes after the relay flag are ignored.
	trailing := append(append([]byte{}, baseVersionEncoded...), 0xde, 0xad)

	tests := []struct {
		buf []byte
		out *MsgVersion
	}{
		{baseVersionEncoded[:46], &onlyRequired},
		{baseVersionEncoded[:len(baseVersionEncoded)-1], &noRelay},
		{relayOff, &disabled},
		{trailing, baseVersion},
	}

	for i, test := range tests {
		var msg MsgVersion
		err := msg.Decode(bytes.NewReader(test.buf), ProtocolVersion)
		if err != nil {
			t.Errorf("Decode #%d error %v", i, err)
			continue
		}
		if !reflect.DeepEqual(&msg, test.out) {
			t.Errorf("Decode #%d\n got: %s want: %s", i, spew.Sdump(&msg), spew.Sdump(test.out))
		}
	}
}

func TestVersionNoRelayFieldBeforeBIP0037(t *testing.T) {
	var buf bytes.Buffer
	err := baseVersion.Encode(&buf, BIP0037Version-1)
	assert.Nil(t, err)
	assert.Equal(t, baseVersionEncoded[:len(baseVersionEncoded)-1], buf.Bytes())
}

func TestVersionUserAgent(t *testing.T) {
	msg := *baseVersion

	msg.UserAgent = strings.Repeat("a", MaxUserAgentLen)
	var buf bytes.Buffer
	assert.Nil(t, msg.Encode(&buf, ProtocolVersion))
	assert.Equal(t, byte(MaxUserAgentLen), buf.Bytes()[80])

	var decoded MsgVersion
	assert.Nil(t, decoded.Decode(bytes.NewReader(buf.Bytes()), ProtocolVersion))
	assert.Equal(t, msg.UserAgent, decoded.UserAgent)

	msg.UserAgent = strings.Repeat("a", MaxUserAgentLen+1)
	buf.Reset()
	assert.NotNil(t, msg.Encode(&buf, ProtocolVersion))

	// A multi byte CompactSize prefix is never accepted.
	bad := append([]byte{}, baseVersionEncoded[:80]...)
	bad = append(bad, 0xfd, 0x10, 0x00)
	bad = append(bad, baseVersionEncoded[81:]...)
	assert.NotNil(t, decoded.Decode(bytes.NewReader(bad), ProtocolVersion))

	// Through the codec the failure is a payload error.
	codec := NewCodec()
	err := codec.Encode(NewMessage(MainNet, &msg), &buf)
	assert.True(t, errcode.IsErrorCode(err, errcode.ErrPayloadEncode))

	buf.Reset()
	buf.Write(makeFrame(MainNet, CmdVersion, bad))
	_, err = codec.Decode(&buf)
	assert.True(t, errcode.IsErrorCode(err, errcode.ErrPayloadDecode))
}

func TestVersionAddUserAgent(t *testing.T) {
	me := NewNetAddressIPPort(net.ParseIP("127.0.0.1"), 8333, 0)
	you := NewNetAddressIPPort(net.ParseIP("192.168.0.1"), 8333, 0)
	msg := NewMsgVersion(me, you, 123123, 234234)
	assert.Equal(t, DefaultUserAgent, msg.UserAgent)

	err := msg.AddUserAgent("myclient", "1.2.3", "optional", "comments")
	assert.Nil(t, err)
	assert.Equal(t, DefaultUserAgent+"myclient:1.2.3(optional; comments)/", msg.UserAgent)

	err = msg.AddUserAgent(strings.Repeat("t", MaxUserAgentLen), "0.0.1")
	assert.NotNil(t, err)

	msg.AddService(SFNodeNetwork)
	assert.True(t, msg.HasService(SFNodeNetwork))
	assert.False(t, msg.HasService(SFNodeBloom))
}

func TestVersionRequiresBytesReader(t *testing.T) {
	var msg MsgVersion
	err := msg.Decode(bytes.NewBuffer(baseVersionEncoded), ProtocolVersion)
	assert.NotNil(t, err)
}
