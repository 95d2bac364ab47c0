package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/copernet/wirecodec/conf"
	"github.com/copernet/wirecodec/errcode"
	"github.com/pkg/errors"
)

// BitcoinNet represents which bitcoin network a message belongs to.  The value
// is the magic number whose little-endian encoding starts every message.
type BitcoinNet uint32

const (
	// MainNet represents the main bitcoin network.
	MainNet BitcoinNet = 0xd9b4bef9

	// TestNet3 represents the test network (version 3).
	TestNet3 BitcoinNet = 0x0709110b

	// RegTestNet represents the regression test network.
	RegTestNet BitcoinNet = 0xdab5bffa
)

var bnStrings = map[BitcoinNet]string{
	MainNet:    "MainNet",
	TestNet3:   "TestNet3",
	RegTestNet: "RegTestNet",
}

// String returns the BitcoinNet in human-readable form.
func (n BitcoinNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown BitcoinNet (%d)", uint32(n))
}

// StartBytes returns the four bytes that open every message of the network.
func (n BitcoinNet) StartBytes() [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(n))
	return b
}

// IsValid reports whether n is one of the known networks.
func (n BitcoinNet) IsValid() bool {
	_, ok := bnStrings[n]
	return ok
}

// BitcoinNetFromStartBytes maps message start bytes back to their network.
func BitcoinNetFromStartBytes(b [4]byte) (BitcoinNet, error) {
	n := BitcoinNet(binary.LittleEndian.Uint32(b[:]))
	if !n.IsValid() {
		return 0, &MessageError{Code: errcode.ErrInvalidStartBytes, Start: b}
	}
	return n, nil
}

// ParseBitcoinNet maps a configured network name to its BitcoinNet.
func ParseBitcoinNet(name string) (BitcoinNet, error) {
	switch name {
	case conf.NetMain:
		return MainNet, nil
	case conf.NetTestNet3:
		return TestNet3, nil
	case conf.NetRegTest:
		return RegTestNet, nil
	}
	return 0, errors.Errorf("unknown network name %q", name)
}
