package wire

import (
	"encoding/binary"
)

// messageHeader defines the header structure for all bitcoin protocol messages.
type messageHeader struct {
	start    [4]byte     // 4 bytes
	command  CommandName // 12 bytes
	length   uint32      // 4 bytes
	checksum [4]byte     // 4 bytes
}

// parseMessageHeader reads the header fields out of b, which must hold at
// least MessageHeaderSize bytes.
func parseMessageHeader(b []byte) messageHeader {
	var hdr messageHeader
	copy(hdr.start[:], b[0:4])
	copy(hdr.command[:], b[4:16])
	hdr.length = binary.LittleEndian.Uint32(b[16:20])
	copy(hdr.checksum[:], b[20:24])
	return hdr
}

func (hdr *messageHeader) bytes() []byte {
	buf := make([]byte, MessageHeaderSize)
	copy(buf[0:4], hdr.start[:])
	copy(buf[4:16], hdr.command[:])
	binary.LittleEndian.PutUint32(buf[16:20], hdr.length)
	copy(buf[20:24], hdr.checksum[:])
	return buf
}
