package util

import (
	"encoding/hex"
	"fmt"
)

const (
	Hash256Size       = 32
	MaxHashStringSize = Hash256Size * 2
)

// Hash is a double sha256 digest stored in internal (little-endian) byte order.
type Hash [Hash256Size]byte

var HashZero = Hash{}

// String returns the hash as the byte-reversed hex string used by block explorers.
func (hash Hash) String() string {
	for i := 0; i < Hash256Size/2; i++ {
		hash[i], hash[Hash256Size-1-i] = hash[Hash256Size-1-i], hash[i]
	}
	return hex.EncodeToString(hash[:])
}

func (hash *Hash) SetBytes(bytes []byte) error {
	length := len(bytes)
	if length != Hash256Size {
		return fmt.Errorf("invalid hash length of %v, want %v", length, Hash256Size)
	}
	copy(hash[:], bytes)
	return nil
}

func (hash *Hash) IsEqual(target *Hash) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

// HashFromString decodes a byte-reversed hex string into a Hash.
func HashFromString(str string) (Hash, error) {
	var hash Hash
	if len(str) > MaxHashStringSize {
		return hash, fmt.Errorf("max hash string length is %v bytes", MaxHashStringSize)
	}
	if len(str)%2 != 0 {
		str = "0" + str
	}
	buf, err := hex.DecodeString(str)
	if err != nil {
		return hash, err
	}
	for i, b := range buf {
		hash[len(buf)-1-i] = b
	}
	return hash, nil
}
