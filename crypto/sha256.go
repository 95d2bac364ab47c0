package crypto

import (
	"github.com/btcsuite/fastsha256"
	"github.com/copernet/wirecodec/util"
)

func Sha256Bytes(b []byte) []byte {
	hash := fastsha256.Sum256(b)
	return hash[:]
}

func DoubleSha256Bytes(b []byte) []byte {
	first := fastsha256.Sum256(b)
	second := fastsha256.Sum256(first[:])
	return second[:]
}

func DoubleSha256Hash(b []byte) util.Hash {
	first := fastsha256.Sum256(b)
	return util.Hash(fastsha256.Sum256(first[:]))
}
