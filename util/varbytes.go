package util

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

func ReadVarBytes(r io.Reader, maxAllowed uint64, fieldName string) ([]byte, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}

	if count > maxAllowed {
		str := fmt.Sprintf("%s is larger than the max allowed size count %d, max %d", fieldName, count, maxAllowed)
		return nil, errors.New(str)
	}
	err = checkRemaining(r, count, fieldName)
	if err != nil {
		return nil, err
	}
	b := make([]byte, count)
	_, err = io.ReadFull(r, b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func WriteVarBytes(w io.Writer, bytes []byte) error {
	slen := uint64(len(bytes))
	err := WriteVarInt(w, slen)
	if err != nil {
		return err
	}
	_, err = w.Write(bytes)
	return err
}

// lener is implemented by readers that know how many bytes are left, such as
// *bytes.Reader and *bytes.Buffer.
type lener interface {
	Len() int
}

// checkRemaining rejects a declared length that the reader can not satisfy, so
// no buffer is allocated for bytes that never arrive.
func checkRemaining(r io.Reader, count uint64, fieldName string) error {
	lr, ok := r.(lener)
	if !ok || count <= uint64(lr.Len()) {
		return nil
	}
	str := fmt.Sprintf("%s declares %d bytes but only %d remain", fieldName, count, lr.Len())
	return errors.New(str)
}
