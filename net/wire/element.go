package wire

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/copernet/wirecodec/errcode"
	"github.com/copernet/wirecodec/util"
)

// uint32Time is a timestamp carried on the wire as seconds in a uint32.
type uint32Time time.Time

// int64Time is a timestamp carried on the wire as seconds in an int64.
type int64Time time.Time

// readElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func readElement(r io.Reader, element interface{}) error {
	switch e := element.(type) {
	case *int32:
		rv, err := util.BinarySerializer.Uint32(r, binary.LittleEndian)
		if err != nil {
			return err
		}
		*e = int32(rv)
		return nil

	case *uint32:
		rv, err := util.BinarySerializer.Uint32(r, binary.LittleEndian)
		if err != nil {
			return err
		}
		*e = rv
		return nil

	case *int64:
		rv, err := util.BinarySerializer.Uint64(r, binary.LittleEndian)
		if err != nil {
			return err
		}
		*e = int64(rv)
		return nil

	case *uint64:
		rv, err := util.BinarySerializer.Uint64(r, binary.LittleEndian)
		if err != nil {
			return err
		}
		*e = rv
		return nil

	case *bool:
		rv, err := util.BinarySerializer.Uint8(r)
		if err != nil {
			return err
		}
		*e = rv != 0x00
		return nil

	case *uint32Time:
		rv, err := util.BinarySerializer.Uint32(r, binary.LittleEndian)
		if err != nil {
			return err
		}
		*e = uint32Time(time.Unix(int64(rv), 0))
		return nil

	case *int64Time:
		rv, err := util.BinarySerializer.Uint64(r, binary.LittleEndian)
		if err != nil {
			return err
		}
		*e = int64Time(time.Unix(int64(rv), 0))
		return nil

	case *[16]byte:
		_, err := io.ReadFull(r, e[:])
		return err

	case *util.Hash:
		_, err := io.ReadFull(r, e[:])
		return err

	case *ServiceFlag:
		rv, err := util.BinarySerializer.Uint64(r, binary.LittleEndian)
		if err != nil {
			return err
		}
		*e = ServiceFlag(rv)
		return nil

	case *errcode.RejectCode:
		rv, err := util.BinarySerializer.Uint8(r)
		if err != nil {
			return err
		}
		*e = errcode.RejectCode(rv)
		return nil
	}

	return binary.Read(r, binary.LittleEndian, element)
}

// readElements reads multiple items from r.  It is equivalent to multiple
// calls to readElement.
func readElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := readElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// writeElement writes the little endian representation of element to w.
func writeElement(w io.Writer, element interface{}) error {
	switch e := element.(type) {
	case int32:
		return util.BinarySerializer.PutUint32(w, binary.LittleEndian, uint32(e))

	case uint32:
		return util.BinarySerializer.PutUint32(w, binary.LittleEndian, e)

	case int64:
		return util.BinarySerializer.PutUint64(w, binary.LittleEndian, uint64(e))

	case uint64:
		return util.BinarySerializer.PutUint64(w, binary.LittleEndian, e)

	case bool:
		if e {
			return util.BinarySerializer.PutUint8(w, 0x01)
		}
		return util.BinarySerializer.PutUint8(w, 0x00)

	case uint32Time:
		return util.BinarySerializer.PutUint32(w, binary.LittleEndian, uint32(time.Time(e).Unix()))

	case int64Time:
		return util.BinarySerializer.PutUint64(w, binary.LittleEndian, uint64(time.Time(e).Unix()))

	case [16]byte:
		_, err := w.Write(e[:])
		return err

	case *util.Hash:
		_, err := w.Write(e[:])
		return err

	case ServiceFlag:
		return util.BinarySerializer.PutUint64(w, binary.LittleEndian, uint64(e))

	case errcode.RejectCode:
		return util.BinarySerializer.PutUint8(w, uint8(e))
	}

	return binary.Write(w, binary.LittleEndian, element)
}

// writeElements writes multiple items to w.  It is equivalent to multiple
// calls to writeElement.
func writeElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := writeElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}
