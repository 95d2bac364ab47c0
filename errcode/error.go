package errcode

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	MessageErrorBase = (iota + 1) * 1000
	RejectErrorBase
)

type ProjectError struct {
	Module string
	Code   int
	Desc   string
}

func (e ProjectError) Error() string {
	return fmt.Sprintf("module: %s, global errcode: %v,  desc: %s", e.Module, e.Code, e.Desc)
}

// ErrorCode returns the global code of the error.
func (e ProjectError) ErrorCode() int {
	return e.Code
}

// codedError is satisfied by every error type that carries a global code.
type codedError interface {
	error
	ErrorCode() int
}

func getCodeAndName(errCode fmt.Stringer) (int, string) {
	code := 0
	name := ""

	switch t := errCode.(type) {
	case MessageErr:
		code = int(t)
		name = "message"
	case RejectCode:
		code = RejectErrorBase + int(t)
		name = "reject"
	default:
	}

	return code, name
}

// IsErrorCode reports whether err, or any error it wraps, carries errCode.
func IsErrorCode(err error, errCode fmt.Stringer) bool {
	var e codedError
	if !errors.As(err, &e) {
		return false
	}
	icode, _ := getCodeAndName(errCode)
	return icode != 0 && icode == e.ErrorCode()
}

func New(errCode fmt.Stringer) error {
	code, name := getCodeAndName(errCode)

	return ProjectError{
		Module: name,
		Code:   code,
		Desc:   errCode.String(),
	}
}

// HasRejectCode returns the reject code carried by err, if any.
func HasRejectCode(err error) (RejectCode, bool) {
	var e codedError
	if !errors.As(err, &e) {
		return 0, false
	}
	code := e.ErrorCode() - RejectErrorBase
	if code < 0 || code > 0xff {
		return 0, false
	}
	if _, ok := rejectCodeStrings[RejectCode(code)]; !ok {
		return 0, false
	}
	return RejectCode(code), true
}
