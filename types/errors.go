package types

import (
	"fmt"

	"github.com/pkg/errors"
)

// CodespaceType reserves an error code range per module.
type CodespaceType uint16

// CodeType is a module-local error code.
type CodeType uint16

const (
	CodespaceRoot CodespaceType = 1

	// reserved root codes
	CodeOK             CodeType = 0
	CodeInternal       CodeType = 1
	CodeUnknownRequest CodeType = 2
	CodeUnauthorized   CodeType = 3
)

// Error is the interface surfaced by every failing operation. Implementations
// carry a codespace/code pair so callers can switch on the failure kind
// without string matching.
type Error interface {
	error

	Code() CodeType
	Codespace() CodespaceType

	// Result converts the error into a failed handler result.
	Result() Result
}

func NewError(codespace CodespaceType, code CodeType, format string, args ...interface{}) Error {
	return sdkError{
		codespace: codespace,
		code:      code,
		err:       errors.Errorf(format, args...),
	}
}

type sdkError struct {
	codespace CodespaceType
	code      CodeType
	err       error
}

func (e sdkError) Error() string {
	return fmt.Sprintf("[%d:%d] %s", e.codespace, e.code, e.err.Error())
}

func (e sdkError) Code() CodeType           { return e.code }
func (e sdkError) Codespace() CodespaceType { return e.codespace }

func (e sdkError) Result() Result {
	return Result{
		Code:      e.code,
		Codespace: e.codespace,
		Log:       e.err.Error(),
	}
}

// nolint - root codespace shorthands
func ErrInternal(msg string) Error {
	return NewError(CodespaceRoot, CodeInternal, msg)
}
func ErrUnknownRequest(msg string) Error {
	return NewError(CodespaceRoot, CodeUnknownRequest, msg)
}
func ErrUnauthorized(msg string) Error {
	return NewError(CodespaceRoot, CodeUnauthorized, msg)
}

// AppendMsgToErr returns "msg: errMsg" for query error logs.
func AppendMsgToErr(msg string, errMsg string) string {
	return fmt.Sprintf("%s: %s", msg, errMsg)
}
