package script

import (
	sdk "github.com/izqui/govote/types"
)

// Script errors reserve 101 ~ 199.
const (
	DefaultCodespace sdk.CodespaceType = 5

	CodeMalformedScript       sdk.CodeType = 101
	CodeScriptExecutionFailed sdk.CodeType = 102
)

func ErrMalformedScript(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeMalformedScript, msg)
}

func ErrScriptExecutionFailed(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeScriptExecutionFailed, msg)
}

// IsMalformedScript reports whether err is a script decoding failure.
func IsMalformedScript(err sdk.Error) bool {
	return err != nil && err.Codespace() == DefaultCodespace && err.Code() == CodeMalformedScript
}

// IsScriptExecutionFailed reports whether err is an action runtime failure.
func IsScriptExecutionFailed(err sdk.Error) bool {
	return err != nil && err.Codespace() == DefaultCodespace && err.Code() == CodeScriptExecutionFailed
}
