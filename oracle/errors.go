package oracle

import (
	sdk "github.com/izqui/govote/types"
)

// Oracle errors reserve 101 ~ 199.
const (
	DefaultCodespace sdk.CodespaceType = 6

	CodeInvalidPower      sdk.CodeType = 101
	CodeInsufficientPower sdk.CodeType = 102
)

func ErrInvalidPower(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidPower, msg)
}

func ErrInsufficientPower(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInsufficientPower, msg)
}
