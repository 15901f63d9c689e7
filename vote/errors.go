package vote

import (
	"fmt"

	sdk "github.com/izqui/govote/types"
)

// Vote errors reserve 101 ~ 199.
const (
	DefaultCodespace sdk.CodespaceType = 7

	CodeUnknownVote      sdk.CodeType = 101
	CodeVoteClosed       sdk.CodeType = 102
	CodeAlreadyExecuted  sdk.CodeType = 103
	CodeCannotExecute    sdk.CodeType = 104
	CodeNoVotingPower    sdk.CodeType = 105
	CodeInvalidState     sdk.CodeType = 106
	CodeInvalidProcedure sdk.CodeType = 107
)

func ErrUnknownVote(codespace sdk.CodespaceType, voteID int64) sdk.Error {
	return sdk.NewError(codespace, CodeUnknownVote, fmt.Sprintf("unknown vote %d", voteID))
}

func ErrVoteClosed(codespace sdk.CodespaceType, voteID int64) sdk.Error {
	return sdk.NewError(codespace, CodeVoteClosed, fmt.Sprintf("vote %d is not open", voteID))
}

func ErrAlreadyExecuted(codespace sdk.CodespaceType, voteID int64) sdk.Error {
	return sdk.NewError(codespace, CodeAlreadyExecuted, fmt.Sprintf("vote %d already executed", voteID))
}

func ErrCannotExecute(codespace sdk.CodespaceType, voteID int64) sdk.Error {
	return sdk.NewError(codespace, CodeCannotExecute, fmt.Sprintf("vote %d cannot be executed yet", voteID))
}

func ErrNoVotingPower(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeNoVotingPower, msg)
}

func ErrInvalidState(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidState, msg)
}

func ErrInvalidProcedure(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidProcedure, msg)
}
