package script

import (
	sdk "github.com/izqui/govote/types"
)

// Handler performs the call described by one action. A non-nil error aborts
// the rest of the script.
type Handler func(ctx sdk.Context, action Action) sdk.Error

// Executor dispatches script actions to handlers registered per target
// address. It has no rollback of its own: callers run Execute against a
// cache context and only write through on success.
type Executor struct {
	handlers map[string]Handler
}

func NewExecutor() *Executor {
	return &Executor{
		handlers: make(map[string]Handler),
	}
}

// RegisterTarget binds a handler to a target address. Registering the same
// target twice replaces the previous handler.
func (e *Executor) RegisterTarget(target sdk.AccAddress, handler Handler) {
	e.handlers[string(target.Bytes())] = handler
}

// Execute runs every action strictly in order. The first failing action
// aborts all remaining ones; an unregistered target counts as a failure of
// that action.
func (e *Executor) Execute(ctx sdk.Context, s Script) sdk.Error {
	for i, action := range s {
		handler, ok := e.handlers[string(action.Target.Bytes())]
		if !ok {
			return ErrScriptExecutionFailed(DefaultCodespace,
				sdk.AppendMsgToErr("no handler for target", action.Target.String()))
		}
		if err := handler(ctx, action); err != nil {
			ctx.Logger().Error("script action failed", "index", i, "target", action.Target.String(), "err", err.Error())
			return ErrScriptExecutionFailed(DefaultCodespace, err.Error())
		}
	}
	return nil
}
