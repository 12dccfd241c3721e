package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes stamped on command failures so batch tooling can tell a bad
// message from a cancelled or genuinely failed intake run.
const (
	codeValidationFailed = "INTAKE_COMMAND_VALIDATION_FAILED"
	codeCanceled         = "INTAKE_COMMAND_CANCELED"
	codeTimeout          = "INTAKE_COMMAND_TIMEOUT"
	codeContextError     = "INTAKE_COMMAND_CONTEXT_ERROR"
	codeExecutionFailed  = "INTAKE_COMMAND_EXECUTION_FAILED"
)

// wrapValidationError tags message-validation failures. Already-categorised
// errors pass through so a handler chain never double-wraps.
func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "intake command rejected invalid message").
		WithTextCode(codeValidationFailed)
}

// wrapContextError distinguishes an operator abort from a deadline overrun;
// both land in the command category but carry their own text code.
func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "intake command canceled").
			WithTextCode(codeCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "intake command exceeded its deadline").
			WithTextCode(codeTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "intake command context error").
			WithTextCode(codeContextError)
	}
}

// wrapExecuteError tags failures raised by the wrapped command function.
func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "intake command execution failed").
		WithTextCode(codeExecutionFailed)
}
