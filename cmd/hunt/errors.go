// Package main provides the entry point for the hunt CLI.
package main

import (
	"errors"

	"github.com/specfirst/hunt/internal/config"
	"github.com/specfirst/hunt/internal/hunt"
	"github.com/specfirst/hunt/internal/output"
	"github.com/specfirst/hunt/internal/role"
	"github.com/specfirst/hunt/internal/workflow"
)

// userSentinels are the domain errors caused by caller input (exit code 1).
var userSentinels = []error{
	role.ErrInvalidRole,
	workflow.ErrInvalidTeamSize,
	workflow.ErrTeamSizeMismatch,
	workflow.ErrUnknownColumn,
	hunt.ErrInvalidHandoff,
	hunt.ErrUnknownMember,
	config.ErrNotFound,
	config.ErrNoConfiguration,
}

// wrapError maps a domain error onto an *output.ExitError so the process
// exit code reflects the failure class. ExitErrors pass through untouched;
// unrecognized errors are treated as system failures.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	if errors.Is(err, config.ErrConflict) {
		return output.ConflictErrorWithCause(err.Error(), err)
	}
	for _, sentinel := range userSentinels {
		if errors.Is(err, sentinel) {
			return output.UserErrorWithCause(err.Error(), err)
		}
	}
	return output.SystemErrorWithCause(err.Error(), err)
}
