package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "user error", err: UserError("bad role"), want: ExitUserError},
		{name: "system error", err: SystemError("gh failed"), want: ExitSystemError},
		{name: "conflict", err: ConflictError("duplicate member"), want: ExitConflict},
		{name: "untyped error", err: errors.New("whatever"), want: ExitUserError},
		{name: "wrapped exit error", err: fmt.Errorf("context: %w", SystemError("io")), want: ExitSystemError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := SystemErrorWithCause("wrapper", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
	if err.Error() != "wrapper" {
		t.Errorf("Error() = %q, want wrapper message", err.Error())
	}
}
