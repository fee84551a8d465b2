package exitcode

import (
	"fmt"
	"testing"

	"github.com/eventcal-io/eventcal/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, Success},
		{"transport", errors.NewTransportError(fmt.Errorf("refused")), NetworkError},
		{"not logged in", errors.NewNotLoggedInError(), AuthError},
		{"login rejected", errors.NewLoginFailedError(errors.NewValidationError("Incorrect username or password")), AuthError},
		{"backend rejection", errors.NewValidationError("email already registered"), GeneralError},
		{"wrapped transport", fmt.Errorf("login: %w", errors.NewTransportError(fmt.Errorf("refused"))), NetworkError},
		{"plain error", fmt.Errorf("boom"), GeneralError},
		{"decode error", errors.NewDecodeError(500), GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.want {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
