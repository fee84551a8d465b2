package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// Credentials is what the login prompt collects.
type Credentials struct {
	Username string
	Password string
}

// SignupDetails is what the signup prompt collects.
type SignupDetails struct {
	Username string
	Email    string
	Password string
}

// PromptForLogin asks for username and password interactively. Values
// already supplied by flags are kept and not asked again.
func PromptForLogin(prefill Credentials) (Credentials, error) {
	creds := prefill

	var fields []huh.Field
	if creds.Username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Value(&creds.Username).
			Validate(nonEmpty("username")))
	}
	if creds.Password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&creds.Password).
			Validate(nonEmpty("password")))
	}

	if len(fields) == 0 {
		return creds, nil
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return Credentials{}, fmt.Errorf("prompt failed: %w", err)
	}
	return creds, nil
}

// PromptForSignup asks for the details needed to register an account.
func PromptForSignup(prefill SignupDetails) (SignupDetails, error) {
	details := prefill

	var fields []huh.Field
	if details.Username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Value(&details.Username).
			Validate(nonEmpty("username")))
	}
	if details.Email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Value(&details.Email).
			Validate(nonEmpty("email")))
	}
	if details.Password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&details.Password).
			Validate(nonEmpty("password")))
	}

	if len(fields) == 0 {
		return details, nil
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return SignupDetails{}, fmt.Errorf("prompt failed: %w", err)
	}
	return details, nil
}

// PromptForConfirmation displays a yes/no confirmation prompt
func PromptForConfirmation(message string, defaultValue bool) (bool, error) {
	confirmed := defaultValue

	confirm := huh.NewConfirm().
		Title(message).
		Value(&confirmed)

	form := huh.NewForm(huh.NewGroup(confirm))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return confirmed, nil
}

func nonEmpty(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
