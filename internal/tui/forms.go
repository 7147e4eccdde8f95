package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/maartenv/kampeer/internal/api"
)

// LoginForm prompts for the credentials that were not supplied as flags.
// Already-filled values are kept and their fields skipped.
func LoginForm(email, password *string) error {
	var fields []huh.Field

	if *email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Validate(validateEmail).
			Value(email))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(required("password")).
			Value(password))
	}
	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// RegisterForm prompts for the registration fields that were not supplied as
// flags, including an account-type selection.
func RegisterForm(name, email, password *string, role *api.Role) error {
	var fields []huh.Field

	if *name == "" {
		fields = append(fields, huh.NewInput().
			Title("Name").
			Validate(required("name")).
			Value(name))
	}
	if *email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Validate(validateEmail).
			Value(email))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(required("password")).
			Value(password))
	}
	if *role == "" {
		fields = append(fields, huh.NewSelect[api.Role]().
			Title("Account type").
			Options(
				huh.NewOption("Camper (book and rate spots)", api.RoleUser),
				huh.NewOption("Owner (manage listings)", api.RoleOwner),
			).
			Value(role))
	}
	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// BookingForm prompts for the date range of a new booking.
func BookingForm(dateFrom, dateTo *string) error {
	var fields []huh.Field

	if *dateFrom == "" {
		fields = append(fields, huh.NewInput().
			Title("Check-in (YYYY-MM-DD)").
			Placeholder("2026-07-01").
			Validate(required("check-in date")).
			Value(dateFrom))
	}
	if *dateTo == "" {
		fields = append(fields, huh.NewInput().
			Title("Check-out (YYYY-MM-DD)").
			Placeholder("2026-07-05").
			Validate(required("check-out date")).
			Value(dateTo))
	}
	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// RatingForm prompts for a star rating and an optional comment.
func RatingForm(stars *int, comment *string) error {
	var fields []huh.Field

	if *stars == 0 {
		fields = append(fields, huh.NewSelect[int]().
			Title("Rating").
			Options(
				huh.NewOption("★★★★★", 5),
				huh.NewOption("★★★★", 4),
				huh.NewOption("★★★", 3),
				huh.NewOption("★★", 2),
				huh.NewOption("★", 1),
			).
			Value(stars))
	}
	if *comment == "" {
		fields = append(fields, huh.NewText().
			Title("Comment (optional)").
			Value(comment))
	}
	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// Confirm displays a yes/no confirmation prompt
func Confirm(message string, defaultValue bool) (bool, error) {
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

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateEmail(s string) error {
	if !strings.Contains(s, "@") {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}
