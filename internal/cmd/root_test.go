package cmd

import (
	"testing"
)

// TestRootCommand tests the root command configuration
func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "kampeer" {
		t.Errorf("root Use = %q, want %q", rootCmd.Use, "kampeer")
	}

	if rootCmd.Short == "" {
		t.Error("root Short description is empty")
	}

	if !rootCmd.SilenceUsage {
		t.Error("root command should silence usage on errors")
	}

	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("persistent flag 'verbose' not found on root command")
	}
}

// TestCommandRegistration verifies every command group is wired into the root
func TestCommandRegistration(t *testing.T) {
	want := []string{"auth", "spots", "bookings", "ratings", "owner", "profile", "config", "version"}

	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered on root", name)
		}
	}
}

func subcommandNames(t *testing.T, parent string) map[string]bool {
	t.Helper()

	for _, c := range rootCmd.Commands() {
		if c.Name() != parent {
			continue
		}
		names := map[string]bool{}
		for _, sub := range c.Commands() {
			names[sub.Name()] = true
		}
		return names
	}

	t.Fatalf("command %q not registered on root", parent)
	return nil
}

// TestAuthSubcommands tests the auth command group
func TestAuthSubcommands(t *testing.T) {
	names := subcommandNames(t, "auth")

	for _, name := range []string{"login", "register", "logout", "status", "callback", "google", "forgot-password", "reset-password", "change-password"} {
		if !names[name] {
			t.Errorf("auth subcommand %q not registered", name)
		}
	}
}

// TestSpotsSubcommands tests the spots command group
func TestSpotsSubcommands(t *testing.T) {
	names := subcommandNames(t, "spots")

	for _, name := range []string{"list", "show", "browse", "create", "update", "delete"} {
		if !names[name] {
			t.Errorf("spots subcommand %q not registered", name)
		}
	}
}

// TestBookingsSubcommands tests the bookings command group
func TestBookingsSubcommands(t *testing.T) {
	names := subcommandNames(t, "bookings")

	for _, name := range []string{"list", "show", "create", "cancel"} {
		if !names[name] {
			t.Errorf("bookings subcommand %q not registered", name)
		}
	}
}

// TestRatingsSubcommands tests the ratings command group
func TestRatingsSubcommands(t *testing.T) {
	names := subcommandNames(t, "ratings")

	for _, name := range []string{"list", "rate", "delete", "mine"} {
		if !names[name] {
			t.Errorf("ratings subcommand %q not registered", name)
		}
	}
}

// TestOwnerSubcommands tests the owner command group
func TestOwnerSubcommands(t *testing.T) {
	names := subcommandNames(t, "owner")

	for _, name := range []string{"dashboard", "spots"} {
		if !names[name] {
			t.Errorf("owner subcommand %q not registered", name)
		}
	}
}

// TestLoginFlags tests that auth login has its credential flags
func TestLoginFlags(t *testing.T) {
	for _, name := range []string{"email", "password"} {
		if authLoginCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not found on auth login", name)
		}
	}
}

// TestRegisterFlags tests that auth register has its account flags
func TestRegisterFlags(t *testing.T) {
	for _, name := range []string{"name", "email", "password", "role"} {
		if authRegisterCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not found on auth register", name)
		}
	}
}

// TestCallbackFlags tests the external-identity callback flags
func TestCallbackFlags(t *testing.T) {
	for _, name := range []string{"token", "user-json"} {
		if authCallbackCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not found on auth callback", name)
		}
	}
}

// TestSpotsCreateFlags tests the listing flags shared by create and update
func TestSpotsCreateFlags(t *testing.T) {
	for _, name := range []string{"title", "description", "location", "price", "lat", "lon", "image"} {
		if spotsCreateCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not found on spots create", name)
		}
		if spotsUpdateCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not found on spots update", name)
		}
	}
}

// TestBookingsCreateFlags tests the date-range flags
func TestBookingsCreateFlags(t *testing.T) {
	for _, name := range []string{"from", "to"} {
		if bookingsCreateCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not found on bookings create", name)
		}
	}
}

// TestRatingsRateFlags tests the review flags
func TestRatingsRateFlags(t *testing.T) {
	for _, name := range []string{"stars", "comment"} {
		if ratingsRateCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not found on ratings rate", name)
		}
	}
}

// TestConfirmationFlags tests that destructive commands can skip the prompt
func TestConfirmationFlags(t *testing.T) {
	if spotsDeleteCmd.Flags().Lookup("yes") == nil {
		t.Error("flag 'yes' not found on spots delete")
	}
	if bookingsCancelCmd.Flags().Lookup("yes") == nil {
		t.Error("flag 'yes' not found on bookings cancel")
	}
}
