package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/michaeljohnaustria/my-garden/internal/auth"
	"github.com/michaeljohnaustria/my-garden/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		usage(out)
		return nil
	}
	switch args[0] {
	case "token":
		return runToken(args[1:], out)
	case "hash-password":
		return runHashPassword(args[1:], out)
	}
	return fmt.Errorf("unknown command: %s", args[0])
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "Usage: garden-admin <command> [flags]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintf(out, "  %-15s %s\n", "token", "Sign an API token with the configured secret")
	fmt.Fprintf(out, "  %-15s %s\n", "hash-password", "Print a bcrypt hash for AUTH_ADMIN_PASSWORD_HASH")
}

func runToken(args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(out)
	username := fs.String("user", cfg.Auth.AdminUsername, "Username claim")
	role := fs.String("role", cfg.Auth.AdminRole, "Role claim")
	expMins := fs.Int("exp", cfg.Auth.TokenTTLMinutes, "Token expiration in minutes (0: never)")
	outputJSON := fs.Bool("json", false, "Output as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *expMins < 0 {
		return errors.New("exp must not be negative")
	}

	tm, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTAlgorithm, time.Duration(*expMins)*time.Minute)
	if err != nil {
		return err
	}
	token, exp, err := tm.GenerateToken(*username, *role)
	if err != nil {
		return err
	}

	if *outputJSON {
		output := map[string]any{
			"token":      token,
			"token_type": "Bearer",
			"username":   *username,
			"role":       *role,
		}
		if exp != nil {
			output["expires_at"] = exp.UTC().Format(time.RFC3339)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	expires := "never"
	if exp != nil {
		expires = exp.UTC().Format(time.RFC3339)
	}
	fmt.Fprintf(out, "Username: %s\n", *username)
	fmt.Fprintf(out, "Role:     %s\n", *role)
	fmt.Fprintf(out, "Expires:  %s\n", expires)
	fmt.Fprintln(out)
	fmt.Fprintln(out, token)
	return nil
}

const defaultBcryptCost = 12

func runHashPassword(args []string, out io.Writer) error {
	// Hashing needs no secrets, so an incomplete environment falls back to the default cost.
	defaultCost := defaultBcryptCost
	if cfg, err := config.Load(); err == nil {
		defaultCost = cfg.Auth.BcryptCost
	}

	fs := flag.NewFlagSet("hash-password", flag.ContinueOnError)
	fs.SetOutput(out)
	cost := fs.Int("cost", defaultCost, "bcrypt cost (default AUTH_BCRYPT_COST)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: garden-admin hash-password [-cost N] <password>")
	}

	hash, err := auth.HashPassword(fs.Arg(0), *cost)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, hash)
	return nil
}
