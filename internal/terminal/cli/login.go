package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRegister(ctx context.Context) error {
	login, err := c.io.ReadInput("Login: ")
	if err != nil {
		return fmt.Errorf("failed to read login: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	result, err := c.authService.Register(ctx, login, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	c.io.Println("Registration successful!")
	c.io.Printf("Operator ID: %s\n", result.OperatorID)
	c.io.Println("You can now log in with 'kassasync login'.")
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	login, err := c.io.ReadInput("Login: ")
	if err != nil {
		return fmt.Errorf("failed to read login: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	result, err := c.authService.Login(ctx, login, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Printf("Logged in as %s\n", result.Login)
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	c.io.Println("Logged out. Local data is kept on the terminal.")
	return nil
}
