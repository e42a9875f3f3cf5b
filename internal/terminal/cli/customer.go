package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/kassasync/internal/models"
)

func (c *Cli) runCustomer(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: kassasync customer <add|list>")
	}
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "add":
		return c.customerAdd(ctx)
	case "list":
		return c.customerList(ctx)
	default:
		return fmt.Errorf("unknown customer command: %s", args[0])
	}
}

func (c *Cli) customerAdd(ctx context.Context) error {
	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	phone, err := c.io.ReadInput("Phone (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read phone: %w", err)
	}
	email, err := c.io.ReadInput("Email (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	customer := &models.Customer{
		Name:  name,
		Phone: phone,
		Email: email,
	}
	if err := c.dataService.SaveCustomer(ctx, customer); err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}

	c.io.Printf("Customer saved: %s\n", customer.ID)
	return nil
}

func (c *Cli) customerList(ctx context.Context) error {
	customers, err := c.dataService.ListCustomers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}
	if len(customers) == 0 {
		c.io.Println("No customers found.")
		return nil
	}

	c.io.Printf("Found %d customer(s):\n", len(customers))
	for _, cust := range customers {
		contact := cust.Phone
		if contact == "" {
			contact = cust.Email
		}
		c.io.Printf("  %s  %-25s %s\n", cust.ID, cust.Name, contact)
	}
	return nil
}
