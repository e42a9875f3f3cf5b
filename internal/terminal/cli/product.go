package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/kassasync/internal/models"
)

func (c *Cli) runProduct(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: kassasync product <add|list|delete>")
	}
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "add":
		return c.productAdd(ctx)
	case "list":
		return c.productList(ctx)
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: kassasync product delete <id>")
		}
		return c.productDelete(ctx, args[1])
	default:
		return fmt.Errorf("unknown product command: %s", args[0])
	}
}

func (c *Cli) productAdd(ctx context.Context) error {
	sku, err := c.io.ReadInput("SKU: ")
	if err != nil {
		return fmt.Errorf("failed to read SKU: %w", err)
	}
	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	priceStr, err := c.io.ReadInput("Price (minor units): ")
	if err != nil {
		return fmt.Errorf("failed to read price: %w", err)
	}
	price, err := strconv.ParseInt(priceStr, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", priceStr, err)
	}

	product := &models.Product{
		SKU:    sku,
		Name:   name,
		Price:  price,
		Active: true,
	}
	if err := c.dataService.SaveProduct(ctx, product); err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}

	c.io.Printf("Product saved: %s\n", product.ID)
	c.io.Println("The change is queued and will be pushed on the next sync.")
	return nil
}

func (c *Cli) productList(ctx context.Context) error {
	products, err := c.dataService.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}
	if len(products) == 0 {
		c.io.Println("No products found.")
		return nil
	}

	c.io.Printf("Found %d product(s):\n", len(products))
	for _, p := range products {
		status := "active"
		if !p.Active {
			status = "inactive"
		}
		c.io.Printf("  %s  %-12s %-30s %10.2f  %s\n",
			p.ID, p.SKU, p.Name, float64(p.Price)/100, status)
	}
	return nil
}

func (c *Cli) productDelete(ctx context.Context, id string) error {
	if err := c.dataService.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	c.io.Printf("Product deleted: %s\n", id)
	return nil
}
