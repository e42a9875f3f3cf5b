package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/kassasync/internal/models"
)

func (c *Cli) runStock(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: kassasync stock <set|list>")
	}
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "set":
		return c.stockSet(ctx)
	case "list":
		return c.stockList(ctx)
	default:
		return fmt.Errorf("unknown stock command: %s", args[0])
	}
}

func (c *Cli) stockSet(ctx context.Context) error {
	productID, err := c.io.ReadInput("Product ID: ")
	if err != nil {
		return fmt.Errorf("failed to read product ID: %w", err)
	}
	// Остаток товара привязан к месту хранения: один товар может
	// лежать на складе и в зале одновременно.
	location, err := c.io.ReadInput("Location: ")
	if err != nil {
		return fmt.Errorf("failed to read location: %w", err)
	}
	qtyStr, err := c.io.ReadInput("Quantity: ")
	if err != nil {
		return fmt.Errorf("failed to read quantity: %w", err)
	}
	qty, err := strconv.ParseInt(qtyStr, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", qtyStr, err)
	}

	// Позиция с тем же товаром и местом переиспользуется, чтобы
	// правка остатка не плодила дубликаты.
	items, err := c.dataService.ListInventory(ctx)
	if err != nil {
		return fmt.Errorf("failed to list inventory: %w", err)
	}
	item := &models.InventoryItem{
		ProductID: productID,
		Location:  location,
		Quantity:  qty,
	}
	for _, existing := range items {
		if existing.ProductID == productID && existing.Location == location {
			item.ID = existing.ID
			break
		}
	}

	if err := c.dataService.AdjustInventory(ctx, item); err != nil {
		return fmt.Errorf("failed to adjust inventory: %w", err)
	}

	c.io.Printf("Inventory saved: %s (%s @ %s = %d)\n",
		item.ID, productID, location, qty)
	return nil
}

func (c *Cli) stockList(ctx context.Context) error {
	items, err := c.dataService.ListInventory(ctx)
	if err != nil {
		return fmt.Errorf("failed to list inventory: %w", err)
	}
	if len(items) == 0 {
		c.io.Println("No inventory records found.")
		return nil
	}

	c.io.Printf("Found %d inventory record(s):\n", len(items))
	for _, item := range items {
		c.io.Printf("  %s  product=%s location=%-10s quantity=%d\n",
			item.ID, item.ProductID, item.Location, item.Quantity)
	}
	return nil
}
