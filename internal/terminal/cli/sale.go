package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/kassasync/internal/models"
)

func (c *Cli) runSale(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: kassasync sale <add|list>")
	}
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "add":
		return c.saleAdd(ctx)
	case "list":
		return c.saleList(ctx)
	default:
		return fmt.Errorf("unknown sale command: %s", args[0])
	}
}

func (c *Cli) saleAdd(ctx context.Context) error {
	session, err := c.authService.Session(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	kindStr, err := c.io.ReadInput("Kind (sale/trade_in) [sale]: ")
	if err != nil {
		return fmt.Errorf("failed to read kind: %w", err)
	}
	kind := models.TransactionSale
	if strings.TrimSpace(kindStr) == string(models.TransactionTradeIn) {
		kind = models.TransactionTradeIn
	}

	customerID, err := c.io.ReadInput("Customer ID (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read customer ID: %w", err)
	}

	var lines []models.TransactionLine
	var total int64
	for {
		productID, err := c.io.ReadInput("Product ID (empty to finish): ")
		if err != nil {
			return fmt.Errorf("failed to read product ID: %w", err)
		}
		if strings.TrimSpace(productID) == "" {
			break
		}

		product, err := c.dataService.GetProduct(ctx, productID)
		if err != nil {
			return fmt.Errorf("failed to load product %s: %w", productID, err)
		}

		qtyStr, err := c.io.ReadInput("Quantity: ")
		if err != nil {
			return fmt.Errorf("failed to read quantity: %w", err)
		}
		qty, err := strconv.ParseInt(qtyStr, 10, 64)
		if err != nil || qty <= 0 {
			return fmt.Errorf("invalid quantity %q", qtyStr)
		}

		lines = append(lines, models.TransactionLine{
			ProductID: productID,
			Quantity:  qty,
			UnitPrice: product.Price,
		})
		total += qty * product.Price
		c.io.Printf("  %s x%d = %.2f\n", product.Name, qty, float64(qty*product.Price)/100)
	}
	if len(lines) == 0 {
		return fmt.Errorf("transaction must have at least one line")
	}

	tx := &models.Transaction{
		Kind:       kind,
		OperatorID: session.OperatorID,
		CustomerID: strings.TrimSpace(customerID),
		Lines:      lines,
		Total:      total,
	}
	if err := c.dataService.RecordTransaction(ctx, tx); err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	c.io.Printf("Transaction recorded: %s (total %.2f)\n", tx.ID, float64(total)/100)
	return nil
}

func (c *Cli) saleList(ctx context.Context) error {
	txs, err := c.dataService.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}
	if len(txs) == 0 {
		c.io.Println("No transactions found.")
		return nil
	}

	c.io.Printf("Found %d transaction(s):\n", len(txs))
	for _, tx := range txs {
		c.io.Printf("  %s  %-8s %s  lines=%d total=%.2f\n",
			tx.ID, tx.Kind, tx.CreatedAt.Format("2006-01-02 15:04"),
			len(tx.Lines), float64(tx.Total)/100)
	}
	return nil
}
