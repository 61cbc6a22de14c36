package console

import (
	"strings"

	"github.com/nikolayk812/bakery-pos/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

func (c *Console) banner() {
	c.println(strings.Repeat("=", 70))
	c.println("                     BAKERY MANAGEMENT SYSTEM")
	c.println(strings.Repeat("=", 70))
}

func (c *Console) renderProducts(products []domain.Product) {
	c.printf("%-5s %-15s %-10s %-8s %-10s %-10s %s\n", "S.No", "Product", "Cost", "Stock", "Min Stock", "Size", "Status")
	c.println(strings.Repeat("-", 70))
	for _, p := range products {
		status := "OK"
		if p.LowStock() {
			status = "LOW"
		}
		c.printf("%-5d %-15s %-10s %-8d %-10d %-10s %s\n", p.ID, p.Name, p.Cost.Amount, p.Stock, p.MinStock, p.Size, status)
	}
}

// renderShelf shows stock net of what the cart already holds.
func (c *Console) renderShelf(products []domain.Product, cart domain.Cart) {
	c.printf("\n%-5s %-15s %-10s %-10s %-8s\n", "S.No", "Product", "Size", "Cost", "Stock")
	c.println(strings.Repeat("-", 50))
	for _, p := range products {
		c.printf("%-5d %-15s %-10s %-10s %-8d\n", p.ID, p.Name, p.Size, p.Cost, p.Stock-cart.Reserved(p.ID))
	}
}

func (c *Console) renderLowStock(products []domain.Product) {
	c.println("\nLOW STOCK ALERT")
	c.println(strings.Repeat("-", 60))
	c.printf("%-15s %-10s %-8s %-10s\n", "Product", "Size", "Current", "Min Level")
	c.println(strings.Repeat("-", 60))
	for _, p := range products {
		c.printf("%-15s %-10s %-8d %-10d\n", p.Name, p.Size, p.Stock, p.MinStock)
	}
	c.println("\nURGENT: Restock these items immediately!")
}

func (c *Console) renderSales(entries []domain.AuditEntry) {
	c.printf("%-8s %-10s %-8s %-6s %-5s %s\n", "Receipt", "Type", "Product", "Qty", "ID", "Logged At")
	c.println(strings.Repeat("-", 70))
	for _, e := range entries {
		c.printf("%-8s %-10s %-8d %-6d %-5d %s\n",
			e.SaleID.String()[:8], e.ChangeType, e.ProductID, e.Quantity, e.ID, e.LoggedAt.Local().Format(timeLayout))
	}
}

func (c *Console) renderReceipt(r domain.Receipt) {
	c.println("\n" + strings.Repeat("=", 70))
	c.println("                           YOUR BILL")
	c.println(strings.Repeat("=", 70))
	c.printf("Receipt: %s\n", r.Number)
	c.printf("Customer: %s\n", r.Customer.Name)
	c.printf("Phone: %s\n", r.Customer.Phone)
	c.printf("Date: %s\n", r.IssuedAt.Format(timeLayout))
	c.println(strings.Repeat("-", 70))
	c.printf("%-25s %-5s %-12s %-12s\n", "Item", "Qty", "Price", "Total")
	c.println(strings.Repeat("-", 70))
	for _, line := range r.Lines {
		c.printf("%-25s %-5d %-12s %-12s\n", line.Name, line.Quantity, line.UnitPrice, line.Total())
	}
	c.println(strings.Repeat("-", 70))
	c.printf("%-31s %s\n", "TOTAL AMOUNT:", r.Total)
	c.println(strings.Repeat("=", 70))
	c.println("         Thank you for shopping with us!")
	c.println(strings.Repeat("=", 70))
}
