package console

import (
	"context"

	"github.com/nikolayk812/bakery-pos/internal/domain"
	"github.com/nikolayk812/bakery-pos/internal/service"
	"go.uber.org/zap"
)

func (c *Console) adminLogin(ctx context.Context) error {
	username, err := c.readLine("USERNAME: ")
	if err != nil {
		return err
	}
	password, err := c.readLine("ENTER PASSWORD: ")
	if err != nil {
		return err
	}

	if err := c.services.Auth.Verify(password); err != nil {
		c.logger.Warn("admin login rejected", zap.String("username", username), zap.Error(err))
		return err
	}

	c.logger.Info("admin login", zap.String("username", username))
	c.println("Admin login successful!")

	return c.loop(ctx, "ADMIN PANEL", c.adminCommands())
}

func (c *Console) adminCommands() map[int]command {
	return map[int]command{
		1: {title: "Add Item", run: c.addItem},
		2: {title: "View Items", run: c.viewItems},
		3: {title: "Update Cost", run: c.updateCost},
		4: {title: "Add Variety", run: c.addVariety},
		5: {title: "View Price Graph", run: c.priceGraph},
		6: {title: "Check Low Stock", run: c.lowStock},
		7: {title: "View Sales Log", run: c.salesLog},
		8: {title: "Exit Admin", run: func(context.Context) error { return errLeave }},
	}
}

func (c *Console) addItem(ctx context.Context) error {
	var (
		in  service.ProductInput
		err error
	)

	if in.ID, err = c.readInt32("Enter S.No: "); err != nil {
		return err
	}
	if in.Name, err = c.readLine("Enter product name: "); err != nil {
		return err
	}
	if in.Cost, err = c.readInt("Enter the cost: "); err != nil {
		return err
	}
	if in.Stock, err = c.readInt32("Enter initial stock quantity: "); err != nil {
		return err
	}
	if in.MinStock, err = c.readInt32("Enter minimum stock level: "); err != nil {
		return err
	}
	if in.Size, err = c.readLine("Enter product size: "); err != nil {
		return err
	}

	if err := c.services.Admin.AddProduct(ctx, in); err != nil {
		return err
	}

	c.printf("Item '%s' added successfully!\n", in.Name)
	return nil
}

func (c *Console) viewItems(ctx context.Context) error {
	products, err := c.services.Admin.ListProducts(ctx)
	if err != nil {
		return err
	}

	c.renderProducts(products)
	return nil
}

func (c *Console) updateCost(ctx context.Context) error {
	if err := c.viewItems(ctx); err != nil {
		return err
	}

	id, err := c.readInt32("Enter S.No of product to update: ")
	if err != nil {
		return err
	}
	cost, err := c.readInt("Enter new cost: ")
	if err != nil {
		return err
	}

	if err := c.services.Admin.UpdateCost(ctx, id, cost); err != nil {
		return err
	}

	c.println("Cost updated successfully!")
	return c.viewItems(ctx)
}

func (c *Console) addVariety(ctx context.Context) error {
	var (
		v   domain.Variety
		err error
	)

	if v.ProductID, err = c.readInt32("Enter product S.No: "); err != nil {
		return err
	}
	if v.ID, err = c.readInt32("Enter variety S.No: "); err != nil {
		return err
	}
	if v.Name, err = c.readLine("Enter variety name: "); err != nil {
		return err
	}

	if err := c.services.Admin.AddVariety(ctx, v); err != nil {
		return err
	}

	c.printf("Variety '%s' added successfully!\n", v.Name)
	return nil
}

func (c *Console) priceGraph(ctx context.Context) error {
	if err := c.services.Admin.PriceChart(ctx, c.chartPath); err != nil {
		return err
	}

	c.printf("Price chart saved to %s\n", c.chartPath)
	return nil
}

func (c *Console) lowStock(ctx context.Context) error {
	products, err := c.services.Admin.ListLowStock(ctx)
	if err != nil {
		return err
	}

	if len(products) == 0 {
		c.println("All products have sufficient stock!")
		return nil
	}

	c.renderLowStock(products)
	return nil
}

func (c *Console) salesLog(ctx context.Context) error {
	entries, err := c.services.Admin.ListSales(ctx, salesLogLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		c.println("No sales recorded yet.")
		return nil
	}

	c.renderSales(entries)
	return nil
}
