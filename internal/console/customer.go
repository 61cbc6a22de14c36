package console

import (
	"context"
	"strings"

	"github.com/nikolayk812/bakery-pos/internal/domain"
	"github.com/nikolayk812/bakery-pos/internal/service"
)

func (c *Console) customer(ctx context.Context) error {
	name, err := c.readLine("Enter your name: ")
	if err != nil {
		return err
	}
	phone, err := c.readLine("Enter your phone number: ")
	if err != nil {
		return err
	}

	var cart domain.Cart

	c.println("\nWelcome to our Bakery! Here's what we have:")
	for {
		products, err := c.services.Shop.Browse(ctx)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			c.println("Sorry! No items are currently in stock.")
			break
		}
		c.renderShelf(products, cart)

		if err := c.pickItem(ctx, &cart, products); err != nil {
			if !service.IsRejection(err) {
				return err
			}
			c.report(err)
			continue
		}

		more, err := c.readLine("\nAdd another item? (Y/N): ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(more, "Y") {
			break
		}
	}

	receipt, err := c.services.Till.Checkout(ctx, domain.Customer{Name: name, Phone: phone}, cart)
	if err != nil {
		return err
	}
	if receipt == nil {
		c.println("No items purchased.")
		return nil
	}

	c.renderReceipt(*receipt)
	return nil
}

func (c *Console) pickItem(ctx context.Context, cart *domain.Cart, shelf []domain.Product) error {
	id, err := c.readInt32("\nEnter S.No of item to buy: ")
	if err != nil {
		return err
	}

	product, ok := findProduct(shelf, id)
	if !ok {
		return domain.NotFoundf("S.No %d is not on the shelf", id)
	}

	varieties, err := c.services.Shop.Varieties(ctx, id)
	if err != nil {
		return err
	}

	var variety int
	if len(varieties) > 0 {
		c.printf("\nAvailable %s Varieties:\n", product.Name)
		for i, v := range varieties {
			c.printf("%d: %s\n", i+1, v.Name)
		}
		choice, err := c.readInt("Choose variety: ")
		if err != nil {
			return err
		}
		variety = int(choice)
	}

	c.printf("Available stock: %d\n", product.Stock-cart.Reserved(id))
	quantity, err := c.readInt32("Enter quantity: ")
	if err != nil {
		return err
	}

	line, err := c.services.Shop.AddLine(ctx, cart, id, quantity, variety)
	if err != nil {
		return err
	}

	c.printf("Added %d %s to cart!\n", line.Quantity, line.Name)
	return nil
}

func findProduct(products []domain.Product, id int32) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
