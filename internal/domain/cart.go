package domain

type Customer struct {
	Name  string
	Phone string
}

// Cart lives for one customer session and is never persisted.
type Cart struct {
	lines []CartLine
}

type CartLine struct {
	ProductID int32
	Name      string
	Quantity  int32
	UnitPrice Money
}

func (l CartLine) Total() Money {
	return l.UnitPrice.Times(l.Quantity)
}

func (c *Cart) Append(line CartLine) {
	c.lines = append(c.lines, line)
}

// Lines returns a copy in insertion order.
func (c Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c Cart) Empty() bool {
	return len(c.lines) == 0
}

// Reserved sums the quantity of productID already placed in the cart.
func (c Cart) Reserved(productID int32) int32 {
	var reserved int32
	for _, line := range c.lines {
		if line.ProductID == productID {
			reserved += line.Quantity
		}
	}
	return reserved
}

// Total is zero Money with an undefined currency for an empty cart.
func (c Cart) Total() Money {
	if len(c.lines) == 0 {
		return Money{}
	}

	total := c.lines[0].Total()
	for _, line := range c.lines[1:] {
		total = total.Plus(line.Total())
	}
	return total
}
