package domain

const DefaultSize = "Regular"

type Product struct {
	ID       int32
	Name     string
	Cost     Money
	Stock    int32
	MinStock int32
	Size     string
}

// LowStock reports whether stock has fallen to or below the minimum threshold.
func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}

// Variety belongs to exactly one product. A product owning varieties is composite:
// buying it requires a variety choice.
type Variety struct {
	ID        int32
	ProductID int32
	Name      string
}
