package demo

//go:generate go tool mockery

// Supplier is told about every restock. Its failures never fail the restock.
type Supplier interface {
	Confirm(sku string, quantity int) error
}

type Pricing interface {
	Quote(item Item, quantity int) (float64, error)
}
