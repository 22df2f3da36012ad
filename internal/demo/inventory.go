package demo

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"perfmeter/internal/meter"
	"perfmeter/internal/registry"
)

var (
	ErrUnknownSKU      = errors.New("unknown sku")
	ErrOutOfStock      = errors.New("not enough stock")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

const (
	quoteStepThreshold = time.Millisecond

	outcomeKey = "outcome"
)

type Item struct {
	SKU   string  `json:"sku"`
	Name  string  `json:"name"`
	Stock int     `json:"stock"`
	Price float64 `json:"price"`
}

type Reservation struct {
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	Remaining int     `json:"remaining"`
	Total     float64 `json:"total"`
}

// PricingError is a pricing failure the inventory recovers from by charging
// list price.
type PricingError struct {
	Reason string
}

func (e *PricingError) Error() string {
	return "pricing unavailable: " + e.Reason
}

// Inventory is an in-memory stock book whose public methods are watched.
type Inventory struct {
	meter    *meter.Meter
	supplier Supplier
	pricing  Pricing
	logger   *slog.Logger

	mu    sync.RWMutex
	items map[string]*Item
}

func (*Inventory) DescribeMethods() []registry.MethodSpec {
	return []registry.MethodSpec{
		{Name: "Restock", Caller: "warehouse"},
		{Name: "Items", Ignore: true},
		{Name: "Meter", Ignore: true},
	}
}

// NewInventory seeds the stock book. supplier and pricing may be nil.
func NewInventory(p *meter.Provider, supplier Supplier, pricing Pricing, logger *slog.Logger, items ...Item) *Inventory {
	inv := &Inventory{
		meter:    meter.ForType[Inventory](p),
		supplier: supplier,
		pricing:  pricing,
		logger:   logger,
		items:    make(map[string]*Item, len(items)),
	}
	for _, item := range items {
		inv.items[item.SKU] = &item
	}
	return inv
}

func (inv *Inventory) Meter() *meter.Meter {
	return inv.meter
}

func (inv *Inventory) Lookup(sku string) (Item, error) {
	var (
		item  Item
		found bool
	)
	err := inv.meter.Watch("Lookup", func(s *meter.Session) error {
		inv.mu.RLock()
		defer inv.mu.RUnlock()

		if it, ok := inv.items[sku]; ok {
			item, found = *it, true
		}
		s.AddCustomData("found", found)
		return nil
	}, meter.WithCustomData("sku", sku))
	if err != nil {
		return Item{}, err
	}
	if !found {
		return Item{}, ErrUnknownSKU
	}
	return item, nil
}

func (inv *Inventory) Reserve(sku string, quantity int) (*Reservation, error) {
	s, err := inv.meter.Start("Reserve",
		meter.WithCustomData("sku", sku),
		meter.WithCustomData("quantity", quantity))
	if err != nil {
		return nil, err
	}
	defer inv.stop(s)

	if quantity <= 0 {
		s.AddCustomData(outcomeKey, "invalid")
		return nil, ErrInvalidQuantity
	}

	st := s.Step("reserve")
	item, err := inv.take(sku, quantity)
	st.Stop()
	if err != nil {
		s.AddCustomData(outcomeKey, outcome(err))
		return nil, err
	}

	listPrice := item.Price * float64(quantity)
	total := listPrice
	if inv.pricing != nil {
		quote := s.StepIf("quote", quoteStepThreshold)
		total, err = meter.ExecuteValue(s, func() (float64, error) {
			return inv.pricing.Quote(item, quantity)
		}, listPrice, meter.OnError(func(err *PricingError) {
			quote.AddCustomData("fallback", err.Reason)
		}))
		quote.Stop()
		if err != nil {
			return nil, fmt.Errorf("failed to quote reservation: %w", err)
		}
	}

	s.AddCustomData(outcomeKey, "reserved")
	return &Reservation{
		SKU:       sku,
		Quantity:  quantity,
		Remaining: item.Stock,
		Total:     total,
	}, nil
}

func (inv *Inventory) Restock(sku string, quantity int) (Item, error) {
	s, err := inv.meter.Start("Restock", meter.WithCustomData("sku", sku))
	if err != nil {
		return Item{}, err
	}
	defer inv.stop(s)

	if quantity <= 0 {
		return Item{}, ErrInvalidQuantity
	}

	inv.mu.Lock()
	it, ok := inv.items[sku]
	if !ok {
		inv.mu.Unlock()
		return Item{}, ErrUnknownSKU
	}
	it.Stock += quantity
	item := *it
	inv.mu.Unlock()

	if inv.supplier != nil {
		// Supplier latency is not ours to measure.
		err := s.Execute(func() error {
			return inv.supplier.Confirm(sku, quantity)
		}, meter.WithoutWatching())
		if err != nil {
			inv.logger.Warn("failed to confirm restock",
				slog.String("sku", sku),
				slog.String("error", err.Error()))
		}
	}

	return item, nil
}

// Items lists the stock book by SKU. It is watched but never recorded.
func (inv *Inventory) Items() []Item {
	s, err := inv.meter.Start("Items")
	if err == nil {
		defer inv.stop(s)
	}

	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]Item, 0, len(inv.items))
	for _, sku := range slices.Sorted(maps.Keys(inv.items)) {
		out = append(out, *inv.items[sku])
	}
	return out
}

func (inv *Inventory) take(sku string, quantity int) (Item, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	it, ok := inv.items[sku]
	if !ok {
		return Item{}, ErrUnknownSKU
	}
	if it.Stock < quantity {
		return Item{}, ErrOutOfStock
	}
	it.Stock -= quantity
	return *it, nil
}

func (inv *Inventory) stop(s *meter.Session) {
	if err := s.Stop(); err != nil {
		inv.logger.Warn("failed to record call",
			slog.String("method", s.Method().Name),
			slog.String("error", err.Error()))
	}
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrUnknownSKU):
		return "unknown"
	case errors.Is(err, ErrOutOfStock):
		return "out_of_stock"
	default:
		return "failed"
	}
}
