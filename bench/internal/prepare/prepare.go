package prepare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const bypassHeader = "X-Rate-Limit-Bypass"

type item struct {
	SKU   string `json:"sku"`
	Stock int    `json:"stock"`
}

// Run lists the inventory and restocks every SKU so that reservations during
// the attack do not run dry. It returns the SKUs.
func Run(ctx context.Context, client *http.Client, baseURL string, quantity int, bypassSecret string) ([]string, error) {
	items, err := list(ctx, client, baseURL, bypassSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU() * 2)

	skus := make([]string, len(items))
	for i, it := range items {
		skus[i] = it.SKU
		g.Go(func() error {
			if err := restock(ctx, client, baseURL, it.SKU, quantity, bypassSecret); err != nil {
				return fmt.Errorf("failed to restock %s: %w", it.SKU, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("Prepared %d skus (+%d each)\n", len(skus), quantity)
	return skus, nil
}

func list(ctx context.Context, client *http.Client, baseURL, bypassSecret string) ([]item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/v1/inventory", nil)
	if err != nil {
		return nil, err
	}
	if bypassSecret != "" {
		req.Header.Set(bypassHeader, bypassSecret)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var items []item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}

func restock(ctx context.Context, client *http.Client, baseURL, sku string, quantity int, bypassSecret string) error {
	body, err := json.Marshal(map[string]int{"quantity": quantity})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/v1/inventory/"+sku+"/restock", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if bypassSecret != "" {
		req.Header.Set(bypassHeader, bypassSecret)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return nil
}
