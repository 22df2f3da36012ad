package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"
)

const bypassHeader = "X-Rate-Limit-Bypass"

type methodCount struct {
	Method string `json:"method"`
	Calls  int64  `json:"calls"`
}

type report struct {
	ClassName        string        `json:"class_name"`
	CurrentActivity  []methodCount `json:"current_activity"`
	TotalActivity    []methodCount `json:"total_activity"`
	TruncatedCalls   int           `json:"truncated_calls"`
	RetentionMinutes int           `json:"retention_minutes"`
	MethodCalls      []struct{}    `json:"method_calls"`
}

// Run fetches the reports of classes concurrently, prints their totals and
// fails if any call is still counted as in flight after the attack.
func Run(ctx context.Context, client *http.Client, baseURL, bypassSecret string, classes ...string) error {
	reports := make([]*report, len(classes))

	g, ctx := errgroup.WithContext(ctx)
	for i, class := range classes {
		g.Go(func() error {
			r, err := fetch(ctx, client, baseURL, class, bypassSecret)
			if err != nil {
				return fmt.Errorf("failed to fetch report of %s: %w", class, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range reports {
		fmt.Printf("\n%s (retention %dm, %d retained, %d truncated)\n",
			r.ClassName, r.RetentionMinutes, len(r.MethodCalls), r.TruncatedCalls)
		for _, c := range r.TotalActivity {
			fmt.Printf("  %-40s %d\n", c.Method, c.Calls)
		}
		for _, c := range r.CurrentActivity {
			if c.Calls != 0 {
				return fmt.Errorf("%s.%s still has %d calls in flight", r.ClassName, c.Method, c.Calls)
			}
		}
	}
	return nil
}

func fetch(ctx context.Context, client *http.Client, baseURL, class, bypassSecret string) (*report, error) {
	target := baseURL + "/api/v1/performance/" + url.PathEscape(class)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
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

	var r report
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}
