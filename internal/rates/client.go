// Package rates looks up exchange rates from a remote rate source and
// converts amounts between currencies. Lookup failures are absorbed here:
// callers receive an absent result, never an error.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds every rate lookup.
const DefaultTimeout = 5 * time.Second

// Client fetches exchange rates over HTTP. Rate tables are cached per base
// currency for the lifetime of the client, so one instance should be used
// per run.
type Client struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
	log        *zap.SugaredLogger
	mu         sync.RWMutex
	rates      map[string]map[string]float64 // base -> code -> rate
}

// NewClient creates a rate client against the given base URL
// (e.g. "https://api.exchangerate-api.com/v4/latest"). A zero timeout falls
// back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        log,
		rates:      make(map[string]map[string]float64),
	}
}

// ratesResponse is the rate source's payload for a base currency.
type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Rates fetches (or returns cached) the rate table for the given base currency.
func (c *Client) Rates(ctx context.Context, base string) (map[string]float64, error) {
	base = strings.ToUpper(base)

	c.mu.RLock()
	table, ok := c.rates[base]
	c.mu.RUnlock()
	if ok {
		return table, nil
	}

	table, err := c.fetchRates(ctx, base)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.rates[base] = table
	c.mu.Unlock()

	return table, nil
}

// Convert converts amount from one currency to another. The second return
// value is false when the lookup fails for any reason: non-2xx response,
// network error, timeout, or a missing target-currency rate. Failures are
// logged and absorbed; no error ever reaches the caller.
func (c *Client) Convert(ctx context.Context, amount float64, from, to string) (float64, bool) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	table, err := c.Rates(ctx, from)
	if err != nil {
		c.log.Warnw("currency conversion failed", "from", from, "to", to, "error", err)
		return 0, false
	}

	rate, ok := table[to]
	if !ok {
		c.log.Warnw("currency conversion failed", "from", from, "to", to, "error", "no rate for target currency")
		return 0, false
	}

	converted := amount * rate
	c.log.Infow("currency converted", "from", from, "to", to, "amount", amount, "converted", converted)
	return converted, true
}

// fetchRates fetches the rate table for a base currency from the rate source.
func (c *Client) fetchRates(ctx context.Context, base string) (map[string]float64, error) {
	url := c.baseURL + "/" + base

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building rates request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates request for %s: %w", base, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates request for %s: unexpected status %d", base, resp.StatusCode)
	}

	var payload ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding rates response for %s: %w", base, err)
	}

	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("no rates returned for %s", base)
	}

	return payload.Rates, nil
}
