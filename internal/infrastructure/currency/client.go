package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRateUnavailable is returned when no conversion rate between the two
// currencies can be resolved. Submission fails without writes in that case.
var ErrRateUnavailable = errors.New("conversion rate not available")

// ErrCountryUnknown is returned when a country code maps to no currency.
var ErrCountryUnknown = errors.New("no currency known for country")

const (
	defaultCountriesURL = "https://restcountries.com/v3.1/all?fields=name,currencies,cca2"
	defaultRatesURL     = "https://api.exchangerate-api.com/v4/latest"
	defaultRateTTL      = time.Hour
)

// Client resolves country currencies and exchange rates over HTTP. Rate
// tables are cached in redis per base currency; the cache is optional and a
// nil redis client disables it.
type Client struct {
	http         *http.Client
	countriesURL string
	ratesURL     string
	rdb          *redis.Client
	rateTTL      time.Duration
}

type Option func(*Client)

func WithCache(rdb *redis.Client, ttl time.Duration) Option {
	return func(c *Client) {
		c.rdb = rdb
		if ttl > 0 {
			c.rateTTL = ttl
		}
	}
}

func WithBaseURLs(countriesURL, ratesURL string) Option {
	return func(c *Client) {
		if countriesURL != "" {
			c.countriesURL = countriesURL
		}
		if ratesURL != "" {
			c.ratesURL = ratesURL
		}
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		http:         &http.Client{Timeout: 15 * time.Second},
		countriesURL: defaultCountriesURL,
		ratesURL:     defaultRatesURL,
		rateTTL:      defaultRateTTL,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type countryEntry struct {
	CCA2       string                     `json:"cca2"`
	Currencies map[string]json.RawMessage `json:"currencies"`
}

// CurrencyForCountry maps an ISO-3166 alpha-2 code to the country's first
// listed currency code.
func (c *Client) CurrencyForCountry(ctx context.Context, countryCode string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.countriesURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("countries lookup: unexpected status %d", resp.StatusCode)
	}

	var entries []countryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return "", err
	}
	want := strings.ToUpper(countryCode)
	for _, e := range entries {
		if e.CCA2 != want {
			continue
		}
		for code := range e.Currencies {
			return code, nil
		}
	}
	return "", ErrCountryUnknown
}

// Convert normalizes amount from one currency to another. Matching codes skip
// the network entirely. When the base table lacks the target, the inverse
// table is tried before giving up.
func (c *Client) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if from == to {
		return amount, nil
	}

	rates, err := c.fetchRates(ctx, from)
	if err != nil {
		return 0, err
	}
	if rate, ok := rates[to]; ok && rate > 0 {
		return amount * rate, nil
	}

	// fallback: invert the reverse rate
	back, err := c.fetchRates(ctx, to)
	if err != nil {
		return 0, err
	}
	if rate, ok := back[from]; ok && rate > 0 {
		return amount / rate, nil
	}
	return 0, ErrRateUnavailable
}

func (c *Client) fetchRates(ctx context.Context, base string) (map[string]float64, error) {
	cacheKey := "fx:rates:" + base
	if c.rdb != nil {
		if raw, err := c.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached map[string]float64
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	url := fmt.Sprintf("%s/%s", c.ratesURL, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d for base %s", ErrRateUnavailable, resp.StatusCode, base)
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}

	if c.rdb != nil {
		if raw, err := json.Marshal(payload.Rates); err == nil {
			_ = c.rdb.Set(ctx, cacheKey, raw, c.rateTTL).Err()
		}
	}
	return payload.Rates, nil
}
