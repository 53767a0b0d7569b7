package coinbase

import (
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the production Coinbase Exchange REST endpoint.
	DefaultBaseURL = "https://api.exchange.coinbase.com"
	// DefaultFeedURL is the production market data WebSocket feed.
	DefaultFeedURL = "wss://ws-feed.exchange.coinbase.com"
)

// Private API tier allows 15 requests per second with bursts up to 30.
const (
	defaultRateLimit = 15
	defaultRateBurst = 30
)

// Client is a Coinbase Exchange REST API client.
//
// A zero Client is not usable; construct one with New. All endpoint groups
// hang off the client, e.g. client.Orders().Create(ctx, req).
type Client struct {
	key        string
	secret     string
	passphrase string

	baseURL string
	feedURL string
	http    *http.Client
	limiter *rate.Limiter
	log     *slog.Logger
}

type Option func(*Client)

// WithBaseURL points the client at a different REST endpoint, e.g. the
// public sandbox.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithFeedURL points Feed connections at a different WebSocket endpoint.
func WithFeedURL(u string) Option {
	return func(c *Client) {
		c.feedURL = u
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithRateLimit overrides the default request rate limit (15 req/s, burst 30).
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// New creates a Coinbase Exchange client.
//
// key, secret and passphrase are the credentials created alongside the API
// key in the exchange profile. The secret stays base64-encoded; it is decoded
// on every signature.
func New(key, secret, passphrase string, opts ...Option) *Client {
	c := &Client{
		key:        key,
		secret:     secret,
		passphrase: passphrase,
		baseURL:    DefaultBaseURL,
		feedURL:    DefaultFeedURL,
		http:       &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(defaultRateLimit, defaultRateBurst),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Accounts() *AccountService {
	return &AccountService{c: c}
}

func (c *Client) Conversions() *ConversionService {
	return &ConversionService{c: c}
}

func (c *Client) Currencies() *CurrencyService {
	return &CurrencyService{c: c}
}

func (c *Client) Deposits() *DepositService {
	return &DepositService{c: c}
}

func (c *Client) Fees() *FeeService {
	return &FeeService{c: c}
}

func (c *Client) Oracle() *OracleService {
	return &OracleService{c: c}
}

func (c *Client) Orders() *OrderService {
	return &OrderService{c: c}
}

func (c *Client) Products() *ProductService {
	return &ProductService{c: c}
}

func (c *Client) Profiles() *ProfileService {
	return &ProfileService{c: c}
}

func (c *Client) Reports() *ReportService {
	return &ReportService{c: c}
}

func (c *Client) Transfers() *TransferService {
	return &TransferService{c: c}
}

func (c *Client) Withdrawals() *WithdrawalService {
	return &WithdrawalService{c: c}
}
