package coinbase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Order is an exchange order in any lifecycle state. Orders with a pending
// status carry a reduced field set; unset decimals stay zero and unset times
// stay zero-valued.
type Order struct {
	ID             string          `json:"id"`
	ClientOID      string          `json:"client_oid"`
	ProductID      string          `json:"product_id"`
	ProfileID      string          `json:"profile_id"`
	Side           Side            `json:"side"`
	Type           OrderType       `json:"type"`
	TimeInForce    TimeInForce     `json:"time_in_force"`
	ExpireTime     Time            `json:"expire_time"`
	PostOnly       bool            `json:"post_only"`
	CreatedAt      Time            `json:"created_at"`
	DoneAt         Time            `json:"done_at"`
	DoneReason     string          `json:"done_reason"`
	RejectReason   string          `json:"reject_reason"`
	FillFees       decimal.Decimal `json:"fill_fees"`
	FilledSize     decimal.Decimal `json:"filled_size"`
	ExecutedValue  decimal.Decimal `json:"executed_value"`
	Status         string          `json:"status"`
	Settled        bool            `json:"settled"`
	Price          decimal.Decimal `json:"price"`
	Size           decimal.Decimal `json:"size"`
	Funds          decimal.Decimal `json:"funds"`
	SpecifiedFunds decimal.Decimal `json:"specified_funds"`
	Stop           StopType        `json:"stop"`
	StopPrice      decimal.Decimal `json:"stop_price"`
	FundingAmount  decimal.Decimal `json:"funding_amount"`
}

// Fill is one execution against an order.
type Fill struct {
	TradeID   int64           `json:"trade_id"`
	ProductID string          `json:"product_id"`
	OrderID   string          `json:"order_id"`
	UserID    string          `json:"user_id"`
	ProfileID string          `json:"profile_id"`
	Liquidity string          `json:"liquidity"`
	Price     decimal.Decimal `json:"price"`
	Size      decimal.Decimal `json:"size"`
	Fee       decimal.Decimal `json:"fee"`
	CreatedAt Time            `json:"created_at"`
	Side      Side            `json:"side"`
	Settled   bool            `json:"settled"`
	USDVolume decimal.Decimal `json:"usd_volume"`
}

// CreateOrderReq places a limit, market or stop order. Side and ProductID are
// required. Type defaults to limit. Limit and stop orders require Price and
// Size; market buys take Funds, market sells Size.
type CreateOrderReq struct {
	Side      Side
	ProductID string
	ProfileID string
	Type      OrderType
	STP       SelfTradePrevention
	Stop      StopType
	StopPrice decimal.Decimal
	Price     decimal.Decimal
	Size      decimal.Decimal
	Funds     decimal.Decimal

	TimeInForce TimeInForce
	CancelAfter CancelAfter
	PostOnly    bool
	// ClientOID tags the order with a caller-chosen UUID so it can be
	// fetched back as "client:<oid>".
	ClientOID string
}

// ListOrdersReq filters the open-order listing. Only open and un-settled
// orders come back unless Status says otherwise.
type ListOrdersReq struct {
	Limit     int
	Status    []string
	ProfileID string
	ProductID string
	SortedBy  SortedBy
	Sorting   Sorting
	StartDate time.Time
	EndDate   time.Time
	Before    time.Time
	After     time.Time
}

// ListFillsReq needs either OrderID or ProductID.
type ListFillsReq struct {
	OrderID   string
	ProductID string
	ProfileID string
	Limit     int
}

type OrderService struct {
	c *Client
}

// Create places an order. Funds are put on hold for the lifetime of the
// order; how much depends on the order type and parameters.
//
// Permissions: trade.
func (s *OrderService) Create(ctx context.Context, req CreateOrderReq) (Order, error) {
	if req.Side == "" {
		return Order{}, fmt.Errorf("%w: side is required", ErrInvalidRequest)
	}
	if req.ProductID == "" {
		return Order{}, fmt.Errorf("%w: product_id is required", ErrInvalidRequest)
	}
	if req.Type == "" {
		req.Type = OrderTypeLimit
	}

	b := body{
		"side":       string(req.Side),
		"product_id": req.ProductID,
		"type":       string(req.Type),
	}
	b.setString("profile_id", req.ProfileID)
	b.setString("stp", string(req.STP))
	b.setString("stop", string(req.Stop))
	b.setDecimal("stop_price", req.StopPrice)
	b.setDecimal("price", req.Price)
	b.setDecimal("size", req.Size)
	b.setDecimal("funds", req.Funds)
	b.setString("time_in_force", string(req.TimeInForce))
	b.setString("cancel_after", string(req.CancelAfter))
	b.setBool("post_only", req.PostOnly)
	b.setString("client_oid", req.ClientOID)

	var order Order
	err := s.c.post(ctx, "/orders", b, &order)
	return order, err
}

// Get fetches a single order. orderID is either the exchange-assigned id or
// the client-assigned oid prefixed with "client:". Canceled orders with no
// matches may come back 404.
//
// Permissions: view, trade.
func (s *OrderService) Get(ctx context.Context, orderID string) (Order, error) {
	var order Order
	err := s.c.get(ctx, fmt.Sprintf("/orders/%s", orderID), nil, &order)
	return order, err
}

// List returns current orders. For high-volume trading, poll this once at
// startup and keep your own list updated from the websocket feed.
//
// Permissions: view, trade.
func (s *OrderService) List(ctx context.Context, req ListOrdersReq) ([]Order, error) {
	q := url.Values{}
	setInt(q, "limit", req.Limit)
	for _, status := range req.Status {
		q.Add("status", status)
	}
	setString(q, "profile_id", req.ProfileID)
	setString(q, "product_id", req.ProductID)
	setString(q, "sortedBy", string(req.SortedBy))
	setString(q, "sorting", string(req.Sorting))
	setTime(q, "start_date", req.StartDate)
	setTime(q, "end_date", req.EndDate)
	setTime(q, "before", req.Before)
	setTime(q, "after", req.After)

	var orders []Order
	err := s.c.get(ctx, "/orders", q, &orders)
	return orders, err
}

// Cancel cancels a single open order and returns its id, or the client oid
// when cancelling by "client:<oid>". An order that already filled surfaces
// the exchange's reason through the returned *APIError.
//
// Permissions: trade.
func (s *OrderService) Cancel(ctx context.Context, orderID string, profileID string) (string, error) {
	q := url.Values{}
	setString(q, "profile_id", profileID)

	var canceled string
	err := s.c.delete(ctx, fmt.Sprintf("/orders/%s", orderID), q, &canceled)
	return canceled, err
}

// CancelAll best-effort cancels all open orders, optionally scoped to one
// profile or product, and returns the ids it managed to cancel. Repeat the
// call until the book is clear.
//
// Permissions: trade.
func (s *OrderService) CancelAll(ctx context.Context, profileID, productID string) ([]string, error) {
	q := url.Values{}
	setString(q, "profile_id", profileID)
	setString(q, "product_id", productID)

	var canceled []string
	err := s.c.delete(ctx, "/orders", q, &canceled)
	return canceled, err
}

// Fills lists recent fills for an order or product, newest first.
//
// Permissions: view, trade.
func (s *OrderService) Fills(ctx context.Context, req ListFillsReq) ([]Fill, error) {
	if req.OrderID == "" && req.ProductID == "" {
		return nil, fmt.Errorf("%w: either order_id or product_id is required", ErrInvalidRequest)
	}
	q := url.Values{}
	setString(q, "order_id", req.OrderID)
	setString(q, "product_id", req.ProductID)
	setString(q, "profile_id", req.ProfileID)
	setInt(q, "limit", req.Limit)

	var fills []Fill
	err := s.c.get(ctx, "/fills", q, &fills)
	return fills, err
}
