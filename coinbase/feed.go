package coinbase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jpillora/backoff"
	"github.com/valyala/fastjson"
)

// Feed channel names.
const (
	ChannelHeartbeat = "heartbeat"
	ChannelTicker    = "ticker"
	ChannelMatches   = "matches"
	ChannelLevel2    = "level2"
)

// Subscription names the products and channels to stream.
type Subscription struct {
	ProductIDs []string
	Channels   []string
}

// FeedHandlers receives dispatched feed messages. Nil handlers drop their
// message type. Handlers run on the read goroutine, so they must not block.
type FeedHandlers struct {
	OnHeartbeat func(HeartbeatMessage)
	OnTicker    func(TickerMessage)
	OnMatch     func(MatchMessage)
	OnSnapshot  func(SnapshotMessage)
	OnL2Update  func(L2UpdateMessage)
	// OnError sees transport and decode errors that trigger a reconnect.
	OnError func(error)
}

// Feed is a WebSocket market data connection. It redials with jittered
// backoff and resubscribes after every dial, so a Subscribe call survives
// connection loss until its context is cancelled.
type Feed struct {
	url        string
	key        string
	secret     string
	passphrase string
	log        *slog.Logger
	dialer     *websocket.Dialer
}

// Feed returns a market data feed inheriting the client's credentials, feed
// URL and logger. Credentials are only used when SubscribeAuthenticated is
// called; the plain Subscribe never sends them.
func (c *Client) Feed() *Feed {
	return &Feed{
		url:        c.feedURL,
		key:        c.key,
		secret:     c.secret,
		passphrase: c.passphrase,
		log:        c.log,
		dialer:     websocket.DefaultDialer,
	}
}

// NewFeed returns an unauthenticated feed for public market data.
func NewFeed(url string, log *slog.Logger) *Feed {
	if log == nil {
		log = slog.Default()
	}
	return &Feed{
		url:    url,
		log:    log,
		dialer: websocket.DefaultDialer,
	}
}

// Subscribe streams the subscription into the handlers until ctx is
// cancelled. It returns nil on cancellation and an error only when the feed
// URL is unusable.
func (f *Feed) Subscribe(ctx context.Context, sub Subscription, h FeedHandlers) error {
	return f.run(ctx, sub, h, false)
}

// SubscribeAuthenticated is Subscribe with the subscribe message signed by
// the API key, which unlocks user-specific fields on some channels.
func (f *Feed) SubscribeAuthenticated(ctx context.Context, sub Subscription, h FeedHandlers) error {
	if f.key == "" {
		return fmt.Errorf("%w: feed has no api key", ErrInvalidKey)
	}
	return f.run(ctx, sub, h, true)
}

func (f *Feed) run(ctx context.Context, sub Subscription, h FeedHandlers, authed bool) error {
	if len(sub.ProductIDs) == 0 || len(sub.Channels) == 0 {
		return fmt.Errorf("%w: subscription needs products and channels", ErrInvalidRequest)
	}

	retry := &backoff.Backoff{
		Min:    500 * time.Millisecond,
		Max:    30 * time.Second,
		Jitter: true,
	}

	for {
		start := time.Now()
		err := f.stream(ctx, sub, h, authed)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			f.reportError(h, err)
		}
		// a connection that held for a while earns a fresh backoff
		if time.Since(start) > time.Minute {
			retry.Reset()
		}

		wait := retry.Duration()
		f.log.Warn("feed disconnected, reconnecting", "url", f.url, "wait", wait, "error", err)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}
}

// stream runs one connection: dial, subscribe, read until failure or cancel.
func (f *Feed) stream(ctx context.Context, sub Subscription, h FeedHandlers, authed bool) error {
	conn, _, err := f.dialer.DialContext(ctx, f.url, nil)
	if err != nil {
		return fmt.Errorf("coinbase: dial feed: %w", err)
	}
	defer conn.Close()

	msg, err := f.subscribeMessage(sub, authed)
	if err != nil {
		return err
	}
	if err := conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("coinbase: subscribe: %w", err)
	}

	// unblock ReadMessage when the context is cancelled
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	var parser fastjson.Parser
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("coinbase: read feed: %w", err)
		}
		if err := f.dispatch(&parser, raw, h); err != nil {
			f.reportError(h, err)
		}
	}
}

// dispatch peeks the message type and routes it to the matching handler.
func (f *Feed) dispatch(parser *fastjson.Parser, raw []byte, h FeedHandlers) error {
	v, err := parser.ParseBytes(raw)
	if err != nil {
		return fmt.Errorf("coinbase: parse feed message: %w", err)
	}

	switch msgType := string(v.GetStringBytes("type")); msgType {
	case "heartbeat":
		var msg HeartbeatMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			return err
		}
		if h.OnHeartbeat != nil {
			h.OnHeartbeat(msg)
		}
	case "ticker":
		var msg TickerMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			return err
		}
		if h.OnTicker != nil {
			h.OnTicker(msg)
		}
	case "match", "last_match":
		var msg MatchMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			return err
		}
		if h.OnMatch != nil {
			h.OnMatch(msg)
		}
	case "snapshot":
		var msg SnapshotMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			return err
		}
		if h.OnSnapshot != nil {
			h.OnSnapshot(msg)
		}
	case "l2update":
		var msg L2UpdateMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			return err
		}
		if h.OnL2Update != nil {
			h.OnL2Update(msg)
		}
	case "subscriptions":
		f.log.Debug("feed subscription confirmed")
	case "error":
		return fmt.Errorf("coinbase: feed error: %s (%s)",
			v.GetStringBytes("message"), v.GetStringBytes("reason"))
	default:
		f.log.Debug("unhandled feed message", "type", msgType)
	}
	return nil
}

// subscribeMessage builds the subscribe frame. Authenticated subscriptions
// sign an empty GET /users/self/verify request with the REST credentials.
func (f *Feed) subscribeMessage(sub Subscription, authed bool) (map[string]any, error) {
	msg := map[string]any{
		"type":        "subscribe",
		"product_ids": sub.ProductIDs,
		"channels":    sub.Channels,
	}
	if !authed {
		return msg, nil
	}

	ts := timestamp()
	sig, err := sign(f.secret, ts, http.MethodGet, "/users/self/verify", "")
	if err != nil {
		return nil, err
	}
	msg["key"] = f.key
	msg["passphrase"] = f.passphrase
	msg["timestamp"] = ts
	msg["signature"] = sig
	return msg, nil
}

func (f *Feed) reportError(h FeedHandlers, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	if h.OnError != nil {
		h.OnError(err)
		return
	}
	f.log.Error("feed error", "error", err)
}
