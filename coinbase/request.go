package coinbase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, out)
}

// do signs and sends one request. GET/DELETE parameters travel in the query
// string (and are part of the signed request path); POST/PUT parameters are a
// JSON body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	requestPath := path
	if len(query) > 0 {
		requestPath += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("coinbase: encode request: %w", err)
		}
	}

	ts := timestamp()
	sig, err := sign(c.secret, ts, method, requestPath, string(payload))
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+requestPath, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("CB-ACCESS-KEY", c.key)
	req.Header.Set("CB-ACCESS-PASSPHRASE", c.passphrase)
	req.Header.Set("CB-ACCESS-TIMESTAMP", ts)
	req.Header.Set("CB-ACCESS-SIGN", sig)

	c.log.Debug("coinbase request", "method", method, "path", requestPath)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Debug("coinbase error response", "method", method, "path", requestPath, "status", resp.StatusCode)
		return apiError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("coinbase: decode response: %w", err)
	}
	return nil
}

// Query and body builders. Zero values are never serialized, so optional
// parameters simply stay off the wire.

func setString(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}

func setInt(q url.Values, key string, val int) {
	if val != 0 {
		q.Set(key, strconv.Itoa(val))
	}
}

func setBool(q url.Values, key string, val bool) {
	if val {
		q.Set(key, "true")
	}
}

func setTime(q url.Values, key string, val time.Time) {
	if !val.IsZero() {
		q.Set(key, val.UTC().Format(time.RFC3339))
	}
}

func setDecimal(q url.Values, key string, val decimal.Decimal) {
	if !val.IsZero() {
		q.Set(key, val.String())
	}
}

// body is a JSON request body under construction. Amounts are always encoded
// as strings, never floats.
type body map[string]any

func (b body) setString(key, val string) {
	if val != "" {
		b[key] = val
	}
}

func (b body) setBool(key string, val bool) {
	if val {
		b[key] = val
	}
}

func (b body) setDecimal(key string, val decimal.Decimal) {
	if !val.IsZero() {
		b[key] = val.String()
	}
}

func (b body) setTime(key string, val time.Time) {
	if !val.IsZero() {
		b[key] = val.UTC().Format(time.RFC3339)
	}
}
