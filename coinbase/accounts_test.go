package coinbase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantor-labs/coinbasex/pkg/decimalx"
)

func TestAccountGet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/accounts/7fd0abc0-e5ad-4cbb-8d54-f2b3f43364da", r.URL.Path)
		w.Write([]byte(`{
			"id": "7fd0abc0-e5ad-4cbb-8d54-f2b3f43364da",
			"currency": "BTC",
			"balance": "1.100000000000",
			"available": "1.00",
			"hold": "0.1000000000000000",
			"profile_id": "8058d771-2d88-4f0f-ab6e-299c153d4308",
			"trading_enabled": true
		}`))
	})

	account, err := client.Accounts().Get(context.Background(), "7fd0abc0-e5ad-4cbb-8d54-f2b3f43364da")
	require.NoError(t, err)
	assert.Equal(t, "BTC", account.Currency)
	assert.True(t, account.Balance.Equal(decimalx.MustFromString("1.1")))
	assert.True(t, account.Available.Equal(decimalx.MustFromString("1")))
	assert.True(t, account.Hold.Equal(decimalx.MustFromString("0.1")))
	assert.True(t, account.TradingEnabled)
}

func TestAccountList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts", r.URL.Path)
		w.Write([]byte(`[
			{"id": "a1", "currency": "BTC", "balance": "2.5", "available": "2.5", "hold": "0"},
			{"id": "a2", "currency": "USD", "balance": "1000", "available": "900", "hold": "100"}
		]`))
	})

	accounts, err := client.Accounts().List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "USD", accounts[1].Currency)
	assert.True(t, accounts[1].Hold.Equal(decimalx.MustFromString("100")))
}

func TestAccountHolds(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/a1/holds", r.URL.Path)
		w.Write([]byte(`[{
			"id": "82dcd140-c3c7-4507-8de4-2c529cd1a28f",
			"created_at": "2014-11-06T10:34:47.123456Z",
			"updated_at": "2014-11-06T10:40:47.123456Z",
			"amount": "4.23",
			"type": "order",
			"ref": "0a205de4-dd35-4370-a285-fe8fc375a273"
		}]`))
	})

	holds, err := client.Accounts().Holds(context.Background(), "a1")
	require.NoError(t, err)
	require.Len(t, holds, 1)
	assert.Equal(t, "order", holds[0].Type)
	assert.True(t, holds[0].Amount.Equal(decimalx.MustFromString("4.23")))
	assert.Equal(t, 2014, holds[0].CreatedAt.Year())
}

func TestAccountLedger(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/a1/ledger", r.URL.Path)
		w.Write([]byte(`[{
			"id": "100",
			"created_at": "2014-11-07 08:19:27.028459+00",
			"amount": "0.001",
			"balance": "239.669",
			"type": "fee",
			"details": {
				"order_id": "d50ec984-77a8-460a-b958-66f114b0de9b",
				"trade_id": "74",
				"product_id": "BTC-USD"
			}
		}]`))
	})

	entries, err := client.Accounts().Ledger(context.Background(), "a1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fee", entries[0].Type)
	assert.Equal(t, "BTC-USD", entries[0].Details.ProductID)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestAccountTransfers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/a1/transfers", r.URL.Path)
		w.Write([]byte(`[{
			"id": "t1",
			"type": "deposit",
			"created_at": "2022-01-01 10:00:00.000000+00",
			"completed_at": "2022-01-01 10:00:05.000000+00",
			"amount": "50.00",
			"currency": "USD",
			"details": {"coinbase_account_id": "c1"}
		}]`))
	})

	transfers, err := client.Accounts().Transfers(context.Background(), "a1")
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.Equal(t, "deposit", transfers[0].Type)
	assert.True(t, transfers[0].CanceledAt.IsZero())
	assert.Equal(t, "c1", transfers[0].Details.CoinbaseAccountID)
}
