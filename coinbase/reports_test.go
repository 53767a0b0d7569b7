package coinbase

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReportDefaultsToPDF(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/reports", r.URL.Path)

		var b map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&b))
		assert.Equal(t, "fills", b["type"])
		assert.Equal(t, "pdf", b["format"])

		w.Write([]byte(`{"id": "rpt-1", "type": "fills", "status": "pending"}`))
	})

	resp, err := client.Reports().Create(context.Background(), CreateReportReq{
		Type:      ReportFills,
		ProductID: "BTC-USD",
	})
	require.NoError(t, err)
	assert.Equal(t, "rpt-1", resp.ID)
}

func TestCreateReportKeepsExplicitFormat(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var b map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&b))
		assert.Equal(t, "csv", b["format"])
		w.Write([]byte(`{"id": "rpt-2"}`))
	})

	_, err := client.Reports().Create(context.Background(), CreateReportReq{
		Type:   ReportAccount,
		Format: ReportFormatCSV,
	})
	require.NoError(t, err)
}

func TestCreateReportRequiresType(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("a missing report type must be rejected before any request is sent")
	})

	_, err := client.Reports().Create(context.Background(), CreateReportReq{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
