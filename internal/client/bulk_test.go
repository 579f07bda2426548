package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baonguyenly/gfapi/internal/client"
	gfhttp "github.com/baonguyenly/gfapi/internal/http"
	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

func newBulkClient(server *httptest.Server) *client.BulkClient {
	return client.NewBulkClient(gfhttp.NewClient(server.URL, nil), nil)
}

func TestBulkClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/steam/bulk", request.URL.Path)

		var body gfapi.BulkCreateRequest

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "https://steamcommunity.com/tradeoffer/new/?partner=1", body.TradeURL)
		assert.Equal(t, []string{"100", "101"}, body.AssetIDs)

		client.WriteSuccess(writer, gfapi.BulkOrder{ID: "bulk-1", Status: "pending"}, nil)
	}))
	defer server.Close()

	bulk := newBulkClient(server)

	order, err := bulk.Create(context.Background(), &gfapi.BulkCreateRequest{
		TradeURL: "https://steamcommunity.com/tradeoffer/new/?partner=1",
		AssetIDs: []string{"100", "101"},
		Price:    500,
	})
	require.NoError(t, err)
	assert.Equal(t, "bulk-1", order.ID)
	assert.Equal(t, "pending", order.Status)
}

func TestBulkClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/steam/bulk/bulk-1", request.URL.Path)
		client.WriteSuccess(writer, gfapi.BulkOrder{ID: "bulk-1", Status: "complete"}, nil)
	}))
	defer server.Close()

	bulk := newBulkClient(server)

	order, err := bulk.Get(context.Background(), "bulk-1")
	require.NoError(t, err)
	assert.Equal(t, "complete", order.Status)
}
