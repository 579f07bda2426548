package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baonguyenly/gfapi/internal/client"
	gfhttp "github.com/baonguyenly/gfapi/internal/http"
	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

func newSteamClient(server *httptest.Server) *client.SteamClient {
	return client.NewSteamClient(gfhttp.NewClient(server.URL, nil), nil)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestSteamClient_Inventory(t *testing.T) {
	t.Parallel()
	t.Run("walks pages through start_assetid", func(t *testing.T) {
		t.Parallel()

		requests := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests++
			assert.Equal(t, "/76561198000000000/730/2", request.URL.Path)
			assert.Equal(t, "english", request.URL.Query().Get("l"))

			writer.Header().Set("Content-Type", "application/json")

			if request.URL.Query().Get("start_assetid") == "" {
				// Steam flags success and more_items numerically.
				_, _ = writer.Write([]byte(`{
					"success": 1,
					"assets": [{"appid": 730, "assetid": "100", "classid": "7", "amount": "1"}],
					"more_items": 1,
					"last_assetid": "100",
					"total_inventory_count": 2
				}`))

				return
			}

			assert.Equal(t, "100", request.URL.Query().Get("start_assetid"))
			_, _ = writer.Write([]byte(`{
				"success": true,
				"assets": [{"appid": 730, "assetid": "101", "classid": "7", "amount": "1"}],
				"total_inventory_count": 2
			}`))
		}))
		defer server.Close()

		steam := newSteamClient(server)
		query := &gfapi.InventoryQuery{SteamID: "76561198000000000"}

		first, err := steam.Inventory(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, first.Assets, 1)
		assert.Equal(t, "100", first.Assets[0].AssetID)
		assert.True(t, first.MoreItems)

		second, err := steam.Inventory(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, second.Assets, 1)
		assert.Equal(t, "101", second.Assets[0].AssetID)
		assert.False(t, second.MoreItems)

		// Terminal cursor short-circuits before the network.
		_, err = steam.Inventory(context.Background(), query)
		require.ErrorIs(t, err, gfapi.ErrNoMoreItems)
		assert.Equal(t, 2, requests)
	})

	t.Run("empty inventory terminates", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"success": 1, "total_inventory_count": 0}`))
		}))
		defer server.Close()

		steam := newSteamClient(server)
		query := &gfapi.InventoryQuery{SteamID: "76561198000000000"}

		_, err := steam.Inventory(context.Background(), query)
		require.ErrorIs(t, err, gfapi.ErrNoMoreItems)
		assert.True(t, query.Exhausted())
	})

	t.Run("failure carries the HTTP status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusServiceUnavailable)
			_, _ = writer.Write([]byte(`{"success": false}`))
		}))
		defer server.Close()

		steam := newSteamClient(server)

		_, err := steam.Inventory(context.Background(), &gfapi.InventoryQuery{SteamID: "76561198000000000"})
		require.Error(t, err)

		apiErr := &gfapi.APIError{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	})

	t.Run("missing owner is rejected before the network", func(t *testing.T) {
		t.Parallel()

		steam := client.NewSteamClient(gfhttp.NewClient("http://127.0.0.1:1", nil), nil)

		_, err := steam.Inventory(context.Background(), &gfapi.InventoryQuery{})
		require.ErrorIs(t, err, gfapi.ErrInventoryOwnerRequired)

		_, err = steam.Inventory(context.Background(), nil)
		require.ErrorIs(t, err, gfapi.ErrInventoryOwnerRequired)
	})

	t.Run("default page size is requested", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "75", request.URL.Query().Get("count"))

			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"success": 1, "assets": [{"appid": 730, "assetid": "1"}]}`))
		}))
		defer server.Close()

		steam := newSteamClient(server)

		_, err := steam.Inventory(context.Background(), &gfapi.InventoryQuery{SteamID: "76561198000000000"})
		require.NoError(t, err)
	})

	t.Run("custom app and context IDs", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/76561198000000000/440/6", request.URL.Path)
			assert.Equal(t, "50", request.URL.Query().Get("count"))

			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"success": 1, "assets": [{"appid": 440, "assetid": "9"}]}`))
		}))
		defer server.Close()

		steam := newSteamClient(server)
		query := &gfapi.InventoryQuery{
			SteamID:   "76561198000000000",
			AppID:     "440",
			ContextID: "6",
			Count:     50,
		}

		page, err := steam.Inventory(context.Background(), query)
		require.NoError(t, err)
		assert.Len(t, page.Assets, 1)
	})
}
