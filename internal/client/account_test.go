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

func newAccountClient(server *httptest.Server) *client.AccountClient {
	return client.NewAccountClient(gfhttp.NewClient(server.URL, nil), nil)
}

func TestAccountClient_Profile(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/account/me/profile", request.URL.Path)
		client.WriteSuccess(writer, gfapi.Profile{Owner: "us-east-1:owner", DisplayName: "seller"}, nil)
	}))
	defer server.Close()

	account := newAccountClient(server)

	profile, err := account.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "us-east-1:owner", profile.Owner)
	assert.Equal(t, "seller", profile.DisplayName)
}

func TestAccountClient_UpdateProfile(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/account/me/profile", request.URL.Path)

		var body gfapi.ProfileUpdateRequest

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "new name", body.DisplayName)

		client.WriteSuccess(writer, gfapi.Profile{Owner: "o", DisplayName: body.DisplayName}, nil)
	}))
	defer server.Close()

	account := newAccountClient(server)

	profile, err := account.UpdateProfile(context.Background(), &gfapi.ProfileUpdateRequest{DisplayName: "new name"})
	require.NoError(t, err)
	assert.Equal(t, "new name", profile.DisplayName)
}

func TestAccountClient_WalletHistory(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/account/me/wallet_history", request.URL.Path)
		client.WriteSuccess(writer, []gfapi.WalletEntry{
			{ID: "w1", Kind: "sale", Amount: 500},
			{ID: "w2", Kind: "withdrawal", Amount: -500},
		}, nil)
	}))
	defer server.Close()

	account := newAccountClient(server)

	entries, err := account.WalletHistory(context.Background(), gfapi.NewQuery())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "sale", entries[0].Kind)
	assert.Equal(t, -500, entries[1].Amount)
}
