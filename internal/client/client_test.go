package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baonguyenly/gfapi/internal/client"
	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// RFC 6238 test secret: "12345678901234567890" in base32.
const testSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *gfapi.Config
		wantErr error
	}{
		{
			name:    "nil config",
			config:  nil,
			wantErr: gfapi.ErrConfigRequired,
		},
		{
			name:    "missing key",
			config:  &gfapi.Config{Secret: testSecret},
			wantErr: gfapi.ErrAPIKeyRequired,
		},
		{
			name:    "missing secret",
			config:  &gfapi.Config{Key: "my-key"},
			wantErr: gfapi.ErrAPISecretRequired,
		},
		{
			name:    "malformed secret",
			config:  &gfapi.Config{Key: "my-key", Secret: "not base32 !!"},
			wantErr: gfapi.ErrMalformedSecret,
		},
		{
			name:    "unknown TOTP algorithm",
			config:  &gfapi.Config{Key: "my-key", Secret: testSecret, TOTPAlgorithm: "MD5"},
			wantErr: gfapi.ErrInvalidTOTPAlgorithm,
		},
		{
			name:    "unsupported digit count",
			config:  &gfapi.Config{Key: "my-key", Secret: testSecret, TOTPDigits: 7},
			wantErr: gfapi.ErrInvalidTOTPDigits,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := client.New(testCase.config)
			require.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestNew_ValidConfig(t *testing.T) {
	t.Parallel()

	gfClient, err := client.New(&gfapi.Config{Key: "my-key", Secret: testSecret})
	require.NoError(t, err)

	assert.NotNil(t, gfClient.Listings())
	assert.NotNil(t, gfClient.Exchanges())
	assert.NotNil(t, gfClient.Account())
	assert.NotNil(t, gfClient.Bulk())
	assert.NotNil(t, gfClient.Steam())
}

func TestResolveBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "bare key selects production",
			key:  "abc123",
			want: "https://production-gameflip.fingershock.com/api/v1",
		},
		{
			name: "test prefix",
			key:  "test-abc123",
			want: "https://test-gameflip.fingershock.com/api/v1",
		},
		{
			name: "development prefix",
			key:  "development-abc123",
			want: "https://development-gameflip.fingershock.com/api/v1",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, client.ResolveBaseURL(testCase.key))
		})
	}
}

func TestClient_SignsRequests(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		header := request.Header.Get("Authorization")
		assert.Regexp(t, `^GFAPI my-key:\d{6}$`, header)

		client.WriteSuccess(writer, gfapi.Profile{Owner: "o"}, nil)
	}))
	defer server.Close()

	gfClient, err := client.New(&gfapi.Config{
		Key:             "my-key",
		Secret:          testSecret,
		BaseURL:         server.URL,
		RequestInterval: -1,
	})
	require.NoError(t, err)

	_, err = gfClient.Account().Profile(context.Background())
	require.NoError(t, err)
}

func TestClient_SharedPacerAcrossTransports(t *testing.T) {
	t.Parallel()

	apiServer := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		client.WriteSuccess(writer, gfapi.Profile{Owner: "o"}, nil)
	}))
	defer apiServer.Close()

	steamServer := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"success": 1, "assets": [{"appid": 730, "assetid": "1"}]}`))
	}))
	defer steamServer.Close()

	// Consume the single burst slot with an API call, then show the Steam
	// read waits for the next one.
	const interval = 40 * time.Millisecond

	gfClient, err := client.New(&gfapi.Config{
		Key:             "my-key",
		Secret:          testSecret,
		BaseURL:         apiServer.URL,
		SteamBaseURL:    steamServer.URL,
		RequestInterval: interval,
	})
	require.NoError(t, err)

	begin := time.Now()

	_, err = gfClient.Account().Profile(context.Background())
	require.NoError(t, err)

	_, err = gfClient.Steam().Inventory(context.Background(), &gfapi.InventoryQuery{SteamID: "7656"})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(begin), interval-time.Millisecond)
}
