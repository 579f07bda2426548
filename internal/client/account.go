package client

import (
	"context"

	"github.com/baonguyenly/gfapi/internal/http"
	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// AccountClient implements gfapi.AccountClient.
type AccountClient struct {
	httpClient *http.Client
	logger     gfapi.Logger
}

// NewAccountClient creates a new account client.
func NewAccountClient(httpClient *http.Client, logger gfapi.Logger) *AccountClient {
	return &AccountClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Profile implements gfapi.AccountClient.Profile.
func (c *AccountClient) Profile(ctx context.Context) (*gfapi.Profile, error) {
	return fetchObject[gfapi.Profile](ctx, c.httpClient, c.logger, "/account/me/profile", "getting profile")
}

// UpdateProfile implements gfapi.AccountClient.UpdateProfile.
func (c *AccountClient) UpdateProfile(ctx context.Context, request *gfapi.ProfileUpdateRequest) (*gfapi.Profile, error) {
	return putObject[gfapi.Profile](ctx, c.httpClient, c.logger, "/account/me/profile", request, "updating profile")
}

// WalletHistory implements gfapi.AccountClient.WalletHistory.
func (c *AccountClient) WalletHistory(ctx context.Context, query *gfapi.Query) ([]gfapi.WalletEntry, error) {
	return fetchPage[gfapi.WalletEntry](ctx, c.httpClient, c.logger, "/account/me/wallet_history", query, "listing wallet history")
}
