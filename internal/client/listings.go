package client

import (
	"context"

	"github.com/baonguyenly/gfapi/internal/http"
	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// ListingsClient implements gfapi.ListingsClient.
type ListingsClient struct {
	httpClient *http.Client
	logger     gfapi.Logger
}

// NewListingsClient creates a new listings client. A nil logger disables the
// per-call events.
func NewListingsClient(httpClient *http.Client, logger gfapi.Logger) *ListingsClient {
	return &ListingsClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Search implements gfapi.ListingsClient.Search.
func (c *ListingsClient) Search(ctx context.Context, query *gfapi.Query) ([]gfapi.Listing, error) {
	return fetchPage[gfapi.Listing](ctx, c.httpClient, c.logger, "/listing", query, "searching listings")
}

// Get implements gfapi.ListingsClient.Get.
func (c *ListingsClient) Get(ctx context.Context, listingID string) (*gfapi.Listing, error) {
	return fetchObject[gfapi.Listing](ctx, c.httpClient, c.logger, "/listing/"+listingID, "getting listing")
}

// Create implements gfapi.ListingsClient.Create.
func (c *ListingsClient) Create(ctx context.Context, request *gfapi.ListingCreateRequest) (*gfapi.Listing, error) {
	return postObject[gfapi.Listing](ctx, c.httpClient, c.logger, "/listing", request, "creating listing")
}

// Update implements gfapi.ListingsClient.Update.
func (c *ListingsClient) Update(ctx context.Context, listingID string, ops []gfapi.PatchOp) (*gfapi.Listing, error) {
	return patchObject[gfapi.Listing](ctx, c.httpClient, c.logger, "/listing/"+listingID, ops, "updating listing")
}

// UpdatePrice implements gfapi.ListingsClient.UpdatePrice. Price is in cents.
func (c *ListingsClient) UpdatePrice(ctx context.Context, listingID string, price int) (*gfapi.Listing, error) {
	ops := []gfapi.PatchOp{
		{Op: "replace", Path: "/price", Value: price},
	}

	return c.Update(ctx, listingID, ops)
}

// UpdateStatus implements gfapi.ListingsClient.UpdateStatus. Moving a listing
// between draft, ready and onsale is a status replace.
func (c *ListingsClient) UpdateStatus(ctx context.Context, listingID string, status string) (*gfapi.Listing, error) {
	ops := []gfapi.PatchOp{
		{Op: "replace", Path: "/status", Value: status},
	}

	return c.Update(ctx, listingID, ops)
}
