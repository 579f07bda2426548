package client

import (
	"context"

	"github.com/baonguyenly/gfapi/internal/http"
	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// BulkClient implements gfapi.BulkClient.
type BulkClient struct {
	httpClient *http.Client
	logger     gfapi.Logger
}

// NewBulkClient creates a new bulk trade client.
func NewBulkClient(httpClient *http.Client, logger gfapi.Logger) *BulkClient {
	return &BulkClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Create implements gfapi.BulkClient.Create.
func (c *BulkClient) Create(ctx context.Context, request *gfapi.BulkCreateRequest) (*gfapi.BulkOrder, error) {
	return postObject[gfapi.BulkOrder](ctx, c.httpClient, c.logger, "/steam/bulk", request, "creating bulk order")
}

// Get implements gfapi.BulkClient.Get.
func (c *BulkClient) Get(ctx context.Context, orderID string) (*gfapi.BulkOrder, error) {
	return fetchObject[gfapi.BulkOrder](ctx, c.httpClient, c.logger, "/steam/bulk/"+orderID, "getting bulk order")
}
