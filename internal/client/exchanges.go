package client

import (
	"context"

	"github.com/baonguyenly/gfapi/internal/http"
	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// ExchangesClient implements gfapi.ExchangesClient.
type ExchangesClient struct {
	httpClient *http.Client
	logger     gfapi.Logger
}

// NewExchangesClient creates a new exchanges client.
func NewExchangesClient(httpClient *http.Client, logger gfapi.Logger) *ExchangesClient {
	return &ExchangesClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// List implements gfapi.ExchangesClient.List.
func (c *ExchangesClient) List(ctx context.Context, query *gfapi.Query) ([]gfapi.Exchange, error) {
	return fetchPage[gfapi.Exchange](ctx, c.httpClient, c.logger, "/exchange", query, "listing exchanges")
}

// Get implements gfapi.ExchangesClient.Get.
func (c *ExchangesClient) Get(ctx context.Context, exchangeID string) (*gfapi.Exchange, error) {
	return fetchObject[gfapi.Exchange](ctx, c.httpClient, c.logger, "/exchange/"+exchangeID, "getting exchange")
}
