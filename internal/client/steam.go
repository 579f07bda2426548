package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"strconv"

	"github.com/baonguyenly/gfapi/internal/constants"
	"github.com/baonguyenly/gfapi/internal/http"
	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// SteamClient implements gfapi.SteamClient against the community inventory
// API. Requests are unauthenticated but still pass through the shared rate
// limiter.
type SteamClient struct {
	httpClient *http.Client
	logger     gfapi.Logger
}

// NewSteamClient creates a new Steam inventory client.
func NewSteamClient(httpClient *http.Client, logger gfapi.Logger) *SteamClient {
	return &SteamClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// looseBool accepts JSON booleans and numbers; the inventory API flags
// success and more_items as 1/0.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	var value bool

	err := json.Unmarshal(data, &value)
	if err == nil {
		*b = looseBool(value)

		return nil
	}

	number, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("parsing flag %q: %w", string(data), err)
	}

	*b = number != 0

	return nil
}

// inventoryEnvelope is the secondary API response wrapper.
type inventoryEnvelope struct {
	Success      looseBool                    `json:"success"`
	Assets       []gfapi.InventoryAsset       `json:"assets"`
	Descriptions []gfapi.InventoryDescription `json:"descriptions"`
	TotalCount   int                          `json:"total_inventory_count"`
	MoreItems    looseBool                    `json:"more_items"`
	LastAssetID  string                       `json:"last_assetid"`
}

// Inventory implements gfapi.SteamClient.Inventory.
func (c *SteamClient) Inventory(ctx context.Context, query *gfapi.InventoryQuery) (*gfapi.InventoryPage, error) {
	if query == nil || query.SteamID == "" {
		return nil, gfapi.ErrInventoryOwnerRequired
	}

	if query.Exhausted() {
		return nil, gfapi.ErrNoMoreItems
	}

	appID := query.AppID
	if appID == "" {
		appID = constants.DefaultSteamAppID
	}

	contextID := query.ContextID
	if contextID == "" {
		contextID = constants.DefaultSteamContextID
	}

	path := "/" + query.SteamID + "/" + appID + "/" + contextID

	values := query.ToValues()
	if query.Count <= 0 {
		values.Set("count", strconv.Itoa(constants.DefaultInventoryCount))
	}

	resp, err := c.httpClient.Get(ctx, path, values)
	if err != nil {
		return nil, fmt.Errorf("fetching inventory: %w", err)
	}

	page, err := decodeInventory(resp, query, c.logger)
	if err != nil {
		return nil, fmt.Errorf("fetching inventory: %w", err)
	}

	return page, nil
}

// decodeInventory normalizes an inventory response and advances the query's
// start_assetid cursor. A page flagged more_items continues the traversal
// even when it carries no assets.
func decodeInventory(resp *http.Response, query *gfapi.InventoryQuery, logger gfapi.Logger) (*gfapi.InventoryPage, error) {
	var env inventoryEnvelope

	err := json.Unmarshal(resp.Body, &env)
	if err != nil {
		env = inventoryEnvelope{}
	}

	if !bool(env.Success) {
		apiErr := gfapi.NewAPIError(0, "", resp.StatusCode, nethttp.StatusText(resp.StatusCode))
		logFailure(logger, "fetching inventory", apiErr)

		return nil, apiErr
	}

	if logger != nil {
		logger.Debug("API Success", map[string]interface{}{
			"operation":  "fetching inventory",
			"assets":     len(env.Assets),
			"more_items": bool(env.MoreItems),
		})
	}

	if !bool(env.MoreItems) && len(env.Assets) == 0 {
		query.SetStartAssetID("")

		return nil, gfapi.ErrNoMoreItems
	}

	// The cursor is whatever the server handed back; an absent last_assetid
	// terminates the traversal on the next call.
	query.SetStartAssetID(env.LastAssetID)

	return &gfapi.InventoryPage{
		Assets:       env.Assets,
		Descriptions: env.Descriptions,
		TotalCount:   env.TotalCount,
		MoreItems:    bool(env.MoreItems),
		LastAssetID:  env.LastAssetID,
	}, nil
}
