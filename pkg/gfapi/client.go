package gfapi

import (
	"context"
	"time"
)

// ListingsClient manages marketplace listings.
type ListingsClient interface {
	// Search fetches one page of listings. The query's cursor is advanced in
	// place; at the end of the traversal Search returns ErrNoMoreItems.
	Search(ctx context.Context, query *Query) ([]Listing, error)
	Get(ctx context.Context, listingID string) (*Listing, error)
	Create(ctx context.Context, request *ListingCreateRequest) (*Listing, error)
	// Update applies JSON-Patch operations to a listing.
	Update(ctx context.Context, listingID string, ops []PatchOp) (*Listing, error)
	UpdatePrice(ctx context.Context, listingID string, price int) (*Listing, error)
	UpdateStatus(ctx context.Context, listingID string, status string) (*Listing, error)
}

// ExchangesClient reads escrowed transactions.
type ExchangesClient interface {
	List(ctx context.Context, query *Query) ([]Exchange, error)
	Get(ctx context.Context, exchangeID string) (*Exchange, error)
}

// AccountClient manages the authenticated account.
type AccountClient interface {
	Profile(ctx context.Context) (*Profile, error)
	UpdateProfile(ctx context.Context, request *ProfileUpdateRequest) (*Profile, error)
	WalletHistory(ctx context.Context, query *Query) ([]WalletEntry, error)
}

// BulkClient manages bulk Steam trades.
type BulkClient interface {
	Create(ctx context.Context, request *BulkCreateRequest) (*BulkOrder, error)
	Get(ctx context.Context, orderID string) (*BulkOrder, error)
}

// SteamClient reads Steam inventories through the secondary inventory API.
type SteamClient interface {
	// Inventory fetches one inventory page. The query's start_assetid cursor
	// is advanced in place; the terminal call returns ErrNoMoreItems.
	Inventory(ctx context.Context, query *InventoryQuery) (*InventoryPage, error)
}

// Client is the full Gameflip API surface.
type Client interface {
	Listings() ListingsClient
	Exchanges() ExchangesClient
	Account() AccountClient
	Bulk() BulkClient
	Steam() SteamClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a gfapi.Client.
//
// # Environment selection
//
// The API key may carry an environment prefix: "test-" selects the test
// servers, "development-" the development servers, and a bare key selects
// production. BaseURL overrides the derived endpoint.
//
// # Rate limiting and retries
//
// Every client instance owns one rate limiter shared by all of its calls,
// including Steam inventory reads; RequestInterval is the minimum spacing
// between request starts (default one second). The client never retries on
// its own: transport and API failures are surfaced to the caller on the
// first attempt. RetryMax/RetryWaitMin/RetryWaitMax exist for callers that
// explicitly opt in to transport-level retries.
type Config struct {
	// Key is the API key, optionally prefixed with an environment marker.
	Key string
	// Secret is the base32 TOTP secret paired with the key.
	Secret string

	// TOTP overrides; zero values select base32/SHA-1/6 digits/30 s.
	TOTPAlgorithm string
	TOTPDigits    int
	TOTPPeriod    time.Duration

	// RequestInterval is the minimum spacing between request starts. Zero
	// selects the one second default; a negative value disables pacing.
	RequestInterval time.Duration

	// BaseURL overrides the environment-derived API endpoint.
	BaseURL string
	// SteamBaseURL overrides the Steam inventory endpoint.
	SteamBaseURL string

	// RetryMax enables transport-level retries when > 0. Off by default.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// HTTPTimeout bounds a single request; context deadlines are preferred.
	HTTPTimeout time.Duration
	// Debug enables verbose request/response logging when a Logger is set.
	Debug bool
	// Logger is the optional structured logger used by the transport and the
	// response normalizer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
