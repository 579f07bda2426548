package constants

import "time"

// API endpoints per environment.
const (
	// ProductionAPIURL is the default API endpoint.
	ProductionAPIURL = "https://production-gameflip.fingershock.com/api/v1"

	// TestAPIURL is selected by keys carrying the "test-" prefix.
	TestAPIURL = "https://test-gameflip.fingershock.com/api/v1"

	// DevelopmentAPIURL is selected by keys carrying the "development-" prefix.
	DevelopmentAPIURL = "https://development-gameflip.fingershock.com/api/v1"

	// SteamInventoryURL is the base of the secondary Steam inventory API.
	SteamInventoryURL = "https://steamcommunity.com/inventory"
)

// Environment key prefixes.
const (
	EnvPrefixTest        = "test-"
	EnvPrefixDevelopment = "development-"
)

// Authorization header.
const (
	// AuthScheme is the literal tag in "Authorization: GFAPI <key>:<code>".
	AuthScheme = "GFAPI"
)

// TOTP defaults.
const (
	// DefaultTOTPPeriod is the code rotation period.
	DefaultTOTPPeriod = 30 * time.Second

	// DefaultTOTPDigits is the code length.
	DefaultTOTPDigits = 6
)

// Rate limiting and timeouts.
const (
	// DefaultRequestInterval is the minimum spacing between request starts.
	DefaultRequestInterval = time.Second

	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits, applied only when a caller opts in.
const (
	// DefaultRetryWaitMin is the minimum backoff between retries.
	DefaultRetryWaitMin = time.Second

	// DefaultRetryWaitMax is the maximum backoff between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Listing statuses.
const (
	ListingStatusDraft  = "draft"
	ListingStatusReady  = "ready"
	ListingStatusOnSale = "onsale"
	ListingStatusSold   = "sold"
)

// Listing categories.
const (
	CategoryGames    = "CONSOLE_VIDEO_GAMES"
	CategoryInGame   = "DIGITAL_INGAME"
	CategoryGiftCard = "GIFTCARD"
)

// Steam inventory defaults.
const (
	// DefaultSteamAppID is the CS:GO app ID.
	DefaultSteamAppID = "730"

	// DefaultSteamContextID is the standard inventory context.
	DefaultSteamContextID = "2"

	// DefaultInventoryCount is the page size for inventory reads.
	DefaultInventoryCount = 75
)

// Content types.
const (
	ContentTypeJSON = "application/json"

	// ContentTypeJSONPatch tags PATCH bodies, which carry JSON-Patch ops.
	ContentTypeJSONPatch = "application/json-patch+json"
)
