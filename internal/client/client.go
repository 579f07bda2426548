// Package client wires the transport, signer and rate limiter into the
// concrete gfapi.Client implementation.
package client

import (
	"fmt"
	"strings"

	"github.com/pquerna/otp"

	"github.com/baonguyenly/gfapi/internal/auth"
	"github.com/baonguyenly/gfapi/internal/constants"
	"github.com/baonguyenly/gfapi/internal/http"
	"github.com/baonguyenly/gfapi/internal/ratelimit"
	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// Client implements the gfapi.Client interface.
type Client struct {
	httpClient  *http.Client
	steamClient *http.Client
	baseURL     string
	logger      gfapi.Logger

	// Resource clients
	listings  gfapi.ListingsClient
	exchanges gfapi.ExchangesClient
	account   gfapi.AccountClient
	bulk      gfapi.BulkClient
	steam     gfapi.SteamClient
}

// New creates a new Gameflip API client. The signer is exercised once up
// front so a malformed secret fails here instead of on the first request.
func New(config *gfapi.Config) (*Client, error) {
	if config == nil {
		return nil, gfapi.ErrConfigRequired
	}

	if config.Key == "" {
		return nil, gfapi.ErrAPIKeyRequired
	}

	if config.Secret == "" {
		return nil, gfapi.ErrAPISecretRequired
	}

	signer, err := createSigner(config)
	if err != nil {
		return nil, err
	}

	_, err = signer.Authorization()
	if err != nil {
		return nil, fmt.Errorf("validating credentials: %w", err)
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = ResolveBaseURL(config.Key)
	}

	steamURL := config.SteamBaseURL
	if steamURL == "" {
		steamURL = constants.SteamInventoryURL
	}

	interval := config.RequestInterval
	if interval == 0 {
		interval = constants.DefaultRequestInterval
	}

	// One pacer for both transports; Steam reads count against the same
	// request budget as primary API calls.
	pacer := ratelimit.New(interval)
	httpOpts := createHTTPClientOptions(config, pacer)

	client := &Client{
		httpClient:  http.NewClient(baseURL, signer, httpOpts...),
		steamClient: http.NewClient(steamURL, nil, httpOpts...),
		baseURL:     baseURL,
		logger:      config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// createSigner builds the TOTP signer from the config's credential fields.
func createSigner(config *gfapi.Config) (*auth.TOTPSigner, error) {
	credential := auth.NewCredential(config.Key, config.Secret)

	if config.TOTPAlgorithm != "" {
		algorithm, err := parseAlgorithm(config.TOTPAlgorithm)
		if err != nil {
			return nil, err
		}

		credential.Algorithm = algorithm
	}

	if config.TOTPDigits != 0 {
		digits, err := parseDigits(config.TOTPDigits)
		if err != nil {
			return nil, err
		}

		credential.Digits = digits
	}

	if config.TOTPPeriod > 0 {
		credential.Period = uint(config.TOTPPeriod.Seconds())
	}

	return auth.NewTOTPSigner(credential), nil
}

func parseAlgorithm(name string) (otp.Algorithm, error) {
	switch strings.ToUpper(name) {
	case "SHA1":
		return otp.AlgorithmSHA1, nil
	case "SHA256":
		return otp.AlgorithmSHA256, nil
	case "SHA512":
		return otp.AlgorithmSHA512, nil
	default:
		return 0, fmt.Errorf("%w: %q", gfapi.ErrInvalidTOTPAlgorithm, name)
	}
}

func parseDigits(digits int) (otp.Digits, error) {
	switch digits {
	case 6:
		return otp.DigitsSix, nil
	case 8:
		return otp.DigitsEight, nil
	default:
		return 0, fmt.Errorf("%w: %d", gfapi.ErrInvalidTOTPDigits, digits)
	}
}

// ResolveBaseURL maps an API key to its environment's endpoint. Keys carry
// their environment as a prefix; a bare key is production.
func ResolveBaseURL(key string) string {
	switch {
	case strings.HasPrefix(key, constants.EnvPrefixTest):
		return constants.TestAPIURL
	case strings.HasPrefix(key, constants.EnvPrefixDevelopment):
		return constants.DevelopmentAPIURL
	default:
		return constants.ProductionAPIURL
	}
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *gfapi.Config, pacer *ratelimit.Pacer) []http.Option {
	httpOpts := []http.Option{http.WithPacer(pacer)}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

func (c *Client) initializeResourceClients() {
	c.listings = NewListingsClient(c.httpClient, c.logger)
	c.exchanges = NewExchangesClient(c.httpClient, c.logger)
	c.account = NewAccountClient(c.httpClient, c.logger)
	c.bulk = NewBulkClient(c.httpClient, c.logger)
	c.steam = NewSteamClient(c.steamClient, c.logger)
}

// Listings implements gfapi.Client.Listings.
func (c *Client) Listings() gfapi.ListingsClient {
	return c.listings
}

// Exchanges implements gfapi.Client.Exchanges.
func (c *Client) Exchanges() gfapi.ExchangesClient {
	return c.exchanges
}

// Account implements gfapi.Client.Account.
func (c *Client) Account() gfapi.AccountClient {
	return c.account
}

// Bulk implements gfapi.Client.Bulk.
func (c *Client) Bulk() gfapi.BulkClient {
	return c.bulk
}

// Steam implements gfapi.Client.Steam.
func (c *Client) Steam() gfapi.SteamClient {
	return c.steam
}
