// Package gfapi provides types, interfaces, and helpers for working with the
// Gameflip marketplace API.
//
// # Overview
//
// The gfapi package defines the domain types (Listing, Exchange, Profile,
// WalletEntry, InventoryPage) and the interfaces for resource-oriented
// clients (ListingsClient, ExchangesClient, AccountClient, BulkClient,
// SteamClient). A concrete implementation is provided by the gfclient
// package, which wires credential parsing, TOTP signing, rate limiting, and
// the HTTP transport. Most consumers should import gfclient to construct a
// client and then work with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/baonguyenly/gfapi/pkg/gfapi"
//	  "github.com/baonguyenly/gfapi/pkg/gfclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := gfclient.New(&gfapi.Config{Key: "my-api-key", Secret: "BASE32SECRET"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Fetch the first page of on-sale CS:GO listings
//	  query := gfapi.NewQuery().WithLimit(50).WithFilter("status", "onsale")
//	  listings, err := cli.Listings().Search(ctx, query)
//	  if err != nil { log.Fatal(err) }
//	  _ = listings
//	}
//
// # Queries and pagination
//
// List endpoints are cursor-paginated: each successful page advances the
// cursor held by the Query, and the terminal call returns ErrNoMoreItems
// (a successful end marker in the style of io.EOF, not a failure). Callers
// can loop
// on a shared Query, or use the iterator helpers:
//
//	it := gfapi.NewCursorIterator(ctx, cli.Listings().Search, query)
//	for it.HasNext() {
//	  listing, err := it.Next()
//	  if err != nil { break }
//	  _ = listing
//	}
//
// # Errors
//
// API failures are represented by APIError (the server's structured error
// code and message, falling back to the raw HTTP status), network failures
// by TransportError. Helpers such as IsNotFound, IsRateLimited, and
// IsTransport make it easy to branch on common cases. The client never
// retries on its own.
package gfapi
