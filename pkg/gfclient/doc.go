// Package gfclient provides the primary entry point for constructing a
// Gameflip API client that implements the gfapi.Client interface.
//
// It layers the TOTP signer, HTTP transport and the shared rate limiter on
// top of the resource interfaces and types defined in the gfapi package. Most
// applications should import gfclient to build a client, then use the
// returned gfapi.Client to access resource-specific clients, for example
// Listings(), Exchanges(), Account().
//
// Quick start
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
//
//	  // Minimal: a key/secret pair. A "test-" or "development-" key prefix
//	  // selects the matching environment automatically.
//	  cli, err := gfclient.NewWithCredentials("my-api-key", "MFRGGZDFMZTWQ2LK")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with explicit configuration:
//	  cli, err = gfclient.New(&gfapi.Config{
//	    Key:    "test-my-api-key",
//	    Secret: "MFRGGZDFMZTWQ2LK",
//	    Debug:  true,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  profile, err := cli.Account().Profile(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = profile
//	}
package gfclient
