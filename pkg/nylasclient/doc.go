// Package nylasclient provides the primary entry point for constructing a
// Nylas API client that implements the nylas.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the nylas package. Most
// applications should import nylasclient to build a client, then use the
// returned nylas.Client to access resource-specific clients, for example
// Messages(), Threads(), Events(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/nylas/pkg/nylas"
//	  "github.com/fivetwenty-io/nylas/pkg/nylasclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: an access token you already have.
//	  cli, err := nylasclient.NewWithToken(ctx, "", "nylas-access-token")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with application credentials for hosted authentication and the
//	  // management namespace. Exchange an authorization code for a token
//	  // before using per-account resources:
//	  cli, err = nylasclient.NewWithApp(ctx, "", "app-id", "app-secret")
//	  if err != nil { log.Fatal(err) }
//	  if _, err := cli.TokenForCode(ctx, "code-from-redirect"); err != nil {
//	    log.Fatal(err)
//	  }
//
//	  // Use resource clients via the nylas.Client interface
//	  msgs, err := cli.Messages().List(ctx, nylas.NewQueryParams().WithLimit(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = msgs
//	}
//
// An empty APIEndpoint defaults to the hosted platform; point it at a
// self-hosted sync engine to use open-source mode (no credentials required).
//
// # Helpers
//
// The package provides convenience constructors NewWithToken and NewWithApp
// that wrap New with the appropriate configuration.
package nylasclient
