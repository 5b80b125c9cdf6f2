// Package nylas provides types, interfaces, and helpers for working with the
// Nylas email, calendar, and contacts API.
//
// # Overview
//
// The nylas package defines the domain types (Thread, Message, Draft, File,
// Contact, Event, Calendar, Folder, Label, Account) and the interfaces for
// resource-oriented clients (ThreadsClient, MessagesClient, and so on). A
// concrete implementation is provided by the nylasclient package, which wires
// configuration, transport, and authentication. Most consumers should import
// nylasclient to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := nylasclient.New(ctx, &nylas.Config{
//	    AppID:       "app-id",
//	    AppSecret:   "app-secret",
//	    AccessToken: "user-token",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  threads, err := cli.Threads().List(ctx, nylas.NewQueryParams().WithFilter("in", "inbox"))
//	  if err != nil { log.Fatal(err) }
//	  _ = threads
//	}
//
// # Queries and pagination
//
// Use QueryParams to express list filters and offset/limit pagination. The
// resource clients expose Iterate for lazily walking a collection page by
// page; the iterator stops once the API returns a page shorter than the
// requested page size:
//
//	it := cli.Messages().Iterate(ctx, nylas.NewQueryParams().WithFilter("unread", "true"))
//	for it.HasNext() {
//	  msg, err := it.Next()
//	  if err != nil { break }
//	  _ = msg
//	}
//
// # Errors
//
// API errors are represented by APIError, a closed taxonomy keyed by HTTP
// status code. Helpers such as IsNotFound, IsNotAuthorized, and
// IsConnectionFailure make it easy to branch on common cases. Failures are
// never retried by default; a transport-level failure surfaces immediately
// as a connection-failure APIError.
//
// # Interceptors and caching
//
// The package includes request/response interceptors (logging, custom
// headers, client-side rate limiting) and a pluggable Cache abstraction with
// memory and NATS key-value backends, applied to GET responses by the HTTP
// layer when configured.
package nylas
